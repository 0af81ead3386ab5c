package storage

import (
	"context"

	"github.com/slok/reminder-sink/internal/model"
)

// SilenceRepository is the interface for silence persistence.
type SilenceRepository interface {
	// ListActiveSilences returns the stored silences that have not expired.
	ListActiveSilences(ctx context.Context) ([]model.Silence, error)
	// AddSilence stores a new silence.
	AddSilence(ctx context.Context, silence model.Silence) error
	// DeleteAllSilences removes every stored silence, active or not.
	DeleteAllSilences(ctx context.Context) error
	// Autoprune removes the stored silences only when there are some and
	// none is active anymore.
	Autoprune(ctx context.Context) error
}
