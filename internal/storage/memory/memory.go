package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/slok/reminder-sink/internal/log"
	"github.com/slok/reminder-sink/internal/model"
)

// RepositoryConfig is the configuration for the memory repository.
type RepositoryConfig struct {
	// Silences preloads the repository.
	Silences []model.Silence
	Logger   log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})

	return nil
}

// Repository is an in-memory implementation of storage.SilenceRepository.
type Repository struct {
	silences []model.Silence
	mu       sync.RWMutex
	logger   log.Logger
}

// NewRepository creates a new memory repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	silences := make([]model.Silence, len(cfg.Silences))
	copy(silences, cfg.Silences)

	return &Repository{
		silences: silences,
		logger:   cfg.Logger,
	}, nil
}

// ListActiveSilences returns the silences that have not expired.
func (r *Repository) ListActiveSilences(ctx context.Context) ([]model.Silence, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now()
	active := []model.Silence{}
	for _, silence := range r.silences {
		if silence.Active(now) {
			active = append(active, silence)
		}
	}

	return active, nil
}

// AddSilence stores a new silence.
func (r *Repository) AddSilence(ctx context.Context, silence model.Silence) error {
	if err := silence.Validate(); err != nil {
		return fmt.Errorf("invalid silence: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.silences = append(r.silences, silence)
	r.logger.Debugf("silenced %q until %s", silence.Pattern, silence.ExpiresAt)

	return nil
}

// DeleteAllSilences removes every stored silence.
func (r *Repository) DeleteAllSilences(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.silences = nil

	return nil
}

// Autoprune removes the stored silences only when there are some and none is
// active anymore.
func (r *Repository) Autoprune(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.silences) == 0 {
		return nil
	}

	now := time.Now()
	for _, silence := range r.silences {
		if silence.Active(now) {
			r.logger.Debugf("active silences present, skipping prune")
			return nil
		}
	}

	r.silences = nil

	return nil
}
