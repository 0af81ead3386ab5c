package storagemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/slok/reminder-sink/internal/model"
)

// MockSilenceRepository is a mock implementation of storage.SilenceRepository.
type MockSilenceRepository struct {
	mock.Mock
}

// ListActiveSilences mock.
func (m *MockSilenceRepository) ListActiveSilences(ctx context.Context) ([]model.Silence, error) {
	args := m.Called(ctx)

	var silences []model.Silence
	if args.Get(0) != nil {
		silences = args.Get(0).([]model.Silence)
	}

	return silences, args.Error(1)
}

// AddSilence mock.
func (m *MockSilenceRepository) AddSilence(ctx context.Context, silence model.Silence) error {
	args := m.Called(ctx, silence)
	return args.Error(0)
}

// DeleteAllSilences mock.
func (m *MockSilenceRepository) DeleteAllSilences(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Autoprune mock.
func (m *MockSilenceRepository) Autoprune(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
