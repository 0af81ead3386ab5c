package silencelist

import (
	"context"
	"fmt"

	"github.com/slok/reminder-sink/internal/log"
	"github.com/slok/reminder-sink/internal/model"
	"github.com/slok/reminder-sink/internal/storage"
)

// ServiceConfig is the configuration for the silence list service.
type ServiceConfig struct {
	Repository storage.SilenceRepository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service lists the active silences.
type Service struct {
	repo   storage.SilenceRepository
	logger log.Logger
}

// NewService creates a new silence list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the silence list request parameters.
type Request struct{}

// Run lists the silences that are still active.
func (s *Service) Run(ctx context.Context, _ Request) ([]model.Silence, error) {
	silences, err := s.repo.ListActiveSilences(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list silences: %w", err)
	}

	s.logger.Debugf("found %d active silences", len(silences))
	return silences, nil
}
