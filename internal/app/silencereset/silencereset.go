package silencereset

import (
	"context"
	"fmt"

	"github.com/slok/reminder-sink/internal/log"
	"github.com/slok/reminder-sink/internal/storage"
)

// ServiceConfig is the configuration for the silence reset service.
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

	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.SilenceReset"})
	return nil
}

// Service removes stored silences.
type Service struct {
	repo   storage.SilenceRepository
	logger log.Logger
}

// NewService creates a new silence reset service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the silence reset request parameters.
type Request struct {
	// OnlyExpired only removes the silences when every one of them has
	// already expired.
	OnlyExpired bool
}

// Run clears the stored silences.
func (s *Service) Run(ctx context.Context, req Request) error {
	if req.OnlyExpired {
		if err := s.repo.Autoprune(ctx); err != nil {
			return fmt.Errorf("could not prune silences: %w", err)
		}

		s.logger.Infof("pruned expired silences")
		return nil
	}

	if err := s.repo.DeleteAllSilences(ctx); err != nil {
		return fmt.Errorf("could not delete silences: %w", err)
	}

	s.logger.Infof("removed all silences")
	return nil
}
