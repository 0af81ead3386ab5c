package silenceadd

import (
	"context"
	"fmt"
	"time"

	"github.com/slok/reminder-sink/internal/log"
	"github.com/slok/reminder-sink/internal/model"
	"github.com/slok/reminder-sink/internal/storage"
)

// ServiceConfig is the configuration for the silence add service.
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

	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.SilenceAdd"})
	return nil
}

// Service silences reminders for a period of time.
type Service struct {
	repo   storage.SilenceRepository
	logger log.Logger
}

// NewService creates a new silence add service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the silence add request parameters.
type Request struct {
	// Pattern is the reminder name to silence, glob wildcards allowed.
	Pattern string
	// Duration is how long the silence lasts from now.
	Duration time.Duration
}

// Run stores a new silence expiring after the requested duration.
func (s *Service) Run(ctx context.Context, req Request) (*model.Silence, error) {
	// 1. Validate request
	if req.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive: %w", model.ErrNotValid)
	}

	silence := model.Silence{
		Pattern:   req.Pattern,
		ExpiresAt: time.Now().Add(req.Duration),
	}
	if err := silence.Validate(); err != nil {
		return nil, err
	}

	// 2. Store it
	if err := s.repo.AddSilence(ctx, silence); err != nil {
		return nil, fmt.Errorf("could not store silence: %w", err)
	}

	s.logger.Infof("silenced %q until %s", silence.Pattern, silence.ExpiresAt.Format(time.RFC3339))
	return &silence, nil
}
