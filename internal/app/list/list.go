package list

import (
	"context"
	"fmt"

	"github.com/slok/reminder-sink/internal/log"
	"github.com/slok/reminder-sink/internal/model"
	"github.com/slok/reminder-sink/internal/scan"
)

// ServiceConfig is the configuration for the list service.
type ServiceConfig struct {
	Scanner *scan.Service
	Logger  log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Scanner == nil {
		return fmt.Errorf("scanner is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service lists reminder scripts with optional filtering.
type Service struct {
	scanner *scan.Service
	logger  log.Logger
}

// NewService creates a new list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		scanner: cfg.Scanner,
		logger:  cfg.Logger,
	}, nil
}

// Request represents the list request parameters.
type Request struct {
	// Dirs are the directories to search.
	Dirs []string
	// OnlyEnabled keeps only the scripts that would run.
	OnlyEnabled bool
}

// Run lists all discovered scripts, optionally only the enabled ones.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Script, error) {
	s.logger.Debugf("listing scripts in %d directories", len(req.Dirs))

	scripts, err := s.scanner.Run(ctx, scan.Request{Dirs: req.Dirs})
	if err != nil {
		return nil, fmt.Errorf("could not scan directories: %w", err)
	}

	// Apply enabled filter if asked for
	if req.OnlyEnabled {
		filtered := make([]model.Script, 0, len(scripts))
		for _, script := range scripts {
			if script.Enabled {
				filtered = append(filtered, script)
			}
		}
		scripts = filtered
	}

	s.logger.Debugf("found %d scripts", len(scripts))
	return scripts, nil
}
