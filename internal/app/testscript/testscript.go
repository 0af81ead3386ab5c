package testscript

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/slok/reminder-sink/internal/log"
	"github.com/slok/reminder-sink/internal/model"
	"github.com/slok/reminder-sink/internal/runner"
	"github.com/slok/reminder-sink/internal/utils/pathlist"
)

// ServiceConfig is the configuration for the testscript service.
type ServiceConfig struct {
	Runner *runner.Service
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Runner == nil {
		return fmt.Errorf("runner is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.TestScript"})
	return nil
}

// Service runs a single reminder script regardless of its enabled state.
type Service struct {
	runner *runner.Service
	logger log.Logger
}

// NewService creates a new testscript service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		runner: cfg.Runner,
		logger: cfg.Logger,
	}, nil
}

// Request contains the parameters for testing a script.
type Request struct {
	// Path is the script file to run.
	Path string
}

// Run executes the script and returns its result so the caller can mirror
// the script's exit code.
func (s *Service) Run(ctx context.Context, req Request) (*model.ExecutionResult, error) {
	// 1. Validate the script path
	if req.Path == "" {
		return nil, fmt.Errorf("script path cannot be empty: %w", model.ErrNotValid)
	}

	path, err := filepath.Abs(pathlist.Expand(req.Path))
	if err != nil {
		return nil, fmt.Errorf("could not resolve script path: %w", err)
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("script %s: %w", path, model.ErrNotFound)
	case err != nil:
		return nil, fmt.Errorf("could not stat script: %w", err)
	case info.IsDir():
		return nil, fmt.Errorf("script %s is a directory: %w", path, model.ErrNotValid)
	}

	// 2. Run it, testing ignores the enabled state
	s.logger.Infof("testing %s", path)
	script := model.Script{Path: path, Enabled: true}
	results, err := s.runner.Run(ctx, runner.Request{Scripts: []model.Script{script}})
	if err != nil {
		return nil, fmt.Errorf("could not run script: %w", err)
	}

	result := results[0]
	s.logger.Infof("finished with exit code %d (%s)", result.ExitCode, result.Outcome())

	return &result, nil
}
