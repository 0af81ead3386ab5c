package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/slok/reminder-sink/internal/conventions"
	"github.com/slok/reminder-sink/internal/log"
	"github.com/slok/reminder-sink/internal/model"
)

// ServiceConfig is the configuration for the scan service.
type ServiceConfig struct {
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "scan.Service"})

	return nil
}

// Service discovers reminder scripts in the configured search directories.
type Service struct {
	logger log.Logger
}

// NewService creates a new scan service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		logger: cfg.Logger,
	}, nil
}

// Request represents the scan request parameters.
type Request struct {
	// Dirs are the directories to search, in order. Blank entries are
	// skipped, duplicates are searched again.
	Dirs []string
}

// Run searches the directories and returns every script found: directories
// keep their request order, entries inside each directory come back in name
// order. Missing or non-directory entries are skipped with a warning, a run
// with zero usable directories configured is an error.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Script, error) {
	// 1. Drop blank entries and validate there is something to search.
	dirs := make([]string, 0, len(req.Dirs))
	for _, dir := range req.Dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		dirs = append(dirs, dir)
	}

	if len(dirs) == 0 {
		return nil, fmt.Errorf("no search directories configured, set %s: %w", conventions.EnvVarPath, model.ErrNotValid)
	}

	// 2. Collect scripts from each directory.
	scripts := []model.Script{}
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scan interrupted: %w", err)
		}

		s.logger.Debugf("searching %s", dir)
		found, err := s.scanDir(dir)
		if err != nil {
			s.logger.Warningf("%s is not a searchable directory: %s", dir, err)
			continue
		}
		scripts = append(scripts, found...)
	}

	s.logger.Debugf("found %d scripts", len(scripts))

	return scripts, nil
}

func (s *Service) scanDir(dir string) ([]model.Script, error) {
	// os.ReadDir returns entries sorted by name, a fixed directory state
	// always produces the same script sequence.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read directory: %w", err)
	}

	scripts := []model.Script{}
	for _, entry := range entries {
		name := entry.Name()
		if conventions.IsIgnoredFileName(name) {
			continue
		}

		path, err := filepath.Abs(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("could not resolve %s: %w", name, err)
		}

		// Stat follows symlinks, a symlink to a script counts as a script.
		info, err := os.Stat(path)
		if err != nil {
			s.logger.Warningf("could not stat %s: %s", path, err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		enabled := isExecutable(path, info) || strings.HasSuffix(name, conventions.EnabledSuffix)
		scripts = append(scripts, model.Script{Path: path, Enabled: enabled})
	}

	return scripts, nil
}
