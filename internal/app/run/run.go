package run

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/oklog/ulid/v2"

	"github.com/slok/reminder-sink/internal/log"
	"github.com/slok/reminder-sink/internal/report"
	"github.com/slok/reminder-sink/internal/runner"
	"github.com/slok/reminder-sink/internal/scan"
	"github.com/slok/reminder-sink/internal/storage"
)

// ServiceConfig is the configuration for the run service.
type ServiceConfig struct {
	Scanner    *scan.Service
	Runner     *runner.Service
	Repository storage.SilenceRepository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Scanner == nil {
		return fmt.Errorf("scanner is required")
	}
	if c.Runner == nil {
		return fmt.Errorf("runner is required")
	}
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Run"})
	return nil
}

// Service runs all enabled reminder scripts and reports the expired ones.
type Service struct {
	scanner *scan.Service
	runner  *runner.Service
	repo    storage.SilenceRepository
	logger  log.Logger
}

// NewService creates a new run service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		scanner: cfg.Scanner,
		runner:  cfg.Runner,
		repo:    cfg.Repository,
		logger:  cfg.Logger,
	}, nil
}

// Request contains the parameters for a run.
type Request struct {
	// Dirs are the directories searched for scripts.
	Dirs []string
	// Output receives the report, one expired reminder per line. Optional,
	// leave nil to only get the report back.
	Output io.Writer
	// OutputFilePath is an optional file that also receives the report.
	OutputFilePath string
	// Autoprune removes the silence file when no silence is active anymore.
	Autoprune bool
}

// Run executes the whole pipeline: discover scripts, run them, aggregate the
// results, drop silenced entries and write the report. The returned report is
// already filtered, its status maps to the process exit code.
func (s *Service) Run(ctx context.Context, req Request) (report.Report, error) {
	// Tag this run's logs, ours and the runner's, so overlapping runs can be
	// told apart.
	ctx = s.logger.SetValuesOnCtx(ctx, log.Kv{"run-id": ulid.Make().String()})
	logger := s.logger.WithCtxValues(ctx)

	if req.OutputFilePath == "-" {
		// Stdout is always written, "-" would only duplicate it.
		logger.Warningf("ignoring output file %q", req.OutputFilePath)
		req.OutputFilePath = ""
	}

	// 1. Load active silences, they apply to this run's report
	silences, err := s.repo.ListActiveSilences(ctx)
	if err != nil {
		return report.Report{}, fmt.Errorf("could not load silences: %w", err)
	}

	if req.Autoprune {
		if err := s.repo.Autoprune(ctx); err != nil {
			return report.Report{}, fmt.Errorf("could not prune silences: %w", err)
		}
	}

	// 2. Discover and execute the scripts
	scripts, err := s.scanner.Run(ctx, scan.Request{Dirs: req.Dirs})
	if err != nil {
		return report.Report{}, fmt.Errorf("could not scan directories: %w", err)
	}

	results, err := s.runner.Run(ctx, runner.Request{Scripts: scripts})
	if err != nil {
		return report.Report{}, fmt.Errorf("could not run scripts: %w", err)
	}

	// 3. Aggregate and filter the report
	rep := report.Aggregate(results).WithoutSilenced(silences)

	for _, fatal := range rep.Fatals {
		logger.Errorf("%s: %s", fatal.Name, fatal.Detail)
	}

	// 4. Write the report
	writers := []io.Writer{}
	if req.Output != nil {
		writers = append(writers, req.Output)
	}
	if req.OutputFilePath != "" {
		logger.Infof("also writing results to %s", req.OutputFilePath)
		f, err := os.Create(req.OutputFilePath)
		if err != nil {
			return report.Report{}, fmt.Errorf("could not create output file: %w", err)
		}
		defer f.Close()
		writers = append(writers, f)
	}

	if len(writers) > 0 {
		if err := rep.Write(io.MultiWriter(writers...)); err != nil {
			return report.Report{}, err
		}
	}

	logger.Debugf("run finished with status %s", rep.Status())

	return rep, nil
}
