package lib

import (
	"fmt"
	"time"

	"github.com/slok/reminder-sink/internal/conventions"
	"github.com/slok/reminder-sink/internal/log"
	"github.com/slok/reminder-sink/internal/runner"
	"github.com/slok/reminder-sink/internal/scan"
	"github.com/slok/reminder-sink/internal/storage"
	"github.com/slok/reminder-sink/internal/storage/file"
	"github.com/slok/reminder-sink/internal/storage/memory"
)

// Config configures the SDK client.
//
// Only SearchDirs has no default: without at least one directory,
// [Client.Run] and [Client.ListScripts] return [ErrNotValid].
type Config struct {
	// SearchDirs are the directories searched for reminder scripts.
	SearchDirs []string

	// DefaultInterpreter runs scripts that have no shebang line.
	// Default: "bash".
	DefaultInterpreter string

	// Workers is the number of scripts run in parallel.
	// Default: the CPU count.
	Workers int

	// Timeout kills scripts that run longer than this.
	// Default: 0 (no timeout).
	Timeout time.Duration

	// SilenceFile is the silence file path, shared with the CLI.
	// Default: the reminder-sink silence file in the XDG cache directory.
	// Only used when Silences is [SilenceStoreFile].
	SilenceFile string

	// Silences selects the silence persistence backend.
	// Default: [SilenceStoreFile].
	//
	// Set this to [SilenceStoreMemory] for testing without touching the
	// user's silence file.
	Silences SilenceStore

	// Logger receives structured log output from the SDK.
	// Default: noop (silent). See the log sub-package for the interface.
	Logger log.Logger
}

func (c *Config) defaults() error {
	if c.Silences == "" {
		c.Silences = SilenceStoreFile
	}

	if c.SilenceFile == "" {
		c.SilenceFile = conventions.DefaultSilentFile()
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Client is the main SDK entry point for running reminders programmatically.
//
// Create a Client with [New]. A Client is safe for concurrent use.
type Client struct {
	searchDirs  []string
	scanner     *scan.Service
	runner      *runner.Service
	repo        storage.SilenceRepository
	silenceFile string
	logger      log.Logger
}

// New creates a new SDK client.
//
// New fails when the configuration is invalid, e.g. an unparsable default
// interpreter or an unknown silence store. An empty SearchDirs is accepted
// here, silence operations work without it.
func New(cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	scanner, err := scan.NewService(scan.ServiceConfig{Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("could not create scanner: %w", err)
	}

	scriptRunner, err := runner.NewService(runner.ServiceConfig{
		DefaultInterpreter: cfg.DefaultInterpreter,
		Workers:            cfg.Workers,
		Timeout:            cfg.Timeout,
		Logger:             cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create runner: %w", err)
	}

	var (
		repo        storage.SilenceRepository
		silenceFile string
	)
	switch cfg.Silences {
	case SilenceStoreFile:
		repo, err = file.NewRepository(file.RepositoryConfig{
			Path:   cfg.SilenceFile,
			Logger: cfg.Logger,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create silence repository: %w", err)
		}
		silenceFile = cfg.SilenceFile
	case SilenceStoreMemory:
		repo, err = memory.NewRepository(memory.RepositoryConfig{})
		if err != nil {
			return nil, fmt.Errorf("could not create silence repository: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported silence store: %s: %w", cfg.Silences, ErrNotValid)
	}

	return &Client{
		searchDirs:  cfg.SearchDirs,
		scanner:     scanner,
		runner:      scriptRunner,
		repo:        repo,
		silenceFile: silenceFile,
		logger:      cfg.Logger,
	}, nil
}

// SilenceFilePath returns the silence file path used by the client.
// Empty for [SilenceStoreMemory].
func (c *Client) SilenceFilePath() string {
	return c.silenceFile
}
