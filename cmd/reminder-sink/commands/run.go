package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/reminder-sink/internal/app/run"
	"github.com/slok/reminder-sink/internal/runner"
	"github.com/slok/reminder-sink/internal/scan"
	"github.com/slok/reminder-sink/internal/storage/file"
)

type RunCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	cpuCount   int
	outputFile string
	autoprune  bool
	timeout    time.Duration
}

// NewRunCommand returns the run command.
func NewRunCommand(rootCmd *RootCommand, app *kingpin.Application) *RunCommand {
	c := &RunCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("run", "Run the enabled reminder scripts and print the expired reminders.")
	c.Cmd.Flag("cpu-count", "Number of scripts to run in parallel (defaults to the CPU count).").Short('c').IntVar(&c.cpuCount)
	c.Cmd.Flag("output-file", "Also write the results to this file.").Short('f').StringVar(&c.outputFile)
	c.Cmd.Flag("autoprune", "Remove the silence file when every silence in it has expired.").Short('a').BoolVar(&c.autoprune)
	c.Cmd.Flag("timeout", "Per script timeout, 0 disables it.").Default("0s").DurationVar(&c.timeout)

	return c
}

func (c RunCommand) Name() string { return c.Cmd.FullCommand() }

func (c RunCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := c.rootCmd.resolveConfig(ctx)
	if err != nil {
		return err
	}

	// Command flags take precedence over the configuration file.
	workers := cfg.Workers
	if c.cpuCount > 0 {
		workers = c.cpuCount
	}
	timeout := cfg.Timeout
	if c.timeout > 0 {
		timeout = c.timeout
	}

	// Initialize storage (silence file).
	repo, err := file.NewRepository(file.RepositoryConfig{
		Path:   cfg.SilentFile,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	// Initialize scanner and runner.
	scanner, err := scan.NewService(scan.ServiceConfig{Logger: logger})
	if err != nil {
		return fmt.Errorf("could not create scanner: %w", err)
	}

	scriptRunner, err := runner.NewService(runner.ServiceConfig{
		DefaultInterpreter: cfg.DefaultInterpreter,
		Workers:            workers,
		Timeout:            timeout,
		Logger:             logger,
	})
	if err != nil {
		return fmt.Errorf("could not create runner: %w", err)
	}

	// Create run service.
	svc, err := run.NewService(run.ServiceConfig{
		Scanner:    scanner,
		Runner:     scriptRunner,
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute run.
	rep, err := svc.Run(ctx, run.Request{
		Dirs:           cfg.SearchDirs,
		Output:         c.rootCmd.Stdout,
		OutputFilePath: c.outputFile,
		Autoprune:      c.autoprune,
	})
	if err != nil {
		return fmt.Errorf("could not run reminder scripts: %w", err)
	}

	// Exit with the run status exit code
	os.Exit(rep.Status().ExitCode())
	return nil
}
