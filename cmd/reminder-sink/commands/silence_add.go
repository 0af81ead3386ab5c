package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/reminder-sink/internal/app/silenceadd"
	"github.com/slok/reminder-sink/internal/printer"
	"github.com/slok/reminder-sink/internal/storage/file"
)

// SilenceAddCommand silences reminders for a period of time.
type SilenceAddCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	pattern  string
	duration time.Duration
}

// NewSilenceAddCommand returns the silence add command.
func NewSilenceAddCommand(rootCmd *RootCommand, silenceCmd *kingpin.CmdClause) *SilenceAddCommand {
	c := &SilenceAddCommand{rootCmd: rootCmd}

	c.Cmd = silenceCmd.Command("add", "Silence a reminder for a period of time.")
	c.Cmd.Arg("pattern", "Reminder name to silence, glob wildcards allowed.").Required().StringVar(&c.pattern)
	c.Cmd.Flag("duration", "How long the silence lasts.").Short('d').Default("24h").DurationVar(&c.duration)

	return c
}

func (c SilenceAddCommand) Name() string { return c.Cmd.FullCommand() }

func (c SilenceAddCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := c.rootCmd.resolveConfig(ctx)
	if err != nil {
		return err
	}

	// Initialize storage (silence file).
	repo, err := file.NewRepository(file.RepositoryConfig{
		Path:   cfg.SilentFile,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	// Create silence add service.
	svc, err := silenceadd.NewService(silenceadd.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	silence, err := svc.Run(ctx, silenceadd.Request{
		Pattern:  c.pattern,
		Duration: c.duration,
	})
	if err != nil {
		return fmt.Errorf("could not add silence: %w", err)
	}

	// Print success message.
	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	if err := p.PrintMessage(fmt.Sprintf("Silenced %q until %s", silence.Pattern, printer.FormatTimestamp(silence.ExpiresAt))); err != nil {
		return fmt.Errorf("could not print message: %w", err)
	}

	return nil
}
