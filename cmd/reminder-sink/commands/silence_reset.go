package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/reminder-sink/internal/app/silencereset"
	"github.com/slok/reminder-sink/internal/printer"
	"github.com/slok/reminder-sink/internal/storage/file"
)

// SilenceResetCommand removes the stored silences.
type SilenceResetCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	onlyExpired bool
}

// NewSilenceResetCommand returns the silence reset command.
func NewSilenceResetCommand(rootCmd *RootCommand, silenceCmd *kingpin.CmdClause) *SilenceResetCommand {
	c := &SilenceResetCommand{rootCmd: rootCmd}

	c.Cmd = silenceCmd.Command("reset", "Remove the stored silences.")
	c.Cmd.Flag("if-expired", "Only remove the silences when every one of them has expired.").Short('f').BoolVar(&c.onlyExpired)

	return c
}

func (c SilenceResetCommand) Name() string { return c.Cmd.FullCommand() }

func (c SilenceResetCommand) Run(ctx context.Context) error {
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

	// Create silence reset service.
	svc, err := silencereset.NewService(silencereset.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	if err := svc.Run(ctx, silencereset.Request{OnlyExpired: c.onlyExpired}); err != nil {
		return fmt.Errorf("could not reset silences: %w", err)
	}

	// Print success message.
	msg := "Silences removed"
	if c.onlyExpired {
		msg = "Expired silences pruned"
	}
	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	if err := p.PrintMessage(msg); err != nil {
		return fmt.Errorf("could not print message: %w", err)
	}

	return nil
}
