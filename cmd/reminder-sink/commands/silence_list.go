package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/reminder-sink/internal/app/silencelist"
	"github.com/slok/reminder-sink/internal/printer"
	"github.com/slok/reminder-sink/internal/storage/file"
)

// SilenceListCommand lists the active silences.
type SilenceListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
}

// NewSilenceListCommand returns the silence list command.
func NewSilenceListCommand(rootCmd *RootCommand, silenceCmd *kingpin.CmdClause) *SilenceListCommand {
	c := &SilenceListCommand{rootCmd: rootCmd}

	c.Cmd = silenceCmd.Command("list", "List the active silences.")
	c.Cmd.Flag("format", "Output format (table, json, path).").Short('o').Default("table").EnumVar(&c.format, "table", "json", "path")

	return c
}

func (c SilenceListCommand) Name() string { return c.Cmd.FullCommand() }

func (c SilenceListCommand) Run(ctx context.Context) error {
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

	// Create silence list service.
	svc, err := silencelist.NewService(silencelist.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	silences, err := svc.Run(ctx, silencelist.Request{})
	if err != nil {
		return fmt.Errorf("could not list silences: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	case "path":
		p = printer.NewPathPrinter(c.rootCmd.Stdout)
	default: // table
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintSilenceList(silences); err != nil {
		return fmt.Errorf("could not print list: %w", err)
	}

	return nil
}
