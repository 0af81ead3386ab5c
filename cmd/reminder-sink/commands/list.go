package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/reminder-sink/internal/app/list"
	"github.com/slok/reminder-sink/internal/printer"
	"github.com/slok/reminder-sink/internal/scan"
)

type ListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	enabledOnly bool
	format      string
}

// NewListCommand returns the list command.
func NewListCommand(rootCmd *RootCommand, app *kingpin.Application) *ListCommand {
	c := &ListCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("list", "List the reminder scripts.")
	c.Cmd.Flag("enabled", "Only list the scripts that would run.").Short('e').BoolVar(&c.enabledOnly)
	c.Cmd.Flag("format", "Output format (table, json, path).").Short('o').Default("table").EnumVar(&c.format, "table", "json", "path")

	return c
}

func (c ListCommand) Name() string { return c.Cmd.FullCommand() }

func (c ListCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := c.rootCmd.resolveConfig(ctx)
	if err != nil {
		return err
	}

	// Initialize scanner.
	scanner, err := scan.NewService(scan.ServiceConfig{Logger: logger})
	if err != nil {
		return fmt.Errorf("could not create scanner: %w", err)
	}

	// Create list service.
	svc, err := list.NewService(list.ServiceConfig{
		Scanner: scanner,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute list.
	scripts, err := svc.Run(ctx, list.Request{
		Dirs:        cfg.SearchDirs,
		OnlyEnabled: c.enabledOnly,
	})
	if err != nil {
		return fmt.Errorf("could not list scripts: %w", err)
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

	if err := p.PrintScriptList(scripts); err != nil {
		return fmt.Errorf("could not print list: %w", err)
	}

	return nil
}
