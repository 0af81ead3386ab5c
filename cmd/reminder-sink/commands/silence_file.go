package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/reminder-sink/internal/printer"
)

// SilenceFileCommand prints the location of the silence file so it can be
// inspected or edited by hand.
type SilenceFileCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
}

// NewSilenceFileCommand returns the silence file command.
func NewSilenceFileCommand(rootCmd *RootCommand, silenceCmd *kingpin.CmdClause) *SilenceFileCommand {
	c := &SilenceFileCommand{rootCmd: rootCmd}

	c.Cmd = silenceCmd.Command("file", "Print the location of the silence file.")

	return c
}

func (c SilenceFileCommand) Name() string { return c.Cmd.FullCommand() }

func (c SilenceFileCommand) Run(ctx context.Context) error {
	cfg, err := c.rootCmd.resolveConfig(ctx)
	if err != nil {
		return err
	}

	// Print the bare path so it can be piped into an editor.
	p := printer.NewPathPrinter(c.rootCmd.Stdout)
	if err := p.PrintMessage(cfg.SilentFile); err != nil {
		return fmt.Errorf("could not print silence file path: %w", err)
	}

	return nil
}
