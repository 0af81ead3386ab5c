package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"

	"github.com/slok/reminder-sink/internal/app/testscript"
	"github.com/slok/reminder-sink/internal/model"
	"github.com/slok/reminder-sink/internal/runner"
)

type TestCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	scriptPath string
}

// NewTestCommand returns the test command.
func NewTestCommand(rootCmd *RootCommand, app *kingpin.Application) *TestCommand {
	c := &TestCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("test", "Run a single reminder script verbosely and mirror its exit code.")
	c.Cmd.Arg("script", "Path to the script file.").Required().StringVar(&c.scriptPath)

	return c
}

func (c TestCommand) Name() string { return c.Cmd.FullCommand() }

func (c TestCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := c.rootCmd.resolveConfig(ctx)
	if err != nil {
		return err
	}

	// Initialize runner, a single script so no parallelism needed.
	scriptRunner, err := runner.NewService(runner.ServiceConfig{
		DefaultInterpreter: cfg.DefaultInterpreter,
		Workers:            1,
		Logger:             logger,
	})
	if err != nil {
		return fmt.Errorf("could not create runner: %w", err)
	}

	// Create testscript service.
	svc, err := testscript.NewService(testscript.ServiceConfig{
		Runner: scriptRunner,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute the script.
	result, err := svc.Run(ctx, testscript.Request{Path: c.scriptPath})
	if err != nil {
		return fmt.Errorf("could not test script: %w", err)
	}
	if result.Err != nil {
		return fmt.Errorf("script failed: %w", result.Err)
	}

	if result.Stdout != "" {
		fmt.Fprint(c.rootCmd.Stdout, result.Stdout)
	}

	// Print the result, colored by outcome.
	var verdict string
	switch result.Outcome() {
	case model.OutcomeSatisfied:
		verdict = color.New(color.FgGreen).Sprint(result.Outcome())
	case model.OutcomeFatal:
		verdict = color.New(color.FgRed).Sprint(result.Outcome())
	default:
		verdict = color.New(color.FgYellow).Sprint(result.Outcome())
	}
	fmt.Fprintf(c.rootCmd.Stdout, "Result: %s (exit code %d, took %s)\n", verdict, result.ExitCode, result.Duration)

	// Exit with the script's exit code
	os.Exit(result.ExitCode)
	return nil
}
