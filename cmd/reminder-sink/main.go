package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/oklog/run"
	"github.com/sirupsen/logrus"

	"github.com/slok/reminder-sink/cmd/reminder-sink/commands"
	"github.com/slok/reminder-sink/internal/log"
	loglogrus "github.com/slok/reminder-sink/internal/log/logrus"
)

const (
	// Version is the application version (set via ldflags).
	Version = "dev"
)

// Run runs the main application.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	app := kingpin.New("reminder-sink", "Run reminder scripts and report the expired ones.")
	app.DefaultEnvars()
	rootCmd := commands.NewRootCommand(app)

	// Setup commands (registers flags).
	runCmd := commands.NewRunCommand(rootCmd, app)
	listCmd := commands.NewListCommand(rootCmd, app)
	testCmd := commands.NewTestCommand(rootCmd, app)

	// Silence subcommands share a parent command.
	silenceCmd := app.Command("silence", "Manage silences.")
	silenceAddCmd := commands.NewSilenceAddCommand(rootCmd, silenceCmd)
	silenceListCmd := commands.NewSilenceListCommand(rootCmd, silenceCmd)
	silenceResetCmd := commands.NewSilenceResetCommand(rootCmd, silenceCmd)
	silenceFileCmd := commands.NewSilenceFileCommand(rootCmd, silenceCmd)

	cmds := map[string]commands.Command{
		runCmd.Name():          runCmd,
		listCmd.Name():         listCmd,
		testCmd.Name():         testCmd,
		silenceAddCmd.Name():   silenceAddCmd,
		silenceListCmd.Name():  silenceListCmd,
		silenceResetCmd.Name(): silenceResetCmd,
		silenceFileCmd.Name():  silenceFileCmd,
	}

	// Parse command.
	cmdName, err := app.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("invalid command configuration: %w", err)
	}

	// Set standard input/output.
	rootCmd.Stdin = stdin
	rootCmd.Stdout = stdout
	rootCmd.Stderr = stderr

	// Printer commands keep logging off so their output stays pipeable,
	// --debug turns it back on.
	printerCommands := map[string]bool{
		"list":         true,
		"silence list": true,
		"silence file": true,
	}
	if printerCommands[cmdName] && !rootCmd.Debug {
		rootCmd.NoLog = true
	}

	// The test command is for debugging scripts, always log verbosely.
	if cmdName == testCmd.Name() {
		rootCmd.Debug = true
	}

	if rootCmd.NoColor {
		color.NoColor = true
	}

	// Set logger.
	rootCmd.Logger = getLogger(ctx, *rootCmd)

	var g run.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				rootCmd.Logger.Debugf("Termination signal received")
				return nil
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// Execute command.
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				err := cmds[cmdName].Run(ctx)
				if err != nil {
					return fmt.Errorf("%q command failed: %w", cmdName, err)
				}
				return nil
			},
			func(_ error) {
				cancel()
			},
		)
	}

	return g.Run()
}

// getLogger returns the application logger.
func getLogger(ctx context.Context, config commands.RootCommand) log.Logger {
	if config.NoLog {
		return log.Noop
	}

	// If logger not disabled use logrus logger.
	logrusLog := logrus.New()
	logrusLog.Out = config.Stderr // By default logger goes to stderr (so it can split stdout prints).
	logrusLogEntry := logrus.NewEntry(logrusLog)

	if config.Debug {
		logrusLogEntry.Logger.SetLevel(logrus.DebugLevel)
	}

	// Only color the logs when they end up on a terminal.
	useColor := !config.NoColor
	if f, ok := config.Stderr.(*os.File); ok {
		useColor = useColor && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}

	// Log format.
	switch config.LoggerType {
	case commands.LoggerTypeDefault:
		logrusLogEntry.Logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   useColor,
			DisableColors: !useColor,
		})
	case commands.LoggerTypeJSON:
		logrusLogEntry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger := loglogrus.NewLogrus(logrusLogEntry).WithValues(log.Kv{
		"version": Version,
	})

	logger.Debugf("Debug level is enabled") // Will log only when debug enabled.

	return logger
}

func main() {
	ctx := context.Background()
	err := Run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
