package commands

import (
	"context"
	"io"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/reminder-sink/internal/conventions"
	"github.com/slok/reminder-sink/internal/log"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string

	ScriptsPath        string
	DefaultInterpreter string
	SilentFile         string
	ConfigFile         string

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)

	app.Flag("path", "Colon separated list of directories searched for reminder scripts.").Short('p').Envar(conventions.EnvVarPath).StringVar(&c.ScriptsPath)
	app.Flag("default-interpreter", "Interpreter for scripts without a usable shebang (defaults to "+conventions.DefaultInterpreter+").").StringVar(&c.DefaultInterpreter)
	app.Flag("silent-file", "Path to the file holding the silences.").StringVar(&c.SilentFile)
	app.Flag("config", "Path to a configuration YAML file.").StringVar(&c.ConfigFile)

	return c
}
