package model

import (
	"fmt"
	"time"
)

// Config is the runtime configuration of the tool, merged from flags,
// environment and the optional config file.
type Config struct {
	// SearchDirs are the directories scanned for reminder scripts, in order.
	SearchDirs []string
	// DefaultInterpreter runs scripts that don't declare a usable shebang.
	DefaultInterpreter string
	// Workers caps the number of scripts executed at once. Zero means one
	// worker per CPU.
	Workers int
	// Timeout kills a script running longer than this. Zero disables it.
	Timeout time.Duration
	// SilentFile is the location of the silence entries file.
	SilentFile string
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.DefaultInterpreter == "" {
		return fmt.Errorf("default interpreter is required: %w", ErrNotValid)
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers can't be negative: %w", ErrNotValid)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout can't be negative: %w", ErrNotValid)
	}

	return nil
}
