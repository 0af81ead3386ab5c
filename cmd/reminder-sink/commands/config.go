package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/slok/reminder-sink/internal/conventions"
	"github.com/slok/reminder-sink/internal/model"
	"github.com/slok/reminder-sink/internal/storage/io"
	"github.com/slok/reminder-sink/internal/utils/pathlist"
)

// resolveConfig merges the global flags with the optional configuration file,
// flags take precedence, missing values fall back to the app defaults.
func (c *RootCommand) resolveConfig(ctx context.Context) (model.Config, error) {
	cfg, err := c.loadFileConfig(ctx)
	if err != nil {
		return model.Config{}, err
	}

	if c.ScriptsPath != "" {
		cfg.SearchDirs = pathlist.Split(c.ScriptsPath)
	}
	if c.DefaultInterpreter != "" {
		cfg.DefaultInterpreter = c.DefaultInterpreter
	}
	if c.SilentFile != "" {
		cfg.SilentFile = pathlist.Expand(c.SilentFile)
	}

	if cfg.DefaultInterpreter == "" {
		cfg.DefaultInterpreter = conventions.DefaultInterpreter
	}
	if cfg.SilentFile == "" {
		cfg.SilentFile = conventions.DefaultSilentFile()
	}

	if err := cfg.Validate(); err != nil {
		return model.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadFileConfig loads the configuration YAML file. A missing file is only an
// error when it was asked for explicitly with the config flag.
func (c *RootCommand) loadFileConfig(ctx context.Context) (model.Config, error) {
	configPath := c.ConfigFile
	optional := configPath == ""
	if optional {
		configPath = conventions.DefaultConfigFile()
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return model.Config{}, fmt.Errorf("could not resolve config path: %w", err)
		}
		configPath = absPath
	}

	configRepo := io.NewConfigYAMLRepository(os.DirFS("/"))
	cfg, err := configRepo.GetConfig(ctx, configPath[1:])
	switch {
	case errors.Is(err, model.ErrNotFound) && optional:
		return model.Config{}, nil
	case err != nil:
		return model.Config{}, fmt.Errorf("could not load config file: %w", err)
	}

	return cfg, nil
}
