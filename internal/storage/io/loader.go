package io

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/slok/reminder-sink/internal/model"
	"github.com/slok/reminder-sink/internal/utils/pathlist"
)

// ConfigYAMLRepository loads the tool configuration from YAML files.
type ConfigYAMLRepository struct {
	fs fs.FS
}

// NewConfigYAMLRepository creates a new YAML config repository.
func NewConfigYAMLRepository(filesystem fs.FS) *ConfigYAMLRepository {
	return &ConfigYAMLRepository{fs: filesystem}
}

// GetConfig loads the tool configuration from a YAML file and returns a
// validated domain model. A missing file comes back as a model.ErrNotFound
// error so callers can treat the default config file as optional.
func (r *ConfigYAMLRepository) GetConfig(ctx context.Context, path string) (model.Config, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.Config{}, fmt.Errorf("config file %q: %w", path, model.ErrNotFound)
		}
		return model.Config{}, fmt.Errorf("reading config file: %w", err)
	}

	if ctx.Err() != nil {
		return model.Config{}, ctx.Err()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return model.Config{}, fmt.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return model.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg.toModel(), nil
}

// Config represents the YAML structure of the tool configuration.
type Config struct {
	Path               []string `yaml:"path"`
	DefaultInterpreter string   `yaml:"default_interpreter"`
	CPUCount           int      `yaml:"cpu_count"`
	Timeout            string   `yaml:"timeout"`
	SilentFile         string   `yaml:"silent_file"`
}

func (c Config) validate() error {
	if c.CPUCount < 0 {
		return fmt.Errorf("cpu_count must not be negative, got: %d", c.CPUCount)
	}

	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("timeout must not be negative, got: %s", d)
		}
	}

	return nil
}

func (c Config) toModel() model.Config {
	// Already checked by validate.
	timeout, _ := time.ParseDuration(c.Timeout)

	dirs := make([]string, 0, len(c.Path))
	for _, p := range c.Path {
		dirs = append(dirs, pathlist.Expand(p))
	}

	return model.Config{
		SearchDirs:         dirs,
		DefaultInterpreter: c.DefaultInterpreter,
		Workers:            c.CPUCount,
		Timeout:            timeout,
		SilentFile:         pathlist.Expand(c.SilentFile),
	}
}
