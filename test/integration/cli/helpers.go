package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/slok/reminder-sink/test/integration/testutils"
)

// Config holds integration test configuration loaded from environment variables.
type Config struct {
	Binary string
}

func (c *Config) defaults() error {
	if c.Binary == "" {
		c.Binary = "reminder-sink"
	}

	// If the path is already absolute, just check it exists.
	// If relative, the caller should pass an absolute path via the env var,
	// because go test changes the CWD to the test package directory.
	if !filepath.IsAbs(c.Binary) {
		return fmt.Errorf("REMINDER_SINK_INTEGRATION_BINARY must be an absolute path, got %q", c.Binary)
	}
	if _, err := os.Stat(c.Binary); err != nil {
		return fmt.Errorf("reminder-sink binary not found at %q: %w", c.Binary, err)
	}

	return nil
}

// NewConfig loads integration test configuration from environment variables.
// If the config is invalid or the activation env var is not set, the test is skipped.
func NewConfig(t *testing.T) Config {
	t.Helper()

	const (
		envActivation = "REMINDER_SINK_INTEGRATION"
		envBinary     = "REMINDER_SINK_INTEGRATION_BINARY"
	)

	if os.Getenv(envActivation) != "true" {
		t.Skipf("Skipping integration test: %s is not set to 'true'", envActivation)
	}

	c := Config{
		Binary: os.Getenv(envBinary),
	}

	if err := c.defaults(); err != nil {
		t.Skipf("Skipping due to invalid config: %s", err)
	}

	return c
}

// RunSinkCmd runs a reminder-sink command against a specific silence file.
// It suppresses logging output for cleaner test output.
func RunSinkCmd(ctx context.Context, config Config, silenceFile, cmdArgs string) (stdout, stderr []byte, err error) {
	args := fmt.Sprintf("--silent-file %s %s", silenceFile, cmdArgs)
	return testutils.RunSink(ctx, nil, config.Binary, args, true)
}

// RunSinkCmdLogged is RunSinkCmd with the logger enabled, for tests that
// assert on the stderr log output.
func RunSinkCmdLogged(ctx context.Context, config Config, silenceFile, cmdArgs string) (stdout, stderr []byte, err error) {
	args := fmt.Sprintf("--no-color --silent-file %s %s", silenceFile, cmdArgs)
	return testutils.RunSink(ctx, nil, config.Binary, args, false)
}

// RunRun executes the run command over the given script directories.
func RunRun(ctx context.Context, config Config, silenceFile string, dirs ...string) (stdout, stderr []byte, err error) {
	return RunSinkCmd(ctx, config, silenceFile, fmt.Sprintf("--path %s run", strings.Join(dirs, ":")))
}

// RunList lists the scripts of the given directories in the requested format.
func RunList(ctx context.Context, config Config, silenceFile, format string, dirs ...string) (stdout, stderr []byte, err error) {
	return RunSinkCmd(ctx, config, silenceFile, fmt.Sprintf("--path %s list --format %s", strings.Join(dirs, ":"), format))
}

// RunTest runs a single script through the test command.
func RunTest(ctx context.Context, config Config, silenceFile, scriptPath string) (stdout, stderr []byte, err error) {
	return RunSinkCmd(ctx, config, silenceFile, fmt.Sprintf("test %s", scriptPath))
}

// RunSilenceAdd silences a pattern for the given duration (e.g. "1h").
func RunSilenceAdd(ctx context.Context, config Config, silenceFile, pattern, duration string) (stdout, stderr []byte, err error) {
	return RunSinkCmd(ctx, config, silenceFile, fmt.Sprintf("silence add --duration %s %s", duration, pattern))
}

// RunSilenceList lists the active silences in the requested format.
func RunSilenceList(ctx context.Context, config Config, silenceFile, format string) (stdout, stderr []byte, err error) {
	return RunSinkCmd(ctx, config, silenceFile, fmt.Sprintf("silence list --format %s", format))
}

// RunSilenceReset removes the stored silences.
func RunSilenceReset(ctx context.Context, config Config, silenceFile string, onlyExpired bool) (stdout, stderr []byte, err error) {
	args := "silence reset"
	if onlyExpired {
		args += " --if-expired"
	}
	return RunSinkCmd(ctx, config, silenceFile, args)
}

// RunSilenceFile prints the silence file path.
func RunSilenceFile(ctx context.Context, config Config, silenceFile string) (stdout, stderr []byte, err error) {
	return RunSinkCmd(ctx, config, silenceFile, "silence file")
}

// ExitCode extracts the process exit code from a RunSinkCmd error.
// Returns 0 for a nil error and -1 when the command could not run at all.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}

// WriteScript writes an executable reminder script into dir and returns its path.
func WriteScript(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o644); err != nil {
		t.Fatalf("could not write script %s: %s", path, err)
	}
	if err := os.Chmod(path, 0o755); err != nil {
		t.Fatalf("could not chmod script %s: %s", path, err)
	}

	return path
}

// WriteDisabledScript writes a reminder script without the executable bit.
func WriteDisabledScript(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o644); err != nil {
		t.Fatalf("could not write script %s: %s", path, err)
	}

	return path
}
