package cli_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	intcli "github.com/slok/reminder-sink/test/integration/cli"
)

func newSilenceFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "silences.txt")
}

func TestRunReportsExpiredReminders(t *testing.T) {
	config := intcli.NewConfig(t)
	silenceFile := newSilenceFile(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// Two directories, scanned in order: satisfied scripts stay quiet, exit
	// code 2 reports the name, exit code 3 reports each output line, and a
	// script without the executable bit or the ".enabled" suffix is skipped.
	dirA := t.TempDir()
	intcli.WriteScript(t, dirA, "water", "exit 0")
	intcli.WriteScript(t, dirA, "weight", "exit 2")

	dirB := t.TempDir()
	intcli.WriteDisabledScript(t, dirB, "flipflop.enabled", "echo task1\necho task2\nexit 3")
	intcli.WriteDisabledScript(t, dirB, "paused", "exit 2")

	stdout, stderr, err := intcli.RunRun(ctx, config, silenceFile, dirA, dirB)
	assert.Equal(t, 2, intcli.ExitCode(err), "run should exit 2 on expired reminders: stderr=%s", stderr)
	assert.Equal(t, "weight\ntask1\ntask2\n", string(stdout))
	assert.Empty(t, stderr)
}

func TestRunAllSatisfied(t *testing.T) {
	config := intcli.NewConfig(t)
	silenceFile := newSilenceFile(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dir := t.TempDir()
	intcli.WriteScript(t, dir, "water", "exit 0")
	intcli.WriteScript(t, dir, "sleep", "exit 0")

	stdout, stderr, err := intcli.RunRun(ctx, config, silenceFile, dir)
	require.NoError(t, err, "run failed: stdout=%s stderr=%s", stdout, stderr)
	assert.Empty(t, string(stdout))
}

func TestRunFatalTakesPrecedence(t *testing.T) {
	config := intcli.NewConfig(t)
	silenceFile := newSilenceFile(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dir := t.TempDir()
	intcli.WriteScript(t, dir, "broken", "exit 5")
	intcli.WriteScript(t, dir, "weight", "exit 2")

	// Run with logs enabled, the failing script must be reported on stderr
	// while the expired entries still reach stdout.
	stdout, stderr, err := intcli.RunSinkCmdLogged(ctx, config, silenceFile, fmt.Sprintf("--path %s run", dir))
	assert.Equal(t, 1, intcli.ExitCode(err), "script failures should exit 1: stderr=%s", stderr)
	assert.Equal(t, "weight\n", string(stdout))
	assert.Contains(t, string(stderr), "broken")
}

func TestRunWritesOutputFile(t *testing.T) {
	config := intcli.NewConfig(t)
	silenceFile := newSilenceFile(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dir := t.TempDir()
	intcli.WriteScript(t, dir, "weight", "exit 2")

	outputFile := filepath.Join(t.TempDir(), "results.txt")
	stdout, stderr, err := intcli.RunSinkCmd(ctx, config, silenceFile,
		fmt.Sprintf("--path %s run --output-file %s", dir, outputFile))
	assert.Equal(t, 2, intcli.ExitCode(err), "run should exit 2: stderr=%s", stderr)
	assert.Equal(t, "weight\n", string(stdout))

	written, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, "weight\n", string(written))
}

func TestRunScriptTimeout(t *testing.T) {
	config := intcli.NewConfig(t)
	silenceFile := newSilenceFile(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dir := t.TempDir()
	intcli.WriteScript(t, dir, "stuck", "sleep 30\nexit 0")

	start := time.Now()
	stdout, stderr, err := intcli.RunSinkCmd(ctx, config, silenceFile,
		fmt.Sprintf("--path %s run --timeout 1s", dir))
	assert.Equal(t, 1, intcli.ExitCode(err), "killed scripts should exit 1: stdout=%s stderr=%s", stdout, stderr)
	assert.Less(t, time.Since(start), 30*time.Second, "the timeout should have killed the script")
}

func TestRunSilencedReminder(t *testing.T) {
	config := intcli.NewConfig(t)
	silenceFile := newSilenceFile(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dir := t.TempDir()
	intcli.WriteScript(t, dir, "weight", "exit 2")

	// Silence through the CLI, the run must pick the silence up from the
	// shared silence file.
	stdout, stderr, err := intcli.RunSilenceAdd(ctx, config, silenceFile, "weight", "1h")
	require.NoError(t, err, "silence add failed: stdout=%s stderr=%s", stdout, stderr)

	stdout, stderr, err = intcli.RunRun(ctx, config, silenceFile, dir)
	require.NoError(t, err, "run failed: stdout=%s stderr=%s", stdout, stderr)
	assert.Empty(t, string(stdout))
}
