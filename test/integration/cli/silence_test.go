package cli_test

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	intcli "github.com/slok/reminder-sink/test/integration/cli"
)

// silenceItem matches the JSON output of `reminder-sink silence list --format json`.
type silenceItem struct {
	Pattern   string    `json:"pattern"`
	ExpiresAt time.Time `json:"expires_at"`
}

func parseSilenceList(t *testing.T, data []byte) []silenceItem {
	t.Helper()
	var items []silenceItem
	require.NoError(t, json.Unmarshal(data, &items))
	return items
}

func TestSilenceLifecycle(t *testing.T) {
	config := intcli.NewConfig(t)
	silenceFile := newSilenceFile(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// 1. Add a silence, the silence file must hold it in pattern:epoch form.
	stdout, stderr, err := intcli.RunSilenceAdd(ctx, config, silenceFile, "weight", "1h")
	require.NoError(t, err, "silence add failed: stdout=%s stderr=%s", stdout, stderr)
	assert.Contains(t, string(stdout), `Silenced "weight"`)

	raw, err := os.ReadFile(silenceFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "weight:"), "unexpected silence file content: %q", raw)

	// 2. List should show it as active.
	stdout, stderr, err = intcli.RunSilenceList(ctx, config, silenceFile, "json")
	require.NoError(t, err, "silence list failed: stdout=%s stderr=%s", stdout, stderr)
	items := parseSilenceList(t, stdout)
	require.Len(t, items, 1)
	assert.Equal(t, "weight", items[0].Pattern)
	assert.WithinDuration(t, time.Now().Add(time.Hour), items[0].ExpiresAt, 2*time.Minute)

	// 3. Reset removes the silence file entirely.
	stdout, stderr, err = intcli.RunSilenceReset(ctx, config, silenceFile, false)
	require.NoError(t, err, "silence reset failed: stdout=%s stderr=%s", stdout, stderr)
	assert.NoFileExists(t, silenceFile)

	stdout, stderr, err = intcli.RunSilenceList(ctx, config, silenceFile, "json")
	require.NoError(t, err, "silence list failed: stdout=%s stderr=%s", stdout, stderr)
	assert.Empty(t, parseSilenceList(t, stdout))
}

func TestSilenceResetIfExpired(t *testing.T) {
	config := intcli.NewConfig(t)
	silenceFile := newSilenceFile(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	stdout, stderr, err := intcli.RunSilenceAdd(ctx, config, silenceFile, "weight", "1h")
	require.NoError(t, err, "silence add failed: stdout=%s stderr=%s", stdout, stderr)

	// An active silence keeps the file in place.
	stdout, stderr, err = intcli.RunSilenceReset(ctx, config, silenceFile, true)
	require.NoError(t, err, "silence reset failed: stdout=%s stderr=%s", stdout, stderr)

	stdout, stderr, err = intcli.RunSilenceList(ctx, config, silenceFile, "json")
	require.NoError(t, err, "silence list failed: stdout=%s stderr=%s", stdout, stderr)
	require.Len(t, parseSilenceList(t, stdout), 1)
}

func TestSilenceAddTableOutput(t *testing.T) {
	config := intcli.NewConfig(t)
	silenceFile := newSilenceFile(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	stdout, stderr, err := intcli.RunSilenceAdd(ctx, config, silenceFile, "buy-*", "30m")
	require.NoError(t, err, "silence add failed: stdout=%s stderr=%s", stdout, stderr)

	stdout, stderr, err = intcli.RunSilenceList(ctx, config, silenceFile, "table")
	require.NoError(t, err, "silence list failed: stdout=%s stderr=%s", stdout, stderr)
	out := string(stdout)
	assert.Contains(t, out, "PATTERN")
	assert.Contains(t, out, "buy-*")
}

func TestSilenceAddInvalidPattern(t *testing.T) {
	config := intcli.NewConfig(t)
	silenceFile := newSilenceFile(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// ':' is the silence file separator, patterns can't contain it.
	stdout, stderr, err := intcli.RunSilenceAdd(ctx, config, silenceFile, "weight:extra", "1h")
	assert.Equal(t, 1, intcli.ExitCode(err), "invalid patterns should fail: stdout=%s", stdout)
	assert.Contains(t, string(stderr), "Error:")
}

func TestSilenceFilePath(t *testing.T) {
	config := intcli.NewConfig(t)
	silenceFile := newSilenceFile(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	stdout, stderr, err := intcli.RunSilenceFile(ctx, config, silenceFile)
	require.NoError(t, err, "silence file failed: stdout=%s stderr=%s", stdout, stderr)
	assert.Equal(t, silenceFile+"\n", string(stdout))
}
