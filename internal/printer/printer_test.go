package printer_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/reminder-sink/internal/model"
	"github.com/slok/reminder-sink/internal/printer"
)

func scriptsFixture() []model.Script {
	return []model.Script{
		{Path: "/scripts/water.sh", Enabled: true},
		{Path: "/scripts/flipflop.enabled", Enabled: true},
		{Path: "/scripts/paused.sh", Enabled: false},
	}
}

func silencesFixture() []model.Silence {
	return []model.Silence{
		{Pattern: "water", ExpiresAt: time.Date(2026, 1, 30, 10, 0, 0, 0, time.UTC)},
		{Pattern: "task*", ExpiresAt: time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC)},
	}
}

func TestTablePrinterPrintScriptList(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintScriptList(scriptsFixture())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "water")
	assert.Contains(t, out, "flipflop")
	assert.Contains(t, out, "/scripts/paused.sh")
	assert.Contains(t, out, "no")
}

func TestTablePrinterPrintScriptListEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintScriptList([]model.Script{})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestTablePrinterPrintSilenceList(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintSilenceList(silencesFixture())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "PATTERN")
	assert.Contains(t, out, "water")
	assert.Contains(t, out, "task*")
	assert.Contains(t, out, "2026-01-30 10:00:00 UTC")
}

func TestJSONPrinterPrintScriptList(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	err := p.PrintScriptList(scriptsFixture())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"name": "water"`)
	assert.Contains(t, out, `"path": "/scripts/water.sh"`)
	assert.Contains(t, out, `"enabled": false`)
}

func TestJSONPrinterPrintSilenceList(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	err := p.PrintSilenceList(silencesFixture())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"pattern": "task*"`)
	assert.Contains(t, out, `"expires_at": "2026-01-31T10:00:00Z"`)
}

func TestJSONPrinterPrintScriptListEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	err := p.PrintScriptList([]model.Script{})
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestPathPrinterPrintScriptList(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewPathPrinter(&buf)

	err := p.PrintScriptList(scriptsFixture())
	require.NoError(t, err)

	assert.Equal(t, "/scripts/water.sh\n/scripts/flipflop.enabled\n/scripts/paused.sh\n", buf.String())
}

func TestPathPrinterPrintSilenceList(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewPathPrinter(&buf)

	err := p.PrintSilenceList(silencesFixture())
	require.NoError(t, err)

	assert.Equal(t, "water\ntask*\n", buf.String())
}

func TestTablePrinterPrintMessage(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintMessage("ok")
	require.NoError(t, err)
	assert.Equal(t, "ok", strings.TrimSpace(buf.String()))
}
