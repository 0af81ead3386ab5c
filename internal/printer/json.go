package printer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/slok/reminder-sink/internal/model"
)

// JSONPrinter prints reminder information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// scriptItem represents a script in the list output.
type scriptItem struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Enabled bool   `json:"enabled"`
}

// silenceItem represents a silence in the list output.
type silenceItem struct {
	Pattern   string    `json:"pattern"`
	ExpiresAt time.Time `json:"expires_at"`
}

// messageOutput represents a simple message output.
type messageOutput struct {
	Message string `json:"message"`
}

// PrintScriptList prints scripts in JSON format.
func (j *JSONPrinter) PrintScriptList(scripts []model.Script) error {
	items := make([]scriptItem, len(scripts))
	for i, s := range scripts {
		items[i] = scriptItem{
			Name:    s.Name(),
			Path:    s.Path,
			Enabled: s.Enabled,
		}
	}

	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// PrintSilenceList prints silences in JSON format.
func (j *JSONPrinter) PrintSilenceList(silences []model.Silence) error {
	items := make([]silenceItem, len(silences))
	for i, s := range silences {
		items[i] = silenceItem{
			Pattern:   s.Pattern,
			ExpiresAt: s.ExpiresAt.UTC(),
		}
	}

	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	output := messageOutput{Message: msg}
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
