package printer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/slok/reminder-sink/internal/model"
)

// TablePrinter prints reminder information in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintScriptList prints scripts in a table format.
func (t *TablePrinter) PrintScriptList(scripts []model.Script) error {
	if len(scripts) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header
	fmt.Fprintln(tw, "NAME\tENABLED\tPATH")

	// Print rows
	for _, s := range scripts {
		enabled := "no"
		if s.Enabled {
			enabled = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name(), enabled, s.Path)
	}

	return nil
}

// PrintSilenceList prints silences in a table format.
func (t *TablePrinter) PrintSilenceList(silences []model.Silence) error {
	if len(silences) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header
	fmt.Fprintln(tw, "PATTERN\tEXPIRES\tEXPIRES IN")

	// Print rows
	for _, s := range silences {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Pattern, FormatTimestamp(s.ExpiresAt), TimeUntil(s.ExpiresAt))
	}

	return nil
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}
