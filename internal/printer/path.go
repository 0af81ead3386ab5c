package printer

import (
	"fmt"
	"io"

	"github.com/slok/reminder-sink/internal/model"
)

// PathPrinter prints only the bare values, one per line, so the output can
// be piped into other tools.
type PathPrinter struct {
	writer io.Writer
}

// NewPathPrinter creates a new path printer.
func NewPathPrinter(w io.Writer) *PathPrinter {
	return &PathPrinter{writer: w}
}

// PrintScriptList prints the script file paths, one per line.
func (p *PathPrinter) PrintScriptList(scripts []model.Script) error {
	for _, s := range scripts {
		fmt.Fprintln(p.writer, s.Path)
	}

	return nil
}

// PrintSilenceList prints the silence patterns, one per line.
func (p *PathPrinter) PrintSilenceList(silences []model.Silence) error {
	for _, s := range silences {
		fmt.Fprintln(p.writer, s.Pattern)
	}

	return nil
}

// PrintMessage prints a simple text message.
func (p *PathPrinter) PrintMessage(msg string) error {
	fmt.Fprintln(p.writer, msg)
	return nil
}
