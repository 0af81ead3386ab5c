package printer

import "github.com/slok/reminder-sink/internal/model"

// Printer knows how to print reminder information in different formats.
type Printer interface {
	PrintScriptList(scripts []model.Script) error
	PrintSilenceList(silences []model.Silence) error
	PrintMessage(msg string) error
}
