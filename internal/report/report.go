package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/slok/reminder-sink/internal/model"
)

// FatalEntry describes a script that could not run correctly.
type FatalEntry struct {
	Name   string
	Detail string
}

// Report groups the outcome of a whole run. Entries keep the execution
// request order, grouped by kind.
type Report struct {
	// NameEntries are the names of the scripts that expired by exit code.
	NameEntries []string
	// OutputEntries are the reminder lines of the scripts that expired with
	// output.
	OutputEntries []string
	// Fatals are the scripts that could not run correctly.
	Fatals []FatalEntry
}

// Aggregate classifies execution results into a report. Satisfied scripts
// contribute nothing, expired ones contribute their name or their non-blank
// stdout lines, everything else is a fatal entry.
func Aggregate(results []model.ExecutionResult) Report {
	r := Report{}
	for _, res := range results {
		switch res.Outcome() {
		case model.OutcomeSatisfied:

		case model.OutcomeExpiredByName:
			r.NameEntries = append(r.NameEntries, res.Script.Name())

		case model.OutcomeExpiredByOutput:
			for _, line := range strings.Split(res.Stdout, "\n") {
				line = strings.TrimRight(line, "\r")
				if strings.TrimSpace(line) == "" {
					continue
				}
				r.OutputEntries = append(r.OutputEntries, line)
			}

		case model.OutcomeFatal:
			detail := fmt.Sprintf("exited with unexpected code %d", res.ExitCode)
			if res.Err != nil {
				detail = res.Err.Error()
			}
			r.Fatals = append(r.Fatals, FatalEntry{Name: res.Script.Name(), Detail: detail})
		}
	}

	return r
}

// WithoutSilenced returns a copy of the report without the entries matching
// any of the silences. Fatal entries are never silenced.
func (r Report) WithoutSilenced(silences []model.Silence) Report {
	filtered := Report{Fatals: r.Fatals}

	for _, entry := range r.NameEntries {
		if !model.AnySilenceMatches(silences, entry) {
			filtered.NameEntries = append(filtered.NameEntries, entry)
		}
	}

	for _, entry := range r.OutputEntries {
		if !model.AnySilenceMatches(silences, entry) {
			filtered.OutputEntries = append(filtered.OutputEntries, entry)
		}
	}

	return filtered
}

// Status summarizes the report. Fatal entries win over expired ones, so a
// fully silenced run without failures is OK.
func (r Report) Status() model.RunStatus {
	switch {
	case len(r.Fatals) > 0:
		return model.RunStatusError
	case len(r.NameEntries) > 0 || len(r.OutputEntries) > 0:
		return model.RunStatusExpired
	}

	return model.RunStatusOK
}

// Write emits the expired entries one per line, script names first, output
// lines after. Fatal entries are not part of the written report.
func (r Report) Write(w io.Writer) error {
	for _, entry := range r.NameEntries {
		if _, err := fmt.Fprintln(w, entry); err != nil {
			return fmt.Errorf("could not write report: %w", err)
		}
	}

	for _, entry := range r.OutputEntries {
		if _, err := fmt.Fprintln(w, entry); err != nil {
			return fmt.Errorf("could not write report: %w", err)
		}
	}

	return nil
}
