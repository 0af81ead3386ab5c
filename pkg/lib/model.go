package lib

import (
	"time"

	"github.com/slok/reminder-sink/internal/model"
	"github.com/slok/reminder-sink/internal/report"
)

// SilenceStore identifies the silence persistence backend.
type SilenceStore string

const (
	// SilenceStoreFile persists silences in the silence text file, shared
	// with the reminder-sink CLI.
	SilenceStoreFile SilenceStore = "file"

	// SilenceStoreMemory keeps silences in process memory only.
	// Use this for unit testing without touching the user's silence file.
	SilenceStoreMemory SilenceStore = "memory"
)

// Script represents a discovered reminder script.
//
// This is a read-only snapshot taken at scan time. The enabled state can
// change on disk between calls.
type Script struct {
	// Name is the reminder name: the file name without its final extension.
	Name string
	// Path is the absolute script path.
	Path string
	// Enabled reports whether a run would execute this script.
	Enabled bool
}

// Outcome classifies the result of a single script execution.
type Outcome string

const (
	// OutcomeSatisfied indicates the script exited 0 and contributes nothing to the report.
	OutcomeSatisfied Outcome = "satisfied"
	// OutcomeExpiredByName indicates the script exited 2 and is reported by name.
	OutcomeExpiredByName Outcome = "expired-name"
	// OutcomeExpiredByOutput indicates the script exited 3 and is reported by its output lines.
	OutcomeExpiredByOutput Outcome = "expired-output"
	// OutcomeFatal indicates the script could not run or exited with an unexpected code.
	OutcomeFatal Outcome = "fatal"
)

// ExecutionResult is the result of running a single script with
// [Client.TestScript].
type ExecutionResult struct {
	// Script is the executed script.
	Script Script
	// Outcome classifies the execution.
	Outcome Outcome
	// ExitCode is the script's exit status.
	ExitCode int
	// Stdout is the script's captured standard output.
	Stdout string
	// StartedAt is when the execution started.
	StartedAt time.Time
	// Duration is how long the execution took.
	Duration time.Duration
	// Detail describes why the script could not run. Empty unless the
	// outcome is [OutcomeFatal] because of a launch failure or timeout.
	Detail string
}

// RunStatus summarizes a whole run.
type RunStatus string

const (
	// RunStatusOK indicates every reminder is satisfied.
	RunStatusOK RunStatus = "ok"
	// RunStatusExpired indicates at least one reminder expired.
	RunStatusExpired RunStatus = "expired"
	// RunStatusError indicates at least one script failed to run correctly.
	RunStatusError RunStatus = "error"
)

// ExitCode maps the run status to the exit code the reminder-sink CLI would
// use: 0 for ok, 2 for expired, 1 for error. Useful for wrappers that mirror
// the CLI contract.
func (s RunStatus) ExitCode() int {
	return model.RunStatus(s).ExitCode()
}

// FatalEntry describes a script that could not run correctly.
type FatalEntry struct {
	// Name is the reminder name.
	Name string
	// Detail is a human readable description of the failure.
	Detail string
}

// Report is the aggregated outcome of one run, already filtered by the
// active silences.
type Report struct {
	// NameEntries are the expired reminders reported by script name, in
	// scan order.
	NameEntries []string
	// OutputEntries are the expired reminder lines reported through script
	// output, in scan order after every name entry.
	OutputEntries []string
	// Fatals are the scripts that could not run correctly. Never silenced.
	Fatals []FatalEntry
	// Status summarizes the run. Fatal entries win over expired ones.
	Status RunStatus
}

// Entries returns the report lines in output order: name entries first,
// then output entries.
func (r Report) Entries() []string {
	entries := make([]string, 0, len(r.NameEntries)+len(r.OutputEntries))
	entries = append(entries, r.NameEntries...)
	entries = append(entries, r.OutputEntries...)
	return entries
}

// Silence represents an active silence.
type Silence struct {
	// Pattern is the silenced glob pattern.
	Pattern string
	// ExpiresAt is when the silence stops applying.
	ExpiresAt time.Time
}

// RunOpts configures a run.
//
// Pass nil to [Client.Run] to use defaults (no autoprune).
type RunOpts struct {
	// Autoprune removes the silence file when every silence in it has
	// expired. No effect on [SilenceStoreMemory].
	Autoprune bool
}

// ListScriptsOpts configures script listing.
//
// Pass nil to [Client.ListScripts] to list every discovered script.
type ListScriptsOpts struct {
	// OnlyEnabled keeps only the scripts a run would execute.
	OnlyEnabled bool
}

// ResetSilencesOpts configures silence removal.
//
// Pass nil to [Client.ResetSilences] to remove every silence.
type ResetSilencesOpts struct {
	// OnlyExpired only removes the silences when every one of them has
	// already expired.
	OnlyExpired bool
}

// --- Internal conversion helpers ---

func fromInternalScript(s model.Script) Script {
	return Script{
		Name:    s.Name(),
		Path:    s.Path,
		Enabled: s.Enabled,
	}
}

func fromInternalScriptList(ss []model.Script) []Script {
	result := make([]Script, len(ss))
	for i, s := range ss {
		result[i] = fromInternalScript(s)
	}
	return result
}

func fromInternalResult(r model.ExecutionResult) ExecutionResult {
	result := ExecutionResult{
		Script:    fromInternalScript(r.Script),
		Outcome:   Outcome(r.Outcome()),
		ExitCode:  r.ExitCode,
		Stdout:    r.Stdout,
		StartedAt: r.StartedAt,
		Duration:  r.Duration,
	}

	if r.Err != nil {
		result.Detail = r.Err.Error()
	}

	return result
}

func fromInternalReport(rep report.Report) Report {
	result := Report{
		NameEntries:   rep.NameEntries,
		OutputEntries: rep.OutputEntries,
		Status:        RunStatus(rep.Status()),
	}

	for _, f := range rep.Fatals {
		result.Fatals = append(result.Fatals, FatalEntry{Name: f.Name, Detail: f.Detail})
	}

	return result
}

func fromInternalSilence(s model.Silence) Silence {
	return Silence{
		Pattern:   s.Pattern,
		ExpiresAt: s.ExpiresAt,
	}
}

func fromInternalSilenceList(ss []model.Silence) []Silence {
	result := make([]Silence, len(ss))
	for i, s := range ss {
		result[i] = fromInternalSilence(s)
	}
	return result
}

func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case isInternalError(err, model.ErrNotFound):
		return joinErrors(err, ErrNotFound)
	case isInternalError(err, model.ErrNotValid):
		return joinErrors(err, ErrNotValid)
	default:
		return err
	}
}

func isInternalError(err, target error) bool {
	for {
		if err == target {
			return true
		}
		unwrapped := unwrapSingle(err)
		if unwrapped == nil {
			return false
		}
		err = unwrapped
	}
}

func unwrapSingle(err error) error {
	u, ok := err.(interface{ Unwrap() error })
	if !ok {
		return nil
	}
	return u.Unwrap()
}

func joinErrors(original, sentinel error) error {
	return &mappedError{original: original, sentinel: sentinel}
}

type mappedError struct {
	original error
	sentinel error
}

func (e *mappedError) Error() string { return e.original.Error() }

func (e *mappedError) Is(target error) bool {
	return target == e.sentinel
}

func (e *mappedError) Unwrap() error { return e.original }
