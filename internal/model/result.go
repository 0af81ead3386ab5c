package model

import "time"

// Script exit code contract. Any other exit code is a script error.
const (
	// ExitCodeSatisfied means the reminder needs no attention.
	ExitCodeSatisfied = 0
	// ExitCodeExpiredByName means the reminder expired and is reported by script name.
	ExitCodeExpiredByName = 2
	// ExitCodeExpiredByOutput means the reminder expired and is reported by its stdout lines.
	ExitCodeExpiredByOutput = 3
)

// Outcome represents the classified result of a script execution.
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

// ExecutionResult is the result of running a single script.
type ExecutionResult struct {
	Script   Script
	ExitCode int
	Stdout   string
	// Err is set when the script could not be executed at all (unreadable
	// file, launch failure, timeout, cancellation). Nil when the process ran
	// to completion, whatever its exit code.
	Err       error
	StartedAt time.Time
	Duration  time.Duration
}

// Outcome classifies the result following the script exit code contract.
func (r ExecutionResult) Outcome() Outcome {
	if r.Err != nil {
		return OutcomeFatal
	}

	switch r.ExitCode {
	case ExitCodeSatisfied:
		return OutcomeSatisfied
	case ExitCodeExpiredByName:
		return OutcomeExpiredByName
	case ExitCodeExpiredByOutput:
		return OutcomeExpiredByOutput
	}

	return OutcomeFatal
}

// RunStatus summarizes a whole run for the process exit status.
type RunStatus string

const (
	// RunStatusOK indicates every reminder is satisfied.
	RunStatusOK RunStatus = "ok"
	// RunStatusExpired indicates at least one reminder expired.
	RunStatusExpired RunStatus = "expired"
	// RunStatusError indicates at least one script failed to run correctly.
	RunStatusError RunStatus = "error"
)

// ExitCode maps the run status to the process exit code. Expired reminders
// are advisory, script errors take precedence and use a distinct code.
func (s RunStatus) ExitCode() int {
	switch s {
	case RunStatusExpired:
		return 2
	case RunStatusError:
		return 1
	}

	return 0
}
