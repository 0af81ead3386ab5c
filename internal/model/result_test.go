package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/reminder-sink/internal/model"
)

func TestExecutionResultOutcome(t *testing.T) {
	tests := map[string]struct {
		result     model.ExecutionResult
		expOutcome model.Outcome
	}{
		"Exit code 0 should be satisfied": {
			result:     model.ExecutionResult{ExitCode: 0},
			expOutcome: model.OutcomeSatisfied,
		},

		"Exit code 2 should be expired by name": {
			result:     model.ExecutionResult{ExitCode: 2},
			expOutcome: model.OutcomeExpiredByName,
		},

		"Exit code 3 should be expired by output": {
			result:     model.ExecutionResult{ExitCode: 3, Stdout: "task1\ntask2\n"},
			expOutcome: model.OutcomeExpiredByOutput,
		},

		"Exit code 1 should be fatal": {
			result:     model.ExecutionResult{ExitCode: 1},
			expOutcome: model.OutcomeFatal,
		},

		"An unexpected high exit code should be fatal": {
			result:     model.ExecutionResult{ExitCode: 127},
			expOutcome: model.OutcomeFatal,
		},

		"An execution error should be fatal even with a zero exit code": {
			result:     model.ExecutionResult{ExitCode: 0, Err: errors.New("something")},
			expOutcome: model.OutcomeFatal,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expOutcome, test.result.Outcome())
		})
	}
}

func TestRunStatusExitCode(t *testing.T) {
	tests := map[string]struct {
		status  model.RunStatus
		expCode int
	}{
		"OK status should exit 0": {
			status:  model.RunStatusOK,
			expCode: 0,
		},

		"Expired status should exit 2": {
			status:  model.RunStatusExpired,
			expCode: 2,
		},

		"Error status should exit 1": {
			status:  model.RunStatusError,
			expCode: 1,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expCode, test.status.ExitCode())
		})
	}
}
