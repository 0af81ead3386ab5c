package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/reminder-sink/internal/model"
	"github.com/slok/reminder-sink/internal/report"
)

func TestAggregate(t *testing.T) {
	tests := map[string]struct {
		results   []model.ExecutionResult
		expReport report.Report
	}{
		"No results should produce an empty report": {
			results:   []model.ExecutionResult{},
			expReport: report.Report{},
		},

		"Satisfied scripts should contribute nothing": {
			results: []model.ExecutionResult{
				{Script: model.Script{Path: "/scripts/water.sh"}, ExitCode: 0},
			},
			expReport: report.Report{},
		},

		"A script expired by name should contribute its name": {
			results: []model.ExecutionResult{
				{Script: model.Script{Path: "/scripts/weight.sh"}, ExitCode: 2},
			},
			expReport: report.Report{NameEntries: []string{"weight"}},
		},

		"A script expired by output should contribute its non blank lines": {
			results: []model.ExecutionResult{
				{
					Script:   model.Script{Path: "/scripts/flipflop.enabled"},
					ExitCode: 3,
					Stdout:   "task1\n\n  \ntask2\n",
				},
			},
			expReport: report.Report{OutputEntries: []string{"task1", "task2"}},
		},

		"A script expired by output with blank stdout should contribute nothing": {
			results: []model.ExecutionResult{
				{Script: model.Script{Path: "/scripts/flipflop.enabled"}, ExitCode: 3, Stdout: "  \n\n"},
			},
			expReport: report.Report{},
		},

		"Output lines with carriage returns should lose them": {
			results: []model.ExecutionResult{
				{Script: model.Script{Path: "/scripts/flipflop.enabled"}, ExitCode: 3, Stdout: "task1\r\ntask2\r\n"},
			},
			expReport: report.Report{OutputEntries: []string{"task1", "task2"}},
		},

		"An unexpected exit code should be a fatal entry": {
			results: []model.ExecutionResult{
				{Script: model.Script{Path: "/scripts/broken.sh"}, ExitCode: 5},
			},
			expReport: report.Report{Fatals: []report.FatalEntry{
				{Name: "broken", Detail: "exited with unexpected code 5"},
			}},
		},

		"An execution error should be a fatal entry with its error text": {
			results: []model.ExecutionResult{
				{Script: model.Script{Path: "/scripts/broken.sh"}, Err: errors.New("could not run script: boom")},
			},
			expReport: report.Report{Fatals: []report.FatalEntry{
				{Name: "broken", Detail: "could not run script: boom"},
			}},
		},

		"Mixed results should group by kind keeping the input order": {
			results: []model.ExecutionResult{
				{Script: model.Script{Path: "/scripts/water.sh"}, ExitCode: 0},
				{Script: model.Script{Path: "/scripts/weight.sh"}, ExitCode: 2},
				{Script: model.Script{Path: "/scripts/flipflop.enabled"}, ExitCode: 3, Stdout: "task1\ntask2\n"},
				{Script: model.Script{Path: "/scripts/sleep.sh"}, ExitCode: 2},
				{Script: model.Script{Path: "/scripts/broken.sh"}, ExitCode: 9},
			},
			expReport: report.Report{
				NameEntries:   []string{"weight", "sleep"},
				OutputEntries: []string{"task1", "task2"},
				Fatals: []report.FatalEntry{
					{Name: "broken", Detail: "exited with unexpected code 9"},
				},
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expReport, report.Aggregate(test.results))
		})
	}
}

func TestReportWithoutSilenced(t *testing.T) {
	tests := map[string]struct {
		report    report.Report
		silences  []model.Silence
		expReport report.Report
	}{
		"No silences should keep the report untouched": {
			report: report.Report{
				NameEntries:   []string{"weight"},
				OutputEntries: []string{"task1"},
			},
			silences: []model.Silence{},
			expReport: report.Report{
				NameEntries:   []string{"weight"},
				OutputEntries: []string{"task1"},
			},
		},

		"A matching silence should drop name entries": {
			report: report.Report{
				NameEntries:   []string{"weight", "water"},
				OutputEntries: []string{"task1"},
			},
			silences: []model.Silence{{Pattern: "weight"}},
			expReport: report.Report{
				NameEntries:   []string{"water"},
				OutputEntries: []string{"task1"},
			},
		},

		"A glob silence should drop matching output entries": {
			report: report.Report{
				NameEntries:   []string{"weight"},
				OutputEntries: []string{"task1", "task2", "other"},
			},
			silences: []model.Silence{{Pattern: "task*"}},
			expReport: report.Report{
				NameEntries:   []string{"weight"},
				OutputEntries: []string{"other"},
			},
		},

		"Fatal entries should never be silenced": {
			report: report.Report{
				NameEntries: []string{"weight"},
				Fatals:      []report.FatalEntry{{Name: "weight", Detail: "boom"}},
			},
			silences: []model.Silence{{Pattern: "*"}},
			expReport: report.Report{
				Fatals: []report.FatalEntry{{Name: "weight", Detail: "boom"}},
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expReport, test.report.WithoutSilenced(test.silences))
		})
	}
}

func TestReportStatus(t *testing.T) {
	tests := map[string]struct {
		report    report.Report
		expStatus model.RunStatus
	}{
		"An empty report should be OK": {
			report:    report.Report{},
			expStatus: model.RunStatusOK,
		},

		"A report with name entries should be expired": {
			report:    report.Report{NameEntries: []string{"weight"}},
			expStatus: model.RunStatusExpired,
		},

		"A report with output entries should be expired": {
			report:    report.Report{OutputEntries: []string{"task1"}},
			expStatus: model.RunStatusExpired,
		},

		"A report with fatals should be an error": {
			report:    report.Report{Fatals: []report.FatalEntry{{Name: "broken", Detail: "boom"}}},
			expStatus: model.RunStatusError,
		},

		"Fatals should win over expired entries": {
			report: report.Report{
				NameEntries: []string{"weight"},
				Fatals:      []report.FatalEntry{{Name: "broken", Detail: "boom"}},
			},
			expStatus: model.RunStatusError,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expStatus, test.report.Status())
		})
	}
}

func TestReportWrite(t *testing.T) {
	tests := map[string]struct {
		report    report.Report
		expOutput string
	}{
		"An empty report should write nothing": {
			report:    report.Report{},
			expOutput: "",
		},

		"Names should come before output lines, one per line": {
			report: report.Report{
				NameEntries:   []string{"weight", "sleep"},
				OutputEntries: []string{"task1", "task2"},
			},
			expOutput: "weight\nsleep\ntask1\ntask2\n",
		},

		"Fatal entries should not be written": {
			report: report.Report{
				NameEntries: []string{"weight"},
				Fatals:      []report.FatalEntry{{Name: "broken", Detail: "boom"}},
			},
			expOutput: "weight\n",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			var b bytes.Buffer
			err := test.report.Write(&b)

			assert.NoError(err)
			assert.Equal(test.expOutput, b.String())
		})
	}
}
