package printer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/slok/reminder-sink/internal/printer"
)

func TestTimeUntil(t *testing.T) {
	// Small offsets keep the truncated unit stable while the test runs.
	pad := 500 * time.Millisecond

	tests := map[string]struct {
		t      time.Time
		expStr string
	}{
		"A past time should be expired": {
			t:      time.Now().Add(-time.Hour),
			expStr: "expired (UTC)",
		},

		"Seconds should use the seconds unit": {
			t:      time.Now().Add(30*time.Second + pad),
			expStr: "in 30 seconds (UTC)",
		},

		"A single minute should be singular": {
			t:      time.Now().Add(time.Minute + pad),
			expStr: "in 1 minute (UTC)",
		},

		"Minutes should use the minutes unit": {
			t:      time.Now().Add(5*time.Minute + pad),
			expStr: "in 5 minutes (UTC)",
		},

		"Hours should use the hours unit": {
			t:      time.Now().Add(3*time.Hour + pad),
			expStr: "in 3 hours (UTC)",
		},

		"Days should use the days unit": {
			t:      time.Now().Add(48*time.Hour + pad),
			expStr: "in 2 days (UTC)",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expStr, printer.TimeUntil(test.t))
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2026, 1, 30, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "2026-01-30 10:30:00 UTC", printer.FormatTimestamp(ts))
}
