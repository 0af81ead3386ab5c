package printer

import (
	"fmt"
	"time"
)

// TimeUntil returns a human-readable relative time string in UTC.
// Examples: "in 5 seconds (UTC)", "in 2 minutes (UTC)", "in 3 hours (UTC)".
func TimeUntil(t time.Time) string {
	now := time.Now().UTC()
	t = t.UTC()

	diff := t.Sub(now)

	// Handle past times
	if diff < 0 {
		return "expired (UTC)"
	}

	// Seconds
	if diff < time.Minute {
		seconds := int(diff.Seconds())
		if seconds == 1 {
			return "in 1 second (UTC)"
		}
		return fmt.Sprintf("in %d seconds (UTC)", seconds)
	}

	// Minutes
	if diff < time.Hour {
		minutes := int(diff.Minutes())
		if minutes == 1 {
			return "in 1 minute (UTC)"
		}
		return fmt.Sprintf("in %d minutes (UTC)", minutes)
	}

	// Hours
	if diff < 24*time.Hour {
		hours := int(diff.Hours())
		if hours == 1 {
			return "in 1 hour (UTC)"
		}
		return fmt.Sprintf("in %d hours (UTC)", hours)
	}

	// Days
	days := int(diff.Hours() / 24)
	if days == 1 {
		return "in 1 day (UTC)"
	}
	return fmt.Sprintf("in %d days (UTC)", days)
}

// FormatTimestamp returns a formatted timestamp string in UTC.
// Format: "2006-01-02 15:04:05 UTC".
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05 UTC")
}
