package model

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// Silence mutes report entries whose text matches a shell glob pattern,
// until it expires.
type Silence struct {
	// Pattern is a shell glob ('*', '?', '[...]') matched against report entries.
	Pattern string
	// ExpiresAt is the moment the silence stops applying.
	ExpiresAt time.Time
}

// Active returns true if the silence still applies at the given time.
func (s Silence) Active(now time.Time) bool {
	return !now.After(s.ExpiresAt)
}

// Matches returns true if the report entry matches the silence pattern.
// Report entries never contain path separators, so path.Match glob rules
// behave as plain shell globs here.
func (s Silence) Matches(entry string) bool {
	ok, err := path.Match(s.Pattern, entry)
	return err == nil && ok
}

// Validate validates the silence.
func (s Silence) Validate() error {
	if strings.TrimSpace(s.Pattern) == "" {
		return fmt.Errorf("pattern is required: %w", ErrNotValid)
	}

	if strings.Contains(s.Pattern, ":") {
		return fmt.Errorf("pattern can't contain ':': %w", ErrNotValid)
	}

	if s.ExpiresAt.IsZero() {
		return fmt.Errorf("expiration is required: %w", ErrNotValid)
	}

	return nil
}

// AnySilenceMatches returns true if any of the silences matches the entry.
func AnySilenceMatches(silences []Silence, entry string) bool {
	for _, s := range silences {
		if s.Matches(entry) {
			return true
		}
	}

	return false
}
