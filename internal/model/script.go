package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Script represents a reminder script discovered in a search directory.
type Script struct {
	// Path is the location of the script file and its identity.
	Path string
	// Enabled marks the script as runnable: the file is executable by the
	// current user or its name ends in ".enabled".
	Enabled bool
}

// Name returns the identifier used in reports and silences: the base name
// of the script file with the final extension stripped. The leading dot of a
// hidden file is not an extension separator.
func (s Script) Name() string {
	base := filepath.Base(s.Path)
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}

	return strings.TrimSuffix(base, ext)
}

// Validate validates the script.
func (s Script) Validate() error {
	if s.Path == "" {
		return fmt.Errorf("path is required: %w", ErrNotValid)
	}

	return nil
}
