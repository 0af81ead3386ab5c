package pathlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/reminder-sink/internal/utils/pathlist"
)

func TestSplit(t *testing.T) {
	tests := map[string]struct {
		raw      string
		expPaths []string
	}{
		"An empty value should produce no paths": {
			raw:      "",
			expPaths: []string{},
		},

		"A single path should be returned as is": {
			raw:      "/home/testuser/scripts",
			expPaths: []string{"/home/testuser/scripts"},
		},

		"Multiple paths should keep their order": {
			raw:      "/a/scripts:/b/scripts:/c/scripts",
			expPaths: []string{"/a/scripts", "/b/scripts", "/c/scripts"},
		},

		"Blank entries should be skipped": {
			raw:      "/a/scripts::  :/b/scripts",
			expPaths: []string{"/a/scripts", "/b/scripts"},
		},

		"Duplicate entries should be preserved": {
			raw:      "/a/scripts:/a/scripts",
			expPaths: []string{"/a/scripts", "/a/scripts"},
		},

		"A tilde prefix should expand to the user home": {
			raw:      "~/scripts:/b/scripts",
			expPaths: []string{"/home/testuser/scripts", "/b/scripts"},
		},

		"A bare tilde should expand to the user home": {
			raw:      "~",
			expPaths: []string{"/home/testuser"},
		},

		"A tilde in the middle of a path should not expand": {
			raw:      "/a/~/scripts",
			expPaths: []string{"/a/~/scripts"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("HOME", "/home/testuser")

			assert.Equal(t, test.expPaths, pathlist.Split(test.raw))
		})
	}
}
