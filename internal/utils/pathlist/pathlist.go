package pathlist

import (
	"path/filepath"
	"strings"

	"k8s.io/client-go/util/homedir"
)

// Split parses a path list value (colon separated on Unix) into its entries,
// skipping blanks and expanding a leading "~" to the user home.
func Split(raw string) []string {
	entries := filepath.SplitList(raw)

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		result = append(result, Expand(entry))
	}

	return result
}

// Expand resolves a leading "~" to the current user home.
func Expand(p string) string {
	switch {
	case p == "~":
		return homedir.HomeDir()
	case strings.HasPrefix(p, "~/"):
		return filepath.Join(homedir.HomeDir(), p[2:])
	}

	return p
}
