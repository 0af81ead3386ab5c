package conventions

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// DefaultInterpreter runs scripts that don't declare a usable shebang.
	DefaultInterpreter = "bash"
	// EnabledSuffix marks a script as runnable regardless of its permission bits.
	EnabledSuffix = ".enabled"
	// AppDirName is the directory name used under the XDG config home.
	AppDirName = "reminder-sink"
	// ConfigFileName is the filename of the optional config file.
	ConfigFileName = "config.yaml"
	// SilentFileName is the filename of the silence entries file.
	SilentFileName = "reminder-sink-silent.txt"
	// EnvVarPath is the environment variable listing the search directories.
	EnvVarPath = "REMINDER_SINK_PATH"
)

// ignoredFileNames are directory entries never considered scripts. Reminder
// scripts are often Python or shell files, so tooling droppings show up next
// to them.
var ignoredFileNames = map[string]struct{}{
	"__pycache__":   {},
	".git":          {},
	".mypy_cache":   {},
	".pytest_cache": {},
	".stignore":     {},
}

// IsIgnoredFileName returns true for directory entries that are never scripts.
func IsIgnoredFileName(name string) bool {
	_, ok := ignoredFileNames[name]
	return ok
}

// DefaultSilentFile returns the default location of the silence file,
// honoring the XDG cache home.
func DefaultSilentFile() string {
	return filepath.Join(xdg.CacheHome, SilentFileName)
}

// DefaultConfigFile returns the default location of the optional config file,
// honoring the XDG config home.
func DefaultConfigFile() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}
