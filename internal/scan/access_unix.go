//go:build unix

package scan

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// isExecutable reports whether the current user can execute the file,
// honoring the real uid/gid the way access(2) does.
func isExecutable(path string, _ fs.FileInfo) bool {
	return unix.Access(path, unix.X_OK) == nil
}
