//go:build !unix

package scan

import "io/fs"

// isExecutable falls back to the permission bits where access(2) is not
// available.
func isExecutable(_ string, info fs.FileInfo) bool {
	return info.Mode().Perm()&0o111 != 0
}
