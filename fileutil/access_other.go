//go:build !linux && !darwin

package fileutil

import "os"

// writable reports whether dir looks writable. Without faccessat we fall
// back to checking the mode bits of the directory itself.
func writable(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0o200 != 0
}
