//go:build linux || darwin

package fileutil

import "golang.org/x/sys/unix"

// writable reports whether the current user can write to dir.
func writable(dir string) bool {
	return unix.Access(dir, unix.W_OK) == nil
}
