//go:build linux || darwin

package proc

import "syscall"

// detachAttr places the child in a new session so it is not killed when
// the parent's terminal or process group goes away.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
