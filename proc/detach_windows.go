//go:build windows

package proc

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// detachAttr detaches the child from the parent's console and gives it
// its own process group.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.DETACHED_PROCESS | windows.CREATE_NEW_PROCESS_GROUP,
	}
}
