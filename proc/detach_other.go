//go:build !linux && !darwin && !windows

package proc

import "syscall"

func detachAttr() *syscall.SysProcAttr {
	return nil
}
