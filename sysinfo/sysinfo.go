// Package sysinfo provides date/time stamps and operating system
// identification for log headers and generated-file metadata.
package sysinfo

import (
	"runtime"
	"time"
)

// Date returns the current date as "MM-DD-YYYY".
func Date() string {
	return time.Now().Format("01-02-2006")
}

// Time returns the current time of day as "HH:MM:SS.XX", where XX is
// hundredths of a second.
func Time() string {
	return time.Now().Format("15:04:05.00")
}

// OSInfo returns the OS name, release, and version of the running
// system, e.g. ("Linux", "6.8.0-50-generic", "#50-Ubuntu SMP ...").
// Release and version are empty on platforms without uname.
//
// Note that on Windows hosts the underlying version APIs commonly
// report Windows 11 as Windows 10.
func OSInfo() (system, release, version string) {
	release, version = kernelInfo()
	return systemName(), release, version
}

func systemName() string {
	switch runtime.GOOS {
	case "linux":
		return "Linux"
	case "darwin":
		return "Darwin"
	case "windows":
		return "Windows"
	}
	return runtime.GOOS
}
