//go:build linux || darwin

package sysinfo

import "golang.org/x/sys/unix"

// kernelInfo reads the kernel release and version strings via uname.
func kernelInfo() (release, version string) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", ""
	}
	return trimNul(uts.Release[:]), trimNul(uts.Version[:])
}

func trimNul(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
