//go:build !linux && !darwin

package sysinfo

func kernelInfo() (release, version string) {
	return "", ""
}
