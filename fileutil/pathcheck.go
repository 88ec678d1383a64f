package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// windowsReservedNames are device names that cannot be used as any path
// component on Windows, with or without an extension.
var windowsReservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

const windowsMaxPath = 260

// CanCreatePath reports whether path could be created under Windows path
// rules: no invalid characters, no reserved device names, within the
// 260-character limit (unless \\?\-prefixed), and with an existing,
// writable ancestor directory.
//
// The character and name rules are applied on any platform, which makes
// the check useful for validating output paths destined for Windows
// shares from non-Windows hosts.
func CanCreatePath(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	checkStr := abs
	if len(abs) > 1 && abs[1] == ':' {
		checkStr = abs[2:] // skip the drive letter
	}
	if strings.ContainsAny(checkStr, `<>:"|?*`) {
		return false
	}

	for _, part := range splitParts(abs) {
		name, _, _ := strings.Cut(part, ".")
		if _, reserved := windowsReservedNames[strings.ToUpper(name)]; reserved {
			return false
		}
	}

	if len(abs) > windowsMaxPath && !strings.HasPrefix(abs, `\\?\`) {
		return false
	}

	// Walk up until an existing ancestor is found, then require write
	// access to it.
	current := abs
	for {
		if _, err := os.Stat(current); err == nil {
			break
		}
		parent := filepath.Dir(current)
		if parent == current {
			return false
		}
		current = parent
	}
	return writable(current)
}

// splitParts breaks a path into components, handling both separators so
// Windows-style inputs validate on Unix hosts too.
func splitParts(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}
