package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LatestVersioned returns the path of the highest-versioned file in dir,
// where the version is the run of digits at the end of the base name
// (before the extension), e.g. "shot_v001.exr" or "render_042.txt".
// The extension may be given with or without a leading dot, and substring
// optionally restricts matches to names containing it. It returns "" when
// no versioned file matches.
func LatestVersioned(dir, extension, substring string) (string, error) {
	ext := normalizeExt(extension)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("fileutil: reading %q: %w", dir, err)
	}

	best := ""
	bestVersion := -1
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ext {
			continue
		}
		if substring != "" && !strings.Contains(name, substring) {
			continue
		}
		version, ok := trailingDigits(stem(name))
		if !ok {
			continue
		}
		if version > bestVersion {
			bestVersion = version
			best = filepath.Join(dir, name)
		}
	}
	return best, nil
}

// NextVersion returns the next version number for versioned files in dir
// as a zero-padded string: "004" if "003" is the highest existing
// version, "001" when no versioned files exist or the directory is
// missing. The version is read from the last padding digits of the base
// name.
func NextVersion(dir, extension, substring string, padding int) (string, error) {
	pad := func(n int) string {
		return fmt.Sprintf("%0*d", padding, n)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return pad(1), nil
		}
		return "", fmt.Errorf("fileutil: reading %q: %w", dir, err)
	}

	ext := normalizeExt(extension)
	highest := 0
	found := false
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ext {
			continue
		}
		if substring != "" && !strings.Contains(name, substring) {
			continue
		}
		base := stem(name)
		if len(base) < padding || !allDigits(base[len(base)-padding:]) {
			continue
		}
		version, err := strconv.Atoi(base[len(base)-padding:])
		if err != nil {
			continue
		}
		found = true
		if version > highest {
			highest = version
		}
	}

	if !found {
		return pad(1), nil
	}
	return pad(highest + 1), nil
}

func normalizeExt(extension string) string {
	if strings.HasPrefix(extension, ".") {
		return extension
	}
	return "." + extension
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// trailingDigits parses the run of digits at the end of s.
func trailingDigits(s string) (int, bool) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s[i:])
	if err != nil {
		return 0, false
	}
	return n, true
}
