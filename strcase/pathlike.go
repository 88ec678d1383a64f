package strcase

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	versionSuffix = regexp.MustCompile(`_v(\d+)\..*$`)
	driveRoot     = regexp.MustCompile(`^[a-zA-Z]:[\\/]`)
)

// FileVersion returns the digits of a standard version suffix
// (`_v###.ext`) in a file name, e.g. "001" for "GhostA_anim_v001.ma".
// The padding can be any length. It returns "" when no suffix is found.
func FileVersion(fileName string) string {
	match := versionSuffix.FindStringSubmatch(fileName)
	if match == nil {
		return ""
	}
	return match[1]
}

// IsPathLike heuristically determines whether a string looks like a
// Windows file or directory path: a drive-letter root, a UNC path, a
// relative .\ or ..\ prefix, any path separator, or a short file
// extension.
func IsPathLike(value string) bool {
	if driveRoot.MatchString(value) {
		return true
	}
	if strings.HasPrefix(value, `\\`) {
		return true
	}
	if strings.HasPrefix(value, `.\`) || strings.HasPrefix(value, `..\`) {
		return true
	}
	if strings.ContainsAny(value, `\/`) {
		return true
	}
	if ext := filepath.Ext(value); ext != "" && len(ext) <= 7 {
		return true
	}
	return false
}
