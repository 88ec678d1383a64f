// Package structured imports and exports structured data files in JSON,
// YAML, XML, and CSV formats.
//
// All exports share the same conventions: when the target file already
// exists the write is skipped unless overwrite is set, and writes are
// atomic (staged and renamed into place). All imports return (nil, nil)
// when the file does not exist, so callers can treat a missing file as
// "no data" without an existence check.
package structured

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/google/renameio/v2"
)

const exportPerm fs.FileMode = 0o644

// shouldExport reports whether an export to path should proceed, given
// the overwrite flag. It errors only on unexpected stat failures.
func shouldExport(path string, overwrite bool) (bool, error) {
	if overwrite {
		return true, nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if os.IsNotExist(err) {
		return true, nil
	}
	return false, fmt.Errorf("structured: stat %q: %w", path, err)
}

// readIfExists returns the file content, or (nil, nil) when the file
// does not exist.
func readIfExists(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("structured: reading %q: %w", path, err)
	}
	return data, nil
}

func writeAtomic(path string, data []byte) error {
	if err := renameio.WriteFile(path, data, exportPerm); err != nil {
		return fmt.Errorf("structured: writing %q: %w", path, err)
	}
	return nil
}
