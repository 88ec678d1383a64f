package fileutil

import (
	"io/fs"

	"github.com/google/renameio/v2"
)

// WriteFileAtomic writes data to path atomically: the content is staged
// in a temporary file in the same directory and renamed into place, so
// readers never observe a partial write.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	return renameio.WriteFile(path, data, perm)
}
