// Package fileutil provides filesystem helpers for pipeline tooling:
// directory scaffolding from an outline, natural path sorting,
// versioned-file discovery, Windows path validation, atomic writes, and
// debounced directory watching.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// Tree is a nested outline of directory names. Leaves are empty maps
// (or nil).
//
//	Tree{
//	    "assets": {
//	        "model":   {},
//	        "texture": {},
//	        "anim":    {},
//	    },
//	    "config": {},
//	}
type Tree map[string]Tree

// CreateStructure creates the directory tree described by the outline
// under destination. Existing directories are left alone.
func CreateStructure(structure Tree, destination string) error {
	if err := os.MkdirAll(destination, 0o755); err != nil {
		return fmt.Errorf("fileutil: creating %q: %w", destination, err)
	}
	for name, children := range structure {
		if err := CreateStructure(children, filepath.Join(destination, name)); err != nil {
			return err
		}
	}
	return nil
}

// SortPaths sorts paths alphanumerically, comparing embedded runs of
// digits by numeric value, so "v2" sorts before "v10". The slice is
// sorted in place and returned for convenience.
func SortPaths(paths []string) []string {
	sort.Slice(paths, func(i, j int) bool {
		return naturalLess(filepath.ToSlash(paths[i]), filepath.ToSlash(paths[j]))
	})
	return paths
}

// naturalLess compares two strings chunk-wise, where a chunk is a maximal
// run of digits or non-digits.
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		ca, a2 := chunk(a)
		cb, b2 := chunk(b)
		if ca != cb {
			na, errA := strconv.Atoi(ca)
			nb, errB := strconv.Atoi(cb)
			if errA == nil && errB == nil {
				return na < nb
			}
			return ca < cb
		}
		a, b = a2, b2
	}
	return len(a) < len(b)
}

// chunk splits off the leading digit or non-digit run of s.
func chunk(s string) (head, tail string) {
	i := 0
	digits := s[0] >= '0' && s[0] <= '9'
	for i < len(s) && (s[i] >= '0' && s[i] <= '9') == digits {
		i++
	}
	return s[:i], s[i:]
}

// ClearDir deletes every regular file directly inside dir.
// Subdirectories and their contents are untouched. A file that vanishes
// between listing and removal is not an error.
func ClearDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("fileutil: reading %q: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("fileutil: removing %q: %w", path, err)
		}
	}
	return nil
}
