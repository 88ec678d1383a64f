package structured

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// ExportYAML writes data to path as YAML. An existing file is left
// untouched unless overwrite is set.
func ExportYAML(path string, data any, overwrite bool) error {
	ok, err := shouldExport(path, overwrite)
	if err != nil || !ok {
		return err
	}

	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("structured: encoding yaml for %q: %w", path, err)
	}
	return writeAtomic(path, out)
}

// ImportYAML reads a YAML file. It returns (nil, nil) when the file does
// not exist.
func ImportYAML(path string) (any, error) {
	data, err := readIfExists(path)
	if err != nil || data == nil {
		return nil, err
	}

	var out any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("structured: decoding yaml %q: %w", path, err)
	}
	return out, nil
}

// DecodeYAML reads a YAML file into out, which must be a pointer.
// A missing file is an error.
func DecodeYAML(path string, out any) error {
	data, err := readIfExists(path)
	if err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("structured: %q does not exist", path)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("structured: decoding yaml %q: %w", path, err)
	}
	return nil
}
