package structured

import (
	"encoding/json"
	"fmt"
)

// ExportJSON writes data to path as indented JSON. An existing file is
// left untouched unless overwrite is set.
func ExportJSON(path string, data any, overwrite bool) error {
	ok, err := shouldExport(path, overwrite)
	if err != nil || !ok {
		return err
	}

	out, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Errorf("structured: encoding json for %q: %w", path, err)
	}
	return writeAtomic(path, append(out, '\n'))
}

// ImportJSON reads a JSON file. It returns (nil, nil) when the file does
// not exist. Objects decode as map[string]any and arrays as []any.
func ImportJSON(path string) (any, error) {
	data, err := readIfExists(path)
	if err != nil || data == nil {
		return nil, err
	}

	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("structured: decoding json %q: %w", path, err)
	}
	return out, nil
}

// DecodeJSON reads a JSON file into out, which must be a pointer. Unlike
// ImportJSON, a missing file is an error, since out would otherwise be
// left silently untouched.
func DecodeJSON(path string, out any) error {
	data, err := readIfExists(path)
	if err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("structured: %q does not exist", path)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("structured: decoding json %q: %w", path, err)
	}
	return nil
}
