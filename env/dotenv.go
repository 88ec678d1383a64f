package env

import (
	"fmt"
	"os"
	"strings"
)

// Load reads a dotenv file into the process environment. Variables that
// are already set keep their current values.
//
// Supported syntax:
//   - KEY=VALUE pairs
//   - single- or double-quoted values: KEY="hello world"
//   - inline comments: KEY=value  # ignored
//   - full-line comments (#) and blank lines
//   - variable expansion: KEY2=$KEY1 or KEY2=${KEY1}
func Load(path string) error {
	return loadFile(path, false)
}

// LoadOverwrite is Load, except values from the file replace variables
// that are already set.
func LoadOverwrite(path string) error {
	return loadFile(path, true)
}

func loadFile(path string, overwrite bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("env: loading %q: %w", path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, rawValue, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		rawValue = stripInlineComment(strings.TrimSpace(rawValue))

		if len(rawValue) >= 2 {
			first, last := rawValue[0], rawValue[len(rawValue)-1]
			if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
				rawValue = rawValue[1 : len(rawValue)-1]
			}
		}

		// Expansion sees variables set by earlier lines of the same file.
		value := os.ExpandEnv(rawValue)

		if _, exists := os.LookupEnv(key); overwrite || !exists {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("env: setting %q: %w", key, err)
			}
		}
	}
	return nil
}

// stripInlineComment removes a trailing # comment from a value,
// respecting quoted regions: `hello # world` becomes `hello`, while
// `"hello # world"` is left intact.
func stripInlineComment(value string) string {
	var inQuote byte
	for i := 0; i < len(value); i++ {
		switch c := value[i]; {
		case c == '"' || c == '\'':
			if inQuote == 0 {
				inQuote = c
			} else if inQuote == c {
				inQuote = 0
			}
		case c == '#' && inQuote == 0:
			return strings.TrimRight(value[:i], " \t")
		}
	}
	return value
}
