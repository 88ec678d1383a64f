package env

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMissing indicates one or more required environment variables are
// unset or empty.
var ErrMissing = errors.New("env: required variable not set")

// Require checks that every given environment variable is set and
// non-empty. All missing variables are reported in a single error so the
// caller can fix them in one pass.
func Require(keys ...string) error {
	var missing []string
	for _, key := range keys {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissing, strings.Join(missing, ", "))
	}
	return nil
}
