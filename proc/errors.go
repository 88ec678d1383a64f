package proc

import (
	"errors"
	"fmt"
)

// Common errors returned by proc operations
var (
	// ErrEmptyCommand indicates a command with no argv was given
	ErrEmptyCommand = errors.New("proc: empty command")

	// ErrNotFound indicates an executable could not be located on PATH
	ErrNotFound = errors.New("proc: executable not found")
)

// OpError represents an error from a process operation
type OpError struct {
	// Op is the operation that failed ("start", "run", "which")
	Op string
	// Cmd identifies the command involved
	Cmd string
	// Err is the underlying error
	Err error
}

// Error returns a formatted error message
func (e *OpError) Error() string {
	return fmt.Sprintf("proc %s %q: %v", e.Op, e.Cmd, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *OpError) Unwrap() error {
	return e.Err
}

// MultiError aggregates multiple errors from bulk operations
type MultiError struct {
	// Errors contains all accumulated errors
	Errors []error
}

// Error returns a summary of the accumulated errors
func (m *MultiError) Error() string {
	if len(m.Errors) == 0 {
		return "no errors"
	}
	if len(m.Errors) == 1 {
		return m.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors occurred", len(m.Errors))
}

// Unwrap exposes the accumulated errors to errors.Is and errors.As
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// Add appends an error to the collection if it's not nil
func (m *MultiError) Add(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// Err returns nil if no errors occurred, otherwise returns the MultiError itself
func (m *MultiError) Err() error {
	if len(m.Errors) == 0 {
		return nil
	}
	return m
}
