// Package env provides typed accessors for environment variables, dotenv
// file loading, and struct-based environment decoding.
//
// The accessors never fail: an unset or unparsable variable yields the
// caller's fallback value. Use Require to assert presence up front.
package env

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Str returns the environment variable as a string, or fallback if unset.
func Str(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return value
}

// Int returns the environment variable parsed as an integer. It returns
// fallback if the variable is unset or cannot be parsed.
func Int(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

// Bool returns the environment variable parsed as a boolean.
// Truthy values: "1", "true", "yes", "on" (case-insensitive).
// Falsy values: "0", "false", "no", "off" (case-insensitive).
// It returns fallback if the variable is unset or matches neither set.
func Bool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}

// Path returns the environment variable as an absolute path, or fallback
// (unmodified) if the variable is unset.
func Path(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	abs, err := filepath.Abs(value)
	if err != nil {
		return fallback
	}
	return abs
}

// List returns the environment variable split on the platform list
// separator (":" on Unix, ";" on Windows). Items are trimmed of
// whitespace and empty items are dropped. It returns fallback if the
// variable is unset.
func List(key string, fallback []string) []string {
	return ListSep(key, string(os.PathListSeparator), fallback)
}

// ListSep is List with an explicit delimiter.
func ListSep(key, sep string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var items []string
	for _, item := range strings.Split(value, sep) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
