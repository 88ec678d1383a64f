// Package strcase converts identifiers between PascalCase, camelCase,
// and snake_case, and provides substring heuristics for file names and
// paths.
package strcase

import (
	"regexp"
	"strings"
)

var (
	acronymBoundary = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	caseBoundary    = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// PascalToSnake converts PascalCase to snake_case.
func PascalToSnake(s string) string {
	return toSnake(s)
}

// CamelToSnake converts camelCase to snake_case.
func CamelToSnake(s string) string {
	return toSnake(s)
}

func toSnake(s string) string {
	s = acronymBoundary.ReplaceAllString(s, "${1}_${2}")
	s = caseBoundary.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}

// PascalToCamel converts PascalCase to camelCase.
func PascalToCamel(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// CamelToPascal converts camelCase to PascalCase.
func CamelToPascal(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// SnakeToPascal converts snake_case to PascalCase.
func SnakeToPascal(s string) string {
	var b strings.Builder
	for _, word := range strings.Split(s, "_") {
		if word == "" {
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(strings.ToLower(word[1:]))
	}
	return b.String()
}

// SnakeToCamel converts snake_case to camelCase.
func SnakeToCamel(s string) string {
	pascal := SnakeToPascal(s)
	if pascal == "" {
		return ""
	}
	return strings.ToLower(pascal[:1]) + pascal[1:]
}
