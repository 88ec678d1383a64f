// Package coreutils is the root of a collection of small, focused utility
// packages for pipeline and tooling development.
//
// Each concern lives in its own package so callers only import what they
// use:
//
//   - env: typed environment variable accessors, dotenv loading, and
//     struct-based env decoding
//   - fileutil: directory scaffolding, natural sorting, versioned-file
//     discovery, Windows path validation, atomic writes, and directory
//     watching
//   - proc: detached process launching and bounded-concurrency command
//     running
//   - structured: JSON/YAML/XML/CSV import and export with overwrite
//     guarding
//   - sizeconv: byte-count and length-unit conversion
//   - strcase: identifier casing conversions and path heuristics
//   - textutil: terminal headers, tagged messages, and a progress bar
//   - sysinfo: date/time stamps and OS identification
//   - fn: timing, at-most-once execution, GC freezing, and retry helpers
//
// # Design Philosophy
//
// This library prioritizes:
//
//   - Errors over prints: operations return errors; only textutil writes
//     to the terminal, and only when asked
//   - Fallback-based lookups (no panics on missing environment state)
//   - Atomic file writes for anything another process may read
//   - Context-aware blocking operations with proper timeouts
//
// A few runnable demonstrations live under examples/.
package coreutils
