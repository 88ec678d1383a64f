// Package fn provides small function-combinator helpers: call timing,
// at-most-once execution, running with the garbage collector off, and
// context-aware retry with exponential backoff.
package fn

import (
	"runtime/debug"
	"sync"
	"time"
)

// Time runs f and returns how long it took.
func Time(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

// Timed runs f and returns its result along with how long it took.
func Timed[T any](f func() T) (T, time.Duration) {
	start := time.Now()
	result := f()
	return result, time.Since(start)
}

// Once wraps f so it executes at most once, no matter how many times or
// from how many goroutines the wrapper is called. Every call returns the
// value from the first execution.
//
// Useful for one-time setup that must not repeat: registering plugins,
// configuring a logger, seeding a random state.
func Once[T any](f func() T) func() T {
	var (
		once   sync.Once
		result T
	)
	return func() T {
		once.Do(func() {
			result = f()
		})
		return result
	}
}

// WithGCDisabled runs f with the garbage collector switched off and
// restores the previous GC target afterwards, even if f panics. Intended
// for short allocation-heavy sections where a mid-loop collection would
// hurt.
func WithGCDisabled(f func()) {
	previous := debug.SetGCPercent(-1)
	defer debug.SetGCPercent(previous)
	f()
}
