package fileutil

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"vawter.tech/stopper"
)

// Event is a change observed in a watched directory.
type Event struct {
	// Path is the affected file
	Path string
	// Op describes what happened to the file
	Op fsnotify.Op
	// Err carries watcher errors; when set the other fields are zero
	Err error
}

// CleanupFunc stops a watch and releases its resources.
type CleanupFunc func() error

// WatchOption configures a Watch.
type WatchOption func(*watchConfig)

type watchConfig struct {
	debounce   time.Duration
	extensions []string
}

// DefaultWatchDebounce is the coalescing window for rapid changes to the
// same file.
const DefaultWatchDebounce = 10 * time.Millisecond

// WithDebounce sets the per-file debounce window.
func WithDebounce(d time.Duration) WatchOption {
	return func(c *watchConfig) {
		c.debounce = d
	}
}

// WithExtensions restricts events to files with one of the given
// extensions (with or without a leading dot).
func WithExtensions(exts ...string) WatchOption {
	return func(c *watchConfig) {
		for _, ext := range exts {
			c.extensions = append(c.extensions, normalizeExt(ext))
		}
	}
}

// Watch emits debounced change events for files in dir. Rapid successive
// writes to the same file are coalesced into a single event. The channel
// is closed after cleanup is called or ctx is cancelled; cleanup waits
// for the watcher goroutine to exit.
func Watch(ctx context.Context, dir string, opts ...WatchOption) (<-chan Event, CleanupFunc, error) {
	cfg := &watchConfig{debounce: DefaultWatchDebounce}
	for _, opt := range opts {
		opt(cfg)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("fileutil: watching %q: %w", dir, err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, nil, fmt.Errorf("fileutil: watching %q: %w", dir, err)
	}

	ch := make(chan Event, 10)

	sctx := stopper.WithContext(ctx)
	sctx.Defer(func() {
		_ = watcher.Close()
		close(ch)
	})

	cleanup := func() error {
		sctx.Stop(100 * time.Millisecond)
		return sctx.Wait()
	}

	var mu sync.Mutex
	pending := make(map[string]*time.Timer)

	emit := func(ev Event) {
		if sctx.IsStopping() {
			return
		}
		select {
		case ch <- ev:
		case <-sctx.Stopping():
		}
	}

	sctx.Go(func(sctx *stopper.Context) error {
		sctx.Defer(func() {
			mu.Lock()
			for _, timer := range pending {
				timer.Stop()
			}
			mu.Unlock()
		})

		for !sctx.IsStopping() {
			select {
			case <-sctx.Stopping():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !cfg.matches(event.Name) {
					continue
				}

				mu.Lock()
				if timer, exists := pending[event.Name]; exists {
					timer.Stop()
				}
				name, op := event.Name, event.Op
				pending[name] = time.AfterFunc(cfg.debounce, func() {
					mu.Lock()
					delete(pending, name)
					mu.Unlock()
					emit(Event{Path: name, Op: op})
				})
				mu.Unlock()

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					emit(Event{Err: err})
				}
			}
		}
		return nil
	})

	return ch, cleanup, nil
}

func (c *watchConfig) matches(path string) bool {
	if len(c.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range c.extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}
