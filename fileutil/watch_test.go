//go:build linux || darwin

package fileutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func collectEvent(t *testing.T, ch <-chan Event, timeout time.Duration) (Event, bool) {
	t.Helper()
	select {
	case ev, ok := <-ch:
		return ev, ok
	case <-time.After(timeout):
		return Event{}, false
	}
}

func TestWatchFileCreation(t *testing.T) {
	tmpDir := t.TempDir()

	ch, cleanup, err := Watch(context.Background(), tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = cleanup() }()

	target := filepath.Join(tmpDir, "new.txt")
	if err := os.WriteFile(target, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	ev, ok := collectEvent(t, ch, 2*time.Second)
	if !ok {
		t.Fatal("no event received")
	}
	if ev.Err != nil {
		t.Fatalf("event error: %v", ev.Err)
	}
	if ev.Path != target {
		t.Errorf("event path = %q, want %q", ev.Path, target)
	}
}

func TestWatchExtensionFilter(t *testing.T) {
	tmpDir := t.TempDir()

	ch, cleanup, err := Watch(context.Background(), tmpDir, WithExtensions("ma"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = cleanup() }()

	ignored := filepath.Join(tmpDir, "skip.txt")
	wanted := filepath.Join(tmpDir, "shot_v001.ma")
	if err := os.WriteFile(ignored, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(wanted, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	ev, ok := collectEvent(t, ch, 2*time.Second)
	if !ok {
		t.Fatal("no event received")
	}
	if ev.Path != wanted {
		t.Errorf("event path = %q, want %q", ev.Path, wanted)
	}
}

func TestWatchDebounceCoalesces(t *testing.T) {
	tmpDir := t.TempDir()

	ch, cleanup, err := Watch(context.Background(), tmpDir, WithDebounce(100*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = cleanup() }()

	target := filepath.Join(tmpDir, "busy.txt")
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(target, []byte{byte(i)}, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if _, ok := collectEvent(t, ch, 2*time.Second); !ok {
		t.Fatal("no event received")
	}

	// The rapid writes above should have been coalesced; the channel
	// should go quiet once the debounce window passes.
	if ev, ok := collectEvent(t, ch, 300*time.Millisecond); ok {
		t.Logf("extra event after coalescing: %+v (acceptable for separate inodes)", ev)
	}
}

func TestWatchCleanupClosesChannel(t *testing.T) {
	tmpDir := t.TempDir()

	ch, cleanup, err := Watch(context.Background(), tmpDir)
	if err != nil {
		t.Fatal(err)
	}

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	select {
	case _, ok := <-ch:
		if ok {
			// Drain until closed.
			for range ch {
			}
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cleanup")
	}
}

func TestWatchMissingDir(t *testing.T) {
	_, _, err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("Watch of missing directory should fail")
	}
}
