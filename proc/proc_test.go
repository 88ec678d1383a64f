//go:build linux || darwin

package proc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"
)

func TestWhich(t *testing.T) {
	path, err := Which("sh")
	if err != nil {
		t.Fatalf("Which(sh): %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("Which = %q, want absolute path", path)
	}
}

func TestWhichNotFound(t *testing.T) {
	_, err := Which("definitely-not-an-executable-xyz")
	if err == nil {
		t.Fatal("Which should fail for a missing executable")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound in chain", err)
	}
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("error type = %T, want *OpError", err)
	}
	if opErr.Op != "which" {
		t.Errorf("Op = %q, want which", opErr.Op)
	}
}

func TestStartDetached(t *testing.T) {
	tmpDir := t.TempDir()
	marker := filepath.Join(tmpDir, "marker")

	pid, err := StartDetached(
		[]string{"sh", "-c", "echo $COREUTILS_PROC_TEST > " + marker},
		WithEnv(map[string]string{"COREUTILS_PROC_TEST": "detached"}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if pid <= 0 {
		t.Errorf("pid = %d, want > 0", pid)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		data, err := os.ReadFile(marker)
		if err == nil {
			if got := strings.TrimSpace(string(data)); got != "detached" {
				t.Errorf("marker content = %q, want detached", got)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("detached child never wrote its marker file")
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestStartDetachedWorkingDir(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := StartDetached([]string{"sh", "-c", "pwd > here"}, WithDir(tmpDir)); err != nil {
		t.Fatal(err)
	}

	marker := filepath.Join(tmpDir, "here")
	deadline := time.Now().Add(5 * time.Second)
	for {
		if data, err := os.ReadFile(marker); err == nil {
			got, err := filepath.EvalSymlinks(strings.TrimSpace(string(data)))
			if err != nil {
				t.Fatal(err)
			}
			want, err := filepath.EvalSymlinks(tmpDir)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Errorf("child cwd = %q, want %q", got, want)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("child never wrote its marker file")
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestStartDetachedEmptyCommand(t *testing.T) {
	_, err := StartDetached(nil)
	if !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("error = %v, want ErrEmptyCommand", err)
	}
}

func TestStartDetachedNewSession(t *testing.T) {
	// The detached child must not share our process group.
	pid, err := StartDetached([]string{"sleep", "5"})
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = syscall.Kill(pid, syscall.SIGKILL)
	}()

	childPgid, err := syscall.Getpgid(pid)
	if err != nil {
		t.Fatalf("getpgid(%d): %v", pid, err)
	}
	if childPgid == syscall.Getpgrp() {
		t.Error("detached child shares the parent's process group")
	}
}
