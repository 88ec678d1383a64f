// Package proc provides process helpers: locating executables, launching
// fully detached children, and running batches of commands with bounded
// concurrency.
package proc

import (
	"os"
	"os/exec"
	"path/filepath"
)

// Which locates an executable on PATH and returns its absolute path.
func Which(executable string) (string, error) {
	path, err := exec.LookPath(executable)
	if err != nil {
		return "", &OpError{Op: "which", Cmd: executable, Err: ErrNotFound}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &OpError{Op: "which", Cmd: executable, Err: err}
	}
	return abs, nil
}

// StartOption configures a detached start.
type StartOption func(*startConfig)

type startConfig struct {
	dir string
	env map[string]string
}

// WithDir sets the working directory for the child process.
func WithDir(dir string) StartOption {
	return func(c *startConfig) {
		c.dir = dir
	}
}

// WithEnv merges extra environment variables into the child's
// environment on top of the current process environment.
func WithEnv(env map[string]string) StartOption {
	return func(c *startConfig) {
		c.env = env
	}
}

// StartDetached launches a command as a fully independent child: it
// survives the parent exiting, belongs to its own session/process group,
// and has its stdio discarded. Useful for launching DCCs or other
// long-running tools from a script that must not block.
//
// It returns the child's PID. The process handle is released, so the
// child is never reaped by this process.
func StartDetached(argv []string, opts ...StartOption) (int, error) {
	if len(argv) == 0 {
		return 0, &OpError{Op: "start", Cmd: "", Err: ErrEmptyCommand}
	}

	cfg := &startConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = cfg.dir
	cmd.Env = mergeEnv(cfg.env)
	cmd.SysProcAttr = detachAttr()

	if err := cmd.Start(); err != nil {
		return 0, &OpError{Op: "start", Cmd: argv[0], Err: err}
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return pid, &OpError{Op: "start", Cmd: argv[0], Err: err}
	}
	return pid, nil
}

// mergeEnv overlays extra on the current process environment.
func mergeEnv(extra map[string]string) []string {
	if len(extra) == 0 {
		return os.Environ()
	}
	merged := os.Environ()
	for key, value := range extra {
		merged = append(merged, key+"="+value)
	}
	return merged
}
