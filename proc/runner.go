package proc

import (
	"context"
	"os/exec"
	"sync"
	"time"
)

// Command describes one command for a Runner.
type Command struct {
	// Name is an optional label used as the result key; argv[0] when empty
	Name string
	// Argv is the command and its arguments
	Argv []string
	// Dir is the working directory; inherited when empty
	Dir string
	// Env contains extra environment variables merged over the current
	// environment
	Env map[string]string
}

// Key returns the label identifying this command in results and errors.
func (c Command) Key() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.Argv) > 0 {
		return c.Argv[0]
	}
	return ""
}

// Runner executes batches of commands concurrently with a bounded number
// of workers and a per-command timeout.
type Runner struct {
	// Concurrency is the maximum number of commands running at once
	Concurrency int
	// Timeout is the per-command timeout; zero means no timeout
	Timeout time.Duration
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithConcurrency sets the maximum number of concurrent commands
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) {
		r.Concurrency = n
	}
}

// WithTimeout sets the per-command timeout
func WithTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.Timeout = d
	}
}

// NewRunner creates a Runner with default settings
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		Concurrency: 10,
		Timeout:     5 * time.Minute,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.Concurrency < 1 {
		r.Concurrency = 1
	}

	return r
}

func (r *Runner) execute(ctx context.Context, cmds []Command, run func(context.Context, Command) error) error {
	if len(cmds) == 0 {
		return nil
	}

	// Semaphore for concurrency control
	sem := make(chan struct{}, r.Concurrency)

	var wg sync.WaitGroup
	var mu sync.Mutex
	merr := &MultiError{}

	for _, command := range cmds {
		wg.Add(1)
		go func(command Command) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				mu.Lock()
				merr.Add(ctx.Err())
				mu.Unlock()
				return
			}

			if len(command.Argv) == 0 {
				mu.Lock()
				merr.Add(&OpError{Op: "run", Cmd: command.Key(), Err: ErrEmptyCommand})
				mu.Unlock()
				return
			}

			runCtx := ctx
			if r.Timeout > 0 {
				var cancel context.CancelFunc
				runCtx, cancel = context.WithTimeout(ctx, r.Timeout)
				defer cancel()
			}

			if err := run(runCtx, command); err != nil {
				mu.Lock()
				merr.Add(err)
				mu.Unlock()
			}
		}(command)
	}

	wg.Wait()

	return merr.Err()
}

// Run executes the commands and waits for all of them, aggregating
// failures into a MultiError.
func (r *Runner) Run(ctx context.Context, cmds ...Command) error {
	return r.execute(ctx, cmds, func(ctx context.Context, command Command) error {
		cmd := exec.CommandContext(ctx, command.Argv[0], command.Argv[1:]...)
		cmd.Dir = command.Dir
		cmd.Env = mergeEnv(command.Env)
		if err := cmd.Run(); err != nil {
			return &OpError{Op: "run", Cmd: command.Key(), Err: err}
		}
		return nil
	})
}

// Output executes the commands and collects their combined stdout/stderr,
// keyed by Command.Key. Output from failed commands is still included.
func (r *Runner) Output(ctx context.Context, cmds ...Command) (map[string][]byte, error) {
	results := make(map[string][]byte)
	var mu sync.Mutex

	err := r.execute(ctx, cmds, func(ctx context.Context, command Command) error {
		cmd := exec.CommandContext(ctx, command.Argv[0], command.Argv[1:]...)
		cmd.Dir = command.Dir
		cmd.Env = mergeEnv(command.Env)

		out, err := cmd.CombinedOutput()

		mu.Lock()
		results[command.Key()] = out
		mu.Unlock()

		if err != nil {
			return &OpError{Op: "run", Cmd: command.Key(), Err: err}
		}
		return nil
	})

	return results, err
}

// Shell is a convenience constructor for a Command run through the
// system shell.
func Shell(name, script string) Command {
	return Command{Name: name, Argv: shellArgv(script)}
}

func shellArgv(script string) []string {
	if sh, err := exec.LookPath("sh"); err == nil {
		return []string{sh, "-c", script}
	}
	// Windows fallback
	return []string{"cmd", "/C", script}
}
