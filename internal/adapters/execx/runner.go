package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/metrics"
)

// waitDelay bounds how long Wait keeps draining output pipes after the process is killed
const waitDelay = 2 * time.Second

// Command describes one external process invocation
type Command struct {
	Name    string
	Args    []string
	Dir     string
	Env     []string
	Timeout time.Duration
}

func (c Command) String() string {
	return fmt.Sprintf("%s %v", c.Name, c.Args)
}

// Result holds the captured output of a finished process
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Success reports whether the process exited with code 0
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0
}

// CommandRunner runs external commands
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) (*Result, error)
}

// Runner executes commands under a deadline. When the deadline expires the whole process group is
// killed, so nothing the command spawned outlives the call.
type Runner struct {
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewRunner creates a new command runner
func NewRunner(log *slog.Logger, m *metrics.Metrics) *Runner {
	return &Runner{
		log:     log.With("component", "CommandRunner"),
		metrics: m,
	}
}

// Run executes cmd and captures its output. A non-zero exit is reported through Result.ExitCode,
// not as an error. A missing binary yields domain.ErrToolUnavailable and an expired deadline
// yields domain.ErrTimeout.
func (r *Runner) Run(ctx context.Context, cmd Command) (*Result, error) {
	if cmd.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	c.WaitDelay = waitDelay
	configureProcessGroup(c)

	r.log.Debug("running command", "cmd", cmd.Name, "args", cmd.Args, "dir", cmd.Dir, "timeout", cmd.Timeout)

	start := time.Now()
	err := c.Run()
	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	outcome, err := r.classify(ctx, cmd, result, err)
	r.metrics.ObserveCommand(cmd.Name, outcome, result.Duration.Seconds())
	return result, err
}

func (r *Runner) classify(ctx context.Context, cmd Command, result *Result, err error) (string, error) {
	if err == nil {
		return "ok", nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		result.ExitCode = -1
		r.log.Debug("command aborted", "cmd", cmd.Name, "error", ctxErr, "duration", result.Duration)
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return "timeout", fmt.Errorf("%s after %s: %w", cmd.Name, cmd.Timeout, domain.ErrTimeout)
		}
		return "cancelled", ctxErr
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		r.log.Debug("command exited non-zero", "cmd", cmd.Name, "code", result.ExitCode)
		return "exit_error", nil
	case errors.Is(err, exec.ErrWaitDelay):
		// the process exited cleanly but a descendant held its output open
		r.log.Debug("command output pipes closed forcibly", "cmd", cmd.Name)
		return "ok", nil
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, os.ErrNotExist):
		result.ExitCode = -1
		return "not_found", fmt.Errorf("%s: %w: %w", cmd.Name, domain.ErrToolUnavailable, err)
	default:
		result.ExitCode = -1
		return "error", fmt.Errorf("failed to run %s: %w", cmd.Name, err)
	}
}
