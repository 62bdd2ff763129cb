// Package execxtest provides a scripted CommandRunner for tests
package execxtest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/trebuchet-org/subnetctl/internal/adapters/execx"
	"github.com/trebuchet-org/subnetctl/internal/domain"
)

// Response is the scripted outcome of one command line
type Response struct {
	Result *execx.Result
	Err    error
}

// Runner answers commands from a table keyed by "name arg1 arg2 ...". Unscripted commands
// behave like a missing binary.
type Runner struct {
	mu        sync.Mutex
	responses map[string]Response
	calls     []execx.Command
}

// NewRunner creates an empty scripted runner
func NewRunner() *Runner {
	return &Runner{responses: make(map[string]Response)}
}

// Key renders the lookup key of a command line
func Key(name string, args ...string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}

// Stdout scripts a successful run printing stdout
func (r *Runner) Stdout(stdout string, name string, args ...string) *Runner {
	return r.Respond(Response{Result: &execx.Result{Stdout: stdout}}, name, args...)
}

// Exit scripts a run that exits with code and stderr
func (r *Runner) Exit(code int, stderr string, name string, args ...string) *Runner {
	return r.Respond(Response{Result: &execx.Result{ExitCode: code, Stderr: stderr}}, name, args...)
}

// Fail scripts a run that returns err
func (r *Runner) Fail(err error, name string, args ...string) *Runner {
	return r.Respond(Response{Result: &execx.Result{ExitCode: -1}, Err: err}, name, args...)
}

// Respond scripts an arbitrary response
func (r *Runner) Respond(resp Response, name string, args ...string) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[Key(name, args...)] = resp
	return r
}

// Run implements execx.CommandRunner
func (r *Runner) Run(ctx context.Context, cmd execx.Command) (*execx.Result, error) {
	r.mu.Lock()
	r.calls = append(r.calls, cmd)
	resp, ok := r.responses[Key(cmd.Name, cmd.Args...)]
	r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return &execx.Result{ExitCode: -1}, err
	}
	if !ok {
		return &execx.Result{ExitCode: -1}, fmt.Errorf("%s: %w", cmd.Name, domain.ErrToolUnavailable)
	}
	res := *resp.Result
	return &res, resp.Err
}

// Calls returns every command run so far
func (r *Runner) Calls() []execx.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]execx.Command(nil), r.calls...)
}

// CallCount counts runs of one command line
func (r *Runner) CallCount(name string, args ...string) int {
	key := Key(name, args...)
	n := 0
	for _, c := range r.Calls() {
		if Key(c.Name, c.Args...) == key {
			n++
		}
	}
	return n
}

var _ execx.CommandRunner = (*Runner)(nil)
