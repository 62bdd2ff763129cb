package tools

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/trebuchet-org/subnetctl/internal/adapters/execx"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/metrics"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultProbeTimeout bounds a version probe
	DefaultProbeTimeout = 5 * time.Second
	// helpTimeout bounds a help text invocation
	helpTimeout = 10 * time.Second
)

// TopLevelCommands are the network CLI commands whose subcommands are discovered
var TopLevelCommands = []string{"subnet", "blockchain", "network", "key", "vm", "plugin", "transaction", "info", "primary", "node"}

// Detector probes external tools and remembers the results for its own lifetime
type Detector struct {
	runner       execx.CommandRunner
	log          *slog.Logger
	metrics      *metrics.Metrics
	lookPath     func(string) (string, error)
	probeTimeout time.Duration

	mu       sync.Mutex
	statuses map[domain.ToolName]domain.ToolStatus
	commands map[domain.ToolName][]string
	trees    map[domain.ToolName]domain.CommandTree
}

// NewDetector creates a new tool detector
func NewDetector(runner execx.CommandRunner, log *slog.Logger, m *metrics.Metrics) *Detector {
	return &Detector{
		runner:       runner,
		log:          log.With("component", "ToolDetector"),
		metrics:      m,
		lookPath:     exec.LookPath,
		probeTimeout: DefaultProbeTimeout,
		statuses:     make(map[domain.ToolName]domain.ToolStatus),
		commands:     make(map[domain.ToolName][]string),
		trees:        make(map[domain.ToolName]domain.CommandTree),
	}
}

// Detect reports whether tool is installed. It never fails: problems are recorded in the
// returned status. Results are cached until Refresh.
func (d *Detector) Detect(ctx context.Context, tool domain.ToolName) domain.ToolStatus {
	d.mu.Lock()
	if status, ok := d.statuses[tool]; ok {
		d.mu.Unlock()
		return status
	}
	d.mu.Unlock()

	status := d.probe(ctx, tool)
	d.metrics.ObserveToolProbe(string(tool), status.Installed)

	// a probe cut short by the caller says nothing about the tool
	if ctx.Err() != nil {
		return status
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if cached, ok := d.statuses[tool]; ok {
		return cached
	}
	d.statuses[tool] = status
	return status
}

func (d *Detector) probe(ctx context.Context, tool domain.ToolName) domain.ToolStatus {
	status := domain.ToolStatus{Name: tool}

	path, err := d.lookPath(string(tool))
	if err != nil {
		status.Error = fmt.Sprintf("%s not found in PATH", tool)
		d.log.Debug("tool not found", "tool", tool, "error", err)
		return status
	}
	status.Path = path

	res, err := d.runner.Run(ctx, execx.Command{
		Name:    string(tool),
		Args:    []string{"--version"},
		Timeout: d.probeTimeout,
	})
	if err != nil {
		status.Error = err.Error()
		d.log.Debug("version probe failed", "tool", tool, "error", err)
		return status
	}
	if !res.Success() {
		status.Error = fmt.Sprintf("exit code %d: %s", res.ExitCode, strings.TrimSpace(res.Stderr))
		return status
	}

	status.Installed = true
	output := res.Stdout
	if strings.TrimSpace(output) == "" {
		output = res.Stderr
	}
	status.Version = parseVersion(string(tool), output)
	d.log.Debug("tool detected", "tool", tool, "version", status.Version, "path", path)
	return status
}

// DetectAll probes every known tool concurrently
func (d *Detector) DetectAll(ctx context.Context) []domain.ToolStatus {
	statuses := make([]domain.ToolStatus, len(domain.KnownTools))

	g, gctx := errgroup.WithContext(ctx)
	for i, tool := range domain.KnownTools {
		g.Go(func() error {
			statuses[i] = d.Detect(gctx, tool)
			return nil
		})
	}
	_ = g.Wait()

	return statuses
}

// Available reports whether tool is installed
func (d *Detector) Available(ctx context.Context, tool domain.ToolName) bool {
	return d.Detect(ctx, tool).Installed
}

// DiscoverCommands lists the top-level commands of tool followed by "<top> <sub>" entries for the
// known top-level commands. Help invocations that fail leave their branch out.
func (d *Detector) DiscoverCommands(ctx context.Context, tool domain.ToolName) []string {
	top, tree := d.discover(ctx, tool)

	out := append([]string(nil), top...)
	for _, name := range TopLevelCommands {
		out = append(out, tree.Subcommands(name)...)
	}
	return out
}

// CommandTree returns the subcommand tree of tool, building it on first use
func (d *Detector) CommandTree(ctx context.Context, tool domain.ToolName) domain.CommandTree {
	_, tree := d.discover(ctx, tool)
	return tree
}

func (d *Detector) discover(ctx context.Context, tool domain.ToolName) ([]string, domain.CommandTree) {
	d.mu.Lock()
	if tree, ok := d.trees[tool]; ok {
		top := d.commands[tool]
		d.mu.Unlock()
		return top, tree
	}
	d.mu.Unlock()

	tree := domain.CommandTree{}
	if !d.Available(ctx, tool) {
		return nil, tree
	}

	top := ParseHelpCommands(d.help(ctx, tool))
	for _, name := range TopLevelCommands {
		if subs := ParseHelpCommands(d.help(ctx, tool, name)); len(subs) > 0 {
			tree[name] = subs
		}
	}

	if ctx.Err() != nil {
		return top, tree
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if cached, ok := d.trees[tool]; ok {
		return d.commands[tool], cached
	}
	d.commands[tool] = top
	d.trees[tool] = tree
	return top, tree
}

// help returns the help text of a command, or "" when it cannot be obtained
func (d *Detector) help(ctx context.Context, tool domain.ToolName, args ...string) string {
	res, err := d.runner.Run(ctx, execx.Command{
		Name:    string(tool),
		Args:    append(append([]string(nil), args...), "--help"),
		Timeout: helpTimeout,
	})
	if err != nil || !res.Success() {
		d.log.Debug("help unavailable", "tool", tool, "args", args, "error", err)
		return ""
	}
	return res.Stdout
}

// Refresh drops every cached status and command tree so the next call probes again
func (d *Detector) Refresh() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.statuses = make(map[domain.ToolName]domain.ToolStatus)
	d.commands = make(map[domain.ToolName][]string)
	d.trees = make(map[domain.ToolName]domain.CommandTree)
}
