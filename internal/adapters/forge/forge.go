package forge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/trebuchet-org/subnetctl/internal/adapters/execx"
	"github.com/trebuchet-org/subnetctl/internal/adapters/forge/broadcast"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/domain/config"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// ForgeAdapter drives the contract toolchain for the deploy workflow
type ForgeAdapter struct {
	runner        execx.CommandRunner
	bin           string
	projectRoot   string
	outDir        string
	buildTimeout  time.Duration
	deployTimeout time.Duration
	broadcasts    *broadcast.Parser
	log           *slog.Logger
}

// NewForgeAdapter creates a new forge adapter rooted at the project directory
func NewForgeAdapter(runner execx.CommandRunner, cfg *config.RuntimeConfig, log *slog.Logger) *ForgeAdapter {
	bin := cfg.ForgeBin
	if bin == "" {
		bin = string(domain.ToolContractCLI)
	}
	return &ForgeAdapter{
		runner:        runner,
		bin:           bin,
		projectRoot:   cfg.ProjectRoot,
		outDir:        cfg.OutDir(),
		buildTimeout:  orDefault(cfg.BuildTimeout, 120*time.Second),
		deployTimeout: orDefault(cfg.DeployTimeout, 600*time.Second),
		broadcasts:    broadcast.NewParser(cfg.BroadcastDir()),
		log:           log.With("component", "ForgeAdapter"),
	}
}

// Build runs forge build. A failing build is reported through the exit code.
func (f *ForgeAdapter) Build(ctx context.Context) (*domain.CommandOutput, error) {
	f.log.Debug("running forge build", "dir", f.projectRoot)
	out, err := f.run(ctx, execx.Command{Args: []string{"build"}, Timeout: f.buildTimeout})
	if err != nil {
		return nil, err
	}
	if !out.Success() {
		f.log.Error("forge build failed", "code", out.ExitCode, "duration", out.Duration)
	} else {
		f.log.Debug("forge build completed", "duration", out.Duration)
	}
	return out, nil
}

// RunScript broadcasts the deploy script against an RPC endpoint
func (f *ForgeAdapter) RunScript(ctx context.Context, run domain.ScriptRun) (*domain.CommandOutput, error) {
	if run.RPCURL == "" || run.Credential == nil {
		return nil, fmt.Errorf("script %s: %w", run.Script, domain.ErrMissingEndpoint)
	}
	script := run.Script
	if !filepath.IsAbs(script) {
		script = filepath.Join(f.projectRoot, script)
	}
	if _, err := os.Stat(script); err != nil {
		return nil, fmt.Errorf("deploy script %s: %w", run.Script, domain.ErrNotFound)
	}
	env, err := f.buildEnv(run)
	if err != nil {
		return nil, err
	}

	f.log.Debug("running forge script", "script", run.Script, "rpc", run.RPCURL, "key", run.Credential.String())
	out, err := f.run(ctx, execx.Command{Args: f.buildArgs(run), Env: env, Timeout: f.deployTimeout})
	if err != nil {
		return nil, err
	}
	// the key is on the command line; never echo it back
	out.Command = strings.ReplaceAll(out.Command, run.Credential.Reveal(), run.Credential.String())
	return out, nil
}

// LoadBroadcast reads the run-latest artifact of a script on a chain
func (f *ForgeAdapter) LoadBroadcast(_ context.Context, script string, chainID uint64) (*domain.BroadcastFile, string, error) {
	return f.broadcasts.ParseLatestBroadcast(script, chainID)
}

// buildArgs builds the forge script command arguments
func (f *ForgeAdapter) buildArgs(run domain.ScriptRun) []string {
	args := []string{
		"script", run.Script,
		"--rpc-url", run.RPCURL,
		"--private-key", run.Credential.Reveal(),
		"--broadcast",
		"-vv",
	}
	return append(args, run.ExtraArgs...)
}

// buildEnv exposes the signing key to the script as a decimal integer, which is what
// vm.envUint expects
func (f *ForgeAdapter) buildEnv(run domain.ScriptRun) ([]string, error) {
	key, ok := new(big.Int).SetString(strings.TrimPrefix(run.Credential.Reveal(), "0x"), 16)
	if !ok {
		return nil, fmt.Errorf("script %s: %w", run.Script, domain.ErrInvalidPrivateKey)
	}
	return []string{"PRIVATE_KEY=" + key.String()}, nil
}

func (f *ForgeAdapter) run(ctx context.Context, cmd execx.Command) (*domain.CommandOutput, error) {
	cmd.Name = f.bin
	cmd.Dir = f.projectRoot
	res, err := f.runner.Run(ctx, cmd)
	if err != nil {
		if errors.Is(err, domain.ErrToolUnavailable) || errors.Is(err, domain.ErrTimeout) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to run %s %s: %w", f.bin, cmd.Args[0], err)
	}
	return &domain.CommandOutput{
		Command:  f.bin + " " + strings.Join(cmd.Args, " "),
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		ExitCode: res.ExitCode,
		Duration: res.Duration,
	}, nil
}

// artifactPaths lists where a compiled artifact may live, most specific layout first
func (f *ForgeAdapter) artifactPaths(name string) []string {
	return []string{
		filepath.Join(f.outDir, name, name+".sol", name+".json"),
		filepath.Join(f.outDir, name+".sol", name+".json"),
		filepath.Join(f.outDir, name, name+".json"),
	}
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

var _ usecase.ContractToolchain = (*ForgeAdapter)(nil)
