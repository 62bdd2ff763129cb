package avalanche

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/trebuchet-org/subnetctl/internal/adapters/execx"
	"github.com/trebuchet-org/subnetctl/internal/adapters/parser"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/domain/config"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

const (
	statusTimeout     = 10 * time.Second
	keyListTimeout    = 10 * time.Second
	listTimeout       = 10 * time.Second
	networkRunTimeout = 30 * time.Second

	// DescribeBlockchain and DescribeSubnet name the command a SubnetDescription came from
	DescribeBlockchain = "blockchain describe"
	DescribeSubnet     = "subnet describe"
)

// CLI drives the network-management CLI non-interactively
type CLI struct {
	runner          execx.CommandRunner
	bin             string
	describeTimeout time.Duration
	log             *slog.Logger
}

// NewCLI creates a new network CLI adapter
func NewCLI(runner execx.CommandRunner, cfg *config.RuntimeConfig, log *slog.Logger) *CLI {
	bin := cfg.AvalancheBin
	if bin == "" {
		bin = string(domain.ToolNetworkCLI)
	}
	timeout := cfg.DescribeTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &CLI{
		runner:          runner,
		bin:             bin,
		describeTimeout: timeout,
		log:             log.With("component", "NetworkCLI"),
	}
}

// Describe runs "blockchain describe", falling back to the legacy "subnet describe" when the
// first exits non-zero. A missing binary or an expired deadline is returned without fallback.
func (c *CLI) Describe(ctx context.Context, subnet string) (*domain.SubnetDescription, error) {
	res, err := c.run(ctx, c.describeTimeout, "blockchain", "describe", subnet)
	if err != nil {
		return nil, err
	}
	if res.Success() {
		rec := parser.ParseBlockchainDescribe(res.Stdout)
		return &domain.SubnetDescription{
			SubnetName: subnet,
			Command:    DescribeBlockchain,
			Blockchain: rec,
			RPCURL:     parser.PreferredRPCURL(rec),
			KeyToken:   keyToken(res.Stdout),
		}, nil
	}
	c.log.Debug("blockchain describe failed, trying subnet describe", "subnet", subnet, "code", res.ExitCode)

	res, err = c.run(ctx, c.describeTimeout, "subnet", "describe", subnet)
	if err != nil {
		return nil, err
	}
	if !res.Success() {
		return nil, fmt.Errorf("subnet %s: %w: %s", subnet, domain.ErrNotFound, exitDetail(res))
	}
	rec := parser.ParseSubnetDescribe(res.Stdout)
	return &domain.SubnetDescription{
		SubnetName: subnet,
		Command:    DescribeSubnet,
		Subnet:     rec,
		RPCURL:     parser.PreferredSubnetRPCURL(rec),
		KeyToken:   keyToken(res.Stdout),
	}, nil
}

// NetworkStatus runs "network status". A non-zero exit means no local network is running and
// yields a status with IsUp false.
func (c *CLI) NetworkStatus(ctx context.Context) (*domain.NetworkStatus, error) {
	res, err := c.run(ctx, statusTimeout, "network", "status")
	if err != nil {
		return nil, err
	}
	if !res.Success() {
		c.log.Debug("network status exited non-zero", "code", res.ExitCode, "stderr", strings.TrimSpace(res.Stderr))
		return domain.NewNetworkStatus(), nil
	}
	return parser.ParseNetworkStatus(res.Stdout), nil
}

// ListSubnets runs "subnet list"
func (c *CLI) ListSubnets(ctx context.Context) ([]domain.SubnetSummary, error) {
	res, err := c.run(ctx, listTimeout, "subnet", "list")
	if err != nil {
		return nil, err
	}
	if !res.Success() {
		return nil, fmt.Errorf("subnet list: %s", exitDetail(res))
	}
	return parser.ParseSubnetList(res.Stdout), nil
}

// KeyList runs "key list", scoped to a network when one is given
func (c *CLI) KeyList(ctx context.Context, network string) (*domain.CommandOutput, error) {
	args := []string{"key", "list"}
	if network != "" {
		args = append(args, "--network", network)
	}
	return c.passthrough(ctx, keyListTimeout, args...)
}

// RunNetwork runs "network run <name>" with extra arguments
func (c *CLI) RunNetwork(ctx context.Context, name string, extra []string) (*domain.CommandOutput, error) {
	args := []string{"network", "run"}
	if name != "" {
		args = append(args, name)
	}
	return c.passthrough(ctx, networkRunTimeout, append(args, extra...)...)
}

// PrimaryDescribe runs "primary describe" against a cluster, or the local network by default
func (c *CLI) PrimaryDescribe(ctx context.Context, cluster string) (*domain.CommandOutput, error) {
	args := []string{"primary", "describe", "--local"}
	if cluster != "" {
		args = []string{"primary", "describe", "--cluster", cluster}
	}
	return c.passthrough(ctx, statusTimeout, args...)
}

func (c *CLI) passthrough(ctx context.Context, timeout time.Duration, args ...string) (*domain.CommandOutput, error) {
	res, err := c.run(ctx, timeout, args...)
	if err != nil {
		return nil, err
	}
	return &domain.CommandOutput{
		Command:  c.bin + " " + strings.Join(args, " "),
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		ExitCode: res.ExitCode,
		Duration: res.Duration,
	}, nil
}

func (c *CLI) run(ctx context.Context, timeout time.Duration, args ...string) (*execx.Result, error) {
	res, err := c.runner.Run(ctx, execx.Command{Name: c.bin, Args: args, Timeout: timeout})
	if err != nil {
		if errors.Is(err, domain.ErrToolUnavailable) || errors.Is(err, domain.ErrTimeout) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to run %s %s: %w", c.bin, strings.Join(args, " "), err)
	}
	return res, nil
}

func keyToken(output string) string {
	token, _ := parser.FindKeyToken(output)
	return token
}

func exitDetail(res *execx.Result) string {
	if stderr := strings.TrimSpace(res.Stderr); stderr != "" {
		return fmt.Sprintf("exit code %d: %s", res.ExitCode, stderr)
	}
	return fmt.Sprintf("exit code %d", res.ExitCode)
}

var _ usecase.NetworkCLI = (*CLI)(nil)
