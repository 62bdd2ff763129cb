package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/subnetctl/internal/domain"
)

// PassthroughKind selects which network CLI command is forwarded
type PassthroughKind string

const (
	PassthroughKeyList         PassthroughKind = "key-list"
	PassthroughNetworkRun      PassthroughKind = "network-run"
	PassthroughPrimaryDescribe PassthroughKind = "primary-describe"
)

// NetworkPassthroughParams contains parameters for a forwarded network CLI command
type NetworkPassthroughParams struct {
	Kind PassthroughKind
	// Target is the network for key list, the snapshot name for network run (optional) and the cluster for
	// primary describe
	Target string
	Args   []string
}

// NetworkPassthrough forwards commands to the network CLI and returns their raw output
type NetworkPassthrough struct {
	cli   NetworkCLI
	tools ToolDetector
}

// NewNetworkPassthrough creates a new NetworkPassthrough use case
func NewNetworkPassthrough(cli NetworkCLI, tools ToolDetector) *NetworkPassthrough {
	return &NetworkPassthrough{cli: cli, tools: tools}
}

// Run executes the forwarded command. A non-zero exit is reported in the output, not as an error.
func (uc *NetworkPassthrough) Run(ctx context.Context, params NetworkPassthroughParams) (*domain.CommandOutput, error) {
	if !uc.tools.Available(ctx, domain.ToolNetworkCLI) {
		return nil, fmt.Errorf("%s CLI is not installed: %w", domain.ToolNetworkCLI, domain.ErrToolUnavailable)
	}

	switch params.Kind {
	case PassthroughKeyList:
		return uc.cli.KeyList(ctx, params.Target)
	case PassthroughNetworkRun:
		return uc.cli.RunNetwork(ctx, params.Target, params.Args)
	case PassthroughPrimaryDescribe:
		return uc.cli.PrimaryDescribe(ctx, params.Target)
	default:
		return nil, fmt.Errorf("unknown passthrough command: %s", params.Kind)
	}
}
