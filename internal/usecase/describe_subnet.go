package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/subnetctl/internal/domain"
)

// DescribeSubnetParams contains parameters for describing a subnet
type DescribeSubnetParams struct {
	SubnetName string
}

// DescribeSubnetResult combines the network CLI's description with the resolved endpoint
type DescribeSubnetResult struct {
	Description *domain.SubnetDescription `json:"description" yaml:"description"`
	Endpoint    *domain.EndpointConfig    `json:"endpoint" yaml:"endpoint"`
	Address     string                    `json:"address,omitempty" yaml:"address,omitempty"`
}

// DescribeSubnet is the "subnet info" workflow
type DescribeSubnet struct {
	cli      NetworkCLI
	tools    ToolDetector
	resolver *ResolveEndpoint
}

// NewDescribeSubnet creates a new DescribeSubnet use case
func NewDescribeSubnet(cli NetworkCLI, tools ToolDetector, resolver *ResolveEndpoint) *DescribeSubnet {
	return &DescribeSubnet{cli: cli, tools: tools, resolver: resolver}
}

// Run describes the subnet. The network CLI must be installed.
func (uc *DescribeSubnet) Run(ctx context.Context, params DescribeSubnetParams) (*DescribeSubnetResult, error) {
	subnet := uc.resolver.SubnetName(params.SubnetName)
	if !uc.tools.Available(ctx, domain.ToolNetworkCLI) {
		return nil, fmt.Errorf("%s CLI is required to describe %s: %w", domain.ToolNetworkCLI, subnet, domain.ErrToolUnavailable)
	}

	resolved, err := uc.resolver.Run(ctx, ResolveEndpointParams{SubnetName: subnet})
	if err != nil {
		return nil, err
	}

	if resolved.DescribeErr != nil {
		return nil, fmt.Errorf("failed to describe subnet %s: %w", subnet, resolved.DescribeErr)
	}
	desc := resolved.Description
	if desc == nil {
		// The resolver only describes when earlier sources missed
		desc, err = uc.cli.Describe(ctx, subnet)
		if err != nil {
			return nil, fmt.Errorf("failed to describe subnet %s: %w", subnet, err)
		}
	}

	return &DescribeSubnetResult{
		Description: desc,
		Endpoint:    resolved.Endpoint,
		Address:     resolved.Address,
	}, nil
}
