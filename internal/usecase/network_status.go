package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/subnetctl/internal/domain"
)

// GetNetworkStatus reports the local network's state
type GetNetworkStatus struct {
	cli   NetworkCLI
	tools ToolDetector
}

// NewGetNetworkStatus creates a new GetNetworkStatus use case
func NewGetNetworkStatus(cli NetworkCLI, tools ToolDetector) *GetNetworkStatus {
	return &GetNetworkStatus{cli: cli, tools: tools}
}

// Run executes the status query
func (uc *GetNetworkStatus) Run(ctx context.Context) (*domain.NetworkStatus, error) {
	if !uc.tools.Available(ctx, domain.ToolNetworkCLI) {
		return nil, fmt.Errorf("%s CLI is required for network status: %w", domain.ToolNetworkCLI, domain.ErrToolUnavailable)
	}
	status, err := uc.cli.NetworkStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get network status: %w", err)
	}
	return status, nil
}
