package usecase

import (
	"context"

	"github.com/trebuchet-org/subnetctl/internal/domain"
)

// DetectToolsParams contains parameters for probing the external CLIs
type DetectToolsParams struct {
	// Refresh discards cached probe results first
	Refresh bool
	// Commands also discovers the network CLI's command tree
	Commands bool
}

// DetectToolsResult contains the probed tools and, when requested, the discovered commands
type DetectToolsResult struct {
	Tools       []domain.ToolStatus `json:"tools" yaml:"tools"`
	Commands    []string            `json:"commands,omitempty" yaml:"commands,omitempty"`
	CommandTree domain.CommandTree  `json:"commandTree,omitempty" yaml:"commandTree,omitempty"`
}

// DetectTools reports which external CLIs are installed
type DetectTools struct {
	detector ToolDetector
}

// NewDetectTools creates a new DetectTools use case
func NewDetectTools(detector ToolDetector) *DetectTools {
	return &DetectTools{detector: detector}
}

// Run executes the detection
func (uc *DetectTools) Run(ctx context.Context, params DetectToolsParams) (*DetectToolsResult, error) {
	if params.Refresh {
		uc.detector.Refresh()
	}

	result := &DetectToolsResult{Tools: uc.detector.DetectAll(ctx)}
	if params.Commands && uc.detector.Available(ctx, domain.ToolNetworkCLI) {
		result.Commands = uc.detector.DiscoverCommands(ctx, domain.ToolNetworkCLI)
		result.CommandTree = uc.detector.CommandTree(ctx, domain.ToolNetworkCLI)
	}
	return result, ctx.Err()
}
