package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/subnetctl/internal/domain"
)

// ListSubnetsParams contains parameters for listing subnets
type ListSubnetsParams struct {
	// Query narrows the listing to one subnet; unknown names produce suggestions
	Query string
}

// ListSubnetsResult contains the known subnets
type ListSubnetsResult struct {
	Subnets     []domain.SubnetSummary `json:"subnets" yaml:"subnets"`
	Suggestions []string               `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// ListSubnets merges configured subnets from disk with the network CLI's listing
type ListSubnets struct {
	subnetConfig SubnetConfigSource
	cli          NetworkCLI
	tools        ToolDetector
	log          *slog.Logger
}

// NewListSubnets creates a new ListSubnets use case
func NewListSubnets(subnetConfig SubnetConfigSource, cli NetworkCLI, tools ToolDetector, log *slog.Logger) *ListSubnets {
	return &ListSubnets{
		subnetConfig: subnetConfig,
		cli:          cli,
		tools:        tools,
		log:          log.With("component", "ListSubnets"),
	}
}

// Run lists subnets sorted by name
func (uc *ListSubnets) Run(ctx context.Context, params ListSubnetsParams) (*ListSubnetsResult, error) {
	byName := map[string]string{}

	configured, err := uc.subnetConfig.ConfiguredSubnets(ctx)
	if err != nil {
		uc.log.Debug("failed to scan configured subnets", "error", err)
	}
	for _, name := range configured {
		byName[name] = domain.SubnetStatusConfigured
	}

	if uc.tools.Available(ctx, domain.ToolNetworkCLI) {
		listed, err := uc.cli.ListSubnets(ctx)
		if err != nil {
			uc.log.Debug("subnet list failed", "error", err)
		}
		for _, s := range listed {
			status := s.Status
			if status == "" {
				status = domain.SubnetStatusConfigured
			}
			// A running report beats the on-disk configured state
			if byName[s.Name] != domain.SubnetStatusRunning {
				byName[s.Name] = status
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	subnets := lo.MapToSlice(byName, func(name, status string) domain.SubnetSummary {
		return domain.SubnetSummary{Name: name, Status: status}
	})
	sort.Slice(subnets, func(i, j int) bool { return subnets[i].Name < subnets[j].Name })

	if params.Query == "" {
		return &ListSubnetsResult{Subnets: subnets}, nil
	}

	if match, ok := lo.Find(subnets, func(s domain.SubnetSummary) bool { return s.Name == params.Query }); ok {
		return &ListSubnetsResult{Subnets: []domain.SubnetSummary{match}}, nil
	}

	names := lo.Map(subnets, func(s domain.SubnetSummary, _ int) string { return s.Name })
	suggestions := SuggestNames(params.Query, names)
	return &ListSubnetsResult{Subnets: []domain.SubnetSummary{}, Suggestions: suggestions},
		fmt.Errorf("subnet %q: %w", params.Query, domain.ErrNotFound)
}

// SuggestNames returns the candidates that fuzzily match query, best match first
func SuggestNames(query string, candidates []string) []string {
	matches := fuzzy.Find(query, candidates)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}
