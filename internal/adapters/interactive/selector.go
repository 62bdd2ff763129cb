package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/domain/config"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
	run    func(*promptui.Select) (int, string, error)
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{
		config: cfg,
		run:    func(s *promptui.Select) (int, string, error) { return s.Run() },
	}
}

// SelectSubnet asks the user to pick one of subnets. A single candidate is returned without asking.
func (s *SelectorAdapter) SelectSubnet(_ context.Context, subnets []domain.SubnetSummary, prompt string) (string, error) {
	if len(subnets) == 0 {
		return "", fmt.Errorf("no subnets provided for selection")
	}
	if len(subnets) == 1 {
		return subnets[0].Name, nil
	}
	if s.config.NonInteractive {
		return "", fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	options := formatSubnetOptions(subnets)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, type to filter, Enter to select"),
	}

	promptSelect := &promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(subnetNames(subnets)),
	}

	index, _, err := s.run(promptSelect)
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}
	return subnets[index].Name, nil
}

// formatSubnetOptions renders "name (status)" with the status colored by state
func formatSubnetOptions(subnets []domain.SubnetSummary) []string {
	options := make([]string, len(subnets))
	for i, subnet := range subnets {
		name := color.New(color.FgWhite, color.Bold).Sprint(subnet.Name)
		statusColor := color.New(color.FgBlue)
		if subnet.Status == domain.SubnetStatusRunning {
			statusColor = color.New(color.FgGreen)
		}
		options[i] = fmt.Sprintf("%s (%s)", name, statusColor.Sprint(subnet.Status))
	}
	return options
}

func subnetNames(subnets []domain.SubnetSummary) []string {
	names := make([]string, len(subnets))
	for i, s := range subnets {
		names[i] = s.Name
	}
	return names
}

// createFuzzySearchFunc creates a fuzzy search function for promptui over the plain item names
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

var _ usecase.SubnetSelector = (*SelectorAdapter)(nil)
