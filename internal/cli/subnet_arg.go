package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/subnetctl/internal/app"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

func addSelectFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("select", false, "Pick the subnet interactively")
}

// subnetArg returns the subnet named on the command line. With --select the user picks one of the
// known subnets; an empty result lets the resolver fall back to the configured default.
func subnetArg(cmd *cobra.Command, a *app.App, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if selectFlag, _ := cmd.Flags().GetBool("select"); !selectFlag {
		return "", nil
	}

	listed, err := a.ListSubnets.Run(cmd.Context(), usecase.ListSubnetsParams{})
	if err != nil {
		return "", err
	}
	if len(listed.Subnets) == 0 {
		return "", fmt.Errorf("no subnets to select from: %w", domain.ErrNotFound)
	}
	return a.Selector.SelectSubnet(cmd.Context(), listed.Subnets, "Select a subnet")
}
