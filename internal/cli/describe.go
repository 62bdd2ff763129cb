package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/subnetctl/internal/cli/render"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// NewDescribeCmd creates the describe command
func NewDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [subnet]",
		Short: "Describe a subnet's blockchain",
		Long: `Show what the Avalanche CLI knows about a subnet: VM, networks, RPC endpoints,
ICM contracts, token, initial allocation, precompiles and nodes.

Falls back to the legacy subnet describe output on older Avalanche CLI versions.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			subnet, err := subnetArg(cmd, app, args)
			if err != nil {
				return err
			}

			result, err := app.DescribeSubnet.Run(cmd.Context(), usecase.DescribeSubnetParams{SubnetName: subnet})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return render.Output(out, app.Config.Output, render.NewDescribeRenderer(out), result)
		},
	}

	addSelectFlag(cmd)

	return cmd
}
