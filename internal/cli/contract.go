package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/subnetctl/internal/cli/render"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// NewContractCmd creates the contract command
func NewContractCmd() *cobra.Command {
	var checkLive bool

	cmd := &cobra.Command{
		Use:   "contract <subnet> <name>",
		Short: "Look up a deployed contract's address",
		Long: `Look up where a contract was deployed on a subnet.

The address comes from the first source that has it:
  1. the <NAME>_ADDRESS environment variable
  2. the subnet workspace written by deploy
  3. the legacy single-subnet deployment file

With --check the subnet's RPC is asked whether code exists at the address.`,
		Example: `  subnetctl contract orion NFT
  subnetctl contract orion marketplace --check`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			lookup, err := app.ResolveContract.Run(cmd.Context(), usecase.ResolveContractParams{
				SubnetName: args[0],
				Name:       args[1],
				CheckLive:  checkLive,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return render.Output(out, app.Config.Output, render.NewContractRenderer(out), lookup)
		},
	}

	cmd.Flags().BoolVar(&checkLive, "check", false, "Verify that code is deployed at the address")

	return cmd
}
