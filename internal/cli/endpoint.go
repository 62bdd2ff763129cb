package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/subnetctl/internal/cli/render"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// NewEndpointCmd creates the endpoint command
func NewEndpointCmd() *cobra.Command {
	var rpcURL, privateKey string

	cmd := &cobra.Command{
		Use:   "endpoint [subnet]",
		Short: "Resolve the RPC URL and signing key of a subnet",
		Long: `Resolve the RPC URL and signing key of a subnet.

Each value is taken from the first source that has it:
  1. --rpc-url / --private-key
  2. AVALANCHE_RPC or VITE_AVALANCHE_RPC, PRIVATE_KEY or ADMIN_PRIVATE_KEY
  3. the subnet's files under the Avalanche CLI home
  4. the Avalanche CLI key store (private key only)
  5. avalanche blockchain describe

The private key is never printed.`,
		Example: `  # Resolve the default subnet
  subnetctl endpoint

  # Resolve a named subnet as JSON
  subnetctl endpoint orion --json`,
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

			result, err := app.ResolveEndpoint.Run(cmd.Context(), usecase.ResolveEndpointParams{
				SubnetName: subnet,
				RPCURL:     rpcURL,
				PrivateKey: privateKey,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return render.Output(out, app.Config.Output, render.NewEndpointRenderer(out), result)
		},
	}

	cmd.Flags().StringVar(&rpcURL, "rpc-url", "", "RPC URL override")
	cmd.Flags().StringVar(&privateKey, "private-key", "", "Private key override")
	addSelectFlag(cmd)

	return cmd
}
