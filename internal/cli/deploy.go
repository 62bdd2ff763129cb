package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/subnetctl/internal/cli/render"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var params usecase.DeployContractsParams

	cmd := &cobra.Command{
		Use:   "deploy [subnet] [-- forge-args...]",
		Short: "Build and deploy the project's contracts to a subnet",
		Long: `Build the Foundry project, export ABI descriptors for the known contracts, run the deploy
script against the subnet and record the deployed addresses in the subnet workspace.

Addresses come from the script's broadcast artifact, with the script's console output as a
fallback. Arguments after -- are passed to forge script unchanged.`,
		Example: `  # Deploy to the default subnet
  subnetctl deploy

  # Deploy to a named subnet with a different script
  subnetctl deploy orion --script scripts/deploy_core.s.sol

  # Pass extra flags to forge
  subnetctl deploy orion -- --slow --legacy`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			positional := args
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				positional = args[:dash]
				params.ExtraArgs = args[dash:]
			}
			if err := cobra.MaximumNArgs(1)(cmd, positional); err != nil {
				return err
			}

			subnet, err := subnetArg(cmd, app, positional)
			if err != nil {
				return err
			}
			params.SubnetName = subnet

			result, err := app.DeployContracts.Run(cmd.Context(), params)
			if err != nil {
				var deployErr *domain.DeployError
				if errors.As(err, &deployErr) {
					render.NewDeployRenderer(cmd.ErrOrStderr()).RenderFailure(deployErr)
				}
				return err
			}

			out := cmd.OutOrStdout()
			return render.Output(out, app.Config.Output, render.NewDeployRenderer(out), result)
		},
	}

	cmd.Flags().StringVar(&params.RPCURL, "rpc-url", "", "RPC URL override")
	cmd.Flags().StringVar(&params.PrivateKey, "private-key", "", "Private key override")
	cmd.Flags().StringVar(&params.Script, "script", "", "Deploy script (defaults to deploy_script from config)")
	cmd.Flags().BoolVar(&params.SkipABI, "skip-abi", false, "Do not export ABI descriptors")
	addSelectFlag(cmd)

	return cmd
}
