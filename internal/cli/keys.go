package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/subnetctl/internal/cli/render"
)

// NewKeysCmd creates the keys command
func NewKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List Avalanche CLI keys and the accounts they sign for",
		Long: `List the keys in the Avalanche CLI key store with the EVM address each one signs for.
Key material is never printed.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			keys, err := app.ListKeys.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return render.Output(out, app.Config.Output, render.NewKeysRenderer(out), keys)
		},
	}
}
