package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/subnetctl/internal/cli/render"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// NewToolsCmd creates the tools command
func NewToolsCmd() *cobra.Command {
	var params usecase.DetectToolsParams

	cmd := &cobra.Command{
		Use:          "tools",
		Short:        "Check the external tools subnetctl drives",
		Long:         `Check whether the avalanche and forge binaries are installed and report their versions.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.DetectTools.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return render.Output(out, app.Config.Output, render.NewToolsRenderer(out), result)
		},
	}

	cmd.Flags().BoolVar(&params.Refresh, "refresh", false, "Probe again instead of using cached results")
	cmd.Flags().BoolVar(&params.Commands, "commands", false, "List the avalanche CLI's commands and subcommands")

	return cmd
}
