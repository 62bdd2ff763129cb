package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/subnetctl/internal/cli/render"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// NewSubnetsCmd creates the subnets command
func NewSubnetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "subnets [name]",
		Aliases: []string{"ls"},
		Short:   "List configured and running subnets",
		Long: `List the subnets configured under the Avalanche CLI home together with those the
running local network reports. With a name, show only that subnet or suggest close matches.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListSubnetsParams{}
			if len(args) > 0 {
				params.Query = args[0]
			}

			out := cmd.OutOrStdout()
			renderer := render.NewSubnetsRenderer(out)

			result, err := app.ListSubnets.Run(cmd.Context(), params)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) && result != nil {
					render.NewSubnetsRenderer(cmd.ErrOrStderr()).RenderSuggestions(params.Query, result.Suggestions)
				}
				return err
			}

			return render.Output(out, app.Config.Output, renderer, result)
		},
	}
}
