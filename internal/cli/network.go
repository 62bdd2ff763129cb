package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/subnetctl/internal/cli/render"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// NewNetworkCmd creates the network command
func NewNetworkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Pass commands through to the Avalanche CLI",
	}

	cmd.AddCommand(newNetworkRunCmd())
	cmd.AddCommand(newNetworkKeysCmd())

	return cmd
}

func newNetworkRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [name] [-- args...]",
		Short: "Run avalanche network run",
		Example: `  subnetctl network run
  subnetctl network run snapshot -- --avalanchego-version latest`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			positional, extra := args, []string(nil)
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				positional, extra = args[:dash], args[dash:]
			}
			if err := cobra.MaximumNArgs(1)(cmd, positional); err != nil {
				return err
			}
			params := usecase.NetworkPassthroughParams{Kind: usecase.PassthroughNetworkRun, Args: extra}
			if len(positional) > 0 {
				params.Target = positional[0]
			}
			return runPassthrough(cmd, params)
		},
	}
}

func newNetworkKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "keys [network]",
		Short:        "Run avalanche key list",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := usecase.NetworkPassthroughParams{Kind: usecase.PassthroughKeyList}
			if len(args) > 0 {
				params.Target = args[0]
			}
			return runPassthrough(cmd, params)
		},
	}
}

// NewPrimaryCmd creates the primary command
func NewPrimaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "primary",
		Short: "Inspect the primary network",
	}

	var cluster string
	describe := &cobra.Command{
		Use:          "describe",
		Short:        "Run avalanche primary describe against the local network or a cluster",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPassthrough(cmd, usecase.NetworkPassthroughParams{
				Kind:   usecase.PassthroughPrimaryDescribe,
				Target: cluster,
			})
		},
	}
	describe.Flags().StringVar(&cluster, "cluster", "", "Cluster to describe instead of the local network")
	cmd.AddCommand(describe)

	return cmd
}

func runPassthrough(cmd *cobra.Command, params usecase.NetworkPassthroughParams) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	output, err := app.NetworkPassthrough.Run(cmd.Context(), params)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return render.Output(out, app.Config.Output, render.NewCommandRenderer(out, cmd.ErrOrStderr()), output)
}
