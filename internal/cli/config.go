package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/subnetctl/internal/cli/render"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage subnetctl local config",
		Long: `Manage subnetctl local config stored in .subnetctl/config.local.json

The config defines defaults used when flags are not given explicitly.

Available subcommands:
  config           Show current config
  config set       Set a config value
  config remove    Remove a config value

When run without subcommands, displays the current config.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd)
		},
	}

	cmd.AddCommand(NewConfigSetCmd())
	cmd.AddCommand(NewConfigRemoveCmd())

	return cmd
}

// NewConfigSetCmd creates the config set subcommand
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Long: `Set a config value in .subnetctl/config.local.json.
Available keys: subnet (net), avalanche-home, deploy-script

Examples:
  subnetctl config set subnet orion
  subnetctl config set deploy-script scripts/deploy_core.s.sol`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.SetConfig.Run(cmd.Context(), usecase.SetConfigParams{
				Key:   args[0],
				Value: args[1],
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if done, err := render.Structured(out, app.Config.Output, result); done || err != nil {
				return err
			}
			return render.NewConfigRenderer(out).RenderSet(result)
		},
	}
}

// NewConfigRemoveCmd creates the config remove subcommand
func NewConfigRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <key>",
		Short: "Remove a config value",
		Long: `Remove a config value from .subnetctl/config.local.json.
Removing subnet makes commands fall back to AVALANCHE_SUBNET_NAME or the default subnet.

Examples:
  subnetctl config remove subnet
  subnetctl config remove deploy-script`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.RemoveConfig.Run(cmd.Context(), usecase.RemoveConfigParams{Key: args[0]})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if done, err := render.Structured(out, app.Config.Output, result); done || err != nil {
				return err
			}
			return render.NewConfigRenderer(out).RenderRemove(result)
		},
	}
}

// showConfig displays the current configuration
func showConfig(cmd *cobra.Command) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.ShowConfig.Run(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return render.Output(out, app.Config.Output, render.NewConfigRenderer(out), result)
}
