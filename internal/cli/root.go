package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/subnetctl/internal/app"
	"github.com/trebuchet-org/subnetctl/internal/cli/render"
	"github.com/trebuchet-org/subnetctl/internal/config"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	domainconfig "github.com/trebuchet-org/subnetctl/internal/domain/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "subnetctl",
		Short: "Endpoint discovery and contract deployment for Avalanche subnets",
		Long: `subnetctl finds the RPC endpoint and signing key of a local Avalanche subnet,
deploys the project's Foundry contracts to it and records where they landed.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if skipAppInit(cmd) {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)
			bindGlobalFlags(v, cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts and spinners")
	rootCmd.PersistentFlags().String("subnet", "", "Default subnet when none is given as an argument")
	rootCmd.PersistentFlags().StringP("output", "o", string(domainconfig.OutputTable), "Output format: table, json or yaml")
	rootCmd.PersistentFlags().Bool("json", false, "Shorthand for --output json")
	rootCmd.PersistentFlags().Bool("yaml", false, "Shorthand for --output yaml")
	rootCmd.PersistentFlags().String("avalanche-home", "", "Avalanche CLI data directory (defaults to ~/.avalanche-cli)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Overall timeout for the command (0 disables)")
	rootCmd.PersistentFlags().String("metrics-textfile", "", "Write Prometheus metrics to this file when the command finishes")
	rootCmd.MarkFlagsMutuallyExclusive("json", "yaml")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "network",
		Title: "Network Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	for _, cmd := range []*cobra.Command{
		NewEndpointCmd(),
		NewDeployCmd(),
		NewContractCmd(),
		NewDescribeCmd(),
	} {
		cmd.GroupID = "main"
		rootCmd.AddCommand(cmd)
	}

	// Network commands
	for _, cmd := range []*cobra.Command{
		NewStatusCmd(),
		NewSubnetsCmd(),
		NewKeysCmd(),
		NewNetworkCmd(),
		NewPrimaryCmd(),
	} {
		cmd.GroupID = "network"
		rootCmd.AddCommand(cmd)
	}

	// Management commands
	for _, cmd := range []*cobra.Command{
		NewToolsCmd(),
		NewConfigCmd(),
	} {
		cmd.GroupID = "management"
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	rootCmd := NewRootCmd()
	cmd, err := rootCmd.ExecuteC()

	if a, ok := appFrom(cmd); ok {
		if werr := writeMetrics(a); werr != nil {
			fmt.Fprintln(os.Stderr, render.FormatWarning(werr.Error()))
		}
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, render.FormatError(err.Error()))
		return exitCode(err)
	}
	return 0
}

// skipAppInit reports whether cmd runs without project configuration
func skipAppInit(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return false
}

// bindGlobalFlags folds the output shorthands into the output key
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	if f := cmd.Flag("json"); f != nil && f.Changed && f.Value.String() == "true" {
		v.Set("output", string(domainconfig.OutputJSON))
	}
	if f := cmd.Flag("yaml"); f != nil && f.Changed && f.Value.String() == "true" {
		v.Set("output", string(domainconfig.OutputYAML))
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	a, ok := appFrom(cmd)
	if !ok {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}

func appFrom(cmd *cobra.Command) (*app.App, bool) {
	if cmd == nil || cmd.Context() == nil {
		return nil, false
	}
	a, ok := cmd.Context().Value(appKey).(*app.App)
	return a, ok && a != nil
}

func writeMetrics(a *app.App) error {
	if a.Config.MetricsTextfile == "" {
		return nil
	}
	if err := a.Metrics.WriteTextfile(a.Config.MetricsTextfile); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}

// exitCode maps an error to a process exit code. A failed toolchain stage exits with the
// toolchain's own status.
func exitCode(err error) int {
	var deployErr *domain.DeployError
	if errors.As(err, &deployErr) && deployErr.ExitCode > 0 {
		return deployErr.ExitCode
	}
	return 1
}
