package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/domain/config"
)

const (
	// EnvPrefix prefixes every environment variable read through viper
	EnvPrefix = "SUBNETCTL"
	// DataDirName is the project-local state directory
	DataDirName = ".subnetctl"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	output := config.OutputFormat(strings.ToLower(v.GetString("output")))
	switch output {
	case config.OutputTable, config.OutputJSON, config.OutputYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q (want table, json or yaml)", output)
	}

	avalancheHome, err := resolveAvalancheHome(v.GetString("avalanche_home"))
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:     projectRoot,
		DataDir:         filepath.Join(projectRoot, DataDirName),
		SubnetName:      v.GetString("subnet"),
		Debug:           v.GetBool("debug"),
		NonInteractive:  v.GetBool("non_interactive"),
		Output:          output,
		Timeout:         v.GetDuration("timeout"),
		AvalancheBin:    v.GetString("avalanche_bin"),
		ForgeBin:        v.GetString("forge_bin"),
		AvalancheHome:   avalancheHome,
		LocalNodeURL:    v.GetString("local_node_url"),
		ProbeTimeout:    v.GetDuration("probe_timeout"),
		DescribeTimeout: v.GetDuration("describe_timeout"),
		BuildTimeout:    v.GetDuration("build_timeout"),
		DeployTimeout:   v.GetDuration("deploy_timeout"),
		DeployScript:    v.GetString("deploy_script"),
		DeploymentsDir:  projectPath(projectRoot, v.GetString("deployments_dir")),
		ABIDir:          projectPath(projectRoot, v.GetString("abi_dir")),
		MetricsTextfile: v.GetString("metrics_textfile"),
	}

	foundryConfig, err := loadFoundryConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundry config: %w", err)
	}
	cfg.FoundryConfig = foundryConfig

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find foundry.toml. Outside a Foundry
// project the current directory is used, so commands that never touch contracts still work.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, "foundry.toml")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	// Set up environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("project_root", projectRoot)
	v.SetDefault("subnet", "")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("output", string(config.OutputTable))
	v.SetDefault("timeout", "0s")
	v.SetDefault("avalanche_bin", string(domain.ToolNetworkCLI))
	v.SetDefault("forge_bin", string(domain.ToolContractCLI))
	v.SetDefault("avalanche_home", "")
	v.SetDefault("local_node_url", config.DefaultLocalNodeURL)
	v.SetDefault("probe_timeout", "5s")
	v.SetDefault("describe_timeout", "15s")
	v.SetDefault("build_timeout", "120s")
	v.SetDefault("deploy_timeout", "600s")
	v.SetDefault("deploy_script", "scripts/deploy_all.s.sol")
	v.SetDefault("deployments_dir", "deployments")
	v.SetDefault("abi_dir", "backend/abi")
	v.SetDefault("metrics_textfile", "")

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

func resolveAvalancheHome(configured string) (string, error) {
	if configured != "" {
		return expandHome(configured)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".avalanche-cli"), nil
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}

func projectPath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
