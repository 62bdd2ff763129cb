package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/subnetctl/internal/domain/config"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("subnet", "", "")
	cmd.Flags().String("output", "table", "")
	cmd.Flags().String("avalanche-home", "", "")
	return cmd
}

func writeLocalConfig(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, DataDirName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.local.json"), []byte(content), 0644))
}

func TestProvider_SubnetPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		env      string
		flag     string
		expected string
	}{
		{name: "default", expected: ""},
		{name: "config file", file: `{"subnet": "FromFile"}`, expected: "FromFile"},
		{name: "env over file", file: `{"subnet": "FromFile"}`, env: "FromEnv", expected: "FromEnv"},
		{name: "flag over env", file: `{"subnet": "FromFile"}`, env: "FromEnv", flag: "FromFlag", expected: "FromFlag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			if tt.file != "" {
				writeLocalConfig(t, root, tt.file)
			}
			if tt.env != "" {
				t.Setenv("SUBNETCTL_SUBNET", tt.env)
			}
			cmd := newTestCmd()
			if tt.flag != "" {
				require.NoError(t, cmd.Flags().Set("subnet", tt.flag))
			}

			cfg, err := Provider(SetupViper(root, cmd))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.SubnetName)
		})
	}
}

func TestProvider_Defaults(t *testing.T) {
	root := t.TempDir()
	t.Setenv("HOME", "/home/tester")

	cfg, err := Provider(SetupViper(root, newTestCmd()))
	require.NoError(t, err)

	assert.Equal(t, root, cfg.ProjectRoot)
	assert.Equal(t, filepath.Join(root, ".subnetctl"), cfg.DataDir)
	assert.Equal(t, config.OutputTable, cfg.Output)
	assert.Equal(t, "avalanche", cfg.AvalancheBin)
	assert.Equal(t, "forge", cfg.ForgeBin)
	assert.Equal(t, "/home/tester/.avalanche-cli", cfg.AvalancheHome)
	assert.Equal(t, "http://127.0.0.1:9650", cfg.LocalNodeURL)
	assert.Equal(t, 5*time.Second, cfg.ProbeTimeout)
	assert.Equal(t, 15*time.Second, cfg.DescribeTimeout)
	assert.Equal(t, 120*time.Second, cfg.BuildTimeout)
	assert.Equal(t, 600*time.Second, cfg.DeployTimeout)
	assert.Equal(t, "scripts/deploy_all.s.sol", cfg.DeployScript)
	assert.Equal(t, filepath.Join(root, "deployments"), cfg.DeploymentsDir)
	assert.Equal(t, filepath.Join(root, "backend", "abi"), cfg.ABIDir)
	assert.Equal(t, filepath.Join(root, "out"), cfg.OutDir())
	assert.Equal(t, filepath.Join(root, "broadcast"), cfg.BroadcastDir())
}

func TestProvider_AvalancheHomeExpandsTilde(t *testing.T) {
	root := t.TempDir()
	t.Setenv("HOME", "/home/tester")
	cmd := newTestCmd()
	require.NoError(t, cmd.Flags().Set("avalanche-home", "~/custom-cli"))

	cfg, err := Provider(SetupViper(root, cmd))
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/custom-cli", cfg.AvalancheHome)
}

func TestProvider_LocalNodeURLFromEnv(t *testing.T) {
	root := t.TempDir()
	t.Setenv("SUBNETCTL_LOCAL_NODE_URL", "http://10.0.0.5:41773")

	cfg, err := Provider(SetupViper(root, newTestCmd()))
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:41773", cfg.LocalNodeURL)
}

func TestProvider_RejectsUnknownOutput(t *testing.T) {
	cmd := newTestCmd()
	require.NoError(t, cmd.Flags().Set("output", "xml"))

	_, err := Provider(SetupViper(t.TempDir(), cmd))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestProvider_FoundryPaths(t *testing.T) {
	root := t.TempDir()
	foundry := `
[profile.default]
src = "contracts"
out = "artifacts"
broadcast = "runs"

[rpc_endpoints]
chaos = "${SUBNETCTL_TEST_RPC}"
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "foundry.toml"), []byte(foundry), 0644))
	t.Setenv("SUBNETCTL_TEST_RPC", "http://127.0.0.1:41773/ext/bc/abc/rpc")

	cfg, err := Provider(SetupViper(root, newTestCmd()))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "artifacts"), cfg.OutDir())
	assert.Equal(t, filepath.Join(root, "runs"), cfg.BroadcastDir())
	assert.Equal(t, "http://127.0.0.1:41773/ext/bc/abc/rpc", cfg.FoundryConfig.RpcEndpoints["chaos"])
}

func TestProvider_LoadsDotEnv(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("SUBNETCTL_DOTENV_PROBE=from-dotenv\n"), 0644))
	t.Setenv("SUBNETCTL_DOTENV_PROBE", "")
	require.NoError(t, os.Unsetenv("SUBNETCTL_DOTENV_PROBE"))

	_, err := Provider(SetupViper(root, newTestCmd()))
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", os.Getenv("SUBNETCTL_DOTENV_PROBE"))
}

func TestProvider_InvalidFoundryToml(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "foundry.toml"), []byte("[profile.default\n"), 0644))

	_, err := Provider(SetupViper(root, newTestCmd()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse foundry.toml")
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "foundry.toml"), nil, 0644))
	nested := filepath.Join(root, "scripts", "deep")
	require.NoError(t, os.MkdirAll(nested, 0755))

	t.Chdir(nested)
	got, err := FindProjectRoot()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, want, gotResolved)
}
