package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/subnetctl/internal/app"
	appconfig "github.com/trebuchet-org/subnetctl/internal/config"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/domain/config"
	"github.com/trebuchet-org/subnetctl/internal/metrics"
)

const (
	testKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

// newProject creates a Foundry project directory and makes it the working directory
func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "foundry.toml"), []byte("[profile.default]\nsrc = \"src\"\n"), 0o644))
	t.Chdir(root)
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(args, "--non-interactive", "--avalanche-home", t.TempDir()))
	err := root.Execute()
	return out.String(), err
}

func TestNewRootCmd_Commands(t *testing.T) {
	root := NewRootCmd()

	for _, path := range [][]string{
		{"endpoint"},
		{"deploy"},
		{"contract"},
		{"describe"},
		{"status"},
		{"subnets"},
		{"keys"},
		{"network", "run"},
		{"network", "keys"},
		{"primary", "describe"},
		{"tools"},
		{"config", "set"},
		{"config", "remove"},
		{"version"},
	} {
		t.Run(fmt.Sprint(path), func(t *testing.T) {
			cmd, _, err := root.Find(path)
			require.NoError(t, err)
			assert.Equal(t, path[len(path)-1], cmd.Name())
		})
	}
}

func TestSkipAppInit(t *testing.T) {
	root := NewRootCmd()
	root.InitDefaultHelpCmd()

	tests := []struct {
		path []string
		want bool
	}{
		{[]string{"version"}, true},
		{[]string{"help"}, true},
		{[]string{"endpoint"}, false},
		{[]string{"config"}, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.path), func(t *testing.T) {
			cmd, _, err := root.Find(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, skipAppInit(cmd))
		})
	}
}

func TestBindGlobalFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "json shorthand", args: []string{"--json"}, want: "json"},
		{name: "yaml shorthand", args: []string{"--yaml"}, want: "yaml"},
		{name: "no shorthand", args: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewRootCmd()
			require.NoError(t, root.ParseFlags(tt.args))
			v := viper.New()

			bindGlobalFlags(v, root)

			assert.Equal(t, tt.want, v.GetString("output"))
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "plain error", err: errors.New("boom"), want: 1},
		{name: "deploy stage exit code", err: fmt.Errorf("wrapped: %w", &domain.DeployError{Stage: domain.StageDeploy, ExitCode: 3}), want: 3},
		{name: "deploy stage without exit code", err: &domain.DeployError{Stage: domain.StageBuild, ExitCode: -1, Err: errors.New("killed")}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestVersionCmd(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())

	assert.Equal(t, "subnetctl version dev\n", out.String())
}

func TestWriteMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subnetctl.prom")
	a := &app.App{
		Config:  &config.RuntimeConfig{MetricsTextfile: path},
		Metrics: metrics.NewMetrics(),
	}
	a.Metrics.ObserveDeploy("success")

	require.NoError(t, writeMetrics(a))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `subnetctl_deploys_total{outcome="success"} 1`)
}

func TestConfigCommands(t *testing.T) {
	root := newProject(t)

	out, err := execute(t, "config", "set", "subnet", "orion")
	require.NoError(t, err)
	assert.Contains(t, out, "Set subnet to: orion")

	data, err := os.ReadFile(filepath.Join(root, ".subnetctl", "config.local.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"subnet": "orion"`)

	out, err = execute(t, "config", "--json")
	require.NoError(t, err)
	var shown struct {
		Exists          bool   `json:"exists"`
		EffectiveSubnet string `json:"effectiveSubnet"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.True(t, shown.Exists)
	assert.Equal(t, "orion", shown.EffectiveSubnet)

	_, err = execute(t, "config", "set", "namespace", "x")
	assert.ErrorContains(t, err, "unknown config key: namespace")

	out, err = execute(t, "config", "remove", "net")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed subnet from config")
}

func TestEndpointCmd_Overrides(t *testing.T) {
	newProject(t)

	out, err := execute(t, "endpoint", "orion", "--json", "--rpc-url", "http://127.0.0.1:9650/ext/bc/orion/rpc", "--private-key", testKey)
	require.NoError(t, err)

	var result struct {
		Endpoint struct {
			SubnetName       string `json:"subnetName"`
			RPCURL           string `json:"rpcUrl"`
			RPCSource        string `json:"rpcSource"`
			CredentialSource string `json:"credentialSource"`
		} `json:"endpoint"`
		Address string `json:"address"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "orion", result.Endpoint.SubnetName)
	assert.Equal(t, "http://127.0.0.1:9650/ext/bc/orion/rpc", result.Endpoint.RPCURL)
	assert.Equal(t, string(domain.SourceOverride), result.Endpoint.RPCSource)
	assert.Equal(t, string(domain.SourceOverride), result.Endpoint.CredentialSource)
	assert.Equal(t, testAddress, result.Address)
	assert.NotContains(t, out, testKey[2:])
}

func TestVersionCmd_BuildInfo(t *testing.T) {
	prevVersion, prevCommit, prevDate := appconfig.Version, appconfig.Commit, appconfig.Date
	t.Cleanup(func() { appconfig.SetBuildFlags(prevVersion, prevCommit, prevDate) })
	appconfig.SetBuildFlags("v1.2.0", "abc1234", "2026-10-01")

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())

	assert.Equal(t, "subnetctl version v1.2.0\ncommit abc1234, built 2026-10-01\n", out.String())
}
