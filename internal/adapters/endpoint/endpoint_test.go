package endpoint

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/domain/config"
)

const (
	// ewoqKey is the well-known pre-funded key of local Avalanche networks
	ewoqKey     = "56289e99c94b6912bfc12adc093c9b51124f0dc54ac7a766b2bc5ccf558d8027"
	ewoqAddress = "0x8db97C7cEcE249c2b98bDC0226Cc4C2A57BF52FC"
	hardhatKey  = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	hardhatAddr = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func testConfig(home string) *config.RuntimeConfig {
	return &config.RuntimeConfig{AvalancheHome: home}
}

func TestEnvironment(t *testing.T) {
	t.Run("primary before alias", func(t *testing.T) {
		env := NewEnvironmentFromMap(map[string]string{
			"AVALANCHE_RPC":      "http://primary",
			"VITE_AVALANCHE_RPC": "http://alias",
		})
		url, ok := env.RPCURL()
		require.True(t, ok)
		assert.Equal(t, "http://primary", url)
	})

	t.Run("alias when primary blank", func(t *testing.T) {
		env := NewEnvironmentFromMap(map[string]string{
			"AVALANCHE_RPC":      "  ",
			"VITE_AVALANCHE_RPC": "http://alias",
		})
		url, ok := env.RPCURL()
		require.True(t, ok)
		assert.Equal(t, "http://alias", url)
	})

	t.Run("admin key alias", func(t *testing.T) {
		env := NewEnvironmentFromMap(map[string]string{"ADMIN_PRIVATE_KEY": ewoqKey})
		key, ok := env.PrivateKey()
		require.True(t, ok)
		assert.Equal(t, ewoqKey, key)
	})

	t.Run("subnet name", func(t *testing.T) {
		env := NewEnvironmentFromMap(map[string]string{"AVALANCHE_SUBNET_NAME": "Orion"})
		name, ok := env.SubnetName()
		require.True(t, ok)
		assert.Equal(t, "Orion", name)
	})

	t.Run("nothing set", func(t *testing.T) {
		env := NewEnvironmentFromMap(nil)
		_, ok := env.RPCURL()
		assert.False(t, ok)
		_, ok = env.PrivateKey()
		assert.False(t, ok)
		_, ok = env.SubnetName()
		assert.False(t, ok)
	})
}

func TestEnvironment_ContractAddress(t *testing.T) {
	addr := "0x5FbDB2315678afecb367f032d93F642f64180aa3"

	tests := []struct {
		name     string
		vars     map[string]string
		logical  string
		wantVar  string
		wantAddr string
	}{
		{name: "camel case name", vars: map[string]string{"DIGITAL_ID_ADDRESS": addr}, logical: "digitalID", wantVar: "DIGITAL_ID_ADDRESS", wantAddr: addr},
		{name: "vite prefix", vars: map[string]string{"VITE_DUMMY_TOKEN_ADDRESS": addr}, logical: "dummyToken", wantVar: "VITE_DUMMY_TOKEN_ADDRESS", wantAddr: addr},
		{name: "frontend alias for land", vars: map[string]string{"VITE_CONTRACT_ADDRESS": addr}, logical: "land", wantVar: "VITE_CONTRACT_ADDRESS", wantAddr: addr},
		{name: "not an address", vars: map[string]string{"TREASURY_ADDRESS": "pending"}, logical: "treasury"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, variable, ok := NewEnvironmentFromMap(tt.vars).ContractAddress(tt.logical)
			assert.Equal(t, tt.wantAddr != "", ok)
			assert.Equal(t, tt.wantAddr, got)
			assert.Equal(t, tt.wantVar, variable)
		})
	}
}

func TestUpperSnake(t *testing.T) {
	tests := map[string]string{
		"digitalID":    "DIGITAL_ID",
		"treasury":     "TREASURY",
		"dummyToken":   "DUMMY_TOKEN",
		"plotRegistry": "PLOT_REGISTRY",
		"HTTPServer":   "HTTP_SERVER",
		"csn-token":    "CSN_TOKEN",
	}
	for in, want := range tests {
		assert.Equal(t, want, upperSnake(in), in)
	}
}

func TestKeyValidator(t *testing.T) {
	v := NewKeyValidator()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare hex is prefixed", raw: ewoqKey, want: "0x" + ewoqKey},
		{name: "prefixed kept", raw: hardhatKey, want: hardhatKey},
		{name: "surrounding whitespace", raw: "  " + ewoqKey + "\n", want: "0x" + ewoqKey},
		{name: "too short", raw: "0x1234", wantErr: true},
		{name: "not hex", raw: "zz" + ewoqKey[2:], wantErr: true},
		{name: "zero key", raw: "0x0000000000000000000000000000000000000000000000000000000000000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred, err := v.ParseCredential(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidPrivateKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cred.Reveal())
		})
	}
}

func TestKeyValidator_Address(t *testing.T) {
	v := NewKeyValidator()

	cred, err := v.ParseCredential(ewoqKey)
	require.NoError(t, err)
	addr, err := v.Address(cred)
	require.NoError(t, err)
	assert.Equal(t, ewoqAddress, addr)

	cred, err = v.ParseCredential(hardhatKey)
	require.NoError(t, err)
	addr, err = v.Address(cred)
	require.NoError(t, err)
	assert.Equal(t, hardhatAddr, addr)

	_, err = v.Address(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPrivateKey)
}

func TestSubnetConfigFiles_RPCURL(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{
			name:  "top level rpc",
			files: map[string]string{"network.json": `{"rpc": "http://x"}`},
			want:  "http://x",
		},
		{
			name:  "alternate key spelling",
			files: map[string]string{"config.json": `{"rpcUrl": "http://127.0.0.1:41773/ext/bc/abc/rpc"}`},
			want:  "http://127.0.0.1:41773/ext/bc/abc/rpc",
		},
		{
			name:  "one level nested",
			files: map[string]string{"subnet.json": `{"network": {"rpcEndpoint": "http://nested"}}`},
			want:  "http://nested",
		},
		{
			name:  "endpoint list",
			files: map[string]string{"network.json": `{"Local Network": {"RPCEndpoints": ["http://listed/rpc"]}}`},
			want:  "http://listed/rpc",
		},
		{
			name:  "synthesized from node url and blockchain id",
			files: map[string]string{"network.json": `{"localNodeURL": "http://127.0.0.1:41773/", "blockchainID": "2abc"}`},
			want:  "http://127.0.0.1:41773/ext/bc/2abc/rpc",
		},
		{
			name: "earlier file wins",
			files: map[string]string{
				"network.json": `{"rpc": "http://network"}`,
				"config.json":  `{"rpc": "http://config"}`,
			},
			want: "http://network",
		},
		{
			name: "malformed file skipped",
			files: map[string]string{
				"network.json": `{not json`,
				"config.json":  `{"rpc": "http://config"}`,
			},
			want: "http://config",
		},
		{
			name:  "non url ignored",
			files: map[string]string{"network.json": `{"rpc": 42, "rpcUrl": "localhost"}`},
		},
		{
			name:  "blockchain id without node url uses the local node",
			files: map[string]string{"network.json": `{"blockchainID": "2abc"}`},
			want:  "http://127.0.0.1:9650/ext/bc/2abc/rpc",
		},
		{
			name:  "nested blockchain id",
			files: map[string]string{"network.json": `{"Local Network": {"blockchainID": "2def"}}`},
			want:  "http://127.0.0.1:9650/ext/bc/2def/rpc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			for name, content := range tt.files {
				writeFile(t, filepath.Join(home, "subnets", "Orion", name), content)
			}
			src := NewSubnetConfigFiles(testConfig(home), discardLogger())

			got, ok := src.RPCURL(context.Background(), "Orion")
			assert.Equal(t, tt.want != "", ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubnetConfigFiles_PrivateKey(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "key field", content: `{"key": "` + ewoqKey + `"}`, want: ewoqKey},
		{name: "privateKey field", content: `{"privateKey": "0xabc"}`, want: "0xabc"},
		{name: "funded account", content: `{"fundedAccounts": [{"address": "0x1", "key": "` + hardhatKey + `"}]}`, want: hardhatKey},
		{name: "no key", content: `{"rpc": "http://x"}`},
		{name: "empty funded accounts", content: `{"fundedAccounts": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			writeFile(t, filepath.Join(home, "subnets", "Orion", "config.json"), tt.content)
			src := NewSubnetConfigFiles(testConfig(home), discardLogger())

			got, ok := src.PrivateKey(context.Background(), "Orion")
			assert.Equal(t, tt.want != "", ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubnetConfigFiles_ConfiguredLocalNodeURL(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, "subnets", "Orion", "network.json"), `{"blockchainID": "2abc"}`)
	cfg := testConfig(home)
	cfg.LocalNodeURL = "http://10.0.0.5:41773/"
	src := NewSubnetConfigFiles(cfg, discardLogger())

	got, ok := src.RPCURL(context.Background(), "Orion")
	require.True(t, ok)
	assert.Equal(t, "http://10.0.0.5:41773/ext/bc/2abc/rpc", got)
}

func TestSubnetConfigFiles_RejectsPathNames(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, "network.json"), `{"rpc": "http://escaped"}`)
	src := NewSubnetConfigFiles(testConfig(home), discardLogger())

	_, ok := src.RPCURL(context.Background(), "../")
	assert.False(t, ok)
	_, ok = src.RPCURL(context.Background(), "")
	assert.False(t, ok)
}

func TestSubnetConfigFiles_ConfiguredSubnets(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, "subnets", "Zeta", "sidecar.json"), `{}`)
	writeFile(t, filepath.Join(home, "subnets", "Alpha", "chain.json"), `{}`)
	writeFile(t, filepath.Join(home, "subnets", "Beta", "network.json"), `{}`)
	writeFile(t, filepath.Join(home, "subnets", "Draft", "notes.txt"), "wip")
	writeFile(t, filepath.Join(home, "subnets", "stray.json"), `{}`)

	src := NewSubnetConfigFiles(testConfig(home), discardLogger())
	names, err := src.ConfiguredSubnets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Beta", "Zeta"}, names)

	empty := NewSubnetConfigFiles(testConfig(t.TempDir()), discardLogger())
	names, err = empty.ConfiguredSubnets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestKeystore_Candidates(t *testing.T) {
	home := t.TempDir()
	keyDir := filepath.Join(home, "key")
	writeFile(t, filepath.Join(keyDir, "old.pk"), "old")
	writeFile(t, filepath.Join(keyDir, "new.pk"), "new")
	writeFile(t, filepath.Join(keyDir, "key.pk"), "default")
	writeFile(t, filepath.Join(keyDir, "Orion.pk"), ewoqKey+"\n")
	writeFile(t, filepath.Join(keyDir, "readme.txt"), "ignored")

	base := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(keyDir, "old.pk"), base, base))
	require.NoError(t, os.Chtimes(filepath.Join(keyDir, "new.pk"), base.Add(time.Minute), base.Add(time.Minute)))

	ks := NewKeystore(testConfig(home), NewKeyValidator(), discardLogger())
	candidates, err := ks.Candidates(context.Background(), "Orion")
	require.NoError(t, err)

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Orion", "key", "new", "old"}, names)
	assert.Equal(t, ewoqKey, candidates[0].Raw)
	assert.Equal(t, filepath.Join(keyDir, "Orion.pk"), candidates[0].File)
}

func TestKeystore_MissingDirectory(t *testing.T) {
	ks := NewKeystore(testConfig(t.TempDir()), NewKeyValidator(), discardLogger())

	candidates, err := ks.Candidates(context.Background(), "Orion")
	require.NoError(t, err)
	assert.Empty(t, candidates)

	keys, err := ks.ListKeys(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestKeystore_ListKeys(t *testing.T) {
	home := t.TempDir()
	keyDir := filepath.Join(home, "key")
	writeFile(t, filepath.Join(keyDir, "ewoq.pk"), ewoqKey)
	writeFile(t, filepath.Join(keyDir, "deployer.pk"), hardhatKey)
	writeFile(t, filepath.Join(keyDir, "broken.pk"), "not a key")

	ks := NewKeystore(testConfig(home), NewKeyValidator(), discardLogger())
	keys, err := ks.ListKeys(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.KeyInfo{
		{Name: "deployer", Address: hardhatAddr, File: filepath.Join(keyDir, "deployer.pk")},
		{Name: "ewoq", Address: ewoqAddress, File: filepath.Join(keyDir, "ewoq.pk")},
	}, keys)
}
