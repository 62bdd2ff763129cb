package config

// FoundryConfig represents the parts of foundry.toml this tool reads
type FoundryConfig struct {
	Profile      map[string]ProfileConfig `toml:"profile"`
	RpcEndpoints map[string]string        `toml:"rpc_endpoints"`
}

// ProfileConfig represents a profile's foundry configuration
type ProfileConfig struct {
	SrcPath       string   `toml:"src,omitempty"`
	OutPath       string   `toml:"out,omitempty"`
	LibPaths      []string `toml:"libs,omitempty"`
	ScriptPath    string   `toml:"script,omitempty"`
	BroadcastPath string   `toml:"broadcast,omitempty"`
	SolcVersion   string   `toml:"solc_version,omitempty"`
}

// Default returns the default profile, or an empty one
func (f *FoundryConfig) Default() ProfileConfig {
	if f == nil {
		return ProfileConfig{}
	}
	return f.Profile["default"]
}
