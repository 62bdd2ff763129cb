package domain

// ToolName identifies an external CLI binary the system drives
type ToolName string

const (
	// ToolNetworkCLI is the network-management CLI used to create, describe and run subnets
	ToolNetworkCLI ToolName = "avalanche"
	// ToolContractCLI is the contract build/deploy toolchain
	ToolContractCLI ToolName = "forge"
)

// KnownTools lists every tool the detector probes by default
var KnownTools = []ToolName{ToolContractCLI, ToolNetworkCLI}

// ToolStatus is the result of probing a tool binary
type ToolStatus struct {
	Name      ToolName `json:"name" yaml:"name"`
	Installed bool     `json:"installed" yaml:"installed"`
	Version   string   `json:"version,omitempty" yaml:"version,omitempty"`
	Path      string   `json:"path,omitempty" yaml:"path,omitempty"`
	Error     string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// CommandTree maps a top-level command to its subcommands in help order
type CommandTree map[string][]string

// Subcommands returns "<top> <sub>" pairs for a top-level command
func (t CommandTree) Subcommands(top string) []string {
	subs := t[top]
	out := make([]string, 0, len(subs))
	for _, sub := range subs {
		out = append(out, top+" "+sub)
	}
	return out
}
