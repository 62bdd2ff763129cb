package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/subnetctl/internal/domain/config"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// Render implements Renderer for the show result
func (r *ConfigRenderer) Render(result *usecase.ShowConfigResult) error {
	return r.RenderConfig(result)
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if !result.Exists {
		fmt.Fprintf(r.out, "❌ No .subnetctl/config.local.json file found\n")
		fmt.Fprintf(r.out, "Using subnet: %s\n", result.EffectiveSubnet)
		return nil
	}

	fmt.Fprintln(r.out, "📋 Current config:")
	fmt.Fprintf(r.out, "Subnet:         %s\n", orMissing(result.Config.Subnet, "(not set)"))
	fmt.Fprintf(r.out, "Avalanche home: %s\n", orMissing(result.Config.AvalancheHome, "(not set)"))
	fmt.Fprintf(r.out, "Deploy script:  %s\n", orMissing(result.Config.DeployScript, "(not set)"))

	if result.Config.Subnet == "" {
		fmt.Fprintf(r.out, "\nUsing subnet: %s\n", result.EffectiveSubnet)
	}
	fmt.Fprintf(r.out, "📁 config file: %s\n", getRelativePath(result.ConfigPath))

	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintf(r.out, "✅ Set %s to: %s\n", result.Key, result.Value)
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	switch config.ConfigKey(result.Key) {
	case config.ConfigKeySubnet:
		fmt.Fprintf(r.out, "✅ Removed subnet from config (falls back to AVALANCHE_SUBNET_NAME or the default subnet)\n")
	default:
		fmt.Fprintf(r.out, "✅ Removed %s from config\n", result.Key)
	}

	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}
