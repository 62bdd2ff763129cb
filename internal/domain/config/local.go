package config

// LocalConfig represents the project-local settings in .subnetctl/config.local.json
type LocalConfig struct {
	Subnet        string `json:"subnet,omitempty"`
	AvalancheHome string `json:"avalanche_home,omitempty"`
	DeployScript  string `json:"deploy_script,omitempty"`
}

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeySubnet        ConfigKey = "subnet"
	ConfigKeyAvalancheHome ConfigKey = "avalanche-home"
	ConfigKeyDeployScript  ConfigKey = "deploy-script"
)

// DefaultLocalConfig returns the default local configuration
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{}
}

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeySubnet,
		ConfigKeyAvalancheHome,
		ConfigKeyDeployScript,
	}
}

// IsValidConfigKey checks if a key is valid
func IsValidConfigKey(key string) bool {
	k := NormalizeConfigKey(key)
	for _, validKey := range ValidConfigKeys() {
		if validKey == k {
			return true
		}
	}
	return false
}

// NormalizeConfigKey normalizes a config key ("net" -> "subnet", underscores -> dashes)
func NormalizeConfigKey(key string) ConfigKey {
	if key == "net" {
		return ConfigKeySubnet
	}
	out := []byte(key)
	for i, b := range out {
		if b == '_' {
			out[i] = '-'
		}
	}
	return ConfigKey(out)
}

// Get returns the value stored under key
func (c *LocalConfig) Get(key ConfigKey) string {
	switch key {
	case ConfigKeySubnet:
		return c.Subnet
	case ConfigKeyAvalancheHome:
		return c.AvalancheHome
	case ConfigKeyDeployScript:
		return c.DeployScript
	}
	return ""
}

// Set stores value under key and reports whether the key is known
func (c *LocalConfig) Set(key ConfigKey, value string) bool {
	switch key {
	case ConfigKeySubnet:
		c.Subnet = value
	case ConfigKeyAvalancheHome:
		c.AvalancheHome = value
	case ConfigKeyDeployScript:
		c.DeployScript = value
	default:
		return false
	}
	return true
}
