package config

import (
	"path/filepath"
	"time"
)

// OutputFormat selects how command results are printed
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// DefaultLocalNodeURL is the local network's API endpoint
const DefaultLocalNodeURL = "http://127.0.0.1:9650"

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	SubnetName string // default subnet when none is given on the command line

	// Execution settings
	Debug          bool
	NonInteractive bool
	Output         OutputFormat
	Timeout        time.Duration

	// External tools
	AvalancheBin  string
	ForgeBin      string
	AvalancheHome string // network CLI state directory, usually ~/.avalanche-cli
	LocalNodeURL  string // base URL for RPCs built from a bare blockchain id

	// Per-invocation deadlines
	ProbeTimeout    time.Duration
	DescribeTimeout time.Duration
	BuildTimeout    time.Duration
	DeployTimeout   time.Duration

	// Deploy workflow
	DeployScript   string // relative to ProjectRoot
	DeploymentsDir string
	ABIDir         string

	MetricsTextfile string

	// Resolved configurations
	FoundryConfig *FoundryConfig
}

// OutDir returns the absolute build artifact directory
func (c *RuntimeConfig) OutDir() string {
	return c.projectPath(c.FoundryConfig.Default().OutPath, "out")
}

// BroadcastDir returns the absolute broadcast artifact directory
func (c *RuntimeConfig) BroadcastDir() string {
	return c.projectPath(c.FoundryConfig.Default().BroadcastPath, "broadcast")
}

func (c *RuntimeConfig) projectPath(configured, fallback string) string {
	p := configured
	if p == "" {
		p = fallback
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.ProjectRoot, p)
}
