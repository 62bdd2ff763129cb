package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/subnetctl/internal/domain/config"
)

// envFiles are loaded in order before any environment lookup. Variables already set in the
// process environment are never overwritten.
var envFiles = []string{".env", ".env.local", filepath.Join("backend", ".env")}

// loadFoundryConfig loads .env files and parses foundry.toml. A project without foundry.toml
// yields an empty configuration.
func loadFoundryConfig(projectRoot string) (*config.FoundryConfig, error) {
	loadEnvFiles(projectRoot)

	cfg := &config.FoundryConfig{
		Profile:      make(map[string]config.ProfileConfig),
		RpcEndpoints: make(map[string]string),
	}

	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	if _, err := os.Stat(foundryPath); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(foundryPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	for name, url := range cfg.RpcEndpoints {
		cfg.RpcEndpoints[name] = os.ExpandEnv(url)
	}

	return cfg, nil
}

func loadEnvFiles(projectRoot string) {
	for _, name := range envFiles {
		envFile := filepath.Join(projectRoot, name)
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
		}
	}
}
