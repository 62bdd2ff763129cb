package usecase

import (
	"context"

	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config     *config.LocalConfig `json:"config" yaml:"config"`
	ConfigPath string              `json:"configPath" yaml:"configPath"`
	Exists     bool                `json:"exists" yaml:"exists"`
	// Effective values after flags and environment were applied
	EffectiveSubnet string `json:"effectiveSubnet" yaml:"effectiveSubnet"`
	ProjectRoot     string `json:"projectRoot" yaml:"projectRoot"`
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	store   LocalConfigStore
	runtime *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(store LocalConfigStore, runtime *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{
		store:   store,
		runtime: runtime,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	exists := uc.store.Exists()

	cfg, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	effective := uc.runtime.SubnetName
	if effective == "" {
		effective = domain.DefaultSubnetName
	}

	return &ShowConfigResult{
		Config:          cfg,
		ConfigPath:      uc.store.GetPath(),
		Exists:          exists,
		EffectiveSubnet: effective,
		ProjectRoot:     uc.runtime.ProjectRoot,
	}, nil
}
