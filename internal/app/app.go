package app

import (
	"log/slog"

	"github.com/trebuchet-org/subnetctl/internal/domain/config"
	"github.com/trebuchet-org/subnetctl/internal/metrics"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Selector usecase.SubnetSelector
	Metrics  *metrics.Metrics
	Log      *slog.Logger

	// Use cases
	DetectTools        *usecase.DetectTools
	ResolveEndpoint    *usecase.ResolveEndpoint
	DescribeSubnet     *usecase.DescribeSubnet
	NetworkStatus      *usecase.GetNetworkStatus
	ListSubnets        *usecase.ListSubnets
	ListKeys           *usecase.ListKeys
	ResolveContract    *usecase.ResolveContract
	DeployContracts    *usecase.DeployContracts
	NetworkPassthrough *usecase.NetworkPassthrough
	ShowConfig         *usecase.ShowConfig
	SetConfig          *usecase.SetConfig
	RemoveConfig       *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	selector usecase.SubnetSelector,
	m *metrics.Metrics,
	log *slog.Logger,
	detectTools *usecase.DetectTools,
	resolveEndpoint *usecase.ResolveEndpoint,
	describeSubnet *usecase.DescribeSubnet,
	networkStatus *usecase.GetNetworkStatus,
	listSubnets *usecase.ListSubnets,
	listKeys *usecase.ListKeys,
	resolveContract *usecase.ResolveContract,
	deployContracts *usecase.DeployContracts,
	networkPassthrough *usecase.NetworkPassthrough,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) (*App, error) {
	return &App{
		Config:             cfg,
		Selector:           selector,
		Metrics:            m,
		Log:                log,
		DetectTools:        detectTools,
		ResolveEndpoint:    resolveEndpoint,
		DescribeSubnet:     describeSubnet,
		NetworkStatus:      networkStatus,
		ListSubnets:        listSubnets,
		ListKeys:           listKeys,
		ResolveContract:    resolveContract,
		DeployContracts:    deployContracts,
		NetworkPassthrough: networkPassthrough,
		ShowConfig:         showConfig,
		SetConfig:          setConfig,
		RemoveConfig:       removeConfig,
	}, nil
}
