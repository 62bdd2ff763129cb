//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/subnetctl/internal/adapters"
	"github.com/trebuchet-org/subnetctl/internal/config"
	"github.com/trebuchet-org/subnetctl/internal/logging"
	"github.com/trebuchet-org/subnetctl/internal/metrics"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,

		// Ambient
		logging.LoggingSet,
		metrics.MetricsSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDetectTools,
		usecase.NewResolveEndpoint,
		usecase.NewDescribeSubnet,
		usecase.NewGetNetworkStatus,
		usecase.NewListSubnets,
		usecase.NewListKeys,
		usecase.NewResolveContract,
		usecase.NewDeployContracts,
		usecase.NewNetworkPassthrough,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil
}
