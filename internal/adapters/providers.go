package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/subnetctl/internal/adapters/avalanche"
	"github.com/trebuchet-org/subnetctl/internal/adapters/blockchain"
	"github.com/trebuchet-org/subnetctl/internal/adapters/endpoint"
	"github.com/trebuchet-org/subnetctl/internal/adapters/execx"
	"github.com/trebuchet-org/subnetctl/internal/adapters/forge"
	"github.com/trebuchet-org/subnetctl/internal/adapters/fs"
	"github.com/trebuchet-org/subnetctl/internal/adapters/interactive"
	"github.com/trebuchet-org/subnetctl/internal/adapters/parser"
	"github.com/trebuchet-org/subnetctl/internal/adapters/progress"
	"github.com/trebuchet-org/subnetctl/internal/adapters/tools"
	"github.com/trebuchet-org/subnetctl/internal/domain/config"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// ProvideProgressSink picks the spinner for interactive table output and a no-op sink otherwise,
// so structured output on stdout is never interleaved with progress frames
func ProvideProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive || cfg.Output != config.OutputTable {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerProgressReporter()
}

// ExecSet provides the subprocess runner
var ExecSet = wire.NewSet(
	execx.NewRunner,
	wire.Bind(new(execx.CommandRunner), new(*execx.Runner)),
)

// ToolsSet provides external CLI adapters
var ToolsSet = wire.NewSet(
	tools.NewDetector,
	wire.Bind(new(usecase.ToolDetector), new(*tools.Detector)),

	avalanche.NewCLI,
	wire.Bind(new(usecase.NetworkCLI), new(*avalanche.CLI)),

	forge.NewForgeAdapter,
	wire.Bind(new(usecase.ContractToolchain), new(*forge.ForgeAdapter)),
)

// EndpointSet provides the endpoint discovery sources
var EndpointSet = wire.NewSet(
	endpoint.NewEnvironment,
	wire.Bind(new(usecase.EnvironmentSource), new(*endpoint.Environment)),

	endpoint.NewSubnetConfigFiles,
	wire.Bind(new(usecase.SubnetConfigSource), new(*endpoint.SubnetConfigFiles)),

	endpoint.NewKeyValidator,
	wire.Bind(new(usecase.CredentialValidator), new(*endpoint.KeyValidator)),

	endpoint.NewKeystore,
	wire.Bind(new(usecase.KeystoreSource), new(*endpoint.Keystore)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewWorkspace,
	wire.Bind(new(usecase.AddressStore), new(*fs.Workspace)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigStore), new(*fs.LocalConfigStoreAdapter)),
)

// ParserSet provides output parsers
var ParserSet = wire.NewSet(
	parser.NewAddressExtractor,
	wire.Bind(new(usecase.AddressExtractor), new(*parser.AddressExtractor)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.SubnetSelector), new(*interactive.SelectorAdapter)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewCheckerAdapter,
	wire.Bind(new(usecase.ChainChecker), new(*blockchain.CheckerAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ProvideProgressSink,

	ExecSet,
	ToolsSet,
	EndpointSet,
	FSSet,
	ParserSet,
	InteractiveSet,
	BlockchainSet,
)
