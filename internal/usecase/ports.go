package usecase

import (
	"context"
	"encoding/json"

	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/domain/config"
)

// ToolDetector probes the external CLIs the workflows depend on
type ToolDetector interface {
	Detect(ctx context.Context, tool domain.ToolName) domain.ToolStatus
	DetectAll(ctx context.Context) []domain.ToolStatus
	Available(ctx context.Context, tool domain.ToolName) bool
	DiscoverCommands(ctx context.Context, tool domain.ToolName) []string
	CommandTree(ctx context.Context, tool domain.ToolName) domain.CommandTree
	Refresh()
}

// NetworkCLI wraps the network-management CLI
type NetworkCLI interface {
	Describe(ctx context.Context, subnet string) (*domain.SubnetDescription, error)
	NetworkStatus(ctx context.Context) (*domain.NetworkStatus, error)
	ListSubnets(ctx context.Context) ([]domain.SubnetSummary, error)
	KeyList(ctx context.Context, network string) (*domain.CommandOutput, error)
	RunNetwork(ctx context.Context, name string, args []string) (*domain.CommandOutput, error)
	PrimaryDescribe(ctx context.Context, cluster string) (*domain.CommandOutput, error)
}

// EnvironmentSource reads endpoint settings from the process environment
type EnvironmentSource interface {
	RPCURL() (string, bool)
	PrivateKey() (string, bool)
	SubnetName() (string, bool)
	// ContractAddress returns the override for a logical contract and the variable it came from
	ContractAddress(logicalName string) (address, variable string, ok bool)
}

// SubnetConfigSource reads the network CLI's per-subnet configuration files
type SubnetConfigSource interface {
	RPCURL(ctx context.Context, subnet string) (string, bool)
	PrivateKey(ctx context.Context, subnet string) (string, bool)
	ConfiguredSubnets(ctx context.Context) ([]string, error)
}

// KeyCandidate is one key file found in the keystore, in preference order
type KeyCandidate struct {
	Name string
	File string
	Raw  string
}

// KeystoreSource scans the network CLI's key directory
type KeystoreSource interface {
	Candidates(ctx context.Context, subnet string) ([]KeyCandidate, error)
	ListKeys(ctx context.Context) ([]domain.KeyInfo, error)
}

// CredentialValidator turns raw key text into a usable credential
type CredentialValidator interface {
	ParseCredential(raw string) (*domain.Credential, error)
	Address(cred *domain.Credential) (string, error)
}

// ContractToolchain wraps the contract build/deploy CLI
type ContractToolchain interface {
	Build(ctx context.Context) (*domain.CommandOutput, error)
	RunScript(ctx context.Context, run domain.ScriptRun) (*domain.CommandOutput, error)
	// LoadBroadcast reads the run-latest artifact of script for chainID and returns it with its path
	LoadBroadcast(ctx context.Context, script string, chainID uint64) (*domain.BroadcastFile, string, error)
	ExtractABI(ctx context.Context, artifactName string) (json.RawMessage, error)
}

// AddressExtractor mines contract addresses from deploy output and broadcast artifacts
type AddressExtractor interface {
	FromStdout(stdout string) *domain.DeploymentAddressSet
	FromBroadcast(file *domain.BroadcastFile) *domain.DeploymentAddressSet
}

// AddressStore persists deployment addresses and ABI descriptors per subnet
type AddressStore interface {
	Load(ctx context.Context, subnet string) (*domain.DeploymentAddressSet, error)
	Save(ctx context.Context, subnet string, set *domain.DeploymentAddressSet) error
	// Update runs fn on the current set under the subnet lock and saves the result
	Update(ctx context.Context, subnet string, fn func(*domain.DeploymentAddressSet) error) (*domain.DeploymentAddressSet, error)
	SaveABI(ctx context.Context, subnet, contractName string, desc *domain.ABIDescriptor) (string, error)
	LoadABI(ctx context.Context, subnet, contractName string) (*domain.ABIDescriptor, error)
	LoadLegacy(ctx context.Context) (*domain.DeploymentAddressSet, error)
}

// ChainChecker queries a subnet's RPC endpoint
type ChainChecker interface {
	IsLive(ctx context.Context, rpcURL, address string) (bool, error)
	ChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// SubnetSelector lets a user pick a subnet interactively
type SubnetSelector interface {
	SelectSubnet(ctx context.Context, subnets []domain.SubnetSummary, prompt string) (string, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// LocalConfigStore persists the project-local settings file
type LocalConfigStore interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, cfg *config.LocalConfig) error
	GetPath() string
}
