package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/domain/config"
	"github.com/trebuchet-org/subnetctl/internal/metrics"
)

// DefaultDeployScript is the project's deploy script, relative to the project root
const DefaultDeployScript = "scripts/deploy_all.s.sol"

// DeployContractsParams contains parameters for deploying the project's contracts to a subnet
type DeployContractsParams struct {
	SubnetName string
	RPCURL     string
	PrivateKey string
	// Script overrides the configured deploy script
	Script    string
	ExtraArgs []string
	// SkipABI skips exporting ABI descriptors
	SkipABI bool
}

// DeployContractsResult contains the outcome of a deploy run
type DeployContractsResult struct {
	SubnetName    string                       `json:"subnetName" yaml:"subnetName"`
	RPCURL        string                       `json:"rpcUrl" yaml:"rpcUrl"`
	RPCSource     domain.EndpointSource        `json:"rpcSource" yaml:"rpcSource"`
	Deployer      string                       `json:"deployer" yaml:"deployer"`
	ChainID       uint64                       `json:"chainId,omitempty" yaml:"chainId,omitempty"`
	Addresses     *domain.DeploymentAddressSet `json:"addresses" yaml:"addresses"`
	BroadcastPath string                       `json:"broadcastPath,omitempty" yaml:"broadcastPath,omitempty"`
	ABIFiles      map[string]string            `json:"abiFiles,omitempty" yaml:"abiFiles,omitempty"`
	Warnings      []string                     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Build         *domain.CommandOutput        `json:"-" yaml:"-"`
	Deploy        *domain.CommandOutput        `json:"-" yaml:"-"`
}

// DeployContracts builds the project, runs the deploy script against a subnet and records the
// deployed addresses in the subnet workspace
type DeployContracts struct {
	config    *config.RuntimeConfig
	resolver  *ResolveEndpoint
	toolchain ContractToolchain
	extractor AddressExtractor
	store     AddressStore
	checker   ChainChecker
	tools     ToolDetector
	progress  ProgressSink
	metrics   *metrics.Metrics
	contracts []domain.ContractSpec
	log       *slog.Logger
}

// NewDeployContracts creates a new DeployContracts use case
func NewDeployContracts(
	cfg *config.RuntimeConfig,
	resolver *ResolveEndpoint,
	toolchain ContractToolchain,
	extractor AddressExtractor,
	store AddressStore,
	checker ChainChecker,
	tools ToolDetector,
	progress ProgressSink,
	m *metrics.Metrics,
	log *slog.Logger,
) *DeployContracts {
	return &DeployContracts{
		config:    cfg,
		resolver:  resolver,
		toolchain: toolchain,
		extractor: extractor,
		store:     store,
		checker:   checker,
		tools:     tools,
		progress:  progress,
		metrics:   m,
		contracts: domain.KnownContracts,
		log:       log.With("component", "DeployContracts"),
	}
}

// Run executes the deploy workflow
func (uc *DeployContracts) Run(ctx context.Context, params DeployContractsParams) (result *DeployContractsResult, err error) {
	defer func() {
		uc.metrics.ObserveDeploy(deployOutcome(err))
	}()

	if !uc.tools.Available(ctx, domain.ToolContractCLI) {
		return nil, fmt.Errorf("%s is required to deploy: %w", domain.ToolContractCLI, domain.ErrToolUnavailable)
	}

	resolved, err := uc.resolver.Run(ctx, ResolveEndpointParams{
		SubnetName: params.SubnetName,
		RPCURL:     params.RPCURL,
		PrivateKey: params.PrivateKey,
	})
	if err != nil {
		return nil, err
	}
	endpoint := resolved.Endpoint
	if !endpoint.HasRPC() {
		return nil, fmt.Errorf("no RPC URL found for subnet %s: %w", endpoint.SubnetName, domain.ErrMissingEndpoint)
	}
	if !endpoint.HasCredential() {
		return nil, fmt.Errorf("no private key found for subnet %s: %w", endpoint.SubnetName, domain.ErrMissingEndpoint)
	}

	result = &DeployContractsResult{
		SubnetName: endpoint.SubnetName,
		RPCURL:     endpoint.RPCURL,
		RPCSource:  endpoint.RPCSource,
		Deployer:   resolved.Address,
		ABIFiles:   map[string]string{},
	}
	uc.log.Info("deploying contracts", "subnet", endpoint.SubnetName, "rpc", endpoint.RPCURL, "deployer", resolved.Address)

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "build", Message: "Compiling contracts", Spinner: true})
	build, err := uc.toolchain.Build(ctx)
	if err != nil {
		return nil, &domain.DeployError{Stage: domain.StageBuild, ExitCode: -1, Err: err}
	}
	result.Build = build
	if !build.Success() {
		return nil, &domain.DeployError{Stage: domain.StageBuild, ExitCode: build.ExitCode, Stdout: build.Stdout, Stderr: build.Stderr}
	}
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "build", Message: "Compiled"})

	if !params.SkipABI {
		uc.exportABIs(ctx, endpoint, result)
	}

	script := params.Script
	if script == "" {
		script = uc.config.DeployScript
	}
	if script == "" {
		script = DefaultDeployScript
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "deploy", Message: "Running " + script, Spinner: true})
	deploy, err := uc.toolchain.RunScript(ctx, domain.ScriptRun{
		Script:     script,
		RPCURL:     endpoint.RPCURL,
		Credential: endpoint.Credential,
		ExtraArgs:  params.ExtraArgs,
	})
	if err != nil {
		return nil, &domain.DeployError{Stage: domain.StageDeploy, ExitCode: -1, Err: err}
	}
	result.Deploy = deploy
	if !deploy.Success() {
		return nil, &domain.DeployError{Stage: domain.StageDeploy, ExitCode: deploy.ExitCode, Stdout: deploy.Stdout, Stderr: deploy.Stderr}
	}
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "deploy", Message: "Script finished"})

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "reconcile", Message: "Collecting addresses", Spinner: true})
	merged := uc.reconcile(ctx, script, endpoint.RPCURL, deploy.Stdout, result)
	if merged.Len() == 0 {
		return result, fmt.Errorf("deployment completed but addresses were not extracted: %w", domain.ErrNoAddresses)
	}

	for _, name := range merged.Names() {
		uc.metrics.ObserveReconciled(string(merged.Provenance[name]))
	}

	saved, err := uc.store.Update(ctx, endpoint.SubnetName, func(set *domain.DeploymentAddressSet) error {
		merged.MergeInto(set)
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("failed to save addresses for %s: %w", endpoint.SubnetName, err)
	}
	result.Addresses = merged
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "reconcile", Message: fmt.Sprintf("%d contracts recorded (%d total)", merged.Len(), saved.Len())})

	return result, nil
}

// exportABIs writes a descriptor for every known contract with a build artifact. Failures are
// warnings; a deploy never fails because an ABI could not be written.
func (uc *DeployContracts) exportABIs(ctx context.Context, endpoint *domain.EndpointConfig, result *DeployContractsResult) {
	for _, spec := range uc.contracts {
		abiJSON, err := uc.toolchain.ExtractABI(ctx, spec.ArtifactName)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				result.Warnings = append(result.Warnings, fmt.Sprintf("ABI for %s: %v", spec.ArtifactName, err))
			}
			uc.log.Debug("skipping ABI export", "contract", spec.ArtifactName, "error", err)
			continue
		}
		path, err := uc.store.SaveABI(ctx, endpoint.SubnetName, spec.ArtifactName, &domain.ABIDescriptor{
			ABI:        abiJSON,
			SubnetName: endpoint.SubnetName,
			RPCURL:     endpoint.RPCURL,
		})
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("failed to save ABI for %s: %v", spec.ArtifactName, err))
			continue
		}
		result.ABIFiles[spec.ArtifactName] = path
	}
}

// reconcile merges the stdout heuristic with the broadcast artifact, which wins on conflicts
func (uc *DeployContracts) reconcile(ctx context.Context, script, rpcURL, stdout string, result *DeployContractsResult) *domain.DeploymentAddressSet {
	fromStdout := uc.extractor.FromStdout(stdout)

	chainID, err := uc.checker.ChainID(ctx, rpcURL)
	if err != nil {
		uc.log.Debug("failed to query chain id", "error", err)
	}
	result.ChainID = chainID

	broadcast, path, err := uc.toolchain.LoadBroadcast(ctx, script, chainID)
	result.BroadcastPath = path
	if err != nil {
		uc.log.Debug("no broadcast artifact", "script", script, "chainID", chainID, "error", err)
		if !errors.Is(err, domain.ErrNotFound) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("broadcast artifact: %v", err))
		}
		return fromStdout
	}

	return domain.MergeAddressSets(fromStdout, uc.extractor.FromBroadcast(broadcast))
}

func deployOutcome(err error) string {
	var deployErr *domain.DeployError
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &deployErr):
		return string(deployErr.Stage) + "_failed"
	case errors.Is(err, domain.ErrNoAddresses):
		return "no_addresses"
	default:
		return "error"
	}
}
