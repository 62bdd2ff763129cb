package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/subnetctl/internal/domain"
)

// ResolveContractParams contains parameters for looking up a deployed contract
type ResolveContractParams struct {
	SubnetName string
	// Name is a logical name, an artifact name or an alias
	Name      string
	CheckLive bool
}

// ResolveContract finds the address of a known contract on a subnet
type ResolveContract struct {
	env       EnvironmentSource
	store     AddressStore
	checker   ChainChecker
	resolver  *ResolveEndpoint
	contracts []domain.ContractSpec
	log       *slog.Logger
}

// NewResolveContract creates a new ResolveContract use case
func NewResolveContract(env EnvironmentSource, store AddressStore, checker ChainChecker, resolver *ResolveEndpoint, log *slog.Logger) *ResolveContract {
	return &ResolveContract{
		env:       env,
		store:     store,
		checker:   checker,
		resolver:  resolver,
		contracts: domain.KnownContracts,
		log:       log.With("component", "ResolveContract"),
	}
}

// Run resolves the address: environment override, then the subnet workspace, then the legacy
// project-wide address file
func (uc *ResolveContract) Run(ctx context.Context, params ResolveContractParams) (*domain.ContractLookup, error) {
	spec, ok := domain.MatchContract(params.Name, uc.contracts)
	if !ok {
		return nil, fmt.Errorf("unknown contract %q: %w", params.Name, domain.ErrNotFound)
	}
	subnet := uc.resolver.SubnetName(params.SubnetName)

	var envVar string
	address, source, ok := FirstOf(ctx,
		Provider[string]{Source: string(domain.SourceEnvironment), Lookup: func(context.Context) (string, bool) {
			addr, variable, ok := uc.env.ContractAddress(spec.LogicalName)
			envVar = variable
			return addr, ok
		}},
		Provider[string]{Source: string(domain.ProvenanceWorkspace), Lookup: func(ctx context.Context) (string, bool) {
			set, err := uc.store.Load(ctx, subnet)
			return uc.lookupIn(set, err, spec.LogicalName)
		}},
		Provider[string]{Source: "legacy-workspace", Lookup: func(ctx context.Context) (string, bool) {
			set, err := uc.store.LoadLegacy(ctx)
			return uc.lookupIn(set, err, spec.LogicalName)
		}},
	)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no address recorded for %s on %s: %w", spec.LogicalName, subnet, domain.ErrNotFound)
	}

	if source == string(domain.SourceEnvironment) {
		source += ":" + envVar
	}

	lookup := &domain.ContractLookup{
		SubnetName:  subnet,
		LogicalName: spec.LogicalName,
		Address:     address,
		Source:      source,
	}

	if params.CheckLive {
		resolved, err := uc.resolver.Run(ctx, ResolveEndpointParams{SubnetName: subnet})
		if err != nil {
			return nil, err
		}
		if !resolved.Endpoint.HasRPC() {
			return nil, fmt.Errorf("cannot check %s on %s: %w", spec.LogicalName, subnet, domain.ErrMissingEndpoint)
		}
		live, err := uc.checker.IsLive(ctx, resolved.Endpoint.RPCURL, address)
		if err != nil {
			return nil, fmt.Errorf("failed to check contract code: %w", err)
		}
		lookup.Live = &live
	}

	return lookup, nil
}

func (uc *ResolveContract) lookupIn(set *domain.DeploymentAddressSet, err error, name string) (string, bool) {
	if err != nil {
		uc.log.Debug("failed to load addresses", "error", err)
		return "", false
	}
	return set.Get(name)
}
