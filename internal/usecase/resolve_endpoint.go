package usecase

import (
	"context"
	"log/slog"

	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/domain/config"
	"github.com/trebuchet-org/subnetctl/internal/metrics"
)

// ResolveEndpointParams contains parameters for resolving a subnet endpoint
type ResolveEndpointParams struct {
	SubnetName string
	// Explicit overrides win over every discovered value
	RPCURL     string
	PrivateKey string
}

// ResolveEndpointResult contains the resolved endpoint and what was learned along the way
type ResolveEndpointResult struct {
	Endpoint *domain.EndpointConfig `json:"endpoint" yaml:"endpoint"`
	// Address is the account the credential signs for
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
	// Description is set when the network CLI was asked to describe the subnet
	Description *domain.SubnetDescription `json:"-" yaml:"-"`
	// DescribeErr is set when the network CLI was asked and failed
	DescribeErr error `json:"-" yaml:"-"`
}

// ResolveEndpoint discovers an RPC URL and a signing credential for a subnet from an ordered list
// of sources. Every source failure falls through to the next source; only exhausting all of them
// leaves a field unset.
type ResolveEndpoint struct {
	config       *config.RuntimeConfig
	env          EnvironmentSource
	subnetConfig SubnetConfigSource
	keystore     KeystoreSource
	validator    CredentialValidator
	cli          NetworkCLI
	tools        ToolDetector
	metrics      *metrics.Metrics
	log          *slog.Logger
}

// NewResolveEndpoint creates a new ResolveEndpoint use case
func NewResolveEndpoint(
	cfg *config.RuntimeConfig,
	env EnvironmentSource,
	subnetConfig SubnetConfigSource,
	keystore KeystoreSource,
	validator CredentialValidator,
	cli NetworkCLI,
	tools ToolDetector,
	m *metrics.Metrics,
	log *slog.Logger,
) *ResolveEndpoint {
	return &ResolveEndpoint{
		config:       cfg,
		env:          env,
		subnetConfig: subnetConfig,
		keystore:     keystore,
		validator:    validator,
		cli:          cli,
		tools:        tools,
		metrics:      m,
		log:          log.With("component", "ResolveEndpoint"),
	}
}

// SubnetName picks the subnet to operate on: the explicit name, the environment, the configured
// default, then the well-known default subnet
func (uc *ResolveEndpoint) SubnetName(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if name, ok := uc.env.SubnetName(); ok {
		return name
	}
	if uc.config.SubnetName != "" {
		return uc.config.SubnetName
	}
	return domain.DefaultSubnetName
}

// Run resolves the endpoint. It never fails on a discovery problem; the only error is a
// cancelled context.
func (uc *ResolveEndpoint) Run(ctx context.Context, params ResolveEndpointParams) (*ResolveEndpointResult, error) {
	subnet := uc.SubnetName(params.SubnetName)
	describe := uc.describeOnce(subnet)

	endpoint := &domain.EndpointConfig{
		SubnetName:       subnet,
		RPCSource:        domain.SourceNone,
		CredentialSource: domain.SourceNone,
	}

	rpcURL, rpcSource, ok := FirstOf(ctx,
		Provider[string]{Source: string(domain.SourceOverride), Lookup: func(context.Context) (string, bool) {
			return params.RPCURL, params.RPCURL != ""
		}},
		Provider[string]{Source: string(domain.SourceEnvironment), Lookup: func(context.Context) (string, bool) {
			return uc.env.RPCURL()
		}},
		Provider[string]{Source: string(domain.SourceFilesystemConfig), Lookup: func(ctx context.Context) (string, bool) {
			return uc.subnetConfig.RPCURL(ctx, subnet)
		}},
		Provider[string]{Source: string(domain.SourceCLIDescribe), Lookup: func(ctx context.Context) (string, bool) {
			url := describe.rpcURL(ctx)
			return url, url != ""
		}},
		Provider[string]{Source: string(domain.SourceHardcodedDefault), Lookup: func(context.Context) (string, bool) {
			return domain.DefaultSubnetRPC, subnet == domain.DefaultSubnetName
		}},
	)
	if ok {
		endpoint.RPCURL = rpcURL
		endpoint.RPCSource = domain.EndpointSource(rpcSource)
	}

	cred, credSource, ok := FirstOf(ctx,
		Provider[*domain.Credential]{Source: string(domain.SourceOverride), Lookup: func(context.Context) (*domain.Credential, bool) {
			return uc.parse(params.PrivateKey, domain.SourceOverride)
		}},
		Provider[*domain.Credential]{Source: string(domain.SourceEnvironment), Lookup: func(context.Context) (*domain.Credential, bool) {
			raw, _ := uc.env.PrivateKey()
			return uc.parse(raw, domain.SourceEnvironment)
		}},
		Provider[*domain.Credential]{Source: string(domain.SourceFilesystemConfig), Lookup: func(ctx context.Context) (*domain.Credential, bool) {
			raw, _ := uc.subnetConfig.PrivateKey(ctx, subnet)
			return uc.parse(raw, domain.SourceFilesystemConfig)
		}},
		Provider[*domain.Credential]{Source: string(domain.SourceKeystoreScan), Lookup: func(ctx context.Context) (*domain.Credential, bool) {
			return uc.scanKeystore(ctx, subnet)
		}},
		Provider[*domain.Credential]{Source: string(domain.SourceCLIDescribe), Lookup: func(ctx context.Context) (*domain.Credential, bool) {
			return uc.parse(describe.keyToken(ctx), domain.SourceCLIDescribe)
		}},
	)
	if ok {
		endpoint.Credential = cred
		endpoint.CredentialSource = domain.EndpointSource(credSource)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uc.metrics.ObserveResolution("rpc", string(endpoint.RPCSource))
	uc.metrics.ObserveResolution("credential", string(endpoint.CredentialSource))
	uc.log.Debug("resolved endpoint", "subnet", subnet, "rpc", endpoint.RPCURL, "rpcSource", endpoint.RPCSource,
		"credential", endpoint.Credential.String(), "credentialSource", endpoint.CredentialSource)

	result := &ResolveEndpointResult{Endpoint: endpoint, Description: describe.desc, DescribeErr: describe.err}
	if endpoint.Credential != nil {
		if addr, err := uc.validator.Address(endpoint.Credential); err == nil {
			result.Address = addr
		}
	}
	return result, nil
}

// parse validates raw key text; anything that is not a usable key is a miss
func (uc *ResolveEndpoint) parse(raw string, source domain.EndpointSource) (*domain.Credential, bool) {
	if raw == "" {
		return nil, false
	}
	cred, err := uc.validator.ParseCredential(raw)
	if err != nil {
		uc.log.Debug("ignoring invalid credential", "source", source, "error", err)
		return nil, false
	}
	return cred, true
}

func (uc *ResolveEndpoint) scanKeystore(ctx context.Context, subnet string) (*domain.Credential, bool) {
	candidates, err := uc.keystore.Candidates(ctx, subnet)
	if err != nil {
		uc.log.Debug("keystore scan failed", "error", err)
		return nil, false
	}
	for _, c := range candidates {
		if cred, ok := uc.parse(c.Raw, domain.SourceKeystoreScan); ok {
			uc.log.Debug("using keystore key", "name", c.Name)
			return cred, true
		}
	}
	return nil, false
}

// describeMemo runs the network CLI's describe at most once per resolution
type describeMemo struct {
	uc     *ResolveEndpoint
	subnet string
	done   bool
	desc   *domain.SubnetDescription
	err    error
}

func (uc *ResolveEndpoint) describeOnce(subnet string) *describeMemo {
	return &describeMemo{uc: uc, subnet: subnet}
}

func (m *describeMemo) get(ctx context.Context) *domain.SubnetDescription {
	if m.done {
		return m.desc
	}
	m.done = true
	if !m.uc.tools.Available(ctx, domain.ToolNetworkCLI) {
		m.uc.log.Debug("network CLI unavailable, skipping describe", "subnet", m.subnet)
		return nil
	}
	desc, err := m.uc.cli.Describe(ctx, m.subnet)
	if err != nil {
		m.uc.log.Debug("describe failed", "subnet", m.subnet, "error", err)
		m.err = err
		return nil
	}
	m.desc = desc
	return desc
}

func (m *describeMemo) rpcURL(ctx context.Context) string {
	if d := m.get(ctx); d != nil {
		return d.RPCURL
	}
	return ""
}

func (m *describeMemo) keyToken(ctx context.Context) string {
	if d := m.get(ctx); d != nil {
		return d.KeyToken
	}
	return ""
}
