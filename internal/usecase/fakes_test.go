package usecase_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/subnetctl/internal/adapters/endpoint"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/domain/config"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

const (
	// Well-known development keys and the accounts they sign for
	devKey0     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	devAddress0 = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	devKey1     = "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
	devAddress1 = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"

	orionRPC = "http://127.0.0.1:9650/ext/bc/2Z36RnQuk1hvsnFeGWzfZUfXNr7w1SjzmDQ78YxfTVNAkDq3nZ/rpc"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeTools reports a fixed set of installed tools
type fakeTools struct {
	installed map[domain.ToolName]bool
	commands  []string
	tree      domain.CommandTree
	refreshes int
}

func newFakeTools(installed ...domain.ToolName) *fakeTools {
	t := &fakeTools{installed: map[domain.ToolName]bool{}}
	for _, name := range installed {
		t.installed[name] = true
	}
	return t
}

func (f *fakeTools) Detect(_ context.Context, tool domain.ToolName) domain.ToolStatus {
	return domain.ToolStatus{Name: tool, Installed: f.installed[tool]}
}

func (f *fakeTools) DetectAll(ctx context.Context) []domain.ToolStatus {
	out := make([]domain.ToolStatus, 0, len(domain.KnownTools))
	for _, tool := range domain.KnownTools {
		out = append(out, f.Detect(ctx, tool))
	}
	return out
}

func (f *fakeTools) Available(_ context.Context, tool domain.ToolName) bool {
	return f.installed[tool]
}

func (f *fakeTools) DiscoverCommands(context.Context, domain.ToolName) []string {
	return f.commands
}

func (f *fakeTools) CommandTree(context.Context, domain.ToolName) domain.CommandTree {
	return f.tree
}

func (f *fakeTools) Refresh() { f.refreshes++ }

// fakeCLI is a function-field NetworkCLI
type fakeCLI struct {
	describeFunc    func(ctx context.Context, subnet string) (*domain.SubnetDescription, error)
	describeCalls   int
	statusFunc      func(ctx context.Context) (*domain.NetworkStatus, error)
	listFunc        func(ctx context.Context) ([]domain.SubnetSummary, error)
	passthroughArgs []string
}

func (f *fakeCLI) Describe(ctx context.Context, subnet string) (*domain.SubnetDescription, error) {
	f.describeCalls++
	if f.describeFunc != nil {
		return f.describeFunc(ctx, subnet)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCLI) NetworkStatus(ctx context.Context) (*domain.NetworkStatus, error) {
	if f.statusFunc != nil {
		return f.statusFunc(ctx)
	}
	return domain.NewNetworkStatus(), nil
}

func (f *fakeCLI) ListSubnets(ctx context.Context) ([]domain.SubnetSummary, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx)
	}
	return nil, nil
}

func (f *fakeCLI) KeyList(_ context.Context, network string) (*domain.CommandOutput, error) {
	f.passthroughArgs = []string{"key", "list", network}
	return &domain.CommandOutput{Command: "avalanche key list", Stdout: "keys\n"}, nil
}

func (f *fakeCLI) RunNetwork(_ context.Context, name string, args []string) (*domain.CommandOutput, error) {
	f.passthroughArgs = append([]string{"network", "run", name}, args...)
	return &domain.CommandOutput{Command: "avalanche network run " + name}, nil
}

func (f *fakeCLI) PrimaryDescribe(_ context.Context, cluster string) (*domain.CommandOutput, error) {
	f.passthroughArgs = []string{"primary", "describe", cluster}
	return &domain.CommandOutput{Command: "avalanche primary describe"}, nil
}

// fakeSubnetConfig serves per-subnet values from maps
type fakeSubnetConfig struct {
	rpc        map[string]string
	keys       map[string]string
	configured []string
	err        error
}

func (f *fakeSubnetConfig) RPCURL(_ context.Context, subnet string) (string, bool) {
	v, ok := f.rpc[subnet]
	return v, ok
}

func (f *fakeSubnetConfig) PrivateKey(_ context.Context, subnet string) (string, bool) {
	v, ok := f.keys[subnet]
	return v, ok
}

func (f *fakeSubnetConfig) ConfiguredSubnets(context.Context) ([]string, error) {
	return f.configured, f.err
}

// fakeKeystore returns fixed candidates
type fakeKeystore struct {
	candidates []usecase.KeyCandidate
	keys       []domain.KeyInfo
	err        error
}

func (f *fakeKeystore) Candidates(context.Context, string) ([]usecase.KeyCandidate, error) {
	return f.candidates, f.err
}

func (f *fakeKeystore) ListKeys(context.Context) ([]domain.KeyInfo, error) {
	return f.keys, f.err
}

// resolverDeps groups everything ResolveEndpoint needs so tests can tweak one source at a time
type resolverDeps struct {
	cfg          *config.RuntimeConfig
	env          map[string]string
	subnetConfig *fakeSubnetConfig
	keystore     *fakeKeystore
	cli          *fakeCLI
	tools        *fakeTools
}

func newResolverDeps() *resolverDeps {
	return &resolverDeps{
		cfg:          &config.RuntimeConfig{},
		env:          map[string]string{},
		subnetConfig: &fakeSubnetConfig{rpc: map[string]string{}, keys: map[string]string{}},
		keystore:     &fakeKeystore{},
		cli:          &fakeCLI{},
		tools:        newFakeTools(domain.ToolNetworkCLI, domain.ToolContractCLI),
	}
}

func (d *resolverDeps) build() *usecase.ResolveEndpoint {
	return usecase.NewResolveEndpoint(
		d.cfg,
		endpoint.NewEnvironmentFromMap(d.env),
		d.subnetConfig,
		d.keystore,
		endpoint.NewKeyValidator(),
		d.cli,
		d.tools,
		nil,
		testLogger(),
	)
}

func envSource(d *resolverDeps) usecase.EnvironmentSource {
	return endpoint.NewEnvironmentFromMap(d.env)
}

// MockToolchain is a mock implementation of ContractToolchain
type MockToolchain struct {
	mock.Mock
}

func (m *MockToolchain) Build(ctx context.Context) (*domain.CommandOutput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommandOutput), args.Error(1)
}

func (m *MockToolchain) RunScript(ctx context.Context, run domain.ScriptRun) (*domain.CommandOutput, error) {
	args := m.Called(ctx, run)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommandOutput), args.Error(1)
}

func (m *MockToolchain) LoadBroadcast(ctx context.Context, script string, chainID uint64) (*domain.BroadcastFile, string, error) {
	args := m.Called(ctx, script, chainID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.BroadcastFile), args.String(1), args.Error(2)
}

func (m *MockToolchain) ExtractABI(ctx context.Context, artifactName string) (json.RawMessage, error) {
	args := m.Called(ctx, artifactName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// memoryStore is an in-memory AddressStore
type memoryStore struct {
	sets    map[string]*domain.DeploymentAddressSet
	legacy  *domain.DeploymentAddressSet
	abis    map[string]*domain.ABIDescriptor
	updates int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		sets: map[string]*domain.DeploymentAddressSet{},
		abis: map[string]*domain.ABIDescriptor{},
	}
}

func (s *memoryStore) Load(_ context.Context, subnet string) (*domain.DeploymentAddressSet, error) {
	return s.sets[subnet].Clone(), nil
}

func (s *memoryStore) Save(_ context.Context, subnet string, set *domain.DeploymentAddressSet) error {
	s.sets[subnet] = set.Clone()
	return nil
}

func (s *memoryStore) Update(ctx context.Context, subnet string, fn func(*domain.DeploymentAddressSet) error) (*domain.DeploymentAddressSet, error) {
	s.updates++
	set, _ := s.Load(ctx, subnet)
	if err := fn(set); err != nil {
		return nil, err
	}
	return set, s.Save(ctx, subnet, set)
}

func (s *memoryStore) SaveABI(_ context.Context, subnet, contractName string, desc *domain.ABIDescriptor) (string, error) {
	path := "abi/" + subnet + "/" + contractName + "ABI.json"
	s.abis[path] = desc
	return path, nil
}

func (s *memoryStore) LoadABI(_ context.Context, subnet, contractName string) (*domain.ABIDescriptor, error) {
	desc, ok := s.abis["abi/"+subnet+"/"+contractName+"ABI.json"]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return desc, nil
}

func (s *memoryStore) LoadLegacy(context.Context) (*domain.DeploymentAddressSet, error) {
	return s.legacy.Clone(), nil
}

// fakeChecker is a function-field ChainChecker
type fakeChecker struct {
	chainID  uint64
	chainErr error
	live     map[string]bool
	liveErr  error
	lastRPC  string
}

func (f *fakeChecker) IsLive(_ context.Context, rpcURL, address string) (bool, error) {
	f.lastRPC = rpcURL
	return f.live[address], f.liveErr
}

func (f *fakeChecker) ChainID(_ context.Context, rpcURL string) (uint64, error) {
	f.lastRPC = rpcURL
	return f.chainID, f.chainErr
}

// recordingProgress collects progress events
type recordingProgress struct {
	usecase.NopProgress
	events []usecase.ProgressEvent
}

func (r *recordingProgress) OnProgress(_ context.Context, event usecase.ProgressEvent) {
	r.events = append(r.events, event)
}

func (r *recordingProgress) stages() []string {
	var out []string
	for _, e := range r.events {
		if len(out) == 0 || out[len(out)-1] != e.Stage {
			out = append(out, e.Stage)
		}
	}
	return out
}
