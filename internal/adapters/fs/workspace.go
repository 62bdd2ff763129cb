package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/domain/config"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

const (
	addressesFile = "addresses.json"
	lockFile      = ".addresses.lock"
	lockRetry     = 50 * time.Millisecond
)

// Workspace stores per-subnet deployment addresses and ABI descriptors on disk:
//
//	<deployments>/<subnet>/addresses.json
//	<deployments>/addresses.json            (legacy, project-wide)
//	<abi>/<subnet>/<Contract>ABI.json
type Workspace struct {
	deploymentsDir string
	abiDir         string
	log            *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewWorkspace creates a new subnet workspace
func NewWorkspace(cfg *config.RuntimeConfig, log *slog.Logger) *Workspace {
	return &Workspace{
		deploymentsDir: cfg.DeploymentsDir,
		abiDir:         cfg.ABIDir,
		log:            log.With("component", "Workspace"),
		locks:          make(map[string]*sync.Mutex),
	}
}

// AddressesPath returns the address file of a subnet
func (w *Workspace) AddressesPath(subnet string) string {
	return filepath.Join(w.deploymentsDir, subnet, addressesFile)
}

// ABIPath returns the descriptor file of a contract on a subnet
func (w *Workspace) ABIPath(subnet, contractName string) string {
	return filepath.Join(w.abiDir, subnet, contractName+"ABI.json")
}

// Load reads the address set of a subnet. A missing or unreadable file is an empty set.
func (w *Workspace) Load(_ context.Context, subnet string) (*domain.DeploymentAddressSet, error) {
	if err := validateName(subnet); err != nil {
		return nil, err
	}
	return w.readAddresses(w.AddressesPath(subnet)), nil
}

// LoadLegacy reads the project-wide address file written before addresses were kept per subnet
func (w *Workspace) LoadLegacy(_ context.Context) (*domain.DeploymentAddressSet, error) {
	return w.readAddresses(filepath.Join(w.deploymentsDir, addressesFile)), nil
}

// Save replaces the address set of a subnet. The file is written to a temporary name and renamed
// into place, so readers see either the old or the new content.
func (w *Workspace) Save(_ context.Context, subnet string, set *domain.DeploymentAddressSet) error {
	if err := validateName(subnet); err != nil {
		return err
	}
	addresses := map[string]string{}
	if set != nil {
		addresses = set.Addresses
	}
	if err := writeJSON(w.AddressesPath(subnet), addresses); err != nil {
		return fmt.Errorf("failed to save addresses for %s: %w", subnet, err)
	}
	w.log.Debug("saved addresses", "subnet", subnet, "count", len(addresses))
	return nil
}

// Update loads the subnet's set, applies fn and saves the result. Concurrent updates of one subnet
// are serialized in-process by a mutex and across processes by an advisory file lock.
func (w *Workspace) Update(ctx context.Context, subnet string, fn func(*domain.DeploymentAddressSet) error) (*domain.DeploymentAddressSet, error) {
	if err := validateName(subnet); err != nil {
		return nil, err
	}

	mu := w.subnetLock(subnet)
	mu.Lock()
	defer mu.Unlock()

	dir := filepath.Join(w.deploymentsDir, subnet)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create deployments directory: %w", err)
	}
	fileLock := flock.New(filepath.Join(dir, lockFile))
	locked, err := fileLock.TryLockContext(ctx, lockRetry)
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", subnet, err)
	}
	if !locked {
		return nil, fmt.Errorf("failed to lock %s", subnet)
	}
	defer func() {
		if err := fileLock.Unlock(); err != nil {
			w.log.Warn("failed to release workspace lock", "subnet", subnet, "error", err)
		}
	}()

	set, err := w.Load(ctx, subnet)
	if err != nil {
		return nil, err
	}
	if err := fn(set); err != nil {
		return nil, err
	}
	if err := w.Save(ctx, subnet, set); err != nil {
		return nil, err
	}
	return set, nil
}

// SaveABI writes a contract's ABI descriptor and returns its path
func (w *Workspace) SaveABI(_ context.Context, subnet, contractName string, desc *domain.ABIDescriptor) (string, error) {
	if err := validateName(subnet); err != nil {
		return "", err
	}
	if err := validateName(contractName); err != nil {
		return "", err
	}
	path := w.ABIPath(subnet, contractName)
	if err := writeJSON(path, desc); err != nil {
		return "", fmt.Errorf("failed to save abi for %s: %w", contractName, err)
	}
	return path, nil
}

// LoadABI reads a contract's ABI descriptor
func (w *Workspace) LoadABI(_ context.Context, subnet, contractName string) (*domain.ABIDescriptor, error) {
	if err := validateName(subnet); err != nil {
		return nil, err
	}
	path := w.ABIPath(subnet, contractName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("abi for %s on %s: %w", contractName, subnet, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read abi file: %w", err)
	}

	var desc domain.ABIDescriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("failed to parse abi file %s: %w", path, err)
	}
	return &desc, nil
}

func (w *Workspace) subnetLock(subnet string) *sync.Mutex {
	w.mu.Lock()
	defer w.mu.Unlock()
	mu, ok := w.locks[subnet]
	if !ok {
		mu = &sync.Mutex{}
		w.locks[subnet] = mu
	}
	return mu
}

func (w *Workspace) readAddresses(path string) *domain.DeploymentAddressSet {
	set := domain.NewDeploymentAddressSet()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			w.log.Warn("failed to read addresses file", "path", path, "error", err)
		}
		return set
	}

	// non-string values are left over from hand edits and are skipped
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		w.log.Warn("ignoring malformed addresses file", "path", path, "error", err)
		return set
	}
	for name, value := range raw {
		if addr, ok := value.(string); ok && addr != "" {
			set.Set(name, addr, domain.ProvenanceWorkspace)
		}
	}
	return set
}

// writeJSON marshals v with two-space indentation (map keys sorted) and renames it into place
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to rename into place: %w", err)
	}
	return nil
}

// validateName rejects names that would escape their directory
func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid name %q", name)
	}
	return nil
}

var _ usecase.AddressStore = (*Workspace)(nil)
