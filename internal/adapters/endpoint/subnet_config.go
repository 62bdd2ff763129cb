package endpoint

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/subnetctl/internal/domain/config"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

var (
	// subnetConfigFiles are read in order from <home>/subnets/<name>/
	subnetConfigFiles = []string{"network.json", "config.json", "subnet.json"}
	// subnetMarkerFiles mark a directory under <home>/subnets as a configured subnet
	subnetMarkerFiles = []string{"sidecar.json", "chain.json", "network.json"}

	rpcKeys          = []string{"rpc", "rpcUrl", "rpcURL", "rpcEndpoint", "RPCEndpoints", "rpcEndpoints"}
	privateKeyKeys   = []string{"key", "privateKey", "private_key"}
	blockchainIDKeys = []string{"blockchainID", "blockchainId", "BlockchainID"}
	nodeURLKeys      = []string{"localNodeURL", "localNodeUrl", "nodeURL", "nodeUrl"}
)

// SubnetConfigFiles reads the network CLI's per-subnet JSON configuration
type SubnetConfigFiles struct {
	home    string
	nodeURL string
	log     *slog.Logger
}

// NewSubnetConfigFiles creates a config file source rooted at the network CLI home directory
func NewSubnetConfigFiles(cfg *config.RuntimeConfig, log *slog.Logger) *SubnetConfigFiles {
	nodeURL := cfg.LocalNodeURL
	if nodeURL == "" {
		nodeURL = config.DefaultLocalNodeURL
	}
	return &SubnetConfigFiles{
		home:    cfg.AvalancheHome,
		nodeURL: nodeURL,
		log:     log.With("component", "SubnetConfigFiles"),
	}
}

// RPCURL returns the first RPC URL found in the subnet's config files. Keys are checked at the top
// level, then one level down; failing that, a URL is built from a blockchain id.
func (s *SubnetConfigFiles) RPCURL(ctx context.Context, subnet string) (string, bool) {
	for _, doc := range s.documents(subnet) {
		if url, ok := rpcFromDocument(doc, s.nodeURL); ok {
			return url, true
		}
	}
	return "", false
}

// PrivateKey returns the first raw key found in the subnet's config files
func (s *SubnetConfigFiles) PrivateKey(ctx context.Context, subnet string) (string, bool) {
	for _, doc := range s.documents(subnet) {
		if key, ok := stringField(doc, privateKeyKeys...); ok {
			return key, true
		}
		if accounts, ok := doc["fundedAccounts"].([]any); ok && len(accounts) > 0 {
			if first, ok := accounts[0].(map[string]any); ok {
				if key, ok := stringField(first, privateKeyKeys...); ok {
					return key, true
				}
			}
		}
	}
	return "", false
}

// ConfiguredSubnets lists subnet directories that carry a marker file, sorted by name
func (s *SubnetConfigFiles) ConfiguredSubnets(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.home, "subnets"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		for _, marker := range subnetMarkerFiles {
			if fileExists(filepath.Join(s.home, "subnets", entry.Name(), marker)) {
				names = append(names, entry.Name())
				break
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// documents returns every readable config file of a subnet in lookup order
func (s *SubnetConfigFiles) documents(subnet string) []map[string]any {
	if subnet == "" || strings.ContainsAny(subnet, `/\`) {
		return nil
	}

	dir := filepath.Join(s.home, "subnets", subnet)
	var docs []map[string]any
	for _, name := range subnetConfigFiles {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				s.log.Debug("skipping unreadable subnet config", "path", path, "error", err)
			}
			continue
		}
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			s.log.Debug("skipping malformed subnet config", "path", path, "error", err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs
}

func rpcFromDocument(doc map[string]any, defaultNodeURL string) (string, bool) {
	if url, ok := rpcField(doc); ok {
		return url, true
	}
	for _, key := range sortedKeys(doc) {
		if nested, ok := doc[key].(map[string]any); ok {
			if url, ok := rpcField(nested); ok {
				return url, true
			}
		}
	}
	return synthesizeRPC(doc, defaultNodeURL)
}

// synthesizeRPC builds <node url>/ext/bc/<blockchain id>/rpc from fields at the top level or
// one level down. A node URL in the same object as the id wins over the default.
func synthesizeRPC(doc map[string]any, defaultNodeURL string) (string, bool) {
	candidates := []map[string]any{doc}
	for _, key := range sortedKeys(doc) {
		if nested, ok := doc[key].(map[string]any); ok {
			candidates = append(candidates, nested)
		}
	}
	for _, c := range candidates {
		chain, ok := stringField(c, blockchainIDKeys...)
		if !ok {
			continue
		}
		node, ok := stringField(c, nodeURLKeys...)
		if !ok || !isURL(node) {
			node = defaultNodeURL
		}
		return strings.TrimRight(node, "/") + "/ext/bc/" + chain + "/rpc", true
	}
	return "", false
}

// rpcField reads an RPC key holding either a URL or a list of URLs
func rpcField(m map[string]any) (string, bool) {
	for _, key := range rpcKeys {
		switch v := m[key].(type) {
		case string:
			if v = strings.TrimSpace(v); isURL(v) {
				return v, true
			}
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok && isURL(strings.TrimSpace(s)) {
					return strings.TrimSpace(s), true
				}
			}
		}
	}
	return "", false
}

func stringField(m map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := m[key].(string); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v, true
			}
		}
	}
	return "", false
}

func isURL(s string) bool {
	for _, scheme := range []string{"http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(s, scheme) && len(s) > len(scheme) {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]any) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

var _ usecase.SubnetConfigSource = (*SubnetConfigFiles)(nil)
