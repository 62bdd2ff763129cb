package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// EndpointSource records which discovery step produced a value
type EndpointSource string

const (
	SourceNone             EndpointSource = "none"
	SourceOverride         EndpointSource = "override"
	SourceEnvironment      EndpointSource = "environment"
	SourceFilesystemConfig EndpointSource = "filesystem-config"
	SourceCLIDescribe      EndpointSource = "cli-describe"
	SourceKeystoreScan     EndpointSource = "keystore-scan"
	SourceHardcodedDefault EndpointSource = "hardcoded-default"
)

const (
	// DefaultSubnetName is the well-known subnet used when no name is configured
	DefaultSubnetName = "ChaosStarNetwork"

	// DefaultSubnetRPC is the last-resort endpoint for DefaultSubnetName. The chain is served by its
	// own node on port 41773; the local node's standard API port 9650 does not serve it and must not
	// be substituted here.
	DefaultSubnetRPC = "http://127.0.0.1:41773/ext/bc/wtHFpLKd93iiPmBBsCdeTEPz6Quj9MoCL8NpuxoFXHtvTVeT1/rpc"
)

// EndpointConfig is a best-effort endpoint and credential pair for one subnet.
// It is recomputed on every resolution and never persisted.
type EndpointConfig struct {
	SubnetName       string         `json:"subnetName" yaml:"subnetName"`
	RPCURL           string         `json:"rpcUrl,omitempty" yaml:"rpcUrl,omitempty"`
	Credential       *Credential    `json:"credential,omitempty" yaml:"credential,omitempty"`
	RPCSource        EndpointSource `json:"rpcSource" yaml:"rpcSource"`
	CredentialSource EndpointSource `json:"credentialSource" yaml:"credentialSource"`
}

// HasRPC reports whether an RPC URL was resolved
func (e *EndpointConfig) HasRPC() bool {
	return e != nil && e.RPCURL != ""
}

// HasCredential reports whether a credential was resolved
func (e *EndpointConfig) HasCredential() bool {
	return e != nil && e.Credential != nil
}

var privateKeyHexPattern = regexp.MustCompile(`^(0x)?[0-9a-fA-F]{64}$`)

// Credential is an opaque private signing key. It prints redacted.
type Credential struct {
	hex string
}

// NormalizePrivateKey accepts 64 hex characters with or without a 0x prefix
// and returns the 0x-prefixed form. Case is preserved.
func NormalizePrivateKey(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if !privateKeyHexPattern.MatchString(raw) {
		return "", false
	}
	if strings.HasPrefix(raw, "0x") {
		return raw, true
	}
	return "0x" + raw, true
}

// NewCredential wraps an already validated, 0x-prefixed key
func NewCredential(prefixedHex string) *Credential {
	return &Credential{hex: prefixedHex}
}

// Reveal returns the 0x-prefixed hex key
func (c *Credential) Reveal() string {
	if c == nil {
		return ""
	}
	return c.hex
}

// String implements fmt.Stringer without exposing the key
func (c *Credential) String() string {
	if c == nil || len(c.hex) < 10 {
		return "<none>"
	}
	return fmt.Sprintf("%s…%s", c.hex[:6], c.hex[len(c.hex)-4:])
}

// MarshalJSON never serializes the key itself
func (c *Credential) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// MarshalYAML never serializes the key itself
func (c *Credential) MarshalYAML() (any, error) {
	return c.String(), nil
}
