package domain

import (
	"maps"
	"regexp"
	"slices"
	"strings"
)

// AddressProvenance tags where a contract address was learned
type AddressProvenance string

const (
	ProvenanceStdout    AddressProvenance = "stdout-heuristic"
	ProvenanceArtifact  AddressProvenance = "artifact-file"
	ProvenanceWorkspace AddressProvenance = "workspace"
)

// ZeroAddress is never treated as a deployed contract
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// ContractSpec ties a logical contract name to the artifact and the aliases it may appear under
type ContractSpec struct {
	LogicalName  string
	ArtifactName string
	Aliases      []string
}

// KnownContracts is the set of contracts deployed by the project's deploy script
var KnownContracts = []ContractSpec{
	{LogicalName: "digitalID", ArtifactName: "SaraktDigitalID", Aliases: []string{"digitalid"}},
	{LogicalName: "treasury", ArtifactName: "SaraktTreasury", Aliases: []string{"treasury"}},
	{LogicalName: "land", ArtifactName: "SaraktLandV2", Aliases: []string{"saraktland", "land"}},
	{LogicalName: "dummyToken", ArtifactName: "DummyToken", Aliases: []string{"dummytoken"}},
}

// names returns every lowercase name the contract may be referred to by
func (c ContractSpec) names() []string {
	out := []string{strings.ToLower(c.ArtifactName), strings.ToLower(c.LogicalName)}
	for _, alias := range c.Aliases {
		out = append(out, strings.ToLower(alias))
	}
	return out
}

var identifierPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// MatchContract finds the contract a piece of text refers to. Whole identifiers are matched first
// (case-insensitive); substring matching is a second, lower-priority pass that prefers the longest name.
func MatchContract(text string, specs []ContractSpec) (ContractSpec, bool) {
	identifiers := identifierPattern.FindAllString(text, -1)
	for _, ident := range identifiers {
		ident = strings.ToLower(ident)
		for _, spec := range specs {
			if slices.Contains(spec.names(), ident) {
				return spec, true
			}
		}
	}

	lower := strings.ToLower(text)
	best, bestLen := ContractSpec{}, 0
	for _, spec := range specs {
		for _, name := range spec.names() {
			if len(name) > bestLen && strings.Contains(lower, name) {
				best, bestLen = spec, len(name)
			}
		}
	}
	return best, bestLen > 0
}

// DeploymentAddressSet maps logical contract names to addresses and remembers where each came from
type DeploymentAddressSet struct {
	Addresses  map[string]string            `json:"addresses" yaml:"addresses"`
	Provenance map[string]AddressProvenance `json:"provenance" yaml:"provenance"`
}

// NewDeploymentAddressSet returns an empty set
func NewDeploymentAddressSet() *DeploymentAddressSet {
	return &DeploymentAddressSet{
		Addresses:  make(map[string]string),
		Provenance: make(map[string]AddressProvenance),
	}
}

// Set records an address, overwriting any previous entry for the name
func (s *DeploymentAddressSet) Set(name, address string, provenance AddressProvenance) {
	s.Addresses[name] = address
	s.Provenance[name] = provenance
}

// Get returns the address recorded for a logical name
func (s *DeploymentAddressSet) Get(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	addr, ok := s.Addresses[name]
	return addr, ok
}

// Len returns the number of recorded contracts
func (s *DeploymentAddressSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Addresses)
}

// Names returns the logical names in sorted order
func (s *DeploymentAddressSet) Names() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.Addresses))
}

// Clone returns a deep copy
func (s *DeploymentAddressSet) Clone() *DeploymentAddressSet {
	out := NewDeploymentAddressSet()
	if s == nil {
		return out
	}
	maps.Copy(out.Addresses, s.Addresses)
	maps.Copy(out.Provenance, s.Provenance)
	return out
}

// MergeInto copies every entry of src over dst
func (s *DeploymentAddressSet) MergeInto(dst *DeploymentAddressSet) {
	if s == nil {
		return
	}
	for name, addr := range s.Addresses {
		dst.Set(name, addr, s.Provenance[name])
	}
}

// MergeAddressSets combines the two extraction passes of a deploy run.
// Artifact entries always win; stdout entries only fill names the artifact did not cover.
func MergeAddressSets(stdout, artifact *DeploymentAddressSet) *DeploymentAddressSet {
	merged := stdout.Clone()
	artifact.MergeInto(merged)
	return merged
}
