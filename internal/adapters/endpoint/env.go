package endpoint

import (
	"os"
	"strings"
	"unicode"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

var (
	// RPCEnvVars are checked in order for an RPC URL override
	RPCEnvVars = []string{"AVALANCHE_RPC", "VITE_AVALANCHE_RPC"}
	// PrivateKeyEnvVars are checked in order for a credential override
	PrivateKeyEnvVars = []string{"PRIVATE_KEY", "ADMIN_PRIVATE_KEY"}
	// SubnetNameEnvVar overrides the default subnet name
	SubnetNameEnvVar = "AVALANCHE_SUBNET_NAME"
)

// contractEnvAliases are extra variables the frontend build reads for a logical contract
var contractEnvAliases = map[string][]string{
	"land": {"VITE_CONTRACT_ADDRESS"},
}

// Environment reads endpoint overrides from process environment variables
type Environment struct {
	lookup func(string) (string, bool)
}

// NewEnvironment creates an environment source backed by the process environment
func NewEnvironment() *Environment {
	return &Environment{lookup: os.LookupEnv}
}

// NewEnvironmentFromMap creates an environment source backed by a fixed map
func NewEnvironmentFromMap(vars map[string]string) *Environment {
	return &Environment{lookup: func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}}
}

// RPCURL returns the RPC URL override
func (e *Environment) RPCURL() (string, bool) {
	v, _, ok := e.first(RPCEnvVars...)
	return v, ok
}

// PrivateKey returns the raw credential override. It is not validated here.
func (e *Environment) PrivateKey() (string, bool) {
	v, _, ok := e.first(PrivateKeyEnvVars...)
	return v, ok
}

// SubnetName returns the subnet name override
func (e *Environment) SubnetName() (string, bool) {
	v, _, ok := e.first(SubnetNameEnvVar)
	return v, ok
}

// ContractAddress returns the address override for a logical contract name, looked up as
// <UPPER_SNAKE>_ADDRESS, then VITE_<UPPER_SNAKE>_ADDRESS, then any frontend alias.
// Values that are not hex addresses are ignored.
func (e *Environment) ContractAddress(logicalName string) (string, string, bool) {
	for _, name := range ContractEnvVars(logicalName) {
		v, ok := e.get(name)
		if ok && common.IsHexAddress(v) {
			return v, name, true
		}
	}
	return "", "", false
}

// ContractEnvVars lists the variables consulted for a logical contract name
func ContractEnvVars(logicalName string) []string {
	base := upperSnake(logicalName) + "_ADDRESS"
	names := []string{base, "VITE_" + base}
	return append(names, contractEnvAliases[logicalName]...)
}

func (e *Environment) first(names ...string) (string, string, bool) {
	for _, name := range names {
		if v, ok := e.get(name); ok {
			return v, name, true
		}
	}
	return "", "", false
}

func (e *Environment) get(name string) (string, bool) {
	v, ok := e.lookup(name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// upperSnake converts a camelCase identifier to UPPER_SNAKE_CASE ("digitalID" -> "DIGITAL_ID")
func upperSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		if r == '-' || r == ' ' {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

var _ usecase.EnvironmentSource = (*Environment)(nil)
