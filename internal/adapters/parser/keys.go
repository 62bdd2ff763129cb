package parser

import (
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/trebuchet-org/subnetctl/internal/domain"
)

var keyTokenPattern = regexp.MustCompile(`\b(0x)?[0-9a-fA-F]{64}\b`)

// FindKeyToken looks for an embedded private key in describe output. Only the genesis allocation
// table and rows labelled as a private key are considered, so hex chain identifiers are never taken.
func FindKeyToken(output string) (string, bool) {
	var found string
	scanRows(output, func(row Row) {
		if found != "" || len(row.Cells) == 0 {
			return
		}
		if row.Section != SectionAllocation && !strings.Contains(strings.ToLower(row.Line), "private key") {
			return
		}
		for _, token := range keyTokenPattern.FindAllString(row.Line, -1) {
			if key, ok := domain.NormalizePrivateKey(token); ok {
				found = key
				return
			}
		}
	})
	return found, found != ""
}

// PreferredRPCURL picks the RPC URL a client should use from a describe record
func PreferredRPCURL(rec *domain.DescribeRecord) string {
	if rec == nil {
		return ""
	}
	if url := rec.RPCURLs["localhost"]; url != "" {
		return url
	}
	for _, location := range slices.Sorted(maps.Keys(rec.RPCURLs)) {
		if url := rec.RPCURLs[location]; url != "" {
			return url
		}
	}
	if url := rec.WalletConnection["network_rpc_url"]; strings.HasPrefix(url, "http") {
		return url
	}
	return rpcFromNetworks(rec.Networks)
}

// PreferredSubnetRPCURL picks the RPC URL from a legacy subnet describe record
func PreferredSubnetRPCURL(rec *domain.SubnetDescribeRecord) string {
	if rec == nil {
		return ""
	}
	return rpcFromNetworks(rec.Networks)
}

// rpcFromNetworks prefers the known networks in their listed order, then any other network by name
func rpcFromNetworks(networks map[string]map[string]string) string {
	names := slices.Sorted(maps.Keys(networks))
	slices.SortStableFunc(names, func(a, b string) int {
		return networkRank(a) - networkRank(b)
	})
	for _, name := range names {
		fields := networks[name]
		for _, key := range slices.Sorted(maps.Keys(fields)) {
			if value := fields[key]; strings.Contains(strings.ToLower(key), "rpc") && strings.HasPrefix(value, "http") {
				return value
			}
		}
	}
	return ""
}

func networkRank(name string) int {
	if i := slices.Index(KnownNetworks, name); i >= 0 {
		return i
	}
	return len(KnownNetworks)
}
