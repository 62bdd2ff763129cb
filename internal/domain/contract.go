package domain

import "encoding/json"

// ABIDescriptor is the persisted contract interface for one contract on one subnet
type ABIDescriptor struct {
	ABI        json.RawMessage `json:"abi"`
	SubnetName string          `json:"subnet_name"`
	RPCURL     string          `json:"rpc_url"`
}

// ContractLookup is the result of resolving a logical contract name on a subnet
type ContractLookup struct {
	SubnetName  string `json:"subnetName" yaml:"subnetName"`
	LogicalName string `json:"logicalName" yaml:"logicalName"`
	Address     string `json:"address" yaml:"address"`
	Source      string `json:"source" yaml:"source"`
	Live        *bool  `json:"live,omitempty" yaml:"live,omitempty"`
}

// KeyInfo describes one key in the network CLI keystore. The key itself is never exposed.
type KeyInfo struct {
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
	File    string `json:"file" yaml:"file"`
}
