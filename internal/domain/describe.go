package domain

// NodeInfo is one row of a node table
type NodeInfo struct {
	Name     string `json:"name" yaml:"name"`
	NodeID   string `json:"nodeId" yaml:"nodeId"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

// ICMInfo holds the interchain messaging contract addresses
type ICMInfo struct {
	MessengerAddress string `json:"messengerAddress,omitempty" yaml:"messengerAddress,omitempty"`
	RegistryAddress  string `json:"registryAddress,omitempty" yaml:"registryAddress,omitempty"`
}

// PrecompileConfig lists the allow-list roles of one precompile.
// Cells reported as "n/a" are left empty.
type PrecompileConfig struct {
	AdminAddresses   string `json:"adminAddresses,omitempty" yaml:"adminAddresses,omitempty"`
	ManagerAddresses string `json:"managerAddresses,omitempty" yaml:"managerAddresses,omitempty"`
	EnabledAddresses string `json:"enabledAddresses,omitempty" yaml:"enabledAddresses,omitempty"`
}

// AllocationEntry is one row of the genesis token allocation table
type AllocationEntry struct {
	Description string `json:"description" yaml:"description"`
	Address     string `json:"address" yaml:"address"`
	Amount      string `json:"amount" yaml:"amount"`
}

// DescribeRecord is the structured form of "blockchain describe" output
type DescribeRecord struct {
	Name              string                       `json:"name" yaml:"name"`
	VMID              string                       `json:"vmId" yaml:"vmId"`
	VMVersion         string                       `json:"vmVersion" yaml:"vmVersion"`
	Validation        string                       `json:"validation" yaml:"validation"`
	Networks          map[string]map[string]string `json:"networks" yaml:"networks"`
	ICM               ICMInfo                      `json:"icm" yaml:"icm"`
	Token             map[string]string            `json:"token" yaml:"token"`
	InitialAllocation []AllocationEntry            `json:"initialAllocation" yaml:"initialAllocation"`
	RPCURLs           map[string]string            `json:"rpcUrls" yaml:"rpcUrls"`
	PrimaryNodes      []NodeInfo                   `json:"primaryNodes" yaml:"primaryNodes"`
	L1Nodes           []NodeInfo                   `json:"l1Nodes" yaml:"l1Nodes"`
	PrecompileConfigs map[string]PrecompileConfig  `json:"precompileConfigs" yaml:"precompileConfigs"`
	WalletConnection  map[string]string            `json:"walletConnection" yaml:"walletConnection"`
}

// NewDescribeRecord returns a record with every collection initialized
func NewDescribeRecord() *DescribeRecord {
	return &DescribeRecord{
		Networks:          make(map[string]map[string]string),
		Token:             make(map[string]string),
		InitialAllocation: []AllocationEntry{},
		RPCURLs:           make(map[string]string),
		PrimaryNodes:      []NodeInfo{},
		L1Nodes:           []NodeInfo{},
		PrecompileConfigs: make(map[string]PrecompileConfig),
		WalletConnection:  make(map[string]string),
	}
}

// SubnetDescribeRecord is the structured form of the legacy "subnet describe" output
type SubnetDescribeRecord struct {
	Name       string                       `json:"name" yaml:"name"`
	VMID       string                       `json:"vmId" yaml:"vmId"`
	VMVersion  string                       `json:"vmVersion" yaml:"vmVersion"`
	Validation string                       `json:"validation" yaml:"validation"`
	Networks   map[string]map[string]string `json:"networks" yaml:"networks"`
	ICM        ICMInfo                      `json:"icm" yaml:"icm"`
	Token      map[string]string            `json:"token" yaml:"token"`
}

// NewSubnetDescribeRecord returns a record with every collection initialized
func NewSubnetDescribeRecord() *SubnetDescribeRecord {
	return &SubnetDescribeRecord{
		Networks: make(map[string]map[string]string),
		Token:    make(map[string]string),
	}
}

// NetworkStatus is the structured form of "network status" output
type NetworkStatus struct {
	IsUp             bool              `json:"isUp" yaml:"isUp"`
	Nodes            int               `json:"nodes" yaml:"nodes"`
	CustomVMs        int               `json:"customVms" yaml:"customVms"`
	NetworkHealthy   bool              `json:"networkHealthy" yaml:"networkHealthy"`
	CustomVMsHealthy bool              `json:"customVmsHealthy" yaml:"customVmsHealthy"`
	RPCURLs          map[string]string `json:"rpcUrls" yaml:"rpcUrls"`
	PrimaryNodes     []NodeInfo        `json:"primaryNodes" yaml:"primaryNodes"`
	L1Nodes          []NodeInfo        `json:"l1Nodes" yaml:"l1Nodes"`
}

// NewNetworkStatus returns a status with every collection initialized
func NewNetworkStatus() *NetworkStatus {
	return &NetworkStatus{
		RPCURLs:      make(map[string]string),
		PrimaryNodes: []NodeInfo{},
		L1Nodes:      []NodeInfo{},
	}
}

// SubnetSummary is one entry of the subnet listing
type SubnetSummary struct {
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"`
}

const (
	SubnetStatusConfigured = "configured"
	SubnetStatusRunning    = "running"
)

// SubnetDescription is the parsed describe output of one subnet together with the values the
// endpoint resolver mines from it
type SubnetDescription struct {
	SubnetName string                `json:"subnetName" yaml:"subnetName"`
	Command    string                `json:"command" yaml:"command"`
	Blockchain *DescribeRecord       `json:"blockchain,omitempty" yaml:"blockchain,omitempty"`
	Subnet     *SubnetDescribeRecord `json:"subnet,omitempty" yaml:"subnet,omitempty"`
	RPCURL     string                `json:"rpcUrl,omitempty" yaml:"rpcUrl,omitempty"`

	// KeyToken is a private key printed in the describe tables, if any. Never serialized.
	KeyToken string `json:"-" yaml:"-"`
}
