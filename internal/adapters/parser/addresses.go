package parser

import (
	"regexp"
	"strings"

	"github.com/trebuchet-org/subnetctl/internal/domain"
)

var addressPattern = regexp.MustCompile(`\b0x[a-fA-F0-9]{40}\b`)

// deploymentPhrases mark a stdout line as reporting a deployed contract
var deploymentPhrases = []string{"deployed at", "deployed:", "deployed to", "deployed"}

func isDeploymentLine(line string) bool {
	lower := strings.ToLower(line)
	for _, phrase := range deploymentPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// ScanDeployedAddresses mines deploy script stdout for contract addresses. For each line reporting
// a deployment, the last address on the line is assigned to the contract the line names.
func ScanDeployedAddresses(stdout string, specs []domain.ContractSpec) *domain.DeploymentAddressSet {
	set := domain.NewDeploymentAddressSet()

	for _, line := range strings.Split(stdout, "\n") {
		if !isDeploymentLine(line) {
			continue
		}
		addrs := addressPattern.FindAllString(line, -1)
		if len(addrs) == 0 {
			continue
		}
		spec, ok := domain.MatchContract(addressPattern.ReplaceAllString(line, " "), specs)
		if !ok {
			continue
		}
		set.Set(spec.LogicalName, addrs[len(addrs)-1], domain.ProvenanceStdout)
	}

	return set
}

// AddressesFromBroadcast collects contract addresses recorded in a broadcast artifact.
// Transactions are read before receipts, so a receipt address overrides its transaction.
func AddressesFromBroadcast(file *domain.BroadcastFile, specs []domain.ContractSpec) *domain.DeploymentAddressSet {
	set := domain.NewDeploymentAddressSet()
	if file == nil {
		return set
	}

	record := func(name, address string) {
		if name == "" || !addressPattern.MatchString(address) || strings.EqualFold(address, domain.ZeroAddress) {
			return
		}
		if spec, ok := domain.MatchContract(name, specs); ok {
			set.Set(spec.LogicalName, address, domain.ProvenanceArtifact)
		}
	}

	for _, tx := range file.Transactions {
		record(tx.ContractName, tx.ContractAddress)
	}
	for _, receipt := range file.Receipts {
		record(receipt.ContractName, receipt.ContractAddress)
	}

	return set
}

// AddressExtractor binds the two extraction passes to a fixed contract list
type AddressExtractor struct {
	specs []domain.ContractSpec
}

// NewAddressExtractor creates an extractor for the project's known contracts
func NewAddressExtractor() *AddressExtractor {
	return &AddressExtractor{specs: domain.KnownContracts}
}

// FromStdout implements usecase.AddressExtractor
func (e *AddressExtractor) FromStdout(stdout string) *domain.DeploymentAddressSet {
	return ScanDeployedAddresses(stdout, e.specs)
}

// FromBroadcast implements usecase.AddressExtractor
func (e *AddressExtractor) FromBroadcast(file *domain.BroadcastFile) *domain.DeploymentAddressSet {
	return AddressesFromBroadcast(file, e.specs)
}
