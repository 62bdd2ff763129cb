package domain

import "encoding/json"

// BroadcastFile represents a Foundry broadcast artifact (run-latest.json)
type BroadcastFile struct {
	Chain        uint64                 `json:"chain"`
	Transactions []BroadcastTransaction `json:"transactions"`
	Receipts     []BroadcastReceipt     `json:"receipts"`
	Timestamp    uint64                 `json:"timestamp"`
	Commit       string                 `json:"commit"`
}

// BroadcastTransaction represents a transaction in a broadcast file.
// Older toolchain releases wrote snake_case keys; both spellings are accepted.
type BroadcastTransaction struct {
	Hash            string
	TransactionType string
	ContractName    string
	ContractAddress string
	Function        string
}

// UnmarshalJSON accepts camelCase and snake_case field names
func (t *BroadcastTransaction) UnmarshalJSON(data []byte) error {
	var raw struct {
		Hash               string `json:"hash"`
		TransactionType    string `json:"transactionType"`
		TransactionTypeOld string `json:"transaction_type"`
		ContractName       string `json:"contractName"`
		ContractNameOld    string `json:"contract_name"`
		ContractAddress    string `json:"contractAddress"`
		ContractAddressOld string `json:"contract_address"`
		Function           string `json:"function"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Hash = raw.Hash
	t.TransactionType = firstNonEmpty(raw.TransactionType, raw.TransactionTypeOld)
	t.ContractName = firstNonEmpty(raw.ContractName, raw.ContractNameOld)
	t.ContractAddress = firstNonEmpty(raw.ContractAddress, raw.ContractAddressOld)
	t.Function = raw.Function
	return nil
}

// BroadcastReceipt represents a receipt in a broadcast file
type BroadcastReceipt struct {
	TransactionHash string
	BlockNumber     string
	Status          string
	ContractName    string
	ContractAddress string
}

// UnmarshalJSON accepts camelCase and snake_case field names
func (r *BroadcastReceipt) UnmarshalJSON(data []byte) error {
	var raw struct {
		TransactionHash    string `json:"transactionHash"`
		BlockNumber        string `json:"blockNumber"`
		Status             string `json:"status"`
		ContractName       string `json:"contractName"`
		ContractNameOld    string `json:"contract_name"`
		ContractAddress    string `json:"contractAddress"`
		ContractAddressOld string `json:"contract_address"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.TransactionHash = raw.TransactionHash
	r.BlockNumber = raw.BlockNumber
	r.Status = raw.Status
	r.ContractName = firstNonEmpty(raw.ContractName, raw.ContractNameOld)
	r.ContractAddress = firstNonEmpty(raw.ContractAddress, raw.ContractAddressOld)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
