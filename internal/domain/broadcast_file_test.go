package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastFile_FieldSpellings(t *testing.T) {
	data := `{
		"chain": 888,
		"transactions": [
			{"hash": "0x01", "transactionType": "CREATE", "contractName": "SaraktTreasury", "contractAddress": "0x00000000000000000000000000000000000000aa"},
			{"hash": "0x02", "transaction_type": "CREATE", "contract_name": "SaraktLandV2", "contract_address": "0x00000000000000000000000000000000000000bb"}
		],
		"receipts": [
			{"transactionHash": "0x02", "status": "0x1", "contract_name": "SaraktLandV2", "contract_address": "0x00000000000000000000000000000000000000bb"}
		]
	}`

	var file BroadcastFile
	require.NoError(t, json.Unmarshal([]byte(data), &file))

	assert.Equal(t, uint64(888), file.Chain)
	require.Len(t, file.Transactions, 2)
	assert.Equal(t, "SaraktTreasury", file.Transactions[0].ContractName)
	assert.Equal(t, "CREATE", file.Transactions[1].TransactionType)
	assert.Equal(t, "SaraktLandV2", file.Transactions[1].ContractName)
	assert.Equal(t, "0x00000000000000000000000000000000000000bb", file.Transactions[1].ContractAddress)
	require.Len(t, file.Receipts, 1)
	assert.Equal(t, "SaraktLandV2", file.Receipts[0].ContractName)
}
