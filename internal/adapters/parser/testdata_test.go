package parser

const blockchainDescribeFixture = `
+------------------------------------------------------------------------------+
|                                   MYCHAIN                                    |
+---------------+--------------------------------------------------------------+
| Name          | mychain                                                      |
+---------------+--------------------------------------------------------------+
| VM ID         | qDMnZ895HKpRXA2wEvujJew8nNFEkvcrH5frCR9T1Suk1sREe            |
+---------------+--------------------------------------------------------------+
| VM Version    | v0.7.3                                                       |
+---------------+--------------------------------------------------------------+
| Validation    | Proof Of Authority                                           |
+---------------+--------------------------+-----------------------------------+
| Local Network | ChainID                  | 888                               |
|               +--------------------------+-----------------------------------+
|               | SubnetID                 | 2W9boARgCWL25z6pMFNtkCfNA5v28VGg9PmBgUJfuKndEdhrvw |
|               +--------------------------+-----------------------------------+
|               | BlockchainID (CB58)      | wtHFpLKd93iiPmBBsCdeTEPz6Quj9MoCL8NpuxoFXHtvTVeT1 |
|               | BlockchainID (HEX)       | 0x7fc93d85c6d62c5b2ac0b519c87010ea5294012d1e407030d6acd0021cac10d5 |
+---------------+--------------------------+-----------------------------------+

+------------------------------------------------------------------------------+
|                                     ICM                                      |
+---------------+-----------------------+--------------------------------------+
| Local Network | ICM Messenger Address | 0x253b2784c75e510dD0fF1da844684a1aC0aa5fcf |
|               +-----------------------+--------------------------------------+
|               | ICM Registry Address  | 0x17aB05351fC94a1a67Bf3f56DdbB941aE6c63E25 |
+---------------+-----------------------+--------------------------------------+

+---------------------------+
|           TOKEN           |
+--------------+------------+
| Token Name   | TEST Token |
+--------------+------------+
| Token Symbol | TEST       |
+--------------+------------+

+------------------------------------------------------------------------------+
|                           INITIAL TOKEN ALLOCATION                           |
+---------------------+--------------------------------------------+-----------+
| DESCRIPTION         | ADDRESS AND PRIVATE KEY                    | AMOUNT (TEST) |
+---------------------+--------------------------------------------+-----------+
| Main funded account | 0x8db97C7cEcE249c2b98bDC0226Cc4C2A57BF52FC | 1000000   |
| ewoq                | 56289e99c94b6912bfc12adc093c9b51124f0dc54ac7a766b2bc5ccf558d8027 |  |
+---------------------+--------------------------------------------+-----------+

+------------------------------------------------------------------------------+
|                                   RPC URLS                                   |
+-----------+------------------------------------------------------------------+
| Localhost | http://127.0.0.1:9650/ext/bc/mychain/rpc                         |
+-----------+------------------------------------------------------------------+

+------------------------------------------------------------------------------+
|                                PRIMARY NODES                                 |
+-------+------------------------------------------+---------------------------+
| NAME  | NODE ID                                  | LOCALHOST ENDPOINT        |
+-------+------------------------------------------+---------------------------+
| node1 | NodeID-7Xhw2mDxuDS44j42TCB6U5579esbSt3Lg | http://127.0.0.1:9650     |
+-------+------------------------------------------+---------------------------+
| node2 | NodeID-MFrZFVCXPv5iCn6M9K6XduxGTYp891xXZ | http://127.0.0.1:9652     |
+-------+------------------------------------------+---------------------------+

+------------------------------------------------------------------------------+
|                                   L1 NODES                                   |
+----------------+------------------------------------------+------------------+
| NAME           | NODE ID                                  | LOCALHOST ENDPOINT |
+----------------+------------------------------------------+------------------+
| mychain-node1  | NodeID-P7oB2McjBGgW2NXXWVYjV8JEDFoW9xDE5 | http://127.0.0.1:9654 |
+----------------+------------------------------------------+------------------+

+------------------------------------------------------------------------------+
|                              PRECOMPILE CONFIGS                              |
+---------------+-----------------+-------------------+------------------------+
| PRECOMPILE    | ADMIN ADDRESSES | MANAGER ADDRESSES | ENABLED ADDRESSES      |
+---------------+-----------------+-------------------+------------------------+
| Warp          | n/a             | n/a               | n/a                    |
+---------------+-----------------+-------------------+------------------------+
| Native Minter | 0x8db97C7cEcE249c2b98bDC0226Cc4C2A57BF52FC | n/a | n/a        |
+---------------+-----------------+-------------------+------------------------+

+------------------------------------------------------------------------------+
|                              WALLET CONNECTION                               |
+-----------------+------------------------------------------------------------+
| Network RPC URL | http://127.0.0.1:9650/ext/bc/mychain/rpc                   |
+-----------------+------------------------------------------------------------+
| Network Name    | mychain                                                    |
+-----------------+------------------------------------------------------------+
| Chain ID        | 888                                                        |
+-----------------+------------------------------------------------------------+
| Token Symbol    | TEST                                                       |
+-----------------+------------------------------------------------------------+
`

const subnetDescribeFixture = `
 _____       _        _ _
|  __ \     | |      (_) |
+--------------------------------------------------------------------+
|                             NETHER                                 |
+------------------------+-------------------------------------------+
| Name                   | nether                                    |
+------------------------+-------------------------------------------+
| VM ID                  | srEXiWaHuhNyGwPUi444Tu47ZEDwxTWrbQiuD7FmgSAQ6X7Dy |
+------------------------+-------------------------------------------+
| VM Version             | v0.6.12                                   |
+------------------------+-------------------------------------------+
| Validation             | Proof Of Authority                        |
+------------------------+-------------------------------------------+
| Fuji                   | ChainID           | 43113                 |
|                        | SubnetID          | 2u9kLr3vwkdBpDXqfCb8m6d4qdJ7kDjj9Xq5h3 |
|                        | BlockchainID      | 2oYMBNV4eNHyqk2fjjV5nVQLDbtmNJzq5s3qs3Lo6ftnC6FByM |
|                        | RPC Endpoint      | https://subnets.avax.network/nether/testnet/rpc |
+------------------------+-------------------------------------------+
| ICM Messenger Address  | 0x253b2784c75e510dD0fF1da844684a1aC0aa5fcf |
| ICM Registry Address   | 0x17aB05351fC94a1a67Bf3f56DdbB941aE6c63E25 |
+------------------------+-------------------------------------------+
| Token Name             | Nether Token                              |
| Token Symbol           | NTR                                       |
+------------------------+-------------------------------------------+
`

const networkStatusFixture = `
Network is Up:
  Number of Nodes: 2
  Number of Custom VMs: 1
  Network Healthy: true
  Custom VMs Healthy: false
+------------------------------------------------------------------+
|                          PRIMARY NODES                           |
+-------+------------------------------------------+---------------+
| NAME  | NODE ID                                  | LOCALHOST ENDPOINT |
+-------+------------------------------------------+---------------+
| node1 | NodeID-7Xhw2mDxuDS44j42TCB6U5579esbSt3Lg | http://127.0.0.1:9650 |
| node2 | NodeID-MFrZFVCXPv5iCn6M9K6XduxGTYp891xXZ | http://127.0.0.1:9652 |
+-------+------------------------------------------+---------------+
+------------------------------------------------------------------+
|                             L1 NODES                             |
+---------------+------------------------------------------+-------+
| NAME          | NODE ID                                  | LOCALHOST ENDPOINT |
+---------------+------------------------------------------+-------+
| mychain-node1 | NodeID-P7oB2McjBGgW2NXXWVYjV8JEDFoW9xDE5 | http://127.0.0.1:9654 |
+---------------+------------------------------------------+-------+
+------------------------------------------------------------------+
|                         mychain RPC URLs                         |
+-----------+------------------------------------------------------+
| Localhost | http://127.0.0.1:9654/ext/bc/mychain/rpc             |
+-----------+------------------------------------------------------+
`
