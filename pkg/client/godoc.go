// Package client defines the interfaces and types which the driver uses to
// interact with a CosmWasm chain: a TxContext seam over the network and a
// ContractClient which signs, broadcasts and queries on behalf of one wallet.
//
// Concrete implementations live in subpackages (e.g. client/tx) and depend on
// cosmos-sdk, cometbft and wasmd. The interfaces here are kept narrow so that
// the driver can be tested against fakes.
package client
