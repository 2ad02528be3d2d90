// Package juno holds the constants describing the Juno networks which the
// driver targets, and the process-wide cosmos-sdk configuration for them.
package juno

const (
	// AccountAddressPrefix is the bech32 human readable part of Juno account
	// addresses.
	AccountAddressPrefix = "juno"

	// UniTestNetChainID is the chain ID of the "uni" public testnet.
	UniTestNetChainID = "uni-6"

	// UniTestNetDenom is the fee and staking denom of the uni testnet.
	UniTestNetDenom = "ujunox"
)

// Uni testnet public endpoints.
const (
	UniTestNetRPCEndpoint = "https://rpc.uni.juno.deuslabs.fi"
	UniTestNetFaucetURL   = "https://faucet.uni.juno.deuslabs.fi/credit"

	// UniTestNetGasPrice is the minimum gas price accepted by uni validators.
	UniTestNetGasPrice = "0.025" + UniTestNetDenom
)

// Deployed messages contract on the uni testnet.
const (
	MessagesCodeID          uint64 = 2509
	MessagesContractAddress        = "juno1weqt9ksm9k8yq2ekvxlae9jday76azaywnd65p4d9n8gppcura9svq38vv"
	MessagesWasmPath               = "../artifacts/messages.wasm"
	MessagesContractLabel          = "messages"
)

// Driver test wallet and transfer defaults on the uni testnet.
const (
	// DriverTestMnemonic is the publicly known mnemonic of the shared test
	// wallet. It MUST NOT hold mainnet funds.
	DriverTestMnemonic = "test peanut elevator motor proud globe obtain gasp sad balance nature ladder"

	// DriverSendAmount is transferred by the send scenario.
	DriverSendAmount = "1000000" + UniTestNetDenom
)
