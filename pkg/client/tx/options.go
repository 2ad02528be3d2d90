package tx

import (
	"time"

	cosmostypes "github.com/cosmos/cosmos-sdk/types"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/client"
)

// WithGasPrice sets the gas price used to compute tx fees. Without it, txs
// are broadcast with an empty fee.
func WithGasPrice(gasPrice cosmostypes.DecCoin) client.ContractClientOption {
	return func(contractClient client.ContractClient) {
		contractClient.(*SigningClient).gasPrice = &gasPrice
	}
}

// WithGasAdjustment sets the multiplier applied to simulated gas to obtain
// the gas limit.
func WithGasAdjustment(gasAdjustment float64) client.ContractClientOption {
	return func(contractClient client.ContractClient) {
		contractClient.(*SigningClient).gasAdjustment = gasAdjustment
	}
}

// WithPollInterval sets how often the client looks up a broadcast tx until it
// is included.
func WithPollInterval(interval time.Duration) client.ContractClientOption {
	return func(contractClient client.ContractClient) {
		contractClient.(*SigningClient).pollInterval = interval
	}
}

// WithBroadcastTimeout bounds the time between broadcast and inclusion.
func WithBroadcastTimeout(timeout time.Duration) client.ContractClientOption {
	return func(contractClient client.ContractClient) {
		contractClient.(*SigningClient).broadcastTimeout = timeout
	}
}

// WithMemo sets the memo of every tx.
func WithMemo(memo string) client.ContractClientOption {
	return func(contractClient client.ContractClient) {
		contractClient.(*SigningClient).memo = memo
	}
}
