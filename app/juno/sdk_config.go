package juno

import (
	"sync"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var once sync.Once

// InitSDKConfig sets the global cosmos-sdk bech32 prefixes to the Juno ones
// and seals the config. Message validation (e.g. wasmd's ValidateBasic)
// reads these globals, so it MUST be called before any message is built.
// It is safe to call multiple times.
func InitSDKConfig() {
	once.Do(func() {
		initSDKConfig()
	})
}

func initSDKConfig() {
	accountPubKeyPrefix := AccountAddressPrefix + "pub"
	validatorAddressPrefix := AccountAddressPrefix + "valoper"
	validatorPubKeyPrefix := AccountAddressPrefix + "valoperpub"
	consNodeAddressPrefix := AccountAddressPrefix + "valcons"
	consNodePubKeyPrefix := AccountAddressPrefix + "valconspub"

	config := sdk.GetConfig()
	config.SetBech32PrefixForAccount(AccountAddressPrefix, accountPubKeyPrefix)
	config.SetBech32PrefixForValidator(validatorAddressPrefix, validatorPubKeyPrefix)
	config.SetBech32PrefixForConsensusNode(consNodeAddressPrefix, consNodePubKeyPrefix)
	config.Seal()
}
