package types

import (
	cosmosclient "github.com/cosmos/cosmos-sdk/client"
)

// Context is used to distinguish a cosmosclient.Context intended for use in
// transactions from others. It is intentionally not an alias so that the
// dependency injector can tell it apart from a plain cosmosclient.Context.
type Context cosmosclient.Context
