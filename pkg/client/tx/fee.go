package tx

import (
	"strconv"

	"cosmossdk.io/math"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
)

// adjustGas returns ceil(gasUsed * gasAdjustment). The adjustment goes through
// its shortest decimal representation so that e.g. 1.4 is exact.
func adjustGas(gasUsed uint64, gasAdjustment float64) (uint64, error) {
	adjustment, err := math.LegacyNewDecFromStr(strconv.FormatFloat(gasAdjustment, 'f', -1, 64))
	if err != nil {
		return 0, err
	}

	gasLimit := math.LegacyNewDecFromInt(math.NewIntFromUint64(gasUsed)).Mul(adjustment).Ceil()
	return gasLimit.TruncateInt().Uint64(), nil
}

// calculateFee returns ceil(gasPrice * gasLimit) in the gas price denom, or
// no coins if gasPrice is nil.
func calculateFee(gasPrice *cosmostypes.DecCoin, gasLimit uint64) cosmostypes.Coins {
	if gasPrice == nil {
		return cosmostypes.NewCoins()
	}

	gasLimitDec := math.LegacyNewDecFromInt(math.NewIntFromUint64(gasLimit))
	feeAmount := gasPrice.Amount.Mul(gasLimitDec)

	// Truncate and add 1 if there's a remainder to ensure we don't underpay.
	feeInt := feeAmount.TruncateInt()
	if feeAmount.Sub(math.LegacyNewDecFromInt(feeInt)).IsPositive() {
		feeInt = feeInt.Add(math.OneInt())
	}

	return cosmostypes.NewCoins(cosmostypes.NewCoin(gasPrice.Denom, feeInt))
}
