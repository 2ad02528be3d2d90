package tx

import (
	"testing"

	"cosmossdk.io/math"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

func TestCalculateFee(t *testing.T) {
	gasPrice := cosmostypes.NewDecCoinFromDec("ujunox", math.LegacyMustNewDecFromStr("0.025"))

	tests := []struct {
		desc        string
		gasPrice    *cosmostypes.DecCoin
		gasLimit    uint64
		expectedFee string
	}{
		{desc: "no gas price", gasPrice: nil, gasLimit: 140_000, expectedFee: ""},
		{desc: "exact", gasPrice: &gasPrice, gasLimit: 140_000, expectedFee: "3500ujunox"},
		{desc: "rounds up", gasPrice: &gasPrice, gasLimit: 100_001, expectedFee: "2501ujunox"},
		{desc: "rounds up below one", gasPrice: &gasPrice, gasLimit: 1, expectedFee: "1ujunox"},
		{desc: "zero gas", gasPrice: &gasPrice, gasLimit: 0, expectedFee: ""},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			fee := calculateFee(test.gasPrice, test.gasLimit)
			require.Equal(t, test.expectedFee, fee.String())
		})
	}
}

func TestAdjustGas(t *testing.T) {
	tests := []struct {
		gasUsed          uint64
		gasAdjustment    float64
		expectedGasLimit uint64
	}{
		{gasUsed: 100_000, gasAdjustment: 1.4, expectedGasLimit: 140_000},
		{gasUsed: 1, gasAdjustment: 1.4, expectedGasLimit: 2},
		{gasUsed: 0, gasAdjustment: 1.4, expectedGasLimit: 0},
		{gasUsed: 12_345, gasAdjustment: 1.3, expectedGasLimit: 16_049},
		{gasUsed: 87_654, gasAdjustment: 1, expectedGasLimit: 87_654},
	}

	for _, test := range tests {
		gasLimit, err := adjustGas(test.gasUsed, test.gasAdjustment)
		require.NoError(t, err)
		require.Equalf(t, test.expectedGasLimit, gasLimit, "%d * %v", test.gasUsed, test.gasAdjustment)
	}
}

func TestMsgTypeLabel(t *testing.T) {
	require.Equal(t, "", msgTypeLabel(nil))
}
