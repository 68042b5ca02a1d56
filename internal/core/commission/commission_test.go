package commission

import (
	"math/rand"
	"testing"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/pkg/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		total    money.Amount
		pct      string
		merchant money.Amount
		platform money.Amount
	}{
		{"ten percent", 10000, "10", 9000, 1000},
		{"zero percent", 10000, "0", 10000, 0},
		{"full percent", 10000, "100", 0, 10000},
		{"zero total", 0, "15", 0, 0},
		{"rounds half up", 5, "10", 4, 1},
		{"rounds down below half", 4, "10", 4, 0},
		{"fractional pct", 99999, "2.5", 97499, 2500},
		{"odd total", 333, "33.333", 222, 111},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split, err := Compute(tt.total, decimal.RequireFromString(tt.pct))
			require.NoError(t, err)
			assert.Equal(t, tt.merchant, split.MerchantEarning)
			assert.Equal(t, tt.platform, split.PlatformEarning)
			assert.Equal(t, tt.total, split.MerchantEarning+split.PlatformEarning)
		})
	}
}

func TestCompute_InvalidPercentage(t *testing.T) {
	for _, pct := range []string{"-0.01", "100.01", "250"} {
		t.Run(pct, func(t *testing.T) {
			_, err := Compute(10000, decimal.RequireFromString(pct))
			assert.ErrorIs(t, err, domain.ErrInvalidCommissionRate)
		})
	}
}

func TestCompute_NegativeTotal(t *testing.T) {
	_, err := Compute(-1, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)
}

func TestMerchantAndPlatformEarning_Scenario(t *testing.T) {
	pct := decimal.NewFromInt(10)
	total := money.FromMajor(10000)

	merchant, err := MerchantEarning(total, pct)
	require.NoError(t, err)
	platform, err := PlatformEarning(total, pct)
	require.NoError(t, err)

	assert.Equal(t, money.FromMajor(9000), merchant)
	assert.Equal(t, money.FromMajor(1000), platform)
}

func TestCompute_SharesAlwaysSumToTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		total := money.Amount(rng.Int63n(1_000_000_000))
		// two-decimal percentages in [0, 100]
		pct := decimal.New(rng.Int63n(10001), -2)

		split, err := Compute(total, pct)
		require.NoError(t, err)
		require.Equal(t, total, split.MerchantEarning+split.PlatformEarning, "total=%d pct=%s", total, pct)
		require.False(t, split.MerchantEarning.IsNegative())
		require.False(t, split.PlatformEarning.IsNegative())
	}
}
