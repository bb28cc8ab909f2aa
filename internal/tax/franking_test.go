package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/common"
)

func TestFrankingFromDividend(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		percent     string
		wantFranked string
		wantCredit  string
		wantGrossed string
		wantErr     bool
	}{
		{
			name:   "fully franked 700",
			amount: "700", percent: "100",
			wantFranked: "700", wantCredit: "300", wantGrossed: "1000",
		},
		{
			name:   "unfranked dividend",
			amount: "500", percent: "0",
			wantFranked: "0", wantCredit: "0", wantGrossed: "500",
		},
		{
			name:   "half franked",
			amount: "1000", percent: "50",
			wantFranked: "500", wantCredit: "214.29", wantGrossed: "1214.29",
		},
		{
			name:   "zero dividend",
			amount: "0", percent: "100",
			wantFranked: "0", wantCredit: "0", wantGrossed: "0",
		},
		{name: "negative dividend fails", amount: "-1", percent: "100", wantErr: true},
		{name: "percent above 100 fails", amount: "100", percent: "100.01", wantErr: true},
		{name: "negative percent fails", amount: "100", percent: "-5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FrankingFromDividend(decimal.RequireFromString(tt.amount), decimal.RequireFromString(tt.percent))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, common.IsInvalidInput(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.wantFranked).Equal(got.FrankedAmount), "franked: want %s, got %s", tt.wantFranked, got.FrankedAmount)
			assert.True(t, decimal.RequireFromString(tt.wantCredit).Equal(got.FrankingCredit), "credit: want %s, got %s", tt.wantCredit, got.FrankingCredit)
			assert.True(t, decimal.RequireFromString(tt.wantGrossed).Equal(got.GrossedUpDividend), "grossed: want %s, got %s", tt.wantGrossed, got.GrossedUpDividend)
		})
	}
}

func TestFrankingFromDividend_RoundTrip(t *testing.T) {
	// franked + unfranked must reconstruct the dividend exactly for any split.
	amounts := []string{"0", "1", "33.33", "700", "1234.56", "99999.99"}
	percents := []string{"0", "12.5", "50", "75", "100"}

	for _, a := range amounts {
		for _, p := range percents {
			got, err := FrankingFromDividend(decimal.RequireFromString(a), decimal.RequireFromString(p))
			require.NoError(t, err)
			sum := got.FrankedAmount.Add(got.UnfrankedAmount)
			assert.True(t, sum.Equal(decimal.RequireFromString(a)),
				"amount %s at %s%%: franked %s + unfranked %s = %s", a, p, got.FrankedAmount, got.UnfrankedAmount, sum)
		}
	}
}

func TestFrankingFromDividend_FullyFrankedCredit(t *testing.T) {
	// At 100% franking the credit is amount * 3/7, up to cent rounding.
	for _, a := range []string{"7", "70", "700", "7000", "123.45"} {
		amount := decimal.RequireFromString(a)
		got, err := FrankingFromDividend(amount, decimal.NewFromInt(100))
		require.NoError(t, err)
		want := amount.Mul(decimal.NewFromInt(3)).Div(decimal.NewFromInt(7)).Round(2)
		assert.True(t, want.Equal(got.FrankingCredit), "amount %s: want credit %s, got %s", a, want, got.FrankingCredit)
	}
}

func TestBracketTable_TaxImpact(t *testing.T) {
	table := DefaultBrackets()

	t.Run("break-even at the company rate", func(t *testing.T) {
		// Marginal rate 30% equals the company rate, so the credit exactly
		// covers the tax on the grossed-up amount.
		got, err := table.TaxImpact(dec(1000), dec(300), dec(80000))
		require.NoError(t, err)
		assert.True(t, got.MarginalRate.Equal(rate(3000)))
		assert.True(t, got.TaxOnGrossedUp.Equal(dec(300)))
		assert.True(t, got.NetTaxPosition.IsZero(), "want break-even, got %s", got.NetTaxPosition)
		assert.True(t, got.EffectiveTaxRate.Equal(dec(30)))
	})

	t.Run("refundable excess credit at low income", func(t *testing.T) {
		got, err := table.TaxImpact(dec(1000), dec(300), dec(15000))
		require.NoError(t, err)
		assert.True(t, got.TaxOnGrossedUp.IsZero())
		assert.True(t, got.NetTaxPosition.Equal(dec(-300)), "want -300, got %s", got.NetTaxPosition)
	})

	t.Run("additional tax at the top rate", func(t *testing.T) {
		got, err := table.TaxImpact(dec(1000), dec(300), dec(250000))
		require.NoError(t, err)
		assert.True(t, got.TaxOnGrossedUp.Equal(dec(450)))
		assert.True(t, got.NetTaxPosition.Equal(dec(150)), "want 150, got %s", got.NetTaxPosition)
	})

	t.Run("zero grossed-up amount guards the effective rate", func(t *testing.T) {
		got, err := table.TaxImpact(dec(0), dec(0), dec(80000))
		require.NoError(t, err)
		assert.True(t, got.EffectiveTaxRate.IsZero())
		assert.True(t, got.NetTaxPosition.IsZero())
	})

	t.Run("negative grossed-up amount fails", func(t *testing.T) {
		_, err := table.TaxImpact(dec(-1), dec(0), dec(80000))
		require.Error(t, err)
		assert.True(t, common.IsInvalidInput(err))
	})

	t.Run("negative credit fails", func(t *testing.T) {
		_, err := table.TaxImpact(dec(100), dec(-1), dec(80000))
		require.Error(t, err)
		assert.True(t, common.IsInvalidInput(err))
	})
}
