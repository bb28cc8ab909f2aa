package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/common"
)

func TestBracketTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		table   BracketTable
		wantErr bool
	}{
		{
			name:  "default table is valid",
			table: DefaultBrackets(),
		},
		{
			name:    "empty table",
			table:   BracketTable{},
			wantErr: true,
		},
		{
			name: "first bracket not at zero",
			table: BracketTable{
				{MinIncome: dec(100), MaxIncome: nil, Rate: rate(1000)},
			},
			wantErr: true,
		},
		{
			name: "gap between brackets",
			table: BracketTable{
				{MinIncome: dec(0), MaxIncome: ptr(dec(10000)), Rate: rate(0)},
				{MinIncome: dec(20000), MaxIncome: nil, Rate: rate(1000)},
			},
			wantErr: true,
		},
		{
			name: "bounded final bracket",
			table: BracketTable{
				{MinIncome: dec(0), MaxIncome: ptr(dec(10000)), Rate: rate(0)},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBracketTable_BracketFor(t *testing.T) {
	table := DefaultBrackets()

	tests := []struct {
		name     string
		income   decimal.Decimal
		wantRate decimal.Decimal
		wantErr  bool
	}{
		{name: "zero income", income: dec(0), wantRate: rate(0)},
		{name: "inside tax-free threshold", income: dec(18000), wantRate: rate(0)},
		{name: "boundary resolves to higher bracket", income: dec(18200), wantRate: rate(1600)},
		{name: "middle bracket", income: dec(80000), wantRate: rate(3000)},
		{name: "boundary of top bracket", income: dec(190000), wantRate: rate(4500)},
		{name: "unbounded top bracket", income: dec(1000000), wantRate: rate(4500)},
		{name: "negative income fails", income: dec(-1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := table.BracketFor(tt.income)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, common.IsInvalidInput(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.wantRate.Equal(b.Rate), "want rate %s, got %s", tt.wantRate, b.Rate)
		})
	}
}

func TestBracketTable_ProgressiveTax(t *testing.T) {
	table := DefaultBrackets()

	tests := []struct {
		name   string
		income int64
		want   string
	}{
		{name: "zero income", income: 0, want: "0"},
		{name: "below threshold", income: 18200, want: "0"},
		{name: "just above threshold", income: 20000, want: "288"},   // 1800 * 0.16
		{name: "second bracket top", income: 45000, want: "4288"},    // 26800 * 0.16
		{name: "eighty thousand", income: 80000, want: "14788"},      // 4288 + 35000 * 0.30
		{name: "third bracket top", income: 135000, want: "31288"},   // 4288 + 90000 * 0.30
		{name: "top bracket entry", income: 190000, want: "51638"},   // 31288 + 55000 * 0.37
		{name: "into the top bracket", income: 200000, want: "56138"}, // 51638 + 10000 * 0.45
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.ProgressiveTax(dec(tt.income))
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}

	t.Run("negative income fails", func(t *testing.T) {
		_, err := table.ProgressiveTax(dec(-100))
		require.Error(t, err)
		assert.True(t, common.IsInvalidInput(err))
	})
}

func TestBracketTable_ProgressiveTax_Monotonic(t *testing.T) {
	table := DefaultBrackets()

	prev := decimal.Zero
	for income := int64(0); income <= 250000; income += 1357 {
		got, err := table.ProgressiveTax(dec(income))
		require.NoError(t, err)
		assert.True(t, got.GreaterThanOrEqual(prev),
			"tax decreased at income %d: %s < %s", income, got, prev)
		prev = got
	}
}

func TestMedicarePolicy_MedicareLevy(t *testing.T) {
	policy := DefaultMedicarePolicy()

	tests := []struct {
		name   string
		income int64
		want   string
	}{
		{name: "zero income", income: 0, want: "0"},
		{name: "below low-income threshold", income: 24276, want: "0"},
		{name: "phase-in band", income: 25000, want: "72.4"}, // (25000 - 24276) * 0.10
		{name: "above phase-in ceiling", income: 80000, want: "1600"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := policy.MedicareLevy(dec(tt.income))
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}

	t.Run("negative income fails", func(t *testing.T) {
		_, err := policy.MedicareLevy(dec(-1))
		require.Error(t, err)
		assert.True(t, common.IsInvalidInput(err))
	})
}

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }
