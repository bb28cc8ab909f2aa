// Package tax implements the progressive income-tax and dividend imputation
// arithmetic for Australian resident individuals.
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/common"
)

// Bracket is one row of the progressive marginal-rate table. A nil MaxIncome
// marks the unbounded top bracket. Boundary incomes belong to the bracket
// whose MinIncome equals them.
type Bracket struct {
	MaxIncome   *decimal.Decimal
	MinIncome   decimal.Decimal
	Rate        decimal.Decimal
	Description string
}

// BracketTable is a sorted, non-overlapping, exhaustive set of brackets.
type BracketTable []Bracket

// dec is a shorthand for building decimal constants from integers.
func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// rate builds a decimal rate from a per-ten-thousand integer (3250 -> 0.325).
func rate(perTenThousand int64) decimal.Decimal {
	return decimal.NewFromInt(perTenThousand).Div(dec(10000))
}

// DefaultBrackets returns the resident rates for 2024-25 onwards (Stage 3).
// Source: ATO individual income tax rates.
func DefaultBrackets() BracketTable {
	max := func(n int64) *decimal.Decimal { d := dec(n); return &d }
	return BracketTable{
		{MinIncome: dec(0), MaxIncome: max(18200), Rate: rate(0), Description: "Tax-free threshold"},
		{MinIncome: dec(18200), MaxIncome: max(45000), Rate: rate(1600), Description: "16% on income over $18,200"},
		{MinIncome: dec(45000), MaxIncome: max(135000), Rate: rate(3000), Description: "30% on income over $45,000"},
		{MinIncome: dec(135000), MaxIncome: max(190000), Rate: rate(3700), Description: "37% on income over $135,000"},
		{MinIncome: dec(190000), MaxIncome: nil, Rate: rate(4500), Description: "45% on income over $190,000"},
	}
}

// Validate checks that the table is sorted, contiguous and exhaustive: the
// first bracket starts at zero, each MaxIncome equals the next MinIncome, and
// only the final bracket is unbounded.
func (t BracketTable) Validate() error {
	if len(t) == 0 {
		return common.InvalidInputf("bracket table is empty")
	}
	if !t[0].MinIncome.IsZero() {
		return common.InvalidInputf("first bracket must start at 0, got %s", t[0].MinIncome)
	}
	for i, b := range t {
		last := i == len(t)-1
		if last {
			if b.MaxIncome != nil {
				return common.InvalidInputf("final bracket must be unbounded")
			}
			continue
		}
		if b.MaxIncome == nil {
			return common.InvalidInputf("bracket %d is unbounded but not last", i)
		}
		if b.MaxIncome.LessThanOrEqual(b.MinIncome) {
			return common.InvalidInputf("bracket %d has non-positive width", i)
		}
		if !b.MaxIncome.Equal(t[i+1].MinIncome) {
			return common.InvalidInputf("bracket %d (max %s) does not meet bracket %d (min %s)",
				i, b.MaxIncome, i+1, t[i+1].MinIncome)
		}
	}
	return nil
}

// BracketFor returns the bracket an income falls into. An income equal to a
// bracket boundary resolves to the higher bracket.
func (t BracketTable) BracketFor(income decimal.Decimal) (Bracket, error) {
	if income.IsNegative() {
		return Bracket{}, common.InvalidInputf("income must not be negative, got %s", income)
	}
	for i := len(t) - 1; i >= 0; i-- {
		if income.GreaterThanOrEqual(t[i].MinIncome) {
			return t[i], nil
		}
	}
	return Bracket{}, common.ErrNoBracket
}

// MarginalRate returns the marginal rate applied to the next dollar of income.
func (t BracketTable) MarginalRate(income decimal.Decimal) (decimal.Decimal, error) {
	b, err := t.BracketFor(income)
	if err != nil {
		return decimal.Zero, err
	}
	return b.Rate, nil
}

// ProgressiveTax computes the tax payable on a taxable income by summing
// bracket width times rate across every bracket up to the income. The result
// is rounded to cents.
func (t BracketTable) ProgressiveTax(income decimal.Decimal) (decimal.Decimal, error) {
	if income.IsNegative() {
		return decimal.Zero, common.InvalidInputf("taxable income must not be negative, got %s", income)
	}
	total := decimal.Zero
	for _, b := range t {
		if income.LessThanOrEqual(b.MinIncome) {
			break
		}
		upper := income
		if b.MaxIncome != nil && upper.GreaterThan(*b.MaxIncome) {
			upper = *b.MaxIncome
		}
		total = total.Add(upper.Sub(b.MinIncome).Mul(b.Rate))
	}
	return total.Round(2), nil
}

// MedicarePolicy holds the Medicare levy parameters. All values are policy
// constants for a given year, overridable by the caller.
type MedicarePolicy struct {
	Rate               decimal.Decimal // levy rate on taxable income
	LowIncomeThreshold decimal.Decimal // no levy at or below this income
	PhaseInCeiling     decimal.Decimal // full levy above this income
	PhaseInRate        decimal.Decimal // rate applied to the excess in the phase-in band
}

// DefaultMedicarePolicy returns the 2024-25 single-taxpayer parameters.
func DefaultMedicarePolicy() MedicarePolicy {
	return MedicarePolicy{
		Rate:               rate(200),
		LowIncomeThreshold: dec(24276),
		PhaseInCeiling:     dec(30345),
		PhaseInRate:        rate(1000),
	}
}

// MedicareLevy computes the levy on a taxable income under the policy,
// rounded to cents. Incomes in the phase-in band pay PhaseInRate on the
// excess over the threshold rather than the full levy.
func (p MedicarePolicy) MedicareLevy(income decimal.Decimal) (decimal.Decimal, error) {
	if income.IsNegative() {
		return decimal.Zero, common.InvalidInputf("taxable income must not be negative, got %s", income)
	}
	if income.LessThanOrEqual(p.LowIncomeThreshold) {
		return decimal.Zero, nil
	}
	if income.LessThanOrEqual(p.PhaseInCeiling) {
		return income.Sub(p.LowIncomeThreshold).Mul(p.PhaseInRate).Round(2), nil
	}
	return income.Mul(p.Rate).Round(2), nil
}
