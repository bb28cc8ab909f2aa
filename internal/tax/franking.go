package tax

import (
	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/common"
)

// Company tax parameters behind dividend imputation. The franking credit
// grosses the company tax back out of the after-tax franked amount:
// credit = franked * rate / (1 - rate).
var (
	// CompanyTaxRate is the company tax rate attached to franked dividends.
	CompanyTaxRate = rate(3000)

	companyTaxGrossUp = CompanyTaxRate.Div(decimal.NewFromInt(1).Sub(CompanyTaxRate))

	hundred = decimal.NewFromInt(100)
)

// FrankingResult is the imputation breakdown of a cash dividend.
type FrankingResult struct {
	FrankedAmount     decimal.Decimal
	UnfrankedAmount   decimal.Decimal
	FrankingCredit    decimal.Decimal
	GrossedUpDividend decimal.Decimal
}

// FrankingFromDividend splits a cash dividend by its franking percentage and
// computes the attached credit and grossed-up amount. The credit is rounded
// to cents with standard rounding.
//
// A negative dividend or a percentage outside [0,100] is a caller contract
// violation and fails rather than being clamped.
func FrankingFromDividend(amount, percent decimal.Decimal) (FrankingResult, error) {
	if amount.IsNegative() {
		return FrankingResult{}, common.InvalidInputf("dividend must not be negative, got %s", amount)
	}
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return FrankingResult{}, common.InvalidInputf("franking percentage must be within [0,100], got %s", percent)
	}

	franked := amount.Mul(percent).Div(hundred)
	credit := franked.Mul(companyTaxGrossUp).Round(2)

	return FrankingResult{
		FrankedAmount:     franked,
		UnfrankedAmount:   amount.Sub(franked),
		FrankingCredit:    credit,
		GrossedUpDividend: amount.Add(credit),
	}, nil
}

// TaxImpactResult describes what a grossed-up dividend does to the tax
// position at the holder's marginal rate. A negative NetTaxPosition is a
// refundable excess credit; positive is additional tax payable.
type TaxImpactResult struct {
	MarginalRate     decimal.Decimal
	TaxOnGrossedUp   decimal.Decimal
	NetTaxPosition   decimal.Decimal
	EffectiveTaxRate decimal.Decimal // percentage, 0 when the grossed-up amount is 0
}

// TaxImpact computes the net refund/payable position of a grossed-up dividend
// given the holder's total taxable income. The income is already inclusive of
// the grossed-up dividend, by caller contract.
func (t BracketTable) TaxImpact(grossedUp, credit, totalIncome decimal.Decimal) (TaxImpactResult, error) {
	if grossedUp.IsNegative() {
		return TaxImpactResult{}, common.InvalidInputf("grossed-up dividend must not be negative, got %s", grossedUp)
	}
	if credit.IsNegative() {
		return TaxImpactResult{}, common.InvalidInputf("franking credit must not be negative, got %s", credit)
	}

	marginal, err := t.MarginalRate(totalIncome)
	if err != nil {
		return TaxImpactResult{}, err
	}

	taxOnGrossedUp := grossedUp.Mul(marginal).Round(2)

	effective := decimal.Zero
	if grossedUp.IsPositive() {
		effective = taxOnGrossedUp.Div(grossedUp).Mul(hundred)
	}

	return TaxImpactResult{
		MarginalRate:     marginal,
		TaxOnGrossedUp:   taxOnGrossedUp,
		NetTaxPosition:   taxOnGrossedUp.Sub(credit),
		EffectiveTaxRate: effective,
	}, nil
}
