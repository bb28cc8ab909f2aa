package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/tax"
)

// buildEstimate computes the refund/payable position from the evaluated
// checklists. Taxable income is total income less deductions that are at
// least partially substantiated; unsubstantiated (missing) deduction claims
// do not reduce the estimate.
func buildEstimate(brackets tax.BracketTable, medicare tax.MedicarePolicy, incomeChecks, deductionChecks []model.ChecklistItem, taxWithheld decimal.Decimal, offsets []decimal.Decimal) (model.TaxEstimate, error) {
	if taxWithheld.IsNegative() {
		return model.TaxEstimate{}, common.InvalidInputf("tax withheld must not be negative, got %s", taxWithheld)
	}

	totalOffsets := decimal.Zero
	for i, o := range offsets {
		if o.IsNegative() {
			return model.TaxEstimate{}, common.InvalidInputf("offset %d must not be negative, got %s", i, o)
		}
		totalOffsets = totalOffsets.Add(o)
	}

	totalIncome := decimal.Zero
	for _, item := range incomeChecks {
		if item.Status == model.StatusComplete || item.Status == model.StatusPartial {
			totalIncome = totalIncome.Add(item.Amount)
		}
	}

	totalDeductions := decimal.Zero
	for _, item := range deductionChecks {
		if item.Status == model.StatusComplete || item.Status == model.StatusPartial {
			totalDeductions = totalDeductions.Add(item.Amount)
		}
	}

	taxableIncome := totalIncome.Sub(totalDeductions)
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}

	taxPayable, err := brackets.ProgressiveTax(taxableIncome)
	if err != nil {
		return model.TaxEstimate{}, fmt.Errorf("progressive tax: %w", err)
	}
	levy, err := medicare.MedicareLevy(taxableIncome)
	if err != nil {
		return model.TaxEstimate{}, fmt.Errorf("medicare levy: %w", err)
	}

	// Sign of (withheld + offsets - payable - levy) decides refund vs owing;
	// exactly one of the two is zero.
	position := taxWithheld.Add(totalOffsets).Sub(taxPayable).Sub(levy)
	refund, owing := decimal.Zero, decimal.Zero
	if position.IsPositive() {
		refund = position
	} else {
		owing = position.Neg()
	}

	return model.TaxEstimate{
		TaxableIncome:     taxableIncome,
		TotalIncome:       totalIncome,
		TotalDeductions:   totalDeductions,
		TaxPayable:        taxPayable,
		MedicareLevy:      levy,
		TaxWithheld:       taxWithheld,
		TotalOffsets:      totalOffsets,
		EstimatedRefund:   refund,
		EstimatedTaxOwing: owing,
	}, nil
}
