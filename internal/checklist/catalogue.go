// Package checklist converts raw income and deduction records into
// per-category checklist items against the static ATO category catalogue.
package checklist

import (
	"github.com/tallyhq/tally/internal/model"
)

// Catalogue is the static set of category definitions a checklist run is
// evaluated against. Immutable reference data.
type Catalogue []model.TaxCategoryDefinition

// Lookup returns the definition for a category code.
func (c Catalogue) Lookup(code string) (model.TaxCategoryDefinition, bool) {
	for _, def := range c {
		if def.Code == code {
			return def, true
		}
	}
	return model.TaxCategoryDefinition{}, false
}

// ByKind returns the definitions of one kind in catalogue order.
func (c Catalogue) ByKind(kind model.CategoryKind) []model.TaxCategoryDefinition {
	var out []model.TaxCategoryDefinition
	for _, def := range c {
		if def.Kind == kind {
			out = append(out, def)
		}
	}
	return out
}

// DefaultCatalogue returns the built-in catalogue mirroring the ATO's income
// labels and D-item deduction labels for individual taxpayers.
func DefaultCatalogue() Catalogue {
	return Catalogue{
		// Income categories.
		{
			Code: "SALARY", Name: "Salary or wages",
			Description:        "Salary, wages and allowances from employers",
			Kind:               model.CategoryKindIncome,
			Priority:           model.PriorityHigh,
			Treatment:          model.TreatmentAssessable,
			Prefill:            model.PrefillFull,
			DocumentTypes:      []string{"PAYG payment summary"},
			ReportingFrequency: 0.85,
			Required:           true,
		},
		{
			Code: "INTEREST", Name: "Interest income",
			Description:        "Interest from bank accounts and term deposits",
			Kind:               model.CategoryKindIncome,
			Priority:           model.PriorityMedium,
			Treatment:          model.TreatmentAssessable,
			Prefill:            model.PrefillFull,
			DocumentTypes:      []string{"Bank interest statement"},
			ReportingFrequency: 0.60,
		},
		{
			Code: "DIVIDENDS", Name: "Dividends and franking credits",
			Description:        "Dividends from shares, including attached imputation credits",
			Kind:               model.CategoryKindIncome,
			Priority:           model.PriorityHigh,
			Treatment:          model.TreatmentFranked,
			Prefill:            model.PrefillPartial,
			DocumentTypes:      []string{"Dividend statement"},
			ReportingFrequency: 0.25,
			InvestorOnly:       true,
		},
		{
			Code: "CAPITAL_GAINS", Name: "Capital gains",
			Description:        "Net capital gains from shares, crypto or property disposals",
			Kind:               model.CategoryKindIncome,
			Priority:           model.PriorityHigh,
			Treatment:          model.TreatmentAssessable,
			Prefill:            model.PrefillNone,
			DocumentTypes:      []string{"Broker trade confirmations"},
			ReportingFrequency: 0.12,
			InvestorOnly:       true,
		},
		{
			Code: "RENTAL", Name: "Rental income",
			Description:        "Gross rent and associated tenant payments",
			Kind:               model.CategoryKindIncome,
			Priority:           model.PriorityHigh,
			Treatment:          model.TreatmentAssessable,
			Prefill:            model.PrefillNone,
			DocumentTypes:      []string{"Rental income summary"},
			ReportingFrequency: 0.10,
			LandlordOnly:       true,
		},
		{
			Code: "BUSINESS", Name: "Business income",
			Description:        "Sole-trader and personal services income",
			Kind:               model.CategoryKindIncome,
			Priority:           model.PriorityHigh,
			Treatment:          model.TreatmentAssessable,
			Prefill:            model.PrefillNone,
			DocumentTypes:      []string{"Business income records"},
			ReportingFrequency: 0.08,
			BusinessOnly:       true,
		},
		{
			Code: "GOVERNMENT_PAYMENTS", Name: "Government payments",
			Description:        "Taxable Centrelink and other government payments",
			Kind:               model.CategoryKindIncome,
			Priority:           model.PriorityLow,
			Treatment:          model.TreatmentAssessable,
			Prefill:            model.PrefillFull,
			DocumentTypes:      []string{"Centrelink payment summary"},
			ReportingFrequency: 0.15,
		},

		// Deduction categories (ATO D-items).
		{
			Code: "D1", Name: "Work-related car expenses",
			Description:        "Cents-per-kilometre or logbook car claims",
			Kind:               model.CategoryKindDeduction,
			Priority:           model.PriorityMedium,
			Treatment:          model.TreatmentDeductible,
			Prefill:            model.PrefillNone,
			DocumentTypes:      []string{"Vehicle logbook", "Fuel and servicing receipts"},
			ReportingFrequency: 0.30,
		},
		{
			Code: "D2", Name: "Work-related travel expenses",
			Description:        "Flights, accommodation and meals for work travel",
			Kind:               model.CategoryKindDeduction,
			Priority:           model.PriorityLow,
			Treatment:          model.TreatmentDeductible,
			Prefill:            model.PrefillNone,
			DocumentTypes:      []string{"Travel diary"},
			ReportingFrequency: 0.08,
		},
		{
			Code: "D3", Name: "Work-related clothing and laundry",
			Description:        "Uniforms, protective clothing and laundry",
			Kind:               model.CategoryKindDeduction,
			Priority:           model.PriorityLow,
			Treatment:          model.TreatmentDeductible,
			Prefill:            model.PrefillNone,
			DocumentTypes:      []string{"Laundry diary"},
			ReportingFrequency: 0.20,
		},
		{
			Code: "D4", Name: "Self-education expenses",
			Description:        "Courses and study directly related to current work",
			Kind:               model.CategoryKindDeduction,
			Priority:           model.PriorityMedium,
			Treatment:          model.TreatmentDeductible,
			Prefill:            model.PrefillNone,
			DocumentTypes:      []string{"Course fee receipts"},
			ReportingFrequency: 0.07,
		},
		{
			Code: "D5", Name: "Other work-related expenses",
			Description:        "Home office, tools, subscriptions and union fees",
			Kind:               model.CategoryKindDeduction,
			Priority:           model.PriorityHigh,
			Treatment:          model.TreatmentDeductible,
			Prefill:            model.PrefillNone,
			DocumentTypes:      []string{"Expense receipts", "Working-from-home diary"},
			ReportingFrequency: 0.45,
		},
		{
			Code: "D7", Name: "Interest deductions",
			Description:        "Interest on money borrowed to earn investment income",
			Kind:               model.CategoryKindDeduction,
			Priority:           model.PriorityLow,
			Treatment:          model.TreatmentDeductible,
			Prefill:            model.PrefillNone,
			DocumentTypes:      []string{"Loan interest statement"},
			ReportingFrequency: 0.05,
			InvestorOnly:       true,
		},
		{
			Code: "D8", Name: "Dividend deductions",
			Description:        "Costs of earning dividend income",
			Kind:               model.CategoryKindDeduction,
			Priority:           model.PriorityLow,
			Treatment:          model.TreatmentDeductible,
			Prefill:            model.PrefillNone,
			DocumentTypes:      []string{"Investment expense records"},
			ReportingFrequency: 0.03,
			InvestorOnly:       true,
		},
		{
			Code: "D9", Name: "Gifts and donations",
			Description:        "Donations of $2 or more to deductible gift recipients",
			Kind:               model.CategoryKindDeduction,
			Priority:           model.PriorityMedium,
			Treatment:          model.TreatmentDeductible,
			Prefill:            model.PrefillNone,
			DocumentTypes:      []string{"Donation receipts"},
			ReportingFrequency: 0.35,
		},
		{
			Code: "D10", Name: "Cost of managing tax affairs",
			Description:        "Tax agent fees and related costs from last year",
			Kind:               model.CategoryKindDeduction,
			Priority:           model.PriorityLow,
			Treatment:          model.TreatmentDeductible,
			Prefill:            model.PrefillNone,
			DocumentTypes:      []string{"Tax agent invoice"},
			ReportingFrequency: 0.40,
		},
	}
}
