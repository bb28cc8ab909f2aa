// Package model defines the core domain types for tax-return preparation.
package model

// CategoryKind indicates whether a category covers income or deductions.
type CategoryKind string

const (
	// CategoryKindIncome represents income categories (salary, dividends, ...).
	CategoryKindIncome CategoryKind = "income"
	// CategoryKindDeduction represents deduction categories (D1-D10, ...).
	CategoryKindDeduction CategoryKind = "deduction"
)

// CategoryPriority ranks how material a category typically is to a return.
type CategoryPriority string

const (
	// PriorityHigh marks categories that materially move the tax outcome.
	PriorityHigh CategoryPriority = "high"
	// PriorityMedium marks categories of ordinary materiality.
	PriorityMedium CategoryPriority = "medium"
	// PriorityLow marks rarely-claimed or low-value categories.
	PriorityLow CategoryPriority = "low"
)

// TaxTreatment describes how amounts in a category enter the tax calculation.
type TaxTreatment string

const (
	// TreatmentAssessable amounts are added to taxable income.
	TreatmentAssessable TaxTreatment = "assessable"
	// TreatmentDeductible amounts reduce taxable income.
	TreatmentDeductible TaxTreatment = "deductible"
	// TreatmentFranked amounts carry imputation credits and are grossed up.
	TreatmentFranked TaxTreatment = "franked"
)

// PrefillAvailability describes whether the ATO pre-fills this category.
type PrefillAvailability string

const (
	// PrefillFull means the ATO supplies the figure directly.
	PrefillFull PrefillAvailability = "full"
	// PrefillPartial means some payers report but the taxpayer must verify.
	PrefillPartial PrefillAvailability = "partial"
	// PrefillNone means the taxpayer must substantiate everything themselves.
	PrefillNone PrefillAvailability = "none"
)

// TaxCategoryDefinition is one entry of the static category catalogue,
// mirroring the ATO's income and deduction labels. Immutable reference data.
type TaxCategoryDefinition struct {
	Code               string
	Name               string
	Description        string
	Kind               CategoryKind
	Priority           CategoryPriority
	Treatment          TaxTreatment
	Prefill            PrefillAvailability
	DocumentTypes      []string
	ReportingFrequency float64 // share of taxpayers who report this category, 0..1
	Required           bool    // required for most taxpayers
	InvestorOnly       bool    // only relevant when the profile holds investments
	LandlordOnly       bool    // only relevant when the profile owns a rental
	BusinessOnly       bool    // only relevant when the profile runs a business
}
