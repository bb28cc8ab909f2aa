package model

import "github.com/shopspring/decimal"

// UserProfile describes the taxpayer whose return is being prepared. It
// drives the contextual-relevance filtering of catalogue categories.
type UserProfile struct {
	Occupation         string
	WorkArrangement    string // employee, contractor, mixed
	HasInvestments     bool
	HasRentalProperty  bool
	RunsBusiness       bool
	ExcludedCategories []string // category codes the user flagged as not relevant
}

// Excludes reports whether the profile explicitly flags a category as
// not relevant.
func (p UserProfile) Excludes(code string) bool {
	for _, c := range p.ExcludedCategories {
		if c == code {
			return true
		}
	}
	return false
}

// IncomeEntry is a caller-supplied record of income for one category code.
// The engine only reads it.
type IncomeEntry struct {
	Amount          decimal.Decimal
	PriorYearAmount *decimal.Decimal
	DocumentCount   int
}

// DeductionEntry is a caller-supplied record of deductions claimed for one
// category code.
type DeductionEntry struct {
	Amount            decimal.Decimal
	PriorYearAmount   *decimal.Decimal
	DocumentCount     int
	WorkpaperComplete bool
}
