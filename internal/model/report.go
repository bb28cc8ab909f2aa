package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentPriority ranks a missing supporting document.
type DocumentPriority string

const (
	// DocumentHigh documents block lodgment of a required category.
	DocumentHigh DocumentPriority = "high"
	// DocumentMedium documents support ordinary claims.
	DocumentMedium DocumentPriority = "medium"
	// DocumentLow documents support low-materiality claims.
	DocumentLow DocumentPriority = "low"
)

// MissingDocument is a supporting document the return still needs. Recomputed
// every run, never mutated in place.
type MissingDocument struct {
	DocumentType    string
	Category        string
	DetectionReason string
	Priority        DocumentPriority
}

// ColorStatus is the traffic-light readiness indicator.
type ColorStatus string

const (
	// ColorGreen: overall score of 80 or above.
	ColorGreen ColorStatus = "green"
	// ColorAmber: overall score of 50 up to 80.
	ColorAmber ColorStatus = "amber"
	// ColorRed: overall score below 50.
	ColorRed ColorStatus = "red"
)

// CompletenessScore is the weighted 0-100 readiness measure.
type CompletenessScore struct {
	Overall           float64
	IncomeScore       float64
	DeductionsScore   float64
	DocumentsScore    float64
	OptimizationScore float64
	ColorStatus       ColorStatus
	MissingItemsCount int
}

// TaxEstimate is the refund/payable position derived from the supplied data.
// EstimatedRefund and EstimatedTaxOwing are mutually exclusive: exactly one
// is zero.
type TaxEstimate struct {
	TaxableIncome     decimal.Decimal
	TotalIncome       decimal.Decimal
	TotalDeductions   decimal.Decimal
	TaxPayable        decimal.Decimal
	MedicareLevy      decimal.Decimal
	TaxWithheld       decimal.Decimal
	TotalOffsets      decimal.Decimal
	EstimatedRefund   decimal.Decimal
	EstimatedTaxOwing decimal.Decimal
}

// RiskLevel categorizes the audit-risk posture of the return.
type RiskLevel string

const (
	// RiskLow means nothing unusual was detected.
	RiskLow RiskLevel = "low"
	// RiskMedium means at least one heuristic flagged the return.
	RiskMedium RiskLevel = "medium"
	// RiskHigh means a serious heuristic flagged the return.
	RiskHigh RiskLevel = "high"
)

// RiskFactor is one heuristic finding that contributed to the risk level.
type RiskFactor struct {
	Name        string
	Description string
	Severity    RiskLevel
}

// RiskAssessment is the categorical risk level plus the factors behind it.
type RiskAssessment struct {
	Level   RiskLevel
	Factors []RiskFactor
}

// NextAction is the single recommended next step for the user.
type NextAction struct {
	Title       string
	Description string
	Link        string
}

// ExportData holds the plain-text export surfaces of a report. The full
// suggestion set (including dismissed) is retained here for audit even though
// the report's caller-facing list excludes dismissed entries.
type ExportData struct {
	Checklist         string
	AccountantSummary string
	AllSuggestions    []OptimizationSuggestion
}

// CompletenessReport is the root aggregate built fresh on every run. It is a
// value object: it has no identity or lifecycle of its own.
type CompletenessReport struct {
	IncomeChecks            []ChecklistItem
	DeductionChecks         []ChecklistItem
	MissingDocuments        []MissingDocument
	OptimizationSuggestions []OptimizationSuggestion
	Score                   CompletenessScore
	TaxEstimate             TaxEstimate
	Risk                    RiskAssessment
	EstimatedCompletionTime time.Duration
	Export                  ExportData
}

// AllChecks returns income and deduction checklist items as one slice.
func (r *CompletenessReport) AllChecks() []ChecklistItem {
	out := make([]ChecklistItem, 0, len(r.IncomeChecks)+len(r.DeductionChecks))
	out = append(out, r.IncomeChecks...)
	out = append(out, r.DeductionChecks...)
	return out
}
