package model

import "github.com/shopspring/decimal"

// OpportunityPriority ranks an optimization opportunity.
type OpportunityPriority string

const (
	// OpportunityCritical opportunities should be acted on before lodgment.
	OpportunityCritical OpportunityPriority = "critical"
	// OpportunityHigh opportunities carry significant estimated savings.
	OpportunityHigh OpportunityPriority = "high"
	// OpportunityMedium opportunities are worth reviewing.
	OpportunityMedium OpportunityPriority = "medium"
	// OpportunityLow opportunities are nice-to-have.
	OpportunityLow OpportunityPriority = "low"
)

// Opportunity is the capability contract an external optimizer must satisfy.
// The engine consumes opportunities without knowing how they were produced.
type Opportunity interface {
	OpportunityID() string
	OpportunityTitle() string
	Priority() OpportunityPriority
	EstimatedTaxSavings() decimal.Decimal
	ActionLink() string
}

// OptimizationOpportunity is the plain-struct producer of Opportunity used by
// the session store and the CLI.
type OptimizationOpportunity struct {
	ID          string
	Title       string
	Level       OpportunityPriority
	Savings     decimal.Decimal
	Link        string
	Implemented bool // set when the source data already reflects the action
}

// OpportunityID implements Opportunity.
func (o OptimizationOpportunity) OpportunityID() string { return o.ID }

// OpportunityTitle implements Opportunity.
func (o OptimizationOpportunity) OpportunityTitle() string { return o.Title }

// Priority implements Opportunity.
func (o OptimizationOpportunity) Priority() OpportunityPriority { return o.Level }

// EstimatedTaxSavings implements Opportunity.
func (o OptimizationOpportunity) EstimatedTaxSavings() decimal.Decimal { return o.Savings }

// ActionLink implements Opportunity.
func (o OptimizationOpportunity) ActionLink() string { return o.Link }

// AlreadyImplemented reports whether the source data already reflects the
// recommended action.
func (o OptimizationOpportunity) AlreadyImplemented() bool { return o.Implemented }

// OptimizationSuggestion wraps an opportunity with the session-scoped
// implemented/dismissed flags applied from the override store.
type OptimizationSuggestion struct {
	ID          string
	Title       string
	Level       OpportunityPriority
	Savings     decimal.Decimal
	Link        string
	Implemented bool
	Dismissed   bool
}

// Outstanding reports whether the suggestion still counts against the
// optimization score.
func (s OptimizationSuggestion) Outstanding() bool {
	return !s.Implemented && !s.Dismissed
}
