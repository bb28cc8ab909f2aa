package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/checklist"
	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

func newTestEngine() *Engine {
	return New(checklist.DefaultCatalogue())
}

func opportunity(id string, level model.OpportunityPriority, savings int64) model.Opportunity {
	return model.OptimizationOpportunity{
		ID:      id,
		Title:   "Suggestion " + id,
		Level:   level,
		Savings: decimal.NewFromInt(savings),
		Link:    "/suggestions/" + id,
	}
}

// Scenario: a salary earner with one substantiated income source and nothing
// else outstanding.
func TestEngine_GenerateReport_SalaryOnly(t *testing.T) {
	engine := newTestEngine()

	r, stale, err := engine.GenerateReport(GenerateInput{
		Profile: model.UserProfile{},
		Income: map[string]model.IncomeEntry{
			"SALARY": {Amount: decimal.NewFromInt(80000), DocumentCount: 1},
		},
		TaxWithheld: decimal.NewFromInt(18000),
	})
	require.NoError(t, err)
	assert.Empty(t, stale)

	est := r.TaxEstimate
	assert.True(t, est.TaxableIncome.Equal(decimal.NewFromInt(80000)), "taxable income %s", est.TaxableIncome)
	assert.True(t, est.TaxPayable.Equal(decimal.NewFromInt(14788)), "tax payable %s", est.TaxPayable)
	assert.True(t, est.MedicareLevy.Equal(decimal.NewFromInt(1600)), "medicare levy %s", est.MedicareLevy)
	assert.True(t, est.EstimatedRefund.Equal(decimal.NewFromInt(1612)), "refund %s", est.EstimatedRefund)
	assert.True(t, est.EstimatedTaxOwing.IsZero(), "owing %s", est.EstimatedTaxOwing)

	assert.Equal(t, 100.0, r.Score.IncomeScore)
	assert.Equal(t, 100.0, r.Score.DeductionsScore)
	assert.Equal(t, 0, r.Score.MissingItemsCount)
}

// Scenario: a required income category is absent entirely.
func TestEngine_GenerateReport_MissingRequiredIncome(t *testing.T) {
	engine := newTestEngine()

	r, _, err := engine.GenerateReport(GenerateInput{})
	require.NoError(t, err)

	var salary *model.ChecklistItem
	for i := range r.IncomeChecks {
		if r.IncomeChecks[i].Category == "SALARY" {
			salary = &r.IncomeChecks[i]
		}
	}
	require.NotNil(t, salary)
	assert.Equal(t, model.StatusMissing, salary.Status)
	assert.GreaterOrEqual(t, r.Score.MissingItemsCount, 1)
	assert.False(t, IsReadyForLodgment(r))
	assert.True(t, HasCriticalIssues(r))

	action := NextAction(r)
	require.NotNil(t, action)
	assert.Contains(t, action.Title, "Salary or wages")
}

func TestEngine_GenerateReport_EmptyDataIsValid(t *testing.T) {
	engine := newTestEngine()

	r, stale, err := engine.GenerateReport(GenerateInput{})
	require.NoError(t, err)
	assert.Empty(t, stale)
	require.NotNil(t, r)

	assert.True(t, r.TaxEstimate.TaxPayable.IsZero())
	assert.True(t, r.TaxEstimate.EstimatedRefund.IsZero())
	assert.True(t, r.TaxEstimate.EstimatedTaxOwing.IsZero())
	for _, v := range []float64{r.Score.Overall, r.Score.IncomeScore, r.Score.DeductionsScore, r.Score.DocumentsScore, r.Score.OptimizationScore} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
	assert.NotEmpty(t, r.Export.Checklist)
	assert.NotEmpty(t, r.Export.AccountantSummary)
}

func TestEngine_GenerateReport_InvalidInputAborts(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name string
		in   GenerateInput
	}{
		{
			name: "unknown category",
			in: GenerateInput{Income: map[string]model.IncomeEntry{
				"BOGUS": {Amount: decimal.NewFromInt(1)},
			}},
		},
		{
			name: "negative amount",
			in: GenerateInput{Income: map[string]model.IncomeEntry{
				"SALARY": {Amount: decimal.NewFromInt(-1)},
			}},
		},
		{
			name: "negative withheld",
			in:   GenerateInput{TaxWithheld: decimal.NewFromInt(-1)},
		},
		{
			name: "negative offset",
			in:   GenerateInput{Offsets: []decimal.Decimal{decimal.NewFromInt(-5)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, err := engine.GenerateReport(tt.in)
			require.Error(t, err)
			assert.Nil(t, r, "no partial report on failure")
		})
	}
}

func TestEngine_GenerateReport_OverrideIdempotence(t *testing.T) {
	engine := newTestEngine()

	overrides := NewOverrideStore()
	require.NoError(t, overrides.SetItemStatus("income:SALARY", model.StatusComplete))

	in := GenerateInput{
		Income: map[string]model.IncomeEntry{
			"SALARY": {Amount: decimal.NewFromInt(80000)}, // partial without the override
		},
		Overrides: overrides,
	}

	first, stale, err := engine.GenerateReport(in)
	require.NoError(t, err)
	assert.Empty(t, stale)

	// Applying the same override again on regeneration yields the same result.
	second, stale, err := engine.GenerateReport(in)
	require.NoError(t, err)
	assert.Empty(t, stale)

	assert.Equal(t, first.IncomeChecks, second.IncomeChecks)
	assert.Equal(t, first.Score, second.Score)

	for _, item := range first.IncomeChecks {
		if item.Category == "SALARY" {
			assert.Equal(t, model.StatusComplete, item.Status)
		}
	}
}

func TestEngine_GenerateReport_StaleOverridesReported(t *testing.T) {
	engine := newTestEngine()

	overrides := NewOverrideStore()
	require.NoError(t, overrides.SetItemStatus("income:NOPE", model.StatusComplete))
	overrides.Dismiss("unknown-suggestion")

	r, stale, err := engine.GenerateReport(GenerateInput{Overrides: overrides})
	require.NoError(t, err, "stale overrides must not abort generation")
	require.NotNil(t, r)
	assert.ElementsMatch(t, []string{"income:NOPE", "unknown-suggestion"}, stale)
}

func TestEngine_GenerateReport_DismissalExclusion(t *testing.T) {
	engine := newTestEngine()

	overrides := NewOverrideStore()
	overrides.Dismiss("b")

	r, _, err := engine.GenerateReport(GenerateInput{
		Opportunities: []model.Opportunity{
			opportunity("a", model.OpportunityHigh, 250),
			opportunity("b", model.OpportunityCritical, 1200),
		},
		Overrides: overrides,
	})
	require.NoError(t, err)

	ids := func(suggestions []model.OptimizationSuggestion) []string {
		var out []string
		for _, s := range suggestions {
			out = append(out, s.ID)
		}
		return out
	}

	// Dismissed suggestions never reach the caller-facing list but always
	// stay in the export data.
	assert.Equal(t, []string{"a"}, ids(r.OptimizationSuggestions))
	assert.ElementsMatch(t, []string{"a", "b"}, ids(r.Export.AllSuggestions))

	for _, s := range r.Export.AllSuggestions {
		if s.ID == "b" {
			assert.True(t, s.Dismissed)
		}
	}
}

// Scenario: a ready return stays ready when a critical suggestion is
// dismissed. Dismissal can only raise the optimization score, so readiness
// never regresses.
func TestEngine_GenerateReport_DismissalDoesNotAffectReadiness(t *testing.T) {
	engine := newTestEngine()

	in := GenerateInput{
		Income: map[string]model.IncomeEntry{
			"SALARY": {Amount: decimal.NewFromInt(80000), DocumentCount: 1},
		},
		Opportunities: []model.Opportunity{
			model.OptimizationOpportunity{ID: "done1", Title: "Prepay interest", Level: model.OpportunityMedium, Implemented: true},
			model.OptimizationOpportunity{ID: "done2", Title: "Log home office hours", Level: model.OpportunityLow, Implemented: true},
			model.OptimizationOpportunity{ID: "done3", Title: "Claim agent fee", Level: model.OpportunityLow, Implemented: true},
			opportunity("crit", model.OpportunityCritical, 900),
		},
		TaxWithheld: decimal.NewFromInt(18000),
	}

	before, _, err := engine.GenerateReport(in)
	require.NoError(t, err)
	require.True(t, before.Score.Overall >= ReadyOverallThreshold, "precondition: overall %v", before.Score.Overall)
	require.True(t, IsReadyForLodgment(before))

	overrides := NewOverrideStore()
	overrides.Dismiss("crit")
	in.Overrides = overrides

	after, _, err := engine.GenerateReport(in)
	require.NoError(t, err)

	assert.True(t, IsReadyForLodgment(after), "dismissal must not affect readiness")
	assert.GreaterOrEqual(t, after.Score.Overall, before.Score.Overall,
		"dismissal may only raise the overall score")
	assert.Equal(t, before.Score.IncomeScore, after.Score.IncomeScore)
	assert.Equal(t, before.Score.DeductionsScore, after.Score.DeductionsScore)
	assert.Equal(t, before.Score.MissingItemsCount, after.Score.MissingItemsCount)
}

func TestEngine_GenerateReport_ImplementedFromSourceData(t *testing.T) {
	engine := newTestEngine()

	r, _, err := engine.GenerateReport(GenerateInput{
		Opportunities: []model.Opportunity{
			model.OptimizationOpportunity{ID: "done", Title: "Done already", Level: model.OpportunityHigh, Implemented: true},
			opportunity("todo", model.OpportunityLow, 50),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 50.0, r.Score.OptimizationScore)
}

func TestEngine_GenerateReport_EstimatedCompletionTime(t *testing.T) {
	engine := newTestEngine()

	complete, _, err := engine.GenerateReport(GenerateInput{
		Income: map[string]model.IncomeEntry{
			"SALARY": {Amount: decimal.NewFromInt(80000), DocumentCount: 1},
		},
	})
	require.NoError(t, err)
	assert.Zero(t, complete.EstimatedCompletionTime)

	outstanding, _, err := engine.GenerateReport(GenerateInput{})
	require.NoError(t, err)
	assert.Positive(t, outstanding.EstimatedCompletionTime)
}

func TestEngine_CalculateScore_Standalone(t *testing.T) {
	engine := newTestEngine()

	r, _, err := engine.GenerateReport(GenerateInput{
		Income: map[string]model.IncomeEntry{
			"SALARY": {Amount: decimal.NewFromInt(80000), DocumentCount: 1},
		},
	})
	require.NoError(t, err)

	// Recomputing from the report's own collections reproduces the score
	// without rebuilding checklists.
	again := engine.CalculateScore(r.IncomeChecks, r.DeductionChecks, r.MissingDocuments, r.OptimizationSuggestions)
	assert.Equal(t, r.Score, again)
}

func TestEngine_GenerateReport_ErrorsAreInvalidInput(t *testing.T) {
	engine := newTestEngine()

	_, _, err := engine.GenerateReport(GenerateInput{TaxWithheld: decimal.NewFromInt(-1)})
	require.Error(t, err)
	assert.True(t, common.IsInvalidInput(err))
}
