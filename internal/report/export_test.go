package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/model"
)

func exportReport() *model.CompletenessReport {
	salary := item("SALARY", model.StatusComplete, true, model.PriorityHigh)
	salary.Title = "Salary and wages"
	salary.Amount = decimal.NewFromInt(80000)

	rental := item("RENTAL", model.StatusNotApplicable, false, model.PriorityHigh)
	rental.Title = "Rental income"

	workFromHome := item("D5", model.StatusPartial, false, model.PriorityHigh)
	workFromHome.Title = "Work from home expenses"
	workFromHome.Amount = decimal.NewFromInt(1200)
	workFromHome.ActionNeeded = "Complete the hours workpaper"

	return &model.CompletenessReport{
		Score:           model.CompletenessScore{Overall: 82, ColorStatus: model.ColorGreen},
		IncomeChecks:    []model.ChecklistItem{salary, rental},
		DeductionChecks: []model.ChecklistItem{workFromHome},
		MissingDocuments: []model.MissingDocument{
			{
				DocumentType:    "Vehicle logbook",
				Category:        "D1",
				DetectionReason: "Work-related car expenses is incomplete",
				Priority:        model.DocumentMedium,
			},
		},
		TaxEstimate: model.TaxEstimate{
			TotalIncome:     decimal.NewFromInt(80000),
			TotalDeductions: decimal.NewFromInt(1200),
			TaxableIncome:   decimal.NewFromInt(78800),
			TaxPayable:      decimal.NewFromInt(14428),
			MedicareLevy:    decimal.NewFromInt(1576),
			TaxWithheld:     decimal.NewFromInt(18000),
			EstimatedRefund: decimal.NewFromInt(1996),
		},
		Risk: model.RiskAssessment{Level: model.RiskLow},
	}
}

func TestRenderChecklistExport(t *testing.T) {
	out := renderChecklistExport(exportReport())

	assert.Contains(t, out, "TAX RETURN CHECKLIST")
	assert.Contains(t, out, "Completeness: 82/100 (green)")
	assert.Contains(t, out, "[x] Salary and wages — complete (required)")
	assert.Contains(t, out, "[ ] Work from home expenses — partial")
	assert.Contains(t, out, "Action: Complete the hours workpaper")
	assert.Contains(t, out, "MISSING DOCUMENTS")
	assert.Contains(t, out, "- Vehicle logbook (medium): Work-related car expenses is incomplete")

	assert.NotContains(t, out, "Rental income", "not applicable items stay out of the export")
}

func TestRenderAccountantSummary(t *testing.T) {
	all := []model.OptimizationSuggestion{
		{ID: "super", Title: "Top up super", Level: model.OpportunityHigh, Savings: decimal.NewFromInt(450), Implemented: true},
		{ID: "logbook", Title: "Start a vehicle logbook", Level: model.OpportunityMedium, Savings: decimal.NewFromInt(120), Dismissed: true},
		{ID: "income-protection", Title: "Review income protection premiums", Level: model.OpportunityLow, Savings: decimal.NewFromInt(90)},
	}

	out := renderAccountantSummary(exportReport(), all)

	assert.Contains(t, out, "ACCOUNTANT SUMMARY")
	assert.Contains(t, out, "$80000.00")
	assert.Contains(t, out, "Taxable income")
	assert.Contains(t, out, "$78800.00")
	assert.Contains(t, out, "Estimated refund")
	assert.Contains(t, out, "$1996.00")
	assert.NotContains(t, out, "Estimated tax owing", "refund and owing are mutually exclusive")

	assert.Contains(t, out, "- [implemented] Top up super (high, est. saving $450.00)")
	assert.Contains(t, out, "- [dismissed] Start a vehicle logbook (medium, est. saving $120.00)")
	assert.Contains(t, out, "- [outstanding] Review income protection premiums (low, est. saving $90.00)")

	assert.Contains(t, out, "Risk level: low")
}

func TestBuildExportData_KeepsDismissedSuggestions(t *testing.T) {
	all := []model.OptimizationSuggestion{
		{ID: "logbook", Title: "Start a vehicle logbook", Level: model.OpportunityMedium, Savings: decimal.NewFromInt(120), Dismissed: true},
	}

	export := buildExportData(exportReport(), all)

	require.Len(t, export.AllSuggestions, 1)
	assert.True(t, export.AllSuggestions[0].Dismissed)
	assert.Contains(t, export.AccountantSummary, "logbook")
	assert.Equal(t, 1, strings.Count(export.AccountantSummary, "Start a vehicle logbook"))
}

func TestRenderChecklistExport_MissingItemsAreUnchecked(t *testing.T) {
	r := exportReport()
	missing := item("INTEREST", model.StatusMissing, false, model.PriorityMedium)
	missing.Title = "Interest income"
	missing.ActionNeeded = "Add your interest income"
	r.IncomeChecks = append(r.IncomeChecks, missing)

	out := renderChecklistExport(r)

	assert.Contains(t, out, "[ ] Interest income — missing")
	assert.Contains(t, out, "Action: Add your interest income")
}
