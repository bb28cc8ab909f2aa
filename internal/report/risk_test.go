package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/model"
)

func riskCtx(income, deductions []model.ChecklistItem, est model.TaxEstimate) riskContext {
	return riskContext{
		cfg:             DefaultRiskConfig(),
		incomeChecks:    income,
		deductionChecks: deductions,
		estimate:        est,
	}
}

func factorNames(a model.RiskAssessment) []string {
	var out []string
	for _, f := range a.Factors {
		out = append(out, f.Name)
	}
	return out
}

func TestAssessRisk(t *testing.T) {
	tests := []struct {
		name        string
		income      []model.ChecklistItem
		deductions  []model.ChecklistItem
		estimate    model.TaxEstimate
		wantLevel   model.RiskLevel
		wantFactors []string
	}{
		{
			name: "clean return",
			income: []model.ChecklistItem{
				item("SALARY", model.StatusComplete, true, model.PriorityHigh),
			},
			estimate: model.TaxEstimate{
				TotalIncome:     decimal.NewFromInt(80000),
				TotalDeductions: decimal.NewFromInt(2000),
			},
			wantLevel: model.RiskLow,
		},
		{
			name: "missing required income",
			income: []model.ChecklistItem{
				item("SALARY", model.StatusMissing, true, model.PriorityHigh),
			},
			estimate:    model.TaxEstimate{},
			wantLevel:   model.RiskHigh,
			wantFactors: []string{"missing_required_income"},
		},
		{
			name: "deductions above half of income",
			estimate: model.TaxEstimate{
				TotalIncome:     decimal.NewFromInt(50000),
				TotalDeductions: decimal.NewFromInt(30000),
			},
			wantLevel:   model.RiskHigh,
			wantFactors: []string{"deduction_to_income_ratio"},
		},
		{
			name: "single category claiming a quarter of income",
			deductions: []model.ChecklistItem{
				func() model.ChecklistItem {
					i := item("D5", model.StatusPartial, false, model.PriorityHigh)
					i.Amount = decimal.NewFromInt(15000)
					return i
				}(),
			},
			estimate: model.TaxEstimate{
				TotalIncome:     decimal.NewFromInt(50000),
				TotalDeductions: decimal.NewFromInt(15000),
			},
			wantLevel:   model.RiskMedium,
			wantFactors: []string{"large_single_category_claim"},
		},
		{
			name: "deductions with no income",
			estimate: model.TaxEstimate{
				TotalDeductions: decimal.NewFromInt(500),
			},
			wantLevel:   model.RiskHigh,
			wantFactors: []string{"deductions_without_income"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := assessRisk(riskCtx(tt.income, tt.deductions, tt.estimate))
			assert.Equal(t, tt.wantLevel, got.Level)
			if tt.wantFactors == nil {
				assert.Empty(t, got.Factors)
			} else {
				assert.Equal(t, tt.wantFactors, factorNames(got))
			}
		})
	}
}

func TestAssessRisk_ThresholdsAreConfigurable(t *testing.T) {
	estimate := model.TaxEstimate{
		TotalIncome:     decimal.NewFromInt(50000),
		TotalDeductions: decimal.NewFromInt(30000),
	}

	relaxed := riskContext{
		cfg: RiskConfig{
			DeductionRatioThreshold:      decimal.NewFromInt(1),
			SingleCategoryShareThreshold: decimal.NewFromInt(1),
		},
		estimate: estimate,
	}

	got := assessRisk(relaxed)
	require.Empty(t, got.Factors, "relaxed thresholds must disarm the ratio rule")
	assert.Equal(t, model.RiskLow, got.Level)
}
