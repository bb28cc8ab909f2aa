package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/model"
)

// RiskConfig holds the named heuristic thresholds for the risk assessment.
// Every ratio here is a tunable policy constant, overridable by the caller.
type RiskConfig struct {
	// DeductionRatioThreshold flags returns whose total deductions exceed
	// this share of total income.
	DeductionRatioThreshold decimal.Decimal
	// SingleCategoryShareThreshold flags a single deduction category
	// claiming more than this share of total income.
	SingleCategoryShareThreshold decimal.Decimal
}

// DefaultRiskConfig returns the reference thresholds.
func DefaultRiskConfig() RiskConfig {
	return RiskConfig{
		DeductionRatioThreshold:      decimal.NewFromFloat(0.5),
		SingleCategoryShareThreshold: decimal.NewFromFloat(0.25),
	}
}

// riskContext carries everything a rule may inspect.
type riskContext struct {
	cfg             RiskConfig
	incomeChecks    []model.ChecklistItem
	deductionChecks []model.ChecklistItem
	estimate        model.TaxEstimate
}

// riskRule is one row of the rule table. Rules are independent; adding a rule
// never requires touching the scorer or the other rules.
type riskRule func(riskContext) *model.RiskFactor

// riskRules is the fixed rule table evaluated on every run.
var riskRules = []riskRule{
	ruleMissingRequiredIncome,
	ruleDeductionRatio,
	ruleLargeSingleCategory,
	ruleDeductionsWithoutIncome,
}

// assessRisk runs the rule table and aggregates the findings: any high
// severity factor makes the level high, any factor at all makes it at least
// medium, and a clean run is low.
func assessRisk(ctx riskContext) model.RiskAssessment {
	var factors []model.RiskFactor
	level := model.RiskLow
	for _, rule := range riskRules {
		factor := rule(ctx)
		if factor == nil {
			continue
		}
		factors = append(factors, *factor)
		switch {
		case factor.Severity == model.RiskHigh:
			level = model.RiskHigh
		case level != model.RiskHigh:
			level = model.RiskMedium
		}
	}
	return model.RiskAssessment{Level: level, Factors: factors}
}

func ruleMissingRequiredIncome(ctx riskContext) *model.RiskFactor {
	for _, item := range ctx.incomeChecks {
		if item.Required && item.Status == model.StatusMissing {
			return &model.RiskFactor{
				Name:        "missing_required_income",
				Description: fmt.Sprintf("Required income source %s has not been reported", item.Title),
				Severity:    model.RiskHigh,
			}
		}
	}
	return nil
}

func ruleDeductionRatio(ctx riskContext) *model.RiskFactor {
	income := ctx.estimate.TotalIncome
	if !income.IsPositive() {
		return nil
	}
	ratio := ctx.estimate.TotalDeductions.Div(income)
	if ratio.LessThanOrEqual(ctx.cfg.DeductionRatioThreshold) {
		return nil
	}
	return &model.RiskFactor{
		Name: "deduction_to_income_ratio",
		Description: fmt.Sprintf("Deductions are %s%% of income, above the %s%% review threshold",
			ratio.Mul(decimal.NewFromInt(100)).Round(0),
			ctx.cfg.DeductionRatioThreshold.Mul(decimal.NewFromInt(100)).Round(0)),
		Severity: model.RiskHigh,
	}
}

func ruleLargeSingleCategory(ctx riskContext) *model.RiskFactor {
	income := ctx.estimate.TotalIncome
	if !income.IsPositive() {
		return nil
	}
	for _, item := range ctx.deductionChecks {
		if item.Status == model.StatusNotApplicable || !item.Amount.IsPositive() {
			continue
		}
		share := item.Amount.Div(income)
		if share.GreaterThan(ctx.cfg.SingleCategoryShareThreshold) {
			return &model.RiskFactor{
				Name: "large_single_category_claim",
				Description: fmt.Sprintf("%s claims %s%% of income in a single category",
					item.Title, share.Mul(decimal.NewFromInt(100)).Round(0)),
				Severity: model.RiskMedium,
			}
		}
	}
	return nil
}

func ruleDeductionsWithoutIncome(ctx riskContext) *model.RiskFactor {
	if ctx.estimate.TotalIncome.IsPositive() || !ctx.estimate.TotalDeductions.IsPositive() {
		return nil
	}
	return &model.RiskFactor{
		Name:        "deductions_without_income",
		Description: "Deductions are claimed but no income has been reported",
		Severity:    model.RiskHigh,
	}
}
