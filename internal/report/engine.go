package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/checklist"
	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/tax"
)

// Per-item minutes used for the estimated completion time on the report.
const (
	minutesPerMissingItem = 6
	minutesPerPartialItem = 4
	minutesPerMissingDoc  = 2
	minutesPerOutstanding = 3
)

// Config holds the full policy surface of the engine. Every constant the
// report depends on lives here and can be overridden by the caller.
type Config struct {
	Brackets tax.BracketTable
	Medicare tax.MedicarePolicy
	Score    ScoreConfig
	Risk     RiskConfig
}

// DefaultConfig returns the reference policy: current-year brackets and
// Medicare parameters, equal score weights, reference risk thresholds.
func DefaultConfig() Config {
	return Config{
		Brackets: tax.DefaultBrackets(),
		Medicare: tax.DefaultMedicarePolicy(),
		Score:    DefaultScoreConfig(),
		Risk:     DefaultRiskConfig(),
	}
}

// Engine generates completeness reports. It is stateless between calls: every
// report is a pure function of the inputs handed to GenerateReport, so the
// engine tolerates being invoked at arbitrary frequency and may be shared
// across goroutines as long as each call gets independent input copies.
type Engine struct {
	evaluator *checklist.Evaluator
	catalogue checklist.Catalogue
	config    Config
}

// New creates an engine over a catalogue with the default configuration.
func New(catalogue checklist.Catalogue) *Engine {
	return NewWithConfig(catalogue, DefaultConfig())
}

// NewWithConfig creates an engine with custom policy configuration.
func NewWithConfig(catalogue checklist.Catalogue, config Config) *Engine {
	return &Engine{
		evaluator: checklist.NewEvaluator(catalogue),
		catalogue: catalogue,
		config:    config,
	}
}

// Config returns the engine's policy configuration.
func (e *Engine) Config() Config { return e.config }

// GenerateInput carries everything one report generation reads. All fields
// are owned by the caller; the engine never mutates them.
type GenerateInput struct {
	Profile       model.UserProfile
	Income        map[string]model.IncomeEntry
	Deductions    map[string]model.DeductionEntry
	Opportunities []model.Opportunity
	TaxWithheld   decimal.Decimal
	Offsets       []decimal.Decimal
	Overrides     *OverrideStore // may be nil
}

// GenerateReport is the single computation entry point. It builds the
// checklists, re-applies the caller's overrides, derives documents and
// suggestions, scores the lot and attaches the tax estimate, risk assessment
// and export surfaces.
//
// The second return value lists override ids that referenced no item or
// suggestion in this run; they are logged and ignored, never fatal. A failure
// in any sub-computation aborts the whole report: there is no partial or
// best-effort result.
func (e *Engine) GenerateReport(in GenerateInput) (*model.CompletenessReport, []string, error) {
	incomeChecks, deductionChecks, err := e.evaluator.Evaluate(in.Profile, in.Income, in.Deductions)
	if err != nil {
		return nil, nil, fmt.Errorf("evaluate checklists: %w", err)
	}

	var stale []string
	if in.Overrides != nil {
		stale = applyItemOverrides(incomeChecks, deductionChecks, in.Overrides.ItemStatuses)
	}

	docs := missingDocuments(append(append([]model.ChecklistItem{}, incomeChecks...), deductionChecks...), e.catalogue)

	visible, all, staleSuggestions := buildSuggestions(in.Opportunities, in.Overrides)
	stale = append(stale, staleSuggestions...)
	for _, id := range stale {
		common.LogWarn("ignoring stale override", common.Fields{"id": id})
	}

	score := calculateScore(e.config.Score, incomeChecks, deductionChecks, docs, visible)

	estimate, err := buildEstimate(e.config.Brackets, e.config.Medicare, incomeChecks, deductionChecks, in.TaxWithheld, in.Offsets)
	if err != nil {
		return nil, nil, fmt.Errorf("tax estimate: %w", err)
	}

	risk := assessRisk(riskContext{
		cfg:             e.config.Risk,
		incomeChecks:    incomeChecks,
		deductionChecks: deductionChecks,
		estimate:        estimate,
	})

	r := &model.CompletenessReport{
		IncomeChecks:            incomeChecks,
		DeductionChecks:         deductionChecks,
		MissingDocuments:        docs,
		OptimizationSuggestions: visible,
		Score:                   score,
		TaxEstimate:             estimate,
		Risk:                    risk,
		EstimatedCompletionTime: estimateCompletionTime(incomeChecks, deductionChecks, docs, visible),
	}
	r.Export = buildExportData(r, all)

	return r, stale, nil
}

// CalculateScore recomputes the score from already-built collections, so a
// caller can rescore after applying overrides without rebuilding checklists.
func (e *Engine) CalculateScore(incomeChecks, deductionChecks []model.ChecklistItem, docs []model.MissingDocument, suggestions []model.OptimizationSuggestion) model.CompletenessScore {
	return calculateScore(e.config.Score, incomeChecks, deductionChecks, docs, suggestions)
}

// estimateCompletionTime approximates how long finishing the return will
// take, from the counts of outstanding work items.
func estimateCompletionTime(incomeChecks, deductionChecks []model.ChecklistItem, docs []model.MissingDocument, suggestions []model.OptimizationSuggestion) time.Duration {
	minutes := 0
	for _, items := range [][]model.ChecklistItem{incomeChecks, deductionChecks} {
		for _, item := range items {
			switch item.Status {
			case model.StatusMissing:
				if item.Required {
					minutes += minutesPerMissingItem
				}
			case model.StatusPartial:
				minutes += minutesPerPartialItem
			}
		}
	}
	minutes += len(docs) * minutesPerMissingDoc
	for _, s := range suggestions {
		if s.Outstanding() {
			minutes += minutesPerOutstanding
		}
	}
	return time.Duration(minutes) * time.Minute
}
