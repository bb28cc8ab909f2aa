package report

import "github.com/tallyhq/tally/internal/model"

// ScoreConfig holds the tunable scoring constants. These are policy values,
// not fixed truths: callers may override any of them through the engine
// config, and nothing outside this package may hard-assume them.
type ScoreConfig struct {
	// Relative weights of the four sub-scores in the overall score.
	IncomeWeight       float64
	DeductionsWeight   float64
	DocumentsWeight    float64
	OptimizationWeight float64

	// HighPriorityWeight is the multiplier applied to high-priority deduction
	// categories in both numerator and denominator of the deductions score.
	HighPriorityWeight float64

	// Per-priority penalties subtracted from the documents score for each
	// missing document.
	DocumentPenaltyHigh   float64
	DocumentPenaltyMedium float64
	DocumentPenaltyLow    float64

	// Traffic-light band floors, inclusive on the lower edge.
	GreenThreshold float64
	AmberThreshold float64
}

// DefaultScoreConfig returns the reference scoring policy: equal 25% weights,
// double weight for high-priority deduction categories, document penalties of
// 10/5/2 and bands at 80/50.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		IncomeWeight:          0.25,
		DeductionsWeight:      0.25,
		DocumentsWeight:       0.25,
		OptimizationWeight:    0.25,
		HighPriorityWeight:    2,
		DocumentPenaltyHigh:   10,
		DocumentPenaltyMedium: 5,
		DocumentPenaltyLow:    2,
		GreenThreshold:        80,
		AmberThreshold:        50,
	}
}

// calculateScore combines checklist, document and suggestion collections into
// the weighted completeness score. A pure function: it never stores state and
// the same inputs always yield the same score.
func calculateScore(cfg ScoreConfig, incomeChecks, deductionChecks []model.ChecklistItem, docs []model.MissingDocument, suggestions []model.OptimizationSuggestion) model.CompletenessScore {
	income := incomeScore(incomeChecks)
	deductions := deductionsScore(cfg, deductionChecks)
	documents := documentsScore(cfg, docs)
	optimization := optimizationScore(suggestions)

	totalWeight := cfg.IncomeWeight + cfg.DeductionsWeight + cfg.DocumentsWeight + cfg.OptimizationWeight
	overall := 100.0
	if totalWeight > 0 {
		overall = (income*cfg.IncomeWeight +
			deductions*cfg.DeductionsWeight +
			documents*cfg.DocumentsWeight +
			optimization*cfg.OptimizationWeight) / totalWeight
	}

	return model.CompletenessScore{
		Overall:           overall,
		IncomeScore:       income,
		DeductionsScore:   deductions,
		DocumentsScore:    documents,
		OptimizationScore: optimization,
		ColorStatus:       colorFor(cfg, overall),
		MissingItemsCount: missingItemsCount(incomeChecks, deductionChecks),
	}
}

// incomeScore is the share of required income items that are complete.
// No required items means there is nothing to hold against the user: 100.
func incomeScore(items []model.ChecklistItem) float64 {
	var required, complete float64
	for _, item := range items {
		if !item.Required || item.Status == model.StatusNotApplicable {
			continue
		}
		required++
		if item.Status == model.StatusComplete {
			complete++
		}
	}
	if required == 0 {
		return 100
	}
	return 100 * complete / required
}

// deductionsScore follows the income formula but, because deduction items are
// rarely individually required, weights by category priority instead of a
// flat count: high-priority categories count HighPriorityWeight times in both
// numerator and denominator.
func deductionsScore(cfg ScoreConfig, items []model.ChecklistItem) float64 {
	weight := func(item model.ChecklistItem) float64 {
		if item.Priority == model.PriorityHigh {
			return cfg.HighPriorityWeight
		}
		return 1
	}

	var total, complete float64
	for _, item := range items {
		if item.Status == model.StatusNotApplicable {
			continue
		}
		w := weight(item)
		total += w
		if item.Status == model.StatusComplete {
			complete += w
		}
	}
	if total == 0 {
		return 100
	}
	return 100 * complete / total
}

// documentsScore starts at 100 and subtracts a per-priority penalty for every
// missing document, clamped to [0,100].
func documentsScore(cfg ScoreConfig, docs []model.MissingDocument) float64 {
	score := 100.0
	for _, doc := range docs {
		switch doc.Priority {
		case model.DocumentHigh:
			score -= cfg.DocumentPenaltyHigh
		case model.DocumentMedium:
			score -= cfg.DocumentPenaltyMedium
		case model.DocumentLow:
			score -= cfg.DocumentPenaltyLow
		}
	}
	if score < 0 {
		return 0
	}
	return score
}

// optimizationScore is the share of non-dismissed suggestions that are
// implemented. Dismissed suggestions are out of both numerator and
// denominator; an empty denominator scores 100.
func optimizationScore(suggestions []model.OptimizationSuggestion) float64 {
	var implemented, outstanding float64
	for _, s := range suggestions {
		switch {
		case s.Dismissed:
		case s.Implemented:
			implemented++
		default:
			outstanding++
		}
	}
	if implemented+outstanding == 0 {
		return 100
	}
	return 100 * implemented / (implemented + outstanding)
}

// missingItemsCount counts required checklist items still missing. This feeds
// the lodgment readiness gate.
func missingItemsCount(incomeChecks, deductionChecks []model.ChecklistItem) int {
	count := 0
	for _, items := range [][]model.ChecklistItem{incomeChecks, deductionChecks} {
		for _, item := range items {
			if item.Required && item.Status == model.StatusMissing {
				count++
			}
		}
	}
	return count
}

// colorFor maps an overall score onto the traffic light. Band floors are
// inclusive.
func colorFor(cfg ScoreConfig, overall float64) model.ColorStatus {
	switch {
	case overall >= cfg.GreenThreshold:
		return model.ColorGreen
	case overall >= cfg.AmberThreshold:
		return model.ColorAmber
	default:
		return model.ColorRed
	}
}
