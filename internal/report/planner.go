package report

import (
	"fmt"

	"github.com/tallyhq/tally/internal/model"
)

// Readiness gate constants. ReadyOverallThreshold doubles as the terminal
// step of the next-action cascade.
const (
	// ReadyOverallThreshold is the overall score at which a return is
	// considered ready for review.
	ReadyOverallThreshold = 80.0
	// ReadyMaxMissingItems is the most required-missing items a return may
	// carry and still be lodgable.
	ReadyMaxMissingItems = 2
)

// NextAction inspects the aggregated report and returns exactly one
// recommended next step. The cascade is strict: each step short-circuits
// everything below it.
func NextAction(r *model.CompletenessReport) *model.NextAction {
	// 1. A required income source is still missing.
	for _, item := range r.IncomeChecks {
		if item.Required && item.Status == model.StatusMissing {
			return &model.NextAction{
				Title:       fmt.Sprintf("Add your %s", item.Title),
				Description: fmt.Sprintf("%s is required for most taxpayers and has not been reported yet.", item.Title),
				Link:        item.ActionLink,
			}
		}
	}

	// 2. A high-priority supporting document is missing.
	for _, doc := range r.MissingDocuments {
		if doc.Priority == model.DocumentHigh {
			return &model.NextAction{
				Title:       fmt.Sprintf("Upload your %s", doc.DocumentType),
				Description: doc.DetectionReason,
				Link:        fmt.Sprintf("/categories/%s", doc.Category),
			}
		}
	}

	// 3. A checklist item is started but incomplete.
	for _, item := range r.AllChecks() {
		if item.Status == model.StatusPartial {
			return &model.NextAction{
				Title:       fmt.Sprintf("Finish %s", item.Title),
				Description: item.ActionNeeded,
				Link:        item.ActionLink,
			}
		}
	}

	// 4. A critical optimization is still on the table.
	for _, s := range r.OptimizationSuggestions {
		if s.Level == model.OpportunityCritical && !s.Implemented {
			return &model.NextAction{
				Title:       s.Title,
				Description: fmt.Sprintf("Acting on this could save an estimated $%s in tax.", s.Savings.StringFixed(2)),
				Link:        s.Link,
			}
		}
	}

	// 5. Nothing outstanding and the score clears the bar.
	if r.Score.Overall >= ReadyOverallThreshold {
		return &model.NextAction{
			Title:       "Ready for review",
			Description: "Your return looks complete. Review the accountant summary before lodging.",
		}
	}

	// 6. Fallback: keep going.
	return &model.NextAction{
		Title:       "Continue adding information",
		Description: fmt.Sprintf("%d required items are still missing from your return.", r.Score.MissingItemsCount),
	}
}

// IsReadyForLodgment reports whether the return clears the readiness gate:
// the overall score meets the threshold, every required income item is
// complete, and few enough required items are missing.
func IsReadyForLodgment(r *model.CompletenessReport) bool {
	if r.Score.Overall < ReadyOverallThreshold {
		return false
	}
	for _, item := range r.IncomeChecks {
		if item.Required && item.Status != model.StatusComplete {
			return false
		}
	}
	return r.Score.MissingItemsCount <= ReadyMaxMissingItems
}

// HasCriticalIssues reports whether the return is in a red state or a
// required income source is missing.
func HasCriticalIssues(r *model.CompletenessReport) bool {
	if r.Score.ColorStatus == model.ColorRed {
		return true
	}
	for _, item := range r.IncomeChecks {
		if item.Required && item.Status == model.StatusMissing {
			return true
		}
	}
	return false
}
