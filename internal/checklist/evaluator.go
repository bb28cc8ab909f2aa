package checklist

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

// Evaluator derives per-category checklist items from raw income and
// deduction records. Evaluation is deterministic and side-effect-free: the
// same inputs always yield the same items in the same order.
type Evaluator struct {
	catalogue Catalogue
}

// NewEvaluator creates an evaluator over a category catalogue.
func NewEvaluator(catalogue Catalogue) *Evaluator {
	return &Evaluator{catalogue: catalogue}
}

// Evaluate builds the income and deduction checklists for a profile. Data
// maps are keyed by category code and owned by the caller; entries with codes
// not present in the catalogue, or with negative amounts, fail with an
// invalid-input error.
func (e *Evaluator) Evaluate(profile model.UserProfile, incomeData map[string]model.IncomeEntry, deductionData map[string]model.DeductionEntry) (incomeChecks, deductionChecks []model.ChecklistItem, err error) {
	if err := e.validateCodes(incomeData, deductionData); err != nil {
		return nil, nil, err
	}

	for _, def := range e.catalogue.ByKind(model.CategoryKindIncome) {
		entry, ok := incomeData[def.Code]
		item := e.buildItem(def, profile, ok, entry.Amount, entry.DocumentCount >= 1)
		incomeChecks = append(incomeChecks, item)
	}

	for _, def := range e.catalogue.ByKind(model.CategoryKindDeduction) {
		entry, ok := deductionData[def.Code]
		item := e.buildItem(def, profile, ok, entry.Amount, entry.WorkpaperComplete)
		deductionChecks = append(deductionChecks, item)
	}

	return incomeChecks, deductionChecks, nil
}

// validateCodes rejects data map keys that are unknown to the catalogue or
// entries carrying negative amounts.
func (e *Evaluator) validateCodes(incomeData map[string]model.IncomeEntry, deductionData map[string]model.DeductionEntry) error {
	for code, entry := range incomeData {
		def, ok := e.catalogue.Lookup(code)
		if !ok || def.Kind != model.CategoryKindIncome {
			return fmt.Errorf("%w: income category %q", common.ErrUnknownCategory, code)
		}
		if entry.Amount.IsNegative() {
			return common.InvalidInputf("income amount for %s must not be negative, got %s", code, entry.Amount)
		}
		if entry.DocumentCount < 0 {
			return common.InvalidInputf("document count for %s must not be negative, got %d", code, entry.DocumentCount)
		}
	}
	for code, entry := range deductionData {
		def, ok := e.catalogue.Lookup(code)
		if !ok || def.Kind != model.CategoryKindDeduction {
			return fmt.Errorf("%w: deduction category %q", common.ErrUnknownCategory, code)
		}
		if entry.Amount.IsNegative() {
			return common.InvalidInputf("deduction amount for %s must not be negative, got %s", code, entry.Amount)
		}
		if entry.DocumentCount < 0 {
			return common.InvalidInputf("document count for %s must not be negative, got %d", code, entry.DocumentCount)
		}
	}
	return nil
}

// buildItem derives a single checklist item from the category definition and
// whatever data exists for it.
func (e *Evaluator) buildItem(def model.TaxCategoryDefinition, profile model.UserProfile, hasEntry bool, amount decimal.Decimal, substantiated bool) model.ChecklistItem {
	item := model.ChecklistItem{
		ID:          model.ChecklistItemID(def.Kind, def.Code),
		Category:    def.Code,
		Title:       def.Name,
		Description: def.Description,
		Required:    def.Required,
		Priority:    def.Priority,
		Amount:      amount,
		ActionLink:  fmt.Sprintf("/categories/%s", def.Code),
	}

	if !relevantToProfile(def, profile) {
		item.Status = model.StatusNotApplicable
		return item
	}

	switch {
	case !hasEntry:
		if def.Required {
			item.Status = model.StatusMissing
			item.ActionNeeded = fmt.Sprintf("Add your %s details", def.Name)
		} else {
			item.Status = model.StatusNotApplicable
		}
	case amount.IsZero() && !substantiated:
		item.Status = model.StatusMissing
		item.ActionNeeded = fmt.Sprintf("Enter an amount for %s", def.Name)
	case amount.IsZero():
		item.Status = model.StatusPartial
		item.ActionNeeded = fmt.Sprintf("Enter the amount shown on your %s records", def.Name)
	case !substantiated:
		item.Status = model.StatusPartial
		item.ActionNeeded = e.outstandingAction(def)
	default:
		item.Status = model.StatusComplete
	}

	return item
}

// outstandingAction describes what substantiation is still outstanding for a
// partial item.
func (e *Evaluator) outstandingAction(def model.TaxCategoryDefinition) string {
	if def.Kind == model.CategoryKindDeduction {
		return fmt.Sprintf("Finish the substantiation workpaper for %s", def.Name)
	}
	if len(def.DocumentTypes) > 0 {
		return fmt.Sprintf("Attach your %s", def.DocumentTypes[0])
	}
	return fmt.Sprintf("Attach a supporting document for %s", def.Name)
}

// relevantToProfile applies the contextual-relevance filtering: explicit
// exclusions win, then the catalogue's profile gates.
func relevantToProfile(def model.TaxCategoryDefinition, profile model.UserProfile) bool {
	if profile.Excludes(def.Code) {
		return false
	}
	if def.InvestorOnly && !profile.HasInvestments {
		return false
	}
	if def.LandlordOnly && !profile.HasRentalProperty {
		return false
	}
	if def.BusinessOnly && !profile.RunsBusiness {
		return false
	}
	return true
}
