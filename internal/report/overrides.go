// Package report aggregates checklists, documents, suggestions, scores and
// the tax estimate into a completeness report, and plans the next action.
package report

import (
	"sort"

	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

// OverrideStore is the caller-owned set of session overrides: manual
// checklist statuses and implemented/dismissed suggestion ids. The engine
// treats it as a read-only input on every call and re-applies it after each
// recomputation, so manual corrections survive regeneration. There is no
// automatic expiry; the caller clears entries explicitly.
type OverrideStore struct {
	ItemStatuses   map[string]model.ItemStatus
	ImplementedIDs map[string]bool
	DismissedIDs   map[string]bool
}

// NewOverrideStore creates an empty override store.
func NewOverrideStore() *OverrideStore {
	return &OverrideStore{
		ItemStatuses:   make(map[string]model.ItemStatus),
		ImplementedIDs: make(map[string]bool),
		DismissedIDs:   make(map[string]bool),
	}
}

// SetItemStatus records a manual status for a checklist item id.
func (s *OverrideStore) SetItemStatus(itemID string, status model.ItemStatus) error {
	if !model.ValidItemStatus(status) {
		return common.InvalidInputf("unknown item status %q", status)
	}
	if s.ItemStatuses == nil {
		s.ItemStatuses = make(map[string]model.ItemStatus)
	}
	s.ItemStatuses[itemID] = status
	return nil
}

// ClearItemStatus removes a manual status override.
func (s *OverrideStore) ClearItemStatus(itemID string) {
	delete(s.ItemStatuses, itemID)
}

// Implement marks a suggestion id as acted on.
func (s *OverrideStore) Implement(suggestionID string) {
	if s.ImplementedIDs == nil {
		s.ImplementedIDs = make(map[string]bool)
	}
	s.ImplementedIDs[suggestionID] = true
	delete(s.DismissedIDs, suggestionID)
}

// Dismiss marks a suggestion id as not applicable to this user.
func (s *OverrideStore) Dismiss(suggestionID string) {
	if s.DismissedIDs == nil {
		s.DismissedIDs = make(map[string]bool)
	}
	s.DismissedIDs[suggestionID] = true
	delete(s.ImplementedIDs, suggestionID)
}

// ClearSuggestion removes both suggestion flags for an id.
func (s *OverrideStore) ClearSuggestion(suggestionID string) {
	delete(s.ImplementedIDs, suggestionID)
	delete(s.DismissedIDs, suggestionID)
}

// applyItemOverrides replaces computed statuses with manual ones across both
// checklists. Overridden items lose their computed action hint. Returns the
// override ids that did not match any item in this run; those are ignored,
// not fatal.
func applyItemOverrides(incomeChecks, deductionChecks []model.ChecklistItem, statuses map[string]model.ItemStatus) []string {
	if len(statuses) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(statuses))
	for _, items := range [][]model.ChecklistItem{incomeChecks, deductionChecks} {
		for i := range items {
			override, ok := statuses[items[i].ID]
			if !ok {
				continue
			}
			seen[items[i].ID] = true
			if items[i].Status == override {
				continue
			}
			items[i].Status = override
			items[i].ActionNeeded = ""
		}
	}
	var stale []string
	for id := range statuses {
		if !seen[id] {
			stale = append(stale, id)
		}
	}
	sort.Strings(stale)
	return stale
}
