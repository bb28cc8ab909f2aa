package report

import "github.com/tallyhq/tally/internal/model"

// alreadyImplemented is the optional capability an opportunity producer may
// satisfy to signal that the source data already reflects the action.
type alreadyImplemented interface {
	AlreadyImplemented() bool
}

// buildSuggestions wraps externally supplied opportunities in suggestions,
// applying the caller's implemented/dismissed override sets. The first return
// value is the caller-facing, actionable-only list with dismissed entries
// dropped; the second is the complete set kept for the report's export data
// so dismissals remain auditable. Stale override ids (not matching any
// opportunity) are returned last and ignored for the run.
func buildSuggestions(opportunities []model.Opportunity, overrides *OverrideStore) (visible, all []model.OptimizationSuggestion, stale []string) {
	known := make(map[string]bool, len(opportunities))

	for _, opp := range opportunities {
		id := opp.OpportunityID()
		known[id] = true

		s := model.OptimizationSuggestion{
			ID:      id,
			Title:   opp.OpportunityTitle(),
			Level:   opp.Priority(),
			Savings: opp.EstimatedTaxSavings(),
			Link:    opp.ActionLink(),
		}
		if src, ok := opp.(alreadyImplemented); ok && src.AlreadyImplemented() {
			s.Implemented = true
		}
		if overrides != nil {
			if overrides.ImplementedIDs[id] {
				s.Implemented = true
			}
			if overrides.DismissedIDs[id] {
				s.Dismissed = true
			}
		}

		all = append(all, s)
		if !s.Dismissed {
			visible = append(visible, s)
		}
	}

	if overrides != nil {
		for id := range overrides.ImplementedIDs {
			if !known[id] {
				stale = append(stale, id)
			}
		}
		for id := range overrides.DismissedIDs {
			if !known[id] {
				stale = append(stale, id)
			}
		}
	}

	return visible, all, stale
}
