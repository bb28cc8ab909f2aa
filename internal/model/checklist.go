package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ItemStatus is the substantiation status of one checklist item.
type ItemStatus string

const (
	// StatusComplete means the category is reported and substantiated.
	StatusComplete ItemStatus = "complete"
	// StatusPartial means amounts exist but substantiation is outstanding.
	StatusPartial ItemStatus = "partial"
	// StatusMissing means an expected category has no usable data.
	StatusMissing ItemStatus = "missing"
	// StatusNotApplicable means the category is not relevant to this profile.
	StatusNotApplicable ItemStatus = "not_applicable"
)

// ValidItemStatus reports whether s is one of the four defined statuses.
func ValidItemStatus(s ItemStatus) bool {
	switch s {
	case StatusComplete, StatusPartial, StatusMissing, StatusNotApplicable:
		return true
	}
	return false
}

// ChecklistItem is one category's substantiation state for the current run.
// Items are rebuilt from scratch on every report generation; manual overrides
// are re-applied on top afterwards.
type ChecklistItem struct {
	ID           string
	Category     string
	Title        string
	Description  string
	Status       ItemStatus
	ActionNeeded string
	ActionLink   string
	Priority     CategoryPriority
	Amount       decimal.Decimal
	Required     bool
}

// ChecklistItemID builds the deterministic item id for a category. Ids are
// stable across regenerations so that caller overrides keyed by id survive.
func ChecklistItemID(kind CategoryKind, code string) string {
	return fmt.Sprintf("%s:%s", kind, code)
}
