// Package service defines the interfaces for the host application services.
package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/model"
)

// Session is the persisted working state of one tax return in progress:
// profile, entered amounts, known opportunities, manual overrides and the
// withholding figures. It is everything the report engine reads.
type Session struct {
	Profile       model.UserProfile
	Income        map[string]model.IncomeEntry
	Deductions    map[string]model.DeductionEntry
	Opportunities []model.OptimizationOpportunity
	ItemStatuses  map[string]model.ItemStatus
	Implemented   []string
	Dismissed     []string
	Offsets       map[string]decimal.Decimal
	TaxWithheld   decimal.Decimal
}

// Storage defines the contract for the session persistence layer.
type Storage interface {
	// Entry operations
	SaveIncomeEntry(ctx context.Context, category string, entry model.IncomeEntry) error
	GetIncomeEntries(ctx context.Context) (map[string]model.IncomeEntry, error)
	DeleteIncomeEntry(ctx context.Context, category string) error
	SaveDeductionEntry(ctx context.Context, category string, entry model.DeductionEntry) error
	GetDeductionEntries(ctx context.Context) (map[string]model.DeductionEntry, error)
	DeleteDeductionEntry(ctx context.Context, category string) error

	// Opportunity operations
	SaveOpportunity(ctx context.Context, opp model.OptimizationOpportunity) error
	GetOpportunities(ctx context.Context) ([]model.OptimizationOpportunity, error)
	DeleteOpportunity(ctx context.Context, id string) error

	// Override operations
	SetItemStatus(ctx context.Context, itemID string, status model.ItemStatus) error
	ClearItemStatus(ctx context.Context, itemID string) error
	GetItemStatuses(ctx context.Context) (map[string]model.ItemStatus, error)
	MarkSuggestionImplemented(ctx context.Context, suggestionID string) error
	MarkSuggestionDismissed(ctx context.Context, suggestionID string) error
	ClearSuggestion(ctx context.Context, suggestionID string) error
	GetSuggestionFlags(ctx context.Context) (implemented, dismissed []string, err error)

	// Profile and withholding
	SaveProfile(ctx context.Context, profile model.UserProfile) error
	GetProfile(ctx context.Context) (model.UserProfile, error)
	SetTaxWithheld(ctx context.Context, amount decimal.Decimal) error
	GetTaxWithheld(ctx context.Context) (decimal.Decimal, error)
	SaveOffset(ctx context.Context, name string, amount decimal.Decimal) error
	DeleteOffset(ctx context.Context, name string) error
	GetOffsets(ctx context.Context) (map[string]decimal.Decimal, error)

	// LoadSession reads the whole session in one call.
	LoadSession(ctx context.Context) (*Session, error)

	// Database management
	Migrate(ctx context.Context) error
	Reset(ctx context.Context) error
	Close() error
}
