package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/checklist"
	"github.com/tallyhq/tally/internal/config"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/report"
	"github.com/tallyhq/tally/internal/service"
	"github.com/tallyhq/tally/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// buildGenerateInput converts the persisted session into the engine's input.
func buildGenerateInput(session *service.Session) report.GenerateInput {
	overrides := report.NewOverrideStore()
	for id, status := range session.ItemStatuses {
		// Statuses were validated on write; an unknown value in an old
		// database is skipped rather than failing the whole report.
		_ = overrides.SetItemStatus(id, status)
	}
	for _, id := range session.Implemented {
		overrides.Implement(id)
	}
	for _, id := range session.Dismissed {
		overrides.Dismiss(id)
	}

	opportunities := make([]model.Opportunity, 0, len(session.Opportunities))
	for _, opp := range session.Opportunities {
		opportunities = append(opportunities, opp)
	}

	names := make([]string, 0, len(session.Offsets))
	for name := range session.Offsets {
		names = append(names, name)
	}
	sort.Strings(names)
	offsets := make([]decimal.Decimal, 0, len(names))
	for _, name := range names {
		offsets = append(offsets, session.Offsets[name])
	}

	return report.GenerateInput{
		Profile:       session.Profile,
		Income:        session.Income,
		Deductions:    session.Deductions,
		Opportunities: opportunities,
		TaxWithheld:   session.TaxWithheld,
		Offsets:       offsets,
		Overrides:     overrides,
	}
}

// generateReport loads the session and runs the engine in one step.
func generateReport(ctx context.Context, store service.Storage) (*model.CompletenessReport, error) {
	session, err := store.LoadSession(ctx)
	if err != nil {
		return nil, err
	}

	engine := newEngine()
	r, _, err := engine.GenerateReport(buildGenerateInput(session))
	return r, err
}

// newEngine builds the report engine over the default catalogue.
func newEngine() *report.Engine {
	return report.New(checklist.DefaultCatalogue())
}

// parseAmount parses a non-negative decimal command argument.
func parseAmount(arg, name string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(arg)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", name, arg, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must not be negative, got %s", name, arg)
	}
	return amount, nil
}
