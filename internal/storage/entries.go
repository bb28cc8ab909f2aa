package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/model"
)

// SaveIncomeEntry inserts or updates the income entry for a category code.
func (s *SQLiteStorage) SaveIncomeEntry(ctx context.Context, category string, entry model.IncomeEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(category, "category"); err != nil {
		return err
	}
	if err := validateIncomeEntry(entry); err != nil {
		return err
	}

	query := `
		INSERT INTO income_entries (category, amount, prior_year_amount, document_count, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(category) DO UPDATE SET
			amount = excluded.amount,
			prior_year_amount = excluded.prior_year_amount,
			document_count = excluded.document_count,
			updated_at = CURRENT_TIMESTAMP`

	_, err := s.db.ExecContext(ctx, query,
		category, entry.Amount.String(), priorYearString(entry.PriorYearAmount), entry.DocumentCount)
	if err != nil {
		return fmt.Errorf("failed to save income entry: %w", err)
	}

	slog.Debug("saved income entry", "category", category, "amount", entry.Amount)
	return nil
}

// GetIncomeEntries returns all income entries keyed by category code.
func (s *SQLiteStorage) GetIncomeEntries(ctx context.Context) (map[string]model.IncomeEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT category, amount, prior_year_amount, document_count
		FROM income_entries
		ORDER BY category`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query income entries: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]model.IncomeEntry)
	for rows.Next() {
		var (
			category  string
			amount    string
			priorYear *string
			docCount  int
		)
		if err := rows.Scan(&category, &amount, &priorYear, &docCount); err != nil {
			return nil, fmt.Errorf("failed to scan income entry: %w", err)
		}
		entry, err := incomeEntryFromRow(amount, priorYear, docCount)
		if err != nil {
			return nil, fmt.Errorf("income entry %s: %w", category, err)
		}
		entries[category] = entry
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating income entries: %w", err)
	}
	return entries, nil
}

// DeleteIncomeEntry removes the income entry for a category code.
func (s *SQLiteStorage) DeleteIncomeEntry(ctx context.Context, category string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(category, "category"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM income_entries WHERE category = ?`, category)
	if err != nil {
		return fmt.Errorf("failed to delete income entry: %w", err)
	}
	return nil
}

// SaveDeductionEntry inserts or updates the deduction entry for a category code.
func (s *SQLiteStorage) SaveDeductionEntry(ctx context.Context, category string, entry model.DeductionEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(category, "category"); err != nil {
		return err
	}
	if err := validateDeductionEntry(entry); err != nil {
		return err
	}

	query := `
		INSERT INTO deduction_entries (category, amount, prior_year_amount, document_count, workpaper_complete, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(category) DO UPDATE SET
			amount = excluded.amount,
			prior_year_amount = excluded.prior_year_amount,
			document_count = excluded.document_count,
			workpaper_complete = excluded.workpaper_complete,
			updated_at = CURRENT_TIMESTAMP`

	_, err := s.db.ExecContext(ctx, query,
		category, entry.Amount.String(), priorYearString(entry.PriorYearAmount), entry.DocumentCount, entry.WorkpaperComplete)
	if err != nil {
		return fmt.Errorf("failed to save deduction entry: %w", err)
	}

	slog.Debug("saved deduction entry", "category", category, "amount", entry.Amount)
	return nil
}

// GetDeductionEntries returns all deduction entries keyed by category code.
func (s *SQLiteStorage) GetDeductionEntries(ctx context.Context) (map[string]model.DeductionEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT category, amount, prior_year_amount, document_count, workpaper_complete
		FROM deduction_entries
		ORDER BY category`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query deduction entries: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]model.DeductionEntry)
	for rows.Next() {
		var (
			category  string
			amount    string
			priorYear *string
			docCount  int
			workpaper bool
		)
		if err := rows.Scan(&category, &amount, &priorYear, &docCount, &workpaper); err != nil {
			return nil, fmt.Errorf("failed to scan deduction entry: %w", err)
		}
		base, err := incomeEntryFromRow(amount, priorYear, docCount)
		if err != nil {
			return nil, fmt.Errorf("deduction entry %s: %w", category, err)
		}
		entries[category] = model.DeductionEntry{
			Amount:            base.Amount,
			PriorYearAmount:   base.PriorYearAmount,
			DocumentCount:     base.DocumentCount,
			WorkpaperComplete: workpaper,
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deduction entries: %w", err)
	}
	return entries, nil
}

// DeleteDeductionEntry removes the deduction entry for a category code.
func (s *SQLiteStorage) DeleteDeductionEntry(ctx context.Context, category string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(category, "category"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM deduction_entries WHERE category = ?`, category)
	if err != nil {
		return fmt.Errorf("failed to delete deduction entry: %w", err)
	}
	return nil
}

// priorYearString renders an optional prior-year amount for storage.
func priorYearString(amount *decimal.Decimal) *string {
	if amount == nil {
		return nil
	}
	s := amount.String()
	return &s
}

// incomeEntryFromRow parses the shared entry columns.
func incomeEntryFromRow(amount string, priorYear *string, docCount int) (model.IncomeEntry, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return model.IncomeEntry{}, fmt.Errorf("invalid stored amount %q: %w", amount, err)
	}
	entry := model.IncomeEntry{Amount: parsed, DocumentCount: docCount}
	if priorYear != nil {
		prior, err := decimal.NewFromString(*priorYear)
		if err != nil {
			return model.IncomeEntry{}, fmt.Errorf("invalid stored prior-year amount %q: %w", *priorYear, err)
		}
		entry.PriorYearAmount = &prior
	}
	return entry, nil
}
