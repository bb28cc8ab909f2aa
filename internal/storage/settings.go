package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/model"
)

const settingTaxWithheld = "tax_withheld"

// SaveProfile replaces the single stored taxpayer profile.
func (s *SQLiteStorage) SaveProfile(ctx context.Context, profile model.UserProfile) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := `
		INSERT INTO profile (id, occupation, work_arrangement, has_investments, has_rental_property, runs_business)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			occupation = excluded.occupation,
			work_arrangement = excluded.work_arrangement,
			has_investments = excluded.has_investments,
			has_rental_property = excluded.has_rental_property,
			runs_business = excluded.runs_business`

	if _, err := tx.ExecContext(ctx, query,
		profile.Occupation, profile.WorkArrangement,
		profile.HasInvestments, profile.HasRentalProperty, profile.RunsBusiness); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to save profile: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM excluded_categories`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear excluded categories: %w", err)
	}
	for _, code := range profile.ExcludedCategories {
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO excluded_categories (code) VALUES (?)`, code); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to save excluded category %s: %w", code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit profile: %w", err)
	}
	return nil
}

// GetProfile returns the stored profile, or a zero profile when none has been
// saved yet.
func (s *SQLiteStorage) GetProfile(ctx context.Context) (model.UserProfile, error) {
	if err := validateContext(ctx); err != nil {
		return model.UserProfile{}, err
	}

	var profile model.UserProfile
	err := s.db.QueryRowContext(ctx, `
		SELECT occupation, work_arrangement, has_investments, has_rental_property, runs_business
		FROM profile WHERE id = 1`).Scan(
		&profile.Occupation, &profile.WorkArrangement,
		&profile.HasInvestments, &profile.HasRentalProperty, &profile.RunsBusiness)
	if errors.Is(err, sql.ErrNoRows) {
		return model.UserProfile{}, nil
	}
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to query profile: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT code FROM excluded_categories ORDER BY code`)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to query excluded categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return model.UserProfile{}, fmt.Errorf("failed to scan excluded category: %w", err)
		}
		profile.ExcludedCategories = append(profile.ExcludedCategories, code)
	}
	if err := rows.Err(); err != nil {
		return model.UserProfile{}, fmt.Errorf("error iterating excluded categories: %w", err)
	}

	return profile, nil
}

// SetTaxWithheld stores the total tax withheld figure.
func (s *SQLiteStorage) SetTaxWithheld(ctx context.Context, amount decimal.Decimal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAmount(amount, "amount"); err != nil {
		return err
	}

	query := `
		INSERT INTO settings (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := s.db.ExecContext(ctx, query, settingTaxWithheld, amount.String()); err != nil {
		return fmt.Errorf("failed to set tax withheld: %w", err)
	}
	return nil
}

// GetTaxWithheld returns the stored tax withheld figure, zero when unset.
func (s *SQLiteStorage) GetTaxWithheld(ctx context.Context) (decimal.Decimal, error) {
	if err := validateContext(ctx); err != nil {
		return decimal.Zero, err
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, settingTaxWithheld).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to query tax withheld: %w", err)
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid stored tax withheld %q: %w", value, err)
	}
	return amount, nil
}

// SaveOffset inserts or updates a named tax offset.
func (s *SQLiteStorage) SaveOffset(ctx context.Context, name string, amount decimal.Decimal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}
	if err := validateAmount(amount, "amount"); err != nil {
		return err
	}

	query := `
		INSERT INTO offsets (name, amount, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			amount = excluded.amount,
			updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, query, name, amount.String()); err != nil {
		return fmt.Errorf("failed to save offset: %w", err)
	}
	return nil
}

// DeleteOffset removes a named tax offset.
func (s *SQLiteStorage) DeleteOffset(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM offsets WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to delete offset: %w", err)
	}
	return nil
}

// GetOffsets returns all named tax offsets.
func (s *SQLiteStorage) GetOffsets(ctx context.Context) (map[string]decimal.Decimal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT name, amount FROM offsets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query offsets: %w", err)
	}
	defer rows.Close()

	offsets := make(map[string]decimal.Decimal)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("failed to scan offset: %w", err)
		}
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("offset %s: invalid stored amount %q: %w", name, value, err)
		}
		offsets[name] = amount
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating offsets: %w", err)
	}
	return offsets, nil
}
