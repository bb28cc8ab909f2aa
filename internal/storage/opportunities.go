package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/model"
)

// SaveOpportunity inserts or updates an optimization opportunity. An empty ID
// gets a generated one.
func (s *SQLiteStorage) SaveOpportunity(ctx context.Context, opp model.OptimizationOpportunity) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateOpportunity(opp); err != nil {
		return err
	}
	if opp.ID == "" {
		opp.ID = uuid.New().String()
	}

	query := `
		INSERT INTO opportunities (id, title, level, savings, link, implemented)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			level = excluded.level,
			savings = excluded.savings,
			link = excluded.link,
			implemented = excluded.implemented`

	_, err := s.db.ExecContext(ctx, query,
		opp.ID, opp.Title, string(opp.Level), opp.Savings.String(), opp.Link, opp.Implemented)
	if err != nil {
		return fmt.Errorf("failed to save opportunity: %w", err)
	}

	slog.Debug("saved opportunity", "id", opp.ID, "title", opp.Title)
	return nil
}

// GetOpportunities returns all stored opportunities ordered by creation time.
func (s *SQLiteStorage) GetOpportunities(ctx context.Context) ([]model.OptimizationOpportunity, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, title, level, savings, link, implemented
		FROM opportunities
		ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query opportunities: %w", err)
	}
	defer rows.Close()

	var opportunities []model.OptimizationOpportunity
	for rows.Next() {
		var (
			opp     model.OptimizationOpportunity
			level   string
			savings string
			link    *string
		)
		if err := rows.Scan(&opp.ID, &opp.Title, &level, &savings, &link, &opp.Implemented); err != nil {
			return nil, fmt.Errorf("failed to scan opportunity: %w", err)
		}
		opp.Level = model.OpportunityPriority(level)
		opp.Savings, err = decimal.NewFromString(savings)
		if err != nil {
			return nil, fmt.Errorf("opportunity %s: invalid stored savings %q: %w", opp.ID, savings, err)
		}
		if link != nil {
			opp.Link = *link
		}
		opportunities = append(opportunities, opp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating opportunities: %w", err)
	}
	return opportunities, nil
}

// DeleteOpportunity removes an opportunity and its suggestion flags.
func (s *SQLiteStorage) DeleteOpportunity(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM opportunities WHERE id = ?`, id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to delete opportunity: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM suggestion_flags WHERE suggestion_id = ?`, id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to delete suggestion flags: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}
