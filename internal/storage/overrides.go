package storage

import (
	"context"
	"fmt"

	"github.com/tallyhq/tally/internal/model"
)

// SetItemStatus records a manual checklist status for an item id.
func (s *SQLiteStorage) SetItemStatus(ctx context.Context, itemID string, status model.ItemStatus) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(itemID, "itemID"); err != nil {
		return err
	}
	if !model.ValidItemStatus(status) {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	query := `
		INSERT INTO item_overrides (item_id, status, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(item_id) DO UPDATE SET
			status = excluded.status,
			updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, query, itemID, string(status)); err != nil {
		return fmt.Errorf("failed to set item status: %w", err)
	}
	return nil
}

// ClearItemStatus removes a manual checklist status override.
func (s *SQLiteStorage) ClearItemStatus(ctx context.Context, itemID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(itemID, "itemID"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM item_overrides WHERE item_id = ?`, itemID); err != nil {
		return fmt.Errorf("failed to clear item status: %w", err)
	}
	return nil
}

// GetItemStatuses returns all manual checklist statuses keyed by item id.
func (s *SQLiteStorage) GetItemStatuses(ctx context.Context) (map[string]model.ItemStatus, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT item_id, status FROM item_overrides`)
	if err != nil {
		return nil, fmt.Errorf("failed to query item overrides: %w", err)
	}
	defer rows.Close()

	statuses := make(map[string]model.ItemStatus)
	for rows.Next() {
		var itemID, status string
		if err := rows.Scan(&itemID, &status); err != nil {
			return nil, fmt.Errorf("failed to scan item override: %w", err)
		}
		statuses[itemID] = model.ItemStatus(status)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item overrides: %w", err)
	}
	return statuses, nil
}

// MarkSuggestionImplemented flags a suggestion id as acted on.
func (s *SQLiteStorage) MarkSuggestionImplemented(ctx context.Context, suggestionID string) error {
	return s.setSuggestionState(ctx, suggestionID, "implemented")
}

// MarkSuggestionDismissed flags a suggestion id as not applicable.
func (s *SQLiteStorage) MarkSuggestionDismissed(ctx context.Context, suggestionID string) error {
	return s.setSuggestionState(ctx, suggestionID, "dismissed")
}

// setSuggestionState upserts the single flag row for a suggestion; the two
// states are mutually exclusive.
func (s *SQLiteStorage) setSuggestionState(ctx context.Context, suggestionID, state string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(suggestionID, "suggestionID"); err != nil {
		return err
	}

	query := `
		INSERT INTO suggestion_flags (suggestion_id, state, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(suggestion_id) DO UPDATE SET
			state = excluded.state,
			updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, query, suggestionID, state); err != nil {
		return fmt.Errorf("failed to set suggestion state: %w", err)
	}
	return nil
}

// ClearSuggestion removes both flags for a suggestion id.
func (s *SQLiteStorage) ClearSuggestion(ctx context.Context, suggestionID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(suggestionID, "suggestionID"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM suggestion_flags WHERE suggestion_id = ?`, suggestionID); err != nil {
		return fmt.Errorf("failed to clear suggestion flags: %w", err)
	}
	return nil
}

// GetSuggestionFlags returns the implemented and dismissed suggestion ids.
func (s *SQLiteStorage) GetSuggestionFlags(ctx context.Context) (implemented, dismissed []string, err error) {
	if err := validateContext(ctx); err != nil {
		return nil, nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT suggestion_id, state FROM suggestion_flags ORDER BY suggestion_id`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query suggestion flags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, state string
		if err := rows.Scan(&id, &state); err != nil {
			return nil, nil, fmt.Errorf("failed to scan suggestion flag: %w", err)
		}
		switch state {
		case "implemented":
			implemented = append(implemented, id)
		case "dismissed":
			dismissed = append(dismissed, id)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating suggestion flags: %w", err)
	}
	return implemented, dismissed, nil
}
