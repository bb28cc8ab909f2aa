package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tallyhq/tally/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage implements the service.Storage interface using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Reset removes all session data, leaving the schema in place.
func (s *SQLiteStorage) Reset(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tables := []string{
		"income_entries",
		"deduction_entries",
		"opportunities",
		"item_overrides",
		"suggestion_flags",
		"offsets",
		"profile",
		"excluded_categories",
		"settings",
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}
	return nil
}

// LoadSession reads the whole working state in one call.
func (s *SQLiteStorage) LoadSession(ctx context.Context) (*service.Session, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	profile, err := s.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	income, err := s.GetIncomeEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load income entries: %w", err)
	}
	deductions, err := s.GetDeductionEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load deduction entries: %w", err)
	}
	opportunities, err := s.GetOpportunities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load opportunities: %w", err)
	}
	statuses, err := s.GetItemStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load item overrides: %w", err)
	}
	implemented, dismissed, err := s.GetSuggestionFlags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load suggestion flags: %w", err)
	}
	withheld, err := s.GetTaxWithheld(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tax withheld: %w", err)
	}
	offsets, err := s.GetOffsets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load offsets: %w", err)
	}

	return &service.Session{
		Profile:       profile,
		Income:        income,
		Deductions:    deductions,
		Opportunities: opportunities,
		ItemStatuses:  statuses,
		Implemented:   implemented,
		Dismissed:     dismissed,
		Offsets:       offsets,
		TaxWithheld:   withheld,
	}, nil
}
