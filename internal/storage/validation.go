// Package storage provides the SQLite session persistence for tally.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrInvalidStatus  = errors.New("invalid checklist item status")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateAmount ensures a monetary amount is not negative.
func validateAmount(amount decimal.Decimal, paramName string) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, paramName)
	}
	return nil
}

// validateIncomeEntry validates a single income entry.
func validateIncomeEntry(entry model.IncomeEntry) error {
	if err := validateAmount(entry.Amount, "amount"); err != nil {
		return err
	}
	if entry.PriorYearAmount != nil {
		if err := validateAmount(*entry.PriorYearAmount, "priorYearAmount"); err != nil {
			return err
		}
	}
	if entry.DocumentCount < 0 {
		return fmt.Errorf("%w: documentCount", ErrNegativeAmount)
	}
	return nil
}

// validateDeductionEntry validates a single deduction entry.
func validateDeductionEntry(entry model.DeductionEntry) error {
	if err := validateAmount(entry.Amount, "amount"); err != nil {
		return err
	}
	if entry.PriorYearAmount != nil {
		if err := validateAmount(*entry.PriorYearAmount, "priorYearAmount"); err != nil {
			return err
		}
	}
	if entry.DocumentCount < 0 {
		return fmt.Errorf("%w: documentCount", ErrNegativeAmount)
	}
	return nil
}

// validateOpportunity validates an opportunity before it is saved.
func validateOpportunity(opp model.OptimizationOpportunity) error {
	if err := validateString(opp.Title, "title"); err != nil {
		return err
	}
	return validateAmount(opp.Savings, "savings")
}
