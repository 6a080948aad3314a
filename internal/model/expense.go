package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validation bounds for expense submissions.
const (
	MaxDescriptionLen = 100
	MinAmount         = 0.01
)

var (
	// ErrEmptyDescription indicates a blank expense description.
	ErrEmptyDescription = errors.New("description is required")
	// ErrDescriptionTooLong indicates a description over MaxDescriptionLen characters.
	ErrDescriptionTooLong = fmt.Errorf("description exceeds %d characters", MaxDescriptionLen)
	// ErrAmountTooSmall indicates an amount below MinAmount.
	ErrAmountTooSmall = fmt.Errorf("amount must be at least %.2f", MinAmount)
	// ErrUnknownCategory indicates a category missing from the registry.
	ErrUnknownCategory = errors.New("unknown category")
)

// Expense is a single logged spending event. Expenses are immutable once
// created; the only removal path is wholesale replacement of the log.
type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    Category  `json:"category"`
	Date        time.Time `json:"date"`
}

// NewExpense builds a validated expense with a fresh ID, dated now.
func NewExpense(description string, amount float64, category Category) (Expense, error) {
	e := Expense{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(description),
		Amount:      amount,
		Category:    category,
		Date:        time.Now(),
	}
	if err := e.Validate(); err != nil {
		return Expense{}, err
	}
	return e, nil
}

// Validate checks the expense against the submission rules.
func (e Expense) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	if len([]rune(e.Description)) > MaxDescriptionLen {
		return ErrDescriptionTooLong
	}
	if e.Amount < MinAmount {
		return ErrAmountTooSmall
	}
	if !e.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, e.Category)
	}
	return nil
}
