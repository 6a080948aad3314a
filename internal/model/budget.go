package model

import "fmt"

// MinBudgetLimit is the smallest configurable daily limit.
const MinBudgetLimit = 0.01

// ErrLimitTooSmall indicates a proposed limit below MinBudgetLimit.
var ErrLimitTooSmall = fmt.Errorf("budget limit must be at least %.2f", MinBudgetLimit)

// ValidateLimit checks a proposed daily budget limit.
func ValidateLimit(v float64) error {
	if v < MinBudgetLimit {
		return ErrLimitTooSmall
	}
	return nil
}

// BudgetStatus holds the derived budget figures for display.
// Remaining is only meaningful when HasLimit is true; an unset limit is
// distinct from exactly zero remaining.
type BudgetStatus struct {
	Limit        float64
	HasLimit     bool
	TotalSpent   float64
	Remaining    float64
	PercentSpent float64 // raw, unclamped; >100 means over budget
	OverBudget   bool
}
