// Package tracker owns the in-memory expense log and budget limit, and
// mirrors every mutation to durable storage.
//
// The two slots are independent: each mutation rewrites its own slot in
// full, and no transaction spans both. A crash between mutating and
// persisting loses at most that one slot's latest change.
package tracker

import (
	"budgetwise/internal/model"
	"budgetwise/internal/store"
)

// Storage is the persistence dependency injected into the tracker.
// *store.Store satisfies it; tests substitute an in-memory fake.
type Storage interface {
	LoadJSON(key string, out any) bool
	SaveJSON(key string, v any)
}

// Tracker holds the current expenses and budget limit. It is not safe for
// concurrent mutation; mutations are discrete sequential user actions.
type Tracker struct {
	storage  Storage
	expenses []model.Expense
	limit    *float64
}

// New builds a tracker hydrated from the two storage slots. A nil storage
// yields an empty in-memory tracker whose changes are not persisted.
func New(s Storage) *Tracker {
	t := &Tracker{storage: s, expenses: []model.Expense{}}
	if s == nil {
		return t
	}

	var expenses []model.Expense
	if s.LoadJSON(store.KeyExpenses, &expenses) && expenses != nil {
		t.expenses = expenses
	}

	var limit *float64
	if s.LoadJSON(store.KeyBudgetLimit, &limit) {
		t.limit = limit
	}
	return t
}

// Expenses returns the logged expenses in insertion order.
// The returned slice is owned by the tracker; callers must not mutate it.
func (t *Tracker) Expenses() []model.Expense {
	return t.expenses
}

// Limit returns the configured daily limit, or (0, false) when unset.
func (t *Tracker) Limit() (float64, bool) {
	if t.limit == nil {
		return 0, false
	}
	return *t.limit, true
}

// Add validates e and appends it to the log. Invalid expenses are rejected
// before any state change or persistence write.
func (t *Tracker) Add(e model.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	t.expenses = append(t.expenses, e)
	t.persistExpenses()
	return nil
}

// SetLimit overwrites the daily budget limit wholesale.
func (t *Tracker) SetLimit(v float64) error {
	if err := model.ValidateLimit(v); err != nil {
		return err
	}
	t.limit = &v
	t.persistLimit()
	return nil
}

// ClearLimit unsets the daily budget limit.
func (t *Tracker) ClearLimit() {
	t.limit = nil
	t.persistLimit()
}

// Replace swaps the entire expense log. This is the only removal path;
// individual expenses are immutable once created.
func (t *Tracker) Replace(expenses []model.Expense) {
	if expenses == nil {
		expenses = []model.Expense{}
	}
	t.expenses = expenses
	t.persistExpenses()
}

func (t *Tracker) persistExpenses() {
	if t.storage == nil {
		return
	}
	t.storage.SaveJSON(store.KeyExpenses, t.expenses)
}

func (t *Tracker) persistLimit() {
	if t.storage == nil {
		return
	}
	t.storage.SaveJSON(store.KeyBudgetLimit, t.limit)
}
