package tracker

import (
	"encoding/json"
	"errors"
	"testing"

	"budgetwise/internal/model"
	"budgetwise/internal/store"
)

// fakeStorage is an in-memory Storage that records every save.
type fakeStorage struct {
	values map[string][]byte
	saves  []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{values: make(map[string][]byte)}
}

func (f *fakeStorage) LoadJSON(key string, out any) bool {
	raw, ok := f.values[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (f *fakeStorage) SaveJSON(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	f.values[key] = raw
	f.saves = append(f.saves, key)
}

func validExpense(t *testing.T, desc string, amount float64) model.Expense {
	t.Helper()
	e, err := model.NewExpense(desc, amount, model.CategoryFood)
	if err != nil {
		t.Fatalf("NewExpense: %v", err)
	}
	return e
}

func TestNew_EmptyDefaults(t *testing.T) {
	tr := New(newFakeStorage())

	if len(tr.Expenses()) != 0 {
		t.Errorf("Expenses = %v, want empty", tr.Expenses())
	}
	if _, ok := tr.Limit(); ok {
		t.Error("Limit should be unset on fresh state")
	}
}

func TestAdd_MirrorsFullList(t *testing.T) {
	fs := newFakeStorage()
	tr := New(fs)

	if err := tr.Add(validExpense(t, "lunch", 12)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := tr.Add(validExpense(t, "coffee", 4)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	var persisted []model.Expense
	if !fs.LoadJSON(store.KeyExpenses, &persisted) {
		t.Fatal("expenses slot not written")
	}
	if len(persisted) != 2 {
		t.Fatalf("persisted %d expenses, want 2 (full list, not delta)", len(persisted))
	}
	if persisted[0].Description != "lunch" || persisted[1].Description != "coffee" {
		t.Error("persisted list lost insertion order")
	}
}

func TestAdd_InvalidRejectedBeforeAnyWrite(t *testing.T) {
	fs := newFakeStorage()
	tr := New(fs)

	bad := model.Expense{ID: "x", Description: "free stuff", Amount: 0, Category: model.CategoryOther}
	if err := tr.Add(bad); !errors.Is(err, model.ErrAmountTooSmall) {
		t.Fatalf("Add = %v, want ErrAmountTooSmall", err)
	}

	if len(tr.Expenses()) != 0 {
		t.Error("store mutated despite validation failure")
	}
	if len(fs.saves) != 0 {
		t.Errorf("persistence write issued despite validation failure: %v", fs.saves)
	}
}

func TestSetLimit_OverwritesWholesale(t *testing.T) {
	fs := newFakeStorage()
	tr := New(fs)

	if err := tr.SetLimit(50); err != nil {
		t.Fatalf("SetLimit: %v", err)
	}
	if err := tr.SetLimit(75); err != nil {
		t.Fatalf("SetLimit: %v", err)
	}

	if v, ok := tr.Limit(); !ok || v != 75 {
		t.Errorf("Limit = %v,%v, want 75,true", v, ok)
	}

	var persisted *float64
	if !fs.LoadJSON(store.KeyBudgetLimit, &persisted) {
		t.Fatal("limit slot not written")
	}
	if persisted == nil || *persisted != 75 {
		t.Errorf("persisted limit = %v, want 75", persisted)
	}
}

func TestSetLimit_Invalid(t *testing.T) {
	fs := newFakeStorage()
	tr := New(fs)

	if err := tr.SetLimit(0); !errors.Is(err, model.ErrLimitTooSmall) {
		t.Fatalf("SetLimit(0) = %v, want ErrLimitTooSmall", err)
	}
	if len(fs.saves) != 0 {
		t.Error("persistence write issued for rejected limit")
	}
}

func TestClearLimit(t *testing.T) {
	fs := newFakeStorage()
	tr := New(fs)

	_ = tr.SetLimit(20)
	tr.ClearLimit()

	if _, ok := tr.Limit(); ok {
		t.Error("Limit still set after ClearLimit")
	}

	var persisted *float64
	fs.LoadJSON(store.KeyBudgetLimit, &persisted)
	if persisted != nil {
		t.Errorf("persisted limit = %v, want null", *persisted)
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	fs := newFakeStorage()
	tr := New(fs)

	_ = tr.Add(validExpense(t, "lunch", 12))
	if len(fs.saves) != 1 || fs.saves[0] != store.KeyExpenses {
		t.Errorf("expense mutation touched other slots: %v", fs.saves)
	}

	_ = tr.SetLimit(30)
	if len(fs.saves) != 2 || fs.saves[1] != store.KeyBudgetLimit {
		t.Errorf("limit mutation touched other slots: %v", fs.saves)
	}
}

func TestNew_HydratesFromStorage(t *testing.T) {
	fs := newFakeStorage()
	first := New(fs)
	_ = first.SetLimit(40)
	_ = first.Add(validExpense(t, "groceries", 22))

	second := New(fs)
	if v, ok := second.Limit(); !ok || v != 40 {
		t.Errorf("rehydrated limit = %v,%v, want 40,true", v, ok)
	}
	if len(second.Expenses()) != 1 || second.Expenses()[0].Description != "groceries" {
		t.Errorf("rehydrated expenses = %+v", second.Expenses())
	}
}

func TestReplace_IsTheOnlyRemovalPath(t *testing.T) {
	fs := newFakeStorage()
	tr := New(fs)
	_ = tr.Add(validExpense(t, "lunch", 12))

	tr.Replace(nil)

	if len(tr.Expenses()) != 0 {
		t.Error("Replace(nil) should clear the log")
	}

	var persisted []model.Expense
	if !fs.LoadJSON(store.KeyExpenses, &persisted) {
		t.Fatal("expenses slot not rewritten")
	}
	if len(persisted) != 0 {
		t.Errorf("persisted = %v, want empty list", persisted)
	}
}

func TestNilStorage_InMemoryOnly(t *testing.T) {
	tr := New(nil)
	if err := tr.Add(validExpense(t, "lunch", 12)); err != nil {
		t.Fatalf("Add with nil storage: %v", err)
	}
	if len(tr.Expenses()) != 1 {
		t.Error("in-memory state should still work without storage")
	}
}
