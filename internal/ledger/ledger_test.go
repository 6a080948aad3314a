package ledger

import (
	"math"
	"reflect"
	"testing"
	"time"

	"budgetwise/internal/model"
)

func exp(desc string, amount float64, cat model.Category, date time.Time) model.Expense {
	return model.Expense{ID: desc, Description: desc, Amount: amount, Category: cat, Date: date}
}

func limitOf(v float64) *float64 { return &v }

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestTotalSpent(t *testing.T) {
	now := time.Now()
	expenses := []model.Expense{
		exp("a", 10.25, model.CategoryFood, now),
		exp("b", 4.75, model.CategoryTransport, now),
		exp("c", 5, model.CategoryFood, now),
	}

	if got := TotalSpent(expenses); !approx(got, 20) {
		t.Errorf("TotalSpent = %v, want 20", got)
	}
	if got := TotalSpent(nil); got != 0 {
		t.Errorf("TotalSpent(nil) = %v, want 0", got)
	}

	// Order-independent.
	reversed := []model.Expense{expenses[2], expenses[1], expenses[0]}
	if TotalSpent(reversed) != TotalSpent(expenses) {
		t.Error("TotalSpent depends on input order")
	}
}

func TestOverBudgetScenario(t *testing.T) {
	// limit 50.00, expenses 30 food + 25 transport.
	now := time.Now()
	expenses := []model.Expense{
		exp("groceries", 30, model.CategoryFood, now),
		exp("taxi", 25, model.CategoryTransport, now),
	}
	limit := limitOf(50)

	total := TotalSpent(expenses)
	if !approx(total, 55) {
		t.Fatalf("TotalSpent = %v, want 55", total)
	}

	rem, ok := Remaining(limit, total)
	if !ok || !approx(rem, -5) {
		t.Errorf("Remaining = %v,%v, want -5,true", rem, ok)
	}
	if !IsOverBudget(rem) {
		t.Error("IsOverBudget = false, want true")
	}
	if pct := PercentSpent(limit, total); !approx(pct, 110) {
		t.Errorf("PercentSpent = %v, want 110 (unclamped)", pct)
	}
}

func TestEmptyLogScenario(t *testing.T) {
	limit := limitOf(20)

	total := TotalSpent(nil)
	if total != 0 {
		t.Fatalf("TotalSpent = %v, want 0", total)
	}

	rem, ok := Remaining(limit, total)
	if !ok || !approx(rem, 20) {
		t.Errorf("Remaining = %v,%v, want 20,true", rem, ok)
	}
	if IsOverBudget(rem) {
		t.Error("IsOverBudget = true, want false")
	}
	if by := ByCategory(nil); len(by) != 0 {
		t.Errorf("ByCategory = %v, want empty", by)
	}
}

func TestRemaining_UnsetLimitIsNotZero(t *testing.T) {
	if _, ok := Remaining(nil, 15); ok {
		t.Error("Remaining with unset limit reported ok; callers must distinguish unset from zero")
	}
	if rem, ok := Remaining(limitOf(15), 15); !ok || rem != 0 {
		t.Errorf("Remaining = %v,%v, want 0,true", rem, ok)
	}
}

func TestPercentSpent(t *testing.T) {
	tests := []struct {
		name  string
		limit *float64
		total float64
		want  float64
	}{
		{"unset limit", nil, 10, 0},
		{"zero limit", limitOf(0), 10, 0},
		{"half spent", limitOf(40), 20, 50},
		{"over budget unclamped", limitOf(50), 55, 110},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentSpent(tt.limit, tt.total); !approx(got, tt.want) {
				t.Errorf("PercentSpent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampPercent(t *testing.T) {
	if got := ClampPercent(110); got != 100 {
		t.Errorf("ClampPercent(110) = %v, want 100", got)
	}
	if got := ClampPercent(-5); got != 0 {
		t.Errorf("ClampPercent(-5) = %v, want 0", got)
	}
	if got := ClampPercent(42.5); got != 42.5 {
		t.Errorf("ClampPercent(42.5) = %v, want 42.5", got)
	}
}

func TestByCategory(t *testing.T) {
	now := time.Now()
	expenses := []model.Expense{
		exp("taxi", 12, model.CategoryTransport, now),
		exp("lunch", 8, model.CategoryFood, now),
		exp("bus", 3, model.CategoryTransport, now),
	}

	got := ByCategory(expenses)
	want := []CategoryTotal{
		{model.CategoryTransport, 15},
		{model.CategoryFood, 8},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ByCategory = %v, want %v (first-occurrence order)", got, want)
	}

	// Values sum to TotalSpent.
	var sum float64
	for _, ct := range got {
		sum += ct.Amount
	}
	if !approx(sum, TotalSpent(expenses)) {
		t.Errorf("ByCategory sum = %v, want %v", sum, TotalSpent(expenses))
	}
}

func TestFilterByDay(t *testing.T) {
	d1 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)
	d1Late := time.Date(2025, 6, 1, 23, 30, 0, 0, time.Local)
	d2 := time.Date(2025, 6, 2, 0, 15, 0, 0, time.Local)
	expenses := []model.Expense{
		exp("a", 1, model.CategoryFood, d1),
		exp("b", 2, model.CategoryFood, d2),
		exp("c", 3, model.CategoryFood, d1Late),
	}

	got := FilterByDay(expenses, d1)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("FilterByDay = %v, want a and c (time of day ignored)", got)
	}

	// Zero day means no filter: full input, same order.
	all := FilterByDay(expenses, time.Time{})
	if !reflect.DeepEqual(all, expenses) {
		t.Error("FilterByDay with zero day should return input unchanged")
	}
}

func TestSortedByDateDesc(t *testing.T) {
	t1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	expenses := []model.Expense{
		exp("old", 1, model.CategoryFood, t1),
		exp("tie-first", 2, model.CategoryFood, t2),
		exp("tie-second", 3, model.CategoryFood, t2),
	}

	got := SortedByDateDesc(expenses)
	if got[0].ID != "tie-first" || got[1].ID != "tie-second" || got[2].ID != "old" {
		t.Errorf("order = %v,%v,%v; ties must keep input order", got[0].ID, got[1].ID, got[2].ID)
	}

	// Input is untouched.
	if expenses[0].ID != "old" {
		t.Error("SortedByDateDesc mutated its input")
	}

	// Idempotent: sorting an already-sorted slice changes nothing.
	again := SortedByDateDesc(got)
	if !reflect.DeepEqual(again, got) {
		t.Error("SortedByDateDesc is not idempotent")
	}
}

func TestStatus(t *testing.T) {
	now := time.Now()
	expenses := []model.Expense{exp("lunch", 30, model.CategoryFood, now)}

	st := Status(expenses, limitOf(50))
	if !st.HasLimit || st.Limit != 50 || !approx(st.Remaining, 20) || st.OverBudget {
		t.Errorf("Status = %+v", st)
	}
	if !approx(st.PercentSpent, 60) {
		t.Errorf("PercentSpent = %v, want 60", st.PercentSpent)
	}

	unset := Status(expenses, nil)
	if unset.HasLimit {
		t.Error("Status without limit should report HasLimit=false")
	}
	if !approx(unset.TotalSpent, 30) {
		t.Errorf("TotalSpent = %v, want 30", unset.TotalSpent)
	}
}

func TestDailyTotals_FillsGaps(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	expenses := []model.Expense{
		exp("a", 10, model.CategoryFood, base),
		exp("b", 5, model.CategoryFood, base.AddDate(0, 0, 2)),
	}

	days := DailyTotals(expenses, base.AddDate(0, 0, -1), base.AddDate(0, 0, 2))
	if len(days) != 4 {
		t.Fatalf("len = %d, want 4 (gap days filled)", len(days))
	}
	// Most recent first.
	if !approx(days[0].Total, 5) || !approx(days[2].Total, 10) {
		t.Errorf("days = %+v", days)
	}
	if days[1].Total != 0 || days[1].Count != 0 {
		t.Errorf("gap day = %+v, want zeros", days[1])
	}
}

func TestFilterByCategory(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	expenses := []model.Expense{
		exp("a", 10, model.CategoryFood, base),
		exp("b", 5, model.CategoryTransport, base),
		exp("c", 3, model.CategoryFood, base),
	}

	got := FilterByCategory(expenses, model.CategoryFood)
	if len(got) != 2 || got[0].Description != "a" || got[1].Description != "c" {
		t.Errorf("FilterByCategory = %+v", got)
	}

	if got := FilterByCategory(expenses, ""); len(got) != 3 {
		t.Errorf("empty category should be a no-op filter, got %d", len(got))
	}

	if got := FilterByCategory(expenses, model.CategoryHealth); got != nil {
		t.Errorf("no matches should return nil, got %+v", got)
	}
}
