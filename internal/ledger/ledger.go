// Package ledger computes derived spending figures from the expense log.
//
// Everything here is a pure function over an expense slice and an optional
// budget limit; results are recomputed on every call and never cached.
package ledger

import (
	"sort"
	"time"

	"budgetwise/internal/model"
)

// TotalSpent sums the amounts of all expenses, 0 for an empty log.
func TotalSpent(expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// Remaining returns limit minus total. ok is false when no limit is
// configured, which callers must treat differently from an exact zero
// remainder.
func Remaining(limit *float64, total float64) (remaining float64, ok bool) {
	if limit == nil {
		return 0, false
	}
	return *limit - total, true
}

// IsOverBudget reports whether remaining is negative. Only meaningful when
// a limit is configured.
func IsOverBudget(remaining float64) bool {
	return remaining < 0
}

// PercentSpent returns total as a percentage of limit, 0 when no positive
// limit is configured. The value is not clamped; anything over 100 means
// the budget is blown. Displays with a bounded gauge go through
// ClampPercent instead.
func PercentSpent(limit *float64, total float64) float64 {
	if limit == nil || *limit <= 0 {
		return 0
	}
	return total / *limit * 100
}

// ClampPercent bounds a raw percentage to [0, 100] for progress displays.
func ClampPercent(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// CategoryTotal is the summed spend for one category.
type CategoryTotal struct {
	Category model.Category
	Amount   float64
}

// ByCategory sums amounts per category. Categories appear in
// first-occurrence order of the input; categories with no expenses are
// absent rather than present with zero.
func ByCategory(expenses []model.Expense) []CategoryTotal {
	idx := make(map[model.Category]int)
	var totals []CategoryTotal
	for _, e := range expenses {
		i, ok := idx[e.Category]
		if !ok {
			i = len(totals)
			idx[e.Category] = i
			totals = append(totals, CategoryTotal{Category: e.Category})
		}
		totals[i].Amount += e.Amount
	}
	return totals
}

// FilterByDay returns the expenses dated on day, compared at calendar-day
// granularity in local time. A zero day means no filter: the full input is
// returned unchanged.
func FilterByDay(expenses []model.Expense, day time.Time) []model.Expense {
	if day.IsZero() {
		return expenses
	}

	want := day.Local().Format("2006-01-02")
	var out []model.Expense
	for _, e := range expenses {
		if e.Date.Local().Format("2006-01-02") == want {
			out = append(out, e)
		}
	}
	return out
}

// FilterByCategory returns the expenses in the given category. An empty
// category means no filter: the full input is returned unchanged.
func FilterByCategory(expenses []model.Expense, category model.Category) []model.Expense {
	if category == "" {
		return expenses
	}

	var out []model.Expense
	for _, e := range expenses {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// SortedByDateDesc returns a copy ordered most recent first. The sort is
// stable: expenses with identical timestamps keep their input order.
func SortedByDateDesc(expenses []model.Expense) []model.Expense {
	out := make([]model.Expense, len(expenses))
	copy(out, expenses)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// Status bundles the derived budget figures for display.
func Status(expenses []model.Expense, limit *float64) model.BudgetStatus {
	total := TotalSpent(expenses)
	st := model.BudgetStatus{
		TotalSpent:   total,
		PercentSpent: PercentSpent(limit, total),
	}
	if rem, ok := Remaining(limit, total); ok {
		st.HasLimit = true
		st.Limit = *limit
		st.Remaining = rem
		st.OverBudget = IsOverBudget(rem)
	}
	return st
}

// DayTotal holds the spend for a single calendar day.
type DayTotal struct {
	Date  time.Time
	Total float64
	Count int
}

// DailyTotals computes per-day spend for the window [since, until], most
// recent day first. Days with no expenses are filled in as zeros so charts
// show gaps.
func DailyTotals(expenses []model.Expense, since, until time.Time) []DayTotal {
	dayMap := make(map[string]*DayTotal)

	for _, e := range expenses {
		d := e.Date.Local()
		if d.Before(since) || d.After(until) {
			continue
		}
		key := d.Format("2006-01-02")
		dt, ok := dayMap[key]
		if !ok {
			t, _ := time.ParseInLocation("2006-01-02", key, time.Local)
			dt = &DayTotal{Date: t}
			dayMap[key] = dt
		}
		dt.Total += e.Amount
		dt.Count++
	}

	day := since.Local().Truncate(24 * time.Hour)
	end := until.Local().Truncate(24 * time.Hour)
	for !day.After(end) {
		key := day.Format("2006-01-02")
		if _, ok := dayMap[key]; !ok {
			dayMap[key] = &DayTotal{Date: day}
		}
		day = day.AddDate(0, 0, 1)
	}

	days := make([]DayTotal, 0, len(dayMap))
	for _, dt := range dayMap {
		days = append(days, *dt)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.After(days[j].Date)
	})

	return days
}
