// Package model defines domain types for budgetwise expenses and budgets.
package model

// Category classifies an expense into one of the fixed spending groups.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryUtilities     Category = "utilities"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryHealth        Category = "health"
	CategoryOther         Category = "other"
)

// CategoryEntry holds the display metadata for one category.
type CategoryEntry struct {
	Value Category
	Label string
	Icon  string
}

// registry is the fixed category set, in selection-menu order.
var registry = []CategoryEntry{
	{CategoryFood, "Food", "🍜"},
	{CategoryTransport, "Transport", "🚗"},
	{CategoryUtilities, "Utilities", "💡"},
	{CategoryEntertainment, "Entertainment", "🎭"},
	{CategoryShopping, "Shopping", "🛍"},
	{CategoryHealth, "Health", "💊"},
	{CategoryOther, "Other", "•"},
}

// Categories returns the full ordered registry.
func Categories() []CategoryEntry {
	out := make([]CategoryEntry, len(registry))
	copy(out, registry)
	return out
}

// LookupCategory returns the registry entry for value.
// Absent lookups are expected, not an error.
func LookupCategory(value Category) (CategoryEntry, bool) {
	for _, e := range registry {
		if e.Value == value {
			return e, true
		}
	}
	return CategoryEntry{}, false
}

// Valid reports whether c is a registered category.
func (c Category) Valid() bool {
	_, ok := LookupCategory(c)
	return ok
}

// Label returns the display label for c. Unknown values fall back to the
// raw identifier so old persisted data still renders after a registry change.
func (c Category) Label() string {
	if e, ok := LookupCategory(c); ok {
		return e.Label
	}
	return string(c)
}

// Icon returns the display icon for c, empty for unknown values.
func (c Category) Icon() string {
	if e, ok := LookupCategory(c); ok {
		return e.Icon
	}
	return ""
}
