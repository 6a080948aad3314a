package model

import "testing"

func TestLookupCategory(t *testing.T) {
	e, ok := LookupCategory(CategoryFood)
	if !ok {
		t.Fatal("food should be registered")
	}
	if e.Label != "Food" {
		t.Errorf("Label = %q, want Food", e.Label)
	}

	if _, ok := LookupCategory("groceries"); ok {
		t.Error("unregistered value should not be found")
	}
}

func TestCategoryLabel_FallsBackToRawValue(t *testing.T) {
	if got := Category("subscriptions").Label(); got != "subscriptions" {
		t.Errorf("Label() = %q, want raw value fallback", got)
	}
	if got := CategoryHealth.Label(); got != "Health" {
		t.Errorf("Label() = %q, want Health", got)
	}
}

func TestCategories_OrderStable(t *testing.T) {
	cats := Categories()
	if len(cats) != 7 {
		t.Fatalf("len = %d, want 7", len(cats))
	}
	if cats[0].Value != CategoryFood || cats[len(cats)-1].Value != CategoryOther {
		t.Error("registry order changed; selection menus depend on it")
	}

	// Returned slice is a copy; mutating it must not corrupt the registry.
	cats[0].Label = "mutated"
	if CategoryFood.Label() != "Food" {
		t.Error("Categories() leaked the internal registry")
	}
}
