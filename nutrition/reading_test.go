package nutrition

import (
	"math"
	"testing"
)

func TestAggregateSumsByExactName(t *testing.T) {
	readings := []Reading{
		{Name: "Sodium", Category: "bad", Amount: 1200, MealType: "breakfast"},
		{Name: "Sodium", Category: "bad", Amount: 800, MealType: "lunch"},
		{Name: "sodium", Category: "bad", Amount: 50, MealType: "lunch"}, // different key, no normalization
		{Name: "Protein", Category: "good", Amount: 30, MealType: "dinner"},
	}

	totals, err := Aggregate(readings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals["Sodium"] != 2000 {
		t.Errorf("Sodium = %v, want 2000", totals["Sodium"])
	}
	if totals["sodium"] != 50 {
		t.Errorf("sodium = %v, want 50 (names are case-sensitive)", totals["sodium"])
	}
	if totals["Protein"] != 30 {
		t.Errorf("Protein = %v, want 30", totals["Protein"])
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	a := []Reading{
		{Name: "Iron", Amount: 4},
		{Name: "Sugar", Amount: 12},
		{Name: "Iron", Amount: 6},
	}
	b := []Reading{a[2], a[0], a[1]}

	ta, err := Aggregate(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tb, err := Aggregate(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for name, v := range ta {
		if tb[name] != v {
			t.Errorf("%s: %v vs %v after reorder", name, v, tb[name])
		}
	}
}

func TestAggregateKeepsNonPositiveAmounts(t *testing.T) {
	totals, err := Aggregate([]Reading{
		{Name: "Fiber", Amount: 0},
		{Name: "Fiber", Amount: -2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals["Fiber"] != -2 {
		t.Errorf("Fiber = %v, want -2 (no filtering at aggregation)", totals["Fiber"])
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	totals, err := Aggregate(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(totals) != 0 {
		t.Errorf("expected empty totals, got %v", totals)
	}
}

func TestAggregateRejectsMalformedReadings(t *testing.T) {
	cases := []struct {
		name    string
		reading Reading
	}{
		{"empty name", Reading{Name: "", Amount: 10}},
		{"NaN amount", Reading{Name: "Sodium", Amount: math.NaN()}},
		{"Inf amount", Reading{Name: "Sodium", Amount: math.Inf(1)}},
	}
	for _, tc := range cases {
		if _, err := Aggregate([]Reading{tc.reading}); err == nil {
			t.Errorf("%s: expected error, got none", tc.name)
		}
	}
}
