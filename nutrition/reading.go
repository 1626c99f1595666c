package nutrition

import (
	"fmt"
	"math"
)

// Reading is one substance observed in one analyzed food, as reported by the
// food-analysis collaborator.
type Reading struct {
	Name     string  `json:"name"`
	Category string  `json:"category"` // "good" | "bad" | "neutral"
	Amount   float64 `json:"amount"`
	MealType string  `json:"meal_type"`
}

// Totals maps substance name to the summed amount over a day (or set of days).
type Totals map[string]float64

// Aggregate sums reading amounts per substance name. Names match exactly
// (case-sensitive); non-positive amounts still contribute, since filtering of
// unusable substances happens later when references are resolved.
//
// A reading with an empty name or a non-finite amount is a contract violation
// and fails the whole call: coercing it would silently skew every comparison
// downstream.
func Aggregate(readings []Reading) (Totals, error) {
	totals := make(Totals, len(readings))
	for i, r := range readings {
		if r.Name == "" {
			return nil, fmt.Errorf("reading %d: substance name is empty", i)
		}
		if math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) {
			return nil, fmt.Errorf("reading %d (%s): amount is not a finite number", i, r.Name)
		}
		totals[r.Name] += r.Amount
	}
	return totals, nil
}
