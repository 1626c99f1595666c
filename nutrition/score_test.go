package nutrition

import (
	"reflect"
	"testing"
)

func record(substance string, category Category, status Status) ComparisonRecord {
	return ComparisonRecord{Substance: substance, Category: category, Status: status}
}

func TestScoreBreakdownAndOverall(t *testing.T) {
	records := []ComparisonRecord{
		record("Protein", CategoryMacronutrient, StatusOptimal),
		record("Sodium", CategoryHarmful, StatusExcess),
	}

	s := Score(records)
	if s.Breakdown.Macronutrients != 100 {
		t.Errorf("macronutrients = %v, want 100", s.Breakdown.Macronutrients)
	}
	if s.Breakdown.HarmfulSubstances != 20 {
		t.Errorf("harmful = %v, want 20", s.Breakdown.HarmfulSubstances)
	}
	// micronutrients absent: 0 in the breakdown but excluded from the mean
	if s.Breakdown.Micronutrients != 0 {
		t.Errorf("micronutrients = %v, want 0", s.Breakdown.Micronutrients)
	}
	if s.Overall != 60 {
		t.Errorf("overall = %v, want 60", s.Overall)
	}
}

func TestScorePerRecordValues(t *testing.T) {
	cases := []struct {
		status   Status
		category Category
		want     float64
	}{
		{StatusOptimal, CategoryMicronutrient, 100},
		{StatusAcceptable, CategoryMicronutrient, 80},
		{StatusDeficient, CategoryMicronutrient, 40},
		{StatusExcess, CategoryHarmful, 20},
		{StatusExcess, CategoryMacronutrient, 60},
	}
	for _, tc := range cases {
		if got := recordScore(record("X", tc.category, tc.status)); got != tc.want {
			t.Errorf("score(%s, %s) = %v, want %v", tc.status, tc.category, got, tc.want)
		}
	}
}

func TestScoreCaloriesCountAsMacronutrients(t *testing.T) {
	records := []ComparisonRecord{
		record("Calories", CategoryCalorie, StatusOptimal),
		record("Protein", CategoryMacronutrient, StatusDeficient),
	}
	s := Score(records)
	if s.Breakdown.Macronutrients != 70 {
		t.Errorf("macronutrients = %v, want 70 (mean of 100 and 40)", s.Breakdown.Macronutrients)
	}
	if s.Overall != 70 {
		t.Errorf("overall = %v, want 70", s.Overall)
	}
}

func TestScoreEmptyRecordSet(t *testing.T) {
	s := Score(nil)
	if s.Overall != 0 {
		t.Errorf("overall = %v, want 0", s.Overall)
	}
	if len(s.Recommendations) != 0 {
		t.Errorf("recommendations = %v, want none", s.Recommendations)
	}
}

func TestScoreRecommendations(t *testing.T) {
	records := []ComparisonRecord{
		record("Calories", CategoryCalorie, StatusOptimal),
		record("Fiber", CategoryMacronutrient, StatusDeficient),
		record("Protein", CategoryMacronutrient, StatusDeficient),
		record("Iron", CategoryMicronutrient, StatusDeficient),
		record("Vitamin D", CategoryMicronutrient, StatusDeficient),
		record("Added Sugar", CategoryHarmful, StatusExcess),
		record("Sodium", CategoryHarmful, StatusExcess),
	}

	s := Score(records)
	// first five actionable records in record-sort order; no severity re-ranking
	want := []string{
		"Increase Fiber",
		"Increase Protein",
		"Increase Iron",
		"Increase Vitamin D",
		"Reduce Added Sugar",
	}
	if !reflect.DeepEqual(s.Recommendations, want) {
		t.Errorf("recommendations = %v, want %v", s.Recommendations, want)
	}
}
