package nutrition

import (
	"reflect"
	"testing"
)

type stubRefs map[string][]ReferenceValue

func (s stubRefs) References(substance, ageGroup, gender string) []ReferenceValue {
	return s[substance]
}

type stubContent map[string]ContentEntry

func (s stubContent) Lookup(substance string) *ContentEntry {
	if e, ok := s[substance]; ok {
		return &e
	}
	return nil
}

func sodiumRefs() []ReferenceValue {
	return []ReferenceValue{
		{Type: RefRecommended, Value: 1500, Unit: "mg", Label: "AI", Color: "blue", Category: CategoryHarmful},
		{Type: RefUpperLimit, Value: 2300, Unit: "mg", Label: "UL", Category: CategoryHarmful},
	}
}

func TestBuildRecordsSodiumRoundTrip(t *testing.T) {
	engine := NewEngine(stubRefs{"Sodium": sodiumRefs()}, nil)

	totals, err := Aggregate([]Reading{{Name: "Sodium", Category: "bad", Amount: 3200}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records := engine.BuildRecords(totals, "19-30", "male")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	r := records[0]
	if r.Status != StatusExcess {
		t.Errorf("status = %s, want excess", r.Status)
	}
	if r.Display != "3.2 g" {
		t.Errorf("display = %q, want %q", r.Display, "3.2 g")
	}
	if len(r.Layers) != 1 {
		t.Fatalf("expected 1 layer, got %d", len(r.Layers))
	}
	if r.Layers[0].Percentage != 139.1 {
		t.Errorf("layer percentage = %v, want 139.1", r.Layers[0].Percentage)
	}
	if r.References[0].Position != 65.2 || r.References[1].Position != 100 {
		t.Errorf("positions = (%v, %v), want (65.2, 100)",
			r.References[0].Position, r.References[1].Position)
	}
}

func TestBuildRecordsSkipsSubstancesWithoutReferences(t *testing.T) {
	engine := NewEngine(stubRefs{"Sodium": sodiumRefs()}, nil)

	records := engine.BuildRecords(Totals{"Sodium": 100, "Unobtainium": 42}, "19-30", "male")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Substance != "Sodium" {
		t.Errorf("kept %q, want Sodium", records[0].Substance)
	}
	for _, r := range records {
		if len(r.References) == 0 {
			t.Errorf("%s: record emitted with empty references", r.Substance)
		}
	}
}

func TestBuildRecordsNoLayersWhenNothingConsumed(t *testing.T) {
	engine := NewEngine(stubRefs{"Sodium": sodiumRefs()}, nil)
	records := engine.BuildRecords(Totals{"Sodium": 0}, "19-30", "male")
	if len(records[0].Layers) != 0 {
		t.Errorf("expected no layers for consumed=0, got %d", len(records[0].Layers))
	}
}

func TestBuildRecordsSortOrder(t *testing.T) {
	refs := stubRefs{
		"Sodium":    sodiumRefs(),
		"Protein":   {{Type: RefRecommended, Value: 56, Unit: "g", Category: CategoryMacronutrient}},
		"Calories":  {{Type: RefRecommended, Value: 2400, Unit: "kcal", Category: CategoryCalorie}},
		"Iron":      {{Type: RefRecommended, Value: 8, Unit: "mg", Category: CategoryMicronutrient}},
		"Carbs":     {{Type: RefRecommended, Value: 300, Unit: "g", Category: CategoryMacronutrient}},
		"Vitamin C": {{Type: RefRecommended, Value: 90, Unit: "mg", Category: CategoryMicronutrient}},
	}
	engine := NewEngine(refs, nil)

	records := engine.BuildRecords(Totals{
		"Sodium": 1, "Protein": 1, "Calories": 1, "Iron": 1, "Carbs": 1, "Vitamin C": 1,
	}, "19-30", "male")

	var got []string
	for _, r := range records {
		got = append(got, r.Substance)
	}
	want := []string{"Calories", "Carbs", "Protein", "Iron", "Vitamin C", "Sodium"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestBuildRecordsContentFallback(t *testing.T) {
	content := stubContent{
		"Sodium": {Title: "Sodium", Summary: "An electrolyte most people overconsume."},
	}
	refs := stubRefs{
		"Sodium":  sodiumRefs(),
		"Protein": {{Type: RefRecommended, Value: 56, Unit: "g", Category: CategoryMacronutrient}},
	}
	engine := NewEngine(refs, content)

	records := engine.BuildRecords(Totals{"Sodium": 100, "Protein": 50}, "19-30", "male")

	for _, r := range records {
		switch r.Substance {
		case "Sodium":
			if r.Content.Summary != "An electrolyte most people overconsume." {
				t.Errorf("Sodium content = %q", r.Content.Summary)
			}
		case "Protein":
			// unknown to the content source: generic fallback, never empty
			if r.Content.Title != "Protein" || r.Content.Summary == "" {
				t.Errorf("Protein fallback content = %+v", r.Content)
			}
		}
	}
}

func TestBuildRecordsDeterministic(t *testing.T) {
	engine := NewEngine(stubRefs{"Sodium": sodiumRefs()}, nil)
	totals := Totals{"Sodium": 1800}

	a := engine.BuildRecords(totals, "19-30", "female")
	b := engine.BuildRecords(totals, "19-30", "female")
	if !reflect.DeepEqual(a, b) {
		t.Error("two builds over the same input differ")
	}
}
