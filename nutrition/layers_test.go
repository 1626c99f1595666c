package nutrition

import "testing"

func TestBuildLayersEmptyWhenNothingConsumed(t *testing.T) {
	refs := []ReferenceValue{{Type: RefRecommended, Value: 100}}
	if layers := BuildLayers(0, refs, CategoryMacronutrient, DefaultVisualConfig); len(layers) != 0 {
		t.Errorf("expected no layers for consumed=0, got %d", len(layers))
	}
	if layers := BuildLayers(-5, refs, CategoryMacronutrient, DefaultVisualConfig); len(layers) != 0 {
		t.Errorf("expected no layers for consumed<0, got %d", len(layers))
	}
}

func TestBuildLayersPrimaryLayer(t *testing.T) {
	refs := []ReferenceValue{{Type: RefRecommended, Value: 100}}
	vc := VisualConfig{MaxBarWidth: 300, IndicatorSize: 12}

	layers := BuildLayers(50, refs, CategoryMacronutrient, vc)
	if len(layers) != 1 {
		t.Fatalf("expected 1 layer, got %d", len(layers))
	}
	l := layers[0]
	if l.Percentage != 50 {
		t.Errorf("percentage = %v, want 50", l.Percentage)
	}
	if l.Width != 150 {
		t.Errorf("width = %v, want 150", l.Width)
	}
	if l.Height != 4 || l.BorderRadius != 10 {
		t.Errorf("presentation constants = (%v, %v), want (4, 10)", l.Height, l.BorderRadius)
	}
}

func TestBuildLayersClampsPercentageAt200(t *testing.T) {
	refs := []ReferenceValue{{Type: RefRecommended, Value: 100}}
	layers := BuildLayers(1000, refs, CategoryMacronutrient, DefaultVisualConfig)
	if layers[0].Percentage != 200 {
		t.Errorf("percentage = %v, want 200 (clamped)", layers[0].Percentage)
	}
	if layers[0].Width != DefaultVisualConfig.MaxBarWidth {
		t.Errorf("width = %v, want %v (bar stops at the display edge)", layers[0].Width, DefaultVisualConfig.MaxBarWidth)
	}
}

func TestBuildLayersWidthMonotonic(t *testing.T) {
	refs := []ReferenceValue{{Type: RefRecommended, Value: 100}}
	prev := -1.0
	for _, consumed := range []float64{10, 40, 90, 100, 150, 250, 400} {
		w := BuildLayers(consumed, refs, CategoryMacronutrient, DefaultVisualConfig)[0].Width
		if w < prev {
			t.Fatalf("width decreased from %v to %v at consumed=%v", prev, w, consumed)
		}
		prev = w
	}
}

func TestBuildLayersBasisFallsBackToLargestReference(t *testing.T) {
	// No recommended reference: the largest available value is the basis.
	refs := []ReferenceValue{
		{Type: RefMinimum, Value: 50},
		{Type: RefMaximum, Value: 200},
	}
	layers := BuildLayers(100, refs, CategoryMacronutrient, DefaultVisualConfig)
	if layers[0].Percentage != 50 {
		t.Errorf("percentage = %v, want 50 (basis 200)", layers[0].Percentage)
	}
}

func TestBuildLayersHarmfulBasisIsLargestReference(t *testing.T) {
	// Harmful substances scale to the largest reference even when a
	// recommended entry exists.
	refs := []ReferenceValue{
		{Type: RefRecommended, Value: 1500},
		{Type: RefUpperLimit, Value: 2300},
	}
	layers := BuildLayers(3200, refs, CategoryHarmful, DefaultVisualConfig)
	if layers[0].Percentage != 139.1 {
		t.Errorf("percentage = %v, want 139.1 (3200/2300)", layers[0].Percentage)
	}
}

func TestPositionReferencesHarmful(t *testing.T) {
	refs := []ReferenceValue{
		{Type: RefRecommended, Value: 1500, Label: "AI"},
		{Type: RefUpperLimit, Value: 2300, Label: "UL"},
	}
	positioned := PositionReferences(refs, CategoryHarmful)
	if positioned[0].Position != 65.2 {
		t.Errorf("AI position = %v, want 65.2", positioned[0].Position)
	}
	if positioned[1].Position != 100 {
		t.Errorf("UL position = %v, want 100", positioned[1].Position)
	}
}

func TestPositionReferencesClampedAt100(t *testing.T) {
	// Recommended is the basis for a beneficial substance; a larger upper
	// limit still renders at the scale's edge instead of overflowing.
	refs := []ReferenceValue{
		{Type: RefRecommended, Value: 100},
		{Type: RefUpperLimit, Value: 250},
	}
	positioned := PositionReferences(refs, CategoryMicronutrient)
	if positioned[0].Position != 100 {
		t.Errorf("recommended position = %v, want 100", positioned[0].Position)
	}
	if positioned[1].Position != 100 {
		t.Errorf("upper limit position = %v, want 100 (clamped)", positioned[1].Position)
	}
}

func TestPositionReferencesDoesNotMutateInput(t *testing.T) {
	refs := []ReferenceValue{{Type: RefRecommended, Value: 100}}
	_ = PositionReferences(refs, CategoryMacronutrient)
	if refs[0].Position != 0 {
		t.Error("input slice was mutated")
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		value float64
		unit  string
		want  string
	}{
		{12.34, "g", "12.3 g"},
		{1, "g", "1.0 g"},
		{0.4, "g", "400 mg"},
		{3200, "mg", "3.2 g"},
		{850, "mg", "850 mg"},
		{1500, "mcg", "1.5 mg"},
		{400, "mcg", "400 mcg"},
		{2150.6, "kcal", "2151 kcal"},
		{2.5, "glasses", "2.5 glasses"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.value, tc.unit); got != tc.want {
			t.Errorf("FormatAmount(%v, %q) = %q, want %q", tc.value, tc.unit, got, tc.want)
		}
	}
}
