package nutrition

// RefType identifies which threshold a reference value represents.
type RefType string

const (
	RefRecommended RefType = "recommended"
	RefMinimum     RefType = "minimum"
	RefMaximum     RefType = "maximum"
	RefUpperLimit  RefType = "upper_limit"
)

// Category governs which classification branch applies to a substance.
type Category string

const (
	CategoryCalorie       Category = "calorie"
	CategoryMacronutrient Category = "macronutrient"
	CategoryMicronutrient Category = "micronutrient"
	CategoryHarmful       Category = "harmful"
)

// Rank is the display sort order of a category. Unknown categories sort last.
func (c Category) Rank() int {
	switch c {
	case CategoryCalorie:
		return 1
	case CategoryMacronutrient:
		return 2
	case CategoryMicronutrient:
		return 3
	case CategoryHarmful:
		return 4
	default:
		return 5
	}
}

// ReferenceValue is a demographic-scoped threshold for a substance.
// Position is filled in by the layer calculator (0-100, percent of the
// display scale).
type ReferenceValue struct {
	Type     RefType  `json:"type"`
	Value    float64  `json:"value"`
	Unit     string   `json:"unit"`
	Label    string   `json:"label"`
	Color    string   `json:"color,omitempty"`
	Category Category `json:"category"`
	Position float64  `json:"position"`
}

// ReferenceSource resolves the reference values that apply to a substance for
// a demographic scope. Implementations must return a deterministic order for a
// fixed input, and an empty slice when no references exist; the record builder
// skips such substances entirely. Entries scoped to gender "all" apply
// regardless of the requested gender.
type ReferenceSource interface {
	References(substance, ageGroup, gender string) []ReferenceValue
}

// findRef returns the first reference of the given type.
func findRef(refs []ReferenceValue, t RefType) (ReferenceValue, bool) {
	for _, r := range refs {
		if r.Type == t {
			return r, true
		}
	}
	return ReferenceValue{}, false
}

// referenceBasis is the value every layer percentage and reference position is
// computed against. For beneficial substances it is the recommended value when
// present, else the largest available reference, so a substance with only
// minimum/maximum references still renders with all markers on-scale. Harmful
// substances always scale to the largest reference: their "recommended" entry
// is an advisory limit, not a target, and scaling to it would push the upper
// limit marker off-scale.
func referenceBasis(refs []ReferenceValue, category Category) float64 {
	if category != CategoryHarmful {
		if rec, ok := findRef(refs, RefRecommended); ok && rec.Value > 0 {
			return rec.Value
		}
	}
	var largest float64
	for _, r := range refs {
		if r.Value > largest {
			largest = r.Value
		}
	}
	return largest
}
