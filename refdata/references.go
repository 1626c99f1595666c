// Package refdata holds the static reference-intake and educational-content
// tables. Both implement the nutrition engine's collaborator interfaces and
// are passed in explicitly, never reached for as globals.
package refdata

import "backend/nutrition"

// Table resolves demographic reference values from the built-in intake table
// (values follow the DGA 2020-2025 ranges).
type Table struct{}

func NewTable() *Table { return &Table{} }

// References returns the rows applying to the substance for the given age
// group and gender, in table order, so output is deterministic for a fixed
// input. Rows scoped "all" match every age group or gender.
func (t *Table) References(substance, ageGroup, gender string) []nutrition.ReferenceValue {
	var out []nutrition.ReferenceValue
	for _, r := range intakeRows {
		if r.substance != substance {
			continue
		}
		if r.ageGroup != "all" && r.ageGroup != ageGroup {
			continue
		}
		if r.gender != "all" && r.gender != gender {
			continue
		}
		out = append(out, nutrition.ReferenceValue{
			Type:     r.typ,
			Value:    r.value,
			Unit:     r.unit,
			Label:    r.label,
			Color:    r.color,
			Category: r.category,
		})
	}
	return out
}

type intakeRow struct {
	substance string
	ageGroup  string // "all" | "19-30" | "31-50" | "51-70" | "71+"
	gender    string // "all" | "male" | "female"
	typ       nutrition.RefType
	value     float64
	unit      string
	label     string
	color     string
	category  nutrition.Category
}

// intakeRows is ordered by substance, then threshold severity. Values are
// daily amounts for adults; the engine scales them x7 for weekly views.
var intakeRows = []intakeRow{
	// --- Calories ---
	{"Calories", "19-30", "male", nutrition.RefRecommended, 2600, "kcal", "RDA", "blue", nutrition.CategoryCalorie},
	{"Calories", "19-30", "female", nutrition.RefRecommended, 2000, "kcal", "RDA", "blue", nutrition.CategoryCalorie},
	{"Calories", "31-50", "male", nutrition.RefRecommended, 2400, "kcal", "RDA", "blue", nutrition.CategoryCalorie},
	{"Calories", "31-50", "female", nutrition.RefRecommended, 1800, "kcal", "RDA", "blue", nutrition.CategoryCalorie},
	{"Calories", "51-70", "male", nutrition.RefRecommended, 2200, "kcal", "RDA", "blue", nutrition.CategoryCalorie},
	{"Calories", "51-70", "female", nutrition.RefRecommended, 1800, "kcal", "RDA", "blue", nutrition.CategoryCalorie},
	{"Calories", "71+", "male", nutrition.RefRecommended, 2000, "kcal", "RDA", "blue", nutrition.CategoryCalorie},
	{"Calories", "71+", "female", nutrition.RefRecommended, 1600, "kcal", "RDA", "blue", nutrition.CategoryCalorie},

	// --- Macronutrients ---
	{"Protein", "all", "male", nutrition.RefRecommended, 56, "g", "RDA", "blue", nutrition.CategoryMacronutrient},
	{"Protein", "all", "female", nutrition.RefRecommended, 46, "g", "RDA", "blue", nutrition.CategoryMacronutrient},
	{"Carbohydrates", "all", "all", nutrition.RefMinimum, 130, "g", "RDA", "green", nutrition.CategoryMacronutrient},
	{"Carbohydrates", "all", "all", nutrition.RefMaximum, 420, "g", "AMDR high", "orange", nutrition.CategoryMacronutrient},
	{"Fat", "all", "all", nutrition.RefMinimum, 44, "g", "AMDR low", "green", nutrition.CategoryMacronutrient},
	{"Fat", "all", "all", nutrition.RefMaximum, 78, "g", "AMDR high", "orange", nutrition.CategoryMacronutrient},
	{"Fiber", "all", "male", nutrition.RefRecommended, 38, "g", "AI", "blue", nutrition.CategoryMacronutrient},
	{"Fiber", "all", "female", nutrition.RefRecommended, 25, "g", "AI", "blue", nutrition.CategoryMacronutrient},
	{"Water", "all", "male", nutrition.RefRecommended, 3700, "g", "AI", "blue", nutrition.CategoryMacronutrient},
	{"Water", "all", "female", nutrition.RefRecommended, 2700, "g", "AI", "blue", nutrition.CategoryMacronutrient},

	// --- Micronutrients ---
	{"Vitamin A", "all", "male", nutrition.RefRecommended, 900, "mcg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Vitamin A", "all", "female", nutrition.RefRecommended, 700, "mcg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Vitamin A", "all", "all", nutrition.RefUpperLimit, 3000, "mcg", "UL", "red", nutrition.CategoryMicronutrient},
	{"Vitamin B12", "all", "all", nutrition.RefRecommended, 2.4, "mcg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Vitamin C", "all", "male", nutrition.RefRecommended, 90, "mg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Vitamin C", "all", "female", nutrition.RefRecommended, 75, "mg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Vitamin C", "all", "all", nutrition.RefUpperLimit, 2000, "mg", "UL", "red", nutrition.CategoryMicronutrient},
	{"Vitamin D", "all", "all", nutrition.RefRecommended, 15, "mcg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Vitamin D", "all", "all", nutrition.RefUpperLimit, 100, "mcg", "UL", "red", nutrition.CategoryMicronutrient},
	{"Calcium", "19-30", "all", nutrition.RefRecommended, 1000, "mg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Calcium", "31-50", "all", nutrition.RefRecommended, 1000, "mg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Calcium", "51-70", "male", nutrition.RefRecommended, 1000, "mg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Calcium", "51-70", "female", nutrition.RefRecommended, 1200, "mg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Calcium", "71+", "all", nutrition.RefRecommended, 1200, "mg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Calcium", "all", "all", nutrition.RefUpperLimit, 2500, "mg", "UL", "red", nutrition.CategoryMicronutrient},
	{"Iron", "19-30", "male", nutrition.RefRecommended, 8, "mg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Iron", "19-30", "female", nutrition.RefRecommended, 18, "mg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Iron", "31-50", "male", nutrition.RefRecommended, 8, "mg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Iron", "31-50", "female", nutrition.RefRecommended, 18, "mg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Iron", "51-70", "all", nutrition.RefRecommended, 8, "mg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Iron", "71+", "all", nutrition.RefRecommended, 8, "mg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Iron", "all", "all", nutrition.RefUpperLimit, 45, "mg", "UL", "red", nutrition.CategoryMicronutrient},
	{"Magnesium", "all", "male", nutrition.RefRecommended, 420, "mg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Magnesium", "all", "female", nutrition.RefRecommended, 320, "mg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Potassium", "all", "male", nutrition.RefRecommended, 3400, "mg", "AI", "blue", nutrition.CategoryMicronutrient},
	{"Potassium", "all", "female", nutrition.RefRecommended, 2600, "mg", "AI", "blue", nutrition.CategoryMicronutrient},
	{"Zinc", "all", "male", nutrition.RefRecommended, 11, "mg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Zinc", "all", "female", nutrition.RefRecommended, 8, "mg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Zinc", "all", "all", nutrition.RefUpperLimit, 40, "mg", "UL", "red", nutrition.CategoryMicronutrient},
	{"Folate", "all", "all", nutrition.RefRecommended, 400, "mcg", "RDA", "blue", nutrition.CategoryMicronutrient},
	{"Folate", "all", "all", nutrition.RefUpperLimit, 1000, "mcg", "UL", "red", nutrition.CategoryMicronutrient},

	// --- Harmful substances (less is always at least as good) ---
	{"Sodium", "all", "all", nutrition.RefRecommended, 1500, "mg", "AI", "blue", nutrition.CategoryHarmful},
	{"Sodium", "all", "all", nutrition.RefUpperLimit, 2300, "mg", "UL", "red", nutrition.CategoryHarmful},
	{"Added Sugar", "all", "all", nutrition.RefRecommended, 50, "g", "DGA limit", "blue", nutrition.CategoryHarmful},
	{"Saturated Fat", "all", "all", nutrition.RefRecommended, 22, "g", "DGA limit", "blue", nutrition.CategoryHarmful},
	{"Trans Fat", "all", "all", nutrition.RefUpperLimit, 2, "g", "UL", "red", nutrition.CategoryHarmful},
	{"Cholesterol", "all", "all", nutrition.RefRecommended, 300, "mg", "DGA limit", "blue", nutrition.CategoryHarmful},
	{"Caffeine", "all", "all", nutrition.RefUpperLimit, 400, "mg", "UL", "red", nutrition.CategoryHarmful},
}
