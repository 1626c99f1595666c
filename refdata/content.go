package refdata

import "backend/nutrition"

// Content serves the static educational-text table. Lookup returns nil for
// unknown substances; the engine substitutes its generic fallback.
type Content struct{}

func NewContent() *Content { return &Content{} }

func (c *Content) Lookup(substance string) *nutrition.ContentEntry {
	if e, ok := contentEntries[substance]; ok {
		// copy so callers can't mutate the table
		out := e
		return &out
	}
	return nil
}

var contentEntries = map[string]nutrition.ContentEntry{
	"Calories": {
		Title:   "Calories",
		Summary: "Energy from food. Needs vary with age, sex, and activity; a steady surplus or deficit shifts weight over time.",
		Tips:    []string{"Spread intake across meals", "Prefer nutrient-dense foods over empty calories"},
	},
	"Protein": {
		Title:   "Protein",
		Summary: "Builds and repairs tissue and supports immune function. Most adults need around 0.8 g per kg of body weight daily.",
		Tips:    []string{"Include a protein source in every meal", "Vary between animal and plant sources"},
	},
	"Carbohydrates": {
		Title:   "Carbohydrates",
		Summary: "The body's main fuel. Whole grains, fruits, and legumes digest slowly and carry fiber along.",
		Tips:    []string{"Choose whole grains over refined", "Pair carbs with protein to slow absorption"},
	},
	"Fat": {
		Title:   "Fat",
		Summary: "Needed for hormones and vitamin absorption. Unsaturated fats from plants and fish are the ones to favor.",
		Tips:    []string{"Cook with plant oils instead of butter", "Eat fatty fish twice a week"},
	},
	"Fiber": {
		Title:   "Fiber",
		Summary: "Feeds the gut microbiome, steadies blood sugar, and lowers cholesterol. Most people get well under the recommended amount.",
		Tips:    []string{"Leave skins on fruit and vegetables", "Swap in beans or lentils a few times a week"},
	},
	"Sodium": {
		Title:   "Sodium",
		Summary: "An electrolyte most people overconsume, mainly from processed and restaurant food. High intake raises blood pressure.",
		Tips:    []string{"Check labels; 'low sodium' means under 140 mg per serving", "Season with herbs and acid instead of salt"},
	},
	"Added Sugar": {
		Title:   "Added Sugar",
		Summary: "Sugar added in processing or preparation, distinct from the sugars naturally present in fruit and milk. Keep under 10% of daily calories.",
		Tips:    []string{"Sweetened drinks are the largest single source", "Read labels for syrups and words ending in -ose"},
	},
	"Saturated Fat": {
		Title:   "Saturated Fat",
		Summary: "Mostly from fatty meats, butter, and full-fat dairy. Replacing it with unsaturated fat lowers cardiovascular risk.",
	},
	"Trans Fat": {
		Title:   "Trans Fat",
		Summary: "Industrially hardened fat with no safe intake level. Largely banned, but still appears in some shelf-stable baked goods.",
	},
	"Cholesterol": {
		Title:   "Cholesterol",
		Summary: "Dietary cholesterol matters less than saturated fat for blood levels, but keeping intake moderate is still advised.",
	},
	"Vitamin C": {
		Title:   "Vitamin C",
		Summary: "An antioxidant needed for collagen and iron absorption. Citrus, peppers, and berries are rich sources.",
	},
	"Vitamin D": {
		Title:   "Vitamin D",
		Summary: "Made in skin from sunlight and scarce in food. Deficiency is common at higher latitudes and in winter.",
	},
	"Calcium": {
		Title:   "Calcium",
		Summary: "Builds bone early in life and maintains it later. Dairy, fortified alternatives, and leafy greens all contribute.",
	},
	"Iron": {
		Title:   "Iron",
		Summary: "Carries oxygen in blood. Needs are higher for menstruating adults; plant iron absorbs better alongside vitamin C.",
	},
	"Potassium": {
		Title:   "Potassium",
		Summary: "Counterbalances sodium and supports healthy blood pressure. Fruits, vegetables, and legumes are the main sources.",
	},
	"Caffeine": {
		Title:   "Caffeine",
		Summary: "A stimulant safe for most adults up to about 400 mg per day, roughly four cups of brewed coffee.",
	},
}
