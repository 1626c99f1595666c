package nutrition

// ScoreBreakdown is the 0-100 score per category group. A group with no
// records scores 0 here but is excluded from the overall mean.
type ScoreBreakdown struct {
	Macronutrients    float64 `json:"macronutrients"`
	Micronutrients    float64 `json:"micronutrients"`
	HarmfulSubstances float64 `json:"harmful_substances"`
}

// NutritionScore is the scored summary of one record set. Recomputed fully on
// every call, never cached.
type NutritionScore struct {
	Overall         float64        `json:"overall"`
	Breakdown       ScoreBreakdown `json:"breakdown"`
	Recommendations []string       `json:"recommendations"`
}

const maxRecommendations = 5

// Score maps a record set to per-category scores, an overall score, and a
// short ranked list of recommendations. Recommendations follow record sort
// order with no severity re-ranking, truncated to five.
//
// Calorie records score into the macronutrient group: energy is a macro-level
// measure and the breakdown carries exactly three groups.
func Score(records []ComparisonRecord) NutritionScore {
	type group struct {
		sum float64
		n   int
	}
	var macro, micro, harmful group

	out := NutritionScore{Recommendations: []string{}}
	for _, r := range records {
		s := recordScore(r)
		switch r.Category {
		case CategoryMicronutrient:
			micro.sum += s
			micro.n++
		case CategoryHarmful:
			harmful.sum += s
			harmful.n++
		default: // calorie, macronutrient
			macro.sum += s
			macro.n++
		}

		if len(out.Recommendations) < maxRecommendations {
			switch r.Status {
			case StatusDeficient:
				out.Recommendations = append(out.Recommendations, "Increase "+r.Substance)
			case StatusExcess:
				out.Recommendations = append(out.Recommendations, "Reduce "+r.Substance)
			}
		}
	}

	var overallSum float64
	var overallN int
	mean := func(g group) float64 {
		if g.n == 0 {
			return 0
		}
		m := g.sum / float64(g.n)
		overallSum += m
		overallN++
		return round2(m)
	}
	out.Breakdown.Macronutrients = mean(macro)
	out.Breakdown.Micronutrients = mean(micro)
	out.Breakdown.HarmfulSubstances = mean(harmful)

	if overallN > 0 {
		out.Overall = round2(overallSum / float64(overallN))
	}
	return out
}

func recordScore(r ComparisonRecord) float64 {
	switch r.Status {
	case StatusOptimal:
		return 100
	case StatusAcceptable:
		return 80
	case StatusDeficient:
		return 40
	default: // excess
		if r.Category == CategoryHarmful {
			return 20
		}
		return 60
	}
}
