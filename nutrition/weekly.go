package nutrition

import (
	"math"
	"sort"
)

// DaysPerWeek is the fixed length of every daily breakdown.
const DaysPerWeek = 7

// DayEntry is one day's consumption of a substance within a week.
type DayEntry struct {
	Day    int     `json:"day"` // 1..7
	Value  float64 `json:"value"`
	Status Status  `json:"status"`
}

// WeeklyRecord is a comparison record over a whole week plus per-day detail.
type WeeklyRecord struct {
	ComparisonRecord
	DailyBreakdown []DayEntry `json:"daily_breakdown"` // always 7 entries
	WeeklyAverage  float64    `json:"weekly_average"`
	DailyVariation float64    `json:"daily_variation"`
}

// TrendReport compares two consecutive weeks.
type TrendReport struct {
	NutritionScoreChange float64  `json:"nutrition_score_change"`
	CalorieChange        float64  `json:"calorie_change"`
	Improving            []string `json:"improving"`
	Declining            []string `json:"declining"`
	ConsistencyScore     float64  `json:"consistency_score"`
}

// BuildWeekly merges up to seven daily record sets into weekly records.
// Weekly totals are classified against references scaled x7, so a ratio that
// is optimal daily stays optimal weekly. The daily breakdown always has seven
// entries: missing days carry value 0, classified against the daily
// (unscaled) references. Extra days beyond seven are ignored.
func (e *Engine) BuildWeekly(days [][]ComparisonRecord) []WeeklyRecord {
	type weekOf struct {
		first  ComparisonRecord // from the first day the substance appears
		values [DaysPerWeek]float64
	}

	bySubstance := map[string]*weekOf{}
	for d := 0; d < DaysPerWeek && d < len(days); d++ {
		for _, rec := range days[d] {
			w := bySubstance[rec.Substance]
			if w == nil {
				w = &weekOf{first: rec}
				bySubstance[rec.Substance] = w
			}
			w.values[d] += rec.Consumed
		}
	}

	out := make([]WeeklyRecord, 0, len(bySubstance))
	for name, w := range bySubstance {
		var total float64
		for _, v := range w.values {
			total += v
		}

		weeklyRefs := scaleReferences(w.first.References, DaysPerWeek)
		rec := e.buildRecord(name, total, weeklyRefs)

		breakdown := make([]DayEntry, DaysPerWeek)
		for d := range breakdown {
			breakdown[d] = DayEntry{
				Day:    d + 1,
				Value:  w.values[d],
				Status: Classify(w.values[d], w.first.References, w.first.Category),
			}
		}

		out = append(out, WeeklyRecord{
			ComparisonRecord: rec,
			DailyBreakdown:   breakdown,
			WeeklyAverage:    round2(total / DaysPerWeek),
			DailyVariation:   round2(populationStdDev(w.values[:])),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		ri, rj := out[i].Category.Rank(), out[j].Category.Rank()
		if ri != rj {
			return ri < rj
		}
		return out[i].Substance < out[j].Substance
	})
	return out
}

// ComputeTrends derives week-over-week deltas from two weekly record sets and
// their scores. A substance improves when its status rank rises and declines
// when it falls; substances absent from the previous week are neither.
// Callers with no prior week skip this entirely.
func ComputeTrends(current, previous []WeeklyRecord, currentScore, previousScore NutritionScore) TrendReport {
	report := TrendReport{
		NutritionScoreChange: round2(currentScore.Overall - previousScore.Overall),
		CalorieChange:        round2(calorieTotal(current) - calorieTotal(previous)),
		ConsistencyScore:     ConsistencyScore(current),
	}

	prev := make(map[string]Status, len(previous))
	for _, r := range previous {
		prev[r.Substance] = r.Status
	}
	for _, r := range current {
		p, ok := prev[r.Substance]
		if !ok {
			continue
		}
		switch {
		case r.Status.Rank() > p.Rank():
			report.Improving = append(report.Improving, r.Substance)
		case r.Status.Rank() < p.Rank():
			report.Declining = append(report.Declining, r.Substance)
		}
	}
	return report
}

// ConsistencyScore is the share of days with at least one reading, 0-100.
func ConsistencyScore(week []WeeklyRecord) float64 {
	var seen [DaysPerWeek]bool
	for _, r := range week {
		for _, d := range r.DailyBreakdown {
			if d.Value > 0 {
				seen[d.Day-1] = true
			}
		}
	}
	n := 0
	for _, s := range seen {
		if s {
			n++
		}
	}
	return round2(float64(n) / DaysPerWeek * 100)
}

func calorieTotal(week []WeeklyRecord) float64 {
	for _, r := range week {
		if r.Category == CategoryCalorie {
			return r.Consumed
		}
	}
	return 0
}

// scaleReferences multiplies every reference by factor, clearing any stale
// position so the weekly layer pass recomputes it.
func scaleReferences(refs []ReferenceValue, factor float64) []ReferenceValue {
	out := make([]ReferenceValue, len(refs))
	copy(out, refs)
	for i := range out {
		out[i].Value *= factor
		out[i].Position = 0
	}
	return out
}

func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)))
}
