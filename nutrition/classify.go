package nutrition

// Status is the classification outcome for one substance.
type Status string

const (
	StatusDeficient  Status = "deficient"
	StatusOptimal    Status = "optimal"
	StatusAcceptable Status = "acceptable"
	StatusExcess     Status = "excess"
)

// Rank orders statuses from worst to best for week-over-week comparison.
// Excess ranks below deficient: overconsumption is the worst outcome for
// most substances.
func (s Status) Rank() int {
	switch s {
	case StatusExcess:
		return 0
	case StatusDeficient:
		return 1
	case StatusAcceptable:
		return 2
	case StatusOptimal:
		return 3
	default:
		return 0
	}
}

// Optimal window around the target for beneficial substances.
const (
	optimalLow  = 0.8
	optimalHigh = 1.2
)

// Classify assigns a status to a consumed total against its references.
// Branches are checked in fixed order and the first match wins, so an
// upper-limit breach always reports excess even when the value would also sit
// inside the optimal window.
//
// Harmful substances are asymmetric: less is always at least as good, so they
// never classify as deficient or acceptable.
func Classify(consumed float64, refs []ReferenceValue, category Category) Status {
	if category == CategoryHarmful {
		if ul, ok := findRef(refs, RefUpperLimit); ok && consumed > ul.Value {
			return StatusExcess
		}
		if rec, ok := findRef(refs, RefRecommended); ok && consumed > rec.Value {
			return StatusExcess
		}
		return StatusOptimal
	}

	if ul, ok := findRef(refs, RefUpperLimit); ok && consumed > ul.Value {
		return StatusExcess
	}
	if max, ok := findRef(refs, RefMaximum); ok && consumed > max.Value {
		return StatusExcess
	}

	target, ok := findRef(refs, RefRecommended)
	if !ok {
		target, ok = findRef(refs, RefMinimum)
	}
	if !ok || target.Value <= 0 {
		return StatusAcceptable
	}

	switch {
	case consumed < optimalLow*target.Value:
		return StatusDeficient
	case consumed <= optimalHigh*target.Value:
		return StatusOptimal
	default:
		return StatusAcceptable
	}
}
