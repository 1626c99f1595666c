package nutrition

import (
	"fmt"
	"math"
	"strings"
)

// Layer is one stacked visual magnitude of consumption relative to the
// display scale.
type Layer struct {
	Value        float64 `json:"value"`
	Percentage   float64 `json:"percentage"`
	Height       float64 `json:"height"`
	Width        float64 `json:"width"`
	BorderRadius float64 `json:"border_radius"`
}

// VisualConfig is the display-scale configuration carried through to clients.
type VisualConfig struct {
	MaxBarWidth   float64 `json:"max_bar_width"`
	IndicatorSize float64 `json:"indicator_size"`
}

// DefaultVisualConfig matches the client's comparison bar dimensions.
var DefaultVisualConfig = VisualConfig{MaxBarWidth: 300, IndicatorSize: 12}

// Presentation constants carried through unchanged; part of the output
// contract, not computed.
const (
	layerHeight       = 4
	layerBorderRadius = 10
	maxLayerPercent   = 200
)

// BuildLayers produces the primary consumption layer. Nothing is emitted when
// consumed <= 0. Percentage is consumed as a fraction of the reference basis,
// clamped to [0, 200] so extreme overconsumption still has a bounded label;
// width stops growing at the display edge (100%) so the bar never overflows.
func BuildLayers(consumed float64, refs []ReferenceValue, category Category, vc VisualConfig) []Layer {
	if consumed <= 0 {
		return nil
	}
	basis := referenceBasis(refs, category)
	if basis <= 0 {
		return nil
	}
	pct := math.Min(consumed/basis*100, maxLayerPercent)
	width := vc.MaxBarWidth * math.Min(pct, 100) / 100
	return []Layer{{
		Value:        consumed,
		Percentage:   round1(pct),
		Height:       layerHeight,
		Width:        round1(width),
		BorderRadius: layerBorderRadius,
	}}
}

// PositionReferences returns a copy of refs with Position set to each value's
// percentage of the display scale, clamped to 100 so a reference beyond the
// scale renders at the edge instead of overflowing.
func PositionReferences(refs []ReferenceValue, category Category) []ReferenceValue {
	basis := referenceBasis(refs, category)
	out := make([]ReferenceValue, len(refs))
	copy(out, refs)
	if basis <= 0 {
		return out
	}
	for i := range out {
		out[i].Position = round1(math.Min(out[i].Value/basis*100, 100))
	}
	return out
}

// FormatAmount renders an amount for display. Classification and layer math
// always run in the reading's native magnitude; only the display string
// converts. Gram amounts under 1 drop to integer milligrams, milligram and
// microgram amounts at or above 1000 escalate one unit up, and calories are
// never converted, only rounded.
func FormatAmount(value float64, unit string) string {
	switch strings.ToLower(unit) {
	case "kcal", "cal", "calories":
		return fmt.Sprintf("%d kcal", int(math.Round(value)))
	case "g", "grams":
		if value >= 1 {
			return fmt.Sprintf("%.1f g", value)
		}
		return fmt.Sprintf("%d mg", int(math.Round(value*1000)))
	case "mg":
		if value >= 1000 {
			return fmt.Sprintf("%.1f g", value/1000)
		}
		return fmt.Sprintf("%d mg", int(math.Round(value)))
	case "mcg", "ug", "µg":
		if value >= 1000 {
			return fmt.Sprintf("%.1f mg", value/1000)
		}
		return fmt.Sprintf("%d mcg", int(math.Round(value)))
	default:
		return fmt.Sprintf("%.1f %s", value, unit)
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
