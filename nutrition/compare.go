package nutrition

import "sort"

// ContentEntry is educational text about a substance, supplied by the content
// collaborator.
type ContentEntry struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Tips    []string `json:"tips,omitempty"`
}

// ContentSource looks up educational text by substance name. Lookup returns
// nil for unknown substances; the record builder substitutes a generic entry,
// never an error.
type ContentSource interface {
	Lookup(substance string) *ContentEntry
}

// ComparisonRecord is the engine's primary output: one substance's consumption
// classified and laid out against its references. Records are never mutated
// after construction; a fresh build replaces the old set when inputs change.
type ComparisonRecord struct {
	Substance  string           `json:"substance"`
	Category   Category         `json:"category"`
	Consumed   float64          `json:"consumed"`
	Unit       string           `json:"unit"`
	Display    string           `json:"display"`
	Status     Status           `json:"status"`
	References []ReferenceValue `json:"reference_values"`
	Layers     []Layer          `json:"layers"`
	Visual     VisualConfig     `json:"visual_config"`
	Content    ContentEntry     `json:"content"`
}

// Engine turns aggregated totals into comparison records, weekly records, and
// scores. It is a pure transformation over its inputs: the reference and
// content collaborators are injected, nothing is cached, and every method
// allocates fresh output, so concurrent calls need no guarding.
type Engine struct {
	refs    ReferenceSource
	content ContentSource
	visual  VisualConfig
}

func NewEngine(refs ReferenceSource, content ContentSource) *Engine {
	return &Engine{refs: refs, content: content, visual: DefaultVisualConfig}
}

// BuildRecords builds one comparison record per substance in totals that has
// at least one applicable reference. Substances without references are skipped
// entirely rather than emitted as partial records.
func (e *Engine) BuildRecords(totals Totals, ageGroup, gender string) []ComparisonRecord {
	records := make([]ComparisonRecord, 0, len(totals))
	for name, consumed := range totals {
		refs := e.refs.References(name, ageGroup, gender)
		if len(refs) == 0 {
			continue
		}
		records = append(records, e.buildRecord(name, consumed, refs))
	}
	sortRecords(records)
	return records
}

func (e *Engine) buildRecord(name string, consumed float64, refs []ReferenceValue) ComparisonRecord {
	category := refs[0].Category
	unit := refs[0].Unit
	return ComparisonRecord{
		Substance:  name,
		Category:   category,
		Consumed:   consumed,
		Unit:       unit,
		Display:    FormatAmount(consumed, unit),
		Status:     Classify(consumed, refs, category),
		References: PositionReferences(refs, category),
		Layers:     BuildLayers(consumed, refs, category, e.visual),
		Visual:     e.visual,
		Content:    e.lookupContent(name),
	}
}

func (e *Engine) lookupContent(name string) ContentEntry {
	if e.content != nil {
		if ce := e.content.Lookup(name); ce != nil {
			return *ce
		}
	}
	return ContentEntry{
		Title:   name,
		Summary: "Detailed information about " + name + " is not available yet.",
	}
}

// sortRecords orders by category rank, then substance name ascending
// (case-sensitive).
func sortRecords(records []ComparisonRecord) {
	sort.Slice(records, func(i, j int) bool {
		ri, rj := records[i].Category.Rank(), records[j].Category.Rank()
		if ri != rj {
			return ri < rj
		}
		return records[i].Substance < records[j].Substance
	})
}
