package domain

// Filter scopes a query to one date with optional inclusion lists.
// A nil or empty list means unrestricted.
type Filter struct {
	Date       string
	Projects   []string
	Annotators []string
}

// GroupBy selects the field a GroupSummary is keyed on.
type GroupBy string

const (
	GroupByAnnotator GroupBy = "annotator"
	GroupByProject   GroupBy = "project"
)

// Summary is the rollup over a filtered entry set.
type Summary struct {
	TotalImages    int
	TotalHours     float64
	AnnotatorCount int
	TotalEntries   int
}

// GroupSummary is the rollup for one annotator or project.
type GroupSummary struct {
	Key          string
	TotalImages  int
	TotalHours   float64
	EntriesCount int
}

// Efficiency returns images per hour, or 0 when no hours were logged.
func (g GroupSummary) Efficiency() float64 {
	if g.TotalHours <= 0 {
		return 0
	}
	return float64(g.TotalImages) / g.TotalHours
}
