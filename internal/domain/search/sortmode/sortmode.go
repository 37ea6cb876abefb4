package sortmode

// Mode is the result ordering strategy.
type Mode string

// Sort mode constants.
const (
	// Relevance orders by descending score (the default).
	Relevance Mode = "relevance"
	// Date orders by descending metadata date; items without one sort last.
	Date Mode = "date"
	// Popularity orders by descending search weight.
	Popularity Mode = "popularity"
	// Alphabetical orders by title using locale-aware collation.
	Alphabetical Mode = "alphabetical"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == Relevance || m == Date || m == Popularity || m == Alphabetical
}
