package result

import "github.com/sift-search/sift/internal/domain/item"

// Span is a half-open [Start, End) byte range into a field's text.
type Span struct {
	Start int
	End   int
}

// FieldMatch describes where a query matched inside one field.
// Fuzzy hits contribute to the field score but carry no spans since they
// are not substrings of the field text.
type FieldMatch struct {
	field string
	text  string
	spans []Span
	score float64
}

// NewFieldMatch creates a per-field match descriptor.
func NewFieldMatch(field, text string, spans []Span, score float64) FieldMatch {
	return FieldMatch{field: field, text: text, spans: spans, score: score}
}

// Field returns the matched field name.
func (m *FieldMatch) Field() string { return m.field }

// Text returns the full field text the spans index into.
func (m *FieldMatch) Text() string { return m.text }

// Spans returns the matched byte ranges.
func (m *FieldMatch) Spans() []Span { return m.spans }

// Score returns the unweighted per-field score.
func (m *FieldMatch) Score() float64 { return m.score }

// Result is a single scored search hit. The score is an unbounded
// relevance value, not a probability.
type Result struct {
	item        item.Item
	score       float64
	matches     []FieldMatch
	titleSpans  []Span
	descSpans   []Span
	explanation string
}

// New creates a search result.
func New(
	it item.Item, score float64, matches []FieldMatch,
	titleSpans, descSpans []Span, explanation string,
) Result {
	return Result{
		item:        it,
		score:       score,
		matches:     matches,
		titleSpans:  titleSpans,
		descSpans:   descSpans,
		explanation: explanation,
	}
}

// Item returns the originating item.
func (r *Result) Item() *item.Item { return &r.item }

// Score returns the relevance score.
func (r *Result) Score() float64 { return r.score }

// Matches returns the per-field match descriptors.
func (r *Result) Matches() []FieldMatch { return r.matches }

// TitleSpans returns highlight ranges into the item title.
func (r *Result) TitleSpans() []Span { return r.titleSpans }

// DescriptionSpans returns highlight ranges into the item description.
func (r *Result) DescriptionSpans() []Span { return r.descSpans }

// Explanation returns a short human-readable match summary.
func (r *Result) Explanation() string { return r.explanation }
