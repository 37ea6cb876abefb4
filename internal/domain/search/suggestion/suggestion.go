package suggestion

// Kind classifies how a suggestion was derived.
type Kind string

// Suggestion kind constants.
const (
	// Correction replaces a likely-misspelled query token.
	Correction Kind = "correction"
	// Completion extends the query to a known-good phrase.
	Completion Kind = "completion"
	// Similar is drawn from historically similar or popular queries.
	Similar Kind = "similar"
)

// IsValid checks if the kind is one of the supported values.
func (k Kind) IsValid() bool {
	return k == Correction || k == Completion || k == Similar
}

// Suggestion is an alternative query proposal. Its score ranks suggestions
// against each other only; the scale is unrelated to result scores.
type Suggestion struct {
	text     string
	score    float64
	kind     Kind
	original string
}

// New creates a suggestion.
func New(text string, score float64, kind Kind, original string) Suggestion {
	return Suggestion{text: text, score: score, kind: kind, original: original}
}

// Text returns the suggested query.
func (s *Suggestion) Text() string { return s.text }

// Score returns the ranking score.
func (s *Suggestion) Score() float64 { return s.score }

// Kind returns how the suggestion was derived.
func (s *Suggestion) Kind() Kind { return s.kind }

// Original returns the query that produced this suggestion.
func (s *Suggestion) Original() string { return s.original }
