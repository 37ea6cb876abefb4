package sift

import "time"

// SortMode controls result ordering.
type SortMode string

// Sort mode constants.
const (
	SortRelevance    SortMode = "relevance"
	SortDate         SortMode = "date"
	SortPopularity   SortMode = "popularity"
	SortAlphabetical SortMode = "alphabetical"
)

// SuggestionKind classifies how a suggestion was derived.
type SuggestionKind string

// Suggestion kind constants.
const (
	SuggestionCorrection SuggestionKind = "correction"
	SuggestionCompletion SuggestionKind = "completion"
	SuggestionSimilar    SuggestionKind = "similar"
)

// Item is a searchable document.
type Item struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Content     string   `json:"content,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	URL         string   `json:"url,omitempty"`
	// Metadata is an open key-value bag. It is never searched but is
	// carried through to results; the "date" key feeds the date sort.
	Metadata map[string]any `json:"metadata,omitempty"`
	// SearchWeight is a curated importance multiplier; zero means the
	// default of 1.
	SearchWeight float64 `json:"search_weight,omitempty"`
}

// ItemPatch is a partial item update. Nil fields are unchanged; Tags and
// Metadata replace the whole field when provided.
type ItemPatch struct {
	Title        *string        `json:"title,omitempty"`
	Description  *string        `json:"description,omitempty"`
	Content      *string        `json:"content,omitempty"`
	Category     *string        `json:"category,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	URL          *string        `json:"url,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	SearchWeight *float64       `json:"search_weight,omitempty"`
}

// SearchRequest carries one search call's parameters.
type SearchRequest struct {
	Query string `json:"query"`
	// Category filters to items with exactly this category.
	Category string `json:"category,omitempty"`
	// Tags filters to items carrying any of these tags.
	Tags   []string `json:"tags,omitempty"`
	SortBy SortMode `json:"sort_by,omitempty"`
	// Limit defaults to 50; Offset defaults to 0. Negative values are
	// clamped, not rejected.
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// Span is a half-open [Start, End) byte range into a field's text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// FieldMatch describes where the query matched inside one field.
type FieldMatch struct {
	Field string  `json:"field"`
	Text  string  `json:"text"`
	Spans []Span  `json:"spans,omitempty"`
	Score float64 `json:"score"`
}

// SearchResult is a single scored hit.
type SearchResult struct {
	Item  Item    `json:"item"`
	Score float64 `json:"score"`
	// Matches lists the per-field match descriptors for fields that
	// contributed to the score.
	Matches []FieldMatch `json:"matches,omitempty"`
	// TitleSpans and DescriptionSpans are structured highlight ranges;
	// HighlightedTitle and HighlightedDescription are the same ranges
	// rendered with <em> markers for convenience.
	TitleSpans             []Span `json:"title_spans,omitempty"`
	DescriptionSpans       []Span `json:"description_spans,omitempty"`
	HighlightedTitle       string `json:"highlighted_title"`
	HighlightedDescription string `json:"highlighted_description,omitempty"`
	Explanation            string `json:"explanation,omitempty"`
}

// Suggestion is an alternative query proposal. Score ranks suggestions
// against each other only; it is unrelated to result scores.
type Suggestion struct {
	Text     string         `json:"text"`
	Score    float64        `json:"score"`
	Kind     SuggestionKind `json:"kind"`
	Original string         `json:"original"`
}

// QueryStats summarizes one search call.
type QueryStats struct {
	Total  int   `json:"total"`
	TimeMS int64 `json:"time_ms"`
}

// SearchResponse is the combined outcome of one search call.
type SearchResponse struct {
	Results     []SearchResult `json:"results"`
	Suggestions []Suggestion   `json:"suggestions"`
	Stats       QueryStats     `json:"stats"`
}

// QueryCount pairs a query with how often it was seen.
type QueryCount struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

// SearchStats is the accumulated analytics snapshot.
type SearchStats struct {
	TotalQueries       int            `json:"total_queries"`
	AvgResponseTime    time.Duration  `json:"-"`
	AvgResponseTimeMS  float64        `json:"avg_response_time_ms"`
	TopQueries         []QueryCount   `json:"top_queries"`
	TopNoResultQueries []QueryCount   `json:"top_no_result_queries"`
	ItemsPerCategory   map[string]int `json:"items_per_category"`
}
