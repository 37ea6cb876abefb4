package query

import (
	"fmt"

	"github.com/sift-search/sift/internal/domain"
	"github.com/sift-search/sift/internal/domain/search/sortmode"
)

// Query parameter limits.
const (
	// MaxTextLength is the maximum allowed query text length.
	MaxTextLength = 1024
	DefaultLimit  = 50
	MaxLimit      = 200
)

// Query is a validated search request. Empty text is legal and simply
// matches nothing; it is not an error.
type Query struct {
	text     string
	category string
	tags     []string
	sort     sortmode.Mode
	limit    int
	offset   int
}

// New validates and normalizes search parameters.
// Defaults: sort=relevance, limit=50, offset=0. Negative limit and offset
// are clamped rather than rejected.
func New(
	text, category string, tags []string,
	sort sortmode.Mode, limit, offset int,
) (Query, error) {
	if len(text) > MaxTextLength {
		return Query{}, fmt.Errorf("%w: text too long (max %d chars)", domain.ErrInvalidQuery, MaxTextLength)
	}
	if sort == "" {
		sort = sortmode.Relevance
	}
	if !sort.IsValid() {
		return Query{}, fmt.Errorf("%w: unknown sort mode %q", domain.ErrInvalidQuery, sort)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	return Query{
		text:     text,
		category: category,
		tags:     tags,
		sort:     sort,
		limit:    limit,
		offset:   offset,
	}, nil
}

// Text returns the raw query text.
func (q *Query) Text() string { return q.text }

// Category returns the exact-match category filter ("" = no filter).
func (q *Query) Category() string { return q.category }

// Tags returns the tag filter (OR semantics; nil = no filter).
func (q *Query) Tags() []string { return q.tags }

// Sort returns the result ordering strategy.
func (q *Query) Sort() sortmode.Mode { return q.sort }

// Limit returns the page size.
func (q *Query) Limit() int { return q.limit }

// Offset returns the page offset.
func (q *Query) Offset() int { return q.offset }
