package search

import (
	"time"

	"github.com/sift-search/sift/internal/domain/item"
	"github.com/sift-search/sift/internal/domain/search/suggestion"
)

// ItemLister provides snapshot access to the indexed items.
type ItemLister interface {
	List() []item.Item
}

// Suggester produces alternative query proposals. noResults is true when
// the search that triggered the call matched nothing.
type Suggester interface {
	Suggest(normalizedQuery string, noResults bool) []suggestion.Suggestion
}

// Tracker records query traffic for analytics and suggestion ranking.
type Tracker interface {
	Track(normalizedQuery string)
	TrackNoResults(normalizedQuery string)
	RecordResponseTime(d time.Duration)
}
