package search

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sift-search/sift/internal/domain/item"
	"github.com/sift-search/sift/internal/domain/search/query"
	"github.com/sift-search/sift/internal/domain/search/result"
	"github.com/sift-search/sift/internal/domain/search/suggestion"
	"github.com/sift-search/sift/internal/logger"
	"github.com/sift-search/sift/internal/textnorm"
)

// Output is the combined outcome of one search call.
type Output struct {
	// Results is the requested page of scored hits.
	Results []result.Result
	// Suggestions are alternative query proposals, strongest first.
	Suggestions []suggestion.Suggestion
	// Total is the number of matches before pagination.
	Total int
	// Elapsed is the in-process search duration.
	Elapsed time.Duration
}

// Service runs the full search pipeline: normalize, score, filter, rank,
// paginate, suggest, track.
type Service struct {
	items   ItemLister
	suggest Suggester
	tracker Tracker
	scorer  scorer
}

// New creates a search service with the given field weights and thresholds.
func New(items ItemLister, suggest Suggester, tracker Tracker, w Weights, p Params) *Service {
	return &Service{
		items:   items,
		suggest: suggest,
		tracker: tracker,
		scorer:  scorer{weights: w, params: p},
	}
}

// Search scores every indexed item against the query, ranks and paginates
// the matches, and attaches suggestions. Empty or whitespace-only query
// text yields an empty output; it is not an error, and nothing is tracked.
func (s *Service) Search(ctx context.Context, q *query.Query) Output {
	start := time.Now()

	normalized := textnorm.Normalize(q.Text())
	if normalized == "" {
		return Output{Elapsed: time.Since(start)}
	}

	qc := newQueryContext(normalized)

	var results []result.Result
	for _, it := range s.items.List() {
		if !matchesFilters(&it, q) {
			continue
		}
		if r, ok := s.scorer.scoreItem(&it, qc); ok {
			results = append(results, r)
		}
	}

	rank(results, q.Sort())
	total := len(results)
	page := paginate(results, q.Limit(), q.Offset())

	suggestions := s.suggest.Suggest(normalized, total == 0)

	s.tracker.Track(normalized)
	if total == 0 {
		s.tracker.TrackNoResults(normalized)
	}
	elapsed := time.Since(start)
	s.tracker.RecordResponseTime(elapsed)

	logger.FromContext(ctx).Debug("search executed",
		zap.String("query", normalized),
		zap.Int("total", total),
		zap.Int("page", len(page)),
		zap.Duration("elapsed", elapsed),
	)

	return Output{
		Results:     page,
		Suggestions: suggestions,
		Total:       total,
		Elapsed:     elapsed,
	}
}

// matchesFilters applies the category (exact) and tag (any-of) filters.
func matchesFilters(it *item.Item, q *query.Query) bool {
	if q.Category() != "" && !strings.EqualFold(it.Category(), q.Category()) {
		return false
	}
	if len(q.Tags()) == 0 {
		return true
	}
	for _, want := range q.Tags() {
		for _, have := range it.Tags() {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}
