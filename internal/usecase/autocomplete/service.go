// Package autocomplete provides lightweight substring lookup over titles,
// tags and query history for live-typing suggestions.
package autocomplete

import (
	"strings"

	"github.com/sift-search/sift/internal/domain/item"
	"github.com/sift-search/sift/internal/textnorm"
)

// DefaultLimit is the suggestion cap when the caller passes none.
const DefaultLimit = 5

// minQueryLen is the shortest query that produces suggestions.
const minQueryLen = 2

// ItemLister provides snapshot access to the indexed items.
type ItemLister interface {
	List() []item.Item
}

// HistoryReader provides the raw query log, oldest first.
type HistoryReader interface {
	History() []string
}

// Service answers autocomplete lookups.
type Service struct {
	items   ItemLister
	history HistoryReader
}

// New creates an autocomplete service.
func New(items ItemLister, history HistoryReader) *Service {
	return &Service{items: items, history: history}
}

// Autocomplete returns up to limit deduplicated candidates containing the
// normalized query as a substring: titles first, then tags, then history.
// Queries shorter than two characters return nothing.
func (s *Service) Autocomplete(query string, limit int) []string {
	normalized := textnorm.Normalize(query)
	if len(normalized) < minQueryLen {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(candidate string) {
		if len(out) >= limit {
			return
		}
		key := strings.ToLower(candidate)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, candidate)
	}

	items := s.items.List()
	for i := range items {
		if strings.Contains(strings.ToLower(items[i].Title()), normalized) {
			add(items[i].Title())
		}
	}
	for i := range items {
		for _, tag := range items[i].Tags() {
			if strings.Contains(strings.ToLower(tag), normalized) {
				add(tag)
			}
		}
	}
	for _, past := range s.history.History() {
		if strings.Contains(past, normalized) {
			add(past)
		}
	}

	return out
}
