// Package telemetry accumulates in-memory query analytics: history,
// frequency counts, zero-result queries and response-time samples.
// State lives for the process lifetime and is explicitly clearable; nothing
// is persisted.
package telemetry

import (
	"sort"
	"sync"
	"time"

	"github.com/sift-search/sift/internal/metrics"
)

// Store caps. Oldest entries are evicted first once a cap is reached.
const (
	HistoryCap = 10000
	SampleCap  = 1000

	topN = 10
)

// QueryCount pairs a normalized query with how often it was seen.
type QueryCount struct {
	Query string
	Count int
}

// Stats is the analytics snapshot served by the stats endpoint.
type Stats struct {
	TotalQueries       int
	AvgResponseTime    time.Duration
	TopQueries         []QueryCount
	TopNoResultQueries []QueryCount
	ItemsPerCategory   map[string]int
}

// CategoryCounter reports indexed item counts per category.
type CategoryCounter interface {
	CountByCategory() map[string]int
}

// Service is the process-wide query telemetry store. One mutex guards all
// four stores; readers get eventual consistency at worst.
type Service struct {
	categories CategoryCounter

	mu        sync.Mutex
	total     int
	history   []string
	freq      map[string]int
	noResults map[string]int
	samples   []time.Duration
}

// New creates an empty telemetry service.
func New(categories CategoryCounter) *Service {
	return &Service{
		categories: categories,
		freq:       make(map[string]int),
		noResults:  make(map[string]int),
	}
}

// Track records a normalized query in the history log and frequency map.
func (s *Service) Track(normalizedQuery string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	s.history = append(s.history, normalizedQuery)
	if len(s.history) > HistoryCap {
		s.history = s.history[1:]
	}
	s.freq[normalizedQuery]++

	metrics.SearchesTotal.Inc()
}

// TrackNoResults records a normalized query that matched nothing.
func (s *Service) TrackNoResults(normalizedQuery string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.noResults[normalizedQuery]++

	metrics.SearchesNoResultsTotal.Inc()
}

// RecordResponseTime appends a search duration to the rolling sample window.
func (s *Service) RecordResponseTime(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.samples = append(s.samples, d)
	if len(s.samples) > SampleCap {
		s.samples = s.samples[1:]
	}

	metrics.SearchDuration.Observe(d.Seconds())
}

// TopQueries returns up to n historical queries by descending frequency.
// Ties break alphabetically so the order is deterministic.
func (s *Service) TopQueries(n int) []QueryCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return topOf(s.freq, n)
}

// History returns a snapshot of the raw query log, oldest first.
func (s *Service) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// Stats returns the analytics snapshot.
func (s *Service) Stats() Stats {
	perCategory := s.categories.CountByCategory()

	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		TotalQueries:       s.total,
		AvgResponseTime:    meanDuration(s.samples),
		TopQueries:         topOf(s.freq, topN),
		TopNoResultQueries: topOf(s.noResults, topN),
		ItemsPerCategory:   perCategory,
	}
}

// Clear resets all four telemetry stores to empty.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total = 0
	s.history = nil
	s.freq = make(map[string]int)
	s.noResults = make(map[string]int)
	s.samples = nil
}

func topOf(freq map[string]int, n int) []QueryCount {
	counts := make([]QueryCount, 0, len(freq))
	for q, c := range freq {
		counts = append(counts, QueryCount{Query: q, Count: c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Query < counts[j].Query
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

func meanDuration(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range samples {
		sum += d
	}
	return sum / time.Duration(len(samples))
}
