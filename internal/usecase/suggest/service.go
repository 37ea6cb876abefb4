// Package suggest generates alternative query proposals: typo corrections
// against a term dictionary, phrase completions, historically similar
// queries, and a popular fallback for searches that matched nothing.
package suggest

import (
	"math"
	"sort"
	"strings"

	"github.com/sift-search/sift/internal/domain/search/suggestion"
	"github.com/sift-search/sift/internal/textnorm"
	"github.com/sift-search/sift/internal/usecase/telemetry"
)

// HistoryReader provides the most frequent historical queries.
type HistoryReader interface {
	TopQueries(n int) []telemetry.QueryCount
}

// Suggestion limits and scoring constants. The correction band bounds are
// hand-tuned; keep them adjustable, they are not load-bearing invariants.
const (
	// MaxSuggestions caps the combined suggestion list.
	MaxSuggestions = 8

	// DefaultCorrectionMin/Max bound the "near miss" similarity band for
	// typo corrections. Exact matches need no correction; very dissimilar
	// terms are noise. The lower bound is inclusive so that a plain
	// transposition of a five-letter term (similarity exactly 0.6) still
	// corrects.
	DefaultCorrectionMin = 0.6
	DefaultCorrectionMax = 0.95

	correctionScoreScale = 5
	completionScore      = 3
	popularScore         = 2

	// minCorrectionTokenLen is the shortest query token considered for
	// correction.
	minCorrectionTokenLen = 3
	// minCompletionQueryLen is the shortest query eligible for completions.
	minCompletionQueryLen = 2

	// similarityFloor is the minimum word-overlap similarity for a
	// historical query to qualify as similar.
	similarityFloor = 0.3
	// historyTopN is how many frequent past queries are scanned.
	historyTopN = 100
)

// Options configure the suggestion sources.
type Options struct {
	// Dictionary is the fixed list of known-good domain terms used for
	// typo corrections.
	Dictionary []string
	// Completions is the fixed list of known-good phrases offered as
	// query completions.
	Completions []string
	// Popular is the fallback list proposed when a search matches nothing.
	Popular []string
	// CorrectionMin and CorrectionMax bound the similarity band for typo
	// corrections; zero values fall back to the defaults.
	CorrectionMin float64
	CorrectionMax float64
}

// Service generates ranked suggestions for a query.
type Service struct {
	history HistoryReader
	opts    Options
}

// New creates a suggestion service. Zero band bounds in opts are replaced
// with the defaults; list fields may be empty, disabling that source.
func New(history HistoryReader, opts Options) *Service {
	if opts.CorrectionMin <= 0 {
		opts.CorrectionMin = DefaultCorrectionMin
	}
	if opts.CorrectionMax <= 0 {
		opts.CorrectionMax = DefaultCorrectionMax
	}
	return &Service{history: history, opts: opts}
}

// Suggest combines corrections, completions, similar past queries and,
// when noResults is set, the popular fallback. The result is deduplicated,
// sorted by descending score and capped at MaxSuggestions.
func (s *Service) Suggest(normalizedQuery string, noResults bool) []suggestion.Suggestion {
	if normalizedQuery == "" {
		return nil
	}

	var out []suggestion.Suggestion
	out = append(out, s.corrections(normalizedQuery)...)
	out = append(out, s.completions(normalizedQuery)...)
	out = append(out, s.similar(normalizedQuery)...)
	if noResults {
		out = append(out, s.popular(normalizedQuery)...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score() > out[j].Score()
	})

	out = dedupe(out)
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

// corrections proposes the query with one token replaced by a dictionary
// term inside the near-miss similarity band.
func (s *Service) corrections(q string) []suggestion.Suggestion {
	tokens := strings.Fields(q)
	var out []suggestion.Suggestion

	for i, tok := range tokens {
		if len(tok) < minCorrectionTokenLen {
			continue
		}
		for _, term := range s.opts.Dictionary {
			sim := textnorm.Similarity(tok, strings.ToLower(term))
			if sim < s.opts.CorrectionMin || sim >= s.opts.CorrectionMax {
				continue
			}
			corrected := make([]string, len(tokens))
			copy(corrected, tokens)
			corrected[i] = strings.ToLower(term)
			out = append(out, suggestion.New(
				strings.Join(corrected, " "),
				sim*correctionScoreScale,
				suggestion.Correction,
				q,
			))
		}
	}
	return out
}

// completions proposes known-good phrases the query is a prefix of.
func (s *Service) completions(q string) []suggestion.Suggestion {
	if len(q) < minCompletionQueryLen {
		return nil
	}
	var out []suggestion.Suggestion
	for _, phrase := range s.opts.Completions {
		lower := strings.ToLower(phrase)
		if lower == q || !strings.HasPrefix(lower, q) {
			continue
		}
		out = append(out, suggestion.New(lower, completionScore, suggestion.Completion, q))
	}
	return out
}

// similar scans the most frequent past queries for word overlap with the
// current one, scored by overlap similarity scaled by log frequency.
func (s *Service) similar(q string) []suggestion.Suggestion {
	qWords := strings.Fields(q)
	var out []suggestion.Suggestion

	for _, past := range s.history.TopQueries(historyTopN) {
		if past.Query == q {
			continue
		}
		sim := wordOverlap(qWords, strings.Fields(past.Query))
		if sim <= similarityFloor {
			continue
		}
		out = append(out, suggestion.New(
			past.Query,
			sim*math.Log(float64(past.Count)+1),
			suggestion.Similar,
			q,
		))
	}
	return out
}

// popular is the zero-result fallback: generically popular queries proposed
// regardless of textual relation to the current one.
func (s *Service) popular(q string) []suggestion.Suggestion {
	var out []suggestion.Suggestion
	for _, p := range s.opts.Popular {
		out = append(out, suggestion.New(strings.ToLower(p), popularScore, suggestion.Similar, q))
	}
	return out
}

// wordOverlap is a Dice-style similarity: 2 * |common| / (|a| + |b|),
// where words count as common when either contains the other.
func wordOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	common := 0
	for _, wa := range a {
		for _, wb := range b {
			if strings.Contains(wa, wb) || strings.Contains(wb, wa) {
				common++
				break
			}
		}
	}
	return 2 * float64(common) / float64(len(a)+len(b))
}

// dedupe keeps the first (highest-scored) suggestion per text.
func dedupe(in []suggestion.Suggestion) []suggestion.Suggestion {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, sg := range in {
		if _, ok := seen[sg.Text()]; ok {
			continue
		}
		seen[sg.Text()] = struct{}{}
		out = append(out, sg)
	}
	return out
}
