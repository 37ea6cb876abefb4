package search

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sift-search/sift/internal/domain/item"
	"github.com/sift-search/sift/internal/domain/search/result"
	"github.com/sift-search/sift/internal/textnorm"
)

// Field names used in match descriptors and explanations.
const (
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldContent     = "content"
	fieldTags        = "tags"
	fieldCategory    = "category"
)

// queryContext holds the per-query state shared across all items: the
// normalized full query, its terms, and one compiled whole-word regex per
// term.
type queryContext struct {
	full   string
	terms  []string
	wordRe []*regexp.Regexp
}

func newQueryContext(normalized string) queryContext {
	terms := strings.Fields(normalized)
	res := make([]*regexp.Regexp, len(terms))
	for i, t := range terms {
		res[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(t) + `\b`)
	}
	return queryContext{full: normalized, terms: terms, wordRe: res}
}

// scorer computes relevance scores for items against a query context.
type scorer struct {
	weights Weights
	params  Params
}

// scoreItem scores one item. The second return value is false when the item
// does not match at all; zero-score items never become results.
func (sc *scorer) scoreItem(it *item.Item, qc queryContext) (result.Result, bool) {
	fields := []struct {
		name   string
		text   string
		weight float64
	}{
		{fieldTitle, it.Title(), sc.weights.Title},
		{fieldDescription, it.Description(), sc.weights.Description},
		{fieldContent, it.Content(), sc.weights.Content},
		{fieldTags, strings.Join(it.Tags(), " "), sc.weights.Tags},
		{fieldCategory, it.Category(), sc.weights.Category},
	}

	total := 0.0
	var matches []result.FieldMatch
	var matchedFields []string

	for _, f := range fields {
		score, spans := sc.scoreField(strings.ToLower(f.text), qc)
		if score <= 0 {
			continue
		}
		total += score * f.weight
		matches = append(matches, result.NewFieldMatch(f.name, f.text, spans, score))
		matchedFields = append(matchedFields, f.name)
	}

	if total <= 0 {
		return result.Result{}, false
	}

	total *= it.SearchWeight()

	// Whole-document boosts for a full-phrase hit in the heavyweight fields.
	if len(qc.full) >= minDocPhraseLen {
		if strings.Contains(strings.ToLower(it.Title()), qc.full) {
			total *= titlePhraseMultiplier
		}
		if strings.Contains(strings.ToLower(it.Content()), qc.full) {
			total *= contentPhraseMultiplier
		}
	}

	return result.New(
		*it,
		total,
		matches,
		highlightSpans(it.Title(), qc.terms),
		highlightSpans(it.Description(), qc.terms),
		explain(matchedFields),
	), true
}

// scoreField accumulates the four match signals for one field and applies
// the prefix multiplier. text must already be lowercased.
func (sc *scorer) scoreField(text string, qc queryContext) (float64, []result.Span) {
	if text == "" || len(qc.terms) == 0 {
		return 0, nil
	}

	score := 0.0
	var spans []result.Span

	// Exact phrase: the whole query appears verbatim.
	if len(qc.full) >= minPhraseLen && strings.Contains(text, qc.full) {
		score += exactPhraseBonus
		spans = append(spans, findAll(text, qc.full)...)
	}

	fieldWords := strings.Fields(text)

	for i, term := range qc.terms {
		// Whole-word hits.
		if locs := qc.wordRe[i].FindAllStringIndex(text, -1); len(locs) > 0 {
			score += float64(len(locs)) * exactWordBonus
			for _, l := range locs {
				spans = append(spans, result.Span{Start: l[0], End: l[1]})
			}
		}

		// Fuzzy: only the single best near-match per term counts.
		if len(term) >= minTermLen {
			best := 0.0
			for _, w := range fieldWords {
				if len(term) < minFuzzyWordLen || len(w) < minFuzzyWordLen {
					continue
				}
				if sim := textnorm.Similarity(term, w); sim > best {
					best = sim
				}
			}
			if best > sc.params.FuzzyThreshold {
				score += best * fuzzyBonusScale
			}
		}

		// Raw substring anywhere, on top of the whole-word bonus.
		if strings.Contains(text, term) {
			score += partialBonus
			spans = append(spans, findAll(text, term)...)
		}
	}

	// A field leading with the first term is a stronger signal.
	if score > 0 && strings.HasPrefix(text, qc.terms[0]) {
		score *= prefixMultiplier
	}

	return score, dedupeSpans(spans)
}

// highlightSpans returns the ranges of every case-insensitive occurrence of
// every query term (length >= 2) in text. Overlapping term hits may produce
// overlapping spans; renderers tolerate that.
func highlightSpans(text string, terms []string) []result.Span {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var spans []result.Span
	for _, term := range terms {
		if len(term) < minTermLen {
			continue
		}
		spans = append(spans, findAll(lower, term)...)
	}
	return dedupeSpans(spans)
}

// findAll returns the ranges of every non-overlapping occurrence of needle.
func findAll(haystack, needle string) []result.Span {
	var spans []result.Span
	for from := 0; ; {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return spans
		}
		start := from + idx
		spans = append(spans, result.Span{Start: start, End: start + len(needle)})
		from = start + len(needle)
	}
}

// dedupeSpans sorts spans by position and drops exact duplicates.
func dedupeSpans(spans []result.Span) []result.Span {
	if len(spans) == 0 {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})
	out := spans[:1]
	for _, s := range spans[1:] {
		if last := out[len(out)-1]; s != last {
			out = append(out, s)
		}
	}
	return out
}

// explain builds a short human-readable summary of which fields matched.
func explain(fields []string) string {
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return "Matched in " + fields[0]
	default:
		return "Matched in " + strings.Join(fields[:len(fields)-1], ", ") +
			" and " + fields[len(fields)-1]
	}
}
