package sift

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domitem "github.com/sift-search/sift/internal/domain/item"
	"github.com/sift-search/sift/internal/domain/item/patch"
	"github.com/sift-search/sift/internal/domain/search/query"
	"github.com/sift-search/sift/internal/domain/search/sortmode"
	"github.com/sift-search/sift/internal/logger"
	"github.com/sift-search/sift/internal/metrics"
	itemrepo "github.com/sift-search/sift/internal/repository/item"
	"github.com/sift-search/sift/internal/usecase/autocomplete"
	searchuc "github.com/sift-search/sift/internal/usecase/search"
	"github.com/sift-search/sift/internal/usecase/suggest"
	"github.com/sift-search/sift/internal/usecase/telemetry"
)

// Engine is the in-process search engine. One instance owns one index and
// its telemetry; build it at the composition root and share by reference.
type Engine struct {
	store     *itemrepo.Store
	search    *searchuc.Service
	auto      *autocomplete.Service
	telemetry *telemetry.Service
	logger    *zap.Logger
}

// New creates an engine, seeding the index from WithItems if given.
func New(opts ...Option) (*Engine, error) {
	var cfg engineConfig
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	store := itemrepo.New()
	tel := telemetry.New(store)

	sugg := suggest.New(tel, suggest.Options{
		Dictionary:    cfg.dictionary,
		Completions:   cfg.completions,
		Popular:       cfg.popular,
		CorrectionMin: cfg.correctionMin,
		CorrectionMax: cfg.correctionMax,
	})

	weights := searchuc.DefaultWeights()
	if cfg.weights != nil {
		applyWeights(&weights, *cfg.weights)
	}
	params := searchuc.DefaultParams()
	if cfg.fuzzyThreshold > 0 {
		params.FuzzyThreshold = cfg.fuzzyThreshold
	}

	e := &Engine{
		store:     store,
		search:    searchuc.New(store, sugg, tel, weights, params),
		auto:      autocomplete.New(store, tel),
		telemetry: tel,
		logger:    cfg.logger,
	}

	for _, it := range cfg.items {
		if err := e.AddItem(it); err != nil {
			return nil, fmt.Errorf("seed item %q: %w", it.ID, err)
		}
	}
	return e, nil
}

// Search runs the full pipeline for one query. Empty query text yields an
// empty response; it is not an error.
func (e *Engine) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	q, err := query.New(
		req.Query, req.Category, req.Tags,
		sortmode.Mode(req.SortBy), req.Limit, req.Offset,
	)
	if err != nil {
		return nil, err
	}

	ctx = logger.ContextWithLogger(ctx, e.logger)
	out := e.search.Search(ctx, &q)

	resp := &SearchResponse{
		Results:     make([]SearchResult, 0, len(out.Results)),
		Suggestions: make([]Suggestion, 0, len(out.Suggestions)),
		Stats: QueryStats{
			Total:  out.Total,
			TimeMS: out.Elapsed.Milliseconds(),
		},
	}
	for i := range out.Results {
		resp.Results = append(resp.Results, resultFromDomain(&out.Results[i]))
	}
	for i := range out.Suggestions {
		s := &out.Suggestions[i]
		resp.Suggestions = append(resp.Suggestions, Suggestion{
			Text:     s.Text(),
			Score:    s.Score(),
			Kind:     SuggestionKind(s.Kind()),
			Original: s.Original(),
		})
	}
	return resp, nil
}

// AddItem appends an item to the index. Duplicate ids are appended, not
// deduplicated; remove the old id first for upsert behavior.
func (e *Engine) AddItem(it Item) error {
	dom, err := domitem.New(
		it.ID, it.Title, it.Description, it.Content, it.Category,
		it.Tags, it.URL, it.Metadata, it.SearchWeight,
	)
	if err != nil {
		return err
	}
	e.store.Add(dom)
	metrics.IndexItems.Set(float64(e.store.Len()))
	e.logger.Debug("item added", zap.String("id", it.ID))
	return nil
}

// UpdateItem merges changed fields into the item with the given id.
// An unknown id is a silent no-op.
func (e *Engine) UpdateItem(id string, p ItemPatch) error {
	dom, err := patch.New(
		p.Title, p.Description, p.Content, p.Category,
		p.Tags, p.URL, p.Metadata, p.SearchWeight,
	)
	if err != nil {
		return fmt.Errorf("invalid patch: %w", err)
	}
	if !e.store.Update(id, dom) {
		e.logger.Debug("update of unknown item ignored", zap.String("id", id))
	}
	return nil
}

// RemoveItem deletes the item with the given id. Removing an absent id is
// harmless.
func (e *Engine) RemoveItem(id string) {
	if e.store.Remove(id) {
		metrics.IndexItems.Set(float64(e.store.Len()))
		e.logger.Debug("item removed", zap.String("id", id))
	}
}

// Autocomplete returns up to limit live-typing candidates containing the
// query: titles first, then tags, then past queries. Queries shorter than
// two characters return nothing; limit <= 0 means 5.
func (e *Engine) Autocomplete(q string, limit int) []string {
	return e.auto.Autocomplete(q, limit)
}

// Stats returns the accumulated query analytics.
func (e *Engine) Stats() SearchStats {
	st := e.telemetry.Stats()
	return SearchStats{
		TotalQueries:       st.TotalQueries,
		AvgResponseTime:    st.AvgResponseTime,
		AvgResponseTimeMS:  float64(st.AvgResponseTime.Microseconds()) / 1000,
		TopQueries:         countsFromDomain(st.TopQueries),
		TopNoResultQueries: countsFromDomain(st.TopNoResultQueries),
		ItemsPerCategory:   st.ItemsPerCategory,
	}
}

// ClearHistory resets all telemetry stores. The index is untouched.
func (e *Engine) ClearHistory() {
	e.telemetry.Clear()
	e.logger.Debug("telemetry cleared")
}

// Highlight renders spans over text by wrapping each range with open and
// close markers. Overlapping spans are merged before rendering.
func Highlight(text string, spans []Span, open, close string) string {
	if len(spans) == 0 {
		return text
	}
	merged := mergeSpans(spans)
	var b strings.Builder
	prev := 0
	for _, s := range merged {
		if s.Start < prev || s.Start > len(text) || s.End > len(text) {
			continue
		}
		b.WriteString(text[prev:s.Start])
		b.WriteString(open)
		b.WriteString(text[s.Start:s.End])
		b.WriteString(close)
		prev = s.End
	}
	b.WriteString(text[prev:])
	return b.String()
}

// mergeSpans collapses overlapping or touching spans. Input must be sorted
// by start, which engine results guarantee.
func mergeSpans(spans []Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if n := len(out); n > 0 && s.Start <= out[n-1].End {
			if s.End > out[n-1].End {
				out[n-1].End = s.End
			}
			continue
		}
		out = append(out, s)
	}
	return out
}

func applyWeights(dst *searchuc.Weights, src FieldWeights) {
	if src.Title > 0 {
		dst.Title = src.Title
	}
	if src.Description > 0 {
		dst.Description = src.Description
	}
	if src.Content > 0 {
		dst.Content = src.Content
	}
	if src.Tags > 0 {
		dst.Tags = src.Tags
	}
	if src.Category > 0 {
		dst.Category = src.Category
	}
}
