package sift

import (
	domitem "github.com/sift-search/sift/internal/domain/item"
	"github.com/sift-search/sift/internal/domain/search/result"
	"github.com/sift-search/sift/internal/usecase/telemetry"
)

// Highlight markers used for the convenience rendered fields; structured
// spans remain the source of truth for renderers with their own markup.
const (
	emOpen  = "<em>"
	emClose = "</em>"
)

func itemFromDomain(it *domitem.Item) Item {
	return Item{
		ID:           it.ID(),
		Title:        it.Title(),
		Description:  it.Description(),
		Content:      it.Content(),
		Category:     it.Category(),
		Tags:         it.Tags(),
		URL:          it.URL(),
		Metadata:     it.Metadata(),
		SearchWeight: it.SearchWeight(),
	}
}

func resultFromDomain(r *result.Result) SearchResult {
	it := itemFromDomain(r.Item())

	matches := make([]FieldMatch, 0, len(r.Matches()))
	for _, m := range r.Matches() {
		matches = append(matches, FieldMatch{
			Field: m.Field(),
			Text:  m.Text(),
			Spans: spansFromDomain(m.Spans()),
			Score: m.Score(),
		})
	}

	titleSpans := spansFromDomain(r.TitleSpans())
	descSpans := spansFromDomain(r.DescriptionSpans())

	return SearchResult{
		Item:                   it,
		Score:                  r.Score(),
		Matches:                matches,
		TitleSpans:             titleSpans,
		DescriptionSpans:       descSpans,
		HighlightedTitle:       Highlight(it.Title, titleSpans, emOpen, emClose),
		HighlightedDescription: Highlight(it.Description, descSpans, emOpen, emClose),
		Explanation:            r.Explanation(),
	}
}

func spansFromDomain(in []result.Span) []Span {
	if in == nil {
		return nil
	}
	out := make([]Span, len(in))
	for i, s := range in {
		out[i] = Span{Start: s.Start, End: s.End}
	}
	return out
}

func countsFromDomain(in []telemetry.QueryCount) []QueryCount {
	out := make([]QueryCount, len(in))
	for i, c := range in {
		out[i] = QueryCount{Query: c.Query, Count: c.Count}
	}
	return out
}
