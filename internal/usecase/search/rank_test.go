package search

import (
	"testing"
	"time"

	"github.com/sift-search/sift/internal/domain/item"
	"github.com/sift-search/sift/internal/domain/search/result"
	"github.com/sift-search/sift/internal/domain/search/sortmode"
)

func makeResult(t *testing.T, id, title string, score, weight float64, metadata map[string]any) result.Result {
	t.Helper()
	it, err := item.New(id, title, "", "", "", nil, "", metadata, weight)
	if err != nil {
		t.Fatalf("item.New: %v", err)
	}
	return result.New(it, score, nil, nil, nil, "")
}

func ids(results []result.Result) []string {
	out := make([]string, 0, len(results))
	for i := range results {
		out = append(out, results[i].Item().ID())
	}
	return out
}

func assertOrder(t *testing.T, results []result.Result, want ...string) {
	t.Helper()
	got := ids(results)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestRankRelevance(t *testing.T) {
	results := []result.Result{
		makeResult(t, "low", "Low", 1, 1, nil),
		makeResult(t, "high", "High", 9, 1, nil),
		makeResult(t, "mid", "Mid", 4, 1, nil),
	}
	rank(results, sortmode.Relevance)
	assertOrder(t, results, "high", "mid", "low")
}

func TestRankRelevanceStableTies(t *testing.T) {
	results := []result.Result{
		makeResult(t, "a", "A", 5, 1, nil),
		makeResult(t, "b", "B", 5, 1, nil),
		makeResult(t, "c", "C", 5, 1, nil),
	}
	rank(results, sortmode.Relevance)
	assertOrder(t, results, "a", "b", "c")
}

func TestRankDate(t *testing.T) {
	results := []result.Result{
		makeResult(t, "old", "Old", 1, 1, map[string]any{"date": "2023-01-15"}),
		makeResult(t, "new", "New", 1, 1, map[string]any{"date": "2025-06-01T12:00:00Z"}),
		makeResult(t, "none", "None", 1, 1, nil),
		makeResult(t, "epoch", "Epoch", 1, 1, map[string]any{"date": int64(1700000000)}),
	}
	rank(results, sortmode.Date)
	// Items without a parseable date sort last.
	assertOrder(t, results, "new", "epoch", "old", "none")
}

func TestRankPopularity(t *testing.T) {
	results := []result.Result{
		makeResult(t, "light", "Light", 9, 1, nil),
		makeResult(t, "heavy", "Heavy", 1, 10, nil),
		makeResult(t, "mid", "Mid", 5, 2.5, nil),
	}
	rank(results, sortmode.Popularity)
	assertOrder(t, results, "heavy", "mid", "light")
}

func TestRankAlphabetical(t *testing.T) {
	results := []result.Result{
		makeResult(t, "z", "zebra", 1, 1, nil),
		makeResult(t, "a", "Apple", 1, 1, nil),
		makeResult(t, "b", "banana", 1, 1, nil),
	}
	rank(results, sortmode.Alphabetical)
	// Case-insensitive: "Apple" sorts before "banana".
	assertOrder(t, results, "a", "b", "z")
}

func TestPaginate(t *testing.T) {
	results := []result.Result{
		makeResult(t, "1", "One", 5, 1, nil),
		makeResult(t, "2", "Two", 4, 1, nil),
		makeResult(t, "3", "Three", 3, 1, nil),
		makeResult(t, "4", "Four", 2, 1, nil),
	}

	page := paginate(results, 2, 0)
	assertOrder(t, page, "1", "2")

	page = paginate(results, 2, 2)
	assertOrder(t, page, "3", "4")

	page = paginate(results, 10, 3)
	assertOrder(t, page, "4")

	if page = paginate(results, 2, 4); page != nil {
		t.Errorf("paginate past end = %v, want nil", page)
	}
	if page = paginate(results, 2, 100); page != nil {
		t.Errorf("paginate far past end = %v, want nil", page)
	}
}

func TestMetadataDateFormats(t *testing.T) {
	want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name  string
		value any
	}{
		{"time", want},
		{"rfc3339", "2024-03-10T00:00:00Z"},
		{"dateonly", "2024-03-10"},
		{"unix int64", want.Unix()},
		{"unix int", int(want.Unix())},
		{"unix float64", float64(want.Unix())},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := makeResult(t, "x", "X", 1, 1, map[string]any{"date": tc.value})
			got := metadataDate(&r)
			if !got.Equal(want) {
				t.Errorf("metadataDate(%v) = %v, want %v", tc.value, got, want)
			}
		})
	}

	r := makeResult(t, "x", "X", 1, 1, map[string]any{"date": "not a date"})
	if got := metadataDate(&r); !got.IsZero() {
		t.Errorf("metadataDate(garbage) = %v, want zero", got)
	}
}
