package suggest

import (
	"strings"
	"testing"

	"github.com/sift-search/sift/internal/domain/search/suggestion"
	"github.com/sift-search/sift/internal/usecase/telemetry"
)

type stubHistory struct {
	top []telemetry.QueryCount
}

func (s *stubHistory) TopQueries(n int) []telemetry.QueryCount {
	if len(s.top) > n {
		return s.top[:n]
	}
	return s.top
}

func texts(out []suggestion.Suggestion) []string {
	res := make([]string, 0, len(out))
	for i := range out {
		res = append(res, out[i].Text())
	}
	return res
}

func findKind(out []suggestion.Suggestion, kind suggestion.Kind) []suggestion.Suggestion {
	var res []suggestion.Suggestion
	for _, sg := range out {
		if sg.Kind() == kind {
			res = append(res, sg)
		}
	}
	return res
}

func TestSuggestEmptyQuery(t *testing.T) {
	svc := New(&stubHistory{}, Options{Dictionary: []string{"engel"}})
	if out := svc.Suggest("", true); out != nil {
		t.Errorf("Suggest(empty) = %v, want nil", out)
	}
}

func TestSuggestCorrection(t *testing.T) {
	svc := New(&stubHistory{}, Options{Dictionary: []string{"engel", "garcia", "gomez"}})

	out := svc.Suggest("engle garcia", false)
	corrections := findKind(out, suggestion.Correction)
	if len(corrections) == 0 {
		t.Fatalf("no corrections in %v", texts(out))
	}
	found := false
	for _, c := range corrections {
		if c.Text() == "engel garcia" {
			found = true
			if c.Original() != "engle garcia" {
				t.Errorf("Original = %q, want the input query", c.Original())
			}
		}
	}
	if !found {
		t.Errorf("corrections %v missing %q", texts(corrections), "engel garcia")
	}
}

func TestSuggestNoCorrectionForExactTerm(t *testing.T) {
	svc := New(&stubHistory{}, Options{Dictionary: []string{"engel"}})
	// An exact dictionary hit needs no correction.
	if out := findKind(svc.Suggest("engel", false), suggestion.Correction); len(out) != 0 {
		t.Errorf("corrections for exact term: %v", texts(out))
	}
}

func TestSuggestShortTokensSkipped(t *testing.T) {
	svc := New(&stubHistory{}, Options{Dictionary: []string{"abc"}})
	// Two-character tokens never correct, even near a dictionary term.
	if out := findKind(svc.Suggest("ab", false), suggestion.Correction); len(out) != 0 {
		t.Errorf("corrections for short token: %v", texts(out))
	}
}

func TestSuggestCompletion(t *testing.T) {
	svc := New(&stubHistory{}, Options{
		Completions: []string{"G-Maxing protocol", "g-maxing diet", "unrelated phrase"},
	})

	out := svc.Suggest("g-max", false)
	completions := findKind(out, suggestion.Completion)
	if len(completions) != 2 {
		t.Fatalf("completions = %v, want 2 entries", texts(completions))
	}
	for _, c := range completions {
		if !strings.HasPrefix(c.Text(), "g-max") {
			t.Errorf("completion %q does not extend the query", c.Text())
		}
		if c.Score() != completionScore {
			t.Errorf("completion score = %v, want %v", c.Score(), float64(completionScore))
		}
	}
}

func TestSuggestCompletionExcludesQueryItself(t *testing.T) {
	svc := New(&stubHistory{}, Options{Completions: []string{"g-maxing"}})
	if out := findKind(svc.Suggest("g-maxing", false), suggestion.Completion); len(out) != 0 {
		t.Errorf("query completed to itself: %v", texts(out))
	}
}

func TestSuggestSimilarFromHistory(t *testing.T) {
	svc := New(&stubHistory{top: []telemetry.QueryCount{
		{Query: "engel garcia gomez", Count: 50},
		{Query: "something else entirely", Count: 40},
		{Query: "garcia coaching", Count: 10},
	}}, Options{})

	out := svc.Suggest("garcia", false)
	similar := findKind(out, suggestion.Similar)
	if len(similar) != 2 {
		t.Fatalf("similar = %v, want 2 entries", texts(similar))
	}
	// Higher frequency wins for comparable overlap.
	if similar[0].Text() != "engel garcia gomez" {
		t.Errorf("top similar = %q, want the most frequent overlap", similar[0].Text())
	}
	if similar[0].Score() <= similar[1].Score() {
		t.Errorf("scores not descending: %v then %v", similar[0].Score(), similar[1].Score())
	}
}

func TestSuggestSimilarExcludesSameQuery(t *testing.T) {
	svc := New(&stubHistory{top: []telemetry.QueryCount{
		{Query: "garcia", Count: 100},
	}}, Options{})
	if out := svc.Suggest("garcia", false); len(out) != 0 {
		t.Errorf("query suggested itself: %v", texts(out))
	}
}

func TestSuggestPopularFallback(t *testing.T) {
	svc := New(&stubHistory{}, Options{Popular: []string{"G-Maxing", "Coaching"}})

	if out := svc.Suggest("zzzzz", false); len(out) != 0 {
		t.Fatalf("popular offered despite results: %v", texts(out))
	}

	out := svc.Suggest("zzzzz", true)
	if len(out) != 2 {
		t.Fatalf("popular fallback = %v, want 2 entries", texts(out))
	}
	for _, sg := range out {
		if sg.Kind() != suggestion.Similar {
			t.Errorf("popular suggestion kind = %q, want %q", sg.Kind(), suggestion.Similar)
		}
		if sg.Text() != strings.ToLower(sg.Text()) {
			t.Errorf("popular suggestion %q not lowercased", sg.Text())
		}
		if sg.Score() != popularScore {
			t.Errorf("popular score = %v, want %v", sg.Score(), float64(popularScore))
		}
	}
}

func TestSuggestDedupeAndOrder(t *testing.T) {
	// "garcia" appears both as a popular fallback and in history; the
	// higher-scored history entry must win and appear once.
	svc := New(&stubHistory{top: []telemetry.QueryCount{
		{Query: "garcia gomez", Count: 200},
	}}, Options{Popular: []string{"garcia gomez"}})

	out := svc.Suggest("gomez", true)
	if len(out) != 1 {
		t.Fatalf("Suggest = %v, want one deduplicated entry", texts(out))
	}
	if out[0].Score() <= popularScore {
		t.Errorf("kept score = %v, want the history score above %v", out[0].Score(), float64(popularScore))
	}
}

func TestSuggestCap(t *testing.T) {
	dict := []string{
		"gomez", "gomes", "gomex", "gomej", "gomek",
		"gomel", "gomen", "gomep", "gomer", "gomet",
	}
	svc := New(&stubHistory{}, Options{Dictionary: dict, Popular: []string{"extra one", "extra two"}})

	out := svc.Suggest("gomez garcia", true)
	if len(out) > MaxSuggestions {
		t.Errorf("len = %d, want at most %d", len(out), MaxSuggestions)
	}
}

func TestSuggestScoresDescending(t *testing.T) {
	svc := New(&stubHistory{top: []telemetry.QueryCount{
		{Query: "engel garcia gomez", Count: 30},
	}}, Options{
		Dictionary:  []string{"engel"},
		Completions: []string{"engle method"},
		Popular:     []string{"popular query"},
	})

	out := svc.Suggest("engle", true)
	for i := 1; i < len(out); i++ {
		if out[i].Score() > out[i-1].Score() {
			t.Fatalf("scores not descending at %d: %v", i, out)
		}
	}
}
