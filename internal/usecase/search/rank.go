package search

import (
	"sort"
	"time"

	"github.com/sift-search/sift/internal/domain/search/result"
	"github.com/sift-search/sift/internal/domain/search/sortmode"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// metadataDateKey is the metadata field consulted by the date sort mode.
const metadataDateKey = "date"

var titleCollator = collate.New(language.English, collate.IgnoreCase)

// rank orders results in place by the given mode. All sorts are stable so
// equal keys keep their original relative order.
func rank(results []result.Result, mode sortmode.Mode) {
	switch mode {
	case sortmode.Date:
		sort.SliceStable(results, func(i, j int) bool {
			return metadataDate(&results[i]).After(metadataDate(&results[j]))
		})
	case sortmode.Popularity:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Item().SearchWeight() > results[j].Item().SearchWeight()
		})
	case sortmode.Alphabetical:
		sort.SliceStable(results, func(i, j int) bool {
			return titleCollator.CompareString(results[i].Item().Title(), results[j].Item().Title()) < 0
		})
	default: // relevance
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score() > results[j].Score()
		})
	}
}

// paginate slices results by offset and limit. An offset past the end
// yields an empty page, never an error.
func paginate(results []result.Result, limit, offset int) []result.Result {
	if offset >= len(results) {
		return nil
	}
	results = results[offset:]
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// metadataDate extracts a sortable time from the item's metadata date
// field. Items without a parseable date sort as the zero time, i.e. last.
func metadataDate(r *result.Result) time.Time {
	v, ok := r.Item().Metadata()[metadataDateKey]
	if !ok {
		return time.Time{}
	}
	switch d := v.(type) {
	case time.Time:
		return d
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, d); err == nil {
				return t
			}
		}
	case int64:
		return time.Unix(d, 0)
	case int:
		return time.Unix(int64(d), 0)
	case float64:
		return time.Unix(int64(d), 0)
	}
	return time.Time{}
}
