// Package sift is an embeddable fuzzy search engine for small in-memory
// corpora: multi-field weighted scoring with typo tolerance, ranked
// suggestions, autocomplete and query analytics.
//
// The engine is an explicit object built once at the composition root and
// passed to consumers; there is no package-global state.
//
//	engine, _ := sift.New(
//	    sift.WithItems(items),
//	    sift.WithDictionary([]string{"engel", "garcia", "gomez", "g-maxing"}),
//	)
//	resp, _ := engine.Search(ctx, sift.SearchRequest{Query: "engel garcia"})
//	for _, r := range resp.Results {
//	    fmt.Println(r.Item.Title, r.Score)
//	}
//
// Scoring combines exact-phrase, whole-word, substring and edit-distance
// signals per field (title, description, content, tags, category), each
// with its own weight, and multiplies by the item's curated search weight.
// Items that score zero are never returned.
package sift
