// Package item provides the in-memory item store backing the search index.
package item

import (
	"sync"

	dom "github.com/sift-search/sift/internal/domain/item"
	"github.com/sift-search/sift/internal/domain/item/patch"
)

// Store holds indexed items in insertion order.
// All methods are safe for concurrent use; scoring works on snapshots so a
// running search never observes a partially applied mutation.
type Store struct {
	mu    sync.RWMutex
	items []dom.Item
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Add appends an item. Duplicate ids are appended as-is, matching the
// trusted admin flows that feed the index; callers wanting upsert semantics
// remove the old id first.
func (s *Store) Add(it dom.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, it)
}

// Update merges a patch into the first item with the given id.
// Returns false (a silent no-op for callers) when the id is absent.
func (s *Store) Update(id string, p patch.Patch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID() != id {
			continue
		}
		s.items[i] = apply(s.items[i], p)
		return true
	}
	return false
}

// Remove deletes the first item with the given id.
// Returns false when the id is absent; repeated removal is harmless.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a snapshot of all items in insertion order.
func (s *Store) List() []dom.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]dom.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of indexed items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// CountByCategory returns item counts keyed by category.
func (s *Store) CountByCategory() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for i := range s.items {
		counts[s.items[i].Category()]++
	}
	return counts
}

// apply rebuilds an item with the patch's changed fields.
func apply(it dom.Item, p patch.Patch) dom.Item {
	title := it.Title()
	if p.Title() != nil {
		title = *p.Title()
	}
	description := it.Description()
	if p.Description() != nil {
		description = *p.Description()
	}
	content := it.Content()
	if p.Content() != nil {
		content = *p.Content()
	}
	category := it.Category()
	if p.Category() != nil {
		category = *p.Category()
	}
	tags := it.Tags()
	if p.Tags() != nil {
		tags = p.Tags()
	}
	url := it.URL()
	if p.URL() != nil {
		url = *p.URL()
	}
	metadata := it.Metadata()
	if p.Metadata() != nil {
		metadata = p.Metadata()
	}
	weight := it.SearchWeight()
	if p.SearchWeight() != nil {
		weight = *p.SearchWeight()
	}

	return dom.Reconstruct(
		it.ID(), title, description, content, category,
		tags, url, metadata, weight,
	)
}
