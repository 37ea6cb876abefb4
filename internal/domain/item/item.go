package item

import (
	"fmt"

	"github.com/sift-search/sift/internal/domain"
)

// MaxIDLength is the maximum allowed item identifier length.
const MaxIDLength = 256

// DefaultSearchWeight is the score multiplier applied when none is configured.
const DefaultSearchWeight = 1.0

// Item is a searchable document (immutable value object).
// Title, description, content, tags and category are matched by the scorer;
// url and metadata are carried through to results untouched.
type Item struct {
	id           string
	title        string
	description  string
	content      string
	category     string
	tags         []string
	url          string
	metadata     map[string]any
	searchWeight float64
}

// New validates and creates an Item.
// ID and title are required. A non-positive searchWeight falls back to the
// default multiplier of 1.
func New(
	id, title, description, content, category string,
	tags []string, url string, metadata map[string]any,
	searchWeight float64,
) (Item, error) {
	if id == "" {
		return Item{}, fmt.Errorf("%w: id is required", domain.ErrInvalidItem)
	}
	if len(id) > MaxIDLength {
		return Item{}, fmt.Errorf("%w: id too long (max %d)", domain.ErrInvalidItem, MaxIDLength)
	}
	if title == "" {
		return Item{}, fmt.Errorf("%w: title is required", domain.ErrInvalidItem)
	}
	if searchWeight <= 0 {
		searchWeight = DefaultSearchWeight
	}

	return Item{
		id:           id,
		title:        title,
		description:  description,
		content:      content,
		category:     category,
		tags:         cloneStrings(tags),
		url:          url,
		metadata:     cloneMetadata(metadata),
		searchWeight: searchWeight,
	}, nil
}

// Reconstruct creates an Item without validation (seed/storage hydration).
func Reconstruct(
	id, title, description, content, category string,
	tags []string, url string, metadata map[string]any,
	searchWeight float64,
) Item {
	if searchWeight <= 0 {
		searchWeight = DefaultSearchWeight
	}
	return Item{
		id: id, title: title, description: description, content: content,
		category: category, tags: tags, url: url, metadata: metadata,
		searchWeight: searchWeight,
	}
}

// ID returns the item identifier.
func (i *Item) ID() string { return i.id }

// Title returns the item title.
func (i *Item) Title() string { return i.title }

// Description returns the item description.
func (i *Item) Description() string { return i.description }

// Content returns the item body text.
func (i *Item) Content() string { return i.content }

// Category returns the single classification tag.
func (i *Item) Category() string { return i.category }

// Tags returns the free-text labels in insertion order.
func (i *Item) Tags() []string { return i.tags }

// URL returns the destination reference (opaque to search).
func (i *Item) URL() string { return i.url }

// Metadata returns the open key-value bag (not searched).
func (i *Item) Metadata() map[string]any { return i.metadata }

// SearchWeight returns the curated importance multiplier (>= 1 by default).
func (i *Item) SearchWeight() float64 { return i.searchWeight }

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func cloneMetadata(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
