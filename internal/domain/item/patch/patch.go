package patch

import "fmt"

// Patch is a partial item update. Nil fields are unchanged.
// Tags and metadata replace the whole field when provided.
type Patch struct {
	title        *string
	description  *string
	content      *string
	category     *string
	tags         []string
	url          *string
	metadata     map[string]any
	searchWeight *float64
}

// New validates and creates a Patch. At least one field must be provided.
func New(
	title, description, content, category *string,
	tags []string, url *string, metadata map[string]any,
	searchWeight *float64,
) (Patch, error) {
	if title == nil && description == nil && content == nil && category == nil &&
		tags == nil && url == nil && metadata == nil && searchWeight == nil {
		return Patch{}, fmt.Errorf("at least one field must be provided")
	}
	if title != nil && *title == "" {
		return Patch{}, fmt.Errorf("title cannot be cleared")
	}
	if searchWeight != nil && *searchWeight <= 0 {
		return Patch{}, fmt.Errorf("search weight must be positive")
	}
	return Patch{
		title: title, description: description, content: content,
		category: category, tags: tags, url: url, metadata: metadata,
		searchWeight: searchWeight,
	}, nil
}

// Title returns the new title, or nil if unchanged.
func (p Patch) Title() *string { return p.title }

// Description returns the new description, or nil if unchanged.
func (p Patch) Description() *string { return p.description }

// Content returns the new body text, or nil if unchanged.
func (p Patch) Content() *string { return p.content }

// Category returns the new category, or nil if unchanged.
func (p Patch) Category() *string { return p.category }

// Tags returns the replacement tag list, or nil if unchanged.
func (p Patch) Tags() []string { return p.tags }

// URL returns the new url, or nil if unchanged.
func (p Patch) URL() *string { return p.url }

// Metadata returns the replacement metadata bag, or nil if unchanged.
func (p Patch) Metadata() map[string]any { return p.metadata }

// SearchWeight returns the new weight, or nil if unchanged.
func (p Patch) SearchWeight() *float64 { return p.searchWeight }
