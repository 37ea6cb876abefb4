package item

import (
	"errors"
	"testing"

	"github.com/sift-search/sift/internal/domain"
)

func TestNew(t *testing.T) {
	meta := map[string]any{"featured": true}
	it, err := New(
		"p1", "Starter Protocol", "entry bundle", "four weeks", "protocols",
		[]string{"starter"}, "/protocols/p1", meta, 5,
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if it.ID() != "p1" {
		t.Errorf("ID() = %q", it.ID())
	}
	if it.Title() != "Starter Protocol" {
		t.Errorf("Title() = %q", it.Title())
	}
	if it.SearchWeight() != 5 {
		t.Errorf("SearchWeight() = %f", it.SearchWeight())
	}
	if len(it.Tags()) != 1 || it.Tags()[0] != "starter" {
		t.Errorf("Tags() = %v", it.Tags())
	}
}

func TestNew_Defensive(t *testing.T) {
	tags := []string{"a"}
	meta := map[string]any{"k": 1}
	it, err := New("p1", "T", "", "", "", tags, "", meta, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Mutations of caller slices/maps must not reach the item.
	tags[0] = "changed"
	meta["k"] = 2
	if it.Tags()[0] != "a" {
		t.Errorf("Tags() shares caller slice")
	}
	if it.Metadata()["k"] != 1 {
		t.Errorf("Metadata() shares caller map")
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		title string
	}{
		{"missing id", "", "T"},
		{"missing title", "p1", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.id, tt.title, "", "", "", nil, "", nil, 1)
			if !errors.Is(err, domain.ErrInvalidItem) {
				t.Errorf("New() error = %v, want ErrInvalidItem", err)
			}
		})
	}
}

func TestNew_DefaultWeight(t *testing.T) {
	it, err := New("p1", "T", "", "", "", nil, "", nil, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if it.SearchWeight() != DefaultSearchWeight {
		t.Errorf("SearchWeight() = %f, want %f", it.SearchWeight(), DefaultSearchWeight)
	}
}

func TestReconstruct(t *testing.T) {
	it := Reconstruct("p1", "T", "", "", "c", nil, "", nil, -3)
	if it.SearchWeight() != DefaultSearchWeight {
		t.Errorf("SearchWeight() = %f, want default for non-positive input", it.SearchWeight())
	}
	if it.Category() != "c" {
		t.Errorf("Category() = %q", it.Category())
	}
}
