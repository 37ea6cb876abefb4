package patch

import "testing"

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestNew(t *testing.T) {
	p, err := New(strPtr("New Title"), nil, nil, nil, nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.Title() == nil || *p.Title() != "New Title" {
		t.Errorf("Title() = %v", p.Title())
	}
	if p.Description() != nil {
		t.Errorf("Description() = %v, want nil", p.Description())
	}
}

func TestNew_Empty(t *testing.T) {
	if _, err := New(nil, nil, nil, nil, nil, nil, nil, nil); err == nil {
		t.Error("New() with no fields should fail")
	}
}

func TestNew_ClearedTitle(t *testing.T) {
	if _, err := New(strPtr(""), nil, nil, nil, nil, nil, nil, nil); err == nil {
		t.Error("New() with empty title should fail")
	}
}

func TestNew_NonPositiveWeight(t *testing.T) {
	if _, err := New(nil, nil, nil, nil, nil, nil, nil, f64Ptr(0)); err == nil {
		t.Error("New() with zero weight should fail")
	}
}

func TestNew_TagsOnly(t *testing.T) {
	p, err := New(nil, nil, nil, nil, []string{"a", "b"}, nil, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(p.Tags()) != 2 {
		t.Errorf("Tags() = %v", p.Tags())
	}
}
