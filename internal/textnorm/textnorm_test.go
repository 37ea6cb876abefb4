package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Engel Garcia GOMEZ", "engel garcia gomez"},
		{"punctuation", "g-maxing: the (complete) guide!", "g-maxing the complete guide"},
		{"hyphen kept", "g-max", "g-max"},
		{"collapse spaces", "a   b\t c", "a b c"},
		{"trim", "  hello  ", "hello"},
		{"empty", "", ""},
		{"only punctuation", "?!...", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Engel Garcia Gomez!", "  G-Maxing 101 ", "a  b   c", ""}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Engel  Garcia, Gomez!")
	want := []string{"engel", "garcia", "gomez"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tokenize()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokenize_Empty(t *testing.T) {
	if got := Tokenize("   "); got != nil {
		t.Errorf("Tokenize(whitespace) = %v, want nil", got)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"same", "same", 0},
		{"engel", "engle", 2},
		{"flaw", "lawn", 2},
	}
	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		// Distance is symmetric.
		if got := Levenshtein(tt.b, tt.a); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("", ""); got != 0 {
		t.Errorf("Similarity of empty strings = %f, want 0", got)
	}
	if got := Similarity("gomez", "gomez"); got != 1 {
		t.Errorf("Similarity of identical strings = %f, want 1", got)
	}
	// kitten/sitting: (7-3)/7
	want := 4.0 / 7.0
	if got := Similarity("kitten", "sitting"); got != want {
		t.Errorf("Similarity(kitten, sitting) = %f, want %f", got, want)
	}
}
