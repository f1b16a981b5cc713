package stopwords

import (
	"sort"
	"testing"
)

func TestIsStopword(t *testing.T) {
	tests := []struct {
		term string
		want bool
	}{
		{"the", true},
		{"is", true},
		{"don't", true},
		{"shouldn't", true},
		{"t", true},
		{"language", false},
		{"nlp", false},
		{"", false},
		// Matching is exact: the corpus is lowercase.
		{"The", false},
	}

	for _, tt := range tests {
		if got := IsStopword(tt.term); got != tt.want {
			t.Errorf("IsStopword(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestWords(t *testing.T) {
	words := Words()
	if len(words) != 179 {
		t.Errorf("corpus size = %d, want 179", len(words))
	}
	if !sort.StringsAreSorted(words) {
		t.Error("Words() is not sorted")
	}
	for _, w := range words {
		if !IsStopword(w) {
			t.Errorf("Words() entry %q not reported by IsStopword", w)
		}
	}
}

func TestSet_IsACopy(t *testing.T) {
	set := Set()
	if len(set) != len(Words()) {
		t.Fatalf("Set() size = %d, want %d", len(set), len(Words()))
	}
	delete(set, "the")
	if !IsStopword("the") {
		t.Error("mutating the returned set affected the corpus")
	}
}
