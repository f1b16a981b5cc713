package stem

import "testing"

func TestPorter(t *testing.T) {
	s := Porter{}

	tests := []struct {
		input string
		want  string
	}{
		// Examples from Porter's published vocabulary.
		{"caresses", "caress"},
		{"ponies", "poni"},
		{"cats", "cat"},
		{"feed", "feed"},
		{"agreed", "agre"},
		{"motoring", "motor"},
		{"running", "run"},
		{"knitting", "knit"},
		{"sing", "sing"},
		{"happy", "happi"},
		{"natural", "natur"},
		{"language", "languag"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := s.Stem(tt.input); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSnowball(t *testing.T) {
	s := Snowball{}

	tests := []struct {
		input string
		want  string
	}{
		{"running", "run"},
		{"cats", "cat"},
		{"jumped", "jump"},
		{"knitting", "knit"},
		{"ponies", "poni"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := s.Stem(tt.input); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{"porter", "snowball"} {
		s, err := New(name)
		if err != nil {
			t.Errorf("New(%q): %v", name, err)
		}
		if s == nil {
			t.Errorf("New(%q) returned nil stemmer", name)
		}
	}

	if _, err := New("lovins"); err == nil {
		t.Error("New of unknown stemmer should fail")
	}
}

func TestStemmersDoNotPanicOnOddInput(t *testing.T) {
	inputs := []string{"a", "'", "n't", "café", "123", "ALLCAPS"}
	for _, s := range []Stemmer{Porter{}, Snowball{}} {
		for _, in := range inputs {
			_ = s.Stem(in)
		}
	}
}
