package analysis

import (
	"testing"
)

func FuzzClassicAnalyzer(f *testing.F) {
	f.Add("Hello World")
	f.Add("")
	f.Add("  spaces  everywhere  ")
	f.Add("café résumé naïve")
	f.Add("don't stop, won't stop!")
	f.Add("(NLP) v2.0 -- draft")
	f.Add("123 456 789")

	f.Fuzz(func(t *testing.T, input string) {
		a := NewClassicAnalyzer()
		// Should not panic.
		tokens := a.Analyze(input)

		for i, tok := range tokens {
			if tok.Position != i {
				t.Errorf("token %d position = %d, want %d", i, tok.Position, i)
			}
			if tok.StartByte < 0 || tok.EndByte > len(input) || tok.StartByte > tok.EndByte {
				t.Errorf("invalid byte offsets: start=%d end=%d input_len=%d", tok.StartByte, tok.EndByte, len(input))
			}
			if tok.Term == "" {
				t.Error("empty term produced")
			}
			if got := input[tok.StartByte:tok.EndByte]; got != tok.Term {
				t.Errorf("token %d: input[%d:%d] = %q, want %q", i, tok.StartByte, tok.EndByte, got, tok.Term)
			}
		}
	})
}

func FuzzStandardAnalyzer(f *testing.F) {
	f.Add("Hello World")
	f.Add("")
	f.Add("  spaces  everywhere  ")
	f.Add("café résumé naïve")
	f.Add("hello-world foo_bar")
	f.Add("123 456 789")

	f.Fuzz(func(t *testing.T, input string) {
		a := NewStandardAnalyzer()
		// Should not panic.
		tokens := a.Analyze(input)

		for i, tok := range tokens {
			if tok.Position != i {
				t.Errorf("token %d position = %d, want %d", i, tok.Position, i)
			}
			if tok.StartByte < 0 || tok.EndByte > len(input) || tok.StartByte > tok.EndByte {
				t.Errorf("invalid byte offsets: start=%d end=%d input_len=%d", tok.StartByte, tok.EndByte, len(input))
			}
			if tok.Term == "" {
				t.Error("empty term produced")
			}
		}
	})
}
