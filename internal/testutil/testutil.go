package testutil

import "testing"

// DemoText is the three-sentence paragraph used by the CLI demo and
// end-to-end tests.
const DemoText = "Natural Language Processing (NLP) is a field that " +
	"combines computer science, artificial intelligence and " +
	"language studies. It helps computers understand, process and " +
	"create human language in a way that makes sense and is useful. " +
	"With the growing amount of text data from social media, " +
	"websites and other sources, NLP is becoming a key tool to gain " +
	"insights and automate tasks like analyzing text or translating " +
	"languages."

// SamplePhrases returns short inputs exercising the tokenizer edge cases:
// punctuation, contractions, digits, unicode, and messy whitespace.
func SamplePhrases() []string {
	return []string{
		"",
		"hello",
		"Hello, world!",
		"The cats are running fast.",
		"(NLP) is everywhere.",
		"don't stop",
		"café résumé naïve",
		"version 2 of 3 things",
		"  spaces   everywhere  ",
	}
}

// AssertStrings fails the test when got and want differ.
func AssertStrings(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

// Contains reports whether items contains s.
func Contains(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}
