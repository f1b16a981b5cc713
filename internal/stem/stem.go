// Package stem provides suffix-stripping stemmers. Stemming is a crude
// reduction to a root form; the root is not guaranteed to be a dictionary
// word ("ponies" stems to "poni").
package stem

import (
	"fmt"

	"github.com/kljensen/snowball/english"
	"github.com/reiver/go-porterstemmer"
)

// Stemmer reduces a word to its root form.
type Stemmer interface {
	Stem(word string) string
}

// Porter implements the classic Porter algorithm.
type Porter struct{}

// Stem returns the Porter stem of word.
func (Porter) Stem(word string) string {
	if word == "" {
		return ""
	}
	return porterstemmer.StemString(word)
}

// Snowball implements the English Snowball (Porter2) algorithm.
type Snowball struct{}

// Stem returns the Snowball stem of word.
func (Snowball) Stem(word string) string {
	if word == "" {
		return ""
	}
	return english.Stem(word, true)
}

// New returns the stemmer registered under the given name.
func New(name string) (Stemmer, error) {
	switch name {
	case "porter":
		return Porter{}, nil
	case "snowball":
		return Snowball{}, nil
	default:
		return nil, fmt.Errorf("unknown stemmer: %q", name)
	}
}
