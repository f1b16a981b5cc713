// Package lemma provides dictionary-based lemmatization: reduction of an
// inflected word form to its canonical base form ("studies" to "study").
// Unlike stemming the result is always a dictionary word.
package lemma

import (
	"fmt"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Lemmatizer maps inflected word forms to their dictionary lemma.
type Lemmatizer struct {
	inner *golem.Lemmatizer
}

// NewEnglish builds a Lemmatizer over the compiled-in English lemma
// dictionary. The dictionary is parsed once per call, so callers should
// construct a single Lemmatizer and reuse it.
func NewEnglish() (*Lemmatizer, error) {
	g, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("loading english lemma dictionary: %w", err)
	}
	return &Lemmatizer{inner: g}, nil
}

// Lemma returns the canonical base form of word. Words not present in the
// dictionary are returned unchanged.
func (l *Lemmatizer) Lemma(word string) string {
	return l.inner.Lemma(word)
}

// InDict reports whether word is a known form in the dictionary.
func (l *Lemmatizer) InDict(word string) bool {
	return l.inner.InDict(word)
}
