// Package segment provides sentence segmentation backed by a punkt model
// with packaged English training data, so abbreviations like "Dr." or
// "e.g." do not split sentences and no model is downloaded at run time.
package segment

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Segmenter splits text into sentences.
type Segmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewEnglish builds a Segmenter over the packaged English punkt data.
func NewEnglish() (*Segmenter, error) {
	t, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("loading english sentence model: %w", err)
	}
	return &Segmenter{tokenizer: t}, nil
}

// Sentences returns the whitespace-trimmed sentences of text in order.
// Empty input yields nil; text without terminal punctuation is one sentence.
func (s *Segmenter) Sentences(text string) []string {
	var out []string
	for _, sent := range s.tokenizer.Tokenize(text) {
		trimmed := strings.TrimSpace(sent.Text)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
