// Package filter provides token stream filters applied after tokenization.
// Filters never modify their input slice; rewritten tokens keep their
// original positions and byte offsets so downstream consumers can still map
// a token back to its source span.
package filter

import (
	"strings"
	"unicode"

	"GoTextPrep/internal/analysis"
)

// TokenFilter transforms a token stream.
type TokenFilter interface {
	Filter(tokens []analysis.Token) []analysis.Token
}

// Lowercase rewrites every term to lowercase.
type Lowercase struct{}

// Filter returns a new token slice with lowercased terms.
func (Lowercase) Filter(tokens []analysis.Token) []analysis.Token {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]analysis.Token, len(tokens))
	for i, tok := range tokens {
		tok.Term = strings.ToLower(tok.Term)
		out[i] = tok
	}
	return out
}

// Alpha keeps only tokens whose term consists entirely of letters.
// Terms with digits, punctuation, or internal apostrophes are dropped.
type Alpha struct{}

// Filter returns the tokens whose terms are purely alphabetic.
func (Alpha) Filter(tokens []analysis.Token) []analysis.Token {
	var out []analysis.Token
	for _, tok := range tokens {
		if isAlpha(tok.Term) {
			out = append(out, tok)
		}
	}
	return out
}

func isAlpha(term string) bool {
	if term == "" {
		return false
	}
	for _, r := range term {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Stop drops tokens whose term is in the stopword set. Matching is exact,
// so run Lowercase first when the set is lowercase.
type Stop struct {
	set map[string]struct{}
}

// NewStop creates a Stop filter over the given set.
func NewStop(set map[string]struct{}) Stop {
	return Stop{set: set}
}

// Filter returns the tokens whose terms are not in the stopword set.
func (f Stop) Filter(tokens []analysis.Token) []analysis.Token {
	var out []analysis.Token
	for _, tok := range tokens {
		if _, ok := f.set[tok.Term]; !ok {
			out = append(out, tok)
		}
	}
	return out
}

// Chain applies filters in order.
type Chain []TokenFilter

// Filter runs the token stream through every filter in the chain.
func (c Chain) Filter(tokens []analysis.Token) []analysis.Token {
	for _, f := range c {
		tokens = f.Filter(tokens)
	}
	return tokens
}
