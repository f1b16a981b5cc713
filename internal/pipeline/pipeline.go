// Package pipeline composes the preprocessing stages into a single fixed
// flow: tokenize, lowercase, keep alphabetic terms, drop stopwords, then
// stem and lemmatize the surviving terms and segment the original text into
// sentences.
package pipeline

import (
	"GoTextPrep/internal/analysis"
	"GoTextPrep/internal/filter"
	"GoTextPrep/internal/lemma"
	"GoTextPrep/internal/segment"
	"GoTextPrep/internal/stem"
	"GoTextPrep/internal/stopwords"
)

// Options configures a Pipeline.
type Options struct {
	// Analyzer selects the tokenizer by registry name: "classic",
	// "standard", "whitespace", or "keyword".
	Analyzer string

	// Stemmer selects the stemming algorithm: "porter" or "snowball".
	Stemmer string
}

// DefaultOptions returns Options for the classic preprocessing flow.
func DefaultOptions() Options {
	return Options{Analyzer: "classic", Stemmer: "porter"}
}

// Result holds the output of one preprocessing pass. Stemmed and Lemmas are
// parallel to Filtered: entry i is the stem respectively lemma of Filtered[i].
type Result struct {
	Tokens    []string `json:"tokens"`
	Filtered  []string `json:"filtered"`
	Stemmed   []string `json:"stemmed"`
	Lemmas    []string `json:"lemmas"`
	Sentences []string `json:"sentences"`
}

// Pipeline runs the fixed preprocessing flow. Safe for concurrent use once
// constructed.
type Pipeline struct {
	analyzer   analysis.Analyzer
	filters    filter.Chain
	stemmer    stem.Stemmer
	lemmatizer *lemma.Lemmatizer
	segmenter  *segment.Segmenter
}

// New builds a Pipeline with the English stopword set, lemma dictionary, and
// sentence model. A zero Options value gets the defaults.
func New(opts Options) (*Pipeline, error) {
	defaults := DefaultOptions()
	if opts.Analyzer == "" {
		opts.Analyzer = defaults.Analyzer
	}
	if opts.Stemmer == "" {
		opts.Stemmer = defaults.Stemmer
	}
	analyzer, err := analysis.NewRegistry().Get(opts.Analyzer)
	if err != nil {
		return nil, err
	}
	stemmer, err := stem.New(opts.Stemmer)
	if err != nil {
		return nil, err
	}
	lemmatizer, err := lemma.NewEnglish()
	if err != nil {
		return nil, err
	}
	segmenter, err := segment.NewEnglish()
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		analyzer: analyzer,
		filters: filter.Chain{
			filter.Lowercase{},
			filter.Alpha{},
			filter.NewStop(stopwords.Set()),
		},
		stemmer:    stemmer,
		lemmatizer: lemmatizer,
		segmenter:  segmenter,
	}, nil
}

// Process runs text through the full flow and returns all intermediate and
// final forms.
func (p *Pipeline) Process(text string) Result {
	tokens := p.analyzer.Analyze(text)
	filtered := p.filters.Filter(tokens)

	res := Result{
		Tokens:    analysis.Terms(tokens),
		Filtered:  analysis.Terms(filtered),
		Sentences: p.segmenter.Sentences(text),
	}
	if len(filtered) > 0 {
		res.Stemmed = make([]string, len(filtered))
		res.Lemmas = make([]string, len(filtered))
		for i, tok := range filtered {
			res.Stemmed[i] = p.stemmer.Stem(tok.Term)
			res.Lemmas[i] = p.lemmatizer.Lemma(tok.Term)
		}
	}
	return res
}
