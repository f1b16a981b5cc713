// Package stopwords provides the English stopword corpus used by the
// preprocessing pipeline. The list matches the classic 179-entry English
// corpus, including the contraction fragments ("don't", "n't"-family forms),
// and is compiled in so nothing is fetched at run time.
package stopwords

import "sort"

var english = map[string]struct{}{
	// Pronouns
	"i": {}, "me": {}, "my": {}, "myself": {}, "we": {}, "our": {}, "ours": {},
	"ourselves": {}, "you": {}, "you're": {}, "you've": {}, "you'll": {},
	"you'd": {}, "your": {}, "yours": {}, "yourself": {}, "yourselves": {},
	"he": {}, "him": {}, "his": {}, "himself": {}, "she": {}, "she's": {},
	"her": {}, "hers": {}, "herself": {}, "it": {}, "it's": {}, "its": {},
	"itself": {}, "they": {}, "them": {}, "their": {}, "theirs": {},
	"themselves": {},
	// Interrogatives and demonstratives
	"what": {}, "which": {}, "who": {}, "whom": {}, "this": {}, "that": {},
	"that'll": {}, "these": {}, "those": {},
	// Forms of be, have, do
	"am": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "having": {}, "do": {},
	"does": {}, "did": {}, "doing": {},
	// Articles and conjunctions
	"a": {}, "an": {}, "the": {}, "and": {}, "but": {}, "if": {}, "or": {},
	"because": {}, "as": {}, "until": {}, "while": {},
	// Prepositions
	"of": {}, "at": {}, "by": {}, "for": {}, "with": {}, "about": {},
	"against": {}, "between": {}, "into": {}, "through": {}, "during": {},
	"before": {}, "after": {}, "above": {}, "below": {}, "to": {}, "from": {},
	"up": {}, "down": {}, "in": {}, "out": {}, "on": {}, "off": {},
	"over": {}, "under": {},
	// Adverbs and quantifiers
	"again": {}, "further": {}, "then": {}, "once": {}, "here": {},
	"there": {}, "when": {}, "where": {}, "why": {}, "how": {}, "all": {},
	"any": {}, "both": {}, "each": {}, "few": {}, "more": {}, "most": {},
	"other": {}, "some": {}, "such": {}, "no": {}, "nor": {}, "not": {},
	"only": {}, "own": {}, "same": {}, "so": {}, "than": {}, "too": {},
	"very": {},
	// Modals and contraction fragments
	"s": {}, "t": {}, "can": {}, "will": {}, "just": {}, "don": {},
	"don't": {}, "should": {}, "should've": {}, "now": {}, "d": {}, "ll": {},
	"m": {}, "o": {}, "re": {}, "ve": {}, "y": {}, "ain": {}, "aren": {},
	"aren't": {}, "couldn": {}, "couldn't": {}, "didn": {}, "didn't": {},
	"doesn": {}, "doesn't": {}, "hadn": {}, "hadn't": {}, "hasn": {},
	"hasn't": {}, "haven": {}, "haven't": {}, "isn": {}, "isn't": {},
	"ma": {}, "mightn": {}, "mightn't": {}, "mustn": {}, "mustn't": {},
	"needn": {}, "needn't": {}, "shan": {}, "shan't": {}, "shouldn": {},
	"shouldn't": {}, "wasn": {}, "wasn't": {}, "weren": {}, "weren't": {},
	"won": {}, "won't": {}, "wouldn": {}, "wouldn't": {},
}

// IsStopword reports whether the lowercase term is an English stopword.
func IsStopword(term string) bool {
	_, ok := english[term]
	return ok
}

// Set returns a copy of the stopword set keyed by lowercase term.
func Set() map[string]struct{} {
	set := make(map[string]struct{}, len(english))
	for w := range english {
		set[w] = struct{}{}
	}
	return set
}

// Words returns the stopword corpus in sorted order.
func Words() []string {
	words := make([]string, 0, len(english))
	for w := range english {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
