package analysis

// TokenKind classifies a token produced by an analyzer.
type TokenKind int

const (
	// Word is a run of letters, possibly with internal apostrophes.
	Word TokenKind = iota
	// Number is a run of decimal digits.
	Number
	// Punct is a single punctuation or symbol rune.
	Punct
)

// String returns the lowercase name of the kind.
func (k TokenKind) String() string {
	switch k {
	case Word:
		return "word"
	case Number:
		return "number"
	case Punct:
		return "punct"
	default:
		return "unknown"
	}
}

// Token represents a single token produced by an analyzer.
type Token struct {
	Term      string
	Kind      TokenKind
	Position  int
	StartByte int
	EndByte   int
}

// Analyzer processes text into a stream of tokens.
// Implementations MUST be safe for concurrent use.
type Analyzer interface {
	// Analyze tokenizes the input text and returns tokens with positions.
	Analyze(text string) []Token
}

// Terms extracts the term strings of a token slice, in order.
func Terms(tokens []Token) []string {
	if len(tokens) == 0 {
		return nil
	}
	terms := make([]string, len(tokens))
	for i, tok := range tokens {
		terms[i] = tok.Term
	}
	return terms
}
