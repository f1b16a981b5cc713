package analysis

import (
	"unicode"
	"unicode/utf8"
)

// ClassicAnalyzer tokenizes text into words, numbers, and punctuation,
// preserving case. Letter runs become Word tokens (an apostrophe between
// letters stays inside the word), digit runs become Number tokens, and every
// other printable rune becomes its own Punct token. Whitespace separates
// tokens and is never emitted.
type ClassicAnalyzer struct{}

// NewClassicAnalyzer creates a new ClassicAnalyzer.
func NewClassicAnalyzer() *ClassicAnalyzer {
	return &ClassicAnalyzer{}
}

// Analyze tokenizes the input and returns tokens with positions and byte offsets.
func (a *ClassicAnalyzer) Analyze(text string) []Token {
	var tokens []Token
	pos := 0
	i := 0

	emit := func(start, end int, kind TokenKind) {
		tokens = append(tokens, Token{
			Term:      text[start:end],
			Kind:      kind,
			Position:  pos,
			StartByte: start,
			EndByte:   end,
		})
		pos++
	}

	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch {
		case unicode.IsSpace(r) || !unicode.IsPrint(r):
			i += size

		case unicode.IsLetter(r):
			start := i
			i += size
			for i < len(text) {
				r, size = utf8.DecodeRuneInString(text[i:])
				if unicode.IsLetter(r) {
					i += size
					continue
				}
				if isApostrophe(r) && followedByLetter(text, i+size) {
					i += size
					continue
				}
				break
			}
			emit(start, i, Word)

		case unicode.IsDigit(r):
			start := i
			i += size
			for i < len(text) {
				r, size = utf8.DecodeRuneInString(text[i:])
				if !unicode.IsDigit(r) {
					break
				}
				i += size
			}
			emit(start, i, Number)

		default:
			emit(i, i+size, Punct)
			i += size
		}
	}

	return tokens
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

// followedByLetter reports whether the rune starting at byte offset i is a letter.
func followedByLetter(text string, i int) bool {
	if i >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return unicode.IsLetter(r)
}
