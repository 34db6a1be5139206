// Package tokenizer splits running text into tokens with byte offsets so
// that the words of a sentence can be stemmed one by one.
//
// The invariant s[t.Start:t.End] == t.Text holds for every token, and
// concatenating all token texts reconstructs the input.
//
// All functions are safe for concurrent use.
package tokenizer

import "fmt"

// TokenType classifies a token.
type TokenType int

const (
	Word   TokenType = iota // letters, with inner hyphens, apostrophes and combining marks
	Number                  // a run of digits
	Space                   // contiguous whitespace
	Other                   // punctuation, symbols and anything else, one rune each
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Space:
		return "Space"
	case Other:
		return "Other"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is a span of the input text.
type Token struct {
	Text  string
	Start int // byte offset, inclusive
	End   int // byte offset, exclusive
	Type  TokenType
}

// String returns a debug representation, e.g. Word("psa")[0:3].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// Tokens splits s into tokens of every type.
func Tokens(s string) []Token {
	if s == "" {
		return nil
	}
	return scan(s)
}

// Words returns the texts of the Word tokens of s.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	var words []string
	for _, t := range scan(s) {
		if t.Type == Word {
			words = append(words, t.Text)
		}
	}
	return words
}
