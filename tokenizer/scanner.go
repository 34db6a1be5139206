package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// scan is a rune-by-rune state machine over a non-empty s.
func scan(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		start := i

		switch {
		case unicode.IsSpace(r):
			i = consume(s, i, unicode.IsSpace)
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Space})
		case unicode.IsDigit(r):
			i = consume(s, i, unicode.IsDigit)
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Number})
		case unicode.IsLetter(r):
			i = scanWord(s, i)
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Word})
		default:
			i += size
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Other})
		}
	}
	return tokens
}

// scanWord consumes a word starting at a letter. A single hyphen joins two
// alphanumeric runs; an apostrophe joins two letters.
func scanWord(s string, pos int) int {
	i := consume(s, pos, isWordRune)

	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		next := i + size
		if next >= len(s) {
			break
		}
		nr, _ := utf8.DecodeRuneInString(s[next:])

		if r == '-' && (unicode.IsLetter(nr) || unicode.IsDigit(nr)) {
			i = consume(s, next, isWordRune)
			continue
		}
		if isApostrophe(r) && unicode.IsLetter(nr) {
			pr, _ := utf8.DecodeLastRuneInString(s[pos:i])
			if unicode.IsLetter(pr) || unicode.Is(unicode.Mn, pr) {
				i = consume(s, next, isLetterOrMark)
				continue
			}
		}
		break
	}
	return i
}

func consume(s string, pos int, keep func(rune) bool) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !keep(r) {
			break
		}
		pos += size
	}
	return pos
}

// isWordRune accepts letters, digits and combining marks, so decomposed
// text stays in one word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func isLetterOrMark(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '\u2019' || r == '\u02BC'
}
