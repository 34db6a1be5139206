// Package textcase folds words from grammar, dictionary and input text to
// a single comparable form: Unicode NFC, and optionally lower case using
// the case rules of a language.
//
// All functions are safe for concurrent use.
package textcase

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Folder describes how text is folded before it reaches the engine.
// The zero value returns its input unchanged.
type Folder struct {
	Lowercase bool
	Normalize bool
	Lang      language.Tag
}

// Enabled reports whether Fold can change its input.
func (f Folder) Enabled() bool {
	return f.Lowercase || f.Normalize
}

// Fold applies NFC composition first, then lower-casing.
func (f Folder) Fold(s string) string {
	if f.Normalize {
		s = NFC(s)
	}
	if f.Lowercase {
		s = Lower(s, f.Lang)
	}
	return s
}

// Lower returns s lower-cased with the rules of tag. language.Und selects
// the language-neutral mapping.
func Lower(s string, tag language.Tag) string {
	// cases.Caser keeps state between calls, so one is built per call.
	return cases.Lower(tag).String(s)
}

// ParseLanguage parses a BCP 47 tag. An empty string yields language.Und.
func ParseLanguage(s string) (language.Tag, error) {
	if s == "" {
		return language.Und, nil
	}
	return language.Parse(s)
}
