package affix

import (
	"fmt"
	"sort"
	"strings"
)

// FlagMode selects how flag strings are split into individual flags.
type FlagMode int

const (
	FlagASCII FlagMode = iota // one flag per character (default)
	FlagLong                  // two characters per flag
	FlagNum                   // comma-separated numeric tokens
)

var flagModeNames = map[FlagMode]string{
	FlagASCII: "ASCII",
	FlagLong:  "LONG",
	FlagNum:   "NUM",
}

// String returns the grammar keyword for the mode.
func (m FlagMode) String() string {
	if name, ok := flagModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("FlagMode(%d)", int(m))
}

// ParseFlagMode parses the argument of a FLAG directive (case-insensitive).
func ParseFlagMode(s string) (FlagMode, error) {
	for mode, name := range flagModeNames {
		if strings.EqualFold(s, name) {
			return mode, nil
		}
	}
	return FlagASCII, fmt.Errorf("%w: %q", ErrUnknownFlagMode, s)
}

// FlagSet is an unordered set of flags attached to a dictionary reading or
// to a rule's expansion list.
type FlagSet map[string]struct{}

// NewFlagSet returns a set holding flags. Empty flags are skipped.
func NewFlagSet(flags ...string) FlagSet {
	s := make(FlagSet, len(flags))
	for _, f := range flags {
		if f != "" {
			s[f] = struct{}{}
		}
	}
	return s
}

// Has reports whether f is in the set. A nil set holds nothing.
func (s FlagSet) Has(f string) bool {
	_, ok := s[f]
	return ok
}

// Sorted returns the flags in lexical order.
func (s FlagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Format renders the set as a flag string in the given mode, the inverse
// of ExtractFlags.
func (s FlagSet) Format(mode FlagMode) string {
	flags := s.Sorted()
	if mode == FlagNum {
		return strings.Join(flags, ",")
	}
	return strings.Join(flags, "")
}

// ExtractFlags decodes a flag string according to mode. In long mode a
// trailing odd character is ignored.
func ExtractFlags(s string, mode FlagMode) FlagSet {
	out := make(FlagSet)
	switch mode {
	case FlagLong:
		runes := []rune(s)
		for i := 0; i+1 < len(runes); i += 2 {
			out[string(runes[i:i+2])] = struct{}{}
		}
	case FlagNum:
		for _, tok := range strings.Split(s, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				out[tok] = struct{}{}
			}
		}
	default:
		for _, r := range s {
			out[string(r)] = struct{}{}
		}
	}
	return out
}
