package affix

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind is the side of the word a rule operates on.
type Kind int

const (
	Prefix Kind = iota
	Suffix
)

// String returns the grammar keyword for the kind.
func (k Kind) String() string {
	switch k {
	case Prefix:
		return "PFX"
	case Suffix:
		return "SFX"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a grammar keyword to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "PFX":
		return Prefix, true
	case "SFX":
		return Suffix, true
	}
	return 0, false
}

// RuleMap indexes rules by an affix string.
type RuleMap = Multimap[string, *Rule]

// Rule is one affix transformation. Its fields are fixed at construction;
// only the chaining edges are filled in later, once, by the owning RuleSet.
type Rule struct {
	kind         Kind
	flag         string
	remove       string
	append       string
	removeLen    int
	appendLen    int
	cond         string
	re           *regexp.Regexp
	crossProduct bool
	sticky       bool
	invalid      bool
	expFlags     FlagSet

	expansion       RuleMap
	expansionNoLoop RuleMap
	reduction       RuleMap
}

// RuleSpec holds the parsed fields of one rule line.
type RuleSpec struct {
	Kind           Kind
	Flag           string
	Remove         string
	Append         string
	Condition      string
	CrossProduct   bool
	ExpansionFlags FlagSet
	Properties     []string
}

// NewRule compiles spec into a rule. The condition is anchored at the end
// of the word for suffixes and at the start for prefixes.
func NewRule(spec RuleSpec) (*Rule, error) {
	if spec.Kind != Prefix && spec.Kind != Suffix {
		return nil, fmt.Errorf("affix: invalid rule kind %d", int(spec.Kind))
	}

	pattern := "^(?:" + spec.Condition + ")"
	if spec.Kind == Suffix {
		pattern = "(?:" + spec.Condition + ")$"
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("affix: condition %q: %w", spec.Condition, err)
	}

	r := &Rule{
		kind:         spec.Kind,
		flag:         spec.Flag,
		remove:       spec.Remove,
		append:       spec.Append,
		removeLen:    runeLen(spec.Remove),
		appendLen:    runeLen(spec.Append),
		cond:         spec.Condition,
		re:           re,
		crossProduct: spec.CrossProduct,
		expFlags:     spec.ExpansionFlags,
	}
	if r.expFlags == nil {
		r.expFlags = FlagSet{}
	}
	for _, p := range spec.Properties {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "sticky":
			r.sticky = true
		case "invalid":
			r.invalid = true
		}
	}
	return r, nil
}

// Apply produces the affixed form of word. It reports false when the
// rule's condition does not hold or word is shorter than the removal.
func (r *Rule) Apply(word string) (string, bool) {
	runes := []rune(word)
	if r.removeLen > len(runes) {
		return "", false
	}
	if !r.re.MatchString(word) {
		return "", false
	}
	if r.kind == Suffix {
		return string(runes[:len(runes)-r.removeLen]) + r.append, true
	}
	return r.append + string(runes[r.removeLen:]), true
}

// StemWord undoes the rule on word. The condition is checked against the
// candidate stem, not against word.
func (r *Rule) StemWord(word string) (string, bool) {
	runes := []rune(word)
	if r.appendLen > len(runes) {
		return "", false
	}

	var stem string
	if r.kind == Suffix {
		if !strings.HasSuffix(word, r.append) {
			return "", false
		}
		stem = string(runes[:len(runes)-r.appendLen]) + r.remove
	} else {
		if !strings.HasPrefix(word, r.append) {
			return "", false
		}
		stem = r.remove + string(runes[r.appendLen:])
	}

	if !r.re.MatchString(stem) {
		return "", false
	}
	return stem, true
}

// PossiblyReapply re-applies a sticky rule to word. Non-sticky rules and
// rules that do not apply leave word unchanged.
func (r *Rule) PossiblyReapply(word string) string {
	if !r.sticky {
		return word
	}
	if w, ok := r.Apply(word); ok {
		return w
	}
	return word
}

// Kind reports whether the rule is a prefix or a suffix.
func (r *Rule) Kind() Kind { return r.kind }

// Flag returns the flag the rule is registered under.
func (r *Rule) Flag() string { return r.flag }

// Remove returns the text stripped before appending; "" for a grammar 0.
func (r *Rule) Remove() string { return r.remove }

// Append returns the text added to the word; "" for a grammar 0.
func (r *Rule) Append() string { return r.append }

// RemoveLen is the length of Remove in runes.
func (r *Rule) RemoveLen() int { return r.removeLen }

// AppendLen is the length of Append in runes.
func (r *Rule) AppendLen() int { return r.appendLen }

// Condition returns the unanchored condition pattern.
func (r *Rule) Condition() string { return r.cond }

// CrossProduct reports whether the rule combines with the other side.
func (r *Rule) CrossProduct() bool { return r.crossProduct }

// Sticky reports whether the rule's derivations are lemmas of their own.
func (r *Rule) Sticky() bool { return r.sticky }

// Invalid reports whether the rule's output is not a word by itself.
func (r *Rule) Invalid() bool { return r.invalid }

// ExpansionFlags returns the continuation flags from the rule's append field.
func (r *Rule) ExpansionFlags() FlagSet { return r.expFlags }

// HasExpansionFlag reports whether f may chain after this rule.
func (r *Rule) HasExpansionFlag(f string) bool {
	return r.expFlags.Has(f)
}

// ExpansionRules returns the rules that may fire after this one, keyed by
// their append string.
func (r *Rule) ExpansionRules() *RuleMap { return &r.expansion }

// ExpansionRulesNoLoop is ExpansionRules without the rules sharing this
// rule's flag. It is a diagnostic accessor; expansion and stemming follow
// the full edge sets.
func (r *Rule) ExpansionRulesNoLoop() *RuleMap { return &r.expansionNoLoop }

// ReductionRules returns the rules this one may follow, keyed by their
// append string.
func (r *Rule) ReductionRules() *RuleMap { return &r.reduction }

func (r *Rule) addExpansion(next *Rule) {
	r.expansion.Add(next.append, next)
	if next.flag != r.flag {
		r.expansionNoLoop.Add(next.append, next)
	}
}

func (r *Rule) addReduction(prev *Rule) {
	r.reduction.Add(prev.append, prev)
}

func (r *Rule) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s %s", r.kind, r.flag, orZero(r.remove), orZero(r.append))
	if len(r.expFlags) > 0 {
		b.WriteString("/" + strings.Join(r.expFlags.Sorted(), ""))
	}
	fmt.Fprintf(&b, " %s", r.cond)
	var props []string
	if r.sticky {
		props = append(props, "sticky")
	}
	if r.invalid {
		props = append(props, "invalid")
	}
	if len(props) > 0 {
		b.WriteString(" " + strings.Join(props, ","))
	}
	return b.String()
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

func runeLen(s string) int {
	return len([]rune(s))
}
