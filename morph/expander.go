package morph

import (
	"sync"

	"github.com/az-ai-labs/affixmorph/affix"
	"github.com/az-ai-labs/affixmorph/dictionary"
)

// Expander generates surface forms of dictionary lemmas.
//
// Before its first expansion the Expander adds, once, every word that a
// sticky rule derives from a dictionary word as a new dictionary entry.
// That pass mutates the shared dictionary: run ExpandStickyRules before
// sharing the dictionary between goroutines. Expand is safe for concurrent
// use afterwards.
type Expander struct {
	rules  *affix.RuleSet
	dict   *dictionary.Dictionary
	sticky sync.Once
}

// NewExpander returns an expander over rs and dict.
func NewExpander(rs *affix.RuleSet, dict *dictionary.Dictionary) *Expander {
	return &Expander{rules: rs, dict: dict}
}

// frontier is one unit of work: rules still to try on word, and whether
// the suffix or prefix side of word came from an invalid rule.
type frontier struct {
	word       string
	rules      []*affix.Rule
	invalidSfx bool
	invalidPfx bool
}

// forms collects generated words. A word marked valid once stays valid.
type forms struct {
	valid   map[string]struct{}
	invalid map[string]struct{}
}

func (f *forms) add(word string, invalid bool) {
	if invalid {
		if _, ok := f.valid[word]; !ok {
			f.invalid[word] = struct{}{}
		}
		return
	}
	delete(f.invalid, word)
	f.valid[word] = struct{}{}
}

// Expand returns the sorted valid forms of word reachable by at most depth
// rule applications, word itself included. An unknown word yields nil.
func (e *Expander) Expand(word string, depth int) []string {
	e.ExpandStickyRules()

	if !e.dict.Contains(word) {
		return nil
	}

	f := &forms{
		valid:   map[string]struct{}{word: {}},
		invalid: make(map[string]struct{}),
	}

	var current []frontier
	for _, reading := range e.dict.AllFlags(word) {
		var rules []*affix.Rule
		for _, flag := range reading.Sorted() {
			rules = append(rules, e.rules.RulesByFlag(flag)...)
		}
		current = append(current, frontier{word: word, rules: rules})
	}

	for step := 0; step < depth && len(current) > 0; step++ {
		var next []frontier
		for _, n := range current {
			next = append(next, e.step(n, f)...)
		}
		current = next
	}
	return sortedKeys(f.valid)
}

// step applies every rule of n once and returns the follow-up work.
func (e *Expander) step(n frontier, f *forms) []frontier {
	var next []frontier

	for _, sr := range n.rules {
		if sr.Kind() != affix.Suffix || sr.Sticky() {
			continue
		}
		sw, ok := sr.Apply(n.word)
		if !ok {
			continue
		}
		f.add(sw, sr.Invalid() || n.invalidPfx)

		sfxNext := sr.ExpansionRules().All()
		if len(sfxNext) > 0 {
			next = append(next, frontier{word: sw, rules: sfxNext, invalidSfx: sr.Invalid(), invalidPfx: n.invalidPfx})
		}
		if !sr.CrossProduct() {
			continue
		}

		for _, pr := range n.rules {
			if pr.Kind() != affix.Prefix || !pr.CrossProduct() || pr.Sticky() {
				continue
			}
			cw, ok := pr.Apply(sw)
			if !ok {
				continue
			}
			f.add(cw, pr.Invalid() || sr.Invalid())

			follow := unionRules(sfxNext, pr.ExpansionRules().All())
			if len(follow) > 0 {
				next = append(next, frontier{word: cw, rules: follow, invalidSfx: sr.Invalid(), invalidPfx: pr.Invalid()})
			}
		}
	}

	for _, pr := range n.rules {
		if pr.Kind() != affix.Prefix || pr.Sticky() {
			continue
		}
		pw, ok := pr.Apply(n.word)
		if !ok {
			continue
		}
		f.add(pw, pr.Invalid() || n.invalidSfx)

		if pfxNext := pr.ExpansionRules().All(); len(pfxNext) > 0 {
			next = append(next, frontier{word: pw, rules: pfxNext, invalidSfx: n.invalidSfx, invalidPfx: pr.Invalid()})
		}
	}
	return next
}

// ExpandStickyRules adds the words derived by sticky rules to the
// dictionary. Only the first call does any work.
//
// A derived word keeps the flags of its source reading that govern the
// other affix side (or no rules at all), plus the sticky rule's own
// continuation flags.
func (e *Expander) ExpandStickyRules() {
	e.sticky.Do(e.expandSticky)
}

func (e *Expander) expandSticky() {
	type entry struct {
		word  string
		flags affix.FlagSet
	}

	var derived []entry
	for _, w := range e.dict.Words() {
		for _, reading := range e.dict.AllFlags(w) {
			for _, flag := range reading.Sorted() {
				for _, r := range e.rules.RulesByFlag(flag) {
					if !r.Sticky() {
						continue
					}
					nw, ok := r.Apply(w)
					if !ok {
						continue
					}
					derived = append(derived, entry{word: nw, flags: e.inheritFlags(reading, r)})
				}
			}
		}
	}

	for _, d := range derived {
		e.dict.Add(d.word, d.flags)
	}
}

func (e *Expander) inheritFlags(reading affix.FlagSet, r *affix.Rule) affix.FlagSet {
	out := make(affix.FlagSet)
	for f := range reading {
		if k, ok := e.rules.RuleTypeByFlag(f); !ok || k != r.Kind() {
			out[f] = struct{}{}
		}
	}
	for f := range r.ExpansionFlags() {
		if f != r.Flag() {
			out[f] = struct{}{}
		}
	}
	return out
}

func unionRules(a, b []*affix.Rule) []*affix.Rule {
	if len(b) == 0 {
		return a
	}
	if len(a) == 0 {
		return b
	}
	seen := make(map[*affix.Rule]struct{}, len(a)+len(b))
	out := make([]*affix.Rule, 0, len(a)+len(b))
	for _, rs := range [][]*affix.Rule{a, b} {
		for _, r := range rs {
			if _, ok := seen[r]; !ok {
				seen[r] = struct{}{}
				out = append(out, r)
			}
		}
	}
	return out
}
