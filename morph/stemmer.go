package morph

import (
	"sort"

	"github.com/az-ai-labs/affixmorph/affix"
)

const (
	// maxWordBytes bounds the input Stem reduces; a longer word can only
	// be its own lemma.
	maxWordBytes = 256

	// maxReduceDepth bounds the length of a single reduction chain.
	maxReduceDepth = 32

	// maxReducePaths bounds the paths one ReduceAffix call creates, root
	// included. Chains still open when it is reached end there.
	maxReducePaths = 4096
)

// Lexicon answers the membership questions the stemmer asks.
// *dictionary.Dictionary implements it.
type Lexicon interface {
	Contains(word string) bool
	ContainsFlag(word, flag string) bool
	ContainsFlags(word, pfxFlag, sfxFlag string) bool
}

// Stemmer reduces surface forms to dictionary lemmas.
//
// A Stemmer holds no per-call state; one instance may be shared between
// goroutines once its Lexicon is no longer mutated.
type Stemmer struct {
	rules     *affix.RuleSet
	lex       Lexicon
	checkDict bool
}

// NewStemmer returns a stemmer over rs and lex.
func NewStemmer(rs *affix.RuleSet, lex Lexicon) *Stemmer {
	return &Stemmer{rules: rs, lex: lex, checkDict: true}
}

// SetCheckAgainstDictionary switches dictionary validation of candidates.
// With it off every reduction is reported as a stem, which helps guess the
// rules of an unknown word. It must not be called concurrently with Stem.
func (s *Stemmer) SetCheckAgainstDictionary(check bool) {
	s.checkDict = check
}

// Stem returns the sorted lemmas of word. An unknown word yields nil.
func (s *Stemmer) Stem(word string) []string {
	if word == "" {
		return nil
	}
	if len(word) > maxWordBytes {
		if s.contains(word) {
			return []string{word}
		}
		return nil
	}

	sfx := s.ReduceAffix(word, affix.Suffix)
	pfx := s.ReduceAffix(word, affix.Prefix)

	stems := make(map[string]struct{})
	for _, paths := range [][]*Path{sfx, pfx} {
		for _, p := range paths {
			if p.Rule == nil {
				if s.contains(word) {
					stems[p.Word] = struct{}{}
				}
				continue
			}
			if s.containsFlag(p.Word, p.Rule.Flag()) {
				stems[reapplySticky(p.Word, p)] = struct{}{}
			}
		}
	}

	for _, sp := range sfx {
		if sp.Rule == nil {
			continue
		}
		for _, pp := range pfx {
			if pp.Rule == nil {
				continue
			}
			stem, ok := combine(sp, pp)
			if !ok || !s.acceptPair(stem, sp.Rule, pp.Rule) {
				continue
			}
			stems[reapplySticky(reapplySticky(stem, sp), pp)] = struct{}{}
		}
	}

	return sortedKeys(stems)
}

// acceptPair reports whether stem carries both flags in one reading, or
// one flag whose rule declares the other as its continuation.
func (s *Stemmer) acceptPair(stem string, sr, pr *affix.Rule) bool {
	if s.containsFlags(stem, pr.Flag(), sr.Flag()) {
		return true
	}
	return s.containsFlag(stem, sr.Flag()) && sr.HasExpansionFlag(pr.Flag()) ||
		s.containsFlag(stem, pr.Flag()) && pr.HasExpansionFlag(sr.Flag())
}

// ReduceAffix returns every reduction chain of word on one side, breadth
// first. The first element is always the root path holding word itself.
// Candidates are not checked against the dictionary. At most
// maxReducePaths paths are returned.
func (s *Stemmer) ReduceAffix(word string, kind affix.Kind) []*Path {
	root := newRoot(word)
	all := []*Path{root}

	// First step: every leading or trailing substring is a possible affix.
	runes := []rune(word)
	var frontier []*Path
	for i := 0; i <= len(runes); i++ {
		var a string
		if kind == affix.Prefix {
			a = string(runes[:i])
		} else {
			a = string(runes[len(runes)-i:])
		}
		for _, r := range s.rules.RulesByAppend(kind, a) {
			if r.Invalid() {
				continue
			}
			if stem, ok := r.StemWord(word); ok {
				frontier = append(frontier, root.extend(stem, r))
			}
		}
	}

	// Further steps follow the reduction edges of the rule just undone.
	budget := maxReducePaths - 1
	for len(frontier) > 0 && budget > 0 {
		if len(frontier) > budget {
			frontier = frontier[:budget]
		}
		budget -= len(frontier)
		all = append(all, frontier...)

		var next []*Path
		for _, p := range frontier {
			if p.depth >= maxReduceDepth || len(next) >= budget {
				continue
			}
			for _, r := range p.Rule.ReductionRules().All() {
				if r.Kind() != kind {
					continue
				}
				stem, ok := r.StemWord(p.Word)
				if !ok || p.seen(stem, r) {
					continue
				}
				next = append(next, p.extend(stem, r))
			}
		}
		frontier = next
	}
	return all
}

// Process implements Processor.
func (s *Stemmer) Process(word string) []string {
	return s.Stem(word)
}

func (s *Stemmer) contains(word string) bool {
	return !s.checkDict || s.lex.Contains(word)
}

func (s *Stemmer) containsFlag(word, flag string) bool {
	return !s.checkDict || s.lex.ContainsFlag(word, flag)
}

func (s *Stemmer) containsFlags(word, pfxFlag, sfxFlag string) bool {
	return !s.checkDict || s.lex.ContainsFlags(word, pfxFlag, sfxFlag)
}

func sortedKeys(m map[string]struct{}) []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
