package morph

import "github.com/az-ai-labs/affixmorph/affix"

// Path is one step of a reduction chain: Word was reached from Previous.Word
// by undoing Rule. The root of a chain holds the surface word and no rule.
//
// removed and added track, in runes, how much of the surface word the
// chain has cut away and how much new material it has put in its place on
// the reduced side; they let a suffix chain and a prefix chain be merged
// without cutting the same characters twice.
type Path struct {
	Word     string
	Rule     *affix.Rule
	Previous *Path

	origLen int
	removed int
	added   int
	depth   int
}

func newRoot(word string) *Path {
	return &Path{Word: word, origLen: runeLen(word)}
}

func (p *Path) extend(stem string, r *affix.Rule) *Path {
	n := runeLen(stem)
	removed := max(p.removed, p.origLen-n+r.RemoveLen())
	return &Path{
		Word:     stem,
		Rule:     r,
		Previous: p,
		origLen:  p.origLen,
		removed:  removed,
		added:    n - p.origLen + removed,
		depth:    p.depth + 1,
	}
}

// rules returns the undone rules, closest to the surface first.
func (p *Path) rules() []*affix.Rule {
	var out []*affix.Rule
	for n := p; n != nil && n.Rule != nil; n = n.Previous {
		out = append(out, n.Rule)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// seen reports whether the chain already passed through word via r.
func (p *Path) seen(word string, r *affix.Rule) bool {
	for n := p; n != nil; n = n.Previous {
		if n.Rule == r && n.Word == word {
			return true
		}
	}
	return false
}

// combine merges a suffix chain and a prefix chain reduced from the same
// surface word. It fails when the chains together remove more than the
// whole word.
func combine(sfx, pfx *Path) (string, bool) {
	if sfx.removed+pfx.removed > sfx.origLen {
		return "", false
	}
	head := []rune(pfx.Word)
	tail := []rune(sfx.Word)
	return string(clampHead(head, pfx.added)) + string(clampTail(tail, pfx.removed)), true
}

func clampHead(r []rune, n int) []rune {
	return r[:min(max(n, 0), len(r))]
}

func clampTail(r []rune, n int) []rune {
	return r[min(max(n, 0), len(r)):]
}

// reapplySticky walks from p towards the surface word and restores every
// sticky rule met until the first non-sticky one.
func reapplySticky(word string, p *Path) string {
	for n := p; n != nil && n.Rule != nil && n.Rule.Sticky(); n = n.Previous {
		word = n.Rule.PossiblyReapply(word)
	}
	return word
}

func runeLen(s string) int {
	return len([]rune(s))
}
