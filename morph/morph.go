// Package morph generates and reduces word forms over an affix rule graph.
//
// An Expander walks the graph forward from a lemma and returns every valid
// surface form reachable within a depth. A Stemmer walks it backward from a
// surface form, undoing suffix and prefix chains independently and then
// combining them, and returns the lemmas the dictionary accepts.
//
// Both are closed-world: a word that is neither in the dictionary nor
// reducible to one yields no result, never an error.
package morph

// Processor turns one word into a set of words, sorted.
type Processor interface {
	Process(word string) []string
}

type expandProcessor struct {
	e     *Expander
	depth int
}

// NewExpandProcessor returns a Processor that expands words to depth.
func NewExpandProcessor(e *Expander, depth int) Processor {
	return expandProcessor{e: e, depth: depth}
}

func (p expandProcessor) Process(word string) []string {
	return p.e.Expand(word, p.depth)
}
