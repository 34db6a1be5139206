package runner

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/az-ai-labs/affixmorph/morph"
)

// Mismatch is a generated form that does not stem back to its lemma.
type Mismatch struct {
	Lemma string   `json:"lemma" yaml:"lemma"`
	Form  string   `json:"form"  yaml:"form"`
	Stems []string `json:"stems" yaml:"stems"`
}

// Report summarizes a round-trip check.
type Report struct {
	Pairs      int           `json:"pairs"      yaml:"pairs"`
	Lemmas     int           `json:"lemmas"     yaml:"lemmas"`
	Forms      int           `json:"forms"      yaml:"forms"`
	Failures   int           `json:"failures"   yaml:"failures"`
	Elapsed    time.Duration `json:"elapsed_ns" yaml:"elapsed"`
	Mismatches []Mismatch    `json:"mismatches" yaml:"mismatches"`
}

// OK reports whether every form stemmed back to its lemma.
func (rep *Report) OK() bool { return rep.Failures == 0 }

// RoundTrip expands every dictionary word of every pair to the configured
// depth and checks that each form stems back to the word. Both directions
// run over the dictionary extended by sticky expansion.
func (r *Runner) RoundTrip(ctx context.Context) (*Report, error) {
	start := time.Now()
	r.prepareExpanders()

	rep := &Report{Pairs: len(r.pairs), Mismatches: []Mismatch{}}
	var mu sync.Mutex

	for _, p := range r.pairs {
		exp := p.Expander()
		stemmer := morph.NewStemmer(p.Rules, p.ExpandedDictionary())

		fn := func(lemma string) Result {
			forms := exp.Expand(lemma, r.opts.Depth)
			var bad []Mismatch
			for _, f := range forms {
				stems := stemmer.Stem(f)
				if !slices.Contains(stems, lemma) {
					if stems == nil {
						stems = []string{}
					}
					bad = append(bad, Mismatch{Lemma: lemma, Form: f, Stems: stems})
				}
			}
			mu.Lock()
			rep.Forms += len(forms)
			rep.Failures += len(bad)
			rep.Mismatches = append(rep.Mismatches, bad...)
			mu.Unlock()
			return Result{}
		}

		n, err := r.process(ctx, sliceSource(p.ExpandedDictionary().Words()), fn, func(Result) error { return nil })
		rep.Lemmas += n
		if err != nil {
			return nil, err
		}
	}

	slices.SortFunc(rep.Mismatches, func(a, b Mismatch) int {
		if c := cmp.Compare(a.Lemma, b.Lemma); c != 0 {
			return c
		}
		return cmp.Compare(a.Form, b.Form)
	})
	rep.Elapsed = time.Since(start)

	r.log.Info("roundtrip.finished",
		"lemmas", rep.Lemmas,
		"forms", rep.Forms,
		"failures", rep.Failures,
		"elapsed", rep.Elapsed,
	)
	return rep, nil
}
