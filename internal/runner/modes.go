package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"time"
)

// Stem reads one word per line from in and writes the lemmas of each,
// unioned across pairs. Unknown words are written with no lemmas.
func (r *Runner) Stem(ctx context.Context, in io.Reader, out io.Writer) (int, error) {
	return r.stem(ctx, "stem", lineSource(in, r.opts.Fold), out)
}

// StemText is Stem over running text: every word token of in is stemmed
// in order, punctuation and numbers are dropped.
func (r *Runner) StemText(ctx context.Context, in io.Reader, out io.Writer) (int, error) {
	return r.stem(ctx, "stem_text", textSource(in, r.opts.Fold), out)
}

func (r *Runner) stem(ctx context.Context, mode string, src wordSource, out io.Writer) (int, error) {
	start := time.Now()
	w := newResultWriter(out, r.opts.Format, styleStem)

	count, err := r.process(ctx, src, r.stemWord, w.write)
	if ferr := w.flush(); err == nil && ferr != nil {
		err = fmt.Errorf("runner: write output: %w", ferr)
	}
	if err != nil {
		return count, err
	}
	r.done(mode, start, count)
	return count, nil
}

func (r *Runner) stemWord(word string) Result {
	set := make(map[string]struct{})
	for _, p := range r.pairs {
		for _, s := range p.Stem(word) {
			set[s] = struct{}{}
		}
	}
	return Result{Word: word, Forms: sortedSet(set)}
}

// Expand reads one lemma per line from in and writes its forms, unioned
// across pairs, minus the exceptions. Lemmas with no forms are omitted.
func (r *Runner) Expand(ctx context.Context, in io.Reader, out io.Writer) (int, error) {
	start := time.Now()
	r.prepareExpanders()
	w := newResultWriter(out, r.opts.Format, styleExpand)

	count, err := r.process(ctx, lineSource(in, r.opts.Fold), r.expandWord, skipEmpty(w.write))
	if ferr := w.flush(); err == nil && ferr != nil {
		err = fmt.Errorf("runner: write output: %w", ferr)
	}
	if err != nil {
		return count, err
	}
	r.done("expand", start, count)
	return count, nil
}

func (r *Runner) expandWord(word string) Result {
	set := make(map[string]struct{})
	for _, p := range r.pairs {
		for _, f := range p.Expander().Expand(word, r.opts.Depth) {
			set[f] = struct{}{}
		}
	}
	return Result{Word: word, Forms: r.opts.Exceptions.filter(word, sortedSet(set))}
}

// ExpandAll expands every word of every pair's dictionary, sticky
// derivations included, pair by pair.
func (r *Runner) ExpandAll(ctx context.Context, out io.Writer) (int, error) {
	start := time.Now()
	r.prepareExpanders()
	w := newResultWriter(out, r.opts.Format, styleExpand)

	total := 0
	for _, p := range r.pairs {
		exp := p.Expander()
		fn := func(word string) Result {
			return Result{Word: word, Forms: r.opts.Exceptions.filter(word, exp.Expand(word, r.opts.Depth))}
		}
		count, err := r.process(ctx, sliceSource(p.ExpandedDictionary().Words()), fn, skipEmpty(w.write))
		total += count
		if err != nil {
			_ = w.flush()
			return total, err
		}
	}
	if err := w.flush(); err != nil {
		return total, fmt.Errorf("runner: write output: %w", err)
	}
	r.done("expandall", start, total)
	return total, nil
}

// WordList writes the words of every pair's dictionary after sticky
// expansion, one per line, pair by pair.
func (r *Runner) WordList(out io.Writer) (int, error) {
	start := time.Now()
	r.prepareExpanders()
	bw := bufio.NewWriter(out)

	total := 0
	for _, p := range r.pairs {
		words := p.ExpandedDictionary().Words()
		for _, word := range words {
			if _, err := bw.WriteString(word + "\n"); err != nil {
				return total, fmt.Errorf("runner: write output: %w", err)
			}
		}
		total += len(words)
	}
	if err := bw.Flush(); err != nil {
		return total, fmt.Errorf("runner: write output: %w", err)
	}
	r.done("wordlist", start, total)
	return total, nil
}

// ExpandDict dumps every pair's dictionary after sticky expansion in
// dictionary file format.
func (r *Runner) ExpandDict(out io.Writer) (int, error) {
	start := time.Now()
	r.prepareExpanders()

	total := 0
	for _, p := range r.pairs {
		n, err := p.ExpandedDictionary().Dump(out, p.Rules.FlagMode())
		total += n
		if err != nil {
			return total, opError("runner.expanddict", p.DictPath, err)
		}
	}
	r.done("expanddict", start, total)
	return total, nil
}

func skipEmpty(emit func(Result) error) func(Result) error {
	return func(res Result) error {
		if len(res.Forms) == 0 {
			return nil
		}
		return emit(res)
	}
}

func sortedSet(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
