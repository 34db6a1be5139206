package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/az-ai-labs/affixmorph/internal/textcase"
	"github.com/az-ai-labs/affixmorph/tokenizer"
)

const (
	batchSize   = 1024
	maxLineSize = 1 << 20
)

// wordSource yields input words one at a time. It reports false when the
// input is exhausted.
type wordSource func() (string, bool, error)

// lineSource reads one word per line, trimmed and folded. Blank lines are
// skipped.
func lineSource(r io.Reader, fold textcase.Folder) wordSource {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return func() (string, bool, error) {
		for sc.Scan() {
			if w := strings.TrimSpace(sc.Text()); w != "" {
				return fold.Fold(w), true, nil
			}
		}
		if err := sc.Err(); err != nil {
			return "", false, fmt.Errorf("runner: read input: %w", err)
		}
		return "", false, nil
	}
}

// textSource reads running text and yields its words, folded, in order.
func textSource(r io.Reader, fold textcase.Folder) wordSource {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var pending []string
	return func() (string, bool, error) {
		for len(pending) == 0 {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return "", false, fmt.Errorf("runner: read input: %w", err)
				}
				return "", false, nil
			}
			pending = tokenizer.Words(sc.Text())
		}
		w := pending[0]
		pending = pending[1:]
		return fold.Fold(w), true, nil
	}
}

func sliceSource(words []string) wordSource {
	i := 0
	return func() (string, bool, error) {
		if i >= len(words) {
			return "", false, nil
		}
		i++
		return words[i-1], true, nil
	}
}

// process runs fn over the words of src on up to opts.Workers goroutines,
// one batch at a time, and hands the results to emit in input order. It
// returns the number of words processed.
func (r *Runner) process(ctx context.Context, src wordSource, fn func(string) Result, emit func(Result) error) (int, error) {
	batch := make([]string, 0, batchSize)
	results := make([]Result, batchSize)
	count := 0

	flush := func() error {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.opts.Workers)
		for i, w := range batch {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i] = fn(w)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for i := range batch {
			if err := emit(results[i]); err != nil {
				return fmt.Errorf("runner: write output: %w", err)
			}
		}
		count += len(batch)
		batch = batch[:0]
		return nil
	}

	for {
		w, ok, err := src()
		if err != nil {
			return count, err
		}
		if !ok {
			break
		}
		batch = append(batch, w)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return count, err
			}
		}
	}
	if len(batch) > 0 {
		if err := flush(); err != nil {
			return count, err
		}
	}
	return count, nil
}
