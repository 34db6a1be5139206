package runner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/az-ai-labs/affixmorph/internal/textcase"
)

// Separator joins a lemma and one of its forms in expansion output and in
// exception files.
const Separator = ":"

// Exceptions is a set of "lemma:form" pairs suppressed from expansion output.
type Exceptions map[string]struct{}

// LoadExceptions reads the named exceptions file. An empty path yields an
// empty set.
func LoadExceptions(path string, fold textcase.Folder) (Exceptions, error) {
	if path == "" {
		return Exceptions{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("runner: open exceptions: %w", err)
	}
	defer f.Close()

	return ParseExceptions(f, fold)
}

// ParseExceptions reads one "lemma:form" pair per line. Blank lines are
// ignored.
func ParseExceptions(r io.Reader, fold textcase.Folder) (Exceptions, error) {
	ex := make(Exceptions)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		ex[fold.Fold(line)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("runner: read exceptions: %w", err)
	}
	return ex, nil
}

// Has reports whether form is suppressed for lemma.
func (e Exceptions) Has(lemma, form string) bool {
	_, ok := e[lemma+Separator+form]
	return ok
}

// filter returns forms without the suppressed ones. forms is not modified.
func (e Exceptions) filter(lemma string, forms []string) []string {
	if len(e) == 0 {
		return forms
	}
	out := make([]string, 0, len(forms))
	for _, f := range forms {
		if !e.Has(lemma, f) {
			out = append(out, f)
		}
	}
	return out
}
