package morph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/affixmorph/affix"
	"github.com/az-ai-labs/affixmorph/data"
	"github.com/az-ai-labs/affixmorph/dictionary"
)

func load(t testing.TB, aff, dic string) (*affix.RuleSet, *dictionary.Dictionary) {
	t.Helper()
	rs, err := affix.Parse(strings.NewReader(aff))
	require.NoError(t, err)
	d, err := dictionary.Load(strings.NewReader(dic), rs, dictionary.Options{})
	require.NoError(t, err)
	return rs, d
}

// sampleStemmer stems over the sticky-rule sample without sticky expansion.
func sampleStemmer(t testing.TB) *Stemmer {
	t.Helper()
	rs, d := load(t, data.SampleAffix, data.SampleDict)
	return NewStemmer(rs, d)
}

func expansionExpander(t testing.TB) *Expander {
	t.Helper()
	rs, d := load(t, data.ExpansionAffix, data.ExpansionDict)
	e := NewExpander(rs, d)
	e.ExpandStickyRules()
	return e
}

func pathWords(paths []*Path) []string {
	seen := make(map[string]struct{})
	for _, p := range paths {
		seen[p.Word] = struct{}{}
	}
	return sortedKeys(seen)
}
