package runner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/affixmorph/affix"
	"github.com/az-ai-labs/affixmorph/data"
	"github.com/az-ai-labs/affixmorph/dictionary"
	"github.com/az-ai-labs/affixmorph/internal/config"
)

func newPair(t *testing.T, aff, dic string) *Pair {
	t.Helper()
	rs, err := affix.Parse(strings.NewReader(aff))
	require.NoError(t, err)
	d, err := dictionary.Load(strings.NewReader(dic), rs, dictionary.Options{})
	require.NoError(t, err)
	p, err := NewPair(rs, d, 100)
	require.NoError(t, err)
	return p
}

func expansionRunner(t *testing.T, opts Options) *Runner {
	t.Helper()
	return New([]*Pair{newPair(t, data.ExpansionAffix, data.ExpansionDict)}, opts)
}

func sampleRunner(t *testing.T, opts Options) *Runner {
	t.Helper()
	return New([]*Pair{newPair(t, data.SampleAffix, data.SampleDict)}, opts)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// fixtureConfig writes the expansion and sample fixtures to a temp dir and
// returns a valid configuration pairing them.
func fixtureConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Dictionaries: []string{
			writeFile(t, dir, "expansion.dic", data.ExpansionDict),
			writeFile(t, dir, "sample.dic", data.SampleDict),
		},
		Affixes: []string{
			writeFile(t, dir, "expansion.aff", data.ExpansionAffix),
			writeFile(t, dir, "sample.aff", data.SampleAffix),
		},
		Depth:         1,
		Normalization: config.NormalizationNFC,
		Language:      "und",
		Workers:       2,
		CacheSize:     16,
		Format:        config.FormatText,
		Log:           config.LogConfig{Level: "info", Format: "text"},
	}
}
