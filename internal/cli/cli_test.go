package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/affixmorph/data"
	"github.com/az-ai-labs/affixmorph/internal/runner"
)

type fixture struct {
	dir          string
	expansionAff string
	expansionDic string
	sampleAff    string
	sampleDic    string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	t.Setenv("AFFIXMORPH_CONFIG", "")
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := t.TempDir()
	return fixture{
		dir:          dir,
		expansionAff: writeFile(t, dir, "expansion.aff", data.ExpansionAffix),
		expansionDic: writeFile(t, dir, "expansion.dic", data.ExpansionDict),
		sampleAff:    writeFile(t, dir, "sample.aff", data.SampleAffix),
		sampleDic:    writeFile(t, dir, "sample.dic", data.SampleDict),
	}
}

func (f fixture) expansion(args ...string) []string {
	return append(args, "-d", f.expansionDic, "-a", f.expansionAff)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestStemCommand(t *testing.T) {
	f := newFixture(t)

	out, _, err := run(t, "psa\nkmáni\npivo\n", f.expansion("stem")...)
	require.NoError(t, err)
	assert.Equal(t, "psa: pes\nkmáni: kmán\npivo:\n", out)
}

func TestStemCommandText(t *testing.T) {
	f := newFixture(t)

	out, _, err := run(t, "Pán viděl psa.\n", f.expansion("stem", "--text")...)
	require.NoError(t, err)
	assert.Equal(t, "Pán:\nviděl:\npsa: pes\n", out)
}

func TestStemCommandLowercase(t *testing.T) {
	f := newFixture(t)

	out, _, err := run(t, "PÁNOVI\n", f.expansion("stem", "-l", "--language", "cs")...)
	require.NoError(t, err)
	assert.Equal(t, "pánovi: pán\n", out)
}

func TestExpandCommand(t *testing.T) {
	f := newFixture(t)

	out, _, err := run(t, "pes\n", f.expansion("expand", "-p", "1")...)
	require.NoError(t, err)
	assert.Equal(t, "pes:maxipes\npes:pes\n", out)
}

func TestExpandCommandExceptions(t *testing.T) {
	f := newFixture(t)
	ex := writeFile(t, f.dir, "exceptions.txt", "pes:maxipes\n")

	out, _, err := run(t, "pes\n", f.expansion("expand", "-p", "1", "-e", ex)...)
	require.NoError(t, err)
	assert.Equal(t, "pes:pes\n", out)
}

func TestExpandCommandPairs(t *testing.T) {
	f := newFixture(t)

	out, _, err := run(t, "bůžek\n",
		"expand", "--depth", "1",
		"-d", f.expansionDic, "-a", f.expansionAff,
		"-d", f.sampleDic, "-a", f.sampleAff,
	)
	require.NoError(t, err)
	assert.Equal(t, "bůžek:bůžek\nbůžek:bůžka\nbůžek:bůžkovi\nbůžek:bůžku\n", out)
}

func TestExpandAllCommandJSON(t *testing.T) {
	f := newFixture(t)

	out, _, err := run(t, "", f.expansion("expandall", "-p", "1", "--format", "json")...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	var res runner.Result
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &res))
	assert.Equal(t, "bůh", res.Word)
	assert.Contains(t, res.Forms, "maxibůh")
}

func TestWordListCommand(t *testing.T) {
	f := newFixture(t)

	out, _, err := run(t, "", "wordlist", "-d", f.sampleDic, "-a", f.sampleAff)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 11)
	assert.Contains(t, out, "bůžek\n")
}

func TestExpandDictCommand(t *testing.T) {
	f := newFixture(t)

	out, _, err := run(t, "", "expanddict", "-d", f.sampleDic, "-a", f.sampleAff)
	require.NoError(t, err)
	assert.Contains(t, out, "bůžek/AABBCCDDP2\n")
	assert.Contains(t, out, "prasopes/XX\n")
}

func TestRoundTripCommand(t *testing.T) {
	f := newFixture(t)

	out, _, err := run(t, "", f.expansion("roundtrip", "-p", "2", "--strict")...)
	require.NoError(t, err)
	assert.Contains(t, out, "lemmas: 7\n")
	assert.Contains(t, out, "failures: 0\n")
}

func TestConfigFile(t *testing.T) {
	f := newFixture(t)
	cfg := writeFile(t, f.dir, "affixmorph.yaml", strings.Join([]string{
		"dictionaries: [\"" + f.expansionDic + "\"]",
		"affixes: [\"" + f.expansionAff + "\"]",
		"depth: 1",
		"format: yaml",
		"",
	}, "\n"))

	out, _, err := run(t, "pes\n", "expand", "-c", cfg)
	require.NoError(t, err)
	assert.Equal(t, "word: pes\nforms:\n    - maxipes\n    - pes\n", out)

	out, _, err = run(t, "pes\n", "expand", "-c", cfg, "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "pes:maxipes\npes:pes\n", out, "flags override the config file")
}

func TestLogging(t *testing.T) {
	f := newFixture(t)

	_, stderr, err := run(t, "psa\n", f.expansion("stem", "--log-format", "json")...)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"pair.loaded"`)
	assert.Contains(t, stderr, `"msg":"mode.finished"`)

	_, stderr, err = run(t, "psa\n", f.expansion("stem", "--log-level", "error")...)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestCommandErrors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		args []string
		kind runner.ErrorKind
	}{
		{"zero depth", f.expansion("expand", "-p", "0"), runner.KindInvalidConfig},
		{"no files", []string{"stem"}, runner.KindInvalidConfig},
		{"unpaired", []string{"stem", "-d", f.expansionDic}, runner.KindInvalidConfig},
		{"bad format", f.expansion("stem", "--format", "xml"), runner.KindInvalidConfig},
		{"missing grammar", []string{"stem", "-d", f.expansionDic, "-a", filepath.Join(f.dir, "none.aff")}, runner.KindNotFound},
		{"bad grammar", []string{"stem", "-d", f.expansionDic, "-a", writeFile(t, f.dir, "bad.aff", "PFX A Y 0\n")}, runner.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "psa\n", tt.args...)
			require.Error(t, err)
			assert.True(t, runner.IsKind(err, tt.kind), "got %v", err)
		})
	}
}

func TestUnknownArgs(t *testing.T) {
	f := newFixture(t)

	_, _, err := run(t, "", f.expansion("stem", "extra")...)
	assert.Error(t, err)
}

func TestHelpListsModes(t *testing.T) {
	newFixture(t)

	out, _, err := run(t, "", "--help")
	require.NoError(t, err)
	for _, mode := range []string{"stem", "expand", "expandall", "wordlist", "expanddict", "roundtrip"} {
		assert.Contains(t, out, mode)
	}
}
