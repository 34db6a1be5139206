package affix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRule(t *testing.T, spec RuleSpec) *Rule {
	t.Helper()
	r, err := NewRule(spec)
	require.NoError(t, err)
	return r
}

func TestRuleApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		spec   RuleSpec
		word   string
		want   string
		wantOK bool
	}{
		{"suffix append", RuleSpec{Kind: Suffix, Append: "a", Condition: "[^aeok]"}, "pán", "pána", true},
		{"suffix condition fails", RuleSpec{Kind: Suffix, Append: "a", Condition: "[^aeok]"}, "praha", "", false},
		{"suffix replace", RuleSpec{Kind: Suffix, Remove: "es", Append: "s", Condition: "pes"}, "pes", "ps", true},
		{"suffix replace multibyte", RuleSpec{Kind: Suffix, Remove: "ůh", Append: "oh", Condition: "bůh"}, "polobůh", "poloboh", true},
		{"suffix remove longer than word", RuleSpec{Kind: Suffix, Remove: "ůh", Append: "oh", Condition: "."}, "h", "", false},
		{"suffix class condition", RuleSpec{Kind: Suffix, Remove: "r", Append: "ře", Condition: "[^aeiouyáéíóúůýě]r"}, "bratr", "bratře", true},
		{"suffix class condition fails", RuleSpec{Kind: Suffix, Remove: "r", Append: "ře", Condition: "[^aeiouyáéíóúůýě]r"}, "sýr", "", false},
		{"suffix sequence condition", RuleSpec{Kind: Suffix, Remove: "ha", Append: "ze", Condition: "[^c]ha"}, "praha", "praze", true},
		{"suffix sequence condition fails", RuleSpec{Kind: Suffix, Remove: "ha", Append: "ze", Condition: "[^c]ha"}, "cha", "", false},
		{"prefix append", RuleSpec{Kind: Prefix, Append: "ne", Condition: "."}, "bůh", "nebůh", true},
		{"prefix condition anchored at start", RuleSpec{Kind: Prefix, Append: "ne", Condition: "b"}, "abb", "", false},
		{"prefix replace", RuleSpec{Kind: Prefix, Remove: "ab", Append: "x", Condition: "ab"}, "abc", "xc", true},
		{"empty condition", RuleSpec{Kind: Suffix, Append: "i"}, "kmán", "kmáni", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := mustRule(t, tt.spec)
			got, ok := r.Apply(tt.word)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRuleStemWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		spec   RuleSpec
		word   string
		want   string
		wantOK bool
	}{
		{"suffix", RuleSpec{Kind: Suffix, Append: "a", Condition: "[^aeok]"}, "pána", "pán", true},
		{"suffix with remove", RuleSpec{Kind: Suffix, Remove: "es", Append: "s", Condition: "pes"}, "ps", "pes", true},
		{"suffix checks stem not word", RuleSpec{Kind: Suffix, Remove: "es", Append: "s", Condition: "pes"}, "pes", "", false},
		{"suffix append missing", RuleSpec{Kind: Suffix, Append: "ovi", Condition: "."}, "pána", "", false},
		{"suffix append longer than word", RuleSpec{Kind: Suffix, Append: "kovi", Condition: "."}, "ovi", "", false},
		{"suffix multibyte", RuleSpec{Kind: Suffix, Remove: "h", Append: "žek", Condition: "bůh"}, "bůžek", "bůh", true},
		{"suffix empty append", RuleSpec{Kind: Suffix, Remove: "x", Condition: "x"}, "ab", "abx", true},
		{"prefix", RuleSpec{Kind: Prefix, Append: "ne", Condition: "."}, "nebůh", "bůh", true},
		{"prefix append missing", RuleSpec{Kind: Prefix, Append: "ne", Condition: "."}, "bůh", "", false},
		{"prefix with remove", RuleSpec{Kind: Prefix, Remove: "ab", Append: "x", Condition: "ab"}, "xc", "abc", true},
		{"prefix empty stem fails condition", RuleSpec{Kind: Prefix, Append: "ne", Condition: "."}, "ne", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := mustRule(t, tt.spec)
			got, ok := r.StemWord(tt.word)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRuleStemWordInvertsApply(t *testing.T) {
	t.Parallel()

	r := mustRule(t, RuleSpec{Kind: Suffix, Remove: "ek", Append: "kovi", Condition: "ek"})
	for _, w := range []string{"bůžek", "polobůžek", "ek"} {
		applied, ok := r.Apply(w)
		require.True(t, ok, w)
		stem, ok := r.StemWord(applied)
		require.True(t, ok, applied)
		assert.Equal(t, w, stem)
	}
}

func TestRulePossiblyReapply(t *testing.T) {
	t.Parallel()

	sticky := mustRule(t, RuleSpec{Kind: Prefix, Append: "ne", Condition: ".", Properties: []string{"reapply", "Sticky"}})
	plain := mustRule(t, RuleSpec{Kind: Prefix, Append: "ne", Condition: "."})
	narrow := mustRule(t, RuleSpec{Kind: Suffix, Remove: "h", Append: "žek", Condition: "bůh", Properties: []string{" sticky "}})

	assert.Equal(t, "nebůh", sticky.PossiblyReapply("bůh"))
	assert.Equal(t, "bůh", plain.PossiblyReapply("bůh"))
	assert.Equal(t, "bůžek", narrow.PossiblyReapply("bůh"))
	assert.Equal(t, "pes", narrow.PossiblyReapply("pes"))
}

func TestRuleProperties(t *testing.T) {
	t.Parallel()

	r := mustRule(t, RuleSpec{Kind: Suffix, Flag: "XX", Condition: ".", Properties: []string{"INVALID", "unknown"}})
	assert.True(t, r.Invalid())
	assert.False(t, r.Sticky())
	assert.Equal(t, "XX", r.Flag())
	assert.Equal(t, Suffix, r.Kind())
	assert.NotNil(t, r.ExpansionFlags())
	assert.False(t, r.HasExpansionFlag("P1"))
}

func TestNewRuleBadCondition(t *testing.T) {
	t.Parallel()

	_, err := NewRule(RuleSpec{Kind: Suffix, Condition: "[a"})
	assert.Error(t, err)

	_, err = NewRule(RuleSpec{Kind: Kind(7), Condition: "."})
	assert.Error(t, err)
}

func TestRuleString(t *testing.T) {
	t.Parallel()

	r := mustRule(t, RuleSpec{
		Kind:           Suffix,
		Flag:           "XX",
		Remove:         "es",
		Append:         "s",
		Condition:      "pes",
		ExpansionFlags: NewFlagSet("P1"),
		Properties:     []string{"invalid"},
	})
	assert.Equal(t, "SFX XX es s/P1 pes invalid", r.String())

	p := mustRule(t, RuleSpec{Kind: Prefix, Flag: "YY", Append: "ne", Condition: ".", Properties: []string{"sticky"}})
	assert.Equal(t, "PFX YY 0 ne . sticky", p.String())
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "PFX", Prefix.String())
	assert.Equal(t, "SFX", Suffix.String())

	k, ok := ParseKind("SFX")
	assert.True(t, ok)
	assert.Equal(t, Suffix, k)

	_, ok = ParseKind("sfx")
	assert.False(t, ok)
}
