package affix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		mode  FlagMode
		want  []string
	}{
		{"ascii", "ABA", FlagASCII, []string{"A", "B"}},
		{"ascii non-latin", "čř", FlagASCII, []string{"č", "ř"}},
		{"ascii empty", "", FlagASCII, []string{}},
		{"long", "XXAABB", FlagLong, []string{"AA", "BB", "XX"}},
		{"long odd tail dropped", "XXA", FlagLong, []string{"XX"}},
		{"long multibyte", "ŮŮaa", FlagLong, []string{"aa", "ŮŮ"}},
		{"num", "10,2, 33", FlagNum, []string{"10", "2", "33"}},
		{"num empty tokens", ",1,,2,", FlagNum, []string{"1", "2"}},
		{"num spaces", " 5 , 6 ", FlagNum, []string{"5", "6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExtractFlags(tt.input, tt.mode).Sorted())
		})
	}
}

func TestParseFlagMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    FlagMode
		wantErr bool
	}{
		{"ASCII", FlagASCII, false},
		{"long", FlagLong, false},
		{"Num", FlagNum, false},
		{"UTF-8", FlagASCII, true},
		{"", FlagASCII, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFlagMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownFlagMode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlagSetFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "AAXX", NewFlagSet("XX", "AA").Format(FlagLong))
	assert.Equal(t, "1,22,3", NewFlagSet("3", "1", "22").Format(FlagNum))
	assert.Equal(t, "ab", NewFlagSet("b", "a", "").Format(FlagASCII))
	assert.Equal(t, "", FlagSet(nil).Format(FlagASCII))
}

func TestFlagSetHas(t *testing.T) {
	t.Parallel()

	s := NewFlagSet("P1", "AA")
	assert.True(t, s.Has("P1"))
	assert.False(t, s.Has("P2"))
	assert.False(t, FlagSet(nil).Has("P1"))
}

func TestFlagModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "LONG", FlagLong.String())
	assert.Equal(t, "FlagMode(9)", FlagMode(9).String())
}
