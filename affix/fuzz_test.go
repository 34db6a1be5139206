package affix

import (
	"errors"
	"strings"
	"testing"

	"github.com/az-ai-labs/affixmorph/data"
)

func FuzzParse(f *testing.F) {
	f.Add(data.SampleAffix)
	f.Add(data.ExpansionAffix)
	f.Add("SFX A Y 1\nSFX A 0 s .\n")
	f.Add("FLAG num\nPFX 1 N 1\nPFX 1 0 x/2,3 . sticky\n")
	f.Add("SFX A Y 2\nSFX A 0 s [\n")

	f.Fuzz(func(t *testing.T, grammar string) {
		rs, err := Parse(strings.NewReader(grammar))
		if err != nil {
			if rs != nil {
				t.Fatal("non-nil rule set returned with error")
			}
			var fe *FormatError
			if errors.As(err, &fe) && !errors.Is(err, ErrFormat) {
				t.Fatalf("FormatError does not match ErrFormat: %v", err)
			}
			return
		}
		for _, r := range rs.Rules() {
			for _, next := range r.ExpansionRules().All() {
				found := false
				for _, back := range next.ReductionRules().Get(r.Append()) {
					if back == r {
						found = true
					}
				}
				if !found {
					t.Fatalf("edge %v -> %v has no reduction counterpart", r, next)
				}
			}
		}
	})
}
