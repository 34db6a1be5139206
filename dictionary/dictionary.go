// Package dictionary stores words with their flag readings.
//
// A word may have several readings (homonyms); each reading is a separate
// flag set and flag lookups never mix flags from different readings.
//
// A Dictionary is not safe for concurrent mutation. Load it, finish every
// Add (including sticky expansion done by morph.Expander), then share it
// freely between readers.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/az-ai-labs/affixmorph/affix"
	"github.com/az-ai-labs/affixmorph/internal/textcase"
)

const maxLineSize = 1 << 20

var errSkipLine = errors.New("skip line")

// FlagDecoder turns a flag string into a set of flags. *affix.RuleSet
// implements it.
type FlagDecoder interface {
	ExtractFlags(s string) affix.FlagSet
}

// Options controls how dictionary words are folded on load.
type Options struct {
	Lowercase bool
	Normalize bool
	Language  language.Tag
}

// Dictionary maps words to their ordered list of readings.
type Dictionary struct {
	words map[string][]affix.FlagSet
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{words: make(map[string][]affix.FlagSet)}
}

// Load reads "word/flags" lines from r. Lines without a flag part, such as
// the leading word count of Hunspell files, are skipped.
func Load(r io.Reader, dec FlagDecoder, opts Options) (*Dictionary, error) {
	d := New()
	fold := textcase.Folder{Lowercase: opts.Lowercase, Normalize: opts.Normalize, Lang: opts.Language}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		word, flagStr, err := parseLine(sc.Text())
		if errors.Is(err, errSkipLine) {
			continue
		}
		d.Add(fold.Fold(word), dec.ExtractFlags(flagStr))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read: %w", err)
	}
	return d, nil
}

// LoadFile reads a dictionary from the named file.
func LoadFile(path string, dec FlagDecoder, opts Options) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open: %w", err)
	}
	defer f.Close()

	return Load(f, dec, opts)
}

// parseLine splits "word/flags". Anything after the first whitespace in
// the flag part (morphological fields) is dropped.
func parseLine(line string) (word, flags string, err error) {
	parts := strings.Split(strings.TrimSpace(line), "/")
	if len(parts) < 2 {
		return "", "", errSkipLine
	}
	word = strings.TrimSpace(parts[0])
	fields := strings.Fields(parts[1])
	if word == "" || len(fields) == 0 {
		return "", "", errSkipLine
	}
	return word, fields[0], nil
}

// Clone returns a copy of d that shares no mutable state with it.
func (d *Dictionary) Clone() *Dictionary {
	c := &Dictionary{words: make(map[string][]affix.FlagSet, len(d.words))}
	for w, readings := range d.words {
		cp := make([]affix.FlagSet, len(readings))
		for i, fs := range readings {
			cp[i] = make(affix.FlagSet, len(fs))
			for f := range fs {
				cp[i][f] = struct{}{}
			}
		}
		c.words[w] = cp
	}
	return c
}

// Add appends a reading for word.
func (d *Dictionary) Add(word string, flags affix.FlagSet) {
	word = strings.TrimSpace(word)
	if flags == nil {
		flags = affix.FlagSet{}
	}
	d.words[word] = append(d.words[word], flags)
}

// Contains reports whether word has at least one reading.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

// ContainsFlag reports whether some reading of word carries flag.
func (d *Dictionary) ContainsFlag(word, flag string) bool {
	for _, fs := range d.words[word] {
		if fs.Has(flag) {
			return true
		}
	}
	return false
}

// ContainsFlags reports whether a single reading of word carries both
// flags. An empty flag degrades to ContainsFlag with the other one.
func (d *Dictionary) ContainsFlags(word, pfxFlag, sfxFlag string) bool {
	switch {
	case pfxFlag == "":
		return d.ContainsFlag(word, sfxFlag)
	case sfxFlag == "":
		return d.ContainsFlag(word, pfxFlag)
	}
	for _, fs := range d.words[word] {
		if fs.Has(pfxFlag) && fs.Has(sfxFlag) {
			return true
		}
	}
	return false
}

// Flags returns the first reading of word, or nil if word is unknown.
func (d *Dictionary) Flags(word string) affix.FlagSet {
	readings := d.words[word]
	if len(readings) == 0 {
		return nil
	}
	return readings[0]
}

// FlagsAt returns the i-th reading of word.
func (d *Dictionary) FlagsAt(word string, i int) (affix.FlagSet, bool) {
	readings := d.words[word]
	if i < 0 || i >= len(readings) {
		return nil, false
	}
	return readings[i], true
}

// AllFlags returns every reading of word in insertion order. The slice
// must not be modified.
func (d *Dictionary) AllFlags(word string) []affix.FlagSet {
	return d.words[word]
}

// Words returns the distinct words in sorted order.
func (d *Dictionary) Words() []string {
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Dump writes one "word/flags" line per reading, words sorted, and returns
// the number of distinct words written. Flags are encoded for mode so the
// output loads back with the same grammar.
func (d *Dictionary) Dump(w io.Writer, mode affix.FlagMode) (int, error) {
	bw := bufio.NewWriter(w)
	words := d.Words()
	for _, word := range words {
		for _, fs := range d.words[word] {
			if _, err := fmt.Fprintf(bw, "%s/%s\n", word, fs.Format(mode)); err != nil {
				return 0, fmt.Errorf("dictionary: dump: %w", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("dictionary: dump: %w", err)
	}
	return len(words), nil
}
