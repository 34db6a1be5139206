// Package affix parses Hunspell-style affix grammars into a graph of
// chainable prefix and suffix rules.
//
// A RuleSet is built once by Parse and is read-only afterwards; it is safe
// for concurrent use by any number of readers.
package affix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/az-ai-labs/affixmorph/internal/textcase"
)

const maxLineSize = 1 << 20

// Options controls how grammar text is folded before rules are compiled.
type Options struct {
	Lowercase bool
	Normalize bool
	Language  language.Tag
}

func (o Options) folder() textcase.Folder {
	return textcase.Folder{Lowercase: o.Lowercase, Normalize: o.Normalize, Lang: o.Language}
}

// RuleSet is a parsed affix grammar with its rule indices and chaining edges.
type RuleSet struct {
	mode   FlagMode
	rules  []*Rule
	byFlag RuleMap
	pfx    RuleMap // prefix rules by append string
	sfx    RuleMap // suffix rules by append string
}

// block is the header of the rule block being read.
type block struct {
	kind         Kind
	flag         string
	crossProduct bool
	remaining    int
	line         int
}

// Parse reads an affix grammar from r.
func Parse(r io.Reader) (*RuleSet, error) {
	return ParseWithOptions(r, Options{})
}

// ParseFile reads an affix grammar from the named file.
func ParseFile(path string, opts Options) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("affix: open grammar: %w", err)
	}
	defer f.Close()

	return ParseWithOptions(f, opts)
}

// ParseWithOptions reads an affix grammar from r, folding rule text per opts.
// On any malformed line it returns a *FormatError and no rule set.
func ParseWithOptions(r io.Reader, opts Options) (*RuleSet, error) {
	rs := &RuleSet{mode: FlagASCII}
	fold := opts.folder()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var cur *block
	lineNo := 0
	for sc.Scan() {
		lineNo++
		params := splitParams(sc.Text())
		if len(params) < 2 || strings.HasPrefix(params[0], "#") {
			continue
		}

		switch params[0] {
		case "FLAG":
			mode, err := ParseFlagMode(params[1])
			if err != nil {
				return nil, formatErrorf(lineNo, err, "bad FLAG directive")
			}
			rs.mode = mode

		case "PFX", "SFX":
			if cur == nil {
				b, err := parseBlockHeader(params, lineNo)
				if err != nil {
					return nil, err
				}
				cur = b
				continue
			}
			rule, err := rs.parseRuleLine(params, cur, lineNo, fold)
			if err != nil {
				return nil, err
			}
			rs.insert(rule)
			cur.remaining--
			if cur.remaining <= 0 {
				cur = nil
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("affix: read grammar: %w", err)
	}
	if cur != nil {
		return nil, formatErrorf(cur.line, nil, "%s %s block truncated: %d rule lines missing", cur.kind, cur.flag, cur.remaining)
	}

	rs.link()
	return rs, nil
}

// splitParams splits a line into at most six whitespace-separated fields;
// the sixth keeps the rest of the line.
func splitParams(line string) []string {
	fields := strings.Fields(line)
	if len(fields) > 6 {
		fields = append(fields[:5], strings.Join(fields[5:], " "))
	}
	return fields
}

func parseBlockHeader(params []string, lineNo int) (*block, error) {
	if len(params) < 4 {
		return nil, formatErrorf(lineNo, nil, "bad affix block header: want 4 fields, got %d", len(params))
	}
	kind, _ := ParseKind(params[0])
	count, err := strconv.Atoi(params[3])
	if err != nil {
		return nil, formatErrorf(lineNo, err, "bad line count for flag %s", params[1])
	}
	if count <= 0 {
		return nil, formatErrorf(lineNo, nil, "bad line count for flag %s: %d", params[1], count)
	}
	return &block{
		kind:         kind,
		flag:         params[1],
		crossProduct: params[2] == "Y",
		remaining:    count,
		line:         lineNo,
	}, nil
}

func (rs *RuleSet) parseRuleLine(params []string, b *block, lineNo int, fold textcase.Folder) (*Rule, error) {
	if len(params) < 5 {
		return nil, formatErrorf(lineNo, nil, "bad affix line for flag %s: want 5 fields, got %d", b.flag, len(params))
	}
	if params[1] != b.flag {
		return nil, formatErrorf(lineNo, nil, "flag mismatch: %s vs. %s", b.flag, params[1])
	}
	kind, _ := ParseKind(params[0])
	if kind != b.kind {
		return nil, formatErrorf(lineNo, nil, "type mismatch for flag %s: %s vs. %s", b.flag, b.kind, params[0])
	}

	remove := zeroToEmpty(params[2])
	appendStr, flagStr, hasFlags := strings.Cut(params[3], "/")
	appendStr = zeroToEmpty(appendStr)

	var expFlags FlagSet
	if hasFlags {
		expFlags = ExtractFlags(flagStr, rs.mode)
	}

	var props []string
	if len(params) > 5 {
		props = strings.Split(params[5], ",")
	}

	rule, err := NewRule(RuleSpec{
		Kind:           kind,
		Flag:           params[1],
		Remove:         fold.Fold(remove),
		Append:         fold.Fold(appendStr),
		Condition:      fold.Fold(params[4]),
		CrossProduct:   b.crossProduct,
		ExpansionFlags: expFlags,
		Properties:     props,
	})
	if err != nil {
		return nil, formatErrorf(lineNo, errors.Unwrap(err), "bad condition %q for flag %s", params[4], b.flag)
	}
	return rule, nil
}

func zeroToEmpty(s string) string {
	if s == "0" {
		return ""
	}
	return s
}

func (rs *RuleSet) insert(r *Rule) {
	rs.rules = append(rs.rules, r)
	rs.byFlag.Add(r.flag, r)
	if r.kind == Suffix {
		rs.sfx.Add(r.append, r)
	} else {
		rs.pfx.Add(r.append, r)
	}
}

// link wires the forward and backward chaining edges. Cycles are allowed.
func (rs *RuleSet) link() {
	for _, r := range rs.rules {
		for _, f := range r.expFlags.Sorted() {
			for _, next := range rs.byFlag.Get(f) {
				r.addExpansion(next)
				next.addReduction(r)
			}
		}
	}
}

// FlagMode returns the flag encoding declared by the grammar.
func (rs *RuleSet) FlagMode() FlagMode { return rs.mode }

// ExtractFlags decodes s with the grammar's flag encoding.
func (rs *RuleSet) ExtractFlags(s string) FlagSet {
	return ExtractFlags(s, rs.mode)
}

// ExtractFlagsMode decodes s with an explicit flag encoding.
func (rs *RuleSet) ExtractFlagsMode(s string, mode FlagMode) FlagSet {
	return ExtractFlags(s, mode)
}

// Rules returns every rule in grammar order.
func (rs *RuleSet) Rules() []*Rule { return rs.rules }

// AllFlags returns every flag that has at least one rule, in grammar order.
func (rs *RuleSet) AllFlags() []string { return rs.byFlag.Keys() }

// RulesByFlag returns the rules registered under flag.
func (rs *RuleSet) RulesByFlag(flag string) []*Rule { return rs.byFlag.Get(flag) }

// RuleTypeByFlag returns the kind of the rules under flag. It reports false
// for a flag with no rules.
func (rs *RuleSet) RuleTypeByFlag(flag string) (Kind, bool) {
	rules := rs.byFlag.Get(flag)
	if len(rules) == 0 {
		return 0, false
	}
	return rules[0].kind, true
}

// RulesByAppend returns the rules of the given kind whose append string
// equals affix.
func (rs *RuleSet) RulesByAppend(kind Kind, affix string) []*Rule {
	if kind == Suffix {
		return rs.sfx.Get(affix)
	}
	return rs.pfx.Get(affix)
}
