// Package runner drives batch stemming and expansion over one or more
// loaded grammar/dictionary pairs.
//
// Stem and Expand union their results across pairs. The dictionary-wide
// modes (ExpandAll, WordList, ExpandDict) walk each pair in turn.
package runner

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/az-ai-labs/affixmorph/affix"
	"github.com/az-ai-labs/affixmorph/dictionary"
	"github.com/az-ai-labs/affixmorph/internal/config"
	"github.com/az-ai-labs/affixmorph/internal/logger"
	"github.com/az-ai-labs/affixmorph/internal/textcase"
	"github.com/az-ai-labs/affixmorph/morph"
)

// Pair is one affix grammar with its dictionary.
//
// Stemming reads the dictionary as loaded. Expansion works on a private
// copy that sticky expansion extends on first use, so the two never see
// each other's entries.
type Pair struct {
	DictPath  string
	AffixPath string
	Rules     *affix.RuleSet
	Dict      *dictionary.Dictionary

	stemmer *CachedStemmer

	once     sync.Once
	expDict  *dictionary.Dictionary
	expander *morph.Expander
}

// NewPair builds the stemmer and the lazily created expander for rs and
// dict.
func NewPair(rs *affix.RuleSet, dict *dictionary.Dictionary, cacheSize int) (*Pair, error) {
	cs, err := NewCachedStemmer(morph.NewStemmer(rs, dict), cacheSize)
	if err != nil {
		return nil, err
	}
	return &Pair{Rules: rs, Dict: dict, stemmer: cs}, nil
}

// Stem returns the lemmas of word in this pair.
func (p *Pair) Stem(word string) []string {
	return p.stemmer.Stem(word)
}

// Expander returns the pair's expander with sticky expansion done.
func (p *Pair) Expander() *morph.Expander {
	p.init()
	return p.expander
}

// ExpandedDictionary returns the dictionary extended by sticky expansion.
func (p *Pair) ExpandedDictionary() *dictionary.Dictionary {
	p.init()
	return p.expDict
}

func (p *Pair) init() {
	p.once.Do(func() {
		p.expDict = p.Dict.Clone()
		p.expander = morph.NewExpander(p.Rules, p.expDict)
		p.expander.ExpandStickyRules()
	})
}

// Options configures a Runner.
type Options struct {
	Depth      int
	Workers    int
	Format     string
	Fold       textcase.Folder
	Exceptions Exceptions
	Logger     *slog.Logger
}

// Runner executes the batch modes.
type Runner struct {
	pairs []*Pair
	opts  Options
	log   *slog.Logger
}

// New returns a runner over pairs.
func New(pairs []*Pair, opts Options) *Runner {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Depth <= 0 {
		opts.Depth = 1
	}
	if opts.Format == "" {
		opts.Format = config.FormatText
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	return &Runner{pairs: pairs, opts: opts, log: opts.Logger}
}

// Load reads every grammar/dictionary pair and the exceptions file named
// by cfg. cfg must be valid.
func Load(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Runner, error) {
	if log == nil {
		log = logger.Discard()
	}
	if len(cfg.Dictionaries) != len(cfg.Affixes) || len(cfg.Dictionaries) == 0 {
		return nil, &OpError{Op: "runner.load", Kind: KindInvalidConfig, Err: errUnpaired(len(cfg.Dictionaries), len(cfg.Affixes))}
	}

	lang, err := textcase.ParseLanguage(cfg.Language)
	if err != nil {
		return nil, &OpError{Op: "runner.load", Kind: KindInvalidConfig, Err: err}
	}
	fold := textcase.Folder{Lowercase: cfg.Lowercase, Normalize: cfg.Normalize(), Lang: lang}

	pairs := make([]*Pair, 0, len(cfg.Dictionaries))
	for i := range cfg.Dictionaries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := loadPair(cfg.Dictionaries[i], cfg.Affixes[i], fold, cfg.CacheSize, log)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}

	ex, err := LoadExceptions(cfg.Exceptions, fold)
	if err != nil {
		return nil, opError("runner.load_exceptions", cfg.Exceptions, err)
	}
	if len(ex) > 0 {
		log.Info("exceptions.loaded", "path", cfg.Exceptions, "count", len(ex))
	}

	return New(pairs, Options{
		Depth:      cfg.Depth,
		Workers:    cfg.Workers,
		Format:     cfg.Format,
		Fold:       fold,
		Exceptions: ex,
		Logger:     log,
	}), nil
}

func loadPair(dictPath, affixPath string, fold textcase.Folder, cacheSize int, log *slog.Logger) (*Pair, error) {
	start := time.Now()

	rs, err := affix.ParseFile(affixPath, affix.Options{Lowercase: fold.Lowercase, Normalize: fold.Normalize, Language: fold.Lang})
	if err != nil {
		return nil, opError("runner.load_affix", affixPath, err)
	}
	dict, err := dictionary.LoadFile(dictPath, rs, dictionary.Options{Lowercase: fold.Lowercase, Normalize: fold.Normalize, Language: fold.Lang})
	if err != nil {
		return nil, opError("runner.load_dictionary", dictPath, err)
	}

	p, err := NewPair(rs, dict, cacheSize)
	if err != nil {
		return nil, &OpError{Op: "runner.load", Kind: KindInvalidConfig, Err: err}
	}
	p.DictPath, p.AffixPath = dictPath, affixPath

	log.Info("pair.loaded",
		"dictionary", dictPath,
		"affix", affixPath,
		"rules", len(rs.Rules()),
		"words", dict.Len(),
		"elapsed", time.Since(start),
	)
	return p, nil
}

// Pairs returns the loaded pairs in configuration order.
func (r *Runner) Pairs() []*Pair { return r.pairs }

// prepareExpanders runs sticky expansion on every pair before workers
// start sharing the expanded dictionaries.
func (r *Runner) prepareExpanders() {
	for _, p := range r.pairs {
		start := time.Now()
		before := p.Dict.Len()
		d := p.ExpandedDictionary()
		r.log.Debug("sticky.expanded",
			"dictionary", p.DictPath,
			"words_before", before,
			"words_after", d.Len(),
			"elapsed", time.Since(start),
		)
	}
}

func (r *Runner) done(mode string, start time.Time, count int) {
	r.log.Info("mode.finished", "mode", mode, "count", count, "elapsed", time.Since(start))
}
