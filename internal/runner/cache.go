package runner

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/az-ai-labs/affixmorph/morph"
)

// CachedStemmer memoizes Stem results in a fixed-size LRU cache. Cached
// slices are shared between callers and must not be modified.
//
// It is safe for concurrent use.
type CachedStemmer struct {
	stemmer *morph.Stemmer
	cache   *lru.Cache[string, []string]
}

// NewCachedStemmer wraps s with a cache of size entries. Size 0 disables
// caching.
func NewCachedStemmer(s *morph.Stemmer, size int) (*CachedStemmer, error) {
	c := &CachedStemmer{stemmer: s}
	if size == 0 {
		return c, nil
	}
	cache, err := lru.New[string, []string](size)
	if err != nil {
		return nil, fmt.Errorf("runner: stem cache: %w", err)
	}
	c.cache = cache
	return c, nil
}

// Stem returns the sorted lemmas of word.
func (c *CachedStemmer) Stem(word string) []string {
	if c.cache == nil {
		return c.stemmer.Stem(word)
	}
	if stems, ok := c.cache.Get(word); ok {
		return stems
	}
	stems := c.stemmer.Stem(word)
	c.cache.Add(word, stems)
	return stems
}

// Process implements morph.Processor.
func (c *CachedStemmer) Process(word string) []string {
	return c.Stem(word)
}

// Cached returns the number of cached words.
func (c *CachedStemmer) Cached() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}
