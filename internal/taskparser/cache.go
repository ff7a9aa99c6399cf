package taskparser

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/go-runz/runz/internal/taskspec"
)

// DefaultCacheSize bounds the number of distinct command lines a Cache
// retains. Sibling packages in a monorepo walk frequently share identical
// script strings (a common "build" or "test" one-liner repeated across
// dozens of packages), so caching by raw text avoids re-tokenizing and
// re-walking the grammar for each one.
const DefaultCacheSize = 512

// Cache memoizes Parse by the raw command line text. It is safe for
// concurrent use — the underlying LRU is internally synchronized.
type Cache struct {
	lru *lru.Cache[string, cacheEntry]
}

type cacheEntry struct {
	spec taskspec.TaskSpec
	err  error
}

// NewCache builds a Cache holding up to size entries.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	l, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

// Parse returns the cached TaskSpec for commandLine, parsing and caching it
// on first sight.
func (c *Cache) Parse(commandLine string) (taskspec.TaskSpec, error) {
	if entry, ok := c.lru.Get(commandLine); ok {
		return entry.spec, entry.err
	}
	spec, err := Parse(commandLine)
	c.lru.Add(commandLine, cacheEntry{spec: spec, err: err})
	return spec, err
}
