// SPDX-License-Identifier: MIT

package hierarchy

import (
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/npa/scenario"
)

type cacheKey struct {
	s     scenario.Scenario
	depth int
}

// Cache keeps the most recently used builders. Builders are immutable, so
// one instance is shared by every caller asking for the same
// (scenario, depth). Safe for concurrent use.
type Cache struct {
	lru    *lru.Cache[cacheKey, *Builder]
	opts   []Option
	logger *slog.Logger
}

// NewCache returns a cache holding up to size builders. opts are passed to
// every New call made on a miss.
// Errors: ErrInvalidCacheSize.
func NewCache(size int, opts ...Option) (*Cache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("NewCache(%d): %w", size, ErrInvalidCacheSize)
	}
	o := gatherOptions(opts...)
	c := &Cache{opts: opts, logger: o.logger}

	l, err := lru.NewWithEvict[cacheKey, *Builder](size, func(k cacheKey, b *Builder) {
		c.logger.Debug("hierarchy evicted",
			"scenario", k.s.String(),
			"depth", k.depth,
			"monomials", b.MonomialCount())
	})
	if err != nil {
		return nil, fmt.Errorf("NewCache: %w", err)
	}
	c.lru = l

	return c, nil
}

// Get returns the builder for (s, depth), building it on a miss. When two
// callers miss concurrently the first stored builder wins and both get it.
// Errors: those of New; failures are not cached.
func (c *Cache) Get(s scenario.Scenario, depth int) (*Builder, error) {
	k := cacheKey{s: s, depth: depth}
	if b, ok := c.lru.Get(k); ok {
		return b, nil
	}
	b, err := New(s, depth, c.opts...)
	if err != nil {
		return nil, err
	}
	if prev, ok, _ := c.lru.PeekOrAdd(k, b); ok {
		return prev, nil
	}

	return b, nil
}

// Len returns the number of cached builders.
func (c *Cache) Len() int { return c.lru.Len() }

// Purge drops every cached builder.
func (c *Cache) Purge() { c.lru.Purge() }
