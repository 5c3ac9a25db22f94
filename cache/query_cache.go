package cache

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedQuery is one rendered statement.
type CachedQuery struct {
	SQL  string
	Args []any
}

// QueryCache maps statement fingerprints to rendered SQL. Implementations are
// safe for concurrent use.
type QueryCache interface {
	GetSQL(fingerprint uint64) (*CachedQuery, bool)
	SetSQL(fingerprint uint64, q *CachedQuery)
	Len() int
	Purge()
	Stats() Stats
}

type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// NewQueryCache returns an LRU cache holding up to size statements. A size
// of zero disables caching.
func NewQueryCache(size int) (QueryCache, error) {
	switch {
	case size < 0:
		return nil, fmt.Errorf("cache: size must not be negative, got %d", size)
	case size == 0:
		return nopQueryCache{}, nil
	}

	c := &lruQueryCache{}
	l, err := lru.NewWithEvict(size, func(uint64, *CachedQuery) {
		c.evictions.Add(1)
	})
	if err != nil {
		return nil, err
	}
	c.lru = l
	return c, nil
}

type lruQueryCache struct {
	lru *lru.Cache[uint64, *CachedQuery]

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

func (c *lruQueryCache) GetSQL(f uint64) (*CachedQuery, bool) {
	q, ok := c.lru.Get(f)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return q, ok
}

func (c *lruQueryCache) SetSQL(f uint64, q *CachedQuery) {
	c.lru.Add(f, q)
}

func (c *lruQueryCache) Len() int { return c.lru.Len() }

// Purge drops every entry. Purged entries count as evictions.
func (c *lruQueryCache) Purge() { c.lru.Purge() }

func (c *lruQueryCache) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

type nopQueryCache struct{}

func (nopQueryCache) GetSQL(uint64) (*CachedQuery, bool) { return nil, false }
func (nopQueryCache) SetSQL(uint64, *CachedQuery)        {}
func (nopQueryCache) Len() int                           { return 0 }
func (nopQueryCache) Purge()                             {}
func (nopQueryCache) Stats() Stats                       { return Stats{} }
