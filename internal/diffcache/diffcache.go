// Package diffcache provides an LRU cache of file diffs keyed by commit id
// and path, with bulk invalidation of working-tree entries.
package diffcache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/polysim/gitkeeper/internal/vcs"
)

// Key identifies one cached diff: a commit (or vcs.Zero for the working
// tree) and the path within it.
type Key struct {
	Commit vcs.CommitID
	Path   string
}

// Cache is a bounded, least-recently-used cache of vcs.FileDiff values.
// Gets promote their key to most-recently-used and a full cache evicts the
// single oldest entry on insert, matching the semantics golang-lru/v2
// already implements natively — Cache wraps it rather than reimplementing
// eviction bookkeeping by hand.
type Cache struct {
	lru *lru.Cache[Key, vcs.FileDiff]
}

// New returns a cache holding at most maxSize entries.
func New(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = 1
	}
	c, _ := lru.New[Key, vcs.FileDiff](maxSize)
	return &Cache{lru: c}
}

// Get returns the cached diff for key, promoting it to most-recently-used.
func (c *Cache) Get(key Key) (vcs.FileDiff, bool) {
	return c.lru.Get(key)
}

// Insert stores value under key, evicting the oldest entry first if the
// cache is already at capacity and key is not already present.
func (c *Cache) Insert(key Key, value vcs.FileDiff) {
	c.lru.Add(key, value)
}

// Clear empties the cache entirely.
func (c *Cache) Clear() {
	c.lru.Purge()
}

// ClearWorkingDirectory evicts every entry keyed to the working tree
// sentinel (vcs.Zero), leaving committed-diff entries untouched. Callers
// invoke this whenever the working tree changes underneath a cached diff
// (a stage/unstage/discard, or an external file edit detected on refresh).
func (c *Cache) ClearWorkingDirectory() {
	for _, key := range c.lru.Keys() {
		if key.Commit.IsZero() {
			c.lru.Remove(key)
		}
	}
}

// Len reports the number of cached entries.
func (c *Cache) Len() int { return c.lru.Len() }
