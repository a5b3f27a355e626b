package server

import (
	"sync"
	"time"

	"github.com/mj1618/accessibility/internal/model"
	"github.com/mj1618/accessibility/internal/platform"
)

// cacheKey identifies a unique tree read scope.
type cacheKey struct {
	Target platform.Target
	Opts   model.CollectOptions
}

// cacheEntry holds a cached element tree with its timestamp.
type cacheEntry struct {
	tree      *model.Element
	timestamp time.Time
}

// TreeCache provides a TTL-based cache for snapshots.
type TreeCache struct {
	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewTreeCache creates a new cache. A ttl of 0 disables caching.
func NewTreeCache(ttl time.Duration) *TreeCache {
	return &TreeCache{
		entries: make(map[cacheKey]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Snapshot returns the cached tree if within TTL, otherwise walks the target.
// The caller must hold the provider mutex.
func (c *TreeCache) Snapshot(p *platform.Provider, target platform.Target, opts model.CollectOptions) (*model.Element, error) {
	key := cacheKey{Target: target, Opts: opts}
	if c.ttl > 0 {
		c.mu.Lock()
		if entry, ok := c.entries[key]; ok && c.now().Sub(entry.timestamp) < c.ttl {
			c.mu.Unlock()
			return entry.tree, nil
		}
		c.mu.Unlock()
	}

	root, err := p.Resolve(target)
	if err != nil {
		return nil, err
	}
	defer root.Close()
	tree := model.Snapshot(root, opts)

	if c.ttl > 0 && tree != nil {
		c.mu.Lock()
		c.entries[key] = cacheEntry{tree: tree, timestamp: c.now()}
		c.mu.Unlock()
	}
	return tree, nil
}

// InvalidateTarget removes all cache entries for the given target.
func (c *TreeCache) InvalidateTarget(target platform.Target) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.Target == target {
			delete(c.entries, k)
		}
	}
}

// InvalidateAll clears the entire cache.
func (c *TreeCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]cacheEntry)
}
