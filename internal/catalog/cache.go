package catalog

import (
	"sync"
	"time"
)

type cacheEntry struct {
	value     any
	tags      []string
	expiresAt time.Time
}

// tagCache is a small in-process cache with per-entry TTL and tag-based
// invalidation. Tags form a many-to-many index over entries so a single
// invalidation sweeps every key it touches.
type tagCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	byTag   map[string]map[string]struct{}
	now     func() time.Time
}

func newTagCache(ttl time.Duration) *tagCache {
	return &tagCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		byTag:   make(map[string]map[string]struct{}),
		now:     time.Now,
	}
}

func (c *tagCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		c.removeLocked(key)
		return nil, false
	}
	return entry.value, true
}

func (c *tagCache) set(key string, value any, tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(key)
	c.entries[key] = cacheEntry{
		value:     value,
		tags:      tags,
		expiresAt: c.now().Add(c.ttl),
	}
	for _, tag := range tags {
		keys, ok := c.byTag[tag]
		if !ok {
			keys = make(map[string]struct{})
			c.byTag[tag] = keys
		}
		keys[key] = struct{}{}
	}
}

func (c *tagCache) invalidate(tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, tag := range tags {
		for key := range c.byTag[tag] {
			c.removeLocked(key)
		}
	}
}

func (c *tagCache) removeLocked(key string) {
	entry, ok := c.entries[key]
	if !ok {
		return
	}
	delete(c.entries, key)
	for _, tag := range entry.tags {
		if keys, ok := c.byTag[tag]; ok {
			delete(keys, key)
			if len(keys) == 0 {
				delete(c.byTag, tag)
			}
		}
	}
}
