package view

import (
	"sync"

	"github.com/couchcryptid/temp-matrix/internal/colorscale"
	"github.com/couchcryptid/temp-matrix/internal/domain"
)

// CachedProjector wraps a Projector with an in-memory LRU cache. Projections
// are pure over an immutable dataset, so entries never invalidate; toggling
// back and forth re-derives each cell at most once per mode.
type CachedProjector struct {
	inner *Projector
	cache *lruCache
}

// NewCachedProjector creates a cache decorator around a projector.
func NewCachedProjector(inner *Projector, maxEntries int) *CachedProjector {
	return &CachedProjector{
		inner: inner,
		cache: newLRUCache(maxEntries),
	}
}

// Cell returns the cached projection for (mode, key), deriving it on miss.
func (c *CachedProjector) Cell(mode Mode, key domain.MonthKey) CellProjection {
	k := cacheKey{mode: mode, key: key}
	if proj, ok := c.cache.get(k); ok {
		return proj
	}
	proj := c.inner.Cell(mode, key)
	c.cache.put(k, proj)
	return proj
}

// Scale exposes the inner projector's color scale.
func (c *CachedProjector) Scale() colorscale.Diverging {
	return c.inner.Scale()
}

type cacheKey struct {
	mode Mode
	key  domain.MonthKey
}

// lruCache is a simple thread-safe LRU cache for cell projections.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[cacheKey]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   cacheKey
	value CellProjection
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[cacheKey]*entry),
	}
}

func (c *lruCache) get(key cacheKey) (CellProjection, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return CellProjection{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key cacheKey, value CellProjection) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
