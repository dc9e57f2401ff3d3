package imageload

import (
	"container/list"
	"sync"
	"sync/atomic"
	"time"
)

// cacheKey identifies one rendering of one file version.
type cacheKey struct {
	path     string
	modTime  time.Time
	width    int
	rows     int
	protocol Protocol
}

type cacheEntry struct {
	key   cacheKey
	lines []string
	size  int64
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Entries   int
	SizeBytes int64
}

// Cache is an LRU of rendered images bounded by total bytes. It is safe
// for concurrent use; loads run on bubbletea command goroutines.
type Cache struct {
	mu       sync.Mutex
	items    map[cacheKey]*list.Element
	order    *list.List // front is most recently used
	maxBytes int64
	used     int64

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// NewCache creates a cache holding at most maxMB megabytes. Zero or less
// means 16 MB.
func NewCache(maxMB int) *Cache {
	if maxMB <= 0 {
		maxMB = 16
	}
	return newCacheBytes(int64(maxMB) << 20)
}

func newCacheBytes(maxBytes int64) *Cache {
	return &Cache{
		items:    make(map[cacheKey]*list.Element),
		order:    list.New(),
		maxBytes: maxBytes,
	}
}

func (c *Cache) get(k cacheKey) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.items[k]
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.order.MoveToFront(elem)
	c.hits.Add(1)
	return elem.Value.(*cacheEntry).lines, true
}

func (c *Cache) put(k cacheKey, lines []string) {
	var size int64
	for _, l := range lines {
		size += int64(len(l))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[k]; ok {
		e := elem.Value.(*cacheEntry)
		c.used += size - e.size
		e.lines, e.size = lines, size
		c.order.MoveToFront(elem)
	} else {
		e := &cacheEntry{key: k, lines: lines, size: size}
		c.items[k] = c.order.PushFront(e)
		c.used += size
	}
	// The newest entry is kept even when it alone exceeds the budget.
	for c.used > c.maxBytes && c.order.Len() > 1 {
		back := c.order.Back()
		e := c.order.Remove(back).(*cacheEntry)
		delete(c.items, e.key)
		c.used -= e.size
		c.evictions.Add(1)
	}
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Entries:   c.order.Len(),
		SizeBytes: c.used,
	}
}
