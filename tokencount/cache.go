package tokencount

import (
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultCacheCapacity is the fixed estimate-cache size (spec.md §4.7).
const DefaultCacheCapacity = 4096

// Cache is a bulk-flush cache from raw text to its estimated token count,
// mirroring classify.ComputeCache's eviction policy: simpler than true LRU,
// the whole map clears on overflow instead of evicting the single oldest
// entry (spec.md §5).
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  *orderedmap.OrderedMap[string, int]
}

// NewCache builds a cache with the given capacity; capacity <= 0 uses
// DefaultCacheCapacity.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  orderedmap.New[string, int](),
	}
}

// Get returns the cached estimate for text and whether it was present.
func (c *Cache) Get(text string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Get(text)
}

// Put stores an estimate for text, bulk-flushing first if the cache is at
// capacity.
func (c *Cache) Put(text string, estimate int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries.Len() >= c.capacity {
		c.entries = orderedmap.New[string, int]()
	}
	c.entries.Set(text, estimate)
}

// Len reports the current number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

var defaultCache = NewCache(DefaultCacheCapacity)
