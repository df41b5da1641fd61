package classify

import (
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/coderdayton/localmind/solver"
)

// DefaultCacheCapacity is the fixed cache size spec.md §4.5 suggests.
const DefaultCacheCapacity = 2048

// ComputeCache is a bulk-flush cache keyed by raw input text: only
// successful results are stored, and the whole map is cleared on overflow
// rather than evicting the single oldest entry (spec.md §5's "simpler than
// true LRU" policy). It is safe for concurrent use.
type ComputeCache struct {
	mu       sync.Mutex
	capacity int
	entries  *orderedmap.OrderedMap[string, solver.ComputeResult]
}

// NewComputeCache builds a cache with the given capacity; capacity <= 0
// uses DefaultCacheCapacity.
func NewComputeCache(capacity int) *ComputeCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &ComputeCache{
		capacity: capacity,
		entries:  orderedmap.New[string, solver.ComputeResult](),
	}
}

// Get returns a cached result for text, with TimeMS zeroed to reflect a
// cache hit, and whether it was present.
func (c *ComputeCache) Get(text string) (solver.ComputeResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	result, ok := c.entries.Get(text)
	if !ok {
		return solver.Unsolved, false
	}
	result.TimeMS = 0
	return result, true
}

// Put stores a solved result for text. Unsolved results are never stored.
// When the cache is at capacity, it bulk-flushes before inserting.
func (c *ComputeCache) Put(text string, result solver.ComputeResult) {
	if !result.Solved {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries.Len() >= c.capacity {
		c.entries = orderedmap.New[string, solver.ComputeResult]()
	}
	c.entries.Set(text, result)
}

// Len reports the current number of cached entries.
func (c *ComputeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}
