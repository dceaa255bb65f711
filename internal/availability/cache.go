package availability

import (
	"sync"

	"fitcoach/internal/metrics"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache keeps resolved slot lists per date. A nil *Cache is a valid, always
// missing cache.
//
// Every Invalidate bumps a generation counter; Store drops results computed
// under an older generation so a read racing a write cannot repopulate stale
// data.
type Cache struct {
	mu         sync.Mutex
	lru        *lru.Cache[string, []TimeSlot]
	generation uint64
}

func NewCache(size int) (*Cache, error) {
	l, err := lru.New[string, []TimeSlot](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

// Get returns a copy of the cached slots and the generation to pass to Store.
func (c *Cache) Get(date string) ([]TimeSlot, uint64, bool) {
	if c == nil {
		return nil, 0, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	slots, ok := c.lru.Get(date)
	metrics.RecordCache(ok)
	if !ok {
		return nil, c.generation, false
	}
	return cloneSlots(slots), c.generation, true
}

func (c *Cache) Store(date string, generation uint64, slots []TimeSlot) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return
	}
	c.lru.Add(date, cloneSlots(slots))
}

func (c *Cache) Invalidate(date string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.lru.Remove(date)
}

func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func cloneSlots(in []TimeSlot) []TimeSlot {
	out := make([]TimeSlot, len(in))
	copy(out, in)
	return out
}
