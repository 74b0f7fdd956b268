package clock

import (
	"iter"

	"github.com/jeromefroe/clock-cache/internal/slots"
)

type (
	store[Key comparable, Value any] = slots.Store[Key, Value]
	// Cache utilizes the CLOCK (second-chance) replacement algorithm.
	// Concurrent access must be guarded by the caller.
	// Constructed by [New].
	Cache[Key comparable, Value any] struct {
		index map[Key]int
		store store[Key, Value]
		// Slot positions vacated by Pop, reused before never-used slots.
		free     []int
		capacity int
		// fill is the count of slots that have ever been occupied;
		// slots in [fill, capacity) have never held an entry.
		fill int
		hand int
	}
)

// MinimumCapacity defines the lowest value supported by [New].
const MinimumCapacity = 1

// New creates a [Cache] holding at most capacity entries.
// Capacity must be at least [MinimumCapacity]; the slot arena
// is allocated once here and reused for the cache's lifetime.
func New[Key comparable, Value any](capacity int) (*Cache[Key, Value], error) {
	if capacity < MinimumCapacity {
		return nil, minCapacityError(capacity)
	}
	return &Cache[Key, Value]{
		capacity: capacity,
		index:    make(map[Key]int, capacity),
		store:    slots.New[Key, Value](capacity),
	}, nil
}

// Get returns the Value for key if it is resident in the cache,
// and marks it as referenced; otherwise it returns the zero value
// and false. A miss has no side effects; a hit never moves the
// entry or the clock hand.
func (c *Cache[Key, Value]) Get(key Key) (Value, bool) {
	if position, hit := c.index[key]; hit {
		c.store.MarkReferenced(position)
		return c.store.Read(position).Value, true
	}
	var zero Value
	return zero, false
}

// Set inserts or updates key with value and marks it as referenced.
// Updating a resident key never evicts; inserting into a full cache
// evicts exactly one entry, chosen by the clock hand.
func (c *Cache[Key, Value]) Set(key Key, value Value) {
	if position, hit := c.index[key]; hit {
		resident := c.store.Read(position)
		resident.Value = value
		resident.Referenced = true
		return
	}
	position, hadRoom := c.takeFree()
	if !hadRoom {
		position = c.evict()
	}
	c.store.Write(position, key, value)
	c.index[key] = position
}

// Load returns the cached value for key (if resident). Otherwise, it calls
// fetch, inserts and returns the value on success.
// If fetch returns an error, the value is not cached.
func (c *Cache[Key, Value]) Load(key Key, fetch func() (Value, error)) (Value, error) {
	if value, hit := c.Get(key); hit {
		return value, nil
	}
	value, err := fetch()
	if err != nil {
		return value, err
	}
	c.Set(key, value)
	return value, nil
}

// Peek returns the Value for key without marking it as referenced;
// the entry remains as exposed to eviction as it was before the call.
func (c *Cache[Key, Value]) Peek(key Key) (Value, bool) {
	if position, hit := c.index[key]; hit {
		return c.store.Read(position).Value, true
	}
	var zero Value
	return zero, false
}

// Contains reports whether key is resident in the cache
// without marking it as referenced.
func (c *Cache[Key, _]) Contains(key Key) bool {
	_, hit := c.index[key]
	return hit
}

// Pop removes key from the cache and reports whether it was resident.
// The vacated slot is recycled by a later insertion.
func (c *Cache[Key, Value]) Pop(key Key) bool {
	position, hit := c.index[key]
	if !hit {
		return false
	}
	delete(c.index, key)
	c.store.Clear(position)
	c.free = append(c.free, position)
	return true
}

// takeFree returns an unoccupied slot position if the cache has room:
// positions vacated by [Cache.Pop] first, then the next never-used slot.
func (c *Cache[_, _]) takeFree() (int, bool) {
	if last := len(c.free) - 1; last >= 0 {
		position := c.free[last]
		c.free = c.free[:last]
		return position, true
	}
	if c.fill < c.capacity {
		position := c.fill
		c.fill++
		return position, true
	}
	return -1, false
}

// evict runs the eviction sweep: starting at the clock hand, referenced
// slots are cleared and skipped (their second chance) and the first
// unreferenced slot in hand order is the victim. The victim's key is
// removed from the index, the hand parks one step past the victim, and
// the freed position is returned. Every referenced slot is cleared
// before the hand advances, so the sweep selects a victim within at
// most one clearing revolution plus one step.
func (c *Cache[Key, Value]) evict() int {
	if debugging {
		assert(len(c.index) == c.capacity,
			"eviction sweep on a cache that still has room")
		assert(c.hand >= 0 && c.hand < c.capacity,
			"clock hand out of slot range")
	}
	for c.store.IsReferenced(c.hand) {
		c.store.ClearReferenced(c.hand)
		c.hand = (c.hand + 1) % c.capacity
	}
	victim := c.hand
	if debugging {
		assert(c.store.IsOccupied(victim),
			"eviction sweep stopped on an empty slot")
	}
	delete(c.index, c.store.Read(victim).Key)
	c.hand = (victim + 1) % c.capacity
	return victim
}

// Len returns the number of resident entries.
func (c *Cache[_, _]) Len() int {
	return len(c.index)
}

// Cap returns the maximum number of entries the cache can hold.
func (c *Cache[_, _]) Cap() int {
	return c.capacity
}

// Keys returns an iterator over the (unordered) keys of resident entries.
func (c *Cache[Key, _]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for key := range c.index {
			if !yield(key) {
				return
			}
		}
	}
}
