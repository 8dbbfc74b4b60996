// Package blockcache provides a bounded FIFO cache of fetched blocks keyed by hash.
package blockcache

import (
	"fmt"
	"sync"
)

// DefaultCapacity is the number of blocks kept when no capacity is given.
const DefaultCapacity = 1000

// Cache keeps the most recently inserted blocks. Eviction follows insertion
// order only; Get does not refresh an entry.
type Cache[T any] struct {
	mu       sync.Mutex
	capacity int
	blocks   map[string]T
	order    []string
}

// New constructs a Cache holding at most capacity hashes.
func New[T any](capacity int) (*Cache[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("block cache capacity must be non-negative, got %d", capacity)
	}
	return &Cache[T]{
		capacity: capacity,
		blocks:   make(map[string]T, capacity),
		order:    make([]string, 0, capacity),
	}, nil
}

// NewDefault constructs a Cache with DefaultCapacity.
func NewDefault[T any]() *Cache[T] {
	c, _ := New[T](DefaultCapacity)
	return c
}

// Put inserts or overwrites the block stored under hash.
// Re-inserting a hash records it again in the insertion order.
func (c *Cache[T]) Put(hash string, block T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.blocks[hash] = block
	c.order = append(c.order, hash)
	c.evict()
}

// Get returns the block stored under hash.
func (c *Cache[T]) Get(hash string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	block, ok := c.blocks[hash]
	return block, ok
}

// Len reports the number of cached blocks.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.blocks)
}

// evict drops the oldest insertions until the order list fits the capacity.
// Stale order entries for hashes that are already gone are harmless.
func (c *Cache[T]) evict() {
	for len(c.order) > c.capacity {
		oldest := c.order[0]
		c.order[0] = ""
		c.order = c.order[1:]
		delete(c.blocks, oldest)
	}
}
