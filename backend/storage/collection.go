package storage

import "sync"

// collection is a keyed set of records that remembers insertion order.
// The lock only keeps the map safe; callers get no isolation across calls.
type collection[T any] struct {
	mu    sync.RWMutex
	keys  []string
	items map[string]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: map[string]T{}}
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// put overwrites unconditionally. A replaced key keeps its original position.
func (c *collection[T]) put(id string, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[id]; !exists {
		c.keys = append(c.keys, id)
	}
	c.items[id] = item
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.keys))
	for _, id := range c.keys {
		out = append(out, c.items[id])
	}
	return out
}

// filter returns matching records in insertion order. The result is never nil.
func (c *collection[T]) filter(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []T{}
	for _, id := range c.keys {
		if item := c.items[id]; match(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *collection[T]) find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, id := range c.keys {
		if item := c.items[id]; match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// update applies fn to the first record matching match and stores the result.
func (c *collection[T]) update(match func(T) bool, fn func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range c.keys {
		item := c.items[id]
		if !match(item) {
			continue
		}
		fn(&item)
		c.items[id] = item
		return item, true
	}
	var zero T
	return zero, false
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.keys)
}
