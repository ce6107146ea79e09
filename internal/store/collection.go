// Package store keeps the in-memory entity collections the console renders from.
package store

import (
	"sync"

	"github.com/rookgm/salesadmin/internal/models"
)

// Collection is an ordered set of entities with at most one entity per key.
// Newly created entities are prepended so the collection reads newest first.
type Collection[T models.Entity] struct {
	mu        sync.RWMutex
	name      string
	items     []T
	listeners []func(name string)
}

// NewCollection creates new empty Collection
func NewCollection[T models.Entity](name string) *Collection[T] {
	return &Collection[T]{name: name, items: []T{}}
}

// Name returns the collection name used in change notifications
func (c *Collection[T]) Name() string {
	return c.name
}

// Subscribe registers fn to be called after every mutation
func (c *Collection[T]) Subscribe(fn func(name string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// ReplaceAll replaces the whole collection, used after a bulk load.
// Later duplicates of a key are dropped.
func (c *Collection[T]) ReplaceAll(items []T) {
	fresh := make([]T, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.Key()]; ok {
			continue
		}
		seen[item.Key()] = struct{}{}
		fresh = append(fresh, item)
	}

	c.mu.Lock()
	c.items = fresh
	c.mu.Unlock()

	c.notify()
}

// Upsert replaces the entity with the same key in place, or prepends it
func (c *Collection[T]) Upsert(item T) {
	c.mu.Lock()
	if i := c.indexOf(item.Key()); i >= 0 {
		c.items[i] = item
	} else {
		c.items = append([]T{item}, c.items...)
	}
	c.mu.Unlock()

	c.notify()
}

// RemoveByID removes the entity with key id. Removing an absent key is a no-op.
func (c *Collection[T]) RemoveByID(id string) bool {
	c.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return false
	}
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	c.mu.Unlock()

	c.notify()
	return true
}

// Get returns the entity with key id
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Snapshot returns a copy of the collection in display order
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of entities
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].Key() == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) notify() {
	c.mu.RLock()
	listeners := make([]func(string), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.RUnlock()

	for _, fn := range listeners {
		fn(c.name)
	}
}
