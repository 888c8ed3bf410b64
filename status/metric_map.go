package status

import (
	"sort"
	"sync"
)

// Table maps metric names to stable pointers of T
// Creation takes the write lock; reading through a cached pointer takes none
type Table[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewTable creates an empty Table
func NewTable[T any]() *Table[T] {
	return &Table[T]{items: make(map[string]*T)}
}

// Get returns the pointer for key, creating a zero value on first use
func (t *Table[T]) Get(key string) *T {
	t.mu.RLock()
	ptr, ok := t.items[key]
	t.mu.RUnlock()
	if ok {
		return ptr
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if ptr, ok := t.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	t.items[key] = ptr
	return ptr
}

// Lookup returns the pointer for key without creating it
func (t *Table[T]) Lookup(key string) (*T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ptr, ok := t.items[key]
	return ptr, ok
}

// Keys returns registered names in sorted order
func (t *Table[T]) Keys() []string {
	t.mu.RLock()
	keys := make([]string, 0, len(t.items))
	for k := range t.items {
		keys = append(keys, k)
	}
	t.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// Each calls fn for every metric in key order
func (t *Table[T]) Each(fn func(key string, ptr *T)) {
	for _, k := range t.Keys() {
		if ptr, ok := t.Lookup(k); ok {
			fn(k, ptr)
		}
	}
}

// Len returns the number of registered metrics
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}
