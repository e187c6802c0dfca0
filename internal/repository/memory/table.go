package memory

import (
	"sync"
)

// Table is a concurrency-safe in-memory collection keyed by id. Insertion
// order is preserved so listings stay deterministic across calls.
//
// The lock guards memory safety only; callers composing a read with a later
// write (check-then-act) get no atomicity across the two calls.
type Table[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{items: make(map[string]T)}
}

func (t *Table[T]) Insert(id string, item T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.items[id]; !ok {
		t.order = append(t.order, id)
	}
	t.items[id] = item
}

func (t *Table[T]) Get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	item, ok := t.items[id]
	return item, ok
}

// Replace overwrites an existing row. It reports false when the id is
// unknown, leaving the table untouched.
func (t *Table[T]) Replace(id string, item T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.items[id]; !ok {
		return false
	}
	t.items[id] = item
	return true
}

// Delete removes a row if present. Deleting an unknown id is a no-op.
func (t *Table[T]) Delete(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.items[id]; !ok {
		return
	}
	delete(t.items, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// List returns all rows in insertion order.
func (t *Table[T]) List() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.items[id])
	}
	return out
}

// Find returns the first row (in insertion order) matching the predicate.
func (t *Table[T]) Find(pred func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, id := range t.order {
		if item := t.items[id]; pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns all rows matching the predicate, in insertion order.
func (t *Table[T]) Filter(pred func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []T
	for _, id := range t.order {
		if item := t.items[id]; pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Count returns how many rows match the predicate.
func (t *Table[T]) Count(pred func(T) bool) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := 0
	for _, id := range t.order {
		if pred(t.items[id]) {
			n++
		}
	}
	return n
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}
