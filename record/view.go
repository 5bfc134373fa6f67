package record

import (
	"iter"
	"maps"
	"slices"
)

// List is a read-only view over the live backing slice of a repeated field.
// It does not own the storage: elements added to the record after the view
// was obtained are visible through it. Mutation has no surface here at all;
// use the record's Add/Set/Remove/Clear methods instead.
type List[T any] struct {
	items []T
}

// NewList wraps a backing slice. Intended for generated code.
func NewList[T any](items []T) List[T] {
	return List[T]{items: items}
}

func (l List[T]) Len() int {
	return len(l.items)
}

// Get returns the element at index i. Panics with an IndexError when i is
// outside [0, Len), including on an empty view.
func (l List[T]) Get(i int) T {
	CheckIndex(i, len(l.items))
	return l.items[i]
}

// All iterates elements in order.
func (l List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Slice returns a fresh copy of the elements. The backing storage is never
// exposed directly.
func (l List[T]) Slice() []T {
	return slices.Clone(l.items)
}

// Map is the read-only counterpart of List for map fields.
type Map[K comparable, V any] struct {
	items map[K]V
}

// NewMap wraps a backing map. Intended for generated code.
func NewMap[K comparable, V any](items map[K]V) Map[K, V] {
	return Map[K, V]{items: items}
}

func (m Map[K, V]) Len() int {
	return len(m.items)
}

func (m Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.items[k]
	return v, ok
}

// GetOrDefault returns the value for k, or def when k is absent. Never
// panics.
func (m Map[K, V]) GetOrDefault(k K, def V) V {
	if v, ok := m.items[k]; ok {
		return v
	}
	return def
}

// MustGet returns the value for k and panics with a KeyError when k is
// absent.
func (m Map[K, V]) MustGet(k K) V {
	v, ok := m.items[k]
	if !ok {
		panic(&KeyError{Key: k})
	}
	return v
}

func (m Map[K, V]) Contains(k K) bool {
	_, ok := m.items[k]
	return ok
}

// All iterates entries in unspecified order.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m.items {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Clone returns a fresh shallow copy of the entries.
func (m Map[K, V]) Clone() map[K]V {
	if m.items == nil {
		return nil
	}
	return maps.Clone(m.items)
}
