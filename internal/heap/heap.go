// Package heap implements the generic min-heap priority queue used by
// the default balanced partitioner and by nearest-neighbor search.
//
// Ordering is computed once per element, at insertion time, from a
// caller-supplied key projection — not recomputed on every comparison.
// A max-heap is obtained by negating the key before it reaches the
// heap; that is the only supported derivation.
package heap

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

type item[T any, K constraints.Ordered] struct {
	value T
	key   K
}

type slice[T any, K constraints.Ordered] []item[T, K]

func (s slice[T, K]) Len() int            { return len(s) }
func (s slice[T, K]) Less(i, j int) bool  { return s[i].key < s[j].key }
func (s slice[T, K]) Swap(i, j int)       { s[i], s[j] = s[j], s[i] }
func (s *slice[T, K]) Push(x interface{}) { *s = append(*s, x.(item[T, K])) }
func (s *slice[T, K]) Pop() interface{} {
	old := *s
	n := len(old)
	popped := old[n-1]
	*s = old[:n-1]
	return popped
}

// Heap is a binary min-heap over values of type T, ordered by a key of
// type K computed once per value via a projection function.
type Heap[T any, K constraints.Ordered] struct {
	items slice[T, K]
	key   func(T) K
}

// New creates an empty heap ordered by key(value).
func New[T any, K constraints.Ordered](key func(T) K) *Heap[T, K] {
	return &Heap[T, K]{key: key}
}

// Len returns the number of elements in the heap.
func (h *Heap[T, K]) Len() int {
	return len(h.items)
}

// Push inserts x, computing its key once. O(log n).
func (h *Heap[T, K]) Push(x T) {
	heap.Push(&h.items, item[T, K]{value: x, key: h.key(x)})
}

// Peek returns the element with the minimal key without removing it.
// It panics if the heap is empty.
func (h *Heap[T, K]) Peek() T {
	return h.items[0].value
}

// PeekKey returns the cached key of the minimal element without
// removing it. It panics if the heap is empty.
func (h *Heap[T, K]) PeekKey() K {
	return h.items[0].key
}

// Pop removes and returns the element with the minimal key. O(log n).
// It panics if the heap is empty.
func (h *Heap[T, K]) Pop() T {
	return heap.Pop(&h.items).(item[T, K]).value
}

// PushPop pushes x and then pops and returns the minimal element.
// If x's key is already <= the current minimum, x is returned
// untouched and the heap is not otherwise modified. O(log n).
func (h *Heap[T, K]) PushPop(x T) T {
	if h.Len() == 0 {
		return x
	}
	xk := h.key(x)
	if xk <= h.items[0].key {
		return x
	}
	top := h.items[0].value
	h.items[0] = item[T, K]{value: x, key: xk}
	heap.Fix(&h.items, 0)
	return top
}
