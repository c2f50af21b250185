package container

import "github.com/libstappler/libstappler-core-sub003/internal/pool"

// ForwardList is the public singly-linked list surface built on
// forwardListEngine.
type ForwardList[T any] struct {
	engine *forwardListEngine[T]
}

// NewForwardList creates an empty list allocating nodes from p.
func NewForwardList[T any](p *pool.Pool) *ForwardList[T] {
	return &ForwardList[T]{engine: newForwardListEngine[T](p)}
}

// Len reports the number of elements.
func (l *ForwardList[T]) Len() int { return l.engine.Len() }

// PushFront prepends v.
func (l *ForwardList[T]) PushFront(v T) { l.engine.PushFront(v) }

// PopFront removes and returns the first element.
func (l *ForwardList[T]) PopFront() (T, bool) { return l.engine.PopFront() }

// ExpandFront prepends count elements built by ctor in a single batched
// allocation.
func (l *ForwardList[T]) ExpandFront(count int, ctor func(i int) T) {
	l.engine.ExpandFront(count, ctor)
}

// ShrinkToFit releases fully-idle preallocated batches.
func (l *ForwardList[T]) ShrinkToFit() { l.engine.ShrinkToFit() }

// Iterator walks a ForwardList from front to back.
type Iterator[T any] struct {
	n *flNode[T]
}

// Begin returns an iterator positioned at the first element.
func (l *ForwardList[T]) Begin() Iterator[T] { return Iterator[T]{n: l.engine.head} }

// Valid reports whether the iterator still references an element.
func (it Iterator[T]) Valid() bool { return it.n != nil }

// Value returns the element at the iterator's position.
func (it Iterator[T]) Value() T { return it.n.value }

// Next advances the iterator.
func (it Iterator[T]) Next() Iterator[T] {
	if it.n == nil {
		return it
	}
	return Iterator[T]{n: it.n.next}
}

// Each calls fn for every element in list order.
func (l *ForwardList[T]) Each(fn func(T)) { l.engine.Each(fn) }
