package container

import "github.com/libstappler/libstappler-core-sub003/internal/pool"

// flNode is one singly-linked forward-list node. The batch/prealloc
// fields mirror rbNode's. batch is a direct pointer rather than a slice
// index so a node stays valid across ShrinkToFit compacting batches.
type flNode[T any] struct {
	next     *flNode[T]
	prealloc bool
	batch    *flBatch[T]
	value    T
}

type flBatch[T any] struct {
	nodes []flNode[T]
	live  int
}

// forwardListEngine is a singly-linked list with a private freelist and
// batched-node preallocation: ExpandFront takes a contiguous run of
// nodes in one pool call instead of one per element.
type forwardListEngine[T any] struct {
	p     *pool.Pool
	head  *flNode[T]
	count int

	free    []*flNode[T]
	batches []*flBatch[T]
}

func newForwardListEngine[T any](p *pool.Pool) *forwardListEngine[T] {
	return &forwardListEngine[T]{p: p}
}

func (e *forwardListEngine[T]) allocNode() *flNode[T] {
	if n := len(e.free); n > 0 {
		node := e.free[n-1]
		e.free = e.free[:n-1]
		if node.prealloc {
			node.batch.live++
		}
		node.next = nil
		return node
	}
	return pool.AllocItem[flNode[T]](e.p)
}

func (e *forwardListEngine[T]) freeNode(n *flNode[T]) {
	if n.prealloc {
		n.batch.live--
	}
	n.next = nil
	var zero T
	n.value = zero
	e.free = append(e.free, n)
}

// ExpandFront preallocates count nodes as one contiguous pool-owned
// batch and links each, initialized by ctor(i), onto the front of the
// list in order.
func (e *forwardListEngine[T]) ExpandFront(count int, ctor func(i int) T) {
	if count <= 0 {
		return
	}
	b := &flBatch[T]{nodes: pool.AllocSlice[flNode[T]](e.p, count)}
	e.batches = append(e.batches, b)
	for i := count - 1; i >= 0; i-- {
		node := &b.nodes[i]
		node.prealloc = true
		node.batch = b
		node.value = ctor(i)
		node.next = e.head
		e.head = node
		b.live++
	}
	e.count += count
}

// PushFront allocates (or reuses) a single node.
func (e *forwardListEngine[T]) PushFront(v T) {
	n := e.allocNode()
	n.value = v
	n.next = e.head
	e.head = n
	e.count++
}

// PopFront removes and returns the first element.
func (e *forwardListEngine[T]) PopFront() (T, bool) {
	if e.head == nil {
		var zero T
		return zero, false
	}
	n := e.head
	e.head = n.next
	v := n.value
	e.freeNode(n)
	e.count--
	return v, true
}

// Len reports the number of elements.
func (e *forwardListEngine[T]) Len() int { return e.count }

// Each calls fn for every element in list order.
func (e *forwardListEngine[T]) Each(fn func(T)) {
	for n := e.head; n != nil; n = n.next {
		fn(n.value)
	}
}

// ShrinkToFit releases fully-idle batches and leaves the rest in the
// free list. Dropped batches' nodes are purged from the free list too,
// since an idle batch's nodes are necessarily all sitting there.
func (e *forwardListEngine[T]) ShrinkToFit() {
	dropped := make(map[*flBatch[T]]bool)
	live := e.batches[:0]
	for _, b := range e.batches {
		if b.live > 0 {
			live = append(live, b)
		} else {
			dropped[b] = true
			pool.ReleaseSlice(e.p, b.nodes)
		}
	}
	e.batches = live

	if len(dropped) == 0 {
		return
	}
	keep := e.free[:0]
	for _, n := range e.free {
		if n.batch == nil || !dropped[n.batch] {
			keep = append(keep, n)
		}
	}
	e.free = keep
}
