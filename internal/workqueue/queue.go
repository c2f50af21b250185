package workqueue

import "github.com/libstappler/libstappler-core-sub003/internal/pool"

// Queue is a multi-producer/single-consumer priority queue: Push is safe
// to call concurrently (subject to the configured lock), entries pop in
// ascending-priority order (lower Priority value pops first), and equal-
// priority entries preserve insertion order unless a Push explicitly
// asks to jump the equal-priority run with insertFirst. The insert walk
// has four branches:
//
//  1. empty queue: becomes the only node.
//  2. new priority is lower than the current head's: becomes the new
//     head.
//  3. new priority ties the head's and insertFirst is requested: becomes
//     the new head, pushing the old head (and its equal-priority run)
//     back.
//  4. otherwise: walk forward past every node whose priority is less
//     than or equal to the new one (or, within an equal-priority run,
//     past every node if insertFirst is false) and splice in after.
type Queue[T any] struct {
	p *pool.Pool

	inline     [preallocatedNodes]node[T]
	inlineUsed [preallocatedNodes]bool

	queue nodeInterface[T]
	free  nodeInterface[T]

	blocks []*storageBlock[T]
	count  int
}

// New creates an empty Queue whose storage blocks are allocated from p
// once the inline nodes run out. lockFn, if non-nil, is invoked around
// mutating operations on both the live queue and the free list
// independently.
func New[T any](p *pool.Pool, lockFn LockFn) *Queue[T] {
	q := &Queue[T]{p: p}
	q.queue.lock = lockFn
	q.free.lock = lockFn
	return q
}

// SetLocks installs separate lock functions and opaque payloads for the
// live queue and the free list. Callers must quiesce producers and
// consumers before changing the locks.
func (q *Queue[T]) SetLocks(queueLock LockFn, queueData any, freeLock LockFn, freeData any) {
	q.queue.lock, q.queue.data = queueLock, queueData
	q.free.lock, q.free.data = freeLock, freeData
}

// Len reports the number of queued entries.
func (q *Queue[T]) Len() int { return q.count }

// allocateNode hands out a node under the free-list lock: a recycled
// free-list node, an unused inline slot, or the first node of a freshly
// preallocated block whose remaining storageNodes-1 nodes are threaded
// onto the free list so the following allocations drain this block
// instead of each allocating a whole new one.
func (q *Queue[T]) allocateNode() *node[T] {
	q.free.Lock()
	defer q.free.Unlock()

	if n := q.free.head; n != nil {
		q.free.head = n.next
		n.next = nil
		if n.block != nil {
			n.block.used++
		}
		return n
	}

	for i := range q.inlineUsed {
		if !q.inlineUsed[i] {
			q.inlineUsed[i] = true
			return &q.inline[i]
		}
	}

	b := pool.AllocItem[storageBlock[T]](q.p)
	q.blocks = append(q.blocks, b)
	for i := range b.nodes {
		b.nodes[i].block = b
	}
	b.used = 1
	for i := len(b.nodes) - 1; i >= 1; i-- {
		b.nodes[i].next = q.free.head
		q.free.head = &b.nodes[i]
	}
	return &b.nodes[0]
}

// freeNode returns n to the free list, releasing n's owning block once
// every node cut from it is idle again: the vacated block's nodes are
// spliced out of the free list and the block is handed back to the
// pool, driven by a plain per-block liveness counter. A node that is
// neither inline nor block-backed is dropped immediately rather than
// retained, so the free list never grows without bound.
func (q *Queue[T]) freeNode(n *node[T]) {
	var zero T
	n.value = zero

	q.free.Lock()
	defer q.free.Unlock()

	if n.block == nil {
		for i := range q.inline {
			if &q.inline[i] == n {
				q.inlineUsed[i] = false
				return
			}
		}
		return
	}

	b := n.block
	b.used--
	if b.used > 0 {
		n.next = q.free.head
		q.free.head = n
		return
	}

	// Every node of b is idle: splice b's remaining nodes out of the
	// free list and drop the whole block.
	var head, tail *node[T]
	cur := q.free.head
	for cur != nil {
		next := cur.next
		if cur.block != b {
			cur.next = nil
			if tail == nil {
				head = cur
			} else {
				tail.next = cur
			}
			tail = cur
		}
		cur = next
	}
	q.free.head = head

	for i, blk := range q.blocks {
		if blk == b {
			q.blocks = append(q.blocks[:i], q.blocks[i+1:]...)
			break
		}
	}
	pool.ReleaseItem(q.p, b)
}

// Push inserts value at priority, jumping ahead of any existing
// equal-priority run when insertFirst is true.
func (q *Queue[T]) Push(value T, priority int32, insertFirst bool) {
	n := q.allocateNode()
	n.value = value
	n.priority = priority

	q.queue.Lock()
	defer q.queue.Unlock()
	q.count++

	head := q.queue.head
	if head == nil {
		n.next = nil
		q.queue.head = n
		return
	}
	if priority < head.priority || (priority == head.priority && insertFirst) {
		n.next = head
		q.queue.head = n
		return
	}

	prev := head
	cur := head.next
	for cur != nil && cur.priority <= priority {
		if cur.priority == priority && insertFirst {
			break
		}
		prev = cur
		cur = cur.next
	}
	n.next = cur
	prev.next = n
}

// PopPrefix removes the lowest-priority entry, moves its value out, frees
// the node, then invokes fn with the entry's priority and the moved-out
// value. Use this form when fn is comparatively expensive or the value
// is cheap to move, so the node is recycled before fn runs.
func (q *Queue[T]) PopPrefix(fn func(priority int32, v T)) bool {
	q.queue.Lock()
	n := q.queue.head
	if n == nil {
		q.queue.Unlock()
		return false
	}
	q.queue.head = n.next
	q.count--
	q.queue.Unlock()

	v, prio := n.value, n.priority
	q.freeNode(n)
	fn(prio, v)
	return true
}

// PopDirect removes the lowest-priority entry and invokes fn with the
// entry's priority and the value still node-resident, freeing the node
// only after fn returns. Use this form when fn is short and the value
// would be expensive to move.
func (q *Queue[T]) PopDirect(fn func(priority int32, v T)) bool {
	q.queue.Lock()
	n := q.queue.head
	if n == nil {
		q.queue.Unlock()
		return false
	}
	q.queue.head = n.next
	q.count--
	q.queue.Unlock()

	fn(n.priority, n.value)
	q.freeNode(n)
	return true
}

// Foreach calls fn for every queued entry in priority order without
// removing them.
func (q *Queue[T]) Foreach(fn func(T)) {
	q.queue.Lock()
	defer q.queue.Unlock()
	for n := q.queue.head; n != nil; n = n.next {
		fn(n.value)
	}
}

// Clear removes every entry without invoking any callback, temporarily
// disabling both the queue and free-list locks while it drains (they are
// not needed mid-drain since Clear owns the whole structure for its
// duration) and restoring them before returning. Callers must quiesce
// producers first.
func (q *Queue[T]) Clear() {
	savedQueueLock, savedFreeLock := q.queue.lock, q.free.lock
	q.queue.lock, q.free.lock = nil, nil

	for n := q.queue.head; n != nil; {
		next := n.next
		q.freeNode(n)
		n = next
	}
	q.queue.head = nil
	q.count = 0

	q.queue.lock, q.free.lock = savedQueueLock, savedFreeLock
}

// FreeCapacity reports how many nodes are currently idle on the free
// list plus inline slots, available for reuse without a new allocation.
func (q *Queue[T]) FreeCapacity() int {
	q.free.Lock()
	defer q.free.Unlock()
	n := 0
	for cur := q.free.head; cur != nil; cur = cur.next {
		n++
	}
	for _, used := range q.inlineUsed {
		if !used {
			n++
		}
	}
	return n
}
