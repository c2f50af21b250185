package pool

import (
	"sync"

	"github.com/libstappler/libstappler-core-sub003/internal/errors"
)

// largeBlock tracks one exact-size allocation made at or above
// blockThreshold. Free marks it idle, and a later Alloc of the exact
// same size takes it back instead of reaching for fresh memory.
type largeBlock struct {
	buf  []byte
	free bool
}

// Pool is a hierarchical memory allocation scope: a bump arena for small
// allocations, an exact-size free list for large ones, a LIFO child
// stack, cleanup hook chains, and a keyed user-data table. Its header
// carries a magic tag, parent/children links, and a free-block list,
// generalized to this project's exact lifecycle semantics.
type Pool struct {
	mu sync.Mutex

	magic uint64
	alloc *Allocator

	parent      *Pool
	firstChild  *Pool // most recently created child; LIFO via nextSibling
	nextSibling *Pool
	prevSibling *Pool

	cur       []byte   // current bump-arena chunk
	chunks    [][]byte // every bump chunk taken since the last Clear
	off       int
	allocated uint64
	returned  uint64

	large []*largeBlock

	cleanups    []cleanupEntry
	preCleanups []cleanupEntry

	userdata map[string]any

	forceCustom bool
	destroyed   bool
}

// CleanupFunc runs when a pool is cleared or destroyed. It must not
// itself allocate from the pool that is invoking it.
type CleanupFunc func(data any)

type cleanupEntry struct {
	fn   CleanupFunc
	data any
}

// PoolOption configures a new Pool.
type PoolOption func(*Pool)

// WithThreadSafe attaches a mutex to the pool's allocator. Use on pools
// shared across goroutines; a pool created without it must only be used
// from one goroutine at a time (allocation itself is still guarded by the
// pool's own mutex regardless).
func WithThreadSafe() PoolOption {
	return func(p *Pool) {
		if p.alloc.mu == nil {
			p.alloc.mu = &sync.Mutex{}
		}
	}
}

// WithForceCustom pins the pool to this module's own implementation:
// the pool refuses to treat any foreign pool as interoperable (see
// AcceptForeign), regardless of magic word or advertised version.
func WithForceCustom() PoolOption {
	return func(p *Pool) { p.forceCustom = true }
}

// WithAllocator attaches an existing Allocator instead of creating a
// fresh one. Use to share chunk recycling across a pool forest that
// would otherwise each hold their own Allocator.
func WithAllocator(a *Allocator) PoolOption {
	return func(p *Pool) { p.alloc = a }
}

// NewRoot creates a pool with no parent, the root of a new hierarchy.
func NewRoot(opts ...PoolOption) *Pool {
	p := &Pool{magic: poolMagic, alloc: NewAllocator()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// New creates a child of parent. The child is linked at the head of
// parent's child list, so Clear destroys children in reverse-registration
// (LIFO) order, matching the invariant that teardown order mirrors
// construction order reversed.
func New(parent *Pool, opts ...PoolOption) *Pool {
	if parent == nil {
		return NewRoot(opts...)
	}
	p := &Pool{magic: poolMagic, alloc: parent.alloc, parent: parent}
	for _, opt := range opts {
		opt(p)
	}

	parent.mu.Lock()
	p.nextSibling = parent.firstChild
	if parent.firstChild != nil {
		parent.firstChild.prevSibling = p
	}
	parent.firstChild = p
	parent.mu.Unlock()
	return p
}

// IsStapplerPool reports whether p carries this project's own pool
// sentinel. It is a closed-world check: it does not attempt to
// recognize any other allocator's magic value (see apr.go for the
// actual interop boundary, which additionally requires a semver match).
func IsStapplerPool(p *Pool) bool {
	return p != nil && p.magic == poolMagic
}

func alignUp(n, alignment uintptr) uintptr {
	return (n + alignment - 1) &^ (alignment - 1)
}

// Alloc returns size bytes of zeroed memory from p, aligned to
// defaultAlignment. Below blockThreshold it comes from p's bump arena
// and is only reclaimed on Clear/Destroy; at or above it, it is tracked
// individually so Free can recycle the exact block.
func (p *Pool) Alloc(size uintptr) []byte {
	return p.AllocAligned(size, defaultAlignment)
}

// AllocAligned is Alloc with a caller-chosen alignment, which must be a
// power of two.
func (p *Pool) AllocAligned(size, alignment uintptr) []byte {
	if alignment == 0 || alignment&(alignment-1) != 0 {
		panic(errors.InvalidSize(alignment, "pool alignment"))
	}
	if size == 0 {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if size >= blockThreshold {
		for _, lb := range p.large {
			if lb.free && uintptr(len(lb.buf)) == size {
				lb.free = false
				clear(lb.buf)
				p.allocated += uint64(size)
				return lb.buf
			}
		}
		buf := make([]byte, size)
		p.large = append(p.large, &largeBlock{buf: buf})
		p.allocated += uint64(size)
		return buf
	}

	aligned := alignUp(size, alignment)
	start := int(alignUp(uintptr(p.off), alignment))
	if p.cur == nil || uintptr(start)+aligned > uintptr(cap(p.cur)) {
		p.cur = p.alloc.chunk(aligned)
		p.chunks = append(p.chunks, p.cur)
		start = 0
	}
	p.off = start + int(aligned)
	p.allocated += uint64(size)
	b := p.cur[start : start+int(size) : start+int(aligned)]
	clear(b) // recycled chunks carry stale bytes; Alloc promises zeroed memory
	return b
}

// Palloc is Alloc under the name the rest of the p-prefixed convenience
// family (Pmemdup, Pstrdup) uses.
func (p *Pool) Palloc(size uintptr) []byte { return p.Alloc(size) }

// Calloc is Alloc with the returned memory guaranteed zeroed. Alloc
// already zeroes, so this only documents intent at the call site.
func (p *Pool) Calloc(size uintptr) []byte { return p.Alloc(size) }

// Pmemdup copies src into a fresh p-owned allocation.
func (p *Pool) Pmemdup(src []byte) []byte {
	b := p.Alloc(uintptr(len(src)))
	copy(b, src)
	return b
}

// Pstrdup copies s into a fresh p-owned allocation and returns it as a
// string header over that memory.
func (p *Pool) Pstrdup(s string) string {
	b := p.Alloc(uintptr(len(s)))
	copy(b, s)
	return string(b)
}

// Free recycles b if it was allocated at or above blockThreshold; it is a
// no-op for small, bump-arena allocations, which can only be reclaimed by
// clearing the whole pool.
func (p *Pool) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, lb := range p.large {
		if !lb.free && &lb.buf[0] == &b[0] {
			lb.free = true
			p.returned += uint64(len(lb.buf))
			return
		}
	}
}

// AllocatedBytes reports the cumulative bytes requested through Alloc
// since the last Clear.
func (p *Pool) AllocatedBytes() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.allocated
}

// ReturnedBytes reports bytes explicitly released through Free.
func (p *Pool) ReturnedBytes() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.returned
}

// Tag returns the pool's magic sentinel.
func (p *Pool) Tag() uint64 { return p.magic }

// Clear runs pre-cleanups, destroys every child (LIFO, recursively),
// runs regular cleanups, then resets the pool's own arena and user-data
// table. The pool handle remains valid and reusable afterward.
// Pre-cleanups always precede descendant teardown, which in turn always
// precedes the owning pool's own regular cleanups.
func (p *Pool) Clear() {
	p.mu.Lock()
	pre := p.preCleanups
	p.preCleanups = nil
	child := p.firstChild
	p.firstChild = nil
	cleanups := p.cleanups
	p.cleanups = nil
	p.large = nil
	p.mu.Unlock()

	for i := len(pre) - 1; i >= 0; i-- {
		pre[i].fn(pre[i].data)
	}

	for c := child; c != nil; {
		next := c.nextSibling
		c.destroyLocked()
		c = next
	}

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i].fn(cleanups[i].data)
	}

	p.mu.Lock()
	for _, c := range p.chunks {
		p.alloc.release(c)
	}
	p.chunks = nil
	p.cur = nil
	p.off = 0
	p.allocated = 0
	p.returned = 0
	p.userdata = nil
	p.mu.Unlock()
}

// destroyLocked runs Clear and detaches the pool from any sibling list it
// still belongs to. Used internally when a parent is tearing down its
// children; it does not touch the parent's own child-list head (the
// caller is already walking and replacing it).
func (p *Pool) destroyLocked() {
	p.Clear()
	p.mu.Lock()
	p.destroyed = true
	p.mu.Unlock()
}

// Destroy clears p and detaches it from its parent. After Destroy the
// pool must not be used again.
func (p *Pool) Destroy() {
	p.Clear()

	p.mu.Lock()
	parent := p.parent
	prev := p.prevSibling
	next := p.nextSibling
	p.destroyed = true
	p.mu.Unlock()

	if parent == nil {
		return
	}
	parent.mu.Lock()
	if prev != nil {
		prev.nextSibling = next
	} else {
		parent.firstChild = next
	}
	if next != nil {
		next.prevSibling = prev
	}
	parent.mu.Unlock()
}
