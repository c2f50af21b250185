package pool

import (
	"sync"

	"github.com/libstappler/libstappler-core-sub003/internal/errors"
)

// slabClass is one size-classed free list inside an Allocator, indexed by
// log2(size/boundarySize). Recycled chunks are pushed back here when a
// pool using this allocator is cleared.
type slabClass struct {
	size     uintptr
	freeList [][]byte
}

// Allocator backs one or more pools with chunk-granular memory, using a
// size-classed free list indexed by log2(size/boundarySize) instead of a
// fixed five-bucket table.
type Allocator struct {
	mu          *sync.Mutex // nil when the allocator is not thread-safe
	classes     [maxIndex]slabClass
	maxFree     uintptr // ALLOCATOR_MAX_FREE_UNLIMITED when 0
	reservedCap uintptr // soft cap standing in for the mmap reservation
	reserved    uintptr

	interopVersion string // advertised version for apr.go's semver gate
}

// AllocatorOption configures a new Allocator.
type AllocatorOption func(*Allocator)

// WithAllocatorThreadSafe attaches a mutex guarding every slab class,
// needed when pools built on this allocator are shared across
// goroutines.
func WithAllocatorThreadSafe() AllocatorOption {
	return func(a *Allocator) { a.mu = &sync.Mutex{} }
}

// WithMaxFree bounds how many bytes of freed chunks the allocator retains
// across all size classes before chunks are released for GC instead of
// being recycled. Zero (the default) means unlimited, matching
// ALLOCATOR_MAX_FREE_UNLIMITED.
func WithMaxFree(n uintptr) AllocatorOption {
	return func(a *Allocator) { a.maxFree = n }
}

// WithReservation sets a soft virtual-address ceiling the allocator will
// not allocate past; it stands in for a 64 GiB mmap reservation, since
// Go offers no portable reserve-without-commit primitive over ordinary
// heap slices.
func WithReservation(bytes uintptr) AllocatorOption {
	return func(a *Allocator) { a.reservedCap = bytes }
}

// WithInteropVersion records the semver-compatible version this allocator
// advertises at the APR-interop boundary (see apr.go).
func WithInteropVersion(v string) AllocatorOption {
	return func(a *Allocator) { a.interopVersion = v }
}

// NewAllocator constructs a standalone Allocator. Pools normally share one
// Allocator via their root.
func NewAllocator(opts ...AllocatorOption) *Allocator {
	a := &Allocator{}
	for i := range a.classes {
		a.classes[i].size = boundarySize << uint(i)
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Allocator) lock() {
	if a.mu != nil {
		a.mu.Lock()
	}
}

func (a *Allocator) unlock() {
	if a.mu != nil {
		a.mu.Unlock()
	}
}

func classIndex(size uintptr) int {
	idx := 0
	n := boundarySize
	for uintptr(n) < size && idx < maxIndex-1 {
		n <<= 1
		idx++
	}
	return idx
}

// FreeChunks reports how many recycled chunks are currently parked on
// the allocator's free lists across all size classes.
func (a *Allocator) FreeChunks() int {
	a.lock()
	defer a.unlock()
	n := 0
	for i := range a.classes {
		n += len(a.classes[i].freeList)
	}
	return n
}

// ReservedBytes reports the bytes of chunk memory currently held by this
// allocator, in use or parked on a free list.
func (a *Allocator) ReservedBytes() uintptr {
	a.lock()
	defer a.unlock()
	return a.reserved
}

// chunk returns a byte slice of at least size bytes, reused from a size
// class's free list when available. Exhaustion of the soft reservation
// cap is fatal.
func (a *Allocator) chunk(size uintptr) []byte {
	if size < minAlloc {
		size = minAlloc
	}
	idx := classIndex(size)

	a.lock()
	cls := &a.classes[idx]
	if n := len(cls.freeList); n > 0 {
		b := cls.freeList[n-1]
		cls.freeList = cls.freeList[:n-1]
		a.unlock()
		return b[:0]
	}

	// reserved counts every live chunk, in use or parked on a free list;
	// it only shrinks when release drops a chunk past the max-free cap.
	allocSize := cls.size
	if a.reservedCap != 0 && a.reserved+allocSize > a.reservedCap {
		a.unlock()
		panic(errors.ExhaustedAllocator(allocSize))
	}
	a.reserved += allocSize
	a.unlock()
	return make([]byte, 0, allocSize)
}

// release returns a chunk to its size class's free list, subject to the
// allocator's max-free cap.
func (a *Allocator) release(b []byte) {
	if cap(b) == 0 {
		return
	}
	idx := classIndex(uintptr(cap(b)))
	a.lock()
	defer a.unlock()
	cls := &a.classes[idx]
	if a.maxFree != 0 {
		var held uintptr
		for i := range a.classes {
			for _, f := range a.classes[i].freeList {
				held += uintptr(cap(f))
			}
		}
		if held+uintptr(cap(b)) > a.maxFree {
			a.reserved -= uintptr(cap(b))
			return
		}
	}
	cls.freeList = append(cls.freeList, b[:0])
}
