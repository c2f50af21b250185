package pool

import "unsafe"

// accountBytes charges n bytes against the pool's allocation counter
// without handing out raw arena memory, used by the typed allocation
// entry points below.
func (p *Pool) accountBytes(n uintptr) {
	p.mu.Lock()
	p.allocated += uint64(n)
	p.mu.Unlock()
}

// AllocSlice returns a pool-owned slice of n zeroed T values, the typed
// batch-allocation entry point the containers build their node arenas
// on. T may carry pointers, so the backing array cannot be carved out
// of a raw byte slab (the collector scans pool bytes as pointerless);
// instead the pool takes ownership of a normally-allocated array: the
// bytes are charged to the pool's accounting, and a cleanup pins the
// array to the pool's lifetime and zeroes it when the pool is cleared
// or destroyed, so no element survives its pool. Release early with
// ReleaseSlice.
//
// A nil pool yields a plain, unowned allocation.
func AllocSlice[T any](p *Pool, n int) []T {
	if n <= 0 {
		return nil
	}
	s := make([]T, n)
	if p == nil {
		return s
	}
	p.accountBytes(uintptr(n) * unsafe.Sizeof(s[0]))
	p.CleanupRegister(func(any) { clear(s) }, &s[0])
	return s
}

// ReleaseSlice returns a slice obtained from AllocSlice to the pool
// before the pool is cleared, dropping the pool's hold on the backing
// array so it can be reclaimed immediately.
func ReleaseSlice[T any](p *Pool, s []T) {
	if p == nil || len(s) == 0 {
		return
	}
	p.CleanupKill(&s[0], nil)
}

// AllocItem is AllocSlice for a single value: a pool-owned, zeroed *T
// charged to the pool's accounting and zeroed at pool clear. Used by
// the containers' one-off node path when no preallocated batch can
// serve a request.
//
// A nil pool yields a plain, unowned allocation.
func AllocItem[T any](p *Pool) *T {
	v := new(T)
	if p == nil {
		return v
	}
	p.accountBytes(unsafe.Sizeof(*v))
	p.CleanupRegister(func(any) {
		var zero T
		*v = zero
	}, v)
	return v
}

// ReleaseItem returns a value obtained from AllocItem to the pool
// before the pool is cleared.
func ReleaseItem[T any](p *Pool, v *T) {
	if p == nil || v == nil {
		return
	}
	p.CleanupKill(v, nil)
}
