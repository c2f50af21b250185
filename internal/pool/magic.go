// Package pool implements a hierarchical, region-style memory pool: a
// substrate of parent/child allocation scopes with cleanup hook chains,
// keyed user data, and a goroutine-local "active pool" context stack.
package pool

// poolMagic is this project's own sentinel tag, written into every pool
// header and checked by IsStapplerPool. It is not an APR magic value and
// never claims to be one; interop with a foreign allocator additionally
// requires a semver-gated version match (see apr.go).
const poolMagic uint64 = 0xDEAD7fffDEAD7fff

// blockThreshold is the byte size at or above which an allocation is
// tracked by exact size in the pool's large-block free list instead
// of being served from (and leaked into) the bump arena until Clear.
const blockThreshold = 256

// boundaryIndex/boundarySize/minAlloc are the chunking constants: new
// backing chunks are sized in boundarySize multiples, and an allocator
// never requests less than minAlloc from the underlying runtime per
// chunk.
const (
	boundaryIndex = 12
	boundarySize  = 1 << boundaryIndex // 4096
	minAlloc      = 2 * boundarySize   // 8192
	maxIndex      = 20
)

// defaultAlignment: all pool allocations are aligned to 16 bytes unless
// a caller requests otherwise.
const defaultAlignment = 16
