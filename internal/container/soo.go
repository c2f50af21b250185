package container

import "github.com/libstappler/libstappler-core-sub003/internal/pool"

// smallBufBytes is the inline capacity of Buffer's small representation.
// All 24 bytes hold content: no inline byte is reserved as a marker, and
// the length is kept in a separate field in both representations.
const smallBufBytes = 24

// largeBit is the pool.Tagged flag bit discriminating the small and
// large representations.
const largeBit = 0

// Buffer is a pool-aware, small-object-optimized byte buffer: short
// contents live inline with no pool allocation at all, longer contents
// are promoted to a single pool-owned backing slice. The owning pool is
// carried as a tagged handle whose low bit is the small/large
// discriminator. Promotion is one-way: once large, a subsequent Clear
// does not demote the buffer back to the inline representation.
type Buffer struct {
	tag   pool.Tagged
	small [smallBufBytes]byte
	large []byte
	n     int
}

// NewBuffer creates an empty buffer that promotes to allocations from p
// once it outgrows its inline capacity.
func NewBuffer(p *pool.Pool) *Buffer { return &Buffer{tag: pool.NewTagged(p)} }

func (b *Buffer) pool() *pool.Pool { return b.tag.Pool() }

// alloc grows through the owning pool; a nil pool yields a plain,
// unowned allocation, mirroring the typed arena entry points.
func (b *Buffer) alloc(n int) []byte {
	if p := b.pool(); p != nil {
		return p.Alloc(uintptr(n))
	}
	return make([]byte, n)
}

// IsLarge reports whether the buffer has promoted to the pool-backed
// large representation.
func (b *Buffer) IsLarge() bool { return b.tag.Flag(largeBit) }

// Len returns the number of bytes currently stored.
func (b *Buffer) Len() int { return b.n }

// Bytes returns the buffer's current contents. The slice is only valid
// until the next mutating call.
func (b *Buffer) Bytes() []byte {
	if b.IsLarge() {
		return b.large[:b.n]
	}
	return b.small[:b.n]
}

// Append adds data to the buffer, promoting to the pool-backed large
// representation if it no longer fits inline.
func (b *Buffer) Append(data []byte) {
	need := b.n + len(data)
	if !b.IsLarge() && need <= smallBufBytes {
		copy(b.small[b.n:], data)
		b.n = need
		return
	}
	if !b.IsLarge() {
		large := b.alloc(need * 2)
		copy(large, b.small[:b.n])
		b.large = large[:need*2]
		copy(b.large[b.n:], data)
		b.n = need
		b.tag = b.tag.WithFlag(largeBit, true)
		return
	}
	if need > cap(b.large) {
		large := b.alloc(need * 2)
		copy(large, b.large[:b.n])
		b.large = large[:need*2]
	}
	copy(b.large[b.n:], data)
	b.n = need
}

// AppendString adds s to the buffer.
func (b *Buffer) AppendString(s string) { b.Append([]byte(s)) }

// AppendByte adds a single byte to the buffer.
func (b *Buffer) AppendByte(c byte) { b.Append([]byte{c}) }

// String copies the current contents out as a string.
func (b *Buffer) String() string { return string(b.Bytes()) }

// Clear empties the buffer without demoting a promoted large allocation
// back to the inline representation.
func (b *Buffer) Clear() { b.n = 0 }

// Extract copies the current contents out into a fresh pool-owned
// allocation and resets the buffer to empty, small-representation
// state.
func (b *Buffer) Extract() []byte {
	var out []byte
	if p := b.pool(); p != nil {
		out = p.Pmemdup(b.Bytes())
	} else {
		out = append([]byte(nil), b.Bytes()...)
	}
	b.n = 0
	b.tag = b.tag.WithFlag(largeBit, false)
	b.large = nil
	return out
}
