package container

import (
	"reflect"

	"github.com/libstappler/libstappler-core-sub003/internal/pool"
)

// optBufferSize is the inline captured-state budget below which a
// Function stores its callable by value instead of behind an
// indirection. Go closures already carry their captured state on the
// heap as a single pointer-sized value, so the split that remains
// meaningful is whether the callable's own concrete size clears the
// inline budget. Every func value, method values included, is
// pointer-sized and stays inline; only a non-func F larger than the
// budget (e.g. a struct type) is boxed.
const optBufferSize = 16

// Function is a pool-aware, type-erased callable of any func signature
// F. Small callables are held inline; larger ones go behind a boxed
// indirection whose lifetime is tied to the owning pool: the pool's
// cleanup releases the captured state when the pool is cleared.
type Function[F any] struct {
	small F
	boxed *F
	set   bool
}

// NewFunction wraps fn as a Function, boxing it against p when its
// concrete size exceeds optBufferSize.
func NewFunction[F any](p *pool.Pool, fn F) Function[F] {
	if reflect.TypeOf(fn).Size() <= optBufferSize {
		return Function[F]{small: fn, set: true}
	}
	b := new(F)
	*b = fn
	if p != nil {
		p.CleanupRegister(func(data any) {
			box := data.(*F)
			var zero F
			*box = zero
		}, b)
	}
	return Function[F]{boxed: b, set: true}
}

// Valid reports whether the Function holds a callable.
func (f Function[F]) Valid() bool { return f.set }

// Get returns the wrapped callable for invocation, e.g. f.Get()(args...).
func (f Function[F]) Get() F {
	if f.boxed != nil {
		return *f.boxed
	}
	return f.small
}
