package container

// noCopy flags a type as copy-hostile to go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Callback is a non-owning view over a callable of signature F: the
// callee must outlive the Callback, which stores no pool allocation at
// all (unlike Function, it never takes ownership of captured state). It
// is passed by pointer and must not be copied; the noCopy marker makes
// vet enforce what is otherwise only convention.
type Callback[F any] struct {
	_  noCopy
	fn F
	ok bool
}

// NewCallback wraps fn without copying or allocating anything for it.
func NewCallback[F any](fn F) *Callback[F] { return &Callback[F]{fn: fn, ok: true} }

// Valid reports whether the Callback wraps a callable.
func (c *Callback[F]) Valid() bool { return c.ok }

// Get returns the wrapped callable for invocation.
func (c *Callback[F]) Get() F { return c.fn }
