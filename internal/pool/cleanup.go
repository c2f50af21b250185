package pool

import "reflect"

// CleanupRegister registers fn to run when p is cleared or destroyed,
// after every child pool has already been torn down. Cleanups run in
// LIFO order relative to one another.
func (p *Pool) CleanupRegister(fn CleanupFunc, data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cleanups = append(p.cleanups, cleanupEntry{fn: fn, data: data})
}

// PreCleanupRegister registers fn to run before any child of p is torn
// down. Use for invariants that must hold while descendants still exist,
// such as flushing a buffer a child pool's cleanup might still reference.
func (p *Pool) PreCleanupRegister(fn CleanupFunc, data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.preCleanups = append(p.preCleanups, cleanupEntry{fn: fn, data: data})
}

// CleanupKill removes a previously registered cleanup (regular or
// pre-cleanup, whichever matches first) without running it, identified by
// the same (fn, data) pair passed to the register call; a nil fn matches
// any registration carrying data. It is a linear scan; cancellation is
// rare and the registration list stays dense.
func (p *Pool) CleanupKill(data any, fn CleanupFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	var want uintptr
	if fn != nil {
		want = reflect.ValueOf(fn).Pointer()
	}
	match := func(c cleanupEntry) bool {
		return c.data == data && (fn == nil || reflect.ValueOf(c.fn).Pointer() == want)
	}
	for i, c := range p.cleanups {
		if match(c) {
			p.cleanups = append(p.cleanups[:i], p.cleanups[i+1:]...)
			return
		}
	}
	for i, c := range p.preCleanups {
		if match(c) {
			p.preCleanups = append(p.preCleanups[:i], p.preCleanups[i+1:]...)
			return
		}
	}
}
