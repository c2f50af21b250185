package container

import "github.com/libstappler/libstappler-core-sub003/internal/pool"

// OrderedMap is the public, pool-backed ordered map surface built over
// RBTree, with GetOrInsert/Upsert naming, ordered and allocated
// from a pool rather than backed by Go's built-in map.
type OrderedMap[K any, V any] struct {
	tree *RBTree[K, V]
}

// NewOrderedMap creates an empty map ordered by less, allocating nodes
// from p.
func NewOrderedMap[K any, V any](p *pool.Pool, less Less[K]) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{tree: NewRBTree[K, V](p, less)}
}

// Len reports the number of entries.
func (m *OrderedMap[K, V]) Len() int { return m.tree.Len() }

// Get returns the value for key, if present.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) { return m.tree.Get(key) }

// Has reports whether key is present.
func (m *OrderedMap[K, V]) Has(key K) bool { return m.tree.Count(key) > 0 }

// Find is Get by another name, matching the ordered-container lookup
// vocabulary alongside LowerBound/UpperBound/EqualRange.
func (m *OrderedMap[K, V]) Find(key K) (V, bool) { return m.tree.Get(key) }

// Count reports 1 if key is present, 0 otherwise.
func (m *OrderedMap[K, V]) Count(key K) int { return m.tree.Count(key) }

// Emplace inserts (key, val) only if key is absent, returning whether it
// was inserted.
func (m *OrderedMap[K, V]) Emplace(key K, val V) bool { return m.tree.InsertUnique(key, val) }

// TryEmplace inserts key with the value produced by makeVal only if key
// is absent; makeVal is not called at all when key already exists, so a
// caller can defer an expensive construction until it's known to be
// needed. Returns the value now stored for key and whether it was the
// freshly constructed one.
func (m *OrderedMap[K, V]) TryEmplace(key K, makeVal func() V) (V, bool) {
	if existing, ok := m.tree.Get(key); ok {
		return existing, false
	}
	val := makeVal()
	m.tree.InsertUnique(key, val)
	return val, true
}

// InsertOrAssign inserts or overwrites the value for key.
func (m *OrderedMap[K, V]) InsertOrAssign(key K, val V) { m.tree.InsertOrAssign(key, val) }

// GetOrInsert returns the existing value for key, or inserts fallback
// and returns it.
func (m *OrderedMap[K, V]) GetOrInsert(key K, fallback V) V {
	if v, ok := m.tree.Get(key); ok {
		return v
	}
	m.tree.InsertUnique(key, fallback)
	return fallback
}

// Upsert inserts val for key if absent, or applies merge to the existing
// value and stores the result.
func (m *OrderedMap[K, V]) Upsert(key K, val V, merge func(existing, incoming V) V) {
	if existing, ok := m.tree.Get(key); ok {
		m.tree.InsertOrAssign(key, merge(existing, val))
		return
	}
	m.tree.InsertUnique(key, val)
}

// Erase removes key, reporting whether it was present.
func (m *OrderedMap[K, V]) Erase(key K) bool { return m.tree.Erase(key) }

// LowerBound returns the first entry whose key is not less than key.
func (m *OrderedMap[K, V]) LowerBound(key K) (Entry[K, V], bool) { return m.tree.LowerBound(key) }

// UpperBound returns the first entry whose key sorts strictly after key.
func (m *OrderedMap[K, V]) UpperBound(key K) (Entry[K, V], bool) { return m.tree.UpperBound(key) }

// EqualRange returns the [lowerBound, upperBound) pair bracketing key.
func (m *OrderedMap[K, V]) EqualRange(key K) (lo Entry[K, V], loOK bool, hi Entry[K, V], hiOK bool) {
	return m.tree.EqualRange(key)
}

// Keys returns every key in ascending order.
func (m *OrderedMap[K, V]) Keys() []K { return m.tree.Keys() }

// Reserve preallocates n nodes for future inserts.
func (m *OrderedMap[K, V]) Reserve(n int) { m.tree.Reserve(n) }

// ShrinkToFit releases any fully-idle preallocated batch.
func (m *OrderedMap[K, V]) ShrinkToFit() { m.tree.ShrinkToFit() }

// SetMemoryPersistent makes ShrinkToFit a no-op when persistent is true,
// keeping every freed node's backing batch alive across generations.
func (m *OrderedMap[K, V]) SetMemoryPersistent(persistent bool) {
	m.tree.SetMemoryPersistent(persistent)
}
