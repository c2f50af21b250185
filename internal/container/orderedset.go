package container

import "github.com/libstappler/libstappler-core-sub003/internal/pool"

// OrderedSet is an ordered, pool-backed set built on RBTree with an
// empty value payload.
type OrderedSet[K any] struct {
	tree *RBTree[K, struct{}]
}

// NewOrderedSet creates an empty set ordered by less, allocating nodes
// from p.
func NewOrderedSet[K any](p *pool.Pool, less Less[K]) *OrderedSet[K] {
	return &OrderedSet[K]{tree: NewRBTree[K, struct{}](p, less)}
}

// Len reports the number of elements.
func (s *OrderedSet[K]) Len() int { return s.tree.Len() }

// Has reports whether key is a member.
func (s *OrderedSet[K]) Has(key K) bool { return s.tree.Count(key) > 0 }

// Find reports whether key is a member, matching the ordered-container
// lookup vocabulary.
func (s *OrderedSet[K]) Find(key K) bool { return s.Has(key) }

// Count reports 1 if key is a member, 0 otherwise.
func (s *OrderedSet[K]) Count(key K) int { return s.tree.Count(key) }

// Emplace adds key, reporting whether it was newly inserted. Equivalent
// to Insert: a set has no separate value to construct in place.
func (s *OrderedSet[K]) Emplace(key K) bool { return s.Insert(key) }

// TryEmplace adds key, reporting whether it was newly inserted. Named to
// match the map's TryEmplace, but since a set holds no value there is
// nothing to lazily construct — identical to Insert.
func (s *OrderedSet[K]) TryEmplace(key K) bool { return s.Insert(key) }

// InsertOrAssign adds key. A set member has no payload to overwrite, so
// this is equivalent to Insert; the name exists for parity with the map.
func (s *OrderedSet[K]) InsertOrAssign(key K) { s.Insert(key) }

// Insert adds key, reporting whether it was newly inserted.
func (s *OrderedSet[K]) Insert(key K) bool { return s.tree.InsertUnique(key, struct{}{}) }

// Erase removes key, reporting whether it was present.
func (s *OrderedSet[K]) Erase(key K) bool { return s.tree.Erase(key) }

// LowerBound returns the first member not less than key.
func (s *OrderedSet[K]) LowerBound(key K) (K, bool) {
	e, ok := s.tree.LowerBound(key)
	return e.Key, ok
}

// UpperBound returns the first member sorting strictly after key.
func (s *OrderedSet[K]) UpperBound(key K) (K, bool) {
	e, ok := s.tree.UpperBound(key)
	return e.Key, ok
}

// EqualRange returns the [lowerBound, upperBound) pair bracketing key.
func (s *OrderedSet[K]) EqualRange(key K) (lo K, loOK bool, hi K, hiOK bool) {
	loE, loOK, hiE, hiOK := s.tree.EqualRange(key)
	return loE.Key, loOK, hiE.Key, hiOK
}

// Keys returns every element in ascending order.
func (s *OrderedSet[K]) Keys() []K { return s.tree.Keys() }

// Reserve preallocates n nodes for future inserts.
func (s *OrderedSet[K]) Reserve(n int) { s.tree.Reserve(n) }

// ShrinkToFit releases any fully-idle preallocated batch.
func (s *OrderedSet[K]) ShrinkToFit() { s.tree.ShrinkToFit() }

// SetMemoryPersistent makes ShrinkToFit a no-op when persistent is true,
// keeping every freed node's backing batch alive across generations.
func (s *OrderedSet[K]) SetMemoryPersistent(persistent bool) {
	s.tree.SetMemoryPersistent(persistent)
}
