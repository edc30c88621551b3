// Package slotarr implements the Slot/data array: a parallel array holding
// either Empty or Occupied{hash, value} for every slot. The key itself is
// never stored (see the map engine's keyless-storage design note); identity
// is decided by the full 64-bit hash alone.
package slotarr

type slot[V any] struct {
	hash     uint64
	value    V
	occupied bool
}

// Slots is the capacity-length array of Slot values.
type Slots[V any] struct {
	arr []slot[V]
}

// New allocates a Slots of the given capacity, all Empty.
func New[V any](capacity int) Slots[V] {
	return Slots[V]{arr: make([]slot[V], capacity)}
}

// Len returns the capacity of the underlying array.
func (s *Slots[V]) Len() int {
	return len(s.arr)
}

// Get returns the hash and value stored at i, and whether the slot is
// Occupied.
func (s *Slots[V]) Get(i int) (hash uint64, value V, occupied bool) {
	sl := s.arr[i]
	return sl.hash, sl.value, sl.occupied
}

// Set installs an Occupied{hash, value} at i.
func (s *Slots[V]) Set(i int, hash uint64, value V) {
	s.arr[i] = slot[V]{hash: hash, value: value, occupied: true}
}

// Clear resets slot i back to Empty.
func (s *Slots[V]) Clear(i int) {
	s.arr[i] = slot[V]{}
}

// ResetAll resets every slot back to Empty.
func (s *Slots[V]) ResetAll() {
	for i := range s.arr {
		s.arr[i] = slot[V]{}
	}
}
