// Package stampede implements a single-threaded, in-memory associative
// container using open addressing with a Swiss-table-style metadata band,
// probed 16 slots at a time via internal/bitmask.
//
// The map stores only a key's 64-bit hash alongside its value — it never
// retains the key itself. Two distinct keys that hash to the same 64-bit
// value are treated as equal; see hashseed for the hash function and
// internal/ctrl, internal/slotarr for the band/slot layout this engine ties
// together.
package stampede

import (
	"math/bits"

	"github.com/alyssaverkade/stampede-map/hashseed"
	"github.com/alyssaverkade/stampede-map/internal/bitmask"
	"github.com/alyssaverkade/stampede-map/internal/ctrl"
	"github.com/alyssaverkade/stampede-map/internal/slotarr"
)

const minCapacity = 16

// Map is a hash map from K to V backed by a Swiss-table-style open-addressed
// layout. The zero value is not usable; construct one with New or
// WithCapacity.
type Map[K comparable, V any] struct {
	data     slotarr.Slots[V]
	band     ctrl.Band
	capacity int
	length   int
	deleted  int
}

// New returns an empty Map with capacity 16.
func New[K comparable, V any]() *Map[K, V] {
	return WithCapacity[K, V](minCapacity)
}

// WithCapacity returns an empty Map with capacity max(16, next power of two
// >= n). It resizes on the insert that would bring occupied slots plus
// tombstones above 3/4 of that capacity.
func WithCapacity[K comparable, V any](n int) *Map[K, V] {
	capacity := nextPow2(n)
	if capacity < minCapacity {
		capacity = minCapacity
	}
	return &Map[K, V]{
		data:     slotarr.New[V](capacity),
		band:     ctrl.New(capacity),
		capacity: capacity,
	}
}

// Len returns the number of occupied slots.
func (m *Map[K, V]) Len() int {
	return m.length
}

// IsEmpty reports whether Len() == 0.
func (m *Map[K, V]) IsEmpty() bool {
	return m.length == 0
}

// Capacity returns the current slot array length, always a power of two.
func (m *Map[K, V]) Capacity() int {
	return m.capacity
}

// Clear empties the map in O(capacity); capacity is unchanged.
func (m *Map[K, V]) Clear() {
	m.data.ResetAll()
	m.band.Reset()
	m.length = 0
	m.deleted = 0
}

// Get returns the value associated with key, if present. The returned value
// is a copy; its validity is not tied to any borrow (Go values are copied on
// return), but subsequent mutations may relocate the backing slot the value
// came from.
func (m *Map[K, V]) Get(key K) (V, bool) {
	h := hashseed.Hash(key)
	t := tagOf(h)
	capMask := m.capacity - 1
	slot := int(h) & capMask

	for {
		window := m.band.Window(slot)
		candidates := bitmask.Matches(window, t).Or(bitmask.Matches(window, ctrl.Empty))
		for {
			off, rest, ok := candidates.Next()
			if !ok {
				break
			}
			candidates = rest
			p := (slot + off) & capMask
			switch m.band.Get(p) {
			case t:
				if hh, v, occ := m.data.Get(p); occ && hh == h {
					return v, true
				}
			case ctrl.Empty:
				var zero V
				return zero, false
			}
		}
		slot = (slot + 16) & capMask
	}
}

// Set inserts key with value, replacing any existing value for key.
func (m *Map[K, V]) Set(key K, value V) {
	if (m.length+m.deleted+1)*4 > m.capacity*3 {
		m.resize()
	}

	h := hashseed.Hash(key)
	t := tagOf(h)
	capMask := m.capacity - 1
	slot := int(h) & capMask
	tomb := -1

	for {
		window := m.band.Window(slot)
		candidates := bitmask.Matches(window, t).
			Or(bitmask.Matches(window, ctrl.Empty)).
			Or(bitmask.Matches(window, ctrl.Deleted))
		for {
			off, rest, ok := candidates.Next()
			if !ok {
				break
			}
			candidates = rest
			p := (slot + off) & capMask
			switch m.band.Get(p) {
			case t:
				if hh, _, occ := m.data.Get(p); occ && hh == h {
					m.data.Set(p, h, value)
					return
				}
				// tag collision on a different key; keep probing.
			case ctrl.Empty:
				// key is absent; reuse the first tombstone seen, if any.
				if tomb >= 0 {
					p = tomb
					m.deleted--
				}
				m.band.Set(p, t)
				m.data.Set(p, h, value)
				m.length++
				return
			case ctrl.Deleted:
				if tomb < 0 {
					tomb = p
				}
			}
		}
		slot = (slot + 16) & capMask
	}
}

// Delete removes key from the map. It is a no-op if key is absent.
func (m *Map[K, V]) Delete(key K) {
	h := hashseed.Hash(key)
	t := tagOf(h)
	capMask := m.capacity - 1
	slot := int(h) & capMask

	for {
		window := m.band.Window(slot)
		candidates := bitmask.Matches(window, t).Or(bitmask.Matches(window, ctrl.Empty))
		for {
			off, rest, ok := candidates.Next()
			if !ok {
				break
			}
			candidates = rest
			p := (slot + off) & capMask
			switch m.band.Get(p) {
			case t:
				if hh, _, occ := m.data.Get(p); occ && hh == h {
					m.data.Clear(p)
					m.band.Set(p, ctrl.Deleted)
					m.length--
					m.deleted++
					return
				}
			case ctrl.Empty:
				return
			}
		}
		slot = (slot + 16) & capMask
	}
}

// resize doubles (to the next power of two) the underlying arrays and
// reinserts every occupied slot by hash-tag probing. Tombstones are
// dropped; len is preserved.
func (m *Map[K, V]) resize() {
	newCapacity := nextPow2(m.capacity + 1)
	newData := slotarr.New[V](newCapacity)
	newBand := ctrl.New(newCapacity)
	newMask := newCapacity - 1

	for i := 0; i < m.data.Len(); i++ {
		h, v, occ := m.data.Get(i)
		if !occ {
			continue
		}
		t := tagOf(h)
		slot := int(h) & newMask
		for {
			window := newBand.Window(slot)
			if off, _, ok := bitmask.Matches(window, ctrl.Empty).Next(); ok {
				p := (slot + off) & newMask
				newBand.Set(p, t)
				newData.Set(p, h, v)
				break
			}
			slot = (slot + 16) & newMask
		}
	}

	m.data = newData
	m.band = newBand
	m.capacity = newCapacity
	m.deleted = 0
}

// tagOf derives the 7-bit hash tag from a full hash: a top-bit-clear byte,
// disjoint from ctrl.Empty and ctrl.Deleted (both top-bit-set).
func tagOf(h uint64) byte {
	return byte(h & 0x7F)
}

// nextPow2 returns the smallest power of two >= n (or 1 if n <= 1).
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
