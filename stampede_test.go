package stampede

import (
	"math/rand"
	"testing"
)

// S1
func TestGetOnEmptyMap(t *testing.T) {
	m := New[int, int]()
	if _, ok := m.Get(42); ok {
		t.Fatal("expected miss on empty map")
	}
}

// S2
func TestBasicSetGet(t *testing.T) {
	m := New[int, int]()
	m.Set(0, 1)
	v, ok := m.Get(0)
	if !ok || v != 1 {
		t.Fatalf("Get(0) = (%d, %v), want (1, true)", v, ok)
	}
}

// S3
func TestElevenDistinctKeys(t *testing.T) {
	m := New[int, int]()
	for k := 0; k < 11; k++ {
		m.Set(k, k*10)
	}
	for k := 0; k < 11; k++ {
		v, ok := m.Get(k)
		if !ok || v != k*10 {
			t.Fatalf("Get(%d) = (%d, %v), want (%d, true)", k, v, ok, k*10)
		}
	}
}

// S4
func TestUpdateReplacesValueWithoutGrowingLen(t *testing.T) {
	m := New[int, int]()
	for k := 0; k < 11; k++ {
		m.Set(k, k*10)
	}
	m.Set(5, 999)
	v, ok := m.Get(5)
	if !ok || v != 999 {
		t.Fatalf("Get(5) = (%d, %v), want (999, true)", v, ok)
	}
	if m.Len() != 11 {
		t.Fatalf("Len() = %d, want 11", m.Len())
	}
}

// S5
func TestSetGetDeleteCycle(t *testing.T) {
	m := New[int, int]()
	for _, k := range []int{0, 882041908, 201832565} {
		m.Set(k, 0)
		if v, ok := m.Get(k); !ok || v != 0 {
			t.Fatalf("after Set(%d,0): Get = (%d, %v)", k, v, ok)
		}
		m.Delete(k)
		if _, ok := m.Get(k); ok {
			t.Fatalf("after Delete(%d): still present", k)
		}
	}
}

// S6
func TestCapacityGrowsPastLoadFactor(t *testing.T) {
	m := WithCapacity[int, int](16)
	if got := m.Capacity(); got != 16 {
		t.Fatalf("initial capacity = %d, want 16", got)
	}
	for k := 0; k < 13; k++ {
		m.Set(k, k)
	}
	if got := m.Capacity(); got < 32 {
		t.Fatalf("capacity after 13 inserts = %d, want >= 32", got)
	}
}

func TestDeleteAbsentKeyIsNoop(t *testing.T) {
	m := New[string, int]()
	m.Set("a", 1)
	m.Delete("missing")
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
	v, ok := m.Get("a")
	if !ok || v != 1 {
		t.Fatalf("Get(a) = (%d, %v), want (1, true)", v, ok)
	}
}

func TestClearEmptiesMapKeepsCapacity(t *testing.T) {
	m := New[int, int]()
	for k := 0; k < 20; k++ {
		m.Set(k, k)
	}
	capBefore := m.Capacity()
	m.Clear()
	if m.Len() != 0 {
		t.Fatalf("Len() = %d after Clear, want 0", m.Len())
	}
	if m.Capacity() != capBefore {
		t.Fatalf("Capacity() = %d after Clear, want %d", m.Capacity(), capBefore)
	}
	for k := 0; k < 20; k++ {
		if _, ok := m.Get(k); ok {
			t.Fatalf("Get(%d) hit after Clear", k)
		}
	}
}

func TestIsEmpty(t *testing.T) {
	m := New[int, int]()
	if !m.IsEmpty() {
		t.Fatal("fresh map reports not empty")
	}
	m.Set(1, 1)
	if m.IsEmpty() {
		t.Fatal("non-empty map reports empty")
	}
	m.Delete(1)
	if !m.IsEmpty() {
		t.Fatal("map with all keys deleted reports not empty")
	}
}

func TestSetAfterDeleteKeepsDeletedKeyAbsent(t *testing.T) {
	m := New[int, int]()
	m.Set(1, 1)
	m.Delete(1)
	m.Set(2, 2)
	if v, ok := m.Get(2); !ok || v != 2 {
		t.Fatalf("Get(2) = (%d, %v), want (2, true)", v, ok)
	}
	if _, ok := m.Get(1); ok {
		t.Fatal("deleted key 1 still present")
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
}

func TestCapacityAlwaysPowerOfTwoAtLeast16(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 100, 1000} {
		m := WithCapacity[int, int](n)
		c := m.Capacity()
		if c < 16 {
			t.Fatalf("WithCapacity(%d).Capacity() = %d, < 16", n, c)
		}
		if c&(c-1) != 0 {
			t.Fatalf("WithCapacity(%d).Capacity() = %d, not a power of two", n, c)
		}
	}
}

// Resize preserves content: inserting the same sequence with a large
// pre-sized capacity (no intermediate resizes) must answer Get identically
// to inserting it into a map that grows from 16 along the way.
func TestResizePreservesContent(t *testing.T) {
	const n = 5000
	small := New[int, int]()
	big := WithCapacity[int, int](1 << 20)

	keys := rand.New(rand.NewSource(1)).Perm(n)
	for _, k := range keys {
		small.Set(k, k*2)
		big.Set(k, k*2)
	}

	for k := 0; k < n; k++ {
		sv, sok := small.Get(k)
		bv, bok := big.Get(k)
		if sok != bok || sv != bv {
			t.Fatalf("key %d: small=(%d,%v) big=(%d,%v)", k, sv, sok, bv, bok)
		}
	}
}

func TestLenTracksLiveKeysAcrossMixedOps(t *testing.T) {
	m := New[int, int]()
	live := map[int]int{}
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		k := r.Intn(300)
		if r.Intn(3) == 0 {
			m.Delete(k)
			delete(live, k)
		} else {
			v := r.Int()
			m.Set(k, v)
			live[k] = v
		}
	}

	if m.Len() != len(live) {
		t.Fatalf("Len() = %d, want %d", m.Len(), len(live))
	}
	for k, v := range live {
		got, ok := m.Get(k)
		if !ok || got != v {
			t.Fatalf("Get(%d) = (%d, %v), want (%d, true)", k, got, ok, v)
		}
	}
}
