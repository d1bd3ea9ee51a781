package hashset

import (
	"iter"

	"github.com/npillmayer/chainset"
	"github.com/npillmayer/chainset/hashing"
)

// Set is a hash set of keys of type K. Create one with New, From or Collect.
// The zero value is an empty set with default capacity and default hashing.
type Set[K comparable] struct {
	tbl     table[K]
	size    int                  // number of reachable nodes
	maxLoad float64              // load factor threshold
	initial int                  // construction capacity, restored by Clear
	hash    chainset.HashFunc[K] // hash function for keys
	gen     uint64               // generation, incremented on structural change
	// diagnostics
	lastErased       K
	hasErased        bool
	lastUnsuccessful K
	hasUnsuccessful  bool
}

// Option configures a new set.
type Option[K comparable] func(*Set[K])

// WithCapacity sets the initial bucket count. Values < 1 are ignored.
// Clear will reset a set to this capacity.
func WithCapacity[K comparable](n int) Option[K] {
	return func(s *Set[K]) {
		if n > 0 {
			s.initial = n
		}
	}
}

// WithHash sets the hash function for keys. The default is hashing.ForKey.
func WithHash[K comparable](h chainset.HashFunc[K]) Option[K] {
	return func(s *Set[K]) {
		if h != nil {
			s.hash = h
		}
	}
}

// New creates an empty set.
func New[K comparable](opts ...Option[K]) *Set[K] {
	s := &Set[K]{}
	for _, opt := range opts {
		opt(s)
	}
	s.ensure()
	return s
}

// From creates a set from a list of keys. Duplicate keys are ignored.
func From[K comparable](keys []K, opts ...Option[K]) *Set[K] {
	s := New(opts...)
	s.InsertAll(keys...)
	return s
}

// Collect creates a set from a sequence of keys. Duplicate keys are ignored.
func Collect[K comparable](seq iter.Seq[K], opts ...Option[K]) *Set[K] {
	s := New(opts...)
	s.InsertSeq(seq)
	return s
}

// ensure lazily initializes a zero value set.
func (s *Set[K]) ensure() {
	if s.initial <= 0 {
		s.initial = defaultCapacity()
	}
	if s.maxLoad == 0 {
		s.maxLoad = MaxLoad
	}
	if s.hash == nil {
		s.hash = hashing.ForKey[K]()
	}
	if s.tbl.capacity() == 0 {
		s.tbl = newTable[K](s.initial)
	}
}

// --- Internal primitives ---------------------------------------------------

func (s *Set[K]) hashIndex(k K) int {
	return chainset.Bucketing(s.hash(k), s.tbl.capacity())
}

// locate finds the node holding k. It returns k's bucket, the node and the
// node's predecessor in the chain. If k is not present, node is none.
func (s *Set[K]) locate(k K) (bucket, n, prev int) {
	if s.tbl.capacity() == 0 {
		return none, none, none
	}
	bucket = s.hashIndex(k)
	prev = none
	for n = s.tbl.heads[bucket]; n != none; n = s.tbl.nodes[n].next {
		if s.tbl.nodes[n].key == k {
			return bucket, n, prev
		}
		prev = n
	}
	return bucket, none, none
}

// grow replaces the bucket array by one with newCapacity buckets. Nodes are
// moved in old bucket order and old chain order, each one prepended to its
// new chain. This is the layout re-inserting every key would produce, without
// re-allocating nodes.
func (s *Set[K]) grow(newCapacity int) {
	tracer().Debugf("growing table from %d to %d buckets, size = %d",
		s.tbl.capacity(), newCapacity, s.size)
	old := s.tbl.heads
	s.tbl.heads = make([]int, newCapacity)
	for i := range s.tbl.heads {
		s.tbl.heads[i] = none
	}
	for _, head := range old {
		for n := head; n != none; {
			next := s.tbl.nodes[n].next
			s.tbl.prepend(s.hashIndex(s.tbl.nodes[n].key), n)
			n = next
		}
	}
	s.gen++
}

// exceedsLoad is true if one more key would push the load factor over the
// threshold.
func (s *Set[K]) exceedsLoad() bool {
	return float64(s.size+1) > s.maxLoad*float64(s.tbl.capacity())
}

// --- Core operations -------------------------------------------------------

// Insert adds k to the set. If an equal key is already present, Insert returns
// an iterator positioned at it and false, and the set is not changed.
// Otherwise the table may grow first, then k is prepended to its bucket chain,
// and Insert returns an iterator positioned at k and true.
func (s *Set[K]) Insert(k K) (Iterator[K], bool) {
	s.ensure()
	if b, n, _ := s.locate(k); n != none {
		return s.iteratorAt(b, n), false
	}
	if s.exceedsLoad() {
		s.grow(2*s.tbl.capacity() + 1)
	}
	b := s.hashIndex(k)
	n := s.tbl.alloc(k)
	s.tbl.prepend(b, n)
	s.size++
	s.gen++
	return s.iteratorAt(b, n), true
}

// InsertAll inserts a list of keys, ignoring duplicates.
func (s *Set[K]) InsertAll(keys ...K) {
	for _, k := range keys {
		s.Insert(k)
	}
}

// InsertSeq inserts every key of a sequence, ignoring duplicates.
func (s *Set[K]) InsertSeq(seq iter.Seq[K]) {
	for k := range seq {
		s.Insert(k)
	}
}

// Erase removes k from the set and returns 1. If k is not present, Erase
// returns 0 and remembers k as the last unsuccessful erasure.
func (s *Set[K]) Erase(k K) int {
	b, n, prev := s.locate(k)
	if n == none {
		s.lastUnsuccessful = k
		s.hasUnsuccessful = true
		return 0
	}
	s.tbl.unlink(b, n, prev)
	s.tbl.release(n)
	s.size--
	s.gen++
	s.lastErased = k
	s.hasErased = true
	return 1
}

// Find returns an iterator positioned at k, or End() if k is not present.
func (s *Set[K]) Find(k K) Iterator[K] {
	if b, n, _ := s.locate(k); n != none {
		return s.iteratorAt(b, n)
	}
	return s.End()
}

// Count returns 1 if k is present, 0 otherwise.
func (s *Set[K]) Count(k K) int {
	if s.Contains(k) {
		return 1
	}
	return 0
}

// Contains is a predicate: is k present in the set?
func (s *Set[K]) Contains(k K) bool {
	_, n, _ := s.locate(k)
	return n != none
}

// Size returns the number of keys in the set.
func (s *Set[K]) Size() int {
	return s.size
}

// Empty is true for a set without keys.
func (s *Set[K]) Empty() bool {
	return s.size == 0
}

// Capacity returns the current bucket count.
func (s *Set[K]) Capacity() int {
	return s.tbl.capacity()
}

// LoadFactor returns size / capacity.
func (s *Set[K]) LoadFactor() float64 {
	if s.tbl.capacity() == 0 {
		return 0
	}
	return float64(s.size) / float64(s.tbl.capacity())
}

// Clear removes all keys. The table is reset to the set's construction
// capacity, not to the capacity it had before clearing.
// The diagnostics of the set (last erased and last unsuccessful key) survive.
func (s *Set[K]) Clear() {
	s.ensure()
	tracer().Debugf("clearing set of size %d", s.size)
	s.tbl = newTable[K](s.initial)
	s.size = 0
	s.gen++
}

// Swap exchanges the contents of two sets in constant time. No key is copied.
func (s *Set[K]) Swap(other *Set[K]) {
	if s == other {
		return
	}
	tracer().Debugf("swapping sets of size %d and %d", s.size, other.size)
	s.tbl, other.tbl = other.tbl, s.tbl
	s.size, other.size = other.size, s.size
	s.maxLoad, other.maxLoad = other.maxLoad, s.maxLoad
	s.initial, other.initial = other.initial, s.initial
	s.hash, other.hash = other.hash, s.hash
	s.gen++
	other.gen++
}

// Clone returns an independent copy of s. The copy starts with s' current
// capacity and receives s' keys in s' iteration order.
func (s *Set[K]) Clone() *Set[K] {
	c := &Set[K]{
		maxLoad: s.maxLoad,
		initial: s.initial,
		hash:    s.hash,
	}
	if s.tbl.capacity() > 0 {
		c.tbl = newTable[K](s.tbl.capacity())
	}
	c.ensure()
	c.copyKeys(s)
	return c
}

// Assign replaces the keys of s by a copy of other's keys. Like Clone, the
// table of s is sized to other's current capacity.
func (s *Set[K]) Assign(other *Set[K]) {
	if s == other {
		return
	}
	s.ensure()
	capacity := other.tbl.capacity()
	if capacity == 0 {
		capacity = s.initial
	}
	tracer().Debugf("assigning %d keys, capacity %d", other.size, capacity)
	s.tbl = newTable[K](capacity)
	s.size = 0
	s.gen++
	s.copyKeys(other)
}

// AssignKeys replaces the keys of s by a list of keys.
func (s *Set[K]) AssignKeys(keys ...K) {
	s.Clear()
	s.InsertAll(keys...)
}

func (s *Set[K]) copyKeys(src *Set[K]) {
	for _, head := range src.tbl.heads {
		for n := head; n != none; n = src.tbl.nodes[n].next {
			s.Insert(src.tbl.nodes[n].key)
		}
	}
}
