package hashset

import (
	"errors"
	"iter"
)

// ErrStaleIterator is the panic value for using an iterator after its set
// has been changed structurally.
var ErrStaleIterator = errors.New("hashset: iterator used after modification of its set")

// ErrEndIterator is the panic value for de-referencing an end iterator.
var ErrEndIterator = errors.New("hashset: de-referencing end iterator")

// Iterator is a read-only forward cursor over the keys of a set. Iteration
// walks buckets in ascending order and, within a bucket, the chain from the
// newest key to the oldest.
//
//     for it := S.Begin(); !it.AtEnd(); it.Next() {
//         k := it.Key()
//         …
//     }
//
// The order is not stable across insertions, erasures or growth.
type Iterator[K comparable] struct {
	set    *Set[K] // set we iterate over
	bucket int     // current bucket, == capacity at the end
	node   int     // current node, or none at the end
	gen    uint64  // generation of set at creation time
}

// Begin returns an iterator positioned at the first key of the set, or End()
// for an empty set.
func (s *Set[K]) Begin() Iterator[K] {
	it := Iterator[K]{set: s, gen: s.gen}
	it.bucket, it.node = s.tbl.firstFrom(0)
	return it
}

// End returns the iterator positioned one past the last bucket.
func (s *Set[K]) End() Iterator[K] {
	return Iterator[K]{
		set:    s,
		bucket: s.tbl.capacity(),
		node:   none,
		gen:    s.gen,
	}
}

func (s *Set[K]) iteratorAt(bucket, n int) Iterator[K] {
	return Iterator[K]{set: s, bucket: bucket, node: n, gen: s.gen}
}

func (it *Iterator[K]) check() {
	if it.set != nil && it.gen != it.set.gen {
		tracer().Errorf("stale iterator: generation %d, set is at %d", it.gen, it.set.gen)
		panic(ErrStaleIterator)
	}
}

// AtEnd is true if the iterator does not point to a key.
func (it Iterator[K]) AtEnd() bool {
	return it.node == none || it.set == nil
}

// Valid is true if the iterator points to a key and its set has not been
// modified since the iterator was created.
func (it Iterator[K]) Valid() bool {
	return !it.AtEnd() && it.gen == it.set.gen
}

// Key returns the key the iterator points to. It panics for an end iterator
// and for a stale iterator.
func (it Iterator[K]) Key() K {
	it.check()
	if it.AtEnd() {
		panic(ErrEndIterator)
	}
	return it.set.tbl.nodes[it.node].key
}

// Bucket returns the index of the bucket the iterator is positioned at.
func (it Iterator[K]) Bucket() int {
	return it.bucket
}

// Next advances the iterator to the next key: first along the current chain,
// then to the head of the next non-empty bucket. Advancing past the last key
// turns the iterator into the end iterator; advancing an end iterator is a
// no-op.
func (it *Iterator[K]) Next() {
	it.check()
	if it.AtEnd() {
		return
	}
	if next := it.set.tbl.nodes[it.node].next; next != none {
		it.node = next
		return
	}
	it.bucket, it.node = it.set.tbl.firstFrom(it.bucket + 1)
}

// Equal compares two iterators. Iterators which both point to a key are equal
// if they point to the same node. Otherwise they are equal if they are
// positioned at the same bucket, which makes end iterators compare equal.
func (it Iterator[K]) Equal(other Iterator[K]) bool {
	if it.set != other.set {
		return false
	}
	if it.node != none && other.node != none {
		return it.node == other.node
	}
	return it.bucket == other.bucket
}

// --- Sequences -------------------------------------------------------------

// All returns a sequence of all keys, in iteration order. Modifying the set
// while ranging over it panics with ErrStaleIterator.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := s.Begin(); !it.AtEnd(); it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Keys returns all keys in iteration order.
func (s *Set[K]) Keys() []K {
	keys := make([]K, 0, s.size)
	for k := range s.All() {
		keys = append(keys, k)
	}
	return keys
}

// Each calls mapper for every key, in iteration order.
func (s *Set[K]) Each(mapper func(K)) {
	for k := range s.All() {
		mapper(k)
	}
}
