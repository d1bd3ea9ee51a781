package hashset

import (
	"errors"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// ErrNothingErased is returned by diagnostics which depend on a previously
// erased key, if no key has been erased yet.
var ErrNothingErased = errors.New("hashset: no elements have been erased yet")

// LastErased returns the key most recently removed by Erase. The flag is false
// if no key has ever been erased.
func (s *Set[K]) LastErased() (K, bool) {
	return s.lastErased, s.hasErased
}

// LastUnsuccessful returns the key of the most recent Erase which did not find
// its key. The flag is false if there has been no such call.
func (s *Set[K]) LastUnsuccessful() (K, bool) {
	return s.lastUnsuccessful, s.hasUnsuccessful
}

// --- Ordered view ----------------------------------------------------------

// OrderedView adds a total order to a set, enabling utilities which compare
// keys by magnitude. Bucket placement never depends on this order.
// All utilities are linear scans over the table.
type OrderedView[K comparable] struct {
	set *Set[K]
	cmp utils.Comparator
}

// Ordered returns a view of s ordered by cmp. Comparators from package
// github.com/emirpasic/gods/utils may be used, e.g. utils.IntComparator
// for keys of type int.
func (s *Set[K]) Ordered(cmp utils.Comparator) OrderedView[K] {
	return OrderedView[K]{set: s, cmp: cmp}
}

// NaturalOrder returns a comparator for keys with a built-in order.
func NaturalOrder[K constraints.Ordered]() utils.Comparator {
	return func(a, b interface{}) int {
		x, y := a.(K), b.(K)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
}

func (v OrderedView[K]) less(a, b K) bool {
	return v.cmp(a, b) < 0
}

// CountBelowLastErased counts the keys which are less than the last erased key.
// It returns ErrNothingErased if the set has never erased a key.
func (v OrderedView[K]) CountBelowLastErased() (int, error) {
	last, ok := v.set.LastErased()
	if !ok {
		return 0, ErrNothingErased
	}
	cnt := 0
	v.set.Each(func(k K) {
		if v.less(k, last) {
			cnt++
		}
	})
	return cnt, nil
}

// SmallestAboveLastUnsuccessful returns the smallest key greater than the key
// of the last unsuccessful erasure. The flag is false if there has been no
// unsuccessful erasure or no key is greater.
func (v OrderedView[K]) SmallestAboveLastUnsuccessful() (K, bool) {
	var smallest K
	last, ok := v.set.LastUnsuccessful()
	if !ok {
		return smallest, false
	}
	found := false
	v.set.Each(func(k K) {
		if v.less(last, k) && (!found || v.less(k, smallest)) {
			smallest, found = k, true
		}
	})
	return smallest, found
}

// LargestBelow returns an iterator positioned at the largest key less than k,
// or End() if there is no such key.
func (v OrderedView[K]) LargestBelow(k K) Iterator[K] {
	s := v.set
	bucket, largest := none, none
	for b, head := range s.tbl.heads {
		for n := head; n != none; n = s.tbl.nodes[n].next {
			key := s.tbl.nodes[n].key
			if v.less(key, k) && (largest == none || v.less(s.tbl.nodes[largest].key, key)) {
				bucket, largest = b, n
			}
		}
	}
	if largest == none {
		return s.End()
	}
	return s.iteratorAt(bucket, largest)
}

// Sorted returns the keys of the set in ascending order.
func (v OrderedView[K]) Sorted() []K {
	tree := treeset.NewWith(v.cmp)
	v.set.Each(func(k K) {
		tree.Add(k)
	})
	keys := make([]K, 0, tree.Size())
	for _, x := range tree.Values() {
		keys = append(keys, x.(K))
	}
	return keys
}
