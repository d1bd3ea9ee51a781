package hashset

// overlapPercent is the share of keys, in percent, each set must find in the
// other one for the sets to overlap.
const overlapPercent = 90

// Equal is a predicate: do s and other contain the same keys?
// Iteration order and capacity do not matter.
func (s *Set[K]) Equal(other *Set[K]) bool {
	if s.size != other.size {
		return false
	}
	for _, head := range s.tbl.heads {
		for n := head; n != none; n = s.tbl.nodes[n].next {
			if !other.Contains(s.tbl.nodes[n].key) {
				return false
			}
		}
	}
	return true
}

// Equal is a predicate: do a and b contain the same keys?
func Equal[K comparable](a, b *Set[K]) bool {
	return a.Equal(b)
}

// Overlaps is a predicate: does each of a and b find at least 90 percent of its
// keys in the other set?
//
// Two empty sets overlap. If exactly one set is empty, the empty set trivially
// finds all of its (zero) keys in the other one, but the other set finds none
// of its keys, so the sets do not overlap.
func Overlaps[K comparable](a, b *Set[K]) bool {
	if a.Empty() && b.Empty() {
		return true
	}
	return sharePercent(a.countIn(b), a.size) >= overlapPercent &&
		sharePercent(b.countIn(a), b.size) >= overlapPercent
}

// countIn counts the keys of s present in other.
func (s *Set[K]) countIn(other *Set[K]) int {
	cnt := 0
	for _, head := range s.tbl.heads {
		for n := head; n != none; n = s.tbl.nodes[n].next {
			if other.Contains(s.tbl.nodes[n].key) {
				cnt++
			}
		}
	}
	return cnt
}

// sharePercent returns found/total in whole percent, rounded down. An empty
// total counts as 100 percent.
func sharePercent(found, total int) int {
	if total == 0 {
		return 100
	}
	return found * 100 / total
}
