package hashset

// none marks the absence of a node: an empty bucket, the end of a chain or an
// empty free list.
const none = -1

// node holds one key and the arena index of its successor in the chain.
type node[K comparable] struct {
	key  K
	next int
}

// table is the storage of a set: bucket heads plus an arena of nodes.
// Chains link nodes by arena index. Released nodes are kept on a free list,
// threaded through their next-links, and are re-used by later insertions.
type table[K comparable] struct {
	heads []int     // first node of every bucket chain, or none
	nodes []node[K] // node arena
	free  int       // first free node, or none
}

func newTable[K comparable](capacity int) table[K] {
	t := table[K]{
		heads: make([]int, capacity),
		free:  none,
	}
	for i := range t.heads {
		t.heads[i] = none
	}
	return t
}

func (t *table[K]) capacity() int {
	return len(t.heads)
}

// alloc stores k in a fresh node, unlinked.
func (t *table[K]) alloc(k K) int {
	if t.free != none {
		n := t.free
		t.free = t.nodes[n].next
		t.nodes[n] = node[K]{key: k, next: none}
		return n
	}
	t.nodes = append(t.nodes, node[K]{key: k, next: none})
	return len(t.nodes) - 1
}

// release puts an unlinked node on the free list. The key is zeroed so the
// arena does not keep referenced memory alive.
func (t *table[K]) release(n int) {
	var zero K
	t.nodes[n].key = zero
	t.nodes[n].next = t.free
	t.free = n
}

// prepend makes n the first node of bucket b's chain.
func (t *table[K]) prepend(b, n int) {
	t.nodes[n].next = t.heads[b]
	t.heads[b] = n
}

// unlink removes n from bucket b's chain. prev is n's predecessor in the chain,
// or none if n is the chain head.
func (t *table[K]) unlink(b, n, prev int) {
	if prev == none {
		t.heads[b] = t.nodes[n].next
	} else {
		t.nodes[prev].next = t.nodes[n].next
	}
	t.nodes[n].next = none
}

// chainLength counts the nodes of bucket b.
func (t *table[K]) chainLength(b int) int {
	l := 0
	for n := t.heads[b]; n != none; n = t.nodes[n].next {
		l++
	}
	return l
}

// firstFrom returns the first non-empty bucket at or after b, together with
// its head node. If there is none, it returns (capacity, none).
func (t *table[K]) firstFrom(b int) (int, int) {
	for ; b < len(t.heads); b++ {
		if t.heads[b] != none {
			return b, t.heads[b]
		}
	}
	return len(t.heads), none
}
