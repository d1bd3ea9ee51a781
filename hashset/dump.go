package hashset

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Dump writes the table to w, one line per bucket, empty buckets included:
//
//     0: 14 -> 7
//     1:
//     2: 9
//
// Every line is "<i>: " followed by the keys, so the line of an empty bucket
// is "1: " with a trailing blank. Within a line keys appear in chain order,
// newest first. If w is nil, Dump writes to os.Stderr.
func (s *Set[K]) Dump(w io.Writer) error {
	if w == nil {
		w = os.Stderr
	}
	for b := range s.tbl.heads {
		if _, err := io.WriteString(w, s.bucketString(b)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// bucketString renders bucket b as "<b>: k1 -> k2".
func (s *Set[K]) bucketString(b int) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d: ", b)
	for n := s.tbl.heads[b]; n != none; n = s.tbl.nodes[n].next {
		fmt.Fprint(&buf, s.tbl.nodes[n].key)
		if s.tbl.nodes[n].next != none {
			buf.WriteString(" -> ")
		}
	}
	return buf.String()
}

// Trace writes the table to the tracer, at debug level.
func (s *Set[K]) Trace() {
	tracer().Debugf("--- set: size %d, capacity %d --------", s.size, s.tbl.capacity())
	for b := range s.tbl.heads {
		tracer().Debugf("%s", s.bucketString(b))
	}
	tracer().Debugf("---------------------------------------")
}

// ChainLength returns the number of keys in bucket b.
func (s *Set[K]) ChainLength(b int) int {
	if b < 0 || b >= s.tbl.capacity() {
		return 0
	}
	return s.tbl.chainLength(b)
}

// String renders the keys of the set in iteration order, e.g. "{ 1, 2, 3 }".
func (s *Set[K]) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	first := true
	for k := range s.All() {
		if first {
			b.WriteString(" ")
			first = false
		} else {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, k)
	}
	b.WriteString(" }")
	return b.String()
}
