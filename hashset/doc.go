/*
Package hashset implements a generic hash set with separate chaining.

A Set keeps its keys in a table of buckets. Every bucket heads a chain of
nodes, newest nodes first. A key is reachable only through bucket
hash(key) mod capacity. Before an insertion would push the load factor over
0.7, the table grows to 2·capacity+1 buckets and every key is redistributed.
Bucket counts therefore never become powers of two, which helps with weak
hash functions.

Construct a set and work with it:

    S := hashset.New[int]()            // 7 buckets
    S.InsertAll(1, 2, 3, 4, 5)         // 5th insertion grows the table to 15
    it := S.Find(3)                    // iterator positioned at key 3
    n := S.Erase(99)                   // 0; 99 is remembered as last unsuccessful
    for k := range S.All() {           // bucket order, newest first within a bucket
        ...
    }

Iterators are cursors into the table. Every structural change of a set
(insertion, erasure, growth, clear, swap, assignment) invalidates all of its
outstanding iterators; using one afterwards panics with ErrStaleIterator.

Sets are not safe for concurrent use.

Ordered diagnostics

A few utilities need a total order on keys, which the set itself does not
require. They are available through an OrderedView:

    V := S.Ordered(hashset.NaturalOrder[int]())
    cnt, err := V.CountBelowLastErased()

Configuration

The default construction capacity is 7. It may be changed globally with the
configuration key "chainset.default-capacity" (see schuko/gconf).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hashset

import (
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chainset.hashset'.
func tracer() tracing.Trace {
	return tracing.Select("chainset.hashset")
}

// DefaultCapacity is the bucket count of a new set, if not configured otherwise.
const DefaultCapacity = 7

// MaxLoad is the load factor a set will not exceed after an insertion.
const MaxLoad = 0.7

// defaultCapacity returns the configured default capacity, falling back to
// DefaultCapacity.
func defaultCapacity() int {
	if gconf.IsSet("chainset.default-capacity") {
		if n := gconf.GetInt("chainset.default-capacity"); n > 0 {
			return n
		}
	}
	return DefaultCapacity
}
