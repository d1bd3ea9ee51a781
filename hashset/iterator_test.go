package hashset

import (
	"errors"
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIterateAllKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chainset.hashset")
	defer teardown()
	//
	inputs := [][]int{
		{},
		{1},
		{5, 3, 1, 4, 2},
		{100, 7, 14, 21, 28, 35, 3, 17, 99, 64, 1000, 12},
	}
	for _, input := range inputs {
		S := From(input)
		seen := make(map[int]int)
		for it := S.Begin(); !it.AtEnd(); it.Next() {
			seen[it.Key()]++
		}
		if len(seen) != len(input) {
			t.Errorf("expected %d keys from iteration, have %d", len(input), len(seen))
		}
		for _, k := range input {
			if seen[k] != 1 {
				t.Errorf("expected key %d exactly once, saw it %d times", k, seen[k])
			}
		}
	}
}

func TestIteratorEquality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chainset.hashset")
	defer teardown()
	//
	S := From([]int{3, 1, 2})
	begin := S.Begin()
	if begin.Key() != 1 {
		t.Errorf("expected first key in bucket order to be 1, is %d", begin.Key())
	}
	if !begin.Equal(S.Find(1)) {
		t.Errorf("expected Begin() to equal Find(1)")
	}
	if begin.Equal(S.Find(2)) {
		t.Errorf("expected Begin() to differ from Find(2)")
	}
	it := S.Begin()
	for i := 0; i < 3; i++ {
		it.Next()
	}
	if !it.Equal(S.End()) {
		t.Errorf("expected iterator advanced 3 times to be End()")
	}
	it.Next() // no-op at end
	if !it.AtEnd() {
		t.Errorf("expected advancing End() to stay at end")
	}
	if S.Begin().Equal(From([]int{3, 1, 2}).Begin()) {
		t.Errorf("expected iterators of different sets to differ")
	}
}

func TestEmptySetIteration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chainset.hashset")
	defer teardown()
	//
	S := New[string]()
	if !S.Begin().Equal(S.End()) {
		t.Errorf("expected Begin() = End() for empty set")
	}
	if len(S.Keys()) != 0 {
		t.Errorf("expected no keys for empty set")
	}
}

func TestStaleIteratorPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chainset.hashset")
	defer teardown()
	//
	S := From([]int{1, 2, 3})
	it := S.Begin()
	S.Insert(4)
	if it.Valid() {
		t.Errorf("expected iterator to be invalidated by insertion")
	}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrStaleIterator) {
			t.Errorf("expected panic with ErrStaleIterator, have %v", r)
		}
	}()
	_ = it.Key()
	t.Errorf("expected stale iterator to panic")
}

func TestEndIteratorPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chainset.hashset")
	defer teardown()
	//
	S := From([]int{1})
	defer func() {
		if r := recover(); r != ErrEndIterator {
			t.Errorf("expected panic with ErrEndIterator, have %v", r)
		}
	}()
	_ = S.End().Key()
}

func TestRangeOverAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chainset.hashset")
	defer teardown()
	//
	S := From([]int{9, 8, 7, 6, 5, 4, 3, 2, 1})
	var keys []int
	for k := range S.All() {
		keys = append(keys, k)
		if len(keys) == 4 {
			break
		}
	}
	if len(keys) != 4 {
		t.Errorf("expected to stop after 4 keys, have %d", len(keys))
	}
	all := S.Keys()
	sort.Ints(all)
	for i, k := range all {
		if k != i+1 {
			t.Fatalf("expected keys 1…9, have %v", all)
		}
	}
	sum := 0
	S.Each(func(k int) { sum += k })
	if sum != 45 {
		t.Errorf("expected sum of keys to be 45, is %d", sum)
	}
}
