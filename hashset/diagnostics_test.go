package hashset

import (
	"errors"
	"testing"

	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCountBelowLastErased(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chainset.hashset")
	defer teardown()
	//
	S := From([]int{5, 1, 9, 3, 7})
	V := S.Ordered(NaturalOrder[int]())
	if _, err := V.CountBelowLastErased(); !errors.Is(err, ErrNothingErased) {
		t.Errorf("expected ErrNothingErased before any erasure, have %v", err)
	}
	S.Erase(5)
	cnt, err := V.CountBelowLastErased()
	if err != nil {
		t.Fatal(err)
	}
	if cnt != 2 {
		t.Errorf("expected 2 keys below 5, have %d", cnt)
	}
}

func TestSmallestAboveLastUnsuccessful(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chainset.hashset")
	defer teardown()
	//
	S := From([]int{5, 1, 9, 3, 7})
	V := S.Ordered(utils.IntComparator)
	if _, ok := V.SmallestAboveLastUnsuccessful(); ok {
		t.Errorf("expected no result before an unsuccessful erasure")
	}
	S.Erase(4)
	if k, ok := V.SmallestAboveLastUnsuccessful(); !ok || k != 5 {
		t.Errorf("expected 5 to be smallest key above 4, have %d", k)
	}
	S.Erase(100)
	if _, ok := V.SmallestAboveLastUnsuccessful(); ok {
		t.Errorf("expected no key above 100")
	}
}

func TestLargestBelow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chainset.hashset")
	defer teardown()
	//
	S := From([]int{5, 1, 9, 3, 7})
	V := S.Ordered(NaturalOrder[int]())
	it := V.LargestBelow(8)
	if it.AtEnd() || it.Key() != 7 {
		t.Errorf("expected 7 to be largest key below 8")
	}
	if !it.Equal(S.Find(7)) {
		t.Errorf("expected LargestBelow(8) to be positioned at Find(7)")
	}
	if !V.LargestBelow(1).Equal(S.End()) {
		t.Errorf("expected no key below 1")
	}
}

func TestSorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chainset.hashset")
	defer teardown()
	//
	S := From([]string{"pear", "apple", "fig", "banana"})
	sorted := S.Ordered(NaturalOrder[string]()).Sorted()
	expected := []string{"apple", "banana", "fig", "pear"}
	for i := range expected {
		if sorted[i] != expected[i] {
			t.Fatalf("expected %v, have %v", expected, sorted)
		}
	}
}
