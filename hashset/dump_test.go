package hashset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDumpSingleKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chainset.hashset")
	defer teardown()
	//
	S := New(WithHash[int](func(int) uint64 { return 3 }))
	S.Insert(42)
	var b bytes.Buffer
	if err := S.Dump(&b); err != nil {
		t.Fatal(err)
	}
	expected := "0: \n1: \n2: \n3: 42\n4: \n5: \n6: \n"
	if b.String() != expected {
		t.Errorf("expected dump\n%q\nhave\n%q", expected, b.String())
	}
}

func TestDumpChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chainset.hashset")
	defer teardown()
	//
	S := From([]int{42, 0, 1, 8})
	var b bytes.Buffer
	S.Dump(&b)
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, have %d", len(lines))
	}
	if lines[0] != "0: 0 -> 42" {
		t.Errorf("expected line 0 to be '0: 0 -> 42', is %q", lines[0])
	}
	if lines[1] != "1: 8 -> 1" {
		t.Errorf("expected line 1 to be '1: 8 -> 1', is %q", lines[1])
	}
	t.Logf("\n%s", b.String())
}

func TestString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chainset.hashset")
	defer teardown()
	//
	if s := From([]int{2, 1}).String(); s != "{ 1, 2 }" {
		t.Errorf("expected { 1, 2 }, have %s", s)
	}
	if s := New[int]().String(); s != "{ }" {
		t.Errorf("expected { }, have %s", s)
	}
}
