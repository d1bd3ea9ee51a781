package hashset

import (
	"testing"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// withConfig makes conf the global configuration until the returned
// function is called.
func withConfig(conf testconfig.Conf) func() {
	gconf.Initialize(conf)
	return func() {
		gconf.Initialize(testconfig.Conf{})
	}
}

func TestConfiguredDefaultCapacity(t *testing.T) {
	defer withConfig(testconfig.Conf{"chainset.default-capacity": "11"})()
	teardown := gotestingadapter.QuickConfig(t, "chainset.hashset")
	defer teardown()
	//
	S := New[int]()
	if S.Capacity() != 11 {
		t.Errorf("expected configured capacity 11, is %d", S.Capacity())
	}
	S.InsertAll(1, 2, 3)
	S.Clear()
	if S.Capacity() != 11 {
		t.Errorf("expected Clear to restore configured capacity 11, is %d", S.Capacity())
	}
	if C := New(WithCapacity[int](3)); C.Capacity() != 3 {
		t.Errorf("expected explicit capacity to win over configuration, is %d", C.Capacity())
	}
}

func TestInvalidConfiguredCapacity(t *testing.T) {
	defer withConfig(testconfig.Conf{"chainset.default-capacity": "-4"})()
	teardown := gotestingadapter.QuickConfig(t, "chainset.hashset")
	defer teardown()
	//
	if S := New[int](); S.Capacity() != DefaultCapacity {
		t.Errorf("expected fallback to capacity %d, is %d", DefaultCapacity, S.Capacity())
	}
}
