package shell

import (
	"testing"
)

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()
	if reg == nil || reg.Size() != 0 {
		t.Error("no empty registry created")
	}
}

func TestDefineBinding(t *testing.T) {
	reg := NewRegistry()
	b, _ := reg.Define("A")
	if b == nil || b.Set == nil {
		t.Fatal("no binding created for registry")
	}
	if _, old := reg.Define("A"); old != b {
		t.Error("binding should have been replaced")
	}
	if b, _ := reg.Define(""); b != nil {
		t.Error("empty names should not be bound")
	}
}

func TestResolveOrDefine(t *testing.T) {
	reg := NewRegistry()
	b, _ := reg.Define("A")
	if r, found := reg.ResolveOrDefine("A"); !found || r != b {
		t.Error("cannot find stored binding in registry")
	}
	if _, found := reg.ResolveOrDefine("B"); found {
		t.Error("binding B should have been created")
	}
	if reg.Resolve("B") == nil {
		t.Error("binding B should be resolvable")
	}
}

func TestNamesSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"C", "A", "B"} {
		reg.Define(name)
	}
	var names []string
	reg.Each(func(name string, b *Binding) {
		names = append(names, name)
	})
	if len(names) != 3 || names[0] != "A" || names[1] != "B" || names[2] != "C" {
		t.Errorf("expected names in order A B C, have %v", names)
	}
}
