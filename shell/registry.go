package shell

import (
	"fmt"

	"github.com/npillmayer/chainset/hashset"
)

// --- Bindings --------------------------------------------------------------

// Binding binds a name to a set of int64 keys.
type Binding struct {
	name string
	Set  *hashset.Set[int64]
}

// NewBinding creates a binding to a new, empty set.
func NewBinding(name string) *Binding {
	return &Binding{
		name: name,
		Set:  hashset.New[int64](),
	}
}

// Name gets the binding's name.
func (b *Binding) Name() string {
	return b.name
}

// String is a debug Stringer for bindings.
func (b *Binding) String() string {
	return fmt.Sprintf("<set '%s':%d>", b.name, b.Set.Size())
}

// === Registry ==============================================================

// Registry stores bindings by name (map-like semantics).
type Registry struct {
	table         map[string]*Binding
	createBinding func(string) *Binding
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		table:         make(map[string]*Binding),
		createBinding: NewBinding,
	}
}

// Resolve checks for a binding in the registry.
// Returns a binding or nil.
func (r *Registry) Resolve(name string) *Binding {
	return r.table[name]
}

// ResolveOrDefine finds a binding in the registry, creating a new one if not
// found. Returns the binding and a flag, signalling wether the binding has
// already been present.
func (r *Registry) ResolveOrDefine(name string) (*Binding, bool) {
	if len(name) == 0 {
		return nil, false
	}
	found := true
	b := r.Resolve(name)
	if b == nil {
		b, _ = r.Define(name)
		found = false
	}
	return b, found
}

// Define creates a new binding to store into the registry.
// The name may not be empty.
// Overwrites an existing binding with this name, if any.
// Returns the new binding and the previously stored binding (or nil).
func (r *Registry) Define(name string) (*Binding, *Binding) {
	if len(name) == 0 {
		return nil, nil
	}
	b := r.createBinding(name)
	old := r.Insert(b)
	return b, old
}

// Insert inserts a pre-created binding.
func (r *Registry) Insert(b *Binding) *Binding {
	old := r.Resolve(b.name)
	r.table[b.name] = b
	return old
}

// Size counts the bindings in a registry.
func (r *Registry) Size() int {
	return len(r.table)
}

// Names returns the names of all bindings in ascending order.
func (r *Registry) Names() []string {
	names := hashset.New[string]()
	for name := range r.table {
		names.Insert(name)
	}
	return names.Ordered(hashset.NaturalOrder[string]()).Sorted()
}

// Each iterates over the bindings in order of their names, executing a mapper
// function.
func (r *Registry) Each(mapper func(string, *Binding)) {
	for _, name := range r.Names() {
		mapper(name, r.table[name])
	}
}
