package formulation

import "fmt"

// Registry holds the known formulations in registration order.
// It is built once at startup and only read afterwards.
type Registry struct {
	order []ID
	defs  map[ID]Definition
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		order: make([]ID, 0),
		defs:  make(map[ID]Definition),
	}
}

// Register adds a formulation. It panics on a duplicate or empty id, a missing
// formula, or when Variables and Labels do not correspond one to one.
func (r *Registry) Register(id ID, def Definition) {
	if id == "" {
		panic("formulation: empty id")
	}
	if _, exists := r.defs[id]; exists {
		panic(fmt.Sprintf("formulation: %q already registered", id))
	}
	if def.Formula == nil {
		panic(fmt.Sprintf("formulation: %q has no formula", id))
	}
	if len(def.Variables) != len(def.Labels) {
		panic(fmt.Sprintf("formulation: %q has %d variables but %d labels", id, len(def.Variables), len(def.Labels)))
	}
	for _, v := range def.Variables {
		if _, ok := def.Labels[v]; !ok {
			panic(fmt.Sprintf("formulation: %q has no label for variable %q", id, v))
		}
	}
	r.order = append(r.order, id)
	r.defs[id] = def
}

// List returns the (id, name) pairs in registration order.
func (r *Registry) List() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, Entry{ID: id, Name: r.defs[id].Name})
	}
	return out
}

// Get returns the definition for id. The empty id is never registered,
// so an empty selection reports false like any unknown id.
func (r *Registry) Get(id ID) (Definition, bool) {
	def, ok := r.defs[id]
	return def, ok
}
