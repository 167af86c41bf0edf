package resolve

import "github.com/arcweave/typegraph/ir"

// State is the session object constructed once per Resolve call, mutated
// throughout the phases, and discarded on return. It owns the typeMap arena
// every cross-link is resolved through, so the type graph can contain cycles
// without requiring direct strong-reference cycles: parent pointers and base
// pointers are non-owning, looked up by global name.
type State struct {
	typeMap map[string]*ir.Type

	types     []*ir.Type
	functions []*ir.Method

	// aliases holds every typealias by its own GlobalName(); entries here may
	// or may not have had their Type() field filled in yet.
	aliases map[string]*ir.Typealias

	// flattened holds the subset of aliases whose Type() has been computed:
	// the final, terminal target per alias chain.
	flattened map[string]*ir.Typealias
}

func newState() *State {
	return &State{
		typeMap:   make(map[string]*ir.Type),
		aliases:   make(map[string]*ir.Typealias),
		flattened: make(map[string]*ir.Typealias),
	}
}

// lookupByName resolves a (possibly unqualified) global name to a *ir.Type
// through the typeMap arena, canonicalizing first.
func (s *State) lookupByName(name string) *ir.Type {
	if name == "" {
		return nil
	}
	return s.typeMap[ir.CanonicalName(name)]
}

// lookupAlias resolves a (possibly unqualified) global name to a
// *ir.Typealias, canonicalizing first.
func (s *State) lookupAlias(name string) *ir.Typealias {
	if name == "" {
		return nil
	}
	return s.aliases[ir.CanonicalName(name)]
}
