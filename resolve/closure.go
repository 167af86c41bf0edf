package resolve

import "github.com/arcweave/typegraph/ir"

// computeAncestorClosure is the Ancestor Closure phase: for every unified
// type, resolve its textual InheritedTypeNames into BasedTypes (the
// transitive closure, not just the direct bases), classify each into
// Inherits (class) vs Implements (protocol/composition), and for a class set
// Supertype from the first inherited name if and only if it names another
// class.
//
// The walk is a memoized post-order DFS over the based-type graph, using
// "processed" and "inProgress" sets for visited/visiting states, except a
// type caught mid-recursion (a cycle) is simply treated as having no further
// based types to contribute rather than reported as an error: this phase
// never fails the overall resolution.
func (s *State) computeAncestorClosure() {
	processed := make(map[string]bool)
	inProgress := make(map[string]bool)
	for _, t := range s.types {
		s.closeType(t, processed, inProgress)
	}
}

func (s *State) closeType(t *ir.Type, processed, inProgress map[string]bool) {
	key := t.GlobalName()
	if processed[key] {
		return
	}
	if inProgress[key] {
		return
	}
	inProgress[key] = true
	defer delete(inProgress, key)

	names := t.InheritedTypeNames()
	var supertypeCandidate *ir.Type
	for i, name := range names {
		base := s.findBaseType(name, t)
		if base == nil {
			continue
		}
		if i == 0 {
			supertypeCandidate = base
		}

		if !inProgress[base.GlobalName()] {
			s.closeType(base, processed, inProgress)
		}

		t.SetBasedType(base)
		classify(t, base)

		for _, grandBase := range base.BasedTypesSlice() {
			t.SetBasedType(grandBase)
			classify(t, grandBase)
		}
		for _, basedKey := range base.BasedKeysSlice() {
			t.AddBasedKey(basedKey)
		}
	}

	if t.Kind() == ir.KindClass && supertypeCandidate != nil && supertypeCandidate.Kind() == ir.KindClass {
		t.SetSupertype(supertypeCandidate)
	}

	processed[key] = true
}

func classify(t, base *ir.Type) {
	switch base.Kind() {
	case ir.KindClass:
		t.SetInherit(base)
	case ir.KindProtocol, ir.KindProtocolComposition:
		t.SetImplement(base)
		inheritAssociatedTypes(t, base)
	}
}

// inheritAssociatedTypes copies base's associated-type declarations onto t,
// skipping any name t already declares itself: a protocol refining another
// carries forward the associatedtype constraints it doesn't already redeclare.
func inheritAssociatedTypes(t, base *ir.Type) {
	have := make(map[string]bool, len(t.AssociatedTypes()))
	for _, at := range t.AssociatedTypes() {
		have[at.Name()] = true
	}
	for _, at := range base.AssociatedTypes() {
		if !have[at.Name()] {
			t.AddAssociatedTypes(at)
			have[at.Name()] = true
		}
	}
}

// findBaseType resolves one textual inherited-type name from t's own scope:
// its own global-name-qualified scope chain first, then module/import
// scoping, mirroring the Name Resolver's lookup order without crossing
// typealiases (a raw inheritance-clause name is never an alias reference in
// the source language this models).
func (s *State) findBaseType(name string, t *ir.Type) *ir.Type {
	canonical := ir.CanonicalName(name)

	for ct := t; ct != nil; ct = ct.ContainingType() {
		if base, ok := s.typeMap[ct.GlobalName()+"."+canonical]; ok {
			return base
		}
	}
	if base, ok := s.typeMap[canonical]; ok {
		return base
	}
	if !t.Module().IsZero() {
		if base, ok := s.typeMap[t.Module().String()+"."+canonical]; ok {
			return base
		}
	}
	for _, imp := range t.Imports() {
		if base, ok := s.typeMap[imp.String()+"."+canonical]; ok {
			return base
		}
	}
	return nil
}
