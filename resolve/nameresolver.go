package resolve

import "github.com/arcweave/typegraph/ir"

// resolveGlobalName resolves a textual, possibly-unqualified type name to
// the *ir.Type it denotes, from the point of view of a reference lexically
// inside containingType (nil for a module-level or free-function reference)
// declared in module and able to see the given imports.
//
// It also returns the TypeName of the typealias the name itself denotes (the
// first alias crossed), whose ActualTypeName() carries the end of the alias
// chain, or nil if the name resolved directly without crossing an alias.
// Callers that need to know whether the resolved target is itself a compound
// expression (an alias to a tuple, array, dictionary, closure, or generic)
// inspect that TypeName's ActualTypeName() rather than the returned *ir.Type,
// since a non-nominal compound has no *ir.Type of its own.
//
// Lookup order (first hit wins):
//
//  1. If containingType is non-nil, probe containingType.GlobalName()+"."+name,
//     then walk outward through each successive containing type.
//  2. Probe name directly in the type map (an already fully qualified or
//     top-level name).
//  3. For each module reachable from module (module itself first, then each
//     import), probe module+"."+name.
//  4. At every step above, also probe the same candidate string against the
//     typealias table; if found, recurse through the alias chain instead of
//     returning a Type directly.
//
// Recursion is bounded by a seen-candidates set: if an alias candidate that
// has not finished resolving repeats along the chain (an alias cycle),
// resolution stops and that candidate resolves to a nil Type, exactly as an
// unresolved reference would.
func (s *State) resolveGlobalName(name string, containingType *ir.Type, module ir.Module, imports []ir.Module) (*ir.Type, *ir.TypeName) {
	return s.resolveGlobalNameSeen(name, containingType, module, imports, make(map[string]bool))
}

func (s *State) resolveGlobalNameSeen(name string, containingType *ir.Type, module ir.Module, imports []ir.Module, seen map[string]bool) (*ir.Type, *ir.TypeName) {
	if name == "" {
		return nil, nil
	}
	name = ir.CanonicalName(name)

	for ct := containingType; ct != nil; ct = ct.ContainingType() {
		candidate := ct.GlobalName() + "." + name
		if t, aliasTN, ok := s.probe(candidate, containingType, module, imports, seen); ok {
			return t, aliasTN
		}
	}

	if t, aliasTN, ok := s.probe(name, containingType, module, imports, seen); ok {
		return t, aliasTN
	}

	if !module.IsZero() {
		if t, aliasTN, ok := s.probe(module.String()+"."+name, containingType, module, imports, seen); ok {
			return t, aliasTN
		}
	}
	for _, imp := range imports {
		if t, aliasTN, ok := s.probe(imp.String()+"."+name, containingType, module, imports, seen); ok {
			return t, aliasTN
		}
	}

	return nil, nil
}

// probe tries one fully-formed candidate name: a direct type-map hit, or a
// typealias that must be chased further. The bool result distinguishes "not
// found, try the next candidate" from "found, even if the resolved Type is
// nil" (an alias to a non-nominal compound expression resolves successfully
// to a nil Type, and the caller must not keep probing past that).
//
// When the candidate is a typealias, the returned TypeName is the alias's own
// (fully rewritten) target, letting the caller adopt its compound
// substructure; for a direct type-map hit it is nil.
func (s *State) probe(candidate string, containingType *ir.Type, module ir.Module, imports []ir.Module, seen map[string]bool) (*ir.Type, *ir.TypeName, bool) {
	if t := s.lookupByName(candidate); t != nil {
		return t, nil, true
	}
	alias := s.lookupAlias(candidate)
	if alias == nil {
		return nil, nil, false
	}
	if flat, ok := s.flattened[candidate]; ok {
		return flat.Type(), flat.TypeName(), true
	}
	if seen[candidate] {
		return nil, nil, true
	}
	seen[candidate] = true

	aliasModule := alias.Module()
	aliasImports := alias.Imports()
	if aliasModule.IsZero() {
		aliasModule = module
	}
	if len(aliasImports) == 0 {
		aliasImports = imports
	}

	target := s.resolveTypeExpression(alias.TypeName(), alias.Parent(), aliasModule, aliasImports, seen)
	alias.SetType(target)
	s.flattened[candidate] = alias
	return target, alias.TypeName(), true
}
