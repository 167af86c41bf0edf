package resolve

import "github.com/arcweave/typegraph/ir"

// unify merges every parsed declaration of the same global name into a
// single canonical *ir.Type before anything downstream is allowed to look a
// type up: a class split across a primary declaration and one or more
// extensions becomes exactly one *ir.Type, reachable from state.typeMap by
// its GlobalName regardless of which fragment defined which member.
func (s *State) unify(types []*ir.Type) error {
	order := make([]string, 0, len(types))
	for _, t := range types {
		key := t.GlobalName()
		existing, ok := s.typeMap[key]
		if !ok {
			s.typeMap[key] = t
			order = append(order, key)
			continue
		}
		if err := mergeInto(existing, t); err != nil {
			return err
		}
	}

	s.types = make([]*ir.Type, 0, len(order))
	for _, key := range order {
		s.types = append(s.types, s.typeMap[key])
	}
	return nil
}

// mergeInto folds src's contribution into dst, the already-canonical record
// for their shared global name. A full body declaration takes precedence
// over an extension for kind, documentation and the inheritance clause;
// members, nested types, and extension-declared conformances always
// accumulate regardless of which fragment they came from.
func mergeInto(dst, src *ir.Type) error {
	if !src.IsExtension() && !dst.IsExtension() &&
		dst.Kind() != ir.KindUnknown && src.Kind() != ir.KindUnknown &&
		dst.Kind() != src.Kind() {
		return newError(UnmergeableDeclaration, "conflicting declarations of "+dst.GlobalName()+
			": "+dst.Kind().String()+" vs "+src.Kind().String())
	}

	if !src.IsExtension() {
		dst.ClearExtension()
		dst.SetKind(src.Kind())
		if src.Doc() != "" {
			dst.SetDoc(src.Doc())
		}
		dst.AddInheritedTypeNames(src.InheritedTypeNames()...)
		dst.AddCases(src.Cases()...)
		dst.AddAssociatedTypes(src.AssociatedTypes()...)
		dst.AddGenericRequirements(src.GenericRequirements()...)
		dst.AddComposedTypeNames(src.ComposedTypeNames()...)
		if src.RawTypeName() != nil {
			dst.SetRawTypeName(src.RawTypeName())
		}
	} else {
		dst.AddInheritedTypeNames(src.InheritedTypeNames()...)
	}

	dst.AddVariables(src.VariablesSlice()...)
	dst.AddMethods(src.MethodsSlice()...)
	dst.AddSubscripts(src.SubscriptsSlice()...)
	for _, nt := range src.NestedTypesSlice() {
		dst.AddNestedType(nt)
	}
	if len(src.Imports()) > 0 {
		dst.SetImports(append(dst.Imports(), src.Imports()...))
	}
	return nil
}
