package resolve

import "github.com/arcweave/typegraph/ir"

// resolveType is the Type-Expression Rewriter's entry point: given a textual
// type reference as seen from containingType's scope, it returns the
// *ir.Type the reference denotes (nil if the reference is non-nominal, e.g.
// a tuple or closure, or if the name could not be resolved at all) and
// installs the canonical post-substitution form on tn.ActualTypeName().
func (s *State) resolveType(tn *ir.TypeName, containingType *ir.Type, module ir.Module, imports []ir.Module) *ir.Type {
	return s.resolveTypeExpression(tn, containingType, module, imports, make(map[string]bool))
}

func (s *State) resolveTypeExpression(tn *ir.TypeName, containingType *ir.Type, module ir.Module, imports []ir.Module, seen map[string]bool) *ir.Type {
	if tn == nil {
		return nil
	}

	// Monotonic fast path: a TypeName whose actualTypeName was already
	// written by a prior Resolve pass is never rewritten again. Only the
	// nominal-type lookup is repeated, which is idempotent by construction
	// (the same candidate name always lands in the same typeMap slot).
	if tn.ActualTypeName() != nil {
		switch {
		case tn.Tuple() != nil, tn.Closure() != nil:
			return nil
		case tn.Generic() != nil:
			t, _ := s.resolveGlobalNameSeen(tn.Generic().Name, containingType, module, imports, seen)
			return t
		default:
			t, _ := s.resolveGlobalNameSeen(tn.UnwrappedTypeName(), containingType, module, imports, seen)
			return t
		}
	}

	switch {
	case tn.Tuple() != nil:
		rewritten := s.rewriteTuple(tn.Tuple(), containingType, module, imports, seen)
		actual := copyMarkers(tn, ir.NewTypeName(tn.Name())).SetTuple(rewritten)
		tn.SetActualTypeName(actual)
		return nil

	case tn.Closure() != nil:
		rewritten := s.rewriteClosure(tn.Closure(), containingType, module, imports, seen)
		actual := copyMarkers(tn, ir.NewTypeName(tn.Name())).SetClosure(rewritten)
		tn.SetActualTypeName(actual)
		return nil

	case tn.Array() != nil:
		rewritten := s.rewriteArray(tn.Array(), containingType, module, imports, seen)
		actual := copyMarkers(tn, ir.NewTypeName(tn.Name())).SetArray(rewritten)
		tn.SetActualTypeName(actual)
		t, _ := s.resolveGlobalNameSeen(tn.UnwrappedTypeName(), containingType, module, imports, seen)
		return t

	case tn.Dictionary() != nil:
		rewritten := s.rewriteDictionary(tn.Dictionary(), containingType, module, imports, seen)
		actual := copyMarkers(tn, ir.NewTypeName(tn.Name())).SetDictionary(rewritten)
		tn.SetActualTypeName(actual)
		t, _ := s.resolveGlobalNameSeen(tn.UnwrappedTypeName(), containingType, module, imports, seen)
		return t

	case tn.Generic() != nil:
		rewritten := s.rewriteGeneric(tn.Generic(), containingType, module, imports, seen)
		actual := copyMarkers(tn, ir.NewTypeName(tn.Name())).SetGeneric(rewritten)
		tn.SetActualTypeName(actual)
		t, _ := s.resolveGlobalNameSeen(rewritten.Name, containingType, module, imports, seen)
		return t

	default:
		t, aliasTN := s.resolveGlobalNameSeen(tn.UnwrappedTypeName(), containingType, module, imports, seen)

		// A simple name may resolve through one or more typealiases to a
		// compound expression ([Element], (A, B), (A) -> B, Name<T>). When it
		// does, this TypeName's own actualTypeName must carry that compound
		// substructure rather than just the alias's bare name, so a caller
		// dispatching on tn.ActualTypeName()'s kind sees the same shape it
		// would have seen had the compound expression been written inline.
		if crossed := aliasTN.ActualTypeName(); hasCompoundSubstructure(crossed) {
			actual := copyMarkers(tn, ir.NewTypeName(crossed.Name()))
			adoptCompoundSubstructure(actual, crossed)
			tn.SetActualTypeName(actual)
			return t
		}

		name := tn.Name()
		if t != nil {
			name = t.GlobalName()
		}
		actual := copyMarkers(tn, ir.NewTypeName(name))
		tn.SetActualTypeName(actual)
		return t
	}
}

func copyMarkers(src, dst *ir.TypeName) *ir.TypeName {
	dst.SetOptional(src.IsOptional())
	dst.SetImplicitlyUnwrappedOptional(src.IsImplicitlyUnwrappedOptional())
	dst.SetProtocolComposition(src.IsProtocolComposition())
	return dst
}

// hasCompoundSubstructure reports whether tn denotes a non-simple type
// expression (tuple, array, dictionary, closure, or generic instantiation).
func hasCompoundSubstructure(tn *ir.TypeName) bool {
	return tn != nil && (tn.Tuple() != nil || tn.Array() != nil || tn.Dictionary() != nil ||
		tn.Closure() != nil || tn.Generic() != nil)
}

// adoptCompoundSubstructure installs src's compound substructure onto dst,
// letting dst stand in for src wherever a caller dispatches on the kind of
// compound expression a resolved TypeName carries. The substructure is
// installed as is, not copied: every reference that resolves through the
// same typealias shares it.
func adoptCompoundSubstructure(dst, src *ir.TypeName) {
	switch {
	case src.Tuple() != nil:
		dst.SetTuple(src.Tuple())
	case src.Array() != nil:
		dst.SetArray(src.Array())
	case src.Dictionary() != nil:
		dst.SetDictionary(src.Dictionary())
	case src.Closure() != nil:
		dst.SetClosure(src.Closure())
	case src.Generic() != nil:
		dst.SetGeneric(src.Generic())
	}
}

func (s *State) rewriteTuple(tt *ir.TupleType, containingType *ir.Type, module ir.Module, imports []ir.Module, seen map[string]bool) *ir.TupleType {
	elements := make([]ir.TupleElement, 0, len(tt.Elements))
	for _, e := range tt.Elements {
		s.resolveTypeExpression(e.TypeName, containingType, module, imports, seen)
		elements = append(elements, ir.TupleElement{Label: e.Label, TypeName: e.TypeName.ActualTypeName()})
	}
	return ir.NewTupleType(elements...)
}

func (s *State) rewriteClosure(ct *ir.ClosureType, containingType *ir.Type, module ir.Module, imports []ir.Module, seen map[string]bool) *ir.ClosureType {
	params := make([]ir.ClosureParameter, 0, len(ct.Parameters))
	for _, p := range ct.Parameters {
		s.resolveTypeExpression(p.TypeName, containingType, module, imports, seen)
		params = append(params, ir.ClosureParameter{TypeName: p.TypeName.ActualTypeName()})
	}
	s.resolveTypeExpression(ct.ReturnTypeName, containingType, module, imports, seen)
	return ir.NewClosureType(ct.ReturnTypeName.ActualTypeName(), params...)
}

func (s *State) rewriteArray(at *ir.ArrayType, containingType *ir.Type, module ir.Module, imports []ir.Module, seen map[string]bool) *ir.ArrayType {
	s.resolveTypeExpression(at.ElementTypeName, containingType, module, imports, seen)
	return ir.NewArrayType(at.ElementTypeName.ActualTypeName())
}

func (s *State) rewriteDictionary(dt *ir.DictionaryType, containingType *ir.Type, module ir.Module, imports []ir.Module, seen map[string]bool) *ir.DictionaryType {
	s.resolveTypeExpression(dt.KeyTypeName, containingType, module, imports, seen)
	s.resolveTypeExpression(dt.ValueTypeName, containingType, module, imports, seen)
	return ir.NewDictionaryType(dt.KeyTypeName.ActualTypeName(), dt.ValueTypeName.ActualTypeName())
}

func (s *State) rewriteGeneric(gt *ir.GenericType, containingType *ir.Type, module ir.Module, imports []ir.Module, seen map[string]bool) *ir.GenericType {
	params := make([]*ir.TypeName, 0, len(gt.TypeParameters))
	for _, p := range gt.TypeParameters {
		s.resolveTypeExpression(p, containingType, module, imports, seen)
		params = append(params, p.ActualTypeName())
	}
	return ir.NewGenericType(gt.Name, params...)
}
