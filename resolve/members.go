package resolve

import (
	"sync"

	"github.com/arcweave/typegraph/ir"
)

// resolveMembers runs the Member Resolver phase: for every unified type and
// every free function, fill in the Type()/ReturnType() etc. cross-links that
// only depend on names already established by unify. Member resolution never
// reaches into another type's own member resolution, so this phase is
// embarrassingly parallel over types and, separately, over functions.
//
// Work is fanned out over a worker pool bounded by cfg.workerCount via an
// explicit semaphore.
func (s *State) resolveMembers(cfg config) {
	s.forEachType(cfg.workerCount, s.resolveTypeMembers)
	s.forEachFunction(cfg.workerCount, s.resolveFunctionSignature)
}

func (s *State) forEachType(workers int, fn func(*ir.Type)) {
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for _, t := range s.types {
		t := t
		sem <- struct{}{}
		wg.Go(func() {
			defer func() { <-sem }()
			fn(t)
		})
	}
	wg.Wait()
}

func (s *State) forEachFunction(workers int, fn func(*ir.Method)) {
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for _, m := range s.functions {
		m := m
		sem <- struct{}{}
		wg.Go(func() {
			defer func() { <-sem }()
			fn(m)
		})
	}
	wg.Wait()
}

// resolveTypeMembers resolves every TypeName reachable from t: its
// variables, methods, subscripts, enum cases, associated types, generic
// requirements, and protocol-composition members. It never mutates any
// *ir.Type other than t itself (Type() fields point at already-unified,
// read-only-from-here records), so concurrent calls across distinct t are
// race-free.
func (s *State) resolveTypeMembers(t *ir.Type) {
	module, imports := t.Module(), t.Imports()

	for _, v := range t.VariablesSlice() {
		v.SetType(s.resolveType(v.TypeName(), t, module, imports))
		if v.DefinedInTypeName() != nil {
			v.SetDefinedInType(s.resolveType(v.DefinedInTypeName(), t, module, imports))
		}
	}

	for _, m := range t.MethodsSlice() {
		s.resolveMethodSignature(m, t, module, imports)
	}

	for _, sub := range t.SubscriptsSlice() {
		sub.SetReturnType(s.resolveType(sub.ReturnTypeName(), t, module, imports))
		for _, p := range sub.Parameters() {
			p.SetType(s.resolveType(p.TypeName(), t, module, imports))
		}
		if sub.DefinedInTypeName() != nil {
			sub.SetDefinedInType(s.resolveType(sub.DefinedInTypeName(), t, module, imports))
		}
	}

	switch t.Kind() {
	case ir.KindEnum:
		s.resolveEnumCases(t, module, imports)
	case ir.KindProtocol:
		s.resolveProtocolMembers(t, module, imports)
	case ir.KindProtocolComposition:
		s.resolveComposition(t, module, imports)
	}
}

func (s *State) resolveMethodSignature(m *ir.Method, containingType *ir.Type, module ir.Module, imports []ir.Module) {
	for _, p := range m.Parameters() {
		p.SetType(s.resolveType(p.TypeName(), containingType, module, imports))
	}

	switch {
	case m.IsInitializer() || m.IsFailableInitializer():
		// An initializer's return type is never written out: it is always the
		// type it constructs. Synthesize both the name and its resolved form
		// from containingType itself, marking it optional for `init?`.
		tn := ir.NewTypeName(containingType.Name())
		tn.SetOptional(m.IsFailableInitializer())
		actual := ir.NewTypeName(containingType.GlobalName())
		actual.SetOptional(m.IsFailableInitializer())
		tn.SetActualTypeName(actual)
		m.SetReturnTypeName(tn)
		m.SetReturnType(containingType)
	case !m.ReturnTypeIsVoid() && m.ReturnTypeName() != nil:
		m.SetReturnType(s.resolveType(m.ReturnTypeName(), containingType, module, imports))
	}

	if m.DefinedInTypeName() != nil {
		m.SetDefinedInType(s.resolveType(m.DefinedInTypeName(), containingType, module, imports))
	}
}

// resolveFunctionSignature resolves a free function's signature with a nil
// containing type, an empty module and no imports: an ir.Method carries no
// module or imports of its own, so only top-level and fully qualified names
// resolve.
func (s *State) resolveFunctionSignature(m *ir.Method) {
	var module ir.Module
	var imports []ir.Module
	if m.DefinedInTypeName() != nil {
		m.SetDefinedInType(s.resolveType(m.DefinedInTypeName(), nil, module, imports))
	}
	s.resolveMethodSignature(m, nil, module, imports)
}

// resolveEnumCases resolves each case's associated-value types and then
// applies the enum raw-type precedence rule: a rawValue stored property
// takes precedence over the textual first inherited name. When one is
// present, its already-resolved type becomes the enum's raw type outright;
// otherwise the first inherited name is tried as a fallback below. An enum
// whose every case carries associated values has its RawTypeName cleared.
func (s *State) resolveEnumCases(t *ir.Type, module ir.Module, imports []ir.Module) {
	for _, c := range t.Cases() {
		for _, av := range c.AssociatedValues() {
			av.SetType(s.resolveType(av.TypeName(), t, module, imports))
		}
	}

	for _, v := range t.VariablesSlice() {
		if v.IsRawValue() {
			t.SetRawTypeName(v.TypeName())
			t.SetRawType(v.Type())
			return
		}
	}

	hasPlainCase := false
	for _, c := range t.Cases() {
		if !c.HasAssociatedValues() {
			hasPlainCase = true
		}
	}
	if len(t.Cases()) > 0 && !hasPlainCase {
		t.SetRawTypeName(nil)
		return
	}
	if t.RawTypeName() == nil && hasPlainCase {
		if names := t.InheritedTypeNames(); len(names) > 0 {
			t.SetRawTypeName(ir.NewTypeName(names[0]))
		}
	}
	if t.RawTypeName() == nil {
		return
	}
	rawType := s.resolveType(t.RawTypeName(), t, module, imports)
	if rawType != nil && rawType.Kind() == ir.KindProtocol {
		// A declared raw type that actually names a protocol is not a raw
		// type at all: keep the textual reference for informational
		// purposes but never populate RawType.
		return
	}
	t.SetRawType(rawType)
}

func (s *State) resolveProtocolMembers(t *ir.Type, module ir.Module, imports []ir.Module) {
	byName := make(map[string]*ir.AssociatedType, len(t.AssociatedTypes()))
	for _, at := range t.AssociatedTypes() {
		if at.ConstraintTypeName() != nil {
			at.SetConstraintType(s.resolveType(at.ConstraintTypeName(), t, module, imports))
		}
		byName[at.Name()] = at
	}

	for _, gr := range t.GenericRequirements() {
		if left := gr.LeftTypeName(); left != nil {
			if at, ok := byName[left.UnwrappedTypeName()]; ok {
				gr.SetLeftAssociatedType(at)
			}
		}
		gr.SetRightType(s.resolveType(gr.RightTypeName(), t, module, imports))
	}
}

func (s *State) resolveComposition(t *ir.Type, module ir.Module, imports []ir.Module) {
	names := t.ComposedTypeNames()
	types := make([]*ir.Type, len(names))
	for i, tn := range names {
		types[i] = s.resolveType(tn, t, module, imports)
	}
	t.SetComposedTypes(types)
}
