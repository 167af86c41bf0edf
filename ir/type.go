package ir

import (
	"iter"
	"slices"
)

// Kind tags the nominal-type variant. Go has no subclassing, so the source
// tool's `Type` base class with `Class`/`Struct`/`Enum`/`Protocol`/
// `ProtocolComposition` subclasses is reimplemented here as a tagged sum
// type: one shared header plus per-kind payload fields, dispatched on Kind
// in the Member Resolver and Ancestor Closure.
type Kind uint8

const (
	// KindUnknown is the zero value: a declaration whose kind has not yet
	// been established (e.g. an extension seen before its defining body).
	KindUnknown Kind = iota
	KindClass
	KindStruct
	KindEnum
	KindProtocol
	KindProtocolComposition
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindProtocol:
		return "protocol"
	case KindProtocolComposition:
		return "protocolComposition"
	default:
		return "unknown"
	}
}

// Type is a declared nominal type: a class, struct (treated as a generic
// nominal, same as the source tool), enum, protocol, or protocol
// composition. It is created by the parser (one record per declaration or
// extension) and merged into one canonical record per globalName by the
// Unifier; thereafter it is mutated in place by the Member Resolver and the
// Ancestor Closure.
type Type struct {
	kind       Kind
	globalName string
	name       string
	module     Module
	imports    []Module
	doc        string
	isExtension bool

	containingType *Type
	nestedTypes    []*Type

	variables  []*Variable
	methods    []*Method
	subscripts []*Subscript

	inheritedTypeNames []string // textual, declaration order; first entry is significant

	based      map[string]struct{}
	basedTypes map[string]*Type
	inherits   map[string]*Type
	implements map[string]*Type

	supertype *Type // Class only

	// Enum-specific.
	cases       []*EnumCase
	rawTypeName *TypeName
	rawType     *Type

	// Protocol-specific.
	associatedTypes     []*AssociatedType
	genericRequirements []*GenericRequirement

	// ProtocolComposition-specific.
	composedTypeNames []*TypeName
	composedTypes     []*Type
}

// NewType creates a Type declaration with the given kind, global name, and
// declaring module. Extensions are created the same way with isExtension
// set via MarkExtension.
func NewType(kind Kind, globalName string, module Module) *Type {
	return &Type{
		kind:       kind,
		globalName: CanonicalName(globalName),
		name:       shortName(globalName),
		module:     module,
		based:      make(map[string]struct{}),
		basedTypes: make(map[string]*Type),
		inherits:   make(map[string]*Type),
		implements: make(map[string]*Type),
	}
}

func shortName(globalName string) string {
	for i := len(globalName) - 1; i >= 0; i-- {
		if globalName[i] == '.' {
			return globalName[i+1:]
		}
	}
	return globalName
}

// Kind returns the tagged variant.
func (t *Type) Kind() Kind { return t.kind }

// SetKind sets the tagged variant. Used by the Unifier to promote an
// extension-only record once its defining body is seen: a full body takes
// precedence over an extension for kind/attributes that only a definition
// can carry.
func (t *Type) SetKind(k Kind) { t.kind = k }

// GlobalName returns the fully qualified, canonicalized name.
func (t *Type) GlobalName() string { return t.globalName }

// Name returns the short (unqualified, innermost) name.
func (t *Type) Name() string { return t.name }

// Module returns the declaring module.
func (t *Type) Module() Module { return t.module }

// Imports returns the modules imported by the declaring file.
func (t *Type) Imports() []Module { return t.imports }

// SetImports sets the imported modules.
func (t *Type) SetImports(imports []Module) { t.imports = imports }

// Doc returns the documentation comment, if any.
func (t *Type) Doc() string { return t.doc }

// SetDoc sets the documentation comment.
func (t *Type) SetDoc(doc string) { t.doc = doc }

// IsExtension reports whether this record, prior to unification, was an
// extension rather than a full body declaration.
func (t *Type) IsExtension() bool { return t.isExtension }

// MarkExtension marks this record as an extension.
func (t *Type) MarkExtension() { t.isExtension = true }

// ClearExtension marks this record as a full body declaration. Used by the
// Unifier when a full body merges into a record first seen as an
// extension-only placeholder.
func (t *Type) ClearExtension() { t.isExtension = false }

// ContainingType returns the lexically enclosing type, or nil for a
// top-level declaration. Used by the Name Resolver to walk outward through
// nested scopes.
func (t *Type) ContainingType() *Type { return t.containingType }

// SetContainingType sets the lexically enclosing type.
func (t *Type) SetContainingType(parent *Type) { t.containingType = parent }

// NestedTypes returns an iterator over directly nested type declarations.
func (t *Type) NestedTypes() iter.Seq[*Type] {
	return func(yield func(*Type) bool) {
		for _, nt := range t.nestedTypes {
			if !yield(nt) {
				return
			}
		}
	}
}

// NestedTypesSlice returns a defensive copy of the nested types.
func (t *Type) NestedTypesSlice() []*Type { return slices.Clone(t.nestedTypes) }

// AddNestedType appends a nested type declaration.
func (t *Type) AddNestedType(nt *Type) {
	nt.SetContainingType(t)
	t.nestedTypes = append(t.nestedTypes, nt)
}

// Variables returns an iterator over this type's variable members.
func (t *Type) Variables() iter.Seq[*Variable] {
	return func(yield func(*Variable) bool) {
		for _, v := range t.variables {
			if !yield(v) {
				return
			}
		}
	}
}

// VariablesSlice returns a defensive copy of the variable members.
func (t *Type) VariablesSlice() []*Variable { return slices.Clone(t.variables) }

// AddVariables appends variable members (used by the Unifier when merging).
func (t *Type) AddVariables(vs ...*Variable) { t.variables = append(t.variables, vs...) }

// Methods returns an iterator over this type's method members.
func (t *Type) Methods() iter.Seq[*Method] {
	return func(yield func(*Method) bool) {
		for _, m := range t.methods {
			if !yield(m) {
				return
			}
		}
	}
}

// MethodsSlice returns a defensive copy of the method members.
func (t *Type) MethodsSlice() []*Method { return slices.Clone(t.methods) }

// AddMethods appends method members (used by the Unifier when merging).
func (t *Type) AddMethods(ms ...*Method) { t.methods = append(t.methods, ms...) }

// Subscripts returns an iterator over this type's subscript members.
func (t *Type) Subscripts() iter.Seq[*Subscript] {
	return func(yield func(*Subscript) bool) {
		for _, s := range t.subscripts {
			if !yield(s) {
				return
			}
		}
	}
}

// SubscriptsSlice returns a defensive copy of the subscript members.
func (t *Type) SubscriptsSlice() []*Subscript { return slices.Clone(t.subscripts) }

// AddSubscripts appends subscript members (used by the Unifier when merging).
func (t *Type) AddSubscripts(ss ...*Subscript) { t.subscripts = append(t.subscripts, ss...) }

// InheritedTypeNames returns the textual names from the declaration's
// inheritance/conformance clause, in declaration order. The first entry is
// significant: for a Class it is probed as the superclass; for an Enum with
// no stored rawValue it is probed as the raw type.
func (t *Type) InheritedTypeNames() []string { return slices.Clone(t.inheritedTypeNames) }

// AddInheritedTypeNames appends textual inheritance/conformance names and
// registers them as based-keys to resolve.
func (t *Type) AddInheritedTypeNames(names ...string) {
	t.inheritedTypeNames = append(t.inheritedTypeNames, names...)
	for _, n := range names {
		t.based[n] = struct{}{}
	}
}

// Based returns an iterator over the base-name keys awaiting resolution,
// populated from the inheritance clause.
func (t *Type) Based() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range t.based {
			if !yield(k) {
				return
			}
		}
	}
}

// BasedKeysSlice returns a defensive copy of the based-key set.
func (t *Type) BasedKeysSlice() []string {
	out := make([]string, 0, len(t.based))
	for k := range t.based {
		out = append(out, k)
	}
	return out
}

// AddBasedKey registers an additional base-name key to resolve (used when
// merging a base's own based-keys into a derived type during closure).
func (t *Type) AddBasedKey(name string) { t.based[name] = struct{}{} }

// BasedTypes returns the transitive closure of resolved base types: T's
// directly resolved bases plus each base's own BasedTypes.
func (t *Type) BasedTypes() iter.Seq[*Type] {
	return func(yield func(*Type) bool) {
		for _, bt := range t.basedTypes {
			if !yield(bt) {
				return
			}
		}
	}
}

// BasedTypesSlice returns a defensive copy of the resolved transitive base
// types.
func (t *Type) BasedTypesSlice() []*Type {
	out := make([]*Type, 0, len(t.basedTypes))
	for _, bt := range t.basedTypes {
		out = append(out, bt)
	}
	return out
}

// SetBasedType records a resolved transitive base type under its global
// name.
func (t *Type) SetBasedType(bt *Type) { t.basedTypes[bt.GlobalName()] = bt }

// Inherits returns the subset of BasedTypes that are classes.
func (t *Type) Inherits() iter.Seq[*Type] {
	return func(yield func(*Type) bool) {
		for _, it := range t.inherits {
			if !yield(it) {
				return
			}
		}
	}
}

// InheritsSlice returns a defensive copy of the resolved class bases.
func (t *Type) InheritsSlice() []*Type {
	out := make([]*Type, 0, len(t.inherits))
	for _, it := range t.inherits {
		out = append(out, it)
	}
	return out
}

// SetInherit records a resolved class base.
func (t *Type) SetInherit(c *Type) { t.inherits[c.GlobalName()] = c }

// Implements returns the subset of BasedTypes that are protocols or
// protocol compositions.
func (t *Type) Implements() iter.Seq[*Type] {
	return func(yield func(*Type) bool) {
		for _, it := range t.implements {
			if !yield(it) {
				return
			}
		}
	}
}

// ImplementsSlice returns a defensive copy of the resolved protocol bases.
func (t *Type) ImplementsSlice() []*Type {
	out := make([]*Type, 0, len(t.implements))
	for _, it := range t.implements {
		out = append(out, it)
	}
	return out
}

// SetImplement records a resolved protocol/composition base.
func (t *Type) SetImplement(p *Type) { t.implements[p.GlobalName()] = p }

// Supertype returns the resolved superclass, set iff Kind() == KindClass and
// the first inherited-type name resolved to another class. Returns nil for
// any other kind or when there is no superclass.
func (t *Type) Supertype() *Type { return t.supertype }

// SetSupertype sets the resolved superclass.
func (t *Type) SetSupertype(s *Type) { t.supertype = s }

// Cases returns the enum's declared cases. Meaningful only when
// Kind() == KindEnum.
func (t *Type) Cases() []*EnumCase { return slices.Clone(t.cases) }

// AddCases appends enum cases (used by the Unifier when merging).
func (t *Type) AddCases(cs ...*EnumCase) { t.cases = append(t.cases, cs...) }

// RawTypeName returns the enum's declared raw-type reference, or nil. This
// is cleared when the enum has no raw type (every case carries associated
// values) but left set (with RawType left nil) when the declared raw type
// resolves to a protocol.
func (t *Type) RawTypeName() *TypeName { return t.rawTypeName }

// SetRawTypeName sets (or clears, passing nil) the raw-type reference.
func (t *Type) SetRawTypeName(tn *TypeName) { t.rawTypeName = tn }

// RawType returns the enum's resolved raw type, or nil.
func (t *Type) RawType() *Type { return t.rawType }

// SetRawType sets the resolved raw type.
func (t *Type) SetRawType(rt *Type) { t.rawType = rt }

// AssociatedTypes returns the protocol's declared associated-type
// constraints. Meaningful only when Kind() == KindProtocol.
func (t *Type) AssociatedTypes() []*AssociatedType { return slices.Clone(t.associatedTypes) }

// AddAssociatedTypes appends associated-type declarations.
func (t *Type) AddAssociatedTypes(ats ...*AssociatedType) {
	t.associatedTypes = append(t.associatedTypes, ats...)
}

// GenericRequirements returns the protocol's declared generic requirements.
func (t *Type) GenericRequirements() []*GenericRequirement {
	return slices.Clone(t.genericRequirements)
}

// AddGenericRequirements appends generic-requirement declarations.
func (t *Type) AddGenericRequirements(grs ...*GenericRequirement) {
	t.genericRequirements = append(t.genericRequirements, grs...)
}

// ComposedTypeNames returns the textual member names of a protocol
// composition, in declaration order. Meaningful only when
// Kind() == KindProtocolComposition.
func (t *Type) ComposedTypeNames() []*TypeName { return slices.Clone(t.composedTypeNames) }

// AddComposedTypeNames appends composed protocol name references.
func (t *Type) AddComposedTypeNames(tns ...*TypeName) {
	t.composedTypeNames = append(t.composedTypeNames, tns...)
}

// ComposedTypes returns the resolved composed protocol types, in the same
// order as ComposedTypeNames.
func (t *Type) ComposedTypes() []*Type { return slices.Clone(t.composedTypes) }

// SetComposedTypes sets the resolved composed protocol types.
func (t *Type) SetComposedTypes(types []*Type) { t.composedTypes = types }

// String returns the global name.
func (t *Type) String() string { return t.globalName }
