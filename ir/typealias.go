package ir

// Typealias is a `typealias Name = TypeName` declaration, optionally scoped
// to a containing type (a nested typealias).
type Typealias struct {
	name     string
	module   Module
	imports  []Module
	parent   *Type
	typeName *TypeName
	typ      *Type
}

// NewTypealias creates a Typealias declaration.
func NewTypealias(name string, module Module, typeName *TypeName) *Typealias {
	return &Typealias{name: name, module: module, typeName: typeName}
}

// Name returns the alias's own name (unqualified).
func (a *Typealias) Name() string { return a.name }

// Module returns the declaring module.
func (a *Typealias) Module() Module { return a.module }

// Imports returns the modules visible from the alias's declaring file, used
// by the Name Resolver when it must keep walking an alias chain through
// scope the aliased type itself does not carry.
func (a *Typealias) Imports() []Module { return append([]Module(nil), a.imports...) }

// SetImports sets the alias's visible imports.
func (a *Typealias) SetImports(imports []Module) { a.imports = append([]Module(nil), imports...) }

// Parent returns the containing type for a nested typealias, or nil for a
// module-scoped one.
func (a *Typealias) Parent() *Type { return a.parent }

// SetParent sets the containing type.
func (a *Typealias) SetParent(t *Type) { a.parent = t }

// TypeName returns the alias's unresolved target type expression.
func (a *Typealias) TypeName() *TypeName { return a.typeName }

// Type returns the alias's resolved target type, or nil if the chain ends
// at a non-nominal compound expression (tuple/array/dictionary/closure) or
// an unknown name.
func (a *Typealias) Type() *Type { return a.typ }

// SetType sets the resolved target type.
func (a *Typealias) SetType(t *Type) { a.typ = t }

// GlobalName returns the fully qualified name under which this alias is
// keyed in State.unresolvedTypealiases/resolvedTypealiases: the module-
// or parent-qualified name, matching how a TypeName would reference it.
func (a *Typealias) GlobalName() string {
	switch {
	case a.parent != nil:
		return a.parent.GlobalName() + "." + a.name
	case !a.module.IsZero():
		return a.module.String() + "." + a.name
	default:
		return a.name
	}
}
