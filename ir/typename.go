package ir

import "strings"

// TypeName is a rewritable textual description of a type reference. It
// preserves what the parser originally saw (Name, and one of the compound
// substructures below) and carries a single-write actualTypeName slot that
// the Type-Expression Rewriter fills in with the post-typealias-substitution
// form.
//
// Each Variable, Method parameter, tuple element, and so on owns its own
// TypeName instance. The one exception is the compound substructure a
// reference adopts from a typealias it resolves through, which is shared
// with that alias's rewritten form; resolve finishes every alias before the
// parallel Member Resolver phase starts, so that phase only reads it. This is
// what makes the phase data-race-free without locks (see resolveTypeMembers
// in package resolve).
type TypeName struct {
	name                          string
	isOptional                    bool
	isImplicitlyUnwrappedOptional bool
	isProtocolComposition         bool

	tuple      *TupleType
	array      *ArrayType
	dictionary *DictionaryType
	closure    *ClosureType
	generic    *GenericType

	actualTypeName *TypeName
}

// NewTypeName creates a TypeName for a simple (non-compound) reference.
func NewTypeName(name string) *TypeName {
	return &TypeName{name: name}
}

// Name returns the canonical string form as written by the parser.
func (t *TypeName) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// IsOptional reports whether the reference was written with a trailing `?`.
func (t *TypeName) IsOptional() bool {
	return t != nil && t.isOptional
}

// SetOptional marks the reference as optional.
func (t *TypeName) SetOptional(v bool) *TypeName {
	t.isOptional = v
	return t
}

// IsImplicitlyUnwrappedOptional reports whether the reference was written
// with a trailing `!`.
func (t *TypeName) IsImplicitlyUnwrappedOptional() bool {
	return t != nil && t.isImplicitlyUnwrappedOptional
}

// SetImplicitlyUnwrappedOptional marks the reference as implicitly unwrapped.
func (t *TypeName) SetImplicitlyUnwrappedOptional(v bool) *TypeName {
	t.isImplicitlyUnwrappedOptional = v
	return t
}

// IsProtocolComposition reports whether this reference names a protocol
// composition (`A & B`) rather than a single type.
func (t *TypeName) IsProtocolComposition() bool {
	return t != nil && t.isProtocolComposition
}

// SetProtocolComposition marks the reference as a protocol composition.
func (t *TypeName) SetProtocolComposition(v bool) *TypeName {
	t.isProtocolComposition = v
	return t
}

// Tuple returns the tuple substructure, or nil if this is not a tuple.
func (t *TypeName) Tuple() *TupleType { return t.tuple }

// SetTuple installs (or replaces) the tuple substructure. Used by the
// parser to build the initial tree and by the rewriter to install a
// rewritten copy whose elements carry substituted names.
func (t *TypeName) SetTuple(tt *TupleType) *TypeName { t.tuple = tt; return t }

// Array returns the array substructure, or nil if this is not an array.
func (t *TypeName) Array() *ArrayType { return t.array }

// SetArray installs (or replaces) the array substructure.
func (t *TypeName) SetArray(at *ArrayType) *TypeName { t.array = at; return t }

// Dictionary returns the dictionary substructure, or nil if this is not a
// dictionary.
func (t *TypeName) Dictionary() *DictionaryType { return t.dictionary }

// SetDictionary installs (or replaces) the dictionary substructure.
func (t *TypeName) SetDictionary(dt *DictionaryType) *TypeName { t.dictionary = dt; return t }

// Closure returns the closure substructure, or nil if this is not a closure.
func (t *TypeName) Closure() *ClosureType { return t.closure }

// SetClosure installs (or replaces) the closure substructure.
func (t *TypeName) SetClosure(ct *ClosureType) *TypeName { t.closure = ct; return t }

// Generic returns the generic substructure, or nil if this is not a generic
// instantiation.
func (t *TypeName) Generic() *GenericType { return t.generic }

// SetGeneric installs (or replaces) the generic substructure.
func (t *TypeName) SetGeneric(gt *GenericType) *TypeName { t.generic = gt; return t }

// ActualTypeName returns the post-typealias-substitution rewritten form, or
// nil if resolution has not visited this TypeName yet. The resolver writes
// it for every TypeName it visits: a simple name that resolves gets the
// target's global name, and an unknown name keeps its raw text.
func (t *TypeName) ActualTypeName() *TypeName {
	if t == nil {
		return nil
	}
	return t.actualTypeName
}

// SetActualTypeName writes the rewritten form exactly once: a TypeName's
// actualTypeName is written at most once per instance. Once set, further
// calls are no-ops so that re-running resolution over the same TypeName
// instances (e.g. to verify idempotence) takes the already-resolved fast
// path instead of re-deriving or overwriting it.
func (t *TypeName) SetActualTypeName(actual *TypeName) {
	if t.actualTypeName != nil {
		return
	}
	t.actualTypeName = actual
}

// UnwrappedTypeName returns the Name with trailing optional markers
// stripped, per the Glossary's "unwrapped type name".
func (t *TypeName) UnwrappedTypeName() string {
	n := t.Name()
	n = strings.TrimSuffix(n, "!")
	n = strings.TrimSuffix(n, "?")
	return n
}

// String renders the TypeName roughly as the original source would, used
// for debugging and golden-fixture output.
func (t *TypeName) String() string {
	if t == nil {
		return ""
	}
	s := t.name
	switch {
	case t.tuple != nil:
		s = t.tuple.String()
	case t.array != nil:
		s = t.array.String()
	case t.dictionary != nil:
		s = t.dictionary.String()
	case t.closure != nil:
		s = t.closure.String()
	case t.generic != nil:
		s = t.generic.String()
	}
	if t.isOptional {
		s += "?"
	}
	if t.isImplicitlyUnwrappedOptional {
		s += "!"
	}
	return s
}

// TupleElement is one labeled (or unlabeled) member of a TupleType.
type TupleElement struct {
	Label    string
	TypeName *TypeName
}

// TupleType is the compound substructure of a tuple type expression, e.g.
// `(Int, label: String)`. Tuples are never nominal: resolving a TypeName
// whose Tuple() is non-nil always yields a nil *Type.
type TupleType struct {
	Elements []TupleElement
}

// NewTupleType creates a TupleType from its elements.
func NewTupleType(elements ...TupleElement) *TupleType {
	return &TupleType{Elements: elements}
}

// String renders the tuple as `(E1, E2, ...)`.
func (t *TupleType) String() string {
	parts := make([]string, 0, len(t.Elements))
	for _, e := range t.Elements {
		if e.Label != "" {
			parts = append(parts, e.Label+": "+e.TypeName.String())
		} else {
			parts = append(parts, e.TypeName.String())
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ArrayType is the compound substructure of an array type expression, e.g.
// `[Element]`.
type ArrayType struct {
	ElementTypeName *TypeName
}

// NewArrayType creates an ArrayType over the given element type name.
func NewArrayType(element *TypeName) *ArrayType {
	return &ArrayType{ElementTypeName: element}
}

// String renders the array as `[Element]`.
func (a *ArrayType) String() string {
	return "[" + a.ElementTypeName.String() + "]"
}

// DictionaryType is the compound substructure of a dictionary type
// expression, e.g. `[Key: Value]`.
type DictionaryType struct {
	KeyTypeName   *TypeName
	ValueTypeName *TypeName
}

// NewDictionaryType creates a DictionaryType over the given key/value type
// names.
func NewDictionaryType(key, value *TypeName) *DictionaryType {
	return &DictionaryType{KeyTypeName: key, ValueTypeName: value}
}

// String renders the dictionary as `[Key: Value]`.
func (d *DictionaryType) String() string {
	return "[" + d.KeyTypeName.String() + ": " + d.ValueTypeName.String() + "]"
}

// ClosureParameter is one parameter of a ClosureType.
type ClosureParameter struct {
	TypeName *TypeName
}

// ClosureType is the compound substructure of a closure type expression,
// e.g. `(Int, String) -> Bool`. Closures are never nominal: resolving a
// TypeName whose Closure() is non-nil always yields a nil *Type.
type ClosureType struct {
	Parameters     []ClosureParameter
	ReturnTypeName *TypeName
}

// NewClosureType creates a ClosureType from its parameters and return type.
func NewClosureType(ret *TypeName, params ...ClosureParameter) *ClosureType {
	return &ClosureType{Parameters: params, ReturnTypeName: ret}
}

// String renders the closure as `(P1, P2) -> Return`.
func (c *ClosureType) String() string {
	parts := make([]string, 0, len(c.Parameters))
	for _, p := range c.Parameters {
		parts = append(parts, p.TypeName.String())
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + c.ReturnTypeName.String()
}

// GenericType is the compound substructure of a generic instantiation, e.g.
// `Box<Element>`.
type GenericType struct {
	Name            string
	TypeParameters  []*TypeName
}

// NewGenericType creates a GenericType from a base name and its type
// parameters, in declaration order.
func NewGenericType(name string, params ...*TypeName) *GenericType {
	return &GenericType{Name: name, TypeParameters: params}
}

// String renders the generic as `Name<P1, P2>`.
func (g *GenericType) String() string {
	if len(g.TypeParameters) == 0 {
		return g.Name
	}
	parts := make([]string, 0, len(g.TypeParameters))
	for _, p := range g.TypeParameters {
		parts = append(parts, p.String())
	}
	return g.Name + "<" + strings.Join(parts, ", ") + ">"
}
