package ir

import "slices"

// Variable is a stored or computed property declaration.
type Variable struct {
	name              string
	typeName          *TypeName
	typ               *Type
	definedInTypeName *TypeName
	definedInType     *Type
	isStatic          bool
	isStored          bool
}

// NewVariable creates a Variable declaration.
func NewVariable(name string, typeName *TypeName) *Variable {
	return &Variable{name: name, typeName: typeName}
}

// Name returns the variable's name.
func (v *Variable) Name() string { return v.name }

// TypeName returns the variable's unresolved type reference.
func (v *Variable) TypeName() *TypeName { return v.typeName }

// Type returns the resolved type, or nil if unresolved/non-nominal.
func (v *Variable) Type() *Type { return v.typ }

// SetType sets the resolved type.
func (v *Variable) SetType(t *Type) { v.typ = t }

// DefinedInTypeName returns the `definedInTypeName` reference used to
// express "this accessor is actually defined in type X" (protocol default
// implementations, extensions). May be nil.
func (v *Variable) DefinedInTypeName() *TypeName { return v.definedInTypeName }

// SetDefinedInTypeName sets the `definedInTypeName` reference.
func (v *Variable) SetDefinedInTypeName(tn *TypeName) { v.definedInTypeName = tn }

// DefinedInType returns the resolved `definedInTypeName` target.
func (v *Variable) DefinedInType() *Type { return v.definedInType }

// SetDefinedInType sets the resolved `definedInTypeName` target.
func (v *Variable) SetDefinedInType(t *Type) { v.definedInType = t }

// IsStatic reports whether this is a type-level (static) variable.
func (v *Variable) IsStatic() bool { return v.isStatic }

// SetStatic marks the variable as static.
func (v *Variable) SetStatic(b bool) { v.isStatic = b }

// IsStored reports whether this is a stored (as opposed to computed)
// property. Only stored properties named "rawValue" participate in enum
// raw-type detection.
func (v *Variable) IsStored() bool { return v.isStored }

// SetStored marks the variable as stored.
func (v *Variable) SetStored(b bool) { v.isStored = b }

// IsRawValue reports whether this variable is the stored `rawValue`
// property an enum raw type is derived from.
func (v *Variable) IsRawValue() bool {
	return v.isStored && !v.isStatic && v.name == "rawValue"
}

// MethodParameter is one parameter of a Method or Subscript.
type MethodParameter struct {
	name     string
	typeName *TypeName
	typ      *Type
}

// NewMethodParameter creates a MethodParameter.
func NewMethodParameter(name string, typeName *TypeName) *MethodParameter {
	return &MethodParameter{name: name, typeName: typeName}
}

// Name returns the parameter's name.
func (p *MethodParameter) Name() string { return p.name }

// TypeName returns the parameter's unresolved type reference.
func (p *MethodParameter) TypeName() *TypeName { return p.typeName }

// Type returns the resolved type, or nil if unresolved/non-nominal.
func (p *MethodParameter) Type() *Type { return p.typ }

// SetType sets the resolved type.
func (p *MethodParameter) SetType(t *Type) { p.typ = t }

// Method is a function or instance/type method declaration. Free functions
// (ParserResult.Functions) are represented the same way, resolved with a
// nil containing type.
type Method struct {
	name                  string
	parameters            []*MethodParameter
	returnTypeName        *TypeName
	returnType            *Type
	returnTypeIsVoid      bool
	isInitializer         bool
	isFailableInitializer bool
	isStatic              bool
	definedInTypeName     *TypeName
	definedInType         *Type
}

// NewMethod creates a Method declaration.
func NewMethod(name string) *Method {
	return &Method{name: name}
}

// Name returns the method's name.
func (m *Method) Name() string { return m.name }

// Parameters returns a defensive copy of the parameter list.
func (m *Method) Parameters() []*MethodParameter { return slices.Clone(m.parameters) }

// AddParameters appends parameters.
func (m *Method) AddParameters(ps ...*MethodParameter) { m.parameters = append(m.parameters, ps...) }

// ReturnTypeName returns the unresolved return-type reference. Nil for an
// explicit `Void` return (see ReturnTypeIsVoid) or for an initializer
// (whose ReturnTypeName is synthesized by the Member Resolver instead).
func (m *Method) ReturnTypeName() *TypeName { return m.returnTypeName }

// SetReturnTypeName sets the return-type reference.
func (m *Method) SetReturnTypeName(tn *TypeName) { m.returnTypeName = tn }

// ReturnType returns the resolved return type, or nil.
func (m *Method) ReturnType() *Type { return m.returnType }

// SetReturnType sets the resolved return type.
func (m *Method) SetReturnType(t *Type) { m.returnType = t }

// ReturnTypeIsVoid reports whether the declaration explicitly returns
// `Void`. The Member Resolver skips return-type resolution entirely in
// this case.
func (m *Method) ReturnTypeIsVoid() bool { return m.returnTypeIsVoid }

// SetReturnTypeIsVoid marks the return type as explicit Void.
func (m *Method) SetReturnTypeIsVoid(b bool) { m.returnTypeIsVoid = b }

// IsInitializer reports whether this method is a (non-failable) initializer.
func (m *Method) IsInitializer() bool { return m.isInitializer }

// SetInitializer marks the method as an initializer.
func (m *Method) SetInitializer(b bool) { m.isInitializer = b }

// IsFailableInitializer reports whether this method is a failable
// initializer (`init?`).
func (m *Method) IsFailableInitializer() bool { return m.isFailableInitializer }

// SetFailableInitializer marks the method as a failable initializer.
func (m *Method) SetFailableInitializer(b bool) { m.isFailableInitializer = b }

// IsStatic reports whether this is a type-level (static) method.
func (m *Method) IsStatic() bool { return m.isStatic }

// SetStatic marks the method as static.
func (m *Method) SetStatic(b bool) { m.isStatic = b }

// DefinedInTypeName returns the `definedInTypeName` reference, or nil.
func (m *Method) DefinedInTypeName() *TypeName { return m.definedInTypeName }

// SetDefinedInTypeName sets the `definedInTypeName` reference.
func (m *Method) SetDefinedInTypeName(tn *TypeName) { m.definedInTypeName = tn }

// DefinedInType returns the resolved `definedInTypeName` target.
func (m *Method) DefinedInType() *Type { return m.definedInType }

// SetDefinedInType sets the resolved `definedInTypeName` target.
func (m *Method) SetDefinedInType(t *Type) { m.definedInType = t }

// Subscript is a `subscript(...)` declaration.
type Subscript struct {
	parameters        []*MethodParameter
	returnTypeName    *TypeName
	returnType        *Type
	definedInTypeName *TypeName
	definedInType     *Type
}

// NewSubscript creates a Subscript declaration.
func NewSubscript(returnTypeName *TypeName) *Subscript {
	return &Subscript{returnTypeName: returnTypeName}
}

// Parameters returns a defensive copy of the subscript's parameters.
func (s *Subscript) Parameters() []*MethodParameter { return slices.Clone(s.parameters) }

// AddParameters appends parameters.
func (s *Subscript) AddParameters(ps ...*MethodParameter) { s.parameters = append(s.parameters, ps...) }

// ReturnTypeName returns the unresolved return-type reference.
func (s *Subscript) ReturnTypeName() *TypeName { return s.returnTypeName }

// ReturnType returns the resolved return type, or nil.
func (s *Subscript) ReturnType() *Type { return s.returnType }

// SetReturnType sets the resolved return type.
func (s *Subscript) SetReturnType(t *Type) { s.returnType = t }

// DefinedInTypeName returns the `definedInTypeName` reference, or nil.
func (s *Subscript) DefinedInTypeName() *TypeName { return s.definedInTypeName }

// SetDefinedInTypeName sets the `definedInTypeName` reference.
func (s *Subscript) SetDefinedInTypeName(tn *TypeName) { s.definedInTypeName = tn }

// DefinedInType returns the resolved `definedInTypeName` target.
func (s *Subscript) DefinedInType() *Type { return s.definedInType }

// SetDefinedInType sets the resolved `definedInTypeName` target.
func (s *Subscript) SetDefinedInType(t *Type) { s.definedInType = t }

// AssociatedValue is one payload slot of an EnumCase, e.g. the `Int` in
// `case value(Int)`.
type AssociatedValue struct {
	name     string
	typeName *TypeName
	typ      *Type
}

// NewAssociatedValue creates an AssociatedValue.
func NewAssociatedValue(name string, typeName *TypeName) *AssociatedValue {
	return &AssociatedValue{name: name, typeName: typeName}
}

// Name returns the associated value's label, if any.
func (a *AssociatedValue) Name() string { return a.name }

// TypeName returns the unresolved type reference.
func (a *AssociatedValue) TypeName() *TypeName { return a.typeName }

// Type returns the resolved type, or nil.
func (a *AssociatedValue) Type() *Type { return a.typ }

// SetType sets the resolved type.
func (a *AssociatedValue) SetType(t *Type) { a.typ = t }

// EnumCase is one `case` declaration of an Enum.
type EnumCase struct {
	name             string
	associatedValues []*AssociatedValue
}

// NewEnumCase creates an EnumCase.
func NewEnumCase(name string, values ...*AssociatedValue) *EnumCase {
	return &EnumCase{name: name, associatedValues: values}
}

// Name returns the case's name.
func (c *EnumCase) Name() string { return c.name }

// AssociatedValues returns a defensive copy of the case's associated values.
func (c *EnumCase) AssociatedValues() []*AssociatedValue { return slices.Clone(c.associatedValues) }

// HasAssociatedValues reports whether the case carries any payload.
func (c *EnumCase) HasAssociatedValues() bool { return len(c.associatedValues) > 0 }

// AssociatedType is a protocol's `associatedtype` declaration.
type AssociatedType struct {
	name               string
	constraintTypeName *TypeName
	constraintType      *Type
}

// NewAssociatedType creates an AssociatedType.
func NewAssociatedType(name string, constraint *TypeName) *AssociatedType {
	return &AssociatedType{name: name, constraintTypeName: constraint}
}

// Name returns the associated type's name.
func (a *AssociatedType) Name() string { return a.name }

// ConstraintTypeName returns the unresolved constraint reference, if any.
func (a *AssociatedType) ConstraintTypeName() *TypeName { return a.constraintTypeName }

// ConstraintType returns the resolved constraint type, or nil.
func (a *AssociatedType) ConstraintType() *Type { return a.constraintType }

// SetConstraintType sets the resolved constraint type.
func (a *AssociatedType) SetConstraintType(t *Type) { a.constraintType = t }

// GenericRequirement is a protocol's `where` clause entry, e.g.
// `Element: Equatable`.
type GenericRequirement struct {
	leftTypeName       *TypeName
	leftAssociatedType *AssociatedType
	rightTypeName      *TypeName
	rightType          *Type
}

// NewGenericRequirement creates a GenericRequirement.
func NewGenericRequirement(left, right *TypeName) *GenericRequirement {
	return &GenericRequirement{leftTypeName: left, rightTypeName: right}
}

// LeftTypeName returns the left-hand-side's unresolved reference.
func (g *GenericRequirement) LeftTypeName() *TypeName { return g.leftTypeName }

// LeftAssociatedType returns the associated type this requirement's
// left-hand side was resolved to adopt, if the containing protocol declares
// an associated type of that name.
func (g *GenericRequirement) LeftAssociatedType() *AssociatedType { return g.leftAssociatedType }

// SetLeftAssociatedType sets the adopted associated type.
func (g *GenericRequirement) SetLeftAssociatedType(at *AssociatedType) { g.leftAssociatedType = at }

// RightTypeName returns the right-hand-side's unresolved reference.
func (g *GenericRequirement) RightTypeName() *TypeName { return g.rightTypeName }

// RightType returns the resolved right-hand-side type, or nil.
func (g *GenericRequirement) RightType() *Type { return g.rightType }

// SetRightType sets the resolved right-hand-side type.
func (g *GenericRequirement) SetRightType(t *Type) { g.rightType = t }
