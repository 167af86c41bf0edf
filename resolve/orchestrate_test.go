package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcweave/typegraph/ir"
	"github.com/arcweave/typegraph/resolve"
	"github.com/arcweave/typegraph/resolve/fixture"
)

func TestResolve_NilInput(t *testing.T) {
	_, err := resolve.Resolve(nil)
	require.Error(t, err)

	var resolveErr *resolve.Error
	require.ErrorAs(t, err, &resolveErr)
	assert.Equal(t, resolve.NilInput, resolveErr.Kind)
}

// S1: a simple typealias resolves to its target type.
func TestResolve_SimpleTypealias(t *testing.T) {
	pr, err := fixture.Parse([]byte(`
types:
  - kind: struct
    name: App.Widget
    module: App
typealiases:
  - name: App.WidgetAlias
    module: App
    type: Widget
`))
	require.NoError(t, err)

	result, err := resolve.Resolve(pr)
	require.NoError(t, err)
	require.Len(t, result.Typealiases, 1)

	alias := result.Typealiases[0]
	require.NotNil(t, alias.Type())
	assert.Equal(t, "App.Widget", alias.Type().GlobalName())
}

// S2: an alias to a tuple is non-nominal but still fully rewritten.
func TestResolve_TupleTypealias(t *testing.T) {
	pr, err := fixture.Parse([]byte(`
types:
  - kind: struct
    name: App.Widget
    module: App
typealiases:
  - name: App.Pair
    module: App
    type: "(Widget, Widget)"
`))
	require.NoError(t, err)

	result, err := resolve.Resolve(pr)
	require.NoError(t, err)
	require.Len(t, result.Typealiases, 1)

	alias := result.Typealiases[0]
	assert.Nil(t, alias.Type())
	require.NotNil(t, alias.TypeName().ActualTypeName())
	require.NotNil(t, alias.TypeName().ActualTypeName().Tuple())
	for _, e := range alias.TypeName().ActualTypeName().Tuple().Elements {
		assert.Equal(t, "App.Widget", e.TypeName.Name())
	}
}

// S3: a generic instantiation's type parameter is substituted.
func TestResolve_GenericSubstitution(t *testing.T) {
	pr, err := fixture.Parse([]byte(`
types:
  - kind: struct
    name: App.Widget
    module: App
  - kind: struct
    name: App.Box
    module: App
    variables:
      - name: value
        type: "Box<Widget>"
`))
	require.NoError(t, err)

	result, err := resolve.Resolve(pr)
	require.NoError(t, err)

	box := findType(t, result, "App.Box")
	variable := box.VariablesSlice()[0]
	actual := variable.TypeName().ActualTypeName()
	require.NotNil(t, actual.Generic())
	assert.Equal(t, "App.Widget", actual.Generic().TypeParameters[0].Name())
}

// S4: an enum with a stored rawValue property takes precedence over the
// textual inherited raw-type name.
func TestResolve_EnumRawValuePrecedence(t *testing.T) {
	pr, err := fixture.Parse([]byte(`
types:
  - kind: struct
    name: App.Code
    module: App
  - kind: enum
    name: App.Status
    module: App
    inherits: ["Int"]
    variables:
      - name: rawValue
        type: Code
        stored: true
    cases:
      - name: active
`))
	require.NoError(t, err)

	result, err := resolve.Resolve(pr)
	require.NoError(t, err)

	status := findType(t, result, "App.Status")
	require.NotNil(t, status.RawTypeName())
	require.NotNil(t, status.RawType())
	assert.Equal(t, "App.Code", status.RawType().GlobalName())
}

// S2b: a simple name that resolves through a typealias to an array carries
// the array's substructure on the referencing TypeName's own ActualTypeName,
// not just the alias's bare name.
func TestResolve_AliasAdoptsArraySubstructure(t *testing.T) {
	pr, err := fixture.Parse([]byte(`
types:
  - kind: struct
    name: App.Widget
    module: App
    variables:
      - name: xs
        type: Strings
typealiases:
  - name: App.Strings
    module: App
    type: "[String]"
`))
	require.NoError(t, err)

	result, err := resolve.Resolve(pr)
	require.NoError(t, err)

	widget := findType(t, result, "App.Widget")
	xs := widget.VariablesSlice()[0]
	actual := xs.TypeName().ActualTypeName()
	require.NotNil(t, actual)
	require.NotNil(t, actual.Array())
	assert.Equal(t, "String", actual.Array().ElementTypeName.Name())
}

// S2c: a parameter whose declared type is a typealias to a tuple carries the
// tuple's substructure on its own ActualTypeName.
func TestResolve_AliasAdoptsTupleSubstructure(t *testing.T) {
	pr, err := fixture.Parse([]byte(`
types:
  - kind: struct
    name: App.Widget
    module: App
    methods:
      - name: f
        returnIsVoid: true
        parameters:
          - name: p
            type: Pair
typealiases:
  - name: App.Pair
    module: App
    type: "(Widget, Widget)"
`))
	require.NoError(t, err)

	result, err := resolve.Resolve(pr)
	require.NoError(t, err)

	widget := findType(t, result, "App.Widget")
	method := widget.MethodsSlice()[0]
	p := method.Parameters()[0]
	actual := p.TypeName().ActualTypeName()
	require.NotNil(t, actual)
	require.NotNil(t, actual.Tuple())
	for _, e := range actual.Tuple().Elements {
		assert.Equal(t, "App.Widget", e.TypeName.Name())
	}
}

// a protocol refining another protocol inherits its associatedtype
// declarations, without duplicating one it redeclares itself.
func TestResolve_ProtocolRefinementInheritsAssociatedTypes(t *testing.T) {
	pr, err := fixture.Parse([]byte(`
types:
  - kind: protocol
    name: App.Base
    module: App
    associatedTypes:
      - name: Element
      - name: Index
  - kind: protocol
    name: App.Refined
    module: App
    inherits: ["Base"]
    associatedTypes:
      - name: Index
`))
	require.NoError(t, err)

	result, err := resolve.Resolve(pr)
	require.NoError(t, err)

	refined := findType(t, result, "App.Refined")
	names := make([]string, 0)
	for _, at := range refined.AssociatedTypes() {
		names = append(names, at.Name())
	}
	assert.ElementsMatch(t, []string{"Index", "Element"}, names)
}

// an initializer's return type is synthesized as the defining type, marked
// optional when the initializer is failable.
func TestResolve_InitializerReturnsDefiningType(t *testing.T) {
	pr, err := fixture.Parse([]byte(`
types:
  - kind: struct
    name: App.Widget
    module: App
    methods:
      - name: init
        initializer: true
      - name: init
        initializer: true
        failableInitializer: true
`))
	require.NoError(t, err)

	result, err := resolve.Resolve(pr)
	require.NoError(t, err)

	widget := findType(t, result, "App.Widget")
	methods := widget.MethodsSlice()
	require.Len(t, methods, 2)

	plain, failable := methods[0], methods[1]

	require.NotNil(t, plain.ReturnType())
	assert.Equal(t, "App.Widget", plain.ReturnType().GlobalName())
	require.NotNil(t, plain.ReturnTypeName())
	assert.False(t, plain.ReturnTypeName().IsOptional())

	require.NotNil(t, failable.ReturnType())
	assert.Equal(t, "App.Widget", failable.ReturnType().GlobalName())
	require.NotNil(t, failable.ReturnTypeName())
	assert.True(t, failable.ReturnTypeName().IsOptional())
}

// S5: a protocol inherits the ancestor closure of the protocols it refines.
func TestResolve_ProtocolInheritanceClosure(t *testing.T) {
	pr, err := fixture.Parse([]byte(`
types:
  - kind: protocol
    name: App.Base
    module: App
  - kind: protocol
    name: App.Mid
    module: App
    inherits: ["Base"]
  - kind: protocol
    name: App.Leaf
    module: App
    inherits: ["Mid"]
`))
	require.NoError(t, err)

	result, err := resolve.Resolve(pr)
	require.NoError(t, err)

	leaf := findType(t, result, "App.Leaf")
	names := make([]string, 0)
	for _, bt := range leaf.BasedTypesSlice() {
		names = append(names, bt.GlobalName())
	}
	assert.ElementsMatch(t, []string{"App.Mid", "App.Base"}, names)
}

// S6: a class chain resolves Supertype transitively.
func TestResolve_ClassSupertypeChain(t *testing.T) {
	pr, err := fixture.Parse([]byte(`
types:
  - kind: class
    name: App.Animal
    module: App
  - kind: class
    name: App.Dog
    module: App
    inherits: ["Animal"]
  - kind: class
    name: App.Puppy
    module: App
    inherits: ["Dog"]
`))
	require.NoError(t, err)

	result, err := resolve.Resolve(pr)
	require.NoError(t, err)

	puppy := findType(t, result, "App.Puppy")
	require.NotNil(t, puppy.Supertype())
	assert.Equal(t, "App.Dog", puppy.Supertype().GlobalName())
	assert.Equal(t, "App.Animal", puppy.Supertype().Supertype().GlobalName())
}

func TestResolve_Idempotent(t *testing.T) {
	pr, err := fixture.Parse([]byte(`
types:
  - kind: class
    name: App.Animal
    module: App
  - kind: class
    name: App.Dog
    module: App
    inherits: ["Animal"]
    variables:
      - name: friends
        type: "[Animal]"
typealiases:
  - name: App.AnimalAlias
    module: App
    type: Animal
`))
	require.NoError(t, err)

	first, err := resolve.Resolve(pr)
	require.NoError(t, err)
	second, err := resolve.Resolve(pr)
	require.NoError(t, err)

	assert.Empty(t, first.Diff(second))
}

func findType(t *testing.T, result *resolve.Result, globalName string) *ir.Type {
	t.Helper()
	for _, ty := range result.Types {
		if ty.GlobalName() == globalName {
			return ty
		}
	}
	t.Fatalf("type %q not found in result", globalName)
	return nil
}
