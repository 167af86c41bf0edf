package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcweave/typegraph/ir"
)

func TestTypeName_SetActualTypeName_WriteOnce(t *testing.T) {
	tn := ir.NewTypeName("Widget")
	first := ir.NewTypeName("App.Widget")
	second := ir.NewTypeName("Other.Widget")

	tn.SetActualTypeName(first)
	tn.SetActualTypeName(second)

	assert.Same(t, first, tn.ActualTypeName())
}

func TestTypeName_UnwrappedTypeName(t *testing.T) {
	tn := ir.NewTypeName("Widget?")
	assert.Equal(t, "Widget", tn.UnwrappedTypeName())

	tn2 := ir.NewTypeName("Widget!")
	assert.Equal(t, "Widget", tn2.UnwrappedTypeName())
}

func TestTypeName_String_Array(t *testing.T) {
	elem := ir.NewTypeName("Int")
	tn := ir.NewTypeName("[Int]").SetArray(ir.NewArrayType(elem))
	assert.Equal(t, "[Int]", tn.String())
}

func TestTypeName_String_Dictionary(t *testing.T) {
	key := ir.NewTypeName("String")
	value := ir.NewTypeName("Int")
	tn := ir.NewTypeName("[String: Int]").SetDictionary(ir.NewDictionaryType(key, value))
	assert.Equal(t, "[String: Int]", tn.String())
}

func TestTypeName_String_Tuple(t *testing.T) {
	elements := []ir.TupleElement{
		{TypeName: ir.NewTypeName("Int")},
		{Label: "name", TypeName: ir.NewTypeName("String")},
	}
	tn := ir.NewTypeName("tuple").SetTuple(ir.NewTupleType(elements...))
	assert.Equal(t, "(Int, name: String)", tn.String())
}

func TestTypeName_String_Closure(t *testing.T) {
	params := []ir.ClosureParameter{{TypeName: ir.NewTypeName("Int")}}
	ret := ir.NewTypeName("Bool")
	tn := ir.NewTypeName("closure").SetClosure(ir.NewClosureType(ret, params...))
	assert.Equal(t, "(Int) -> Bool", tn.String())
}

func TestTypeName_String_Generic(t *testing.T) {
	params := []*ir.TypeName{ir.NewTypeName("Element")}
	tn := ir.NewTypeName("Box").SetGeneric(ir.NewGenericType("Box", params...))
	assert.Equal(t, "Box<Element>", tn.String())
}

func TestTypeName_OptionalMarkers(t *testing.T) {
	tn := ir.NewTypeName("Widget")
	require.False(t, tn.IsOptional())
	tn.SetOptional(true)
	assert.True(t, tn.IsOptional())
	assert.Equal(t, "Widget?", tn.String())
}

func TestCanonicalName_NFC(t *testing.T) {
	decomposed := "Café" // e followed by a combining acute accent
	precomposed := "Café"  // e-acute as a single code point
	require.NotEqual(t, precomposed, decomposed)
	assert.Equal(t, ir.CanonicalName(precomposed), ir.CanonicalName(decomposed))
}
