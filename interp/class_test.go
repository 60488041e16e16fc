/*
File    : lax/interp/class_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lax/token"
)

func TestObject_SetThenGetField(t *testing.T) {
	class := NewClass("Point", nil, map[string]*Function{})
	obj := NewObject(class)

	obj.Set(token.New(token.Identifier, "x", 1), Number(3))

	v, err := obj.Get(token.New(token.Identifier, "x", 1))
	require.NoError(t, err)
	assert.Equal(t, Number(3), v)
}

func TestObject_GetUndefinedPropertyIsRuntimeError(t *testing.T) {
	class := NewClass("Point", nil, map[string]*Function{})
	obj := NewObject(class)

	_, err := obj.Get(token.New(token.Identifier, "missing", 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined property 'missing'.")
}

func TestClass_FindMethodFallsThroughSuperclass(t *testing.T) {
	base := NewClass("Animal", nil, map[string]*Function{
		"speak": NewFunction(nil, nil, false),
	})
	derived := NewClass("Dog", base, map[string]*Function{})

	method, ok := derived.findMethod("speak")
	assert.True(t, ok)
	assert.NotNil(t, method)
}

func TestClass_ArityIsZeroWithoutInit(t *testing.T) {
	class := NewClass("Empty", nil, map[string]*Function{})
	assert.Equal(t, 0, class.Arity())
}

func TestClass_String(t *testing.T) {
	class := NewClass("Point", nil, map[string]*Function{})
	assert.Equal(t, "Point", class.String())
}
