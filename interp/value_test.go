/*
File    : lax/interp/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTruthy(t *testing.T) {
	assert.False(t, IsTruthy(NilValue))
	assert.False(t, IsTruthy(Bool(false)))
	assert.True(t, IsTruthy(Bool(true)))
	assert.True(t, IsTruthy(Number(0)))
	assert.True(t, IsTruthy(String("")))
}

func TestEquals_SameTypeStructural(t *testing.T) {
	assert.True(t, Equals(Number(3), Number(3)))
	assert.False(t, Equals(Number(3), Number(4)))
	assert.True(t, Equals(String("a"), String("a")))
	assert.True(t, Equals(NilValue, NilValue))
	assert.True(t, Equals(Bool(true), Bool(true)))
}

func TestEquals_CrossTypeIsFalse(t *testing.T) {
	assert.False(t, Equals(Number(0), String("0")))
	assert.False(t, Equals(NilValue, Bool(false)))
}

func TestEquals_CallableAndObjectAreReferenceIdentity(t *testing.T) {
	class := NewClass("Point", nil, map[string]*Function{})
	a := NewObject(class)
	b := NewObject(class)
	assert.True(t, Equals(a, a))
	assert.False(t, Equals(a, b))
}

func TestNumberString_NoTrailingZeros(t *testing.T) {
	assert.Equal(t, "7", Number(7).String())
	assert.Equal(t, "3.14", Number(3.14).String())
	assert.Equal(t, "-2", Number(-2).String())
}
