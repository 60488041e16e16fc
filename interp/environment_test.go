/*
File    : lax/interp/environment_test.go
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

func ident(name string) token.Token {
	return token.New(token.Identifier, name, 1)
}

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", Number(1))

	v, err := env.Get(ident("x"))
	require.NoError(t, err)
	assert.Equal(t, Number(1), v)
}

func TestEnvironment_GetUndefinedIsRuntimeError(t *testing.T) {
	env := NewEnvironment(nil)
	_, err := env.Get(ident("missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'missing'.")
}

func TestEnvironment_AssignWalksEnclosingScopes(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", Number(1))
	inner := NewEnvironment(outer)

	require.NoError(t, inner.Assign(ident("x"), Number(2)))

	v, err := outer.Get(ident("x"))
	require.NoError(t, err)
	assert.Equal(t, Number(2), v)
}

func TestEnvironment_AssignUndefinedIsRuntimeError(t *testing.T) {
	env := NewEnvironment(nil)
	err := env.Assign(ident("missing"), Number(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'missing'.")
}

func TestEnvironment_GetAtAndAssignAt(t *testing.T) {
	grandparent := NewEnvironment(nil)
	grandparent.Define("x", Number(1))
	parent := NewEnvironment(grandparent)
	child := NewEnvironment(parent)

	assert.Equal(t, Number(1), child.GetAt(2, "x"))

	child.AssignAt(2, "x", Number(99))
	v, _ := grandparent.Get(ident("x"))
	assert.Equal(t, Number(99), v)
}

func TestEnvironment_ShadowingDoesNotLeak(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("a", String("outer"))
	inner := NewEnvironment(outer)
	inner.Define("a", String("inner"))

	v, _ := inner.Get(ident("a"))
	assert.Equal(t, String("inner"), v)

	v, _ = outer.Get(ident("a"))
	assert.Equal(t, String("outer"), v)
}
