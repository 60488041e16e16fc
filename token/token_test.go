/*
File    : lax/token/token_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString_KnownAndUnknown(t *testing.T) {
	assert.Equal(t, "Print", Print.String())
	assert.Equal(t, "Kind(999)", Kind(999).String())
}

func TestKeywords_MapsReservedWordsOnly(t *testing.T) {
	kind, ok := Keywords["class"]
	assert.True(t, ok)
	assert.Equal(t, Class, kind)

	_, ok = Keywords["notAKeyword"]
	assert.False(t, ok)
}

func TestNew_HasNoLiteral(t *testing.T) {
	tok := New(Identifier, "x", 3)
	assert.Equal(t, NoLiteral, tok.Literal.Kind)
	assert.Equal(t, 3, tok.Line)
}

func TestNewLiteral_NumberAndString(t *testing.T) {
	num := NewLiteral(Number, "3.5", NumberValue(3.5), 1)
	assert.Equal(t, NumberLiteral, num.Literal.Kind)
	assert.Equal(t, 3.5, num.Literal.Num)

	str := NewLiteral(String, `"hi"`, StringValue("hi"), 1)
	assert.Equal(t, StringLiteral, str.Literal.Kind)
	assert.Equal(t, "hi", str.Literal.Str)
}
