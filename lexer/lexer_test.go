/*
File    : lax/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/lax/errs"
	"github.com/akashmaji946/lax/token"
)

// kindsOf strips lexemes and literals off a token list, leaving just
// the sequence of kinds — the shape most of these tests care about.
func kindsOf(tokens []token.Token) []token.Kind {
	kinds := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		kinds[i] = t.Kind
	}
	return kinds
}

func scan(t *testing.T, src string) ([]token.Token, *errs.Status) {
	t.Helper()
	var out strings.Builder
	status := errs.NewStatus(&out)
	tokens := New(src, status).ScanTokens()
	return tokens, status
}

func TestScanTokens_Punctuation(t *testing.T) {
	tokens, status := scan(t, `(){},.-+;*`)
	assert.False(t, status.HadCompileError)
	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star,
		token.Eof,
	}, kindsOf(tokens))
}

func TestScanTokens_TwoCharOperators(t *testing.T) {
	tokens, status := scan(t, `! != = == < <= > >=`)
	assert.False(t, status.HadCompileError)
	assert.Equal(t, []token.Kind{
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Less, token.LessEqual, token.Greater, token.GreaterEqual,
		token.Eof,
	}, kindsOf(tokens))
}

func TestScanTokens_CommentsAreIgnored(t *testing.T) {
	tokens, status := scan(t, "let x = 1; // trailing comment\nlet y = 2;")
	assert.False(t, status.HadCompileError)
	assert.Equal(t, []token.Kind{
		token.Let, token.Identifier, token.Equal, token.Number, token.Semicolon,
		token.Let, token.Identifier, token.Equal, token.Number, token.Semicolon,
		token.Eof,
	}, kindsOf(tokens))
}

func TestScanTokens_String(t *testing.T) {
	tokens, status := scan(t, `"hello, world"`)
	assert.False(t, status.HadCompileError)
	assert.Len(t, tokens, 2)
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, token.StringLiteral, tokens[0].Literal.Kind)
	assert.Equal(t, "hello, world", tokens[0].Literal.Str)
}

func TestScanTokens_StringSpansNewlines(t *testing.T) {
	tokens, status := scan(t, "\"line one\nline two\" let")
	assert.False(t, status.HadCompileError)
	assert.Equal(t, "line one\nline two", tokens[0].Literal.Str)
	// the `let` after the multi-line string is on line 2
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, status := scan(t, `"abc`)
	assert.True(t, status.HadCompileError)
}

func TestScanTokens_Number(t *testing.T) {
	tokens, status := scan(t, `7 3.14`)
	assert.False(t, status.HadCompileError)
	assert.Equal(t, 7.0, tokens[0].Literal.Num)
	assert.Equal(t, 3.14, tokens[1].Literal.Num)
}

func TestScanTokens_IdentifiersAndKeywords(t *testing.T) {
	tokens, status := scan(t, `let fn class this super nil true false and or if else while for print return myVar`)
	assert.False(t, status.HadCompileError)
	assert.Equal(t, []token.Kind{
		token.Let, token.Fn, token.Class, token.This, token.Super, token.Nil,
		token.True, token.False, token.And, token.Or, token.If, token.Else,
		token.While, token.For, token.Print, token.Return, token.Identifier,
		token.Eof,
	}, kindsOf(tokens))
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	_, status := scan(t, `let x = @;`)
	assert.True(t, status.HadCompileError)
}

func TestScanTokens_LineTracking(t *testing.T) {
	tokens, _ := scan(t, "let a = 1;\nlet b = 2;\n")
	last := tokens[len(tokens)-1]
	assert.Equal(t, token.Eof, last.Kind)
	assert.Equal(t, 3, last.Line)
}
