/*
File    : lax/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lax/ast"
	"github.com/akashmaji946/lax/errs"
	"github.com/akashmaji946/lax/lexer"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *errs.Status) {
	t.Helper()
	var out strings.Builder
	status := errs.NewStatus(&out)
	tokens := lexer.New(src, status).ScanTokens()
	stmts := New(tokens, status).Parse()
	return stmts, status
}

func TestParse_PrecedenceClimbing(t *testing.T) {
	stmts, status := parse(t, "1 + 2 * 3;")
	require.False(t, status.HadCompileError)
	require.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ast.ExprStmt)
	require.True(t, ok)
	binary, ok := exprStmt.Expr.(*ast.Binary)
	require.True(t, ok)

	left, ok := binary.Left.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, 1.0, left.Value)

	right, ok := binary.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, 2.0, right.Left.(*ast.Literal).Value)
	assert.Equal(t, 3.0, right.Right.(*ast.Literal).Value)
}

func TestParse_LetDeclaration(t *testing.T) {
	stmts, status := parse(t, `let greeting = "hi";`)
	require.False(t, status.HadCompileError)
	require.Len(t, stmts, 1)

	letStmt, ok := stmts[0].(*ast.Let)
	require.True(t, ok)
	assert.Equal(t, "greeting", letStmt.Name.Lexeme)
	assert.Equal(t, "hi", letStmt.Init.(*ast.Literal).Value)
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	stmts, status := parse(t, "for (let i = 0; i < 3; i = i + 1) print i;")
	require.False(t, status.HadCompileError)
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, outer.Stmts, 2)

	_, ok = outer.Stmts[0].(*ast.Let)
	assert.True(t, ok)

	whileStmt, ok := outer.Stmts[1].(*ast.While)
	require.True(t, ok)

	bodyBlock, ok := whileStmt.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, bodyBlock.Stmts, 2)
	_, ok = bodyBlock.Stmts[1].(*ast.ExprStmt)
	assert.True(t, ok)
}

func TestParse_ClassWithSuperclass(t *testing.T) {
	stmts, status := parse(t, `
		class Animal {
			speak() { print "..."; }
		}
		class Dog < Animal {
			speak() { print "woof"; }
		}
	`)
	require.False(t, status.HadCompileError)
	require.Len(t, stmts, 2)

	dog, ok := stmts[1].(*ast.Class)
	require.True(t, ok)
	assert.Equal(t, "Dog", dog.Name.Lexeme)
	require.NotNil(t, dog.Superclass)
	assert.Equal(t, "Animal", dog.Superclass.Name.Lexeme)
	require.Len(t, dog.Methods, 1)
	assert.Equal(t, "speak", dog.Methods[0].Name.Lexeme)
}

func TestParse_InvalidAssignmentTarget(t *testing.T) {
	_, status := parse(t, "1 + 2 = 3;")
	assert.True(t, status.HadCompileError)
}

func TestParse_ErrorRecoverySynchronizesOnSemicolon(t *testing.T) {
	stmts, status := parse(t, `
		let a = ;
		let b = 2;
	`)
	assert.True(t, status.HadCompileError)
	// synchronize() consumes up through the next ';' and resumes there,
	// so the following well-formed declaration still parses.
	require.Len(t, stmts, 1)
	letStmt, ok := stmts[0].(*ast.Let)
	require.True(t, ok)
	assert.Equal(t, "b", letStmt.Name.Lexeme)
}

func TestParse_TooManyArguments(t *testing.T) {
	var args strings.Builder
	for i := 0; i < 256; i++ {
		if i > 0 {
			args.WriteString(", ")
		}
		args.WriteString("1")
	}
	_, status := parse(t, "f("+args.String()+");")
	assert.True(t, status.HadCompileError)
}
