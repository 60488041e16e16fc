/*
File    : lax/ast/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/lax/token"

// Stmt is implemented by every statement node.
type Stmt interface {
	Accept(v StmtVisitor) error
}

// StmtVisitor is implemented once per operation over the statement
// tree. Visit methods return only error: statements themselves never
// produce a value, but execution of one may produce a control-flow
// "unwinding" return value — the interpreter carries that through the
// same error result, as an interp.controlReturn value, so the visitor
// signature itself stays uniform.
type StmtVisitor interface {
	VisitExprStmt(s *ExprStmt) error
	VisitPrint(s *Print) error
	VisitLet(s *Let) error
	VisitBlock(s *Block) error
	VisitIf(s *If) error
	VisitWhile(s *While) error
	VisitFunc(s *Func) error
	VisitReturn(s *Return) error
	VisitClass(s *Class) error
}

// ExprStmt is an expression evaluated purely for its side effect
// (a call, an assignment); its value is discarded.
type ExprStmt struct {
	Expr Expr
}

func (s *ExprStmt) Accept(v StmtVisitor) error { return v.VisitExprStmt(s) }

// Print evaluates an expression and writes its display form followed
// by a newline.
type Print struct {
	Expr Expr
}

func (s *Print) Accept(v StmtVisitor) error { return v.VisitPrint(s) }

// Let declares a variable in the current scope, optionally initialized;
// an omitted initializer binds the name to nil.
type Let struct {
	Name token.Token
	Init Expr // nil if no initializer
}

func (s *Let) Accept(v StmtVisitor) error { return v.VisitLet(s) }

// Block introduces a new lexical scope around a statement sequence.
type Block struct {
	Stmts []Stmt
}

func (s *Block) Accept(v StmtVisitor) error { return v.VisitBlock(s) }

// If executes Then when Cond is truthy, otherwise Else (if present).
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if no else clause
}

func (s *If) Accept(v StmtVisitor) error { return v.VisitIf(s) }

// While repeatedly executes Body while Cond evaluates truthy. `for`
// loops are desugared into this plus a Block at parse time (spec.md
// §4.2) — there is no separate For node.
type While struct {
	Cond Expr
	Body Stmt
}

func (s *While) Accept(v StmtVisitor) error { return v.VisitWhile(s) }

// Func is a function (or method) declaration: a name, its parameter
// list, and its body. Class bodies reuse this node for each method;
// the interpreter tells a bare function from a method/initializer by
// where the Func is stored (Class.Methods) and by its name ("init").
type Func struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *Func) Accept(v StmtVisitor) error { return v.VisitFunc(s) }

// Return unwinds the current function call with an optional value.
type Return struct {
	Keyword token.Token
	Value   Expr // nil if bare `return;`
}

func (s *Return) Accept(v StmtVisitor) error { return v.VisitReturn(s) }

// Class declares a class, its optional superclass (always a Var
// expression naming another class), and its method list.
type Class struct {
	Name       token.Token
	Superclass *Var // nil if no `< Base` clause
	Methods    []*Func
}

func (s *Class) Accept(v StmtVisitor) error { return v.VisitClass(s) }
