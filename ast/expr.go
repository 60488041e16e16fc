/*
File    : lax/ast/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the Lax expression and statement tree and the
// visitor interfaces the resolver and interpreter implement over it.
// The Unary, Binary, Logical, Var, Assign, This and Super nodes carry a
// process-unique NextExprID()-allocated identifier; Literal, Grouping,
// Call, Get and Set nodes carry none. The resolver uses the identifier
// as the key of its side-channel scope-depth map, and the interpreter
// looks that map up by the same key at evaluation time. Node identity, not node equality, is what
// matters here — two syntactically identical `x` references in
// different places get different ids.
package ast

import (
	"sync/atomic"

	"github.com/akashmaji946/lax/token"
)

// nextID is the monotonic counter backing NextExprID. Package-level and
// atomic so it is safe even if callers ever parse concurrently; the
// interpreter itself remains strictly single-threaded per spec.md §5.
var nextID uint64

// NextExprID allocates the next globally unique expression identifier.
// Called once per node that has an ID field, at construction time in
// the parser.
func NextExprID() uint64 {
	return atomic.AddUint64(&nextID, 1)
}

// Expr is implemented by every expression node. Accept performs the
// double dispatch a visitor needs: the node knows its own concrete
// type, the visitor knows what to do with it.
type Expr interface {
	Accept(v ExprVisitor) (any, error)
}

// ExprVisitor is implemented once per operation over the expression
// tree (the resolver and the interpreter are the two visitors in this
// repository). Each visit method returns (any, error) so both the
// resolver (which only needs error) and the interpreter (which needs a
// token.Value result) can share one interface.
type ExprVisitor interface {
	VisitLiteral(e *Literal) (any, error)
	VisitGrouping(e *Grouping) (any, error)
	VisitUnary(e *Unary) (any, error)
	VisitBinary(e *Binary) (any, error)
	VisitLogical(e *Logical) (any, error)
	VisitVar(e *Var) (any, error)
	VisitAssign(e *Assign) (any, error)
	VisitCall(e *Call) (any, error)
	VisitGet(e *Get) (any, error)
	VisitSet(e *Set) (any, error)
	VisitThis(e *This) (any, error)
	VisitSuper(e *Super) (any, error)
}

// Literal is a constant value written directly in the source: a
// number, string, true/false, or nil.
type Literal struct {
	Value any // one of nil, bool, float64, string — see interp.Value conversion
}

func (e *Literal) Accept(v ExprVisitor) (any, error) { return v.VisitLiteral(e) }

// Grouping is a parenthesized expression, kept as its own node (rather
// than discarded) so error messages and an AST printer could point at
// it; the interpreter simply evaluates the inner expression.
type Grouping struct {
	Inner Expr
}

func (e *Grouping) Accept(v ExprVisitor) (any, error) { return v.VisitGrouping(e) }

// Unary is a single prefix operator applied to one operand: `-x` or `!x`.
type Unary struct {
	ID    uint64
	Op    token.Token
	Right Expr
}

func (e *Unary) Accept(v ExprVisitor) (any, error) { return v.VisitUnary(e) }

// Binary is an infix operator applied to two operands.
type Binary struct {
	ID    uint64
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Binary) Accept(v ExprVisitor) (any, error) { return v.VisitBinary(e) }

// Logical is `and`/`or`, kept distinct from Binary because it
// short-circuits: the right operand is not evaluated once the left
// operand determines the result.
type Logical struct {
	ID    uint64
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Logical) Accept(v ExprVisitor) (any, error) { return v.VisitLogical(e) }

// Var is a bare name reference. Its ID is what the resolver's locals
// map is keyed on for this particular use site.
type Var struct {
	ID   uint64
	Name token.Token
}

func (e *Var) Accept(v ExprVisitor) (any, error) { return v.VisitVar(e) }

// Assign is `name = value`. Like Var, resolved by ID against the
// locals map (a name can be reassigned from many call sites, each with
// its own depth).
type Assign struct {
	ID    uint64
	Name  token.Token
	Value Expr
}

func (e *Assign) Accept(v ExprVisitor) (any, error) { return v.VisitAssign(e) }

// Call is a function/class/method invocation: `callee(args...)`. Paren
// is the closing `)` token, used to anchor arity-mismatch runtime
// errors to a sensible source location.
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (e *Call) Accept(v ExprVisitor) (any, error) { return v.VisitCall(e) }

// Get is property/method access: `object.name`.
type Get struct {
	Object Expr
	Name   token.Token
}

func (e *Get) Accept(v ExprVisitor) (any, error) { return v.VisitGet(e) }

// Set is property assignment: `object.name = value`.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (e *Set) Accept(v ExprVisitor) (any, error) { return v.VisitSet(e) }

// This is a `this` reference inside a method body.
type This struct {
	ID      uint64
	Keyword token.Token
}

func (e *This) Accept(v ExprVisitor) (any, error) { return v.VisitThis(e) }

// Super is a `super.method` reference inside a subclass method body.
type Super struct {
	ID      uint64
	Keyword token.Token
	Method  token.Token
}

func (e *Super) Accept(v ExprVisitor) (any, error) { return v.VisitSuper(e) }
