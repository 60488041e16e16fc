/*
File    : lax/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver implements the static pass between parsing and
// interpretation: a single statement-ordered walk that builds a stack
// of lexical scopes, records each variable/this/super reference's
// resolved depth keyed by the expression's unique id, and enforces the
// compile-time rules spec.md §4.3 lists (self-init, redeclaration,
// top-level return, this/super misuse, self-inheritance). Grounded on
// original_source/src/resolver.rs's scope-stack/FunctionType/ClassType
// shape, carried over into Go's two-visitor-interfaces idiom the way
// interp.Interpreter implements the same ast.ExprVisitor/ast.StmtVisitor
// pair.
package resolver

import (
	"github.com/akashmaji946/lax/ast"
	"github.com/akashmaji946/lax/errs"
	"github.com/akashmaji946/lax/token"
)

// funcType tracks what kind of function body is currently being
// resolved, needed to validate `return` usage (spec.md §4.3).
type funcType int

const (
	funcNone funcType = iota
	funcFunction
	funcMethod
	funcInitializer
)

// classType tracks whether (and how) a class is currently being
// resolved, needed to validate `this`/`super` usage.
type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Resolve is the dependency the interpreter registers a local with:
// called once per Var/Assign/This/Super/Super expression that resolves
// to an enclosing scope rather than globals.
type Resolve interface {
	Resolve(id uint64, depth int)
}

// Resolver walks a parsed program once, reporting static errors to
// status and registering lexical depths with target.
type Resolver struct {
	target      Resolve
	status      *errs.Status
	scopes      []map[string]bool
	currentFunc funcType
	currentCls  classType
}

// New creates a Resolver that reports to status and forwards resolved
// depths to target (the Interpreter in production; a test double that
// just records calls in tests).
func New(target Resolve, status *errs.Status) *Resolver {
	return &Resolver{target: target, status: status}
}

// ResolveProgram resolves every statement in stmts at the top level
// (outside any function or class).
func (r *Resolver) ResolveProgram(stmts []ast.Stmt) {
	r.resolveStmts(stmts)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	_ = s.Accept(r)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	_, _ = e.Accept(r)
}

func (r *Resolver) report(tok token.Token, message string) {
	r.status.ReportParse(errs.ParseError{Token: tok, Message: message})
}

// --- scope stack -------------------------------------------------------

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) peekScope() map[string]bool {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare marks name as declared-but-not-yet-defined in the innermost
// scope, flagging the redeclaration error if it's already there.
func (r *Resolver) declare(name token.Token) {
	scope := r.peekScope()
	if scope == nil {
		return
	}
	if _, exists := scope[name.Lexeme]; exists {
		r.report(name, "Already variable with this name declared in this scope.")
	}
	scope[name.Lexeme] = false
}

// define marks name as fully initialized in the innermost scope, the
// gap after declare() being exactly what lets VisitVar reject
// `let x = x;`.
func (r *Resolver) define(name token.Token) {
	scope := r.peekScope()
	if scope == nil {
		return
	}
	scope[name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward, recording
// (id -> depth) on the first scope that defines name. A miss is left
// unrecorded, which the interpreter interprets as "look in globals".
func (r *Resolver) resolveLocal(id uint64, name token.Token) {
	for depth := len(r.scopes) - 1; depth >= 0; depth-- {
		if _, ok := r.scopes[depth][name.Lexeme]; ok {
			r.target.Resolve(id, len(r.scopes)-1-depth)
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.Func, kind funcType) {
	enclosingFunc := r.currentFunc
	r.currentFunc = kind
	defer func() { r.currentFunc = enclosingFunc }()

	r.beginScope()
	defer r.endScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
}

// --- statement visitor ---------------------------------------------------

func (r *Resolver) VisitExprStmt(s *ast.ExprStmt) error {
	r.resolveExpr(s.Expr)
	return nil
}

func (r *Resolver) VisitPrint(s *ast.Print) error {
	r.resolveExpr(s.Expr)
	return nil
}

func (r *Resolver) VisitLet(s *ast.Let) error {
	r.declare(s.Name)
	if s.Init != nil {
		r.resolveExpr(s.Init)
	}
	r.define(s.Name)
	return nil
}

func (r *Resolver) VisitBlock(s *ast.Block) error {
	r.beginScope()
	r.resolveStmts(s.Stmts)
	r.endScope()
	return nil
}

func (r *Resolver) VisitIf(s *ast.If) error {
	r.resolveExpr(s.Cond)
	r.resolveStmt(s.Then)
	if s.Else != nil {
		r.resolveStmt(s.Else)
	}
	return nil
}

func (r *Resolver) VisitWhile(s *ast.While) error {
	r.resolveExpr(s.Cond)
	r.resolveStmt(s.Body)
	return nil
}

func (r *Resolver) VisitFunc(s *ast.Func) error {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s, funcFunction)
	return nil
}

func (r *Resolver) VisitReturn(s *ast.Return) error {
	if r.currentFunc == funcNone {
		r.report(s.Keyword, "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.currentFunc == funcInitializer {
			r.report(s.Keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
	return nil
}

func (r *Resolver) VisitClass(s *ast.Class) error {
	enclosingCls := r.currentCls
	r.currentCls = classClass
	defer func() { r.currentCls = enclosingCls }()

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.report(s.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentCls = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		defer r.endScope()
		r.peekScope()["super"] = true
	}

	r.beginScope()
	defer r.endScope()
	r.peekScope()["this"] = true

	for _, method := range s.Methods {
		kind := funcMethod
		if method.Name.Lexeme == "init" {
			kind = funcInitializer
		}
		r.resolveFunction(method, kind)
	}
	return nil
}

// --- expression visitor --------------------------------------------------

func (r *Resolver) VisitLiteral(e *ast.Literal) (any, error) { return nil, nil }

func (r *Resolver) VisitGrouping(e *ast.Grouping) (any, error) {
	r.resolveExpr(e.Inner)
	return nil, nil
}

func (r *Resolver) VisitUnary(e *ast.Unary) (any, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitBinary(e *ast.Binary) (any, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitLogical(e *ast.Logical) (any, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitVar(e *ast.Var) (any, error) {
	if scope := r.peekScope(); scope != nil {
		if defined, declared := scope[e.Name.Lexeme]; declared && !defined {
			r.report(e.Name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e.ID, e.Name)
	return nil, nil
}

func (r *Resolver) VisitAssign(e *ast.Assign) (any, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e.ID, e.Name)
	return nil, nil
}

func (r *Resolver) VisitCall(e *ast.Call) (any, error) {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Args {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitGet(e *ast.Get) (any, error) {
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitSet(e *ast.Set) (any, error) {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitThis(e *ast.This) (any, error) {
	if r.currentCls == classNone {
		r.report(e.Keyword, "Can't use 'this' outside of a class.")
		return nil, nil
	}
	r.resolveLocal(e.ID, e.Keyword)
	return nil, nil
}

func (r *Resolver) VisitSuper(e *ast.Super) (any, error) {
	switch r.currentCls {
	case classNone:
		r.report(e.Keyword, "Can't use 'super' outside of a class.")
	case classClass:
		r.report(e.Keyword, "Can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(e.ID, e.Keyword)
	return nil, nil
}
