/*
File    : lax/interp/callable.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/akashmaji946/lax/ast"
)

// Function is a user-defined Lax function or method: its declaration
// (name, parameters, body) plus the environment active at the point it
// was declared — its closure. Grounded on
// original_source/src/callables/lax_functions.rs's LaxFn (declaration +
// closure + is_init) and go-mix's function.Function (name/params/body/
// captured scope), merged into one shape since Lax, unlike GoMix, has
// no separate top-level Function struct outside the AST.
type Function struct {
	declaration *ast.Func
	closure     *Environment
	isInit      bool
}

// NewFunction wraps declaration with the environment active at its
// definition site. isInit marks methods named "init": calling one
// always yields the bound `this`, per spec.md §4.4, regardless of what
// its body returns.
func NewFunction(declaration *ast.Func, closure *Environment, isInit bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInit: isInit}
}

func (*Function) Kind() ValueKind  { return KindCallable }
func (*Function) isValue()         {}
func (f *Function) String() string { return displayFn(f.declaration.Name.Lexeme) }
func (f *Function) Arity() int     { return len(f.declaration.Params) }

// Bind returns a copy of f whose closure is a fresh scope layered over
// f's own closure, with `this` bound to instance. Called by Object.Get
// each time a method is retrieved off an instance, so the method body
// can refer to `this` and (via the resolver's recorded depths) to
// `super`.
func (f *Function) Bind(instance *Object) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return NewFunction(f.declaration, env, f.isInit)
}

// Call runs the function body in a fresh scope layered over its
// closure, with parameters bound to args (arity is already checked by
// the caller — Interpreter.VisitCall — before Call is invoked).
func (f *Function) Call(i *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for idx, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[idx])
	}

	result, err := i.executeBlock(f.declaration.Body, env)
	if err != nil {
		return nil, err
	}

	if f.isInit {
		// An initializer always yields the constructed instance,
		// regardless of what (if anything) its body returned —
		// spec.md §4.4 and the quantified invariant in §8.
		return f.closure.GetAt(0, "this"), nil
	}
	if result != nil {
		return result, nil
	}
	return NilValue, nil
}
