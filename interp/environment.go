/*
File    : lax/interp/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"fmt"

	"github.com/akashmaji946/lax/errs"
	"github.com/akashmaji946/lax/token"
)

// Environment is a single lexical scope: a name→Value map plus an
// optional pointer to the enclosing scope, forming a singly-linked
// chain rooted at globals. Grounded on go-mix's scope.Scope
// (LookUp/Bind/Assign/Copy over a parent chain), generalized here to
// also support the resolver's depth-addressed GetAt/AssignAt, which
// go-mix's scope never needed because it has no separate static
// resolution pass.
//
// Environments are shared by reference: a closure captures a specific
// *Environment, and every alias to that pointer observes the same
// writes. Go's garbage collector keeps a captured Environment alive for
// as long as any closure (or object field referencing `this`) still
// points to it — exactly the "must outlive any reachable closure"
// invariant spec.md §5 requires, with no manual refcounting needed.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment creates a scope whose parent is enclosing (nil for the
// global scope).
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		values:    make(map[string]Value),
		enclosing: enclosing,
	}
}

// Define inserts or overwrites name in this scope only. Used for `let`
// declarations, function parameters, and function/class names.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get looks up name in this scope, falling through to enclosing scopes,
// reporting a runtime error if no scope in the chain defines it.
func (e *Environment) Get(name token.Token) (Value, error) {
	for scope := e; scope != nil; scope = scope.enclosing {
		if v, ok := scope.values[name.Lexeme]; ok {
			return v, nil
		}
	}
	return nil, errs.RuntimeError{
		Token:   name,
		Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme),
	}
}

// Assign updates name in the nearest enclosing scope that already
// defines it (it does not create a new binding), reporting a runtime
// error if no scope defines it.
func (e *Environment) Assign(name token.Token, value Value) error {
	for scope := e; scope != nil; scope = scope.enclosing {
		if _, ok := scope.values[name.Lexeme]; ok {
			scope.values[name.Lexeme] = value
			return nil
		}
	}
	return errs.RuntimeError{
		Token:   name,
		Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme),
	}
}

// ancestor walks exactly depth enclosing links up from e. The resolver
// guarantees (spec.md §8's quantified invariant) that depth always
// lands on a scope that exists and defines the name being looked up, so
// a nil ancestor here signals an interpreter bug, not a user error.
func (e *Environment) ancestor(depth int) *Environment {
	scope := e
	for i := 0; i < depth; i++ {
		scope = scope.enclosing
	}
	return scope
}

// GetAt looks up name in the ancestor scope exactly depth hops away —
// the resolver having already determined that scope is where name was
// declared.
func (e *Environment) GetAt(depth int, name string) Value {
	return e.ancestor(depth).values[name]
}

// AssignAt assigns value to name in the ancestor scope exactly depth
// hops away.
func (e *Environment) AssignAt(depth int, name string, value Value) {
	e.ancestor(depth).values[name] = value
}
