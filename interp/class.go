/*
File    : lax/interp/class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"fmt"

	"github.com/akashmaji946/lax/errs"
	"github.com/akashmaji946/lax/token"
)

// Class is a runtime class value: its name, its own method table, and
// an optional superclass. Grounded on
// original_source/src/callables/lax_class.rs's LaxClass, extended with
// the Superclass link and method-chain lookup that archived revision
// lacked (spec.md §3's Class data model requires single inheritance;
// §9 resolves the ambiguity the archived Rust revisions left open).
type Class struct {
	name       string
	methods    map[string]*Function
	superclass *Class
}

// NewClass assembles a class from its own method table; superclass may
// be nil.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{name: name, superclass: superclass, methods: methods}
}

func (*Class) Kind() ValueKind  { return KindCallable }
func (*Class) isValue()         {}
func (c *Class) String() string { return c.name }

// Arity is the arity of the class's "init" method, or zero if it has
// none — calling a class with no initializer takes no arguments.
func (c *Class) Arity() int {
	if init, ok := c.findMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new instance of c, running its "init" method (if
// any) against the supplied args, and returns the instance itself
// (never the initializer's own return value — see Function.Call).
func (c *Class) Call(i *Interpreter, args []Value) (Value, error) {
	instance := NewObject(c)
	if init, ok := c.findMethod("init"); ok {
		if _, err := init.Bind(instance).Call(i, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// findMethod looks up name in c's own method table, falling through to
// the superclass chain on a miss.
func (c *Class) findMethod(name string) (*Function, bool) {
	if m, ok := c.methods[name]; ok {
		return m, true
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil, false
}

// Object is a runtime instance of a Class: the class it was
// constructed from plus a field map populated lazily on first
// assignment. Grounded on
// original_source/src/callables/lax_object.rs's LaxObject (class +
// fields map), matching spec.md §3's Object data model exactly.
// Objects carry reference identity (spec.md Data Model): every alias
// of the same *Object observes the same field writes, which Go's
// pointer semantics give for free.
type Object struct {
	class  *Class
	fields map[string]Value
}

// NewObject constructs a fresh, field-less instance of class.
func NewObject(class *Class) *Object {
	return &Object{class: class, fields: make(map[string]Value)}
}

func (*Object) Kind() ValueKind  { return KindObject }
func (*Object) isValue()         {}
func (o *Object) String() string { return fmt.Sprintf("%s instance", o.class.name) }

// Get implements spec.md §4.4's Get expression semantics: a field
// shadows a method of the same name; a method miss that also misses
// the class chain is a runtime error.
func (o *Object) Get(name token.Token) (Value, error) {
	if v, ok := o.fields[name.Lexeme]; ok {
		return v, nil
	}
	if method, ok := o.class.findMethod(name.Lexeme); ok {
		return method.Bind(o), nil
	}
	return nil, errs.RuntimeError{
		Token:   name,
		Message: fmt.Sprintf("Undefined property '%s'.", name.Lexeme),
	}
}

// Set implements spec.md §4.4's Set expression semantics: fields are
// created on first assignment, no declaration required.
func (o *Object) Set(name token.Token, value Value) {
	o.fields[name.Lexeme] = value
}
