/*
File    : lax/interp/native.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Native functions: host code exposed to Lax under the same Callable
// contract user-defined functions satisfy. Grounded on
// original_source/src/callables/native_functions.rs's NativeFn
// (func + arity + name) and go-mix's std.Builtin{Name, Callback}
// registration table — adapted here to stay entirely inside spec.md's
// Non-goal boundary (no I/O beyond print): every native below reads
// only its already-evaluated arguments or, for clock, the system time.
package interp

import "time"

// NativeFn wraps a Go function as a Lax Callable.
type NativeFn struct {
	name string
	fn   func(args []Value) Value
	n    int
}

func (*NativeFn) Kind() ValueKind  { return KindCallable }
func (*NativeFn) isValue()         {}
func (n *NativeFn) String() string { return displayFn(n.name) }
func (n *NativeFn) Arity() int     { return n.n }

func (n *NativeFn) Call(_ *Interpreter, args []Value) (Value, error) {
	return n.fn(args), nil
}

// defineNatives populates globals with the native library spec.md §4.4
// requires ("at least clock") plus the small, pure extensions
// SPEC_FULL.md §6.1 adds (type, str) — neither introduces a new Value
// variant or touches any I/O.
func defineNatives(globals *Environment) {
	define := func(name string, arity int, fn func(args []Value) Value) {
		globals.Define(name, &NativeFn{name: name, n: arity, fn: fn})
	}

	define("clock", 0, func(args []Value) Value {
		return Number(float64(time.Now().UnixNano()) / 1e9)
	})

	define("type", 1, func(args []Value) Value {
		if _, ok := args[0].(*Class); ok {
			return String("class")
		}
		return String(args[0].Kind().String())
	})

	define("str", 1, func(args []Value) Value {
		return String(args[0].String())
	})
}
