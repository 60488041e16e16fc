/*
File    : lax/interp/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"fmt"
	"io"

	"github.com/akashmaji946/lax/ast"
	"github.com/akashmaji946/lax/errs"
	"github.com/akashmaji946/lax/token"
)

// Interpreter is the tree-walking evaluator of spec.md §4.4: a
// globals environment seeded with natives, the currently active scope,
// and the resolver's exprID→depth side-channel. Grounded on
// eval/evaluator.go's shape (holds its scope chain and an output
// writer) and original_source/src/interpreter.rs's locals map and
// lookup_variable/execute_block structure.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[uint64]int
	stdout      io.Writer
}

// NewInterpreter creates an interpreter whose `print` statements write
// to stdout, with globals pre-populated with the native library
// (SPEC_FULL.md §6.1).
func NewInterpreter(stdout io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	defineNatives(globals)
	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[uint64]int),
		stdout:      stdout,
	}
}

// Resolve records the lexical depth the resolver computed for the
// expression identified by id. Called once per Var/Assign/This/Super
// expression that resolves to a local; expressions never recorded here
// fall through to globals at lookup time.
func (i *Interpreter) Resolve(id uint64, depth int) {
	i.locals[id] = depth
}

// controlReturn is how a `return` statement unwinds the call stack: it
// is propagated as an error value by every statement visitor (if and
// while return whatever execute() returned, which already stops
// further execution the moment it is non-nil; a block re-raises the
// value executeBlock handed back), then unwrapped by executeBlock, the
// place that tells "a function body finished by returning a value"
// apart from "a genuine runtime error occurred". This realizes spec.md §4.4's "Return as control flow: do
// not use exceptions" note using Go's own error-return plumbing instead
// of panic/recover.
type controlReturn struct {
	value Value
}

func (controlReturn) Error() string { return "return" }

// Interpret runs a full program: every statement in source order, per
// spec.md §4.4/§5's ordering guarantees. Called once per file-mode run
// and once per REPL line (against the same globals each time).
func (i *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			if _, ok := err.(controlReturn); ok {
				// The resolver rejects top-level `return` before the
				// interpreter ever runs; this is defensive, not a
				// reachable path for a well-formed program.
				continue
			}
			return err
		}
	}
	return nil
}

func (i *Interpreter) execute(s ast.Stmt) error {
	return s.Accept(i)
}

// executeBlock runs stmts against env, restoring the previous active
// environment on return. It consumes a controlReturn and turns it back
// into a plain Value; VisitBlock wraps that Value in a new
// controlReturn so it keeps unwinding, while VisitIf and VisitWhile
// forward whatever execute() handed back.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) (Value, error) {
	previous := i.environment
	i.environment = env
	defer func() { i.environment = previous }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			if cr, ok := err.(controlReturn); ok {
				return cr.value, nil
			}
			return nil, err
		}
	}
	return nil, nil
}

func (i *Interpreter) evaluate(e ast.Expr) (Value, error) {
	result, err := e.Accept(i)
	if err != nil {
		return nil, err
	}
	v, _ := result.(Value)
	return v, nil
}

func (i *Interpreter) lookupVariable(name token.Token, id uint64) (Value, error) {
	if depth, ok := i.locals[id]; ok {
		return i.environment.GetAt(depth, name.Lexeme), nil
	}
	return i.globals.Get(name)
}

// --- expression visitor -----------------------------------------------

func (i *Interpreter) VisitLiteral(e *ast.Literal) (any, error) {
	switch v := e.Value.(type) {
	case nil:
		return NilValue, nil
	case bool:
		return Bool(v), nil
	case float64:
		return Number(v), nil
	case string:
		return String(v), nil
	default:
		return NilValue, nil
	}
}

func (i *Interpreter) VisitGrouping(e *ast.Grouping) (any, error) {
	return i.evaluate(e.Inner)
}

func (i *Interpreter) VisitUnary(e *ast.Unary) (any, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.Minus:
		num, ok := right.(Number)
		if !ok {
			return nil, errs.RuntimeError{Token: e.Op, Message: "Operand must be a number."}
		}
		return -num, nil
	case token.Bang:
		return Bool(!IsTruthy(right)), nil
	}
	return NilValue, nil
}

func (i *Interpreter) VisitBinary(e *ast.Binary) (any, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	if ln, lok := left.(Number); lok {
		if rn, rok := right.(Number); rok {
			switch e.Op.Kind {
			case token.Plus:
				return ln + rn, nil
			case token.Minus:
				return ln - rn, nil
			case token.Star:
				return ln * rn, nil
			case token.Slash:
				return ln / rn, nil
			case token.Greater:
				return Bool(ln > rn), nil
			case token.GreaterEqual:
				return Bool(ln >= rn), nil
			case token.Less:
				return Bool(ln < rn), nil
			case token.LessEqual:
				return Bool(ln <= rn), nil
			case token.EqualEqual:
				return Bool(Equals(ln, rn)), nil
			case token.BangEqual:
				return Bool(!Equals(ln, rn)), nil
			default:
				return nil, errs.RuntimeError{Token: e.Op, Message: "Operator cannot be used on numbers."}
			}
		}
	}

	if ls, lok := left.(String); lok {
		if rs, rok := right.(String); rok {
			switch e.Op.Kind {
			case token.Plus:
				return ls + rs, nil
			case token.EqualEqual:
				return Bool(Equals(ls, rs)), nil
			case token.BangEqual:
				return Bool(!Equals(ls, rs)), nil
			default:
				return nil, errs.RuntimeError{Token: e.Op, Message: "Operator cannot be used on strings."}
			}
		}
	}

	switch e.Op.Kind {
	case token.EqualEqual:
		return Bool(Equals(left, right)), nil
	case token.BangEqual:
		return Bool(!Equals(left, right)), nil
	default:
		return nil, errs.RuntimeError{Token: e.Op, Message: "Operands must be two numbers or two strings."}
	}
}

func (i *Interpreter) VisitLogical(e *ast.Logical) (any, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.Or {
		if IsTruthy(left) {
			return left, nil
		}
	} else if !IsTruthy(left) {
		return left, nil
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) VisitVar(e *ast.Var) (any, error) {
	return i.lookupVariable(e.Name, e.ID)
}

func (i *Interpreter) VisitAssign(e *ast.Assign) (any, error) {
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := i.locals[e.ID]; ok {
		i.environment.AssignAt(depth, e.Name.Lexeme, value)
	} else if err := i.globals.Assign(e.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (i *Interpreter) VisitCall(e *ast.Call) (any, error) {
	calleeVal, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeVal.(Callable)
	if !ok {
		return nil, errs.RuntimeError{Token: e.Paren, Message: "Can only call functions and classes."}
	}

	args := make([]Value, 0, len(e.Args))
	for _, argExpr := range e.Args {
		v, err := i.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	if len(args) != fn.Arity() {
		return nil, errs.RuntimeError{
			Token:   e.Paren,
			Message: fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)),
		}
	}
	return fn.Call(i, args)
}

func (i *Interpreter) VisitGet(e *ast.Get) (any, error) {
	objVal, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := objVal.(*Object)
	if !ok {
		return nil, errs.RuntimeError{Token: e.Name, Message: "Only instances have properties."}
	}
	return instance.Get(e.Name)
}

func (i *Interpreter) VisitSet(e *ast.Set) (any, error) {
	objVal, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := objVal.(*Object)
	if !ok {
		return nil, errs.RuntimeError{Token: e.Name, Message: "Only instances have fields."}
	}
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name, value)
	return value, nil
}

func (i *Interpreter) VisitThis(e *ast.This) (any, error) {
	return i.lookupVariable(e.Keyword, e.ID)
}

func (i *Interpreter) VisitSuper(e *ast.Super) (any, error) {
	depth, ok := i.locals[e.ID]
	if !ok {
		// Unreachable for a resolved program: the resolver rejects any
		// `super` use outside a class with a superclass.
		return nil, errs.RuntimeError{Token: e.Keyword, Message: "Can't use 'super' in a class with no superclass."}
	}
	superclass, _ := i.environment.GetAt(depth, "super").(*Class)
	instance, _ := i.environment.GetAt(depth-1, "this").(*Object)

	method, found := superclass.findMethod(e.Method.Lexeme)
	if !found {
		return nil, errs.RuntimeError{
			Token:   e.Method,
			Message: fmt.Sprintf("Undefined property '%s'.", e.Method.Lexeme),
		}
	}
	return method.Bind(instance), nil
}

// --- statement visitor -------------------------------------------------

func (i *Interpreter) VisitExprStmt(s *ast.ExprStmt) error {
	_, err := i.evaluate(s.Expr)
	return err
}

func (i *Interpreter) VisitPrint(s *ast.Print) error {
	value, err := i.evaluate(s.Expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(i.stdout, value.String())
	return nil
}

func (i *Interpreter) VisitLet(s *ast.Let) error {
	value := NilValue
	if s.Init != nil {
		v, err := i.evaluate(s.Init)
		if err != nil {
			return err
		}
		value = v
	}
	i.environment.Define(s.Name.Lexeme, value)
	return nil
}

func (i *Interpreter) VisitBlock(s *ast.Block) error {
	env := NewEnvironment(i.environment)
	value, err := i.executeBlock(s.Stmts, env)
	if err != nil {
		return err
	}
	if value != nil {
		return controlReturn{value}
	}
	return nil
}

func (i *Interpreter) VisitIf(s *ast.If) error {
	cond, err := i.evaluate(s.Cond)
	if err != nil {
		return err
	}
	if IsTruthy(cond) {
		return i.execute(s.Then)
	}
	if s.Else != nil {
		return i.execute(s.Else)
	}
	return nil
}

func (i *Interpreter) VisitWhile(s *ast.While) error {
	for {
		cond, err := i.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if !IsTruthy(cond) {
			return nil
		}
		if err := i.execute(s.Body); err != nil {
			return err
		}
	}
}

func (i *Interpreter) VisitFunc(s *ast.Func) error {
	fn := NewFunction(s, i.environment, false)
	i.environment.Define(s.Name.Lexeme, fn)
	return nil
}

func (i *Interpreter) VisitReturn(s *ast.Return) error {
	value := NilValue
	if s.Value != nil {
		v, err := i.evaluate(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return controlReturn{value}
}

func (i *Interpreter) VisitClass(s *ast.Class) error {
	var superclass *Class
	if s.Superclass != nil {
		scVal, err := i.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := scVal.(*Class)
		if !ok {
			return errs.RuntimeError{Token: s.Superclass.Name, Message: "Superclass must be a class."}
		}
		superclass = sc
	}

	i.environment.Define(s.Name.Lexeme, NilValue)

	methodEnv := i.environment
	if superclass != nil {
		methodEnv = NewEnvironment(i.environment)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, methodEnv, m.Name.Lexeme == "init")
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)
	return i.environment.Assign(s.Name, class)
}
