/*
File    : lax/errs/errs.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package errs implements the diagnostic plumbing shared by every stage
// of the Lax pipeline: scan errors, parse errors, static (resolver)
// errors, and runtime errors, plus the had-compile-error/had-runtime-
// error flags the CLI uses to pick an exit code.
package errs

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/akashmaji946/lax/token"
)

// errColor renders every diagnostic in red, matching the teacher's
// redColor.Fprintf convention for parse/runtime/file errors.
var errColor = color.New(color.FgRed)

// Status accumulates the two sticky flags the CLI checks after each
// pipeline stage: whether any compile-time diagnostic (scan, parse, or
// static) fired, and whether a runtime error aborted execution. It also
// owns the writer diagnostics are printed to, which the caller of
// NewStatus supplies (lax.New passes its stderr writer; tests pass a
// buffer).
type Status struct {
	Out             io.Writer
	HadCompileError bool
	HadRuntimeError bool
}

// NewStatus creates a Status that writes diagnostics to w.
func NewStatus(w io.Writer) *Status {
	return &Status{Out: w}
}

// Reset clears both flags. The REPL calls this between inputs so one
// bad line doesn't poison the session (globals still persist across
// calls — only the flags reset).
func (s *Status) Reset() {
	s.HadCompileError = false
	s.HadRuntimeError = false
}

// ReportScan records a ScanError: prints it in red and flips
// HadCompileError.
func (s *Status) ReportScan(err ScanError) {
	errColor.Fprintln(s.Out, err.Error())
	s.HadCompileError = true
}

// ReportParse records a ParseError (also used for static/resolver
// errors, which share the same "[line L] Error ..." shape), printed in
// red.
func (s *Status) ReportParse(err ParseError) {
	errColor.Fprintln(s.Out, err.Error())
	s.HadCompileError = true
}

// ReportRuntime records a RuntimeError, printed in red.
func (s *Status) ReportRuntime(err RuntimeError) {
	errColor.Fprintln(s.Out, err.Error())
	s.HadRuntimeError = true
}

// ScanError is a lexer diagnostic: an unterminated string, an
// unparseable number, or a byte the lexer doesn't recognize.
type ScanError struct {
	Line    int
	Message string
}

func (e ScanError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// ParseError is a parser or resolver diagnostic, anchored to the token
// where the problem was detected. Formatting follows spec.md §6: "at
// end" when the offending token is Eof, otherwise "at '<lexeme>'".
type ParseError struct {
	Token   token.Token
	Message string
}

func (e ParseError) Error() string {
	if e.Token.Kind == token.Eof {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Token.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Token.Line, e.Token.Lexeme, e.Message)
}

// RuntimeError is an interpreter diagnostic, anchored to the token that
// triggered it (the operator, the call's paren, the property name,
// etc.).
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Token.Line, e.Message)
}
