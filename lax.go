/*
File    : lax/lax.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lax wires the pipeline spec.md §2 describes — lexer, parser,
// resolver, interpreter — into the two entry points the CLI and REPL
// need: running a whole file, and running one fragment of source
// against interpreter state that persists across calls. Grounded on
// original_source/src/lax.rs's Lax struct (an ErrorStatus plus an
// Interpreter, with run()/run_file()/run_prompt() driving the same
// four stages).
package lax

import (
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/lax/errs"
	"github.com/akashmaji946/lax/interp"
	"github.com/akashmaji946/lax/lexer"
	"github.com/akashmaji946/lax/parser"
	"github.com/akashmaji946/lax/resolver"
)

var fileErrColor = color.New(color.FgRed)

// Exit codes per spec.md §6.
const (
	ExitOK           = 0
	ExitUsage        = 64
	ExitCompileError = 65
	ExitRuntimeError = 70
)

// Lax holds the pipeline state that must persist across multiple runs:
// the interpreter (so REPL globals survive each line) and the sticky
// compile/runtime error flags (reset between REPL inputs, per spec.md
// §6's REPL contract).
type Lax struct {
	status *errs.Status
	interp *interp.Interpreter
}

// New creates a Lax instance writing `print` output to stdout and
// diagnostics to stderr.
func New(stdout, stderr io.Writer) *Lax {
	return &Lax{
		status: errs.NewStatus(stderr),
		interp: interp.NewInterpreter(stdout),
	}
}

// HadCompileError reports whether the most recent Run saw a scan,
// parse, or static error.
func (l *Lax) HadCompileError() bool { return l.status.HadCompileError }

// HadRuntimeError reports whether the most recent Run aborted on a
// runtime error.
func (l *Lax) HadRuntimeError() bool { return l.status.HadRuntimeError }

// Run scans, parses, resolves, and (if nothing failed first)
// interprets source. It resets the sticky error flags at the start of
// every call, so callers running one file straight through should call
// it exactly once; the REPL calls it once per line.
func (l *Lax) Run(source string) {
	l.status.Reset()

	tokens := lexer.New(source, l.status).ScanTokens()
	stmts := parser.New(tokens, l.status).Parse()
	if l.status.HadCompileError {
		return
	}

	resolver.New(l.interp, l.status).ResolveProgram(stmts)
	if l.status.HadCompileError {
		return
	}

	if err := l.interp.Interpret(stmts); err != nil {
		if rerr, ok := err.(errs.RuntimeError); ok {
			l.status.ReportRuntime(rerr)
		}
	}
}

// RunFile reads path once, runs it through the pipeline, and returns
// the process exit code spec.md §6 assigns: 0 on success, 65 if any
// compile-time diagnostic fired (the interpreter never runs in that
// case), 70 if a runtime error aborted execution.
func RunFile(path string, stdout, stderr io.Writer) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fileErrColor.Fprintf(stderr, "[FILE ERROR] %v\n", err)
		return ExitCompileError
	}

	l := New(stdout, stderr)
	l.Run(string(data))

	switch {
	case l.HadCompileError():
		return ExitCompileError
	case l.HadRuntimeError():
		return ExitRuntimeError
	default:
		return ExitOK
	}
}
