/*
File    : lax/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements Lax's Read-Eval-Print Loop: an interactive
session where users enter source line by line, backed by readline for
history/editing and fatih/color for diagnostic highlighting. Adapted
from go-mix's repl.Repl (same banner/readline/color scaffolding), wired
here against the lax package's pipeline instead of go-mix's evaluator,
and against spec.md §6's REPL contract: print `> `, run the line as a
whole program fragment, reset the compile-error flag between inputs,
keep runtime state (globals) across inputs.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/lax"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Lax!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: one Lax instance persists for the
// whole session (so globals survive across lines, per spec.md §6),
// while the sticky compile/runtime error flags reset on every input.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	interpreter := lax.New(writer, writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, interpreter)
	}
}

// executeWithRecovery runs one line through the Lax pipeline. Parse,
// static, and runtime diagnostics are already printed by the pipeline
// itself (to the writer passed to lax.New); this only adds a panic
// backstop so a bug deep in the interpreter can't take the whole
// session down.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, interpreter *lax.Lax) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()
	interpreter.Run(line)
}
