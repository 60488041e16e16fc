/*
File    : lax/cmd/lax/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/lax"
	"github.com/akashmaji946/lax/repl"
)

var redColor = color.New(color.FgRed)

// banner, version, author, etc. mirror go-mix's cmd entry point, just
// rebranded for Lax — repl.Repl.PrintBannerInfo prints all but prompt,
// which repl.Repl.Start hands to readline.
const (
	banner = `
 ██▓    ▄▄▄       ▒██   ██▒
▓██▒   ▒████▄     ▒▒ █ █ ▒░
▒██░   ▒██  ▀█▄   ░░  █   ░
▒██░   ░██▄▄▄▄██   ░ █ █ ▒
░██████▒▓█   ▓██▒▒██▒ ▒██▒
░ ▒░▓  ░▒▒   ▓▒█░▒▒ ░ ░▓ ░
`
	version = "0.1.0"
	author  = "akashmaji946"
	line    = "----------------------------------------------------------------"
	license = "MIT"
	prompt  = "> "
)

func main() {
	args := os.Args[1:]
	switch len(args) {
	case 0:
		repl.NewRepl(banner, version, author, line, license, prompt).Start(os.Stdin, os.Stdout)
	case 1:
		os.Exit(lax.RunFile(args[0], os.Stdout, os.Stderr))
	default:
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] Expected 1 argument but %d were given\n", len(args))
		os.Exit(lax.ExitUsage)
	}
}
