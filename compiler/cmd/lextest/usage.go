package main

import "github.com/coolc/lextest/compiler/internal/term"

func usage() {
	term.Eprintln("Usage: lextest [flags] [filename]")
	term.Eprintln("  If filename is provided, read from file.")
	term.Eprintln("  Otherwise, read from standard input.")
	term.Eprintln("")
	term.Eprintln("Flags:")
	term.Eprintln("  --lexer=CMD            external COOL lexer; gets the file as last argument or stdin")
	term.Eprintln("                         (default $" + lexerEnv + "; without one the input is a token stream)")
	term.Eprintln("  --format=ndjson|raw    token stream encoding (default ndjson)")
	term.Eprintln("  --golden=FILE          compare the dump with FILE; print a diff and exit 1 on mismatch")
	term.Eprintln("  --stats                print token kind coverage to stderr")
	term.Eprintln("  --verbose              debug traces on stderr")
}
