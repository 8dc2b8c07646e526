package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/coolc/lextest/compiler/internal/lexbridge"
)

const lexerEnv = "LEXTEST_LEXER"

type options struct {
	lexer   string
	format  lexbridge.Format
	golden  string
	stats   bool
	verbose bool
	help    bool
	file    string
}

// parseArgs accepts flags before or after the single optional filename.
func parseArgs(args []string) (options, error) {
	opts := options{
		lexer:  os.Getenv(lexerEnv),
		format: lexbridge.FormatNDJSON,
	}
	var files []string
	for i := 0; i < len(args); i++ {
		s := args[i]
		switch {
		case s == "--":
			files = append(files, args[i+1:]...)
			i = len(args)
		case s == "-h" || s == "--help":
			opts.help = true
		case s == "--verbose":
			opts.verbose = true
		case s == "--stats":
			opts.stats = true
		case strings.HasPrefix(s, "--lexer="):
			opts.lexer = strings.TrimPrefix(s, "--lexer=")
		case strings.HasPrefix(s, "--golden="):
			opts.golden = strings.TrimPrefix(s, "--golden=")
		case strings.HasPrefix(s, "--format="):
			f := lexbridge.Format(strings.TrimPrefix(s, "--format="))
			if f != lexbridge.FormatNDJSON && f != lexbridge.FormatRaw {
				return opts, fmt.Errorf("unknown format %q", string(f))
			}
			opts.format = f
		case strings.HasPrefix(s, "-") && s != "-":
			return opts, fmt.Errorf("unknown flag %s", s)
		default:
			files = append(files, s)
		}
	}
	if len(files) > 1 {
		return opts, fmt.Errorf("too many arguments")
	}
	if len(files) == 1 {
		opts.file = files[0]
	}
	return opts, nil
}
