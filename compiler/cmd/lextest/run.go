package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/coolc/lextest/compiler/internal/diag"
	"github.com/coolc/lextest/compiler/internal/lexbridge"
	"github.com/coolc/lextest/compiler/internal/lexdump"
	"github.com/coolc/lextest/compiler/internal/term"
	"github.com/coolc/lextest/compiler/internal/token"
)

const stdinName = "(stdin)"

// run is main without the process exit, so tests can drive it.
func run(ctx context.Context, args []string, stdin io.Reader) int {
	opts, err := parseArgs(args)
	if err != nil {
		term.Eprintf("lextest: %v\n", err)
		usage()
		return 1
	}
	if opts.help {
		usage()
		return 0
	}
	term.Verbose = opts.verbose
	term.Dump("options", opts)

	identity := stdinName
	var in io.Reader = stdin
	if opts.file != "" {
		f, err := os.Open(opts.file)
		if err != nil {
			term.Eprintf("Error: Cannot open file '%s'\n", opts.file)
			term.Debugf("open: %v", err)
			return 1
		}
		defer f.Close()
		identity = opts.file
		in = f
	}

	var src token.Source
	if opts.lexer != "" {
		var stop context.CancelFunc
		ctx, stop = interruptible(ctx, opts.lexer)
		defer stop()

		var lexIn io.Reader
		if opts.file == "" {
			lexIn = in
		}
		p, err := lexbridge.Start(ctx, opts.lexer, opts.file, lexIn, opts.format)
		if err != nil {
			term.Eprintf("lextest: %v\n", err)
			return 1
		}
		defer p.Close()
		src = p
	} else {
		src, err = lexbridge.NewSource(in, opts.format)
		if err != nil {
			term.Eprintf("lextest: %v\n", err)
			return 1
		}
	}

	// Lines go straight to stdout as they are produced; with --golden a copy
	// is kept for the comparison after the run.
	var golden bytes.Buffer
	w := term.Stdout
	if opts.golden != "" {
		w = io.MultiWriter(term.Stdout, &golden)
	}

	d := lexdump.New(w)
	var cov *lexbridge.Coverage
	if opts.stats {
		cov = lexbridge.NewCoverage()
		d.OnToken = cov.Tally
	}

	res, runErr := d.Run(identity, src)
	if runErr != nil {
		var dg diag.Diagnostic
		if errors.As(runErr, &dg) && dg.Pos.Line > 0 {
			dg.File = identity
			term.Debugf("%v", runErr)
			term.Eprintf("lextest: %v\n", dg)
			return 1
		}
		term.Eprintf("lextest: %s: %v\n", identity, runErr)
		return 1
	}
	if p, ok := src.(*lexbridge.Process); ok {
		if err := p.Close(); err != nil {
			term.Eprintf("lextest: %v\n", err)
			return 1
		}
	}
	if res.LexError != nil {
		term.Debugf("lexical error on line %d; exit status stays 0", res.LexError.Line)
	}

	if cov != nil {
		term.Eprintf("%s", cov.RenderReport())
	}

	if opts.golden != "" {
		diff, err := lexbridge.Golden(golden.String(), opts.golden)
		if err != nil {
			term.Eprintf("lextest: %v\n", err)
			return 1
		}
		if diff != "" {
			term.Eprintf("%s", diff)
			return 1
		}
		term.Debugf("output matches %s", opts.golden)
	}
	return 0
}

// interruptible makes SIGINT cancel ctx, which kills the external lexer.
// Without a lexer nothing reads ctx, so SIGINT keeps its default behaviour.
func interruptible(ctx context.Context, lexer string) (context.Context, context.CancelFunc) {
	if lexer == "" {
		return ctx, func() {}
	}
	return signal.NotifyContext(ctx, os.Interrupt)
}
