package lexdump

import (
	"fmt"
	"io"

	"github.com/coolc/lextest/compiler/internal/term"
	"github.com/coolc/lextest/compiler/internal/token"
)

// State is the control state of a dump run.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// Result summarises a finished run.
type Result struct {
	Lines     int          // token lines written, header excluded
	LexError  *token.Token // the ERROR token that stopped the run, if any
	EndOfData bool         // the source reached EOF
}

// Dumper pulls tokens from a source and writes one line per token.
type Dumper struct {
	w     io.Writer
	state State

	// OnToken, if set, sees every token that produced a line.
	OnToken func(token.Token)
}

// New returns a Dumper writing to w.
func New(w io.Writer) *Dumper {
	return &Dumper{w: w}
}

// State reports whether the dumper can still pull tokens.
func (d *Dumper) State() State { return d.state }

// Run writes the header for identity, then pulls from src until EOF or
// the first ERROR token. Nothing is pulled after the dumper stops. A
// lexical error is reported in Result, not as an error; a non-nil error
// means the source or the writer failed and the output is incomplete.
func (d *Dumper) Run(identity string, src token.Source) (Result, error) {
	var res Result
	if d.state == Stopped {
		return res, fmt.Errorf("lexdump: run on a stopped dumper")
	}
	if _, err := io.WriteString(d.w, Header(identity)); err != nil {
		d.state = Stopped
		return res, fmt.Errorf("write header: %w", err)
	}

	for d.state == Running {
		tok, err := src.Next()
		if err != nil {
			d.state = Stopped
			return res, fmt.Errorf("after %d token(s): %w", res.Lines, err)
		}
		line, cont := Format(tok)
		if !cont {
			d.state = Stopped
		}
		if tok.Code == token.EOF {
			res.EndOfData = true
			break
		}
		if _, err := io.WriteString(d.w, line); err != nil {
			d.state = Stopped
			return res, fmt.Errorf("write line %d: %w", res.Lines+1, err)
		}
		res.Lines++
		if d.OnToken != nil {
			d.OnToken(tok)
		}
		if tok.Code == token.ERROR {
			t := tok
			res.LexError = &t
			term.Debugf("stopping at ERROR on line %d", tok.Line)
		}
	}
	term.Debugf("dump %q: %d line(s), state %s", identity, res.Lines, d.state)
	return res, nil
}

// Dump is a one-shot Run with a fresh Dumper.
func Dump(w io.Writer, identity string, src token.Source) (Result, error) {
	return New(w).Run(identity, src)
}
