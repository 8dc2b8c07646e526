package diag

import "fmt"

// Pos marks a 1-based row (and optional column) in a token stream file.
type Pos struct{ Line, Col int }

// Diagnostic is a decode message with an optional position and a stable
// catalog code.
type Diagnostic struct {
	File string
	Pos  Pos
	Code string
	Msg  string
	Help string

	// Err is the underlying cause, if any; errors.Is sees through it.
	Err error
}

func (d Diagnostic) Unwrap() error { return d.Err }

func (d Diagnostic) Error() string {
	s := d.Msg
	if d.Code != "" {
		s = "[" + d.Code + "] " + s
	}
	if d.Pos.Line > 0 {
		if d.Pos.Col > 0 {
			s = fmt.Sprintf("%d:%d: %s", d.Pos.Line, d.Pos.Col, s)
		} else {
			s = fmt.Sprintf("%d: %s", d.Pos.Line, s)
		}
	}
	if d.File != "" {
		s = d.File + ":" + s
	}
	if d.Help != "" {
		s += " (" + d.Help + ")"
	}
	return s
}

// New builds a diagnostic for a catalog key, filling Code and a default
// message from the catalog. detail, when non-empty, replaces the title.
func New(domain, key string, pos Pos, detail string) Diagnostic {
	ce := MustLookup(domain, key, "LT0000", key)
	msg := ce.Title
	if detail != "" {
		msg = ce.Title + ": " + detail
	}
	return Diagnostic{Pos: pos, Code: ce.ID, Msg: msg, Help: ce.Help}
}
