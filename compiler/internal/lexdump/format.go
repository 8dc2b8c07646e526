// Package lexdump renders a COOL token stream as the line-oriented text used
// by lexer golden tests:
//
//	#name "hello.cl"
//	#1 CLASS
//	#1 TYPEID Main
//	#1 '{'    (ends in a space)
//
// Single-character lines keep that trailing space; downstream tools diff
// against this output byte for byte.
package lexdump

import (
	"strconv"
	"strings"

	"github.com/coolc/lextest/compiler/internal/term"
	"github.com/coolc/lextest/compiler/internal/token"
)

// ruleKind selects how the text after "#<line> " is produced.
type ruleKind int

const (
	ruleName    ruleKind = iota // NAME
	ruleBool                    // NAME true|false
	rulePayload                 // NAME text, or NAME <placeholder>
	ruleChar                    // 'c' + trailing space
)

type rule struct {
	kind    ruleKind
	name    string
	missing string // placeholder for an absent payload
	stop    bool   // stop the run after this token
}

var rules = buildRules()

func buildRules() map[token.Code]rule {
	r := map[token.Code]rule{}
	for _, c := range []token.Code{
		token.CLASS, token.ELSE, token.FI, token.IF, token.IN, token.INHERITS,
		token.ISVOID, token.LET, token.LOOP, token.POOL, token.THEN, token.WHILE,
		token.CASE, token.ESAC, token.NEW, token.OF, token.NOT,
		token.DARROW, token.ASSIGN, token.LE,
	} {
		r[c] = rule{kind: ruleName, name: c.String()}
	}
	r[token.BOOL_CONST] = rule{kind: ruleBool, name: "BOOL_CONST"}
	for _, c := range []token.Code{token.TYPEID, token.OBJECTID, token.INT_CONST, token.STR_CONST} {
		r[c] = rule{kind: rulePayload, name: c.String(), missing: "<null>"}
	}
	r[token.ERROR] = rule{kind: rulePayload, name: "ERROR", missing: "<unknown>", stop: true}
	for _, ch := range "+-*/~<=.@,;:(){}" {
		r[token.Code(ch)] = rule{kind: ruleChar, name: string(ch)}
	}
	return r
}

// Header returns the first line of every dump.
func Header(identity string) string {
	return "#name \"" + identity + "\"\n"
}

// Format renders one token as a newline-terminated line and reports whether
// the run continues. EOF yields no line and stops; ERROR yields its line and
// stops. Unrecognized codes are printed as UNKNOWN_TOKEN and do not stop.
func Format(tok token.Token) (string, bool) {
	if tok.Code == token.EOF {
		return "", false
	}

	var b strings.Builder
	b.WriteByte('#')
	b.WriteString(strconv.Itoa(tok.Line))
	b.WriteByte(' ')

	r, ok := rules[tok.Code]
	if !ok {
		term.Bprintf(&b, "UNKNOWN_TOKEN %d\n", int(tok.Code))
		return b.String(), true
	}

	switch r.kind {
	case ruleName:
		b.WriteString(r.name)
	case ruleBool:
		b.WriteString(r.name)
		b.WriteByte(' ')
		b.WriteString(strconv.FormatBool(tok.Value.Bool))
	case rulePayload:
		b.WriteString(r.name)
		b.WriteByte(' ')
		if s, ok := tok.Value.Get(); ok {
			b.WriteString(s)
		} else {
			b.WriteString(r.missing)
		}
	case ruleChar:
		b.WriteByte('\'')
		b.WriteString(r.name)
		b.WriteString("' ")
	}
	b.WriteByte('\n')
	return b.String(), !r.stop
}
