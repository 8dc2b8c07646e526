package lexbridge

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/coolc/lextest/compiler/internal/diag"
	"github.com/coolc/lextest/compiler/internal/term"
	"github.com/coolc/lextest/compiler/internal/token"
)

// Row mirrors the NDJSON schema external COOL scanners emit.
// Example rows:
//
//	{"kind":"OBJECTID","line":3,"text":"main"}
//	{"kind":"BOOL_CONST","line":7,"bool":false}
//	{"kind":"'{'","line":1}
//	{"code":999,"line":9}
//	{"kind":"ERROR","line":5,"text":"unterminated string"}
//
// A missing "text" is an absent payload. "code" wins over "kind" and may
// name codes this tool does not know.
type Row struct {
	Kind string  `json:"kind,omitempty"`
	Code *int    `json:"code,omitempty"`
	Line int     `json:"line"`
	Text *string `json:"text,omitempty"`
	Bool *bool   `json:"bool,omitempty"`
}

// Token converts a decoded row into a token. row is the 1-based input line
// used in diagnostics.
func (r Row) Token(row int) (token.Token, error) {
	pos := diag.Pos{Line: row}
	if r.Line < 0 {
		return token.Token{}, diag.New("ndjson", "bad_line", pos, strconv.Itoa(r.Line))
	}

	var code token.Code
	switch {
	case r.Code != nil:
		code = token.Code(*r.Code)
	case r.Kind == "":
		return token.Token{}, diag.New("ndjson", "no_kind", pos, "")
	default:
		c, ok := token.LookupName(r.Kind)
		if !ok {
			d := diag.New("ndjson", "unknown_kind", pos, strconv.Quote(r.Kind))
			if s := token.Suggest(r.Kind, 1); len(s) > 0 {
				d.Help = "did you mean " + s[0] + "?"
			}
			return token.Token{}, d
		}
		code = c
	}

	tok := token.Token{Code: code, Line: r.Line}
	switch k := token.PayloadKind(code); k {
	case token.BoolValue:
		b := r.Bool != nil && *r.Bool
		if r.Bool == nil && r.Text != nil {
			b = strings.EqualFold(*r.Text, "true")
		}
		tok.Value = token.Bool(b)
	case token.SymbolValue:
		if r.Text != nil {
			tok.Value = token.Symbol(*r.Text)
		} else {
			tok.Value = token.Absent(k)
		}
	case token.MessageValue:
		if r.Text != nil {
			tok.Value = token.Message(*r.Text)
		} else {
			tok.Value = token.Absent(k)
		}
	}
	return tok, nil
}

// NDJSONSource decodes one row per Next call, so nothing past the row that
// stops a dump is read.
type NDJSONSource struct {
	sc       *bufio.Scanner
	row      int
	lastLine int
}

// NewNDJSONSource returns a token source reading NDJSON rows from r.
func NewNDJSONSource(r io.Reader) *NDJSONSource {
	sc := bufio.NewScanner(r)
	// 64 KiB initial, up to 8 MiB for long string constants.
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)
	return &NDJSONSource{sc: sc}
}

// Next returns the next token; at end of input it returns EOF.
func (s *NDJSONSource) Next() (token.Token, error) {
	for s.sc.Scan() {
		s.row++
		raw := strings.TrimSpace(s.sc.Text())
		// Be tolerant of a BOM on any line (most importantly line 1).
		raw = strings.TrimPrefix(raw, "\ufeff")
		if raw == "" {
			continue
		}
		var r Row
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			return token.Token{}, diag.New("ndjson", "bad_json", diag.Pos{Line: s.row}, err.Error())
		}
		term.Dump("ndjson row "+strconv.Itoa(s.row), r)
		tok, err := r.Token(s.row)
		if err != nil {
			return token.Token{}, err
		}
		if tok.Code != token.EOF {
			s.lastLine = tok.Line
		}
		return tok, nil
	}
	if err := s.sc.Err(); err != nil {
		return token.Token{}, err
	}
	return token.Token{Code: token.EOF, Line: s.lastLine}, nil
}
