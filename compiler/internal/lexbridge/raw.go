package lexbridge

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/coolc/lextest/compiler/internal/diag"
	"github.com/coolc/lextest/compiler/internal/token"
)

// RawSource reads the pipe-separated "KIND|TEXT|LINE" stream, one token per
// line. TEXT may be a Go-quoted string (needed for embedded '|' or
// newlines); an empty unquoted TEXT is an absent payload.
type RawSource struct {
	sc       *bufio.Scanner
	row      int
	lastLine int
}

// NewRawSource returns a token source reading raw rows from r.
func NewRawSource(r io.Reader) *RawSource {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)
	return &RawSource{sc: sc}
}

// Next returns the next token; at end of input it returns EOF.
func (s *RawSource) Next() (token.Token, error) {
	for s.sc.Scan() {
		s.row++
		raw := strings.TrimRight(s.sc.Text(), "\r")
		raw = strings.TrimPrefix(raw, "\ufeff")
		if strings.TrimSpace(raw) == "" {
			continue
		}
		tok, err := parseRawRow(raw, s.row)
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

func parseRawRow(raw string, row int) (token.Token, error) {
	pos := diag.Pos{Line: row}
	first := strings.IndexByte(raw, '|')
	last := strings.LastIndexByte(raw, '|')
	if first < 0 || first == last {
		return token.Token{}, diag.New("raw", "bad_fields", pos, raw)
	}
	kind, text, lineStr := raw[:first], raw[first+1:last], raw[last+1:]

	line, err := strconv.Atoi(strings.TrimSpace(lineStr))
	if err != nil || line < 0 {
		return token.Token{}, diag.New("raw", "bad_line", pos, lineStr)
	}

	var code token.Code
	if n, err := strconv.Atoi(kind); err == nil {
		code = token.Code(n)
	} else if c, ok := token.LookupName(kind); ok {
		code = c
	} else {
		d := diag.New("raw", "unknown_kind", pos, strconv.Quote(kind))
		if s := token.Suggest(kind, 1); len(s) > 0 {
			d.Help = "did you mean " + s[0] + "?"
		}
		return token.Token{}, d
	}

	present := text != ""
	if strings.HasPrefix(text, `"`) {
		if u, err := strconv.Unquote(text); err == nil {
			text = u
		}
	}

	tok := token.Token{Code: code, Line: line}
	switch k := token.PayloadKind(code); k {
	case token.BoolValue:
		tok.Value = token.Bool(strings.EqualFold(text, "true"))
	case token.SymbolValue:
		tok.Value = token.Absent(k)
		if present {
			tok.Value = token.Symbol(text)
		}
	case token.MessageValue:
		tok.Value = token.Absent(k)
		if present {
			tok.Value = token.Message(text)
		}
	}
	return tok, nil
}
