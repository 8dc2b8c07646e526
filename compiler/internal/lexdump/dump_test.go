package lexdump

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coolc/lextest/compiler/internal/token"
)

func tok(c token.Code, line int) token.Token { return token.Token{Code: c, Line: line} }

func sym(c token.Code, line int, s string) token.Token {
	return token.Token{Code: c, Line: line, Value: token.Symbol(s)}
}

func dump(t *testing.T, identity string, toks ...token.Token) (string, Result, *token.SliceSource) {
	t.Helper()
	src := token.NewSliceSource(toks)
	var buf bytes.Buffer
	res, err := Dump(&buf, identity, src)
	require.NoError(t, err)
	return buf.String(), res, src
}

func TestFormatTable(t *testing.T) {
	cases := []struct {
		name string
		tok  token.Token
		want string
		cont bool
	}{
		{"keyword", tok(token.INHERITS, 4), "#4 INHERITS\n", true},
		{"not", tok(token.NOT, 1), "#1 NOT\n", true},
		{"darrow", tok(token.DARROW, 2), "#2 DARROW\n", true},
		{"assign", tok(token.ASSIGN, 2), "#2 ASSIGN\n", true},
		{"le", tok(token.LE, 2), "#2 LE\n", true},
		{"bool true", token.Token{Code: token.BOOL_CONST, Line: 3, Value: token.Bool(true)}, "#3 BOOL_CONST true\n", true},
		{"bool false", token.Token{Code: token.BOOL_CONST, Line: 7, Value: token.Bool(false)}, "#7 BOOL_CONST false\n", true},
		{"typeid", sym(token.TYPEID, 1, "Main"), "#1 TYPEID Main\n", true},
		{"objectid", sym(token.OBJECTID, 1, "x"), "#1 OBJECTID x\n", true},
		{"int", sym(token.INT_CONST, 3, "42"), "#3 INT_CONST 42\n", true},
		{"string", sym(token.STR_CONST, 9, `hello\n`), "#9 STR_CONST hello\\n\n", true},
		{"null symbol", token.Token{Code: token.STR_CONST, Line: 2, Value: token.Absent(token.SymbolValue)}, "#2 STR_CONST <null>\n", true},
		{"null typeid zero value", tok(token.TYPEID, 2), "#2 TYPEID <null>\n", true},
		{"error", token.Token{Code: token.ERROR, Line: 5, Value: token.Message("unterminated string")}, "#5 ERROR unterminated string\n", false},
		{"error without message", tok(token.ERROR, 5), "#5 ERROR <unknown>\n", false},
		{"lbrace", tok(token.LBrace, 1), "#1 '{' \n", true},
		{"tilde", tok(token.Tilde, 6), "#6 '~' \n", true},
		{"unknown", tok(token.Code(999), 9), "#9 UNKNOWN_TOKEN 999\n", true},
		{"unknown ascii", tok(token.Code('#'), 9), "#9 UNKNOWN_TOKEN 35\n", true},
		{"negative", tok(token.Code(-1), 0), "#0 UNKNOWN_TOKEN -1\n", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, cont := Format(tc.tok)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.cont, cont)
		})
	}
}

func TestFormatEOF(t *testing.T) {
	line, cont := Format(tok(token.EOF, 12))
	assert.Empty(t, line)
	assert.False(t, cont)
}

func TestEveryKnownCodeHasARule(t *testing.T) {
	for _, c := range token.Codes() {
		line, _ := Format(tok(c, 1))
		assert.NotContains(t, line, "UNKNOWN_TOKEN", "code %s", c)
	}
}

func TestSingleCharTrailingSpace(t *testing.T) {
	for _, c := range token.Codes() {
		if !c.IsSingleChar() {
			continue
		}
		line, _ := Format(tok(c, 1))
		assert.True(t, strings.HasSuffix(line, "' \n"), "line %q", line)
		assert.Equal(t, "#1 '"+string(rune(c))+"' \n", line)
	}
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "#name \"(stdin)\"\n", Header("(stdin)"))
	assert.Equal(t, "#name \"tests/hello.cl\"\n", Header("tests/hello.cl"))
}

func TestDumpClassMain(t *testing.T) {
	out, res, _ := dump(t, "(stdin)",
		tok(token.CLASS, 1),
		sym(token.OBJECTID, 1, "Main"),
		tok(token.LBrace, 1),
		tok(token.RBrace, 2),
	)
	want := "#name \"(stdin)\"\n" +
		"#1 CLASS\n" +
		"#1 OBJECTID Main\n" +
		"#1 '{' \n" +
		"#2 '}' \n"
	assert.Equal(t, want, out)
	assert.Equal(t, 4, res.Lines)
	assert.True(t, res.EndOfData)
	assert.Nil(t, res.LexError)
}

func TestDumpStopsAtFirstError(t *testing.T) {
	out, res, src := dump(t, "bad.cl",
		sym(token.INT_CONST, 3, "42"),
		token.Token{Code: token.ERROR, Line: 5, Value: token.Message("unterminated string")},
		tok(token.CLASS, 6),
		token.Token{Code: token.ERROR, Line: 7, Value: token.Message("EOF in comment")},
	)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "#3 INT_CONST 42", lines[1])
	assert.Equal(t, "#5 ERROR unterminated string", lines[2])

	assert.Equal(t, 2, src.Pulled(), "no token may be pulled after ERROR")
	require.NotNil(t, res.LexError)
	assert.Equal(t, 5, res.LexError.Line)
	assert.False(t, res.EndOfData)
}

func TestDumpUnknownDoesNotStop(t *testing.T) {
	out, res, _ := dump(t, "x.cl", tok(token.Code(999), 9), tok(token.FI, 10))
	assert.Equal(t, "#name \"x.cl\"\n#9 UNKNOWN_TOKEN 999\n#10 FI\n", out)
	assert.Equal(t, 2, res.Lines)
}

func TestDumpEmptyStream(t *testing.T) {
	out, res, _ := dump(t, "(stdin)")
	assert.Equal(t, "#name \"(stdin)\"\n", out)
	assert.Zero(t, res.Lines)
	assert.True(t, res.EndOfData)
}

func TestDumpIsDeterministic(t *testing.T) {
	toks := []token.Token{
		tok(token.CLASS, 1), sym(token.TYPEID, 1, "A"), tok(token.INHERITS, 1),
		sym(token.TYPEID, 1, "IO"), tok(token.LBrace, 1), tok(token.RBrace, 3),
		tok(token.Semicolon, 3),
	}
	a, _, _ := dump(t, "a.cl", toks...)
	b, _, _ := dump(t, "a.cl", toks...)
	assert.Equal(t, a, b)
	assert.Equal(t, len(toks)+1, strings.Count(a, "\n"))
}

func TestDumpAtMostOneErrorLastLine(t *testing.T) {
	toks := []token.Token{
		tok(token.LET, 1),
		token.Token{Code: token.ERROR, Line: 1, Value: token.Message("Invalid character: #")},
		token.Token{Code: token.ERROR, Line: 2, Value: token.Message("again")},
	}
	out, _, _ := dump(t, "e.cl", toks...)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Equal(t, 1, strings.Count(out, " ERROR "))
	assert.Contains(t, lines[len(lines)-1], " ERROR ")
}

type failingSource struct{ n int }

func (f *failingSource) Next() (token.Token, error) {
	if f.n == 0 {
		f.n++
		return tok(token.IF, 1), nil
	}
	return token.Token{}, errors.New("pipe closed")
}

func TestDumpSourceFailure(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)
	res, err := d.Run("f.cl", &failingSource{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipe closed")
	assert.Equal(t, 1, res.Lines)
	assert.Equal(t, "#name \"f.cl\"\n#1 IF\n", buf.String())
	assert.Equal(t, Stopped, d.State())

	_, err = d.Run("f.cl", token.NewSliceSource(nil))
	assert.Error(t, err, "a stopped dumper cannot run again")
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestDumpWriteFailure(t *testing.T) {
	_, err := Dump(shortWriter{}, "w.cl", token.NewSliceSource([]token.Token{tok(token.IF, 1)}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestOnTokenSeesEveryPrintedToken(t *testing.T) {
	var seen []token.Code
	d := New(&bytes.Buffer{})
	d.OnToken = func(t token.Token) { seen = append(seen, t.Code) }
	_, err := d.Run("o.cl", token.NewSliceSource([]token.Token{
		tok(token.WHILE, 1), tok(token.LOOP, 1), tok(token.POOL, 2),
	}))
	require.NoError(t, err)
	assert.Equal(t, []token.Code{token.WHILE, token.LOOP, token.POOL}, seen)
}
