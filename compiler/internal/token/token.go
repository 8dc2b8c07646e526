package token

import "strconv"

// Code identifies a COOL token kind. Values follow the classic cool-parse.h
// numbering; single-character tokens use their ASCII value.
type Code int

const (
	// Special
	EOF Code = 0

	// Keywords
	CLASS    Code = 258
	ELSE     Code = 259
	FI       Code = 260
	IF       Code = 261
	IN       Code = 262
	INHERITS Code = 263
	LET      Code = 264
	LOOP     Code = 265
	POOL     Code = 266
	THEN     Code = 267
	WHILE    Code = 268
	CASE     Code = 269
	ESAC     Code = 270
	OF       Code = 271
	DARROW   Code = 272 // =>
	NEW      Code = 273
	ISVOID   Code = 274

	// Literals/identifiers
	STR_CONST  Code = 275
	INT_CONST  Code = 276
	BOOL_CONST Code = 277
	TYPEID     Code = 278
	OBJECTID   Code = 279

	ASSIGN Code = 280 // <-
	NOT    Code = 281
	LE     Code = 282 // <=
	ERROR  Code = 283
)

// Single-character tokens are their own code.
const (
	Plus      Code = '+'
	Minus     Code = '-'
	Star      Code = '*'
	Slash     Code = '/'
	Tilde     Code = '~'
	Lt        Code = '<'
	Eq        Code = '='
	Dot       Code = '.'
	At        Code = '@'
	Comma     Code = ','
	Semicolon Code = ';'
	Colon     Code = ':'
	LParen    Code = '('
	RParen    Code = ')'
	LBrace    Code = '{'
	RBrace    Code = '}'
)

var names = map[Code]string{
	CLASS:      "CLASS",
	ELSE:       "ELSE",
	FI:         "FI",
	IF:         "IF",
	IN:         "IN",
	INHERITS:   "INHERITS",
	ISVOID:     "ISVOID",
	LET:        "LET",
	LOOP:       "LOOP",
	POOL:       "POOL",
	THEN:       "THEN",
	WHILE:      "WHILE",
	CASE:       "CASE",
	ESAC:       "ESAC",
	NEW:        "NEW",
	OF:         "OF",
	NOT:        "NOT",
	BOOL_CONST: "BOOL_CONST",
	TYPEID:     "TYPEID",
	OBJECTID:   "OBJECTID",
	INT_CONST:  "INT_CONST",
	STR_CONST:  "STR_CONST",
	ERROR:      "ERROR",
	DARROW:     "DARROW",
	ASSIGN:     "ASSIGN",
	LE:         "LE",
}

// IsSingleChar reports whether c is one of the punctuation/operator tokens
// spelled by a single character.
func (c Code) IsSingleChar() bool {
	switch c {
	case Plus, Minus, Star, Slash, Tilde, Lt, Eq, Dot, At,
		Comma, Semicolon, Colon, LParen, RParen, LBrace, RBrace:
		return true
	}
	return false
}

// Known reports whether c is a recognized, non-EOF token code.
func (c Code) Known() bool {
	if c.IsSingleChar() {
		return true
	}
	_, ok := names[c]
	return ok
}

// String returns the display name: "CLASS", "'{'", "EOF", or the decimal
// code for anything unrecognized.
func (c Code) String() string {
	if c == EOF {
		return "EOF"
	}
	if n, ok := names[c]; ok {
		return n
	}
	if c.IsSingleChar() {
		return "'" + string(rune(c)) + "'"
	}
	return strconv.Itoa(int(c))
}

// Codes returns every recognized code, named tokens first, in code order.
func Codes() []Code {
	out := make([]Code, 0, len(names)+16)
	for c := CLASS; c <= ERROR; c++ {
		if _, ok := names[c]; ok {
			out = append(out, c)
		}
	}
	for _, ch := range "+-*/~<=.@,;:(){}" {
		out = append(out, Code(ch))
	}
	return out
}

// Token is one scanned lexeme: code, 1-based line and payload.
type Token struct {
	Code  Code
	Line  int
	Value Value
}

// Source yields successive tokens. A token with Code EOF ends the stream.
// A non-nil error means the source itself failed (not a lexical ERROR token).
type Source interface {
	Next() (Token, error)
}
