package lexbridge

import "errors"

var (
	// ErrLexerFailed is returned when the external lexer exits non-zero
	// before the token stream reached EOF.
	ErrLexerFailed = errors.New("external lexer failed")

	// ErrEmptyCommand is returned by Start for a blank lexer command line.
	ErrEmptyCommand = errors.New("empty lexer command")

	// ErrUnknownFormat is returned by NewSource for an unsupported stream format.
	ErrUnknownFormat = errors.New("unknown token stream format")
)
