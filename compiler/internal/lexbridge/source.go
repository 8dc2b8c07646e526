package lexbridge

import (
	"fmt"
	"io"

	"github.com/coolc/lextest/compiler/internal/token"
)

// Format names a token stream encoding.
type Format string

const (
	FormatNDJSON Format = "ndjson"
	FormatRaw    Format = "raw"
)

// NewSource returns a token source decoding r in the given format.
func NewSource(r io.Reader, f Format) (token.Source, error) {
	switch f {
	case FormatNDJSON, "":
		return NewNDJSONSource(r), nil
	case FormatRaw:
		return NewRawSource(r), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
