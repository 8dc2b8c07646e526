package token

// SliceSource replays a fixed token slice. Once exhausted it yields EOF.
type SliceSource struct {
	toks []Token
	i    int
}

// NewSliceSource returns a new source over the given tokens.
func NewSliceSource(toks []Token) *SliceSource {
	return &SliceSource{toks: toks}
}

// Next returns the next token and advances. If exhausted, returns an EOF token.
func (s *SliceSource) Next() (Token, error) {
	if s.i < len(s.toks) {
		t := s.toks[s.i]
		s.i++
		return t, nil
	}
	return Token{Code: EOF}, nil
}

// Pulled reports how many tokens have been handed out so far.
func (s *SliceSource) Pulled() int { return s.i }
