package lexbridge

import (
	"sort"
	"strings"

	"github.com/coolc/lextest/compiler/internal/term"
	"github.com/coolc/lextest/compiler/internal/token"
)

// Coverage tallies which token kinds a dump produced.
type Coverage struct {
	// tokens per recognized code
	Kinds map[token.Code]int
	// unrecognized codes (printed as UNKNOWN_TOKEN)
	Unknown map[token.Code]int

	Total  int
	Errors int
	// tokens whose payload was absent (<null>/<unknown>)
	Absent int
}

// NewCoverage initializes coverage counters.
func NewCoverage() *Coverage {
	return &Coverage{
		Kinds:   map[token.Code]int{},
		Unknown: map[token.Code]int{},
	}
}

// Tally updates coverage with one token. It has the signature of
// lexdump.Dumper.OnToken.
func (c *Coverage) Tally(t token.Token) {
	c.Total++
	if !t.Code.Known() {
		c.Unknown[t.Code]++
		return
	}
	c.Kinds[t.Code]++
	if t.Code == token.ERROR {
		c.Errors++
	}
	if k := token.PayloadKind(t.Code); k == token.SymbolValue || k == token.MessageValue {
		if _, ok := t.Value.Get(); !ok {
			c.Absent++
		}
	}
}

// RenderReport returns a small human-readable summary.
func (c *Coverage) RenderReport() string {
	var b strings.Builder
	term.Bprintf(&b, "tokens: %d\n", c.Total)
	term.Bprintf(&b, "distinct kinds seen: %d/%d\n", len(c.Kinds), len(token.Codes()))
	if c.Errors > 0 {
		term.Bprintf(&b, "errors: %d\n", c.Errors)
	}
	if c.Absent > 0 {
		term.Bprintf(&b, "absent payloads: %d\n", c.Absent)
	}
	if len(c.Kinds) > 0 {
		codes := make([]token.Code, 0, len(c.Kinds))
		for k := range c.Kinds {
			codes = append(codes, k)
		}
		sort.Slice(codes, func(i, j int) bool {
			if c.Kinds[codes[i]] != c.Kinds[codes[j]] {
				return c.Kinds[codes[i]] > c.Kinds[codes[j]]
			}
			return codes[i] < codes[j]
		})
		for _, k := range codes {
			term.Bprintf(&b, "  %-10s %d\n", k, c.Kinds[k])
		}
	}
	if len(c.Unknown) > 0 {
		codes := make([]token.Code, 0, len(c.Unknown))
		for k := range c.Unknown {
			codes = append(codes, k)
		}
		sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
		parts := make([]string, len(codes))
		for i, k := range codes {
			parts[i] = k.String()
		}
		term.Bprintf(&b, "unknown codes: %s\n", strings.Join(parts, ", "))
	}
	return b.String()
}
