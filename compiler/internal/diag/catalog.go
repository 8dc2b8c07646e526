package diag

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed codes.json
var codesJSON []byte

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `json:"id"`    // e.g., "LT0101"
	Title string `json:"title"` // short human title e.g., "unknown token kind"
	Help  string `json:"help"`  // optional default help text
}

// Registry is the top-level catalog format, one section per token stream
// format plus the external lexer bridge.
type Registry struct {
	NDJSON map[string]CodeEntry `json:"ndjson"`
	Raw    map[string]CodeEntry `json:"raw"`
	Bridge map[string]CodeEntry `json:"bridge"`
}

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesJSON) == 0 {
			regErr = nil // empty catalog is allowed
			return
		}
		regErr = json.Unmarshal(codesJSON, &reg)
	})
	return regErr
}

// Lookup returns a code entry by (domain, key).
// Domain should be one of: "ndjson", "raw", "bridge".
func Lookup(domain, key string) (CodeEntry, bool) {
	if err := load(); err != nil {
		return CodeEntry{}, false
	}
	var m map[string]CodeEntry
	switch domain {
	case "ndjson":
		m = reg.NDJSON
	case "raw":
		m = reg.Raw
	case "bridge":
		m = reg.Bridge
	}
	ce, ok := m[key]
	return ce, ok
}

// MustLookup returns an entry if found; otherwise a synthesized placeholder
// with the provided defaultID and title.
func MustLookup(domain, key, defaultID, defaultTitle string) CodeEntry {
	if ce, ok := Lookup(domain, key); ok {
		return ce
	}
	return CodeEntry{ID: defaultID, Title: defaultTitle}
}
