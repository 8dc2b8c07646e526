package token

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

var byName = func() map[string]Code {
	m := make(map[string]Code, len(names)+16)
	for c, n := range names {
		m[n] = c
	}
	return m
}()

// LookupName maps a kind name as written by external scanners to a Code.
// Accepted forms: "OBJECTID", "EOF", "'{'" and a bare "{".
func LookupName(s string) (Code, bool) {
	if s == "EOF" {
		return EOF, true
	}
	if c, ok := byName[s]; ok {
		return c, true
	}
	if len(s) == 3 && s[0] == '\'' && s[2] == '\'' {
		s = s[1:2]
	}
	if len(s) == 1 {
		if c := Code(s[0]); c.IsSingleChar() {
			return c, true
		}
	}
	return 0, false
}

// Suggest returns up to max known kind names close to s, best first.
// Subsequence matches rank ahead of plain edit-distance neighbours.
func Suggest(s string, max int) []string {
	if s == "" || max <= 0 {
		return nil
	}
	all := make([]string, 0, len(byName))
	for n := range byName {
		all = append(all, n)
	}
	sort.Strings(all)

	ranks := fuzzy.RankFindNormalizedFold(s, all)
	sort.Sort(ranks)
	var out []string
	seen := map[string]bool{}
	for _, r := range ranks {
		if len(out) == max {
			return out
		}
		out = append(out, r.Target)
		seen[r.Target] = true
	}

	type cand struct {
		name string
		dist int
	}
	var cands []cand
	up := strings.ToUpper(s)
	for _, n := range all {
		if seen[n] {
			continue
		}
		d := fuzzy.LevenshteinDistance(up, n)
		if d <= 2 {
			cands = append(cands, cand{n, d})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })
	for _, c := range cands {
		if len(out) == max {
			break
		}
		out = append(out, c.name)
	}
	return out
}
