package lexbridge

import (
	"fmt"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Golden compares a dump against the expected text in path. It returns an
// empty string when they are byte-identical, otherwise a unified diff with
// trailing spaces made visible as '·'.
func Golden(got, path string) (string, error) {
	want, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read golden: %w", err)
	}
	return DiffText(string(want), got, path, "output"), nil
}

// DiffText returns a unified diff from want to got, or "" if equal.
func DiffText(want, got, fromName, toName string) string {
	if want == got {
		return ""
	}
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(showTrailing(want)),
		B:        difflib.SplitLines(showTrailing(got)),
		FromFile: fromName,
		ToFile:   toName,
		Context:  3,
	}
	s, err := difflib.GetUnifiedDiffString(ud)
	if err != nil || s == "" {
		// Only a missing final newline differs.
		return fmt.Sprintf("--- %s\n+++ %s\n(final newline differs)\n", fromName, toName)
	}
	return s
}

// showTrailing marks trailing spaces, which the single-character token
// lines depend on and which a plain diff hides.
func showTrailing(s string) string {
	lines := strings.SplitAfter(s, "\n")
	for i, l := range lines {
		body := strings.TrimSuffix(l, "\n")
		trimmed := strings.TrimRight(body, " ")
		if n := len(body) - len(trimmed); n > 0 {
			lines[i] = trimmed + strings.Repeat("·", n) + l[len(body):]
		}
	}
	return strings.Join(lines, "")
}
