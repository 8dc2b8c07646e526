package term

import (
	"fmt"
	"io"
	"os"
)

// Stdout and Stderr are the streams the helpers write to. The driver swaps
// them in tests.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Verbose enables Debugf output.
var Verbose bool

// Stderr print helpers that ignore (n, err) to satisfy linters.
func Eprintf(format string, a ...any) { _, _ = fmt.Fprintf(Stderr, format, a...) }
func Eprintln(a ...any)               { _, _ = fmt.Fprintln(Stderr, a...) }

// Debugf writes a "[debug]" prefixed line to Stderr when Verbose is set.
func Debugf(format string, a ...any) {
	if !Verbose {
		return
	}
	_, _ = fmt.Fprintf(Stderr, "[debug] "+format+"\n", a...)
}
