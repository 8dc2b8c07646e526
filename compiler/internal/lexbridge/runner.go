package lexbridge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/coolc/lextest/compiler/internal/diag"
	"github.com/coolc/lextest/compiler/internal/term"
	"github.com/coolc/lextest/compiler/internal/token"
)

const waitDelay = 2 * time.Second

// Process is a running external lexer whose stdout is the token stream.
// It satisfies token.Source; Close must always be called.
type Process struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	pipe   *eofReader
	stderr bytes.Buffer
	src    token.Source

	done   bool // EOF was decoded
	closed bool
}

// Start launches the lexer command line (split on whitespace). When
// inputPath is non-empty it is appended as the last argument; otherwise
// stdin is piped to the child.
func Start(ctx context.Context, command, inputPath string, stdin io.Reader, f Format) (*Process, error) {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return nil, bridgeError("empty_command", "", ErrEmptyCommand)
	}
	if inputPath != "" {
		argv = append(argv, inputPath)
	}

	p := &Process{}
	p.cmd = exec.CommandContext(ctx, argv[0], argv[1:]...)
	if inputPath == "" {
		p.cmd.Stdin = stdin
	}
	p.cmd.Stderr = &p.stderr
	// Grandchildren may keep stderr open after a kill.
	p.cmd.WaitDelay = waitDelay

	out, err := p.cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	p.stdout = out
	p.pipe = &eofReader{r: out}

	src, err := NewSource(p.pipe, f)
	if err != nil {
		return nil, err
	}
	p.src = src

	term.Debugf("exec %s", strings.Join(argv, " "))
	if err := p.cmd.Start(); err != nil {
		return nil, bridgeError("lexer_failed", err.Error(), ErrLexerFailed)
	}
	return p, nil
}

// Next returns the next decoded token from the child's stdout.
func (p *Process) Next() (token.Token, error) {
	tok, err := p.src.Next()
	if err == nil && tok.Code == token.EOF {
		p.done = true
	}
	return tok, err
}

// Close releases the child. If the stream was consumed to the end of the
// pipe, a non-zero exit is reported as ErrLexerFailed with the tail of the
// child's stderr. If reading stopped early (a lexical ERROR, or an EOF row
// with output still pending), the child is killed and its exit status
// ignored.
func (p *Process) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	if !p.done || !p.pipe.eof {
		_ = p.cmd.Process.Kill()
		_ = p.stdout.Close()
		_ = p.cmd.Wait()
		return nil
	}

	err := p.cmd.Wait()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		detail := fmt.Sprintf("exit %d", exitErr.ExitCode())
		if tail := stderrTail(p.stderr.String(), 5); tail != "" {
			detail += ": " + tail
		}
		return bridgeError("lexer_failed", detail, ErrLexerFailed)
	}
	return bridgeError("lexer_failed", err.Error(), ErrLexerFailed)
}

func bridgeError(key, detail string, cause error) error {
	d := diag.New("bridge", key, diag.Pos{}, detail)
	d.Err = cause
	return d
}

// eofReader records whether the child's stdout reached end of file.
type eofReader struct {
	r   io.Reader
	eof bool
}

func (e *eofReader) Read(b []byte) (int, error) {
	n, err := e.r.Read(b)
	if err == io.EOF {
		e.eof = true
	}
	return n, err
}

func stderrTail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, " | "))
}
