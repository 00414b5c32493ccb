package cli

import (
	"errors"
	"io"

	"github.com/chzyer/readline"
	"github.com/sandevgo/replkit/internal/service/repl"
)

type lineEditor interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Stdout() io.Writer
	Close() error
}

// ReadLine is a terminal line source with in-place prompt and line editing.
// History is kept in memory only.
type ReadLine struct {
	rl lineEditor
}

// NewReadLine creates a terminal source. Nil stdin and stdout fall back to the
// process standard streams.
func NewReadLine(stdin io.ReadCloser, stdout io.Writer) (*ReadLine, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           stdin,
		Stdout:          stdout,
	})
	if err != nil {
		return nil, err
	}
	return &ReadLine{rl: rl}, nil
}

// ReadLine returns io.EOF on Ctrl+D, and on Ctrl+C over an empty line.
// Ctrl+C with text discards the line.
func (r *ReadLine) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return "", io.EOF
			}
			return "", nil
		}
		return "", err
	}
	return line, nil
}

func (r *ReadLine) SetPrompt(prompt string) {
	r.rl.SetPrompt(prompt)
}

// Stdout is the writer that keeps output from clobbering the prompt line.
func (r *ReadLine) Stdout() io.Writer {
	return r.rl.Stdout()
}

func (r *ReadLine) Close() error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

// IsTerminal reports whether fd is attached to a terminal.
func IsTerminal(fd uintptr) bool {
	return readline.IsTerminal(int(fd))
}

var (
	_ repl.LineSource = (*ReadLine)(nil)
	_ repl.Prompter   = (*ReadLine)(nil)
)
