package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sandevgo/replkit/internal/core"
	"github.com/sandevgo/replkit/internal/service/repl"
)

// Session runs an interpreter as a srv.Service.
type Session struct {
	interp   *repl.Interpreter
	src      repl.LineSource
	out      io.Writer
	greeting string
}

func NewSession(interp *repl.Interpreter, src repl.LineSource, out io.Writer) *Session {
	return &Session{interp: interp, src: src, out: out}
}

// NewStdSession picks a readline source when stdin is a terminal and line
// editing is enabled, and a plain stream source otherwise.
func NewStdSession(cfg core.AppConfig, interp *repl.Interpreter) (*Session, error) {
	if cfg.IsPlain() || !IsTerminal(os.Stdin.Fd()) {
		return NewSession(interp, repl.NewStreamSource(os.Stdin), os.Stdout), nil
	}

	rl, err := NewReadLine(nil, nil)
	if err != nil {
		return nil, err
	}
	return NewSession(interp, rl, rl.Stdout()), nil
}

// SetGreeting sets text written once before the first prompt.
func (s *Session) SetGreeting(text string) {
	s.greeting = text
}

func (s *Session) Start(ctx context.Context) error {
	if s.greeting != "" {
		if _, err := io.WriteString(s.out, s.greeting); err != nil {
			return fmt.Errorf("%w: greeting: %w", repl.ErrIO, err)
		}
	}
	return s.interp.StartSource(ctx, s.src, s.out)
}

func (s *Session) Shutdown(ctx context.Context) error {
	return s.interp.Stop()
}
