package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sandevgo/replkit/pkg/args"
)

// Scan prompts and reads the next line from the running session's input.
// It is meant to be called from inside a command handler.
func (i *Interpreter) Scan(prompt string) (*args.Args, error) {
	src := i.source()
	if src == nil || !i.Running() {
		return nil, ErrNotStarted
	}

	if p, ok := src.(Prompter); ok {
		p.SetPrompt(prompt)
	} else if prompt != "" {
		if err := i.write(prompt); err != nil {
			return nil, err
		}
	}

	line, err := src.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: read: %w", ErrIO, err)
	}
	return args.New(line), nil
}

// ScanArgs writes prompt to w, if both are set, and reads one line from r.
// It reads byte by byte so nothing past the newline is consumed, and it does
// not close r.
func ScanArgs(r io.Reader, w io.Writer, prompt string) (*args.Args, error) {
	if w != nil && prompt != "" {
		if _, err := io.WriteString(w, prompt); err != nil {
			return nil, fmt.Errorf("%w: write prompt: %w", ErrIO, err)
		}
	}

	line, err := readLine(r)
	if err != nil {
		return nil, err
	}
	return args.New(line), nil
}

func ScanString(r io.Reader, w io.Writer, prompt string) (string, error) {
	a, err := ScanArgs(r, w, prompt)
	if err != nil {
		return "", err
	}
	return a.String(), nil
}

func readLine(r io.Reader) (string, error) {
	var sb strings.Builder
	var b [1]byte
	for {
		n, err := r.Read(b[:])
		if n > 0 {
			if b[0] == '\n' {
				return trimEOL(sb.String()), nil
			}
			sb.WriteByte(b[0])
		}
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return trimEOL(sb.String()), nil
			}
			if errors.Is(err, io.EOF) {
				return "", io.EOF
			}
			return "", fmt.Errorf("%w: read: %w", ErrIO, err)
		}
	}
}
