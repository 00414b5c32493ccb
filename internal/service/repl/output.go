package repl

import (
	"context"
	"fmt"
	"io"
)

func (i *Interpreter) Print(v any) error {
	return i.write(fmt.Sprint(v))
}

func (i *Interpreter) Println(v any) error {
	return i.write(fmt.Sprintln(v))
}

func (i *Interpreter) Printf(format string, v ...any) error {
	return i.write(fmt.Sprintf(format, v...))
}

func (i *Interpreter) write(s string) error {
	w := i.sink()
	if w == nil {
		return ErrNotStarted
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("%w: write: %w", ErrIO, err)
	}
	i.logger.Debug().Str("text", s).Msg("print")
	return nil
}

// Writer returns the output sink, waiting for the first Start to supply one.
func (i *Interpreter) Writer(ctx context.Context) (io.Writer, error) {
	select {
	case <-i.ready:
		return i.sink(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
