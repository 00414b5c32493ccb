package repl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/sandevgo/replkit/internal/service/command"
	"github.com/sandevgo/replkit/pkg/args"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrHandlerPanic   = errors.New("command handler panicked")
)

type OutcomeKind int

const (
	// OutcomeSkipped means the line was blank and nothing ran.
	OutcomeSkipped OutcomeKind = iota
	OutcomeHandled
	OutcomeUnknownCommand
	OutcomeHandlerFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeHandled:
		return "handled"
	case OutcomeUnknownCommand:
		return "unknown_command"
	case OutcomeHandlerFailed:
		return "handler_failed"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome describes what happened to a single dispatched line. None of the
// kinds end the session.
type Outcome struct {
	Kind OutcomeKind
	Word string
	Err  error
}

// Dispatch resolves the command word of line and runs its handler. It writes
// nothing to the output; reporting is left to the caller.
func (i *Interpreter) Dispatch(ctx context.Context, line string) Outcome {
	word, rest, ok := splitLine(line)
	if !ok {
		return Outcome{Kind: OutcomeSkipped}
	}

	i.logger.Debug().Str("line", line).Msg("execute")

	cmd, found := i.registry.Resolve(word)
	if !found {
		return Outcome{
			Kind: OutcomeUnknownCommand,
			Word: word,
			Err:  fmt.Errorf("%w: %s", ErrUnknownCommand, word),
		}
	}

	if err := call(ctx, cmd, args.New(rest)); err != nil {
		return Outcome{Kind: OutcomeHandlerFailed, Word: word, Err: err}
	}
	return Outcome{Kind: OutcomeHandled, Word: word}
}

// Execute dispatches line and reports unknown commands and handler failures
// on the output. The returned error is non-nil only when reporting fails.
func (i *Interpreter) Execute(ctx context.Context, line string) error {
	outcome := i.Dispatch(ctx, line)

	switch outcome.Kind {
	case OutcomeUnknownCommand:
		i.logger.Warn().Str("word", outcome.Word).Msg("unknown command")
		return i.Println("Unknown command: " + outcome.Word)
	case OutcomeHandlerFailed:
		i.logger.Error().Err(outcome.Err).Str("word", outcome.Word).Msg("command failed")
		return i.Println(fmt.Sprintf("Error: %v", outcome.Err))
	}
	return nil
}

func call(ctx context.Context, cmd *command.Command, a *args.Args) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()
	return cmd.Call(ctx, a)
}

// splitLine returns the leading token and the text after the whitespace run
// that follows it. ok is false for blank lines.
func splitLine(line string) (word, rest string, ok bool) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	if line == "" {
		return "", "", false
	}

	end := strings.IndexFunc(line, unicode.IsSpace)
	if end < 0 {
		return line, "", true
	}
	return line[:end], strings.TrimLeftFunc(line[end:], unicode.IsSpace), true
}
