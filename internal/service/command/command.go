package command

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/sandevgo/replkit/pkg/args"
)

var (
	ErrInvalidCommandWord = errors.New("invalid command word")
	ErrMissingHandler     = errors.New("missing command handler")
)

var wordPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z_$0-9]*$`)

// Handler runs a command. A returned error is reported to the user and does
// not end the session.
type Handler func(ctx context.Context, a *args.Args) error

// Command binds a command word to its handler. It is immutable once built.
type Command struct {
	word        string
	description string
	handler     Handler
}

// NewCommand validates word and handler and returns a Command.
func NewCommand(word, description string, handler Handler) (*Command, error) {
	if err := validate(word, handler); err != nil {
		return nil, err
	}
	return &Command{
		word:        word,
		description: description,
		handler:     handler,
	}, nil
}

// ValidWord reports whether word is an identifier: a letter, '_' or '$'
// followed by letters, digits, '_' or '$'.
func ValidWord(word string) bool {
	return wordPattern.MatchString(word)
}

func validate(word string, handler Handler) error {
	if !ValidWord(word) {
		return fmt.Errorf("%w: %q", ErrInvalidCommandWord, word)
	}
	if handler == nil {
		return fmt.Errorf("%w: %q", ErrMissingHandler, word)
	}
	return nil
}

func (c *Command) Word() string {
	return c.word
}

func (c *Command) Description() string {
	return c.description
}

// Call invokes the handler with a.
func (c *Command) Call(ctx context.Context, a *args.Args) error {
	return c.handler(ctx, a)
}

func (c *Command) String() string {
	return fmt.Sprintf("Command{word=%s, description=%q}", c.word, c.description)
}
