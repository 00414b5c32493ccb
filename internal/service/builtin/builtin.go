// Package builtin registers the default commands of the interactive shell.
package builtin

import (
	"context"
	"errors"
	"math"

	"github.com/sandevgo/replkit/internal/service/command"
	"github.com/sandevgo/replkit/internal/service/repl"
	"github.com/sandevgo/replkit/pkg/args"
)

var (
	errNoArgs   = errors.New("no arguments given")
	errOverflow = errors.New("integer overflow")
)

type definition struct {
	word        string
	description string
	handler     func(i *repl.Interpreter) command.Handler
}

var definitions = []definition{
	{"help", "Show available commands", help},
	{"echo", "Print the arguments", echo},
	{"sum", "Add integer arguments", sum},
	{"prompt", "Show or change the prompt", prompt},
	{"ask", "Ask for a name and greet it", ask},
	{"exit", "Leave the shell", exit},
	{"quit", "Leave the shell", exit},
}

// Register adds the default commands to i in a fixed order.
func Register(i *repl.Interpreter) error {
	for _, d := range definitions {
		if _, err := i.AddCommand(d.word, d.description, d.handler(i)); err != nil {
			return err
		}
	}
	return nil
}

func help(i *repl.Interpreter) command.Handler {
	return func(context.Context, *args.Args) error {
		return i.Println(i.CommandTable())
	}
}

func echo(i *repl.Interpreter) command.Handler {
	return func(_ context.Context, a *args.Args) error {
		return i.Println(a.Rest(0))
	}
}

func sum(i *repl.Interpreter) command.Handler {
	return func(_ context.Context, a *args.Args) error {
		if a.Count() == 0 {
			return errNoArgs
		}
		total := int64(0)
		for idx := 0; idx < a.Count(); idx++ {
			n, err := a.Int64(idx)
			if err != nil {
				return err
			}
			if (n > 0 && total > math.MaxInt64-n) || (n < 0 && total < math.MinInt64-n) {
				return errOverflow
			}
			total += n
		}
		return i.Println(total)
	}
}

func prompt(i *repl.Interpreter) command.Handler {
	return func(_ context.Context, a *args.Args) error {
		if a.Count() == 0 {
			return i.Printf("prompt: %q\n", i.Prompt())
		}
		i.SetPrompt(a.Rest(0) + " ")
		return nil
	}
}

func ask(i *repl.Interpreter) command.Handler {
	return func(context.Context, *args.Args) error {
		name, err := i.Scan("name: ")
		if err != nil {
			return err
		}
		return i.Println("hello, " + name.StringOr(0, "stranger"))
	}
}

func exit(i *repl.Interpreter) command.Handler {
	return func(context.Context, *args.Args) error {
		return i.Stop()
	}
}
