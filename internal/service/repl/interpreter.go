// Package repl implements a single session read-dispatch-execute loop over a
// line oriented input and a text output.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sandevgo/replkit/internal/core"
	"github.com/sandevgo/replkit/internal/service/command"
	"github.com/sandevgo/replkit/internal/service/ui"
)

var (
	ErrIO             = errors.New("repl i/o failure")
	ErrAlreadyRunning = errors.New("repl already running")
	ErrNotStarted     = errors.New("repl not started")
)

type State int32

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

type Option func(*Interpreter)

func WithPrompt(prompt string) Option {
	return func(i *Interpreter) { i.prompt = prompt }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(i *Interpreter) { i.logger = logger }
}

func WithRenderer(r core.TableRenderer) Option {
	return func(i *Interpreter) { i.renderer = r }
}

// WithRegistry shares an existing registry instead of creating a new one.
func WithRegistry(r *command.Registry) Option {
	return func(i *Interpreter) { i.registry = r }
}

type Interpreter struct {
	id       string
	registry *command.Registry
	renderer core.TableRenderer
	logger   zerolog.Logger

	mu     sync.Mutex
	prompt string
	state  State
	src    LineSource
	out    io.Writer

	ready     chan struct{}
	readyOnce sync.Once
}

func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		id:     uuid.NewString(),
		logger: zerolog.Nop(),
		ready:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(i)
	}

	i.logger = i.logger.With().Str("session", i.id).Logger()
	if i.registry == nil {
		i.registry = command.NewRegistry(i.logger)
	}
	if i.renderer == nil {
		i.renderer = ui.NewCommandTable()
	}
	return i
}

// ID identifies the session in log events.
func (i *Interpreter) ID() string {
	return i.id
}

func (i *Interpreter) Prompt() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.prompt
}

func (i *Interpreter) SetPrompt(prompt string) {
	i.mu.Lock()
	i.prompt = prompt
	i.mu.Unlock()
}

func (i *Interpreter) State() State {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state
}

func (i *Interpreter) Running() bool {
	return i.State() == StateRunning
}

func (i *Interpreter) Commands() *command.Registry {
	return i.registry
}

func (i *Interpreter) AddCommand(word, description string, handler command.Handler) (*command.Command, error) {
	return i.registry.Add(word, description, handler)
}

func (i *Interpreter) RemoveCommand(word string) bool {
	return i.registry.Remove(word)
}

// CommandTable renders the registered commands in insertion order.
func (i *Interpreter) CommandTable() string {
	return i.renderer.RenderCommands(i.registry.List())
}

// Start runs the loop over in and out, defaulting to the process standard
// streams when either is nil. It blocks until the input ends, Stop is called,
// ctx is cancelled between reads, or an I/O failure occurs. Only the last
// case and cancellation return an error.
func (i *Interpreter) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	if in == nil {
		in = os.Stdin
	}
	return i.StartSource(ctx, NewStreamSource(in), out)
}

// StartSource is Start with a custom line source.
func (i *Interpreter) StartSource(ctx context.Context, src LineSource, out io.Writer) error {
	if src == nil {
		return errors.New("nil line source")
	}
	if out == nil {
		out = os.Stdout
	}

	i.mu.Lock()
	if i.state == StateRunning {
		i.mu.Unlock()
		return ErrAlreadyRunning
	}
	i.src, i.out, i.state = src, out, StateRunning
	i.mu.Unlock()
	i.readyOnce.Do(func() { close(i.ready) })

	i.logger.Info().
		Str("source", fmt.Sprintf("%T", src)).
		Str("sink", fmt.Sprintf("%T", out)).
		Msg("repl started")

	return i.run(ctx, src)
}

func (i *Interpreter) run(ctx context.Context, src LineSource) error {
	for i.Running() {
		select {
		case <-ctx.Done():
			i.stopQuietly()
			return ctx.Err()
		default:
		}

		if err := i.showPrompt(src); err != nil {
			return i.fail(err)
		}

		line, err := src.ReadLine()
		if err != nil {
			if !i.Running() {
				// Stop closed the source under a blocked read.
				return nil
			}
			if errors.Is(err, io.EOF) {
				i.logger.Debug().Msg("end of input")
				break
			}
			return i.fail(fmt.Errorf("%w: read: %w", ErrIO, err))
		}

		if err := i.Execute(ctx, line); err != nil {
			return i.fail(err)
		}
	}

	i.stopQuietly()
	return nil
}

func (i *Interpreter) showPrompt(src LineSource) error {
	prompt := i.Prompt()
	if p, ok := src.(Prompter); ok {
		p.SetPrompt(prompt)
		return nil
	}
	if prompt == "" {
		return nil
	}
	if _, err := io.WriteString(i.sink(), prompt); err != nil {
		return fmt.Errorf("%w: write prompt: %w", ErrIO, err)
	}
	return nil
}

func (i *Interpreter) fail(err error) error {
	i.logger.Error().Err(err).Msg("repl terminated")
	i.stopQuietly()
	return err
}

func (i *Interpreter) stopQuietly() {
	if err := i.Stop(); err != nil {
		i.logger.Warn().Err(err).Msg("failed to release streams")
	}
}

// Stop ends the loop and closes caller supplied streams. The process standard
// streams are left open. Calling Stop more than once is safe.
func (i *Interpreter) Stop() error {
	i.mu.Lock()
	if i.state != StateRunning {
		i.mu.Unlock()
		return nil
	}
	i.state = StateStopped
	src, out := i.src, i.out
	i.mu.Unlock()

	var errs []error
	if err := src.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close input: %w", err))
	}
	if err := closeUnlessStd(out); err != nil {
		errs = append(errs, fmt.Errorf("close output: %w", err))
	}

	i.logger.Info().Msg("repl stopped")
	return errors.Join(errs...)
}

func (i *Interpreter) source() LineSource {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.src
}

func (i *Interpreter) sink() io.Writer {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.out
}
