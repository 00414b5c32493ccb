package command

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sandevgo/replkit/internal/core"
)

// Registry keeps commands in insertion order. Words are not required to be
// unique; lookups return the earliest registered match.
type Registry struct {
	mu       sync.RWMutex
	commands []*Command
	logger   zerolog.Logger
}

func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		logger: logger.With().Str("component", "registry").Logger(),
	}
}

// Add validates and appends a new command.
func (r *Registry) Add(word, description string, handler Handler) (*Command, error) {
	cmd, err := NewCommand(word, description, handler)
	if err != nil {
		return nil, err
	}
	r.append(cmd)
	return cmd, nil
}

// AddCommand appends an already built command. Descriptors that did not come
// from NewCommand are checked the same way.
func (r *Registry) AddCommand(cmd *Command) error {
	if cmd == nil {
		return errors.New("nil command")
	}
	if err := validate(cmd.word, cmd.handler); err != nil {
		return err
	}
	r.append(cmd)
	return nil
}

func (r *Registry) append(cmd *Command) {
	r.mu.Lock()
	r.commands = append(r.commands, cmd)
	r.mu.Unlock()

	r.logger.Info().Str("word", cmd.Word()).Str("description", cmd.Description()).Msg("command added")
}

// Remove deletes the first command registered under word and reports whether
// one was found.
func (r *Registry) Remove(word string) bool {
	r.mu.Lock()
	idx := r.indexOf(word)
	if idx < 0 {
		r.mu.Unlock()
		return false
	}
	removed := r.commands[idx]
	r.commands = append(r.commands[:idx:idx], r.commands[idx+1:]...)
	r.mu.Unlock()

	r.logger.Info().Str("word", removed.Word()).Msg("command removed")
	return true
}

// Resolve returns the first command registered under word.
func (r *Registry) Resolve(word string) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(word)
	if idx < 0 {
		return nil, false
	}
	return r.commands[idx], true
}

// List returns word and description of every command in insertion order.
func (r *Registry) List() []core.CommandInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]core.CommandInfo, 0, len(r.commands))
	for _, cmd := range r.commands {
		res = append(res, core.CommandInfo{Word: cmd.Word(), Description: cmd.Description()})
	}
	return res
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// indexOf must be called with r.mu held.
func (r *Registry) indexOf(word string) int {
	for i, cmd := range r.commands {
		if cmd.Word() == word {
			return i
		}
	}
	return -1
}
