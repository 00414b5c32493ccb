// Package args splits the argument text of a command line into whitespace
// delimited tokens and exposes positional, typed access to them.
package args

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
)

var (
	ErrIndexOutOfRange = errors.New("argument index out of range")
	ErrArgumentParse   = errors.New("argument parse error")
)

// Args is an immutable view over the tokens of a raw argument string.
// A nil *Args behaves as an empty argument list.
type Args struct {
	raw    string
	tokens []string
}

// New tokenizes raw. An empty or all-whitespace string yields zero tokens.
func New(raw string) *Args {
	return &Args{
		raw:    strings.TrimSpace(raw),
		tokens: strings.Fields(raw),
	}
}

func (a *Args) Count() int {
	if a == nil {
		return 0
	}
	return len(a.tokens)
}

// Tokens returns a copy of all tokens.
func (a *Args) Tokens() []string {
	if a == nil {
		return nil
	}
	out := make([]string, len(a.tokens))
	copy(out, a.tokens)
	return out
}

// Get returns the token at index i.
func (a *Args) Get(i int) (string, error) {
	if i < 0 || i >= a.Count() {
		return "", fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, i, a.Count())
	}
	return a.tokens[i], nil
}

// Rest joins the tokens from index i onwards with a single space.
// It returns an empty string when i is past the last token.
func (a *Args) Rest(i int) string {
	if i < 0 {
		i = 0
	}
	if i >= a.Count() {
		return ""
	}
	return strings.Join(a.tokens[i:], " ")
}

// Int parses the token as a base 10 integer. Leading zeros are ignored.
func (a *Args) Int(i int) (int, error) {
	return parse(a, i, "int", decimal(cast.ToIntE))
}

func (a *Args) Int64(i int) (int64, error) {
	return parse(a, i, "int64", decimal(cast.ToInt64E))
}

func (a *Args) Float(i int) (float64, error) {
	return parse(a, i, "float", cast.ToFloat64E)
}

func (a *Args) Bool(i int) (bool, error) {
	return parse(a, i, "bool", cast.ToBoolE)
}

// Duration accepts Go duration syntax ("1m30s"); a bare number is nanoseconds.
func (a *Args) Duration(i int) (time.Duration, error) {
	return parse(a, i, "duration", cast.ToDurationE)
}

func (a *Args) StringOr(i int, fallback string) string {
	v, err := a.Get(i)
	if err != nil {
		return fallback
	}
	return v
}

func (a *Args) IntOr(i int, fallback int) int {
	v, err := a.Int(i)
	if err != nil {
		return fallback
	}
	return v
}

func (a *Args) BoolOr(i int, fallback bool) bool {
	v, err := a.Bool(i)
	if err != nil {
		return fallback
	}
	return v
}

// String returns the source text with surrounding whitespace removed.
func (a *Args) String() string {
	if a == nil {
		return ""
	}
	return a.raw
}

func parse[T any](a *Args, i int, kind string, conv func(any) (T, error)) (T, error) {
	var zero T
	tok, err := a.Get(i)
	if err != nil {
		return zero, err
	}
	v, err := conv(tok)
	if err != nil {
		return zero, fmt.Errorf("%w: token %d %q is not a valid %s: %v", ErrArgumentParse, i, tok, kind, err)
	}
	return v, nil
}

// decimal wraps an integer conversion so that only an optional sign followed
// by ASCII digits is accepted. cast picks the base from a 0x, 0b, 0o or 0
// prefix, so leading zeros are stripped before the token reaches it.
func decimal[T any](conv func(any) (T, error)) func(any) (T, error) {
	return func(v any) (T, error) {
		var zero T
		s, _ := v.(string)
		norm, ok := normalizeDecimal(s)
		if !ok {
			return zero, fmt.Errorf("unable to cast %q as a decimal integer", s)
		}
		return conv(norm)
	}
}

func normalizeDecimal(s string) (string, bool) {
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	if s == "" {
		return "", false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	if sign == "-" {
		s = sign + s
	}
	return s, true
}
