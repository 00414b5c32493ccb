package repl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sandevgo/replkit/pkg/args"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_FromHandler(t *testing.T) {
	i := New()
	var name string
	_, err := i.AddCommand("ask", "", func(context.Context, *args.Args) error {
		a, err := i.Scan("name? ")
		if err != nil {
			return err
		}
		name = a.String()
		return i.Println("hello " + name)
	})
	require.NoError(t, err)

	out := run(t, i, "ask\n  Bob  \n")

	assert.Equal(t, "Bob", name)
	assert.Equal(t, "name? hello Bob\n", out)
}

func TestScan_EndOfInput(t *testing.T) {
	i := New()
	_, err := i.AddCommand("ask", "", func(context.Context, *args.Args) error {
		_, err := i.Scan("")
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, "Error: EOF\n", run(t, i, "ask\n"))
}

func TestScan_NotStarted(t *testing.T) {
	_, err := New().Scan("x")
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestScanArgs(t *testing.T) {
	r := strings.NewReader("one  two\nrest\n")
	var w bytes.Buffer

	a, err := ScanArgs(r, &w, "prompt> ")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, a.Tokens())
	assert.Equal(t, "prompt> ", w.String())

	remaining, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "rest\n", string(remaining))
}

func TestScanString(t *testing.T) {
	s, err := ScanString(strings.NewReader("  last line  "), nil, "ignored")
	require.NoError(t, err)
	assert.Equal(t, "last line", s)

	_, err = ScanString(strings.NewReader(""), nil, "")
	assert.ErrorIs(t, err, io.EOF)

	_, err = ScanArgs(failingReader{}, nil, "")
	assert.ErrorIs(t, err, ErrIO)
}
