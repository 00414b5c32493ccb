package builtin

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sandevgo/replkit/internal/core"
	"github.com/sandevgo/replkit/internal/service/repl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listRenderer struct{}

func (listRenderer) RenderCommands(c []core.CommandInfo) string {
	words := make([]string, len(c))
	for n, info := range c {
		words[n] = info.Word
	}
	return strings.Join(words, ",")
}

func session(t *testing.T, input string) (string, *repl.Interpreter) {
	t.Helper()
	i := repl.New(repl.WithRenderer(listRenderer{}))
	require.NoError(t, Register(i))

	var out bytes.Buffer
	require.NoError(t, i.Start(context.Background(), strings.NewReader(input), &out))
	return out.String(), i
}

func TestBuiltins(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "help", input: "help\n", want: "help,echo,sum,prompt,ask,exit,quit\n"},
		{name: "echo", input: "echo  hello   world \n", want: "hello world\n"},
		{name: "echo repeats word", input: "echo echo\n", want: "echo\n"},
		{name: "sum", input: "sum 1 2 -3 10\n", want: "10\n"},
		{name: "sum leading zeros", input: "sum 010 08\n", want: "18\n"},
		{name: "sum hex rejected", input: "sum 0x1F\n", want: "Error: argument parse error: token 0 \"0x1F\" is not a valid int64: "},
		{name: "sum max", input: "sum 9223372036854775806 1\n", want: "9223372036854775807\n"},
		{name: "sum overflow", input: "sum 9223372036854775807 1\n", want: "Error: integer overflow\n"},
		{name: "sum underflow", input: "sum -9223372036854775808 -1\n", want: "Error: integer overflow\n"},
		{name: "sum bad token", input: "sum 1 x\n", want: "Error: argument parse error: token 1 \"x\" is not a valid int64: "},
		{name: "sum no args", input: "sum\n", want: "Error: no arguments given\n"},
		{name: "ask", input: "ask\nAda\n", want: "name: hello, Ada\n"},
		{name: "ask blank", input: "ask\n\n", want: "name: hello, stranger\n"},
		{name: "exit stops", input: "exit\necho never\n", want: ""},
		{name: "quit stops", input: "quit\necho never\n", want: ""},
		{name: "unknown", input: "nope\n", want: "Unknown command: nope\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := session(t, tt.input)
			if strings.HasPrefix(tt.want, "Error: argument parse error") {
				assert.True(t, strings.HasPrefix(out, tt.want), out)
				return
			}
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestPrompt(t *testing.T) {
	out, i := session(t, "prompt db>\nprompt\n")

	assert.Equal(t, "db> ", i.Prompt())
	assert.Contains(t, out, `prompt: "db> "`)
}
