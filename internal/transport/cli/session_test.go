package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sandevgo/replkit/internal/service/repl"
	"github.com/sandevgo/replkit/pkg/srv"
	"github.com/stretchr/testify/assert"
)

func TestSession_RunsUntilEndOfInput(t *testing.T) {
	var out bytes.Buffer
	interp := repl.New()
	session := NewSession(interp, repl.NewStreamSource(strings.NewReader("who\n")), &out)

	err := srv.Run(context.Background(), []srv.Service{session})

	assert.NoError(t, err)
	assert.Equal(t, "Unknown command: who\n", out.String())
	assert.Equal(t, repl.StateStopped, interp.State())
}

func TestSession_Greeting(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(repl.New(repl.WithPrompt("> ")), repl.NewStreamSource(strings.NewReader("")), &out)
	session.SetGreeting("welcome\n")

	assert.NoError(t, session.Start(context.Background()))
	assert.Equal(t, "welcome\n> ", out.String())
}
