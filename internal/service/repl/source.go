package repl

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// LineSource yields input lines without their terminators. ReadLine returns
// io.EOF once the input is exhausted.
type LineSource interface {
	ReadLine() (string, error)
	Close() error
}

// Prompter is implemented by sources that draw the prompt themselves.
type Prompter interface {
	SetPrompt(prompt string)
}

type streamSource struct {
	r  io.Reader
	br *bufio.Reader
}

// NewStreamSource reads newline delimited lines from r. Closing it closes r
// unless r is one of the process standard streams.
func NewStreamSource(r io.Reader) LineSource {
	return &streamSource{r: r, br: bufio.NewReader(r)}
}

func (s *streamSource) ReadLine() (string, error) {
	line, err := s.br.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

func (s *streamSource) Close() error {
	return closeUnlessStd(s.r)
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

func isStdStream(v any) bool {
	return v == any(os.Stdin) || v == any(os.Stdout) || v == any(os.Stderr)
}

func closeUnlessStd(v any) error {
	if v == nil || isStdStream(v) {
		return nil
	}
	if c, ok := v.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
