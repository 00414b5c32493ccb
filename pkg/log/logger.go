package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
)

// NewContextWithLogger attaches a console logger writing to w (stderr when
// nil) to ctx. The returned func flushes and closes the non-blocking writer.
func NewContextWithLogger(ctx context.Context, w io.Writer, debug bool) (context.Context, func()) {
	if w == nil {
		w = os.Stderr
	}

	// Ring buffer of 1000 messages, polled every 5ms.
	wr := diode.NewWriter(w, 1000, 5*time.Millisecond, func(missed int) {
		fmt.Fprintf(os.Stderr, "Logger Dropped %d messages\n", missed)
	})

	logger := New(wr, debug)
	return logger.WithContext(ctx), func() {
		wr.Close()
	}
}

// New builds the console logger without attaching it anywhere.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.DateTime,
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			zerolog.MessageFieldName,
		},
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// FromCtx returns the logger stored in ctx, or a disabled logger.
func FromCtx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
