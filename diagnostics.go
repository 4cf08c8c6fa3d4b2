package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// diag carries the library's own operational warnings: repeated
// initialization attempts, recovered stat failures, failed truncations.
// It is a separate channel from the records a Logger emits and defaults to
// human-readable lines on stderr, colorized when stderr is a terminal.
var diag atomic.Pointer[zerolog.Logger]

func init() {
	diag.Store(newDiagLogger(os.Stderr))
}

func newDiagLogger(w io.Writer) *zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, NoColor: true}
	if f, ok := w.(*os.File); ok {
		cw.NoColor = !isatty.IsTerminal(f.Fd())
	}
	logger := zerolog.New(cw).With().Timestamp().Logger()
	return &logger
}

// SetDiagnosticOutput redirects the library's diagnostic warnings, e.g. to
// io.Discard to silence them or to a buffer in tests.
func SetDiagnosticOutput(w io.Writer) {
	diag.Store(newDiagLogger(w))
}

func diagWarn() *zerolog.Event {
	return diag.Load().Warn()
}
