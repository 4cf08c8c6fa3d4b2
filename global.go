package logging

import (
	"io"
	"sync"

	"go.uber.org/atomic"
)

// The process-wide logger. Binding goes through initMu so exactly one init
// wins; readers go through the atomic pointer without locking.
var (
	initMu sync.Mutex
	global atomic.Pointer[Logger]
)

// Init binds the process-wide logger to an existing stream such as
// os.Stdout. The first successful Init or InitFile wins for the life of the
// process; every later call is a no-op that leaves the binding untouched
// and reports a diagnostic warning.
func Init(w io.Writer, level Level) {
	initMu.Lock()
	defer initMu.Unlock()
	if global.Load() != nil {
		diagWarn().Str("destination", "stream").Msg(diagMsgAlreadyInitialized)
		return
	}
	global.Store(New(w, level))
}

// InitFile binds the process-wide logger to the file at path. A failed open
// is returned to the caller and does not consume the one shot: a later
// init may still win.
func InitFile(path string, level Level) error {
	initMu.Lock()
	defer initMu.Unlock()
	if global.Load() != nil {
		diagWarn().Str("destination", "file").Str("path", path).Msg(diagMsgAlreadyInitialized)
		return nil
	}
	l, err := NewFile(path, level)
	if err != nil {
		return err
	}
	global.Store(l)
	return nil
}

// Default returns the process-wide logger, or ErrNotInitialized before the
// first successful init. The error is a hard stop: no destination exists.
func Default() (*Logger, error) {
	if l := global.Load(); l != nil {
		return l, nil
	}
	return nil, ErrNotInitialized
}

// Trace logs msg at TraceLevel through the process-wide logger.
func Trace(msg string) error { return emit(TraceLevel, msg) }

// Debug logs msg at DebugLevel through the process-wide logger.
func Debug(msg string) error { return emit(DebugLevel, msg) }

// Info logs msg at InfoLevel through the process-wide logger.
func Info(msg string) error { return emit(InfoLevel, msg) }

// Warn logs msg at WarnLevel through the process-wide logger.
func Warn(msg string) error { return emit(WarnLevel, msg) }

// Error logs msg at ErrorLevel through the process-wide logger.
func Error(msg string) error { return emit(ErrorLevel, msg) }

// Fatal logs msg at FatalLevel through the process-wide logger. The process
// keeps running.
func Fatal(msg string) error { return emit(FatalLevel, msg) }

// Tracef logs a rendered template at TraceLevel through the process-wide
// logger.
func Tracef(format string, args ...any) error {
	return emitf(TraceLevel, format, args...)
}

// Debugf logs a rendered template at DebugLevel through the process-wide
// logger.
func Debugf(format string, args ...any) error {
	return emitf(DebugLevel, format, args...)
}

// Infof logs a rendered template at InfoLevel through the process-wide
// logger.
func Infof(format string, args ...any) error {
	return emitf(InfoLevel, format, args...)
}

// Warnf logs a rendered template at WarnLevel through the process-wide
// logger.
func Warnf(format string, args ...any) error {
	return emitf(WarnLevel, format, args...)
}

// Errorf logs a rendered template at ErrorLevel through the process-wide
// logger.
func Errorf(format string, args ...any) error {
	return emitf(ErrorLevel, format, args...)
}

// Fatalf logs a rendered template at FatalLevel through the process-wide
// logger. The process keeps running.
func Fatalf(format string, args ...any) error {
	return emitf(FatalLevel, format, args...)
}

// Configure replaces the process-wide logger's rotation policy.
func Configure(settings FileSettings) error {
	l, err := Default()
	if err != nil {
		return err
	}
	return l.Configure(settings)
}

// ConfigureRotation is the positional form of Configure.
func ConfigureRotation(clearOnStartup, enableRotation bool, maxFileSize uint64, maxBackups int) error {
	l, err := Default()
	if err != nil {
		return err
	}
	return l.ConfigureRotation(clearOnStartup, enableRotation, maxFileSize, maxBackups)
}

// Close flushes and closes the process-wide logger's owned file, if any.
// The binding itself survives; there is no teardown-and-rebind.
func Close() error {
	l, err := Default()
	if err != nil {
		return nil
	}
	return l.Close()
}

// emit and emitf resolve the binding before anything else, so an unbound
// state surfaces ahead of any formatting work. skip 2 lands the call site
// on the caller of the package-level helper.
func emit(level Level, msg string) error {
	l, err := Default()
	if err != nil {
		return err
	}
	return l.logCaller(level, 2, msg)
}

func emitf(level Level, format string, args ...any) error {
	l, err := Default()
	if err != nil {
		return err
	}
	return l.logfCaller(level, 2, format, args...)
}
