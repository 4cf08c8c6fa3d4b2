package logging

import (
	"io"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// Logger writes leveled, timestamped records to a console stream or to an
// owned file with size-based rotation. The minimum severity is read
// atomically on every record; everything from the rotation check to the
// write serializes on one internal mutex, so concurrent producers never
// interleave partial lines.
//
// The zero value is unusable and reports ErrNotInitialized from every
// method. Construct instances with New or NewFile.
type Logger struct {
	mu         sync.Mutex
	dest       destination
	settings   FileSettings
	level      atomic.Int32
	closed     atomic.Bool
	colors     bool // fixed at construction
	fileBacked bool // fixed at construction
}

// New returns a Logger bound to an existing stream such as os.Stdout. The
// caller keeps ownership of the stream; Close never touches it. Colors are
// enabled for this mode. New panics on a nil writer: that is a constructor
// misuse, not a runtime condition.
func New(w io.Writer, level Level) *Logger {
	if w == nil {
		panic("logging: nil writer")
	}
	l := &Logger{dest: newStreamDestination(w), colors: true}
	l.level.Store(int32(level))
	return l
}

// NewFile returns a Logger that owns the file at path, opening it in append
// mode and creating it when absent. Colors are disabled: files get plain
// severity tags.
func NewFile(path string, level Level) (*Logger, error) {
	if err := validateFilePath(path); err != nil {
		return nil, err
	}
	dest, err := openFileDestination(path)
	if err != nil {
		return nil, err
	}
	l := &Logger{dest: dest, fileBacked: true}
	l.level.Store(int32(level))
	return l, nil
}

// unbound reports whether the receiver has no destination: a nil pointer or
// a zero value. Both are inert, never a panic.
func (l *Logger) unbound() bool {
	return l == nil || (!l.fileBacked && l.dest.stream == nil)
}

// log is the single serialized pipeline: the rotation check, the rendering
// and the write all happen under the instance mutex. Severity filtering
// happens before the clock read and before locking.
func (l *Logger) log(level Level, msg string, site CallSite) error {
	if l.unbound() {
		return ErrNotInitialized
	}
	if level < Level(l.level.Load()) {
		return nil
	}
	if l.closed.Load() {
		return ErrClosed
	}
	gid := goroutineID()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed.Load() {
		return ErrClosed
	}
	if l.fileBacked && l.settings.EnableRotation {
		if err := l.rotateLocked(); err != nil {
			return err
		}
	}
	line := renderLine(level, msg, site, gid, time.Now(), l.colors)
	_, err := io.WriteString(l.dest.writer(), line)
	return err
}

// logCaller filters before capturing the call site, so dropped records
// never pay for runtime.Caller. skip counts frames above logCaller's
// caller.
func (l *Logger) logCaller(level Level, skip int, msg string) error {
	if l.unbound() {
		return ErrNotInitialized
	}
	if level < Level(l.level.Load()) {
		return nil
	}
	return l.log(level, msg, Capture(skip+1))
}

// logfCaller renders the template before filtering, so a bad template
// surfaces ErrBadFormat even when the level would drop the record.
func (l *Logger) logfCaller(level Level, skip int, format string, args ...any) error {
	msg, err := formatMessage(format, args...)
	if err != nil {
		return err
	}
	return l.logCaller(level, skip+1, msg)
}

// Trace logs msg at TraceLevel, capturing the caller's call site.
func (l *Logger) Trace(msg string) error { return l.logCaller(TraceLevel, 1, msg) }

// Debug logs msg at DebugLevel, capturing the caller's call site.
func (l *Logger) Debug(msg string) error { return l.logCaller(DebugLevel, 1, msg) }

// Info logs msg at InfoLevel, capturing the caller's call site.
func (l *Logger) Info(msg string) error { return l.logCaller(InfoLevel, 1, msg) }

// Warn logs msg at WarnLevel, capturing the caller's call site.
func (l *Logger) Warn(msg string) error { return l.logCaller(WarnLevel, 1, msg) }

// Error logs msg at ErrorLevel, capturing the caller's call site.
func (l *Logger) Error(msg string) error { return l.logCaller(ErrorLevel, 1, msg) }

// Fatal logs msg at FatalLevel, capturing the caller's call site. The
// process keeps running.
func (l *Logger) Fatal(msg string) error { return l.logCaller(FatalLevel, 1, msg) }

// Tracef logs a rendered template at TraceLevel.
func (l *Logger) Tracef(format string, args ...any) error {
	return l.logfCaller(TraceLevel, 1, format, args...)
}

// Debugf logs a rendered template at DebugLevel.
func (l *Logger) Debugf(format string, args ...any) error {
	return l.logfCaller(DebugLevel, 1, format, args...)
}

// Infof logs a rendered template at InfoLevel.
func (l *Logger) Infof(format string, args ...any) error {
	return l.logfCaller(InfoLevel, 1, format, args...)
}

// Warnf logs a rendered template at WarnLevel.
func (l *Logger) Warnf(format string, args ...any) error {
	return l.logfCaller(WarnLevel, 1, format, args...)
}

// Errorf logs a rendered template at ErrorLevel.
func (l *Logger) Errorf(format string, args ...any) error {
	return l.logfCaller(ErrorLevel, 1, format, args...)
}

// Fatalf logs a rendered template at FatalLevel. The process keeps running.
func (l *Logger) Fatalf(format string, args ...any) error {
	return l.logfCaller(FatalLevel, 1, format, args...)
}

// Log emits msg at an arbitrary level, capturing the caller's call site.
func (l *Logger) Log(level Level, msg string) error {
	return l.logCaller(level, 1, msg)
}

// Logf emits a rendered template at an arbitrary level.
func (l *Logger) Logf(level Level, format string, args ...any) error {
	return l.logfCaller(level, 1, format, args...)
}

// LogAt emits msg with an explicit call site, for wrappers that capture
// their own location context.
func (l *Logger) LogAt(level Level, site CallSite, msg string) error {
	return l.log(level, msg, site)
}

// SetLevel replaces the minimum severity. It takes effect on the next
// record; nothing already emitted is revisited.
func (l *Logger) SetLevel(level Level) {
	if l == nil {
		return
	}
	l.level.Store(int32(level))
}

// GetLevel reports the current minimum severity.
func (l *Logger) GetLevel() Level {
	if l == nil {
		return TraceLevel
	}
	return Level(l.level.Load())
}

// ColorEnabled reports whether severity tags are wrapped in ANSI colors.
// The flag is fixed at construction: on for streams, off for files.
func (l *Logger) ColorEnabled() bool {
	if l == nil {
		return false
	}
	return l.colors
}

// Configure replaces the rotation policy wholesale. Every policy is
// accepted on a constructed logger; a negative MaxBackups is stored as
// zero. Stream-backed loggers store the values and do nothing further. A
// policy with ClearOnStartup truncates a file-backed logger's primary file
// immediately; a failed truncation is reported on the diagnostic channel
// and the policy still applies.
func (l *Logger) Configure(settings FileSettings) error {
	if l.unbound() {
		return ErrNotInitialized
	}
	if settings.MaxBackups < 0 {
		settings.MaxBackups = 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.settings = settings
	if settings.ClearOnStartup && l.fileBacked && !l.closed.Load() {
		if err := l.dest.clear(); err != nil {
			diagWarn().Err(err).Str("path", l.dest.path).Msg(diagMsgClearFile)
		}
	}
	return nil
}

// ConfigureRotation is the positional form of Configure.
func (l *Logger) ConfigureRotation(clearOnStartup, enableRotation bool, maxFileSize uint64, maxBackups int) error {
	return l.Configure(FileSettings{
		ClearOnStartup: clearOnStartup,
		EnableRotation: enableRotation,
		MaxFileSize:    maxFileSize,
		MaxBackups:     maxBackups,
	})
}

// Settings returns a copy of the active rotation policy.
func (l *Logger) Settings() FileSettings {
	if l.unbound() {
		return FileSettings{}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.settings
}

// Close flushes and closes an owned file. Stream-backed loggers own nothing
// and remain usable after Close. Close is idempotent; emission on a closed
// file-backed logger returns ErrClosed.
func (l *Logger) Close() error {
	if l == nil || !l.fileBacked {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed.Swap(true) {
		return nil
	}
	return l.dest.close()
}
