package logging

// Leveled is the consumer-facing surface of a Logger: one entry point per
// severity plus the formatted variants. *Logger implements it; code that
// only emits records should depend on this rather than on the concrete
// type.
type Leveled interface {
	Trace(msg string) error
	Debug(msg string) error
	Info(msg string) error
	Warn(msg string) error
	Error(msg string) error
	Fatal(msg string) error

	Tracef(format string, args ...any) error
	Debugf(format string, args ...any) error
	Infof(format string, args ...any) error
	Warnf(format string, args ...any) error
	Errorf(format string, args ...any) error
	Fatalf(format string, args ...any) error
}

var _ Leveled = (*Logger)(nil)
