package logging

import (
	"fmt"
	"strings"
)

// Level is the severity of a log record. Levels are totally ordered from
// TraceLevel up to FatalLevel; a Logger emits records at or above its
// configured minimum.
type Level int8

const (
	// TraceLevel marks the most verbose diagnostics.
	TraceLevel Level = iota
	// DebugLevel marks development diagnostics.
	DebugLevel
	// InfoLevel marks normal operational records.
	InfoLevel
	// WarnLevel marks recoverable anomalies.
	WarnLevel
	// ErrorLevel marks failures of an operation.
	ErrorLevel
	// FatalLevel marks unrecoverable failures. Emitting at FatalLevel does
	// not terminate the process; the caller decides what happens next.
	FatalLevel
)

var levelNames = [...]string{"trace", "debug", "info", "warn", "error", "fatal"}

// Tags are width-aligned so record columns line up across severities.
var levelTags = [...]string{"[TRACE]", "[DEBUG]", "[INFO ]", "[WARN ]", "[ERROR]", "[FATAL]"}

var levelColors = [...]string{colorCyan, colorBlue, colorWhite, colorYellow, colorRed, colorMagenta}

func (l Level) valid() bool { return l >= TraceLevel && l <= FatalLevel }

// String returns the lowercase name of the level.
func (l Level) String() string {
	if !l.valid() {
		return fmt.Sprintf("level(%d)", int8(l))
	}
	return levelNames[l]
}

// Tag returns the bracketed tag the level carries in emitted records.
func (l Level) Tag() string {
	if !l.valid() {
		return "[?????]"
	}
	return levelTags[l]
}

func (l Level) color() string {
	if !l.valid() {
		return colorReset
	}
	return levelColors[l]
}

// ParseLevel parses a level name. Matching is case-insensitive and accepts
// the common aliases "warning" and "err".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error", "err":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	}
	return TraceLevel, fmt.Errorf("unknown log level %q", s)
}
