package logging

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// formatTimestamp renders t in the record timestamp layout: local time,
// millisecond precision.
func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// renderLine builds one complete record, terminating newline included:
//
//	[INFO ]: 25-07-25 14:33:12.123 [Thread: 7] main.go - `main.run` (42:0) : System ready
//
// With colors on, the severity tag is wrapped in its ANSI color and a reset.
func renderLine(level Level, msg string, site CallSite, gid uint64, now time.Time, colors bool) string {
	var b strings.Builder
	b.Grow(96 + len(msg))
	if colors {
		b.WriteString(level.color())
		b.WriteString(level.Tag())
		b.WriteString(colorReset)
	} else {
		b.WriteString(level.Tag())
	}
	b.WriteString(": ")
	b.WriteString(formatTimestamp(now))
	b.WriteString(" [Thread: ")
	b.WriteString(strconv.FormatUint(gid, 10))
	b.WriteString("] ")
	b.WriteString(baseName(site.File))
	b.WriteString(" - `")
	b.WriteString(site.Function)
	b.WriteString("` (")
	b.WriteString(strconv.Itoa(site.Line))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(site.Column))
	b.WriteString(") : ")
	b.WriteString(msg)
	b.WriteByte('\n')
	return b.String()
}

// fmt reports template mismatches by embedding %!verb(...) artifacts in the
// rendered output rather than returning an error. The scan runs over the
// rendered text, so argument data that itself contains an artifact-shaped
// substring is rejected as if the template were bad; only type-checking
// every argument against its verb could tell the two apart.
var badFormatArtifact = regexp.MustCompile(`%!.?\(`)

// formatMessage renders a printf template and rejects templates that do not
// match their arguments.
func formatMessage(format string, args ...any) (string, error) {
	msg := fmt.Sprintf(format, args...)
	if badFormatArtifact.MatchString(msg) {
		return emptyString, fmt.Errorf("%w: %q", ErrBadFormat, format)
	}
	return msg, nil
}
