package logging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatTimestampLayout(t *testing.T) {
	ts := time.Date(2025, time.July, 25, 14, 33, 12, 123000000, time.Local)
	require.Equal(t, "25-07-25 14:33:12.123", formatTimestamp(ts))

	// sub-fields stay zero-padded
	ts = time.Date(2026, time.January, 2, 3, 4, 5, 7000000, time.Local)
	require.Equal(t, "02-01-26 03:04:05.007", formatTimestamp(ts))
}

func TestRenderLinePlain(t *testing.T) {
	ts := time.Date(2025, time.July, 25, 14, 33, 12, 123000000, time.Local)
	site := CallSite{File: "/home/dev/src/main.go", Function: "main.run", Line: 42, Column: 5}

	got := renderLine(InfoLevel, "System ready", site, 7, ts, false)
	require.Equal(t, "[INFO ]: 25-07-25 14:33:12.123 [Thread: 7] main.go - `main.run` (42:5) : System ready\n", got)
}

func TestRenderLineColors(t *testing.T) {
	ts := time.Date(2025, time.July, 25, 14, 33, 12, 123000000, time.Local)
	site := CallSite{File: "main.go", Function: "main.run", Line: 42}

	got := renderLine(ErrorLevel, "system failure", site, 3, ts, true)
	require.Equal(t, "\033[31m[ERROR]\033[0m: 25-07-25 14:33:12.123 [Thread: 3] main.go - `main.run` (42:0) : system failure\n", got)
}

func TestRenderLineForeignPaths(t *testing.T) {
	ts := time.Now()
	site := CallSite{File: `C:\proj\src\handler.go`, Function: "proj.handle", Line: 9, Column: 2}

	got := renderLine(WarnLevel, "low battery", site, 1, ts, false)
	require.Contains(t, got, " handler.go - `proj.handle` (9:2) : low battery\n")
}

func TestFormatMessage(t *testing.T) {
	msg, err := formatMessage("hello %s, value: %d", "world", 42)
	require.NoError(t, err)
	require.Equal(t, "hello world, value: 42", msg)

	// a literal %! in the data is not a template mismatch
	msg, err = formatMessage("%s", "progress 100%!")
	require.NoError(t, err)
	require.Equal(t, "progress 100%!", msg)
}

func TestFormatMessageMismatches(t *testing.T) {
	cases := []struct {
		name   string
		format string
		args   []any
	}{
		{"missing argument", "count: %d", nil},
		{"extra argument", "done", []any{5}},
		{"wrong argument type", "count: %d", []any{"five"}},
		{"dangling verb", "progress 100%", nil},
		// argument data shaped like an artifact is indistinguishable from a
		// real mismatch in the rendered text and is rejected the same way
		{"artifact in argument data", "%s", []any{"%!d(oops)"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := formatMessage(tc.format, tc.args...)
			require.ErrorIs(t, err, ErrBadFormat)
			require.Empty(t, msg)
		})
	}
}
