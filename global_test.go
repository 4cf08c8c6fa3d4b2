package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// resetGlobal clears the process-wide binding between tests. The production
// surface deliberately has no reset; the binding lasts the process.
func resetGlobal() {
	initMu.Lock()
	defer initMu.Unlock()
	global.Store(nil)
}

// helper to start a test from an unbound process-wide state
func freshGlobal(t *testing.T) {
	t.Helper()
	resetGlobal()
	t.Cleanup(func() {
		_ = Close()
		resetGlobal()
	})
}

// helper to capture the diagnostic channel into a buffer
func captureDiag(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetDiagnosticOutput(&buf)
	t.Cleanup(func() { SetDiagnosticOutput(os.Stderr) })
	return &buf
}

func TestPackageEntryPointsBeforeInit(t *testing.T) {
	freshGlobal(t)

	_, err := Default()
	require.ErrorIs(t, err, ErrNotInitialized)

	require.ErrorIs(t, Trace("x"), ErrNotInitialized)
	require.ErrorIs(t, Info("x"), ErrNotInitialized)
	require.ErrorIs(t, Fatalf("%d", 1), ErrNotInitialized)
	require.ErrorIs(t, Configure(FileSettings{}), ErrNotInitialized)
	require.ErrorIs(t, ConfigureRotation(false, false, 0, 0), ErrNotInitialized)
	require.NoError(t, Close())
}

func TestInitFirstWins(t *testing.T) {
	freshGlobal(t)
	diag := captureDiag(t)

	var first, second bytes.Buffer
	Init(&first, TraceLevel)
	Init(&second, ErrorLevel)

	l, err := Default()
	require.NoError(t, err)
	require.Equal(t, TraceLevel, l.GetLevel(), "the losing init must not touch the level")

	require.NoError(t, Info("routed"))
	require.Contains(t, first.String(), "routed")
	require.Empty(t, second.String())

	require.Contains(t, diag.String(), diagMsgAlreadyInitialized)
}

func TestInitFileAfterInitIsNoop(t *testing.T) {
	freshGlobal(t)
	diag := captureDiag(t)

	var buf bytes.Buffer
	Init(&buf, TraceLevel)

	path := filepath.Join(t.TempDir(), "late.log")
	require.NoError(t, InitFile(path, InfoLevel))
	require.NoFileExists(t, path, "a losing init must not even open its file")
	require.Contains(t, diag.String(), diagMsgAlreadyInitialized)

	require.NoError(t, Info("still on the stream"))
	require.Contains(t, buf.String(), "still on the stream")
}

func TestInitFileFailureDoesNotConsumeOneShot(t *testing.T) {
	freshGlobal(t)

	bad := filepath.Join(t.TempDir(), "missing", "deep", "app.log")
	require.Error(t, InitFile(bad, InfoLevel))

	_, err := Default()
	require.ErrorIs(t, err, ErrNotInitialized, "a failed init must leave the one shot open")

	var buf bytes.Buffer
	Init(&buf, InfoLevel)
	require.NoError(t, Info("recovered"))
	require.Contains(t, buf.String(), "recovered")
}

func TestConcurrentInitOneWinner(t *testing.T) {
	freshGlobal(t)
	SetDiagnosticOutput(io.Discard)
	t.Cleanup(func() { SetDiagnosticOutput(os.Stderr) })

	const contenders = 16
	bufs := make([]*bytes.Buffer, contenders)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < contenders; i++ {
		bufs[i] = &bytes.Buffer{}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			Init(bufs[i], TraceLevel)
		}(i)
	}
	close(start)
	wg.Wait()

	require.NoError(t, Info("single destination"))

	var winners int
	for _, buf := range bufs {
		if buf.Len() > 0 {
			winners++
		}
	}
	require.Equal(t, 1, winners, "exactly one init may bind the destination")
}

func TestPackageHelpersRouteAllLevels(t *testing.T) {
	freshGlobal(t)

	var buf bytes.Buffer
	Init(&buf, TraceLevel)

	require.NoError(t, Trace("at trace"))
	require.NoError(t, Debug("at debug"))
	require.NoError(t, Info("at info"))
	require.NoError(t, Warn("at warn"))
	require.NoError(t, Error("at error"))
	require.NoError(t, Fatal("at fatal"))
	require.NoError(t, Tracef("at %s", "tracef"))
	require.NoError(t, Debugf("at %s", "debugf"))
	require.NoError(t, Infof("at %s", "infof"))
	require.NoError(t, Warnf("at %s", "warnf"))
	require.NoError(t, Errorf("at %s", "errorf"))
	require.NoError(t, Fatalf("at %s", "fatalf"))

	text := buf.String()
	require.Len(t, logLines(t, text), 12)
	// call sites must point at this file, not at the package internals
	require.Equal(t, 12, strings.Count(text, "global_test.go"))
}

func TestPackageFormattedVariantsRejectBadTemplates(t *testing.T) {
	freshGlobal(t)

	var buf bytes.Buffer
	Init(&buf, TraceLevel)

	tmpl := "count: %d of %d" // the second verb has no argument
	require.ErrorIs(t, Warnf(tmpl, 1), ErrBadFormat)
	require.Empty(t, buf.String())
}

func TestPackageConfigureRotationAndClose(t *testing.T) {
	freshGlobal(t)

	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, InitFile(path, TraceLevel))
	require.NoError(t, ConfigureRotation(false, true, 1, 2))

	require.NoError(t, Info("record 1"))
	require.NoError(t, Info("record 2"))
	require.FileExists(t, backupName(path, 1))

	require.NoError(t, Close())
	require.ErrorIs(t, Info("after close"), ErrClosed)
	require.NoError(t, Close())
}
