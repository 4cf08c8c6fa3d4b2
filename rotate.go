package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// backupName derives the rotated name for a backup index. The _<idx> suffix
// goes before the extension of the last path element, or at the end when
// there is none: app.log becomes app_1.log, applog becomes applog_1.
func backupName(path string, idx int) string {
	ext := filepath.Ext(path)
	stem := path[:len(path)-len(ext)]
	return stem + "_" + strconv.Itoa(idx) + ext
}

// rotateLocked checks the primary file against the size threshold and, when
// it is at or past it, shifts the backup chain and reopens a fresh primary.
// The caller holds l.mu and the destination is an owned file. A non-nil
// error means the logger lost its destination and cannot continue.
func (l *Logger) rotateLocked() error {
	size, err := l.dest.size()
	if err != nil {
		// A failed stat never takes the producer down. The file is treated
		// as empty and the record is written normally.
		diagWarn().Err(err).Str("path", l.dest.path).Msg(diagMsgFileSize)
		size = 0
	}
	if size < l.settings.MaxFileSize {
		return nil
	}

	if err := l.dest.close(); err != nil {
		return fmt.Errorf("close log file %s: %w", l.dest.path, err)
	}

	// Shift older generations up one slot, dropping whatever held the
	// highest retained index.
	for i := l.settings.MaxBackups - 1; i >= 1; i-- {
		older := backupName(l.dest.path, i-1)
		newer := backupName(l.dest.path, i)
		if _, err := os.Stat(older); err != nil {
			continue
		}
		if err := os.Rename(older, newer); err != nil {
			return fmt.Errorf("rotate %s: %w", older, err)
		}
	}
	if err := os.Rename(l.dest.path, backupName(l.dest.path, 1)); err != nil {
		return fmt.Errorf("rotate %s: %w", l.dest.path, err)
	}
	return l.dest.reopenTruncate()
}
