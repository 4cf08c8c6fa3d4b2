package logging

import (
	"fmt"
	"io"
	"os"
)

// destination is the output variant of a Logger: either a borrowed stream
// the caller keeps ownership of, or a file the Logger owns and must flush
// and close on shutdown. Exactly one of the two is set.
type destination struct {
	stream io.Writer // borrowed; nil for file-backed loggers
	file   *os.File  // owned; nil for stream-backed loggers
	path   string    // primary file path; set only when file is
}

func newStreamDestination(w io.Writer) destination {
	return destination{stream: w}
}

// openFileDestination opens path for appending, creating it when absent.
func openFileDestination(path string) (destination, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return destination{}, fmt.Errorf("open log file %s: %w", path, err)
	}
	return destination{file: f, path: path}, nil
}

// owned reports whether the destination is a file the Logger owns.
func (d *destination) owned() bool { return d.file != nil }

func (d *destination) writer() io.Writer {
	if d.file != nil {
		return d.file
	}
	return d.stream
}

// size reports the current length of the owned file.
func (d *destination) size() (uint64, error) {
	info, err := d.file.Stat()
	if err != nil {
		return 0, err
	}
	return uint64(info.Size()), nil
}

// clear truncates the owned file to zero length. Appending writes continue
// from the new end.
func (d *destination) clear() error {
	return d.file.Truncate(0)
}

// reopenTruncate replaces the owned handle with a fresh, empty primary file.
// The handle appends, like the one openFileDestination returns, so a later
// clear leaves writes landing at the new end instead of the old offset.
func (d *destination) reopenTruncate() error {
	f, err := os.OpenFile(d.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", d.path, err)
	}
	d.file = f
	return nil
}

// close flushes and closes an owned file. Borrowed streams are untouched.
func (d *destination) close() error {
	if d.file == nil {
		return nil
	}
	if err := d.file.Sync(); err != nil {
		_ = d.file.Close()
		return err
	}
	return d.file.Close()
}
