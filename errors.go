package logging

import "errors"

var (
	// ErrNotInitialized is returned by package-level entry points before a
	// successful Init or InitFile, and by methods on a nil or zero Logger.
	ErrNotInitialized = errors.New("logging: logger not initialized")

	// ErrClosed is returned when a record is emitted after Close.
	ErrClosed = errors.New("logging: logger closed")

	// ErrBadFormat is returned by the formatted variants when the template
	// does not match its arguments. Nothing is emitted.
	ErrBadFormat = errors.New("logging: invalid format template")
)
