package bottombar

import "errors"

var (
	// ErrInvalidHeight is returned by New when the requested region height
	// is not a positive number of lines.
	ErrInvalidHeight = errors.New("bar height must be positive")

	// ErrInvalidState is returned when an operation is called outside the
	// lifecycle state it requires, such as PrintLine before Init or any
	// update after Finalize.
	ErrInvalidState = errors.New("operation not valid in current bar state")

	// ErrIndexOutOfRange is returned by PrintBarLine when the row index is
	// outside [0, height).
	ErrIndexOutOfRange = errors.New("bar line index out of range")

	// ErrMultiline is returned by PrintBarLine when the content contains a
	// newline; region rows are single terminal lines.
	ErrMultiline = errors.New("bar line content must not contain newlines")

	// ErrOutputSink wraps a failed write to the underlying output stream.
	// The write is not retried.
	ErrOutputSink = errors.New("terminal write failed")
)
