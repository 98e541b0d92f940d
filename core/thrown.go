package core

import "github.com/go-errors/errors"

// WithStack wraps err with the call stack captured at the point of the
// call. A Record whose Thrown error was wrapped this way renders a full
// trace; a bare error renders only its message line. Returns nil for a
// nil error.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, 1)
}
