package blog

import "errors"

var ErrNotFound = errors.New("post not found")

// ValidationError reports a required post field that was left empty.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}
