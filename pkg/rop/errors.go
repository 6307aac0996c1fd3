package rop

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperation marks programming errors such as reading the
	// payload of an absent option.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrNoValue is reported when an in-flight computation finished
	// without producing a value.
	ErrNoValue   = errors.New("no value produced")
	ErrCancelled = errors.New("operation cancelled")
)

// InvalidOperation returns an error wrapping ErrInvalidOperation.
func InvalidOperation(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidOperation}, args...)...)
}
