// Package errs provides the error types shared by the mtree core.
package errs

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Remove when the target data is not indexed,
// and wraps the internal NotFound signal of the delete engine once it
// escapes to the caller.
var ErrNotFound = errors.New("mtree: not found")

// ErrInvalidArgument is returned by New when the constructor parameters
// violate the constraints in the package documentation.
var ErrInvalidArgument = errors.New("mtree: invalid argument")

// MtreeError is a contextual error wrapping one of the sentinel values
// above (or an arbitrary cause) with the operation that produced it.
type MtreeError struct {
	Op    string
	Cause error
}

// Error implements the error interface.
func (e *MtreeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap provides compatibility with errors.Is/errors.As.
func (e *MtreeError) Unwrap() error {
	return e.Cause
}

// Wrap creates a contextual error. It returns nil if cause is nil.
func Wrap(op string, cause error) error {
	if cause == nil {
		return nil
	}
	return &MtreeError{Op: op, Cause: cause}
}

// NotFound wraps ErrNotFound with the operation that failed to locate data.
func NotFound(op string) error {
	return Wrap(op, ErrNotFound)
}

// InvalidArgument wraps ErrInvalidArgument with a description of the
// offending parameter.
func InvalidArgument(op, reason string) error {
	return Wrap(op, fmt.Errorf("%w: %s", ErrInvalidArgument, reason))
}
