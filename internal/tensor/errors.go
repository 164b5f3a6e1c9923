package tensor

import "github.com/pkg/errors"

// Error kinds. Every error returned by this module wraps exactly one of them,
// so callers classify failures with errors.Is.
var (
	// ErrShape reports a rank or dimension mismatch between operands.
	ErrShape = errors.New("shape error")

	// ErrValue reports a malformed configuration argument
	// (stride, padding, dilation, mode, reduction).
	ErrValue = errors.New("value error")

	// ErrNotImplemented reports a feature that is declared but not supported.
	ErrNotImplemented = errors.New("not implemented")

	// ErrNoGrad reports a backward pass started from a tensor that is not
	// part of any gradient-tracked computation.
	ErrNoGrad = errors.New("tensor does not require grad")
)

// ShapeErrorf returns an ErrShape with a formatted message.
func ShapeErrorf(format string, args ...any) error {
	return errors.Wrapf(ErrShape, format, args...)
}

// ValueErrorf returns an ErrValue with a formatted message.
func ValueErrorf(format string, args ...any) error {
	return errors.Wrapf(ErrValue, format, args...)
}

// NotImplementedf returns an ErrNotImplemented with a formatted message.
func NotImplementedf(format string, args ...any) error {
	return errors.Wrapf(ErrNotImplemented, format, args...)
}
