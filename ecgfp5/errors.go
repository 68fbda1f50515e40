package ecgfp5

import (
	"github.com/pkg/errors"
)

// Error values returned by the fallible operations of this package.
// Callers should compare with errors.Is(), since some functions wrap
// these values with extra context.
var (
	// ErrNotASquare is returned when a square root is requested for a
	// field element which is not a quadratic residue.
	ErrNotASquare = errors.New("ecgfp5: not a square")

	// ErrInvalidEncoding is returned when decoding a point from a field
	// element (or from bytes) which is not a valid point encoding.
	ErrInvalidEncoding = errors.New("ecgfp5: invalid point encoding")

	// ErrNotInvertible is returned when inverting (or dividing by) zero.
	ErrNotInvertible = errors.New("ecgfp5: value is not invertible")

	// ErrInvalidPoint is returned when converting coordinates which do
	// not designate an element of the prime order group.
	ErrInvalidPoint = errors.New("ecgfp5: not a group element")
)
