package ecgfp5

import (
	"github.com/pkg/errors"

	gf "github.com/doubleodd/go-ecgfp5/internal/field"
)

// Element is an element of GF(p^5), the field over which EcGFp5 is
// defined (p = 2^64 - 2^32 + 1, and the extension is GF(p)[z]/(z^5 - 3)).
// All arithmetic methods of the underlying type are available, with the
// destination-first calling convention (d.Mul(a, b) computes d = a*b).
type Element = gf.GFp5

// NewElement returns a new field element with the provided coefficients
// (constant coefficient first). Each coefficient is reduced modulo p.
func NewElement(c0, c1, c2, c3, c4 uint64) Element {
	var e Element
	e.SetLimbs([5]uint64{c0, c1, c2, c3, c4})
	return e
}

// DecodeElement decodes a field element from exactly 40 bytes (five
// little-endian 64-bit coefficients). Each coefficient must be in
// canonical (reduced) form, otherwise an error is returned.
func DecodeElement(src []byte) (Element, error) {
	var e Element
	if len(src) != gf.GFp5EncodedLen {
		return e, errors.Errorf("ecgfp5: invalid element length %d", len(src))
	}
	if e.Decode(src) != 1 {
		return e, errors.New("ecgfp5: non-canonical element encoding")
	}
	return e, nil
}

// TryInverse returns 1/a, or ErrNotInvertible if a is zero.
func TryInverse(a *Element) (Element, error) {
	var d Element
	if a.IsZero() == 1 {
		return d, ErrNotInvertible
	}
	d.Inv(a)
	return d, nil
}

// InverseOrZero returns 1/a, or zero if a is zero.
func InverseOrZero(a *Element) Element {
	var d Element
	d.Inv(a)
	return d
}

// Sqrt returns a square root of a, or ErrNotASquare if a is not a
// quadratic residue.
func Sqrt(a *Element) (Element, error) {
	var d Element
	if d.Sqrt(a) != 1 {
		return d, ErrNotASquare
	}
	return d, nil
}

// CanonicalSqrt returns the square root r of a such that r.Sgn0() is
// true (for a == 0, the root is 0). If a is not a quadratic residue,
// then ErrNotASquare is returned.
func CanonicalSqrt(a *Element) (Element, error) {
	var d Element
	if d.CanonicalSqrt(a) != 1 {
		return d, ErrNotASquare
	}
	return d, nil
}
