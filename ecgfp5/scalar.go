package ecgfp5

import (
	"fmt"

	"github.com/doubleodd/go-ecgfp5/internal/scalar"
)

// Scalar is the type for an integer modulo the prime order n of the
// EcGFp5 group, with:
//
//	n = 1067993516717146951041484916571792702745057740581727230159139685185762082554198619328292418486241
//
// (this is a 319-bit integer). The internal representation is five
// 64-bit limbs (little-endian order); the value is always fully reduced.
// A zero-valued Scalar structure is the scalar zero.
type Scalar [5]uint64

// Size of an encoded scalar, in bytes.
const ScalarEncodedLen = 40

// Bit length of the group order.
const ScalarBits = 319

// Precomputed constants for computations modulo n.
var ecgfp5Modulus = scalar.Modulus{
	R: [5]uint64{
		0xE80FD996948BFFE1, 0xE8885C39D724A09C, 0x7FFFFFE6CFB80639,
		0x7FFFFFF100000016, 0x7FFFFFFD80000007,
	},
	N0I: 0xD78BEF72057B7BDF,
	R2: [5]uint64{
		0xA01001DCE33DC739, 0x6C3228D33F62ACCF, 0xD1D796CC91CF8525,
		0xAADFFF5D1574C1D8, 0x4ACA13B28CA251F5,
	},
	T576: [5]uint64{
		0x2965F29810CD7D84, 0x1D5788DF8C85FB9D, 0xA2E4B3FCF308AD57,
		0xF16ECCB268A6B215, 0x1EEE094620CFC873,
	},
}

// Scalar of value n-1.
var scalarNegOne = Scalar{
	0xE80FD996948BFFE0, 0xE8885C39D724A09C, 0x7FFFFFE6CFB80639,
	0x7FFFFFF100000016, 0x7FFFFFFD80000007,
}

// Set this scalar to zero.
// A pointer to this structure is returned.
func (s *Scalar) Zero() *Scalar {
	*s = Scalar{}
	return s
}

// Set this scalar to the provided small integer.
// A pointer to this structure is returned.
func (s *Scalar) SetUint64(v uint64) *Scalar {
	*s = Scalar{v}
	return s
}

// Copy a scalar into another.
// A pointer to this structure is returned.
func (s *Scalar) Set(a *Scalar) *Scalar {
	*s = *a
	return s
}

// Decode a scalar from exactly 40 bytes. Returned value is:
//
//	 1   scalar properly decoded, value is not zero
//	 0   scalar properly decoded, value is zero
//	-1   source bytes were not a valid scalar encoding
//
// If the decoding fails (including when the source length is not 40),
// then the scalar value is forced to zero.
func (s *Scalar) Decode(src []byte) int {
	if len(src) != ScalarEncodedLen {
		s.Zero()
		return -1
	}
	return ecgfp5Modulus.Decode((*[5]uint64)(s), src)
}

// Decode a scalar from some bytes. All provided bytes are read and
// interpreted as an integer in unsigned little-endian convention, which
// is reduced modulo the group order n. This process cannot fail.
// A pointer to this structure is returned.
func (s *Scalar) DecodeReduce(src []byte) *Scalar {
	ecgfp5Modulus.DecodeReduce((*[5]uint64)(s), src)
	return s
}

// Set this scalar from the five coefficients of a GF(p^5) element,
// interpreted as a 320-bit integer (constant coefficient first), and
// reduced modulo n.
// A pointer to this structure is returned.
func (s *Scalar) SetElement(e *Element) *Scalar {
	buf := e.Bytes()
	return s.DecodeReduce(buf[:])
}

// Encode a scalar into exactly 40 bytes. The bytes are appended to the
// provided slice; the new slice is returned. The extension is done in
// place if the provided slice has enough capacity.
func (s *Scalar) Encode(dst []byte) []byte {
	return scalar.Encode(dst, (*[5]uint64)(s))
}

// Encode a scalar into exactly 40 bytes.
func (s *Scalar) Bytes() [ScalarEncodedLen]byte {
	var d [ScalarEncodedLen]byte
	s.Encode(d[:0])
	return d
}

// Test whether a scalar is zero. Returned value is 1 for zero, 0 otherwise.
func (s *Scalar) IsZero() int {
	return int(scalar.IsZero((*[5]uint64)(s)))
}

// Compare a scalar with another one. Returned value is 1 if both
// scalars are equal, 0 otherwise.
func (s *Scalar) Equal(a *Scalar) int {
	return int(scalar.Eq((*[5]uint64)(s), (*[5]uint64)(a)))
}

// Add two scalars.
// A pointer to this structure (s) is returned.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	ecgfp5Modulus.Add((*[5]uint64)(s), (*[5]uint64)(a), (*[5]uint64)(b))
	return s
}

// Subtract scalar b from scalar a.
// A pointer to this structure (s) is returned.
func (s *Scalar) Sub(a, b *Scalar) *Scalar {
	ecgfp5Modulus.Sub((*[5]uint64)(s), (*[5]uint64)(a), (*[5]uint64)(b))
	return s
}

// Negate a scalar.
// A pointer to this structure (s) is returned.
func (s *Scalar) Neg(a *Scalar) *Scalar {
	ecgfp5Modulus.Neg((*[5]uint64)(s), (*[5]uint64)(a))
	return s
}

// Multiply two scalars.
// A pointer to this structure (s) is returned.
func (s *Scalar) Mul(a, b *Scalar) *Scalar {
	ecgfp5Modulus.Mul((*[5]uint64)(s), (*[5]uint64)(a), (*[5]uint64)(b))
	return s
}

// Invert a scalar. If a is zero, then s is set to zero (this is the
// "inverse or zero" convention).
// A pointer to this structure (s) is returned.
func (s *Scalar) InvOrZero(a *Scalar) *Scalar {
	ecgfp5Modulus.Inv((*[5]uint64)(s), (*[5]uint64)(a))
	return s
}

// Invert a scalar. If a is zero, then s is set to zero and
// ErrNotInvertible is returned.
func (s *Scalar) TryInv(a *Scalar) error {
	if a.IsZero() == 1 {
		s.Zero()
		return ErrNotInvertible
	}
	s.InvOrZero(a)
	return nil
}

// Divide scalar a by scalar b. If b is zero, then s is set to zero and
// ErrNotInvertible is returned.
func (s *Scalar) Div(a, b *Scalar) error {
	var t Scalar
	if err := t.TryInv(b); err != nil {
		s.Zero()
		return err
	}
	s.Mul(a, &t)
	return nil
}

// Recode this scalar into signed digits for a window of w bits
// (2 <= w <= 10); see scalar.RecodeSigned() for details. For a 5-bit
// window, 64 digits are enough for any scalar.
func (s *Scalar) RecodeSigned(ss []int32, w uint) {
	scalar.RecodeSigned(ss, s[:], w)
}

// Recode this scalar into 64 signed digits for a 5-bit window, each in
// the -15..+16 range.
func (s *Scalar) recode5() [64]int32 {
	var ss [64]int32
	scalar.RecodeSigned(ss[:], s[:], 5)
	return ss
}

// Get a printable representation of this scalar (hexadecimal, big-endian,
// with '0x' prefix).
func (s Scalar) String() string {
	return fmt.Sprintf("0x%016X%016X%016X%016X%016X", s[4], s[3], s[2], s[1], s[0])
}
