package scalar

import (
	"encoding/binary"
	"math/bits"
)

// This file contains some helper functions for scalars, i.e. integers
// modulo an odd prime r such that 2^318 < r < 2^319. Values are held
// as five 64-bit limbs (little-endian order) and, on output of all
// arithmetic functions, are fully reduced (in the 0..r-1 range).
// Multiplications use Montgomery reduction; the constants needed for
// that are gathered in a Modulus structure. Some generic functions
// operating on big integers (of a given size) are also provided.
//
// Scalar operations are not critical for performance and can tolerate
// suboptimal implementations. Apart from DecodeReduce() (whose timing
// depends on the input length only) and Inv() (whose timing depends on
// the modulus only), all functions are constant-time.

// Modulus contains the constants for computations modulo r.
type Modulus struct {
	// R is the modulus itself.
	R [5]uint64

	// N0I is -1/r mod 2^64.
	N0I uint64

	// R2 is 2^640 mod r (for conversion into Montgomery representation).
	R2 [5]uint64

	// T576 is 2^576 mod r (Montgomery multiplication by this value is
	// a multiplication by 2^256).
	T576 [5]uint64
}

// Extend a slice for appending n bytes. The two returned values are the
// new extended slice (no extra allocation if the original slice was large
// enough), and the sub-slice where data should be written.
// (Inspired by https://github.com/gtank/ristretto255 )
func prepareAppend(b []byte, n int) (head, tail []byte) {
	len1 := len(b)   // current length
	len2 := len1 + n // new length after extension
	if cap(b) >= len2 {
		head = b[:len2]
	} else {
		head = make([]byte, len2)
		copy(head, b)
	}
	tail = head[len1:]
	return
}

// 320x320->640 multiplication.
func Mul320x320(d *[10]uint64, a, b *[5]uint64) {
	var t [10]uint64
	for i := 0; i < 5; i++ {
		var cc uint64 = 0
		for j := 0; j < 5; j++ {
			hi, lo := bits.Mul64(a[i], b[j])
			var c1 uint64
			lo, c1 = bits.Add64(lo, t[i+j], 0)
			hi += c1
			lo, c1 = bits.Add64(lo, cc, 0)
			hi += c1
			t[i+j] = lo
			cc = hi
		}
		t[i+5] = cc
	}
	*d = t
}

// Subtract r from a if a >= r. The input MUST be lower than 2*r.
func (m *Modulus) condSub(d, a *[5]uint64) {
	var t [5]uint64
	var cc uint64 = 0
	for i := 0; i < 5; i++ {
		t[i], cc = bits.Sub64(a[i], m.R[i], cc)
	}
	// If there was a borrow, keep the original value.
	mk := -cc
	for i := 0; i < 5; i++ {
		d[i] = t[i] ^ (mk & (t[i] ^ a[i]))
	}
}

// Montgomery multiplication: d <- a*b/2^320 mod r. Inputs MUST be
// lower than r. Output is fully reduced.
func (m *Modulus) montyMul(d, a, b *[5]uint64) {
	var t [6]uint64
	for i := 0; i < 5; i++ {
		// t <- t + a*b[i]
		f := b[i]
		var cc uint64 = 0
		for j := 0; j < 5; j++ {
			hi, lo := bits.Mul64(a[j], f)
			var c1 uint64
			lo, c1 = bits.Add64(lo, t[j], 0)
			hi += c1
			lo, c1 = bits.Add64(lo, cc, 0)
			hi += c1
			t[j] = lo
			cc = hi
		}
		t[5] += cc

		// t <- (t + k*r)/2^64, with k such that the division is exact.
		k := t[0] * m.N0I
		hi, lo := bits.Mul64(k, m.R[0])
		_, c1 := bits.Add64(lo, t[0], 0)
		cc = hi + c1
		for j := 1; j < 5; j++ {
			hi, lo = bits.Mul64(k, m.R[j])
			lo, c1 = bits.Add64(lo, t[j], 0)
			hi += c1
			lo, c1 = bits.Add64(lo, cc, 0)
			hi += c1
			t[j-1] = lo
			cc = hi
		}
		t[4], c1 = bits.Add64(t[5], cc, 0)
		t[5] = c1
	}

	// Since r < 2^319, the value fits on 320 bits and is lower than 2*r.
	var x [5]uint64
	copy(x[:], t[:5])
	m.condSub(d, &x)
}

// Decode a scalar value from exactly 40 bytes. Returned value:
//
//	 1   decode successful, value is in range and non-zero
//	 0   decode successful, value is zero
//	-1   decode failed, value is out of range.
//
// On error, output value (in d[]) is forced to zero.
func (m *Modulus) Decode(d *[5]uint64, src []byte) int {
	// Decode in little-endian.
	for i := 0; i < 5; i++ {
		d[i] = binary.LittleEndian.Uint64(src[8*i:])
	}

	// Check whether all bytes were zero.
	zz := d[0] | d[1] | d[2] | d[3] | d[4]
	zz = 1 - ((zz | -zz) >> 63)

	// Compare value with r; if not lower (borrow is zero), then
	// this is invalid.
	var cc uint64 = 0
	for i := 0; i < 5; i++ {
		_, cc = bits.Sub64(d[i], m.R[i], cc)
	}
	for i := 0; i < 5; i++ {
		d[i] &= -cc
	}

	// If input was valid, then cc == 1; otherwise, cc == 0. If
	// input was zero, then cc == 1 (it was valid) and zz == 1;
	// otherwise, zz == 0.
	return int(int64(((cc << 1) - zz) - 1))
}

// Encode a (reduced) scalar into exactly 40 bytes. The bytes are appended
// to the provided slice. The extension is done in place if the provided
// slice has enough capacity. The new slice is returned.
func Encode(b []byte, s *[5]uint64) []byte {
	b2, dst := prepareAppend(b, 40)
	for i := 0; i < 5; i++ {
		binary.LittleEndian.PutUint64(dst[8*i:], s[i])
	}
	return b2
}

// Decode a scalar from bytes; the bytes are interpreted with unsigned
// little-endian convention into a big integer, which is reduced modulo
// r. All bytes from the input slice are used. If the input slice is
// empty, then the obtained value is 0.
func (m *Modulus) DecodeReduce(d *[5]uint64, src []byte) {
	n := len(src)

	// Set output to 0.
	*d = [5]uint64{}

	// Special case: empty slice.
	if n == 0 {
		return
	}

	// Value is processed by chunks of 32 bytes, from the top. The
	// top chunk may be partial; a 256-bit chunk is always lower than r.
	j := ((n - 1) >> 5) << 5
	var buf [40]byte
	copy(buf[:], src[j:])
	for i := 0; i < 4; i++ {
		d[i] = binary.LittleEndian.Uint64(buf[8*i:])
	}

	// For all remaining chunks of 32 bytes, multiply the current
	// value by 2^256, then add the new chunk.
	for j > 0 {
		j -= 32
		m.montyMul(d, d, &m.T576)
		var cc uint64 = 0
		for i := 0; i < 4; i++ {
			d[i], cc = bits.Add64(d[i], binary.LittleEndian.Uint64(src[j+8*i:]), cc)
		}
		d[4] += cc
		m.condSub(d, d)
	}
}

// Scalar addition. Operands MUST be reduced.
func (m *Modulus) Add(d, a, b *[5]uint64) {
	var t [5]uint64
	var cc uint64 = 0
	for i := 0; i < 5; i++ {
		t[i], cc = bits.Add64(a[i], b[i], cc)
	}
	// No output carry is possible, since r < 2^319.
	m.condSub(d, &t)
}

// Scalar subtraction. Operands MUST be reduced.
func (m *Modulus) Sub(d, a, b *[5]uint64) {
	var cc uint64 = 0
	for i := 0; i < 5; i++ {
		d[i], cc = bits.Sub64(a[i], b[i], cc)
	}

	// If there is an output borrow, then we must add r.
	mk := -cc
	cc = 0
	for i := 0; i < 5; i++ {
		d[i], cc = bits.Add64(d[i], m.R[i]&mk, cc)
	}
}

// Scalar negation. Operand MUST be reduced.
func (m *Modulus) Neg(d, a *[5]uint64) {
	var z [5]uint64
	m.Sub(d, &z, a)
}

// Scalar multiplication. Operands MUST be reduced.
func (m *Modulus) Mul(d, a, b *[5]uint64) {
	// a*b = montyMul(montyMul(a, b), 2^640)
	var t [5]uint64
	m.montyMul(&t, a, b)
	m.montyMul(d, &t, &m.R2)
}

// Scalar inversion (by Fermat's little theorem). Operand MUST be reduced.
// If the operand is zero, then the output is zero.
func (m *Modulus) Inv(d, a *[5]uint64) {
	// Convert to Montgomery representation.
	var x, y [5]uint64
	m.montyMul(&x, a, &m.R2)

	// Exponent is r - 2; since r is odd and larger than 2, this is
	// a simple subtraction on the low limb.
	e := m.R
	e[0] -= 2

	// y <- 1 (in Montgomery representation)
	var one [5]uint64
	one[0] = 1
	m.montyMul(&y, &one, &m.R2)

	for i := 318; i >= 0; i-- {
		m.montyMul(&y, &y, &y)
		if (e[i>>6]>>uint(i&63))&1 != 0 {
			m.montyMul(&y, &y, &x)
		}
	}

	// Convert back from Montgomery representation.
	m.montyMul(d, &y, &one)
}

// Test whether a scalar is zero. Returned value is 1 for zero, 0 otherwise.
func IsZero(a *[5]uint64) uint64 {
	z := a[0] | a[1] | a[2] | a[3] | a[4]
	return 1 - ((z | -z) >> 63)
}

// Test whether two scalars are equal. Returned value is 1 on equality,
// 0 otherwise. Operands MUST be reduced.
func Eq(a, b *[5]uint64) uint64 {
	var z uint64
	for i := 0; i < 5; i++ {
		z |= a[i] ^ b[i]
	}
	return 1 - ((z | -z) >> 63)
}

// Recode an integer (provided as little-endian 64-bit limbs) into signed
// digits for a window of w bits (2 <= w <= 10). Output digits are in the
// -(2^(w-1)-1)..+2^(w-1) range, such that:
//
//	a = \sum_i ss[i]*2^(w*i)
//
// as long as len(ss)*w is large enough to accommodate the input and the
// final carry. Each digit which would exceed 2^(w-1) is lowered by 2^w,
// with a carry propagated into the next digit. Missing limbs are taken
// to be zero. This function is constant-time.
func RecodeSigned(ss []int32, limbs []uint64, w uint) {
	var acc uint64 = 0
	accLen := uint(0)
	j := 0
	mw := uint32(1)<<w - 1
	hw := uint32(1) << (w - 1)
	var cc uint32 = 0
	for i := range ss {
		// Get next w-bit chunk in bb.
		var bb uint32
		if accLen < w {
			if j < len(limbs) {
				nl := limbs[j]
				j++
				bb = uint32(acc|(nl<<accLen)) & mw
				acc = nl >> (w - accLen)
			} else {
				bb = uint32(acc) & mw
				acc = 0
			}
			accLen += 64 - w
		} else {
			bb = uint32(acc) & mw
			accLen -= w
			acc >>= w
		}

		// If bb is greater than 2^(w-1), subtract 2^w and propagate
		// a carry.
		bb += cc
		cc = (hw - bb) >> 31
		ss[i] = int32(bb) - int32(cc<<w)
	}
}
