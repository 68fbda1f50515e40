package scalar

import (
	"math/bits"
)

// Helpers for signed integers of arbitrary (fixed) size, held in
// two's complement representation over little-endian 64-bit limbs.
// These are used by the lattice basis reduction, which is not
// constant-time; none of these functions is constant-time.

// Compare two nonnegative integers of the same size; return value is
// true if a < b, false otherwise.
// THIS IS NOT CONSTANT-TIME.
func CmpLtVartime(a, b []uint64) bool {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] < b[i] {
			return true
		}
		if a[i] > b[i] {
			return false
		}
	}
	return false
}

// Get the bit length of a signed integer. For a negative x, this is
// the bit length of -x-1 (i.e. of the bitwise complement of x).
// THIS IS NOT CONSTANT-TIME.
func BitLengthVartime(a []uint64) int {
	n := len(a)
	m := -(a[n-1] >> 63)
	for i := n - 1; i >= 0; i-- {
		aw := a[i] ^ m
		if aw != 0 {
			return (i << 6) + 64 - bits.LeadingZeros64(aw)
		}
	}
	return 0
}

// Get a*2^s, truncated to len(a) limbs, in t. Slice t must have the
// same length as a. Limbs below s are set to zero.
func lshift(t, a []uint64, s int) {
	n := len(a)
	j := s >> 6
	s &= 63
	for i := 0; i < j && i < n; i++ {
		t[i] = 0
	}
	if j >= n {
		return
	}
	if s == 0 {
		for i := j; i < n; i++ {
			t[i] = a[i-j]
		}
	} else {
		t[j] = a[0] << uint(s)
		for i := j + 1; i < n; i++ {
			t[i] = (a[i-j] << uint(s)) | (a[i-j-1] >> uint(64-s))
		}
	}
}

// Add a*2^s to d. Both slices must have the same length; the result
// is truncated to that length.
// THIS IS NOT CONSTANT-TIME.
func AddLshiftVartime(d, a []uint64, s int) {
	n := len(d)
	if s >= n<<6 {
		return
	}
	var buf [10]uint64
	var t []uint64
	if n <= len(buf) {
		t = buf[:n]
	} else {
		t = make([]uint64, n)
	}
	lshift(t, a, s)
	var cc uint64 = 0
	for i := s >> 6; i < n; i++ {
		d[i], cc = bits.Add64(d[i], t[i], cc)
	}
}

// Subtract a*2^s from d. Both slices must have the same length; the
// result is truncated to that length.
// THIS IS NOT CONSTANT-TIME.
func SubLshiftVartime(d, a []uint64, s int) {
	n := len(d)
	if s >= n<<6 {
		return
	}
	var buf [10]uint64
	var t []uint64
	if n <= len(buf) {
		t = buf[:n]
	} else {
		t = make([]uint64, n)
	}
	lshift(t, a, s)
	var cc uint64 = 0
	for i := s >> 6; i < n; i++ {
		d[i], cc = bits.Sub64(d[i], t[i], cc)
	}
}
