package ecgfp5

import (
	"fmt"
	"math/bits"

	"github.com/doubleodd/go-ecgfp5/internal/scalar"
)

// Signed161 is a signed integer in the -2^160..+2^160 range (lattice
// basis reduction outputs fit in 161 bits). It is held in two's
// complement representation over three 64-bit limbs; the top limb is
// sign-extended.
type Signed161 [3]uint64

// Set this value from a signed 64-bit integer.
// A pointer to this structure is returned.
func (x *Signed161) SetInt64(v int64) *Signed161 {
	m := uint64(v >> 63)
	*x = Signed161{uint64(v), m, m}
	return x
}

// Test whether this value is negative.
func (x *Signed161) IsNegative() bool {
	return (x[2] >> 63) != 0
}

// Get the absolute value of x, as an unsigned integer (lower than
// 2^161, hence lower than n).
func (x *Signed161) abs() [3]uint64 {
	if !x.IsNegative() {
		return *x
	}
	var t [3]uint64
	var cc uint64
	t[0], cc = bits.Sub64(0, x[0], 0)
	t[1], cc = bits.Sub64(0, x[1], cc)
	t[2], _ = bits.Sub64(0, x[2], cc)
	return t
}

// Convert this value into a scalar (i.e. reduce it modulo n).
// THIS IS NOT CONSTANT-TIME.
func (x *Signed161) ToScalarVartime() Scalar {
	a := x.abs()
	s := Scalar{a[0], a[1], a[2], 0, 0}
	if x.IsNegative() {
		s.Neg(&s)
	}
	return s
}

// Recode this value into signed digits for a 5-bit window. Output is
// 33 digits ss[i] such that x = \sum_i ss[i]*2^(5*i); digits 0 to 31
// are in the -15..+16 range, and the top digit is in the -1..+1 range.
func (x *Signed161) RecodeSigned5() [33]int32 {
	// Add 2^160 to get a nonnegative value (lower than 2^161), recode
	// it, then subtract 1 from the top digit (weight 2^160).
	t := [3]uint64{x[0], x[1], x[2] + (uint64(1) << 32)}
	var ss [33]int32
	scalar.RecodeSigned(ss[:], t[:], 5)
	ss[32]--
	return ss
}

// Get a printable representation of this value (hexadecimal, with
// sign and '0x' prefix).
func (x Signed161) String() string {
	a := x.abs()
	sign := ""
	if x.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%s0x%016X%016X%016X", sign, a[2], a[1], a[0])
}

// signed640 is a signed integer over 640 bits (two's complement), used
// for the squared norms and scalar products of the lattice basis
// reduction.
type signed640 [10]uint64

// n^2
var ecgfp5OrderSquared = signed640{
	0x8E6B7A18061803C1, 0x0AD8BDEE1594E2CF, 0x17640E465F2598BC,
	0x90465B4214B27B1C, 0xD308FECCB1878B88, 0x3CC55EB2EAC07502,
	0x59F038FB784335CE, 0xBFFFFE954FB808EA, 0xBFFFFFCB80000099,
	0x3FFFFFFD8000000D,
}

// Set x to a*b (both operands are nonnegative 320-bit integers).
func (x *signed640) setMul(a, b *[5]uint64) {
	scalar.Mul320x320((*[10]uint64)(x), a, b)
}

// Add 1 to x.
func (x *signed640) addOne() {
	var cc uint64 = 1
	for i := 0; i < len(x); i++ {
		x[i], cc = bits.Add64(x[i], 0, cc)
	}
}

// Split a scalar k into two shorter integers c0 and c1 such that
// k = c0/c1 mod n, with |c0| < 2^160 and |c1| < 2^160.
// THIS IS NOT CONSTANT-TIME.
func (k *Scalar) LatticeSplitVartime() (c0, c1 Signed161) {
	// Lagrange's algorithm on the lattice basis ((n, 0), (k, 1)), as
	// described in: https://eprint.iacr.org/2020/454
	//
	// Init:
	//   u = [n, 0]
	//   v = [k, 1]
	//   nu = n^2
	//   nv = k^2 + 1
	//   sp = n*k
	//
	// Loop:
	//   - if nu < nv then:
	//        (u, v) <- (v, u)
	//        (nu, nv) <- (nv, nu)
	//   - if bitlength(nv) <= 320 then:
	//        return (v0, v1)
	//   - s <- max(0, bitlength(sp) - bitlength(nv))
	//   - if sp > 0 then:
	//        u <- u - lshift(v, s)
	//        nu <- nu + lshift(nv, 2*s) - lshift(sp, s+1)
	//        sp <- sp - lshift(nv, s)
	//     else:
	//        u <- u + lshift(v, s)
	//        nu <- nu + lshift(nv, 2*s) + lshift(sp, s+1)
	//        sp <- sp + lshift(nv, s)
	//
	// The coordinates of u and v are kept over 192 bits only: they
	// are not needed for the control flow, and the final result fits.

	// u <- (n, 0)
	var u0, u1 Signed161
	copy(u0[:], ecgfp5Modulus.R[:3])

	// v <- (k, 1)
	var v0, v1 Signed161
	copy(v0[:], k[:3])
	v1[0] = 1

	// nu <- n^2
	nu := ecgfp5OrderSquared

	// nv <- k^2 + 1
	var nv signed640
	nv.setMul((*[5]uint64)(k), (*[5]uint64)(k))
	nv.addOne()

	// sp <- n*k
	var sp signed640
	sp.setMul((*[5]uint64)(k), &ecgfp5Modulus.R)

	for {
		if scalar.CmpLtVartime(nu[:], nv[:]) {
			u0, v0 = v0, u0
			u1, v1 = v1, u1
			nu, nv = nv, nu
		}

		// ||v||^2 can always get down to about 1.15*n < 2^320.
		blNv := scalar.BitLengthVartime(nv[:])
		if blNv <= 320 {
			return v0, v1
		}

		s := scalar.BitLengthVartime(sp[:]) - blNv
		if s < 0 {
			s = 0
		}

		if (sp[9] >> 63) == 0 {
			scalar.SubLshiftVartime(u0[:], v0[:], s)
			scalar.SubLshiftVartime(u1[:], v1[:], s)
			scalar.AddLshiftVartime(nu[:], nv[:], 2*s)
			scalar.SubLshiftVartime(nu[:], sp[:], s+1)
			scalar.SubLshiftVartime(sp[:], nv[:], s)
		} else {
			scalar.AddLshiftVartime(u0[:], v0[:], s)
			scalar.AddLshiftVartime(u1[:], v1[:], s)
			scalar.AddLshiftVartime(nu[:], nv[:], 2*s)
			scalar.AddLshiftVartime(nu[:], sp[:], s+1)
			scalar.AddLshiftVartime(sp[:], nv[:], s)
		}
	}
}
