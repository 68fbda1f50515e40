package field

import (
	"encoding/binary"
	"fmt"

	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// This file implements computations in GF(p^5), with p = 2^64 - 2^32 + 1
// (the "Goldilocks" prime). The extension is defined by the irreducible
// polynomial z^5 - 3. Base field arithmetic is delegated to the goldilocks
// package from gnark-crypto.
//
// API follows the same conventions as the rest of this package: the
// destination comes first, source and destination operands may be the
// same objects, and all functions return the destination so that calls
// may be chained.
//
// Unless explicitly documented, functions here are NOT constant-time.
// In particular, inversion, square roots and Legendre symbols use
// data-dependent code paths.

// GFp5 is an element of GF(p^5). Coefficient i is the coefficient of z^i.
type GFp5 [5]goldilocks.Element

// GFpModulus is the base field modulus.
const GFpModulus uint64 = 0xFFFFFFFF00000001

// Encoded length of a GF(p^5) element, in bytes.
const GFp5EncodedLen = 40

// Frobenius constants: z^p = gamma*z, with gamma = 3^((p-1)/5) mod p.
// frobK1[i-1] = gamma^i, frobK2[i-1] = gamma^(2*i).
var (
	frobK1 = [4]goldilocks.Element{
		goldilocks.NewElement(1041288259238279555),
		goldilocks.NewElement(15820824984080659046),
		goldilocks.NewElement(211587555138949697),
		goldilocks.NewElement(1373043270956696022),
	}
	frobK2 = [4]goldilocks.Element{
		goldilocks.NewElement(15820824984080659046),
		goldilocks.NewElement(1373043270956696022),
		goldilocks.NewElement(1041288259238279555),
		goldilocks.NewElement(211587555138949697),
	}

	gfpHalf  = goldilocks.NewElement(0x7FFFFFFF80000001)
	gfpThree = goldilocks.NewElement(3)
	gfpOne   = goldilocks.NewElement(1)
)

// Field element of value 0.
var GFp5_ZERO = GFp5{}

// Field element of value 1.
var GFp5_ONE = GFp5{goldilocks.NewElement(1)}

// Field element of value 2.
var GFp5_TWO = GFp5{goldilocks.NewElement(2)}

// d <- a
func (d *GFp5) Set(a *GFp5) *GFp5 {
	*d = *a
	return d
}

// Set d to the provided coefficients. Each coefficient is reduced
// modulo p.
func (d *GFp5) SetLimbs(c [5]uint64) *GFp5 {
	for i := 0; i < 5; i++ {
		d[i].SetUint64(c[i])
	}
	return d
}

// Set d to the small integer v (reduced modulo p).
func (d *GFp5) SetUint64(v uint64) *GFp5 {
	*d = GFp5_ZERO
	d[0].SetUint64(v)
	return d
}

// Set d to the base field element e.
func (d *GFp5) SetBase(e *goldilocks.Element) *GFp5 {
	*d = GFp5_ZERO
	d[0].Set(e)
	return d
}

// Get the coefficients of d, in canonical form (each lower than p).
func (d *GFp5) Limbs() [5]uint64 {
	var c [5]uint64
	for i := 0; i < 5; i++ {
		c[i] = d[i].Uint64()
	}
	return c
}

// d <- a + b
func (d *GFp5) Add(a, b *GFp5) *GFp5 {
	for i := 0; i < 5; i++ {
		d[i].Add(&a[i], &b[i])
	}
	return d
}

// d <- a - b
func (d *GFp5) Sub(a, b *GFp5) *GFp5 {
	for i := 0; i < 5; i++ {
		d[i].Sub(&a[i], &b[i])
	}
	return d
}

// d <- -a
func (d *GFp5) Neg(a *GFp5) *GFp5 {
	for i := 0; i < 5; i++ {
		d[i].Neg(&a[i])
	}
	return d
}

// d <- 2*a
func (d *GFp5) Double(a *GFp5) *GFp5 {
	for i := 0; i < 5; i++ {
		d[i].Double(&a[i])
	}
	return d
}

// d <- a/2
func (d *GFp5) Half(a *GFp5) *GFp5 {
	for i := 0; i < 5; i++ {
		d[i].Mul(&a[i], &gfpHalf)
	}
	return d
}

// If ctl == 1, then d <- a; if ctl == 0, then d <- b.
// ctl MUST be 0 or 1. This is a constant-time selection primitive.
func (d *GFp5) Select(a, b *GFp5, ctl uint64) *GFp5 {
	m := -ctl
	for i := 0; i < 5; i++ {
		d[i][0] = b[i][0] ^ (m & (a[i][0] ^ b[i][0]))
	}
	return d
}

// If mask == 0xFFFFFFFFFFFFFFFF, then copy a into d; if mask == 0, then
// leave d unchanged. Other mask values are forbidden.
// This is a constant-time primitive.
func (d *GFp5) CondSet(a *GFp5, mask uint64) *GFp5 {
	for i := 0; i < 5; i++ {
		d[i][0] ^= mask & (a[i][0] ^ d[i][0])
	}
	return d
}

// If ctl == 1, then d <- -a; if ctl == 0, then d <- a.
// ctl MUST be 0 or 1. This is constant-time.
func (d *GFp5) CondNeg(a *GFp5, ctl uint64) *GFp5 {
	var t GFp5
	t.Neg(a)
	return d.Select(&t, a, ctl)
}

// Multiply a by 3, in the base field.
func mulBy3(d, a *goldilocks.Element) {
	var t goldilocks.Element
	t.Double(a)
	d.Add(&t, a)
}

// d <- a*b
func (d *GFp5) Mul(a, b *GFp5) *GFp5 {
	var c0, c1, c2, c3, c4, t goldilocks.Element

	// c0 <- a0*b0 + 3*(a1*b4 + a2*b3 + a3*b2 + a4*b1)
	c0.Mul(&a[1], &b[4])
	t.Mul(&a[2], &b[3])
	c0.Add(&c0, &t)
	t.Mul(&a[3], &b[2])
	c0.Add(&c0, &t)
	t.Mul(&a[4], &b[1])
	c0.Add(&c0, &t)
	mulBy3(&c0, &c0)
	t.Mul(&a[0], &b[0])
	c0.Add(&c0, &t)

	// c1 <- a0*b1 + a1*b0 + 3*(a2*b4 + a3*b3 + a4*b2)
	c1.Mul(&a[2], &b[4])
	t.Mul(&a[3], &b[3])
	c1.Add(&c1, &t)
	t.Mul(&a[4], &b[2])
	c1.Add(&c1, &t)
	mulBy3(&c1, &c1)
	t.Mul(&a[0], &b[1])
	c1.Add(&c1, &t)
	t.Mul(&a[1], &b[0])
	c1.Add(&c1, &t)

	// c2 <- a0*b2 + a1*b1 + a2*b0 + 3*(a3*b4 + a4*b3)
	c2.Mul(&a[3], &b[4])
	t.Mul(&a[4], &b[3])
	c2.Add(&c2, &t)
	mulBy3(&c2, &c2)
	t.Mul(&a[0], &b[2])
	c2.Add(&c2, &t)
	t.Mul(&a[1], &b[1])
	c2.Add(&c2, &t)
	t.Mul(&a[2], &b[0])
	c2.Add(&c2, &t)

	// c3 <- a0*b3 + a1*b2 + a2*b1 + a3*b0 + 3*a4*b4
	c3.Mul(&a[4], &b[4])
	mulBy3(&c3, &c3)
	t.Mul(&a[0], &b[3])
	c3.Add(&c3, &t)
	t.Mul(&a[1], &b[2])
	c3.Add(&c3, &t)
	t.Mul(&a[2], &b[1])
	c3.Add(&c3, &t)
	t.Mul(&a[3], &b[0])
	c3.Add(&c3, &t)

	// c4 <- a0*b4 + a1*b3 + a2*b2 + a3*b1 + a4*b0
	c4.Mul(&a[0], &b[4])
	t.Mul(&a[1], &b[3])
	c4.Add(&c4, &t)
	t.Mul(&a[2], &b[2])
	c4.Add(&c4, &t)
	t.Mul(&a[3], &b[1])
	c4.Add(&c4, &t)
	t.Mul(&a[4], &b[0])
	c4.Add(&c4, &t)

	d[0] = c0
	d[1] = c1
	d[2] = c2
	d[3] = c3
	d[4] = c4
	return d
}

// d <- a^2
func (d *GFp5) Sqr(a *GFp5) *GFp5 {
	var c0, c1, c2, c3, c4, t, u goldilocks.Element

	// c0 <- a0^2 + 6*(a1*a4 + a2*a3)
	c0.Mul(&a[1], &a[4])
	t.Mul(&a[2], &a[3])
	c0.Add(&c0, &t)
	c0.Double(&c0)
	mulBy3(&c0, &c0)
	t.Square(&a[0])
	c0.Add(&c0, &t)

	// c1 <- 2*a0*a1 + 3*(2*a2*a4 + a3^2)
	c1.Mul(&a[2], &a[4])
	c1.Double(&c1)
	t.Square(&a[3])
	c1.Add(&c1, &t)
	mulBy3(&c1, &c1)
	t.Mul(&a[0], &a[1])
	t.Double(&t)
	c1.Add(&c1, &t)

	// c2 <- 2*a0*a2 + a1^2 + 6*a3*a4
	c2.Mul(&a[3], &a[4])
	c2.Double(&c2)
	mulBy3(&c2, &c2)
	t.Mul(&a[0], &a[2])
	t.Double(&t)
	c2.Add(&c2, &t)
	t.Square(&a[1])
	c2.Add(&c2, &t)

	// c3 <- 2*(a0*a3 + a1*a2) + 3*a4^2
	c3.Square(&a[4])
	mulBy3(&c3, &c3)
	t.Mul(&a[0], &a[3])
	u.Mul(&a[1], &a[2])
	t.Add(&t, &u)
	t.Double(&t)
	c3.Add(&c3, &t)

	// c4 <- 2*(a0*a4 + a1*a3) + a2^2
	c4.Mul(&a[0], &a[4])
	t.Mul(&a[1], &a[3])
	c4.Add(&c4, &t)
	c4.Double(&c4)
	t.Square(&a[2])
	c4.Add(&c4, &t)

	d[0] = c0
	d[1] = c1
	d[2] = c2
	d[3] = c3
	d[4] = c4
	return d
}

// d <- a^(2^n)  (n successive squarings)
func (d *GFp5) SqrX(a *GFp5, n uint) *GFp5 {
	d.Set(a)
	for i := uint(0); i < n; i++ {
		d.Sqr(d)
	}
	return d
}

// d <- a*e, for a base field element e.
func (d *GFp5) MulBase(a *GFp5, e *goldilocks.Element) *GFp5 {
	for i := 0; i < 5; i++ {
		d[i].Mul(&a[i], e)
	}
	return d
}

// d <- a*k, for a small integer k.
func (d *GFp5) MulSmall(a *GFp5, k uint64) *GFp5 {
	e := goldilocks.NewElement(k)
	return d.MulBase(a, &e)
}

// d <- a*(k*z), for a small integer k (k < 2^62).
func (d *GFp5) MulSmallK1(a *GFp5, k uint64) *GFp5 {
	k1 := goldilocks.NewElement(k)
	k3 := goldilocks.NewElement(3 * k)
	var c0 goldilocks.Element
	c0.Mul(&a[4], &k3)
	d[4].Mul(&a[3], &k1)
	d[3].Mul(&a[2], &k1)
	d[2].Mul(&a[1], &k1)
	d[1].Mul(&a[0], &k1)
	d[0] = c0
	return d
}

// d <- a*(k1*z - k0), for small integers k0 and k1 (k1 < 2^62).
func (d *GFp5) MulSmallKn01(a *GFp5, k0, k1 uint64) *GFp5 {
	var t GFp5
	t.MulSmall(a, k0)
	d.MulSmallK1(a, k1)
	return d.Sub(d, &t)
}

// Frobenius operator: d <- a^p
func (d *GFp5) Frob(a *GFp5) *GFp5 {
	d[0] = a[0]
	for i := 1; i < 5; i++ {
		d[i].Mul(&a[i], &frobK1[i-1])
	}
	return d
}

// Double Frobenius operator: d <- a^(p^2)
func (d *GFp5) Frob2(a *GFp5) *GFp5 {
	d[0] = a[0]
	for i := 1; i < 5; i++ {
		d[i].Mul(&a[i], &frobK2[i-1])
	}
	return d
}

// Repeated Frobenius operator: d <- a^(p^k)
func (d *GFp5) FrobX(a *GFp5, k uint) *GFp5 {
	d.Set(a)
	k %= 5
	for ; k >= 2; k -= 2 {
		d.Frob2(d)
	}
	if k == 1 {
		d.Frob(d)
	}
	return d
}

// Get the constant coefficient of a*b. This is used when the product
// is known to lie in the base field.
func mulToBase(a, b *GFp5) goldilocks.Element {
	var r, t goldilocks.Element
	r.Mul(&a[1], &b[4])
	t.Mul(&a[2], &b[3])
	r.Add(&r, &t)
	t.Mul(&a[3], &b[2])
	r.Add(&r, &t)
	t.Mul(&a[4], &b[1])
	r.Add(&r, &t)
	mulBy3(&r, &r)
	t.Mul(&a[0], &b[0])
	r.Add(&r, &t)
	return r
}

// Compute a^(p + p^2 + p^3 + p^4) into d, and return the norm of a
// (i.e. a^(1 + p + p^2 + p^3 + p^4), which is in GF(p)).
func normAux(d, a *GFp5) goldilocks.Element {
	var t GFp5
	d.Frob(a)
	t.Frob(d)
	d.Mul(d, &t)
	t.Frob2(d)
	d.Mul(d, &t)
	return mulToBase(a, d)
}

// Get the norm of a (product of all its conjugates). The norm is in GF(p).
func (d *GFp5) Norm() goldilocks.Element {
	var t GFp5
	return normAux(&t, d)
}

// Inversion: d <- 1/a. If a == 0, then d is set to 0.
func (d *GFp5) Inv(a *GFp5) *GFp5 {
	// 1/a = a^(p+p^2+p^3+p^4) / N(a)
	var t GFp5
	n := normAux(&t, a)
	n.Inverse(&n)
	return d.MulBase(&t, &n)
}

// Division: d <- a/b. If b == 0, then d is set to 0.
func (d *GFp5) Div(a, b *GFp5) *GFp5 {
	var t GFp5
	t.Inv(b)
	return d.Mul(a, &t)
}

// Test whether d is zero. Returned value is 1 if d == 0, 0 otherwise.
func (d *GFp5) IsZero() uint64 {
	var r uint64
	for i := 0; i < 5; i++ {
		r |= d[i].Uint64()
	}
	return 1 - ((r | -r) >> 63)
}

// Test whether d == a. Returned value is 1 on equality, 0 otherwise.
func (d *GFp5) Eq(a *GFp5) uint64 {
	var r uint64
	for i := 0; i < 5; i++ {
		r |= d[i].Uint64() ^ a[i].Uint64()
	}
	return 1 - ((r | -r) >> 63)
}

// Base field Legendre symbol, computed as r^((p-1)/2). Since
// (p-1)/2 = 2^63 - 2^31, this is r^(2^63) / r^(2^31).
func gfpLegendre(r *goldilocks.Element) int {
	if r.IsZero() {
		return 0
	}
	var y, x goldilocks.Element
	y.Set(r)
	for i := 0; i < 31; i++ {
		y.Square(&y)
	}
	x.Set(&y)
	for i := 0; i < 32; i++ {
		x.Square(&x)
	}
	y.Inverse(&y)
	x.Mul(&x, &y)
	if x.Equal(&gfpOne) {
		return 1
	}
	return -1
}

// Legendre symbol computation; return value:
//
//	 0  if d == 0
//	 1  if d != 0 and is a quadratic residue
//	-1  if d != 0 and is a not a quadratic residue
//
// Since the norm is multiplicative and maps squares of GF(p^5) onto
// squares of GF(p), the symbol of d is the base field symbol of its norm.
func (d *GFp5) Legendre() int {
	n := d.Norm()
	return gfpLegendre(&n)
}

// Square root computation. If the source value (a) is a quadratic
// residue, then this function sets this object (d) to a square root
// of a, and returns 1; otherwise, it sets d to zero and returns 0.
// Which of the two roots is returned is unspecified; use CanonicalSqrt()
// for a deterministic choice.
func (d *GFp5) Sqrt(a *GFp5) uint64 {
	// v <- a^(2^31)
	// e <- (a^(2^63 - 2^31 + 1) * (a^(2^63 - 2^31 + 1))^(p^2))^p
	// Then a*e^2 is in GF(p), and sqrt(a) = sqrt(a*e^2)/e.
	var v, t, e GFp5
	v.SqrX(a, 31)
	t.SqrX(&v, 32)
	v.Inv(&v)
	t.Mul(&t, &v).Mul(&t, a)
	e.Frob2(&t)
	e.Mul(&e, &t).Frob(&e)
	t.Sqr(&e)
	g := mulToBase(a, &t)

	var s goldilocks.Element
	if s.Sqrt(&g) == nil {
		*d = GFp5_ZERO
		return 0
	}
	e.Inv(&e)
	t.MulBase(&e, &s)

	// Verify the result; this also catches the corner cases where
	// the intermediate inversions had a zero input.
	var y GFp5
	y.Sqr(&t)
	if y.Eq(a) == 0 {
		*d = GFp5_ZERO
		return 0
	}
	d.Set(&t)
	return 1
}

// Canonical square root: same as Sqrt(), except that the returned root
// is always the one such that Sgn0() returns true.
func (d *GFp5) CanonicalSqrt(a *GFp5) uint64 {
	r := d.Sqrt(a)
	if !d.Sgn0() {
		d.Neg(d)
	}
	return r
}

// "Sign" of a field element, with the sgn0 convention of the IRTF
// hash-to-curve draft: the first non-zero coefficient (starting from the
// constant one) is inspected, and true is returned if it is even. For
// zero, true is returned. For any non-zero x, exactly one of x and -x
// has a true sign.
func (d *GFp5) Sgn0() bool {
	for i := 0; i < 5; i++ {
		v := d[i].Uint64()
		if v != 0 {
			return v&1 == 0
		}
	}
	return true
}

// Encode element into exactly 40 bytes (five little-endian 64-bit
// coefficients, each in the 0..p-1 range). The encoding is appended to
// the provided slice, and the resulting slice is returned. The extension
// is done in place if the provided slice has enough capacity.
func (d *GFp5) Encode(dst []byte) []byte {
	b2, buf := prepareAppend(dst, GFp5EncodedLen)
	for i := 0; i < 5; i++ {
		binary.LittleEndian.PutUint64(buf[8*i:], d[i].Uint64())
	}
	return b2
}

// Encode element into exactly 40 bytes.
func (d *GFp5) Bytes() [GFp5EncodedLen]byte {
	var b [GFp5EncodedLen]byte
	d.Encode(b[:0])
	return b
}

// Decode element from 40 bytes. If the source is invalid (a coefficient
// is out of range), then the decoded value is zero, and 0 is returned;
// otherwise, 1 is returned. The source MUST have length at least 40 bytes.
func (d *GFp5) Decode(src []byte) uint64 {
	var c [5]uint64
	var cc uint64 = 1
	for i := 0; i < 5; i++ {
		c[i] = binary.LittleEndian.Uint64(src[8*i:])
		if c[i] >= GFpModulus {
			cc = 0
		}
	}
	if cc == 0 {
		*d = GFp5_ZERO
		return 0
	}
	d.SetLimbs(c)
	return 1
}

// Get a printable representation of this value, as five coefficients
// (hexadecimal, constant coefficient first).
func (d GFp5) String() string {
	c := d.Limbs()
	return fmt.Sprintf("[0x%016X, 0x%016X, 0x%016X, 0x%016X, 0x%016X]",
		c[0], c[1], c[2], c[3], c[4])
}

// Extend a slice for appending n bytes. The two returned values are the
// new extended slice (no extra allocation if the original slice was large
// enough), and the sub-slice where data should be written.
func prepareAppend(b []byte, n int) (head, tail []byte) {
	len1 := len(b)
	len2 := len1 + n
	if cap(b) >= len2 {
		head = b[:len2]
	} else {
		head = make([]byte, len2)
		copy(head, b)
	}
	tail = head[len1:]
	return
}
