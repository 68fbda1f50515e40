package ecgfp5

import (
	"github.com/pkg/errors"

	gf "github.com/doubleodd/go-ecgfp5/internal/field"
)

// This file implements operations on curve points for EcGFp5
// (specifically, on elements of the prime order group defined over
// the curve y^2 = x*(x^2 + a*x + b) with a = 2 and b = 263*z, over
// GF(p^5)).
//
// API: a point is represented in memory by a Point structure. Contents
// of such a structure are opaque. These structures are mutable; the
// various functions such as Add() modify the point on which they are
// called. It is always acceptable to also use the destination structure
// as one of the operands. All such functions return a pointer to the
// structure on which they were called, so that calls may be
// syntactically chained.
//
// A point can be encoded to, and decoded from, a single field element
// w (40 bytes when serialized). Encoding is unique and verified. The
// group neutral element encodes as w = 0.
//
// Unlike the field and scalar code, most functions here are NOT
// constant-time: decoding, square roots and inversions have
// data-dependent timing. The group law itself (Add, Double, MDouble)
// has no data-dependent branch, and the window lookup used by Mul()
// and MulGen() scans whole windows.

// Point is the type for an EcGFp5 group element.
//
// Default value for a point structure is not valid. The NewPoint()
// function makes sure to return only initialized structures. If allocating
// a point structure manually, make sure to properly set it to a valid point
// before using it as source.
type Point struct {
	// Internally, we use fractional (x,u) coordinates, which have
	// complete and efficient formulas: x = X/Z and u = U/T = x/y.
	// For the neutral, u = 0.
	x, z, u, t gf.GFp5
}

// AffinePoint is a group element in affine (x, u) coordinates (i.e. with
// Z = T = 1). It is used for precomputed windows and tables; the neutral
// element is represented by (0, 0).
type AffinePoint struct {
	x, u gf.GFp5
}

// Curve equation constant 'b' is b1*z.
const curveB1 uint64 = 263

// Curve equation constant 'a'.
var curveA = gf.GFp5{}

// 4*b
var curveB4 = gf.GFp5{}

func init() {
	curveA.SetUint64(2)
	curveB4.MulSmallK1(&gf.GFp5_ONE, 4*curveB1)
}

// Preallocated neutral point. Do not modify.
var ecgfp5Neutral = Point{
	x: gf.GFp5_ZERO,
	z: gf.GFp5_ONE,
	u: gf.GFp5_ZERO,
	t: gf.GFp5_ONE,
}

// Preallocated conventional generator point (encoding is w = 4).
// Do not modify.
var ecgfp5Generator = Point{
	x: NewElement(
		12883135586176881569, 4356519642755055268, 5248930565894896907,
		2165973894480315022, 2448410071095648785),
	z: gf.GFp5_ONE,
	u: NewElement(13835058052060938241, 0, 0, 0, 0),
	t: gf.GFp5_ONE,
}

// Create a new point. The point is set to the group neutral element.
func NewPoint() *Point {
	P := new(Point)
	*P = ecgfp5Neutral
	return P
}

// Set the point P to the neutral element.
// A pointer to this structure is returned.
func (P *Point) Neutral() *Point {
	*P = ecgfp5Neutral
	return P
}

// Set the point P to the conventional generator (G).
// A pointer to this structure is returned.
func (P *Point) Generator() *Point {
	*P = ecgfp5Generator
	return P
}

// Get the encoding of this point as a field element: w = 1/u (0 for
// the neutral).
func (P *Point) EncodeElement() Element {
	var w gf.GFp5
	w.Inv(&P.u).Mul(&w, &P.t)
	return w
}

// Encode a point into exactly 40 bytes (the serialized field element
// w). The bytes are appended to the provided slice; the new slice is
// returned. The extension is done in place if the provided slice has
// enough capacity.
func (P *Point) Encode(dst []byte) []byte {
	w := P.EncodeElement()
	return w.Encode(dst)
}

// Encode a point into exactly 40 bytes.
func (P *Point) Bytes() [gf.GFp5EncodedLen]byte {
	var d [gf.GFp5EncodedLen]byte
	P.Encode(d[:0])
	return d
}

// Test whether a given field element is a valid encoding of a group
// element. This is faster than actually decoding it.
func ValidateElement(w *Element) bool {
	if w.IsZero() == 1 {
		return true
	}

	// Value w encodes a point if and only if (w^2 - a)^2 - 4*b is a
	// quadratic residue.
	var e gf.GFp5
	e.Sqr(w).Sub(&e, &curveA)
	e.Sqr(&e).Sub(&e, &curveB4)
	return e.Legendre() == 1
}

// Decode a point from a field element w. Returned value is 1 if the
// point could be successfully decoded into a non-neutral group element,
// 0 if it could be successfully decoded as the neutral point, or -1
// if it could not be decoded. If the decoding was not successful, then
// the destination structure is set to the neutral.
// THIS IS NOT CONSTANT-TIME.
func (P *Point) DecodeElement(w *Element) int {
	if w.IsZero() == 1 {
		P.Neutral()
		return 0
	}

	// Solve x^2 - (w^2 - a)*x + b = 0:
	//   e <- w^2 - a
	//   r <- sqrt(e^2 - 4*b)
	//   x <- (e + r)/2  or  (e - r)/2
	var e, r, x gf.GFp5
	e.Sqr(w).Sub(&e, &curveA)
	r.Sqr(&e).Sub(&r, &curveB4)
	if r.Sqrt(&r) != 1 {
		P.Neutral()
		return -1
	}

	// The two solutions have product b, which is not a square; thus,
	// exactly one of them is a square. Group elements use the other one.
	x.Add(&e, &r).Half(&x)
	if x.Legendre() == 1 {
		x.Sub(&e, &r).Half(&x)
	}

	// Point is (x:1:1:w) (because u = 1/w).
	P.x.Set(&x)
	P.z.Set(&gf.GFp5_ONE)
	P.u.Set(&gf.GFp5_ONE)
	P.t.Set(w)
	return 1
}

// Decode a point from exactly 40 bytes. Returned value is 1 if the
// point could be successfully decoded into a non-neutral group element,
// 0 if it could be successfully decoded as the neutral point, or -1
// if it could not be decoded (non-canonical field element, or not the
// encoding of a group element). If the decoding was not successful,
// then the destination structure is set to the neutral.
// THIS IS NOT CONSTANT-TIME.
func (P *Point) Decode(src []byte) int {
	var w gf.GFp5
	if len(src) != gf.GFp5EncodedLen || w.Decode(src) != 1 {
		P.Neutral()
		return -1
	}
	return P.DecodeElement(&w)
}

// DecodePoint decodes a point from a field element. If w is not a valid
// encoding, then ErrInvalidEncoding is returned.
func DecodePoint(w *Element) (*Point, error) {
	P := NewPoint()
	if P.DecodeElement(w) < 0 {
		return nil, errors.Wrapf(ErrInvalidEncoding, "w = %s", w)
	}
	return P, nil
}

// Test whether a point is the neutral element.
// Returned value is 1 for the neutral, 0 otherwise.
func (P *Point) IsNeutral() int {
	return int(P.u.IsZero())
}

// Test whether this structure (P) represents the same point as the
// provided other structure (Q).
// Returned value is 1 if both points are the same, 0 otherwise.
func (P *Point) Equal(Q *Point) int {
	var t1, t2 gf.GFp5
	t1.Mul(&P.u, &Q.t)
	t2.Mul(&P.t, &Q.u)
	return int(t1.Eq(&t2))
}

// Copy a point structure into another.
// A pointer to this structure is returned.
func (P *Point) Set(Q *Point) *Point {
	P.x.Set(&Q.x)
	P.z.Set(&Q.z)
	P.u.Set(&Q.u)
	P.t.Set(&Q.t)
	return P
}

// Set this point from affine coordinates.
// A pointer to this structure is returned.
func (P *Point) SetAffine(A *AffinePoint) *Point {
	P.x.Set(&A.x)
	P.z.Set(&gf.GFp5_ONE)
	P.u.Set(&A.u)
	P.t.Set(&gf.GFp5_ONE)
	return P
}

// If ctl == 1, then copy point P1 into P.
// If ctl == 0, then copy point P2 into P.
// ctl MUST be 0 or 1. This is a constant-time selection primitive.
func (P *Point) Select(P1, P2 *Point, ctl int) {
	P.x.Select(&P1.x, &P2.x, uint64(ctl))
	P.z.Select(&P1.z, &P2.z, uint64(ctl))
	P.u.Select(&P1.u, &P2.u, uint64(ctl))
	P.t.Select(&P1.t, &P2.t, uint64(ctl))
}

// Set this point to the sum of the two provided points.
// A pointer to this structure (P) is returned.
func (P *Point) Add(P1, P2 *Point) *Point {
	// cost: 10M (counting multiplications by b as free)
	var t1, t2, t3, t4, t5, t6, t7, t8, t9, t10 gf.GFp5

	// t1 <- X1*X2
	// t2 <- Z1*Z2
	// t3 <- U1*U2
	// t4 <- T1*T2
	t1.Mul(&P1.x, &P2.x)
	t2.Mul(&P1.z, &P2.z)
	t3.Mul(&P1.u, &P2.u)
	t4.Mul(&P1.t, &P2.t)

	// t5 <- (X1 + Z1)*(X2 + Z2) - t1 - t2 = X1*Z2 + X2*Z1
	t5.Add(&P1.x, &P1.z)
	t8.Add(&P2.x, &P2.z)
	t5.Mul(&t5, &t8).Sub(&t5, &t1).Sub(&t5, &t2)

	// t6 <- (U1 + T1)*(U2 + T2) - t3 - t4 = U1*T2 + U2*T1
	t6.Add(&P1.u, &P1.t)
	t9.Add(&P2.u, &P2.t)
	t6.Mul(&t6, &t9).Sub(&t6, &t3).Sub(&t6, &t4)

	// t7 <- t1 + b*t2
	t7.MulSmallK1(&t2, curveB1).Add(&t7, &t1)

	// t8 <- t4*t7
	t8.Mul(&t4, &t7)

	// t9 <- t3*(2*b*t5 + a*t7)  (with a = 2)
	t9.MulSmallK1(&t5, 2*curveB1)
	t10.Double(&t7)
	t9.Add(&t9, &t10).Mul(&t9, &t3)

	// t10 <- (t4 + alpha*t3)*(t5 + t7)  (with alpha = 2)
	t10.Double(&t3).Add(&t10, &t4)
	t5.Add(&t5, &t7)
	t10.Mul(&t10, &t5)

	// U3 <- -t6*(t1 - b*t2)
	t2.MulSmallK1(&t2, curveB1).Sub(&t2, &t1)
	P.u.Mul(&t6, &t2)

	// Z3 <- t8 - t9
	P.z.Sub(&t8, &t9)

	// T3 <- t8 + t9
	P.t.Add(&t8, &t9)

	// X3 <- b*(t10 - t8 + beta*t9)  (with beta = 0)
	t10.Sub(&t10, &t8)
	P.x.MulSmallK1(&t10, curveB1)

	return P
}

// Set this point to the difference of the two provided points (P1 - P2).
// A pointer to this structure (P) is returned.
func (P *Point) Sub(P1, P2 *Point) *Point {
	var P2n Point
	P2n.x = P2.x
	P2n.z = P2.z
	P2n.u.Neg(&P2.u)
	P2n.t = P2.t
	return P.Add(P1, &P2n)
}

// Set this point to the sum of the two provided points, the second of
// which being in affine (x, u) coordinates.
// A pointer to this structure (P) is returned.
func (P *Point) AddAffine(P1 *Point, P2 *AffinePoint) *Point {
	// cost: 8M
	var t1, t3, t5, t6, t7, t8, t9, t10 gf.GFp5

	// t1 <- X1*X2
	// t2 <- Z1*Z2 = Z1
	// t3 <- U1*U2
	// t4 <- T1*T2 = T1
	t1.Mul(&P1.x, &P2.x)
	t3.Mul(&P1.u, &P2.u)

	// t5 <- X1*Z2 + X2*Z1 = X1 + X2*Z1
	t5.Mul(&P1.z, &P2.x).Add(&t5, &P1.x)

	// t6 <- U1*T2 + U2*T1 = U1 + U2*T1
	t6.Mul(&P1.t, &P2.u).Add(&t6, &P1.u)

	// t7 <- t1 + b*Z1
	t7.MulSmallK1(&P1.z, curveB1).Add(&t7, &t1)

	// t8 <- T1*t7
	t8.Mul(&P1.t, &t7)

	// t9 <- t3*(2*b*t5 + a*t7)  (with a = 2)
	t9.MulSmallK1(&t5, 2*curveB1)
	t10.Double(&t7)
	t9.Add(&t9, &t10).Mul(&t9, &t3)

	// t10 <- (T1 + alpha*t3)*(t5 + t7)  (with alpha = 2)
	t10.Double(&t3).Add(&t10, &P1.t)
	t5.Add(&t5, &t7)
	t10.Mul(&t10, &t5)

	// U3 <- -t6*(t1 - b*Z1)
	t5.MulSmallK1(&P1.z, curveB1).Sub(&t5, &t1)
	P.u.Mul(&t6, &t5)

	// Z3 <- t8 - t9
	P.z.Sub(&t8, &t9)

	// T3 <- t8 + t9
	P.t.Add(&t8, &t9)

	// X3 <- b*(t10 - t8)
	t10.Sub(&t10, &t8)
	P.x.MulSmallK1(&t10, curveB1)

	return P
}

// Set this point to the difference of the two provided points, the second of
// which being in affine (x, u) coordinates.
// A pointer to this structure (P) is returned.
func (P *Point) SubAffine(P1 *Point, P2 *AffinePoint) *Point {
	var P2n AffinePoint
	P2n.x = P2.x
	P2n.u.Neg(&P2.u)
	return P.AddAffine(P1, &P2n)
}

// Set this point (P) to the double of the provided point Q.
// A pointer to this structure (P) is returned.
func (P *Point) Double(Q *Point) *Point {
	// cost: 4M+5S
	var t1, t2, x1, z1, t3, w1, t4 gf.GFp5

	// t1 <- Z*T
	// t2 <- t1*T
	// X1 <- t2^2
	// Z1 <- t1*U
	// t3 <- U^2
	// W1 <- t2 - 2*(X + Z)*t3
	// t4 <- Z1^2
	t1.Mul(&Q.z, &Q.t)
	t2.Mul(&t1, &Q.t)
	x1.Sqr(&t2)
	z1.Mul(&t1, &Q.u)
	t3.Sqr(&Q.u)
	w1.Add(&Q.x, &Q.z).Double(&w1).Mul(&w1, &t3).Sub(&t2, &w1)
	t4.Sqr(&z1)

	// X' <- 4*b*t4
	// Z' <- W1^2
	// U' <- (W1 + Z1)^2 - t4 - Z'
	// T' <- 2*X1 - 4*t4 - Z'
	P.x.MulSmallK1(&t4, 4*curveB1)
	P.z.Sqr(&w1)
	P.u.Add(&w1, &z1).Sqr(&P.u).Sub(&P.u, &t4).Sub(&P.u, &P.z)
	t4.Double(&t4).Double(&t4)
	P.t.Double(&x1).Sub(&P.t, &t4).Sub(&P.t, &P.z)

	return P
}

// Set this point (P) to (2^n)*Q (i.e. perform n successive doublings).
// This is faster than calling Double() n times.
// A pointer to this structure (P) is returned.
func (P *Point) MDouble(Q *Point, n uint) *Point {
	// Handle corner cases (0 or 1 double).
	if n == 0 {
		return P.Set(Q)
	}
	if n == 1 {
		return P.Double(Q)
	}

	// cost: n*(2M+5S) + 2M+1S
	// Intermediate values are kept in (x, w) Jacobian-like coordinates
	// (X:W:J), with x = X/J^2 and w = W/J.
	var t1, t2, t3, t4, t5, x1, z1, w1, x, w, j gf.GFp5

	// First doubling, with conversion out of (x, u) coordinates.
	t1.Mul(&Q.z, &Q.t)
	t2.Mul(&t1, &Q.t)
	x1.Sqr(&t2)
	z1.Mul(&t1, &Q.u)
	t3.Sqr(&Q.u)
	w1.Add(&Q.x, &Q.z).Double(&w1).Mul(&w1, &t3).Sub(&t2, &w1)
	t4.Sqr(&w1)
	t5.Sqr(&z1)
	x.Sqr(&t5).MulSmallK1(&x, 16*curveB1)
	t5.Double(&t5).Double(&t5)
	w.Double(&x1).Sub(&w, &t5).Sub(&w, &t4)
	t5.Sqr(&z1)
	j.Add(&w1, &z1).Sqr(&j).Sub(&j, &t4).Sub(&j, &t5)

	for i := uint(2); i < n; i++ {
		t1.Sqr(&j)
		t2.Sqr(&t1)
		t3.Sqr(&w)
		t4.Sqr(&t3)
		t5.Add(&w, &j).Sqr(&t5).Sub(&t5, &t1).Sub(&t5, &t3)
		j.Add(&x, &t1).Double(&j).Sub(&j, &t3).Mul(&j, &t5)
		x.Mul(&t2, &t4).MulSmallK1(&x, 16*curveB1)
		// W' <- -W^4 - J^4*(4*b - 4)
		w.MulSmallKn01(&t2, 4, 4*curveB1).Add(&w, &t4).Neg(&w)
	}

	// Last doubling, with conversion back into (x, u) coordinates.
	t1.Sqr(&w)
	t2.Sqr(&j)
	t3.Add(&w, &j).Sqr(&t3).Sub(&t3, &t1).Sub(&t3, &t2)
	w1.Add(&x, &t2).Double(&w1).Sub(&t1, &w1)
	P.x.Sqr(&t3).MulSmallK1(&P.x, curveB1)
	P.z.Sqr(&w1)
	P.u.Mul(&t3, &w1)
	t2.Double(&t2)
	t2.Sub(&t1, &t2)
	t1.Double(&t1)
	P.t.Mul(&t1, &t2).Sub(&P.t, &P.z)

	return P
}

// Negate a point.
// A pointer to this structure (P) is returned.
func (P *Point) Neg(Q *Point) *Point {
	P.x.Set(&Q.x)
	P.z.Set(&Q.z)
	P.u.Neg(&Q.u)
	P.t.Set(&Q.t)
	return P
}

// Get the affine coordinates of this point. For the neutral, (0, 0) is
// returned. This function uses one inversion; to convert many points,
// use BatchToAffine().
func (P *Point) Affine() AffinePoint {
	var A AffinePoint
	var m gf.GFp5
	m.Mul(&P.z, &P.t).Inv(&m)
	A.x.Mul(&P.x, &P.t).Mul(&A.x, &m)
	A.u.Mul(&P.u, &P.z).Mul(&A.u, &m)
	return A
}

// Get the x coordinate of this affine point.
func (A *AffinePoint) X() Element {
	return A.x
}

// Get the u coordinate of this affine point (u = x/y, with u = 0 for
// the neutral).
func (A *AffinePoint) U() Element {
	return A.u
}

// Negate an affine point.
// A pointer to this structure (A) is returned.
func (A *AffinePoint) Neg(B *AffinePoint) *AffinePoint {
	A.x.Set(&B.x)
	A.u.Neg(&B.u)
	return A
}

// Test whether two affine points are equal. Returned value is 1 on
// equality, 0 otherwise.
func (A *AffinePoint) Equal(B *AffinePoint) int {
	return int(A.x.Eq(&B.x) & A.u.Eq(&B.u))
}
