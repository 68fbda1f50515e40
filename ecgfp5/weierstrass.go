package ecgfp5

import (
	"github.com/pkg/errors"

	gf "github.com/doubleodd/go-ecgfp5/internal/field"
)

// Short Weierstrass representation of group elements.
//
// The curve y^2 = x*(x^2 + a*x + b) is isomorphic to the short
// Weierstrass curve Y^2 = X^3 + A*X + B, with:
//
//	A = (3*b - a^2)/3
//	B = a*(2*a^2 - 9*b)/27
//
// The group of prime order n is mapped to the points of order n of the
// short Weierstrass curve (the neutral N maps to the point at infinity).
// This is the representation used by arithmetic circuits, which cannot
// use the complete formulas in (x, u) coordinates; functions here are
// simple affine routines, usable as reference for such circuits.
// NONE OF THESE FUNCTIONS IS CONSTANT-TIME.

// WeierstrassPoint is a point on the short Weierstrass curve, in affine
// coordinates. If IsInf is true, then the point is the point at infinity
// and X and Y are ignored.
type WeierstrassPoint struct {
	X, Y  Element
	IsInf bool
}

// Curve constants for the short Weierstrass curve.
var weierstrassA = NewElement(6148914689804861439, 263, 0, 0, 0)
var weierstrassB = NewElement(15713893096167979237, 6148914689804861265, 0, 0, 0)

// a/3
var aThird = NewElement(6148914689804861441, 0, 0, 0, 0)

// Conventional generator, in short Weierstrass coordinates.
var weierstrassGenerator = WeierstrassPoint{
	X: NewElement(
		11712523173042564207, 14090224426659529053, 13197813503519687414,
		16280770174934269299, 15998333998318935536),
	Y: NewElement(
		14639054205878357578, 17426078571020221072, 2548978194165003307,
		8663895577921260088, 9793640284382595140),
}

// WeierstrassGenerator returns the conventional generator in short
// Weierstrass coordinates.
func WeierstrassGenerator() WeierstrassPoint {
	return weierstrassGenerator
}

// WeierstrassInfinity returns the point at infinity (image of the
// neutral element).
func WeierstrassInfinity() WeierstrassPoint {
	return WeierstrassPoint{IsInf: true}
}

// Test whether this point is on the short Weierstrass curve. The point
// at infinity is always on the curve.
func (W *WeierstrassPoint) IsOnCurve() bool {
	if W.IsInf {
		return true
	}
	var y2, t gf.GFp5
	y2.Sqr(&W.Y)
	t.Sqr(&W.X).Add(&t, &weierstrassA).Mul(&t, &W.X).Add(&t, &weierstrassB)
	return y2.Eq(&t) == 1
}

// Test whether this point represents a group element: it must be on the
// curve, and have order n (or be the point at infinity). Points of order
// n are exactly the points which are not 2-torsion and whose x
// coordinate on the original curve is a square.
func (W *WeierstrassPoint) IsInGroup() bool {
	if W.IsInf {
		return true
	}
	if !W.IsOnCurve() || W.Y.IsZero() == 1 {
		return false
	}
	var x gf.GFp5
	x.Sub(&W.X, &aThird)
	return x.Legendre() == 1
}

// Test whether two points are equal.
func (W *WeierstrassPoint) Equal(W2 *WeierstrassPoint) bool {
	if W.IsInf || W2.IsInf {
		return W.IsInf == W2.IsInf
	}
	return W.X.Eq(&W2.X) == 1 && W.Y.Eq(&W2.Y) == 1
}

// Negate a point.
// A pointer to this structure is returned.
func (W *WeierstrassPoint) Neg(W1 *WeierstrassPoint) *WeierstrassPoint {
	W.X = W1.X
	W.Y.Neg(&W1.Y)
	W.IsInf = W1.IsInf
	return W
}

// Set this point to W1 + W2. The two cases (distinct x coordinates,
// or same x coordinate) are handled separately; in the latter case,
// the result is either the double of W1, or the point at infinity.
// A pointer to this structure is returned.
func (W *WeierstrassPoint) Add(W1, W2 *WeierstrassPoint) *WeierstrassPoint {
	if W1.IsInf {
		*W = *W2
		return W
	}
	if W2.IsInf {
		*W = *W1
		return W
	}
	if W1.X.Eq(&W2.X) == 1 {
		var s gf.GFp5
		s.Add(&W1.Y, &W2.Y)
		if s.IsZero() == 1 {
			W.X = gf.GFp5_ZERO
			W.Y = gf.GFp5_ZERO
			W.IsInf = true
			return W
		}
		return W.Double(W1)
	}

	// lambda = (y2 - y1)/(x2 - x1)
	var l, t, x3 gf.GFp5
	l.Sub(&W2.Y, &W1.Y)
	t.Sub(&W2.X, &W1.X)
	l.Div(&l, &t)
	return W.setFromSlope(&l, &W1.X, &W2.X, &W1.Y, &x3)
}

// Set this point to 2*W1.
// A pointer to this structure is returned.
func (W *WeierstrassPoint) Double(W1 *WeierstrassPoint) *WeierstrassPoint {
	if W1.IsInf || W1.Y.IsZero() == 1 {
		W.X = gf.GFp5_ZERO
		W.Y = gf.GFp5_ZERO
		W.IsInf = true
		return W
	}

	// lambda = (3*x1^2 + A)/(2*y1)
	var l, t, x3 gf.GFp5
	l.Sqr(&W1.X).MulSmall(&l, 3).Add(&l, &weierstrassA)
	t.Double(&W1.Y)
	l.Div(&l, &t)
	return W.setFromSlope(&l, &W1.X, &W1.X, &W1.Y, &x3)
}

// x3 = lambda^2 - x1 - x2
// y3 = lambda*(x1 - x3) - y1
func (W *WeierstrassPoint) setFromSlope(l, x1, x2, y1, x3 *gf.GFp5) *WeierstrassPoint {
	var y3 gf.GFp5
	x3.Sqr(l).Sub(x3, x1).Sub(x3, x2)
	y3.Sub(x1, x3).Mul(&y3, l).Sub(&y3, y1)
	W.X = *x3
	W.Y = y3
	W.IsInf = false
	return W
}

// Get the encoding of this point as a field element; this is the same
// value as the encoding of the corresponding group element:
// w = Y/(a/3 - X) (w = 0 for the point at infinity).
func (W *WeierstrassPoint) EncodeElement() Element {
	var w gf.GFp5
	if W.IsInf {
		return w
	}
	w.Sub(&aThird, &W.X).Inv(&w).Mul(&w, &W.Y)
	return w
}

// DecodeWeierstrass decodes a field element into a point in short
// Weierstrass coordinates. ErrInvalidEncoding is returned if w is not a
// valid point encoding.
func DecodeWeierstrass(w *Element) (WeierstrassPoint, error) {
	var P Point
	if P.DecodeElement(w) < 0 {
		return WeierstrassPoint{}, errors.Wrapf(ErrInvalidEncoding, "w = %s", w)
	}
	return P.ToWeierstrass(), nil
}

// Convert this point into short Weierstrass coordinates.
func (P *Point) ToWeierstrass() WeierstrassPoint {
	if P.IsNeutral() == 1 {
		return WeierstrassInfinity()
	}

	// The (x, u) coordinates use the representative of the point in
	// the coset of N; the point of order n is at x' = b/x. With
	// w = 1/u = T/U, y' = -w*x'.
	//   m  <- 1/(X*U)
	//   x' <- b*Z*U*m
	//   w  <- T*X*m
	var m, xr, w gf.GFp5
	m.Mul(&P.x, &P.u).Inv(&m)
	xr.Mul(&P.z, &P.u).Mul(&xr, &m).MulSmallK1(&xr, curveB1)
	w.Mul(&P.t, &P.x).Mul(&w, &m)

	var W WeierstrassPoint
	W.X.Add(&xr, &aThird)
	W.Y.Mul(&w, &xr).Neg(&W.Y)
	return W
}

// Set this point from short Weierstrass coordinates. If the source is
// not a group element (not on the curve, or not of order n), then this
// point is set to the neutral and ErrInvalidPoint is returned.
func (P *Point) SetWeierstrass(W *WeierstrassPoint) error {
	if W.IsInf {
		P.Neutral()
		return nil
	}
	if !W.IsInGroup() {
		P.Neutral()
		return errors.Wrapf(ErrInvalidPoint, "X = %s, Y = %s", &W.X, &W.Y)
	}

	// x' = X - a/3 is the x coordinate of the point of order n on the
	// original curve. In (x, u) coordinates:
	//   x = b/x'
	//   u = x/y = -x'/Y
	// which gives (X:Z:U:T) = (b:x':-x':Y).
	var xr gf.GFp5
	xr.Sub(&W.X, &aThird)
	P.x.MulSmallK1(&gf.GFp5_ONE, curveB1)
	P.z = xr
	P.u.Neg(&xr)
	P.t = W.Y
	return nil
}
