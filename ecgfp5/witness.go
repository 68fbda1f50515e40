package ecgfp5

import (
	gf "github.com/doubleodd/go-ecgfp5/internal/field"
)

// Witness values for fallible operations.
//
// An arithmetic circuit cannot branch or fail; for inversions, divisions,
// square roots and point decoding, the prover computes the result outside
// of the circuit (the witness), and the circuit then only checks the
// defining relation. The functions below compute such witnesses, and the
// Check*() functions evaluate the corresponding relations. A witness is
// always produced, even for inputs with no valid result; in that case,
// the relation does not hold.

// QuotientWitness returns num/den, or zero if den is zero.
// Relation: q*den == num.
func QuotientWitness(num, den *Element) Element {
	var q gf.GFp5
	q.Div(num, den)
	return q
}

// CheckQuotient reports whether q*den == num.
func CheckQuotient(q, num, den *Element) bool {
	var t gf.GFp5
	t.Mul(q, den)
	return t.Eq(num) == 1
}

// InverseWitness returns 1/x, or zero if x is zero.
// Relation: inv*x == 1.
func InverseWitness(x *Element) Element {
	return QuotientWitness(&gf.GFp5_ONE, x)
}

// CheckInverse reports whether inv*x == 1.
func CheckInverse(inv, x *Element) bool {
	return CheckQuotient(inv, &gf.GFp5_ONE, x)
}

// SqrtWitness returns the canonical square root of x (the root r such
// that r.Sgn0() is true) and true, or zero and false if x is not a
// quadratic residue.
// Relation: root*root == x (which holds for a non-square x only if
// x == 0, i.e. never).
func SqrtWitness(x *Element) (root Element, isSquare bool) {
	ok := root.CanonicalSqrt(x)
	return root, ok == 1
}

// CheckSqrt reports whether root*root == x.
func CheckSqrt(root, x *Element) bool {
	var t gf.GFp5
	t.Sqr(root)
	return t.Eq(x) == 1
}

// DecodeWitness returns the short Weierstrass coordinates of the point
// encoded by w, and true; if w is not a valid encoding, then the point
// at infinity and false are returned. For w == 0, the point at infinity
// and true are returned.
// Relation: see CheckDecode().
func DecodeWitness(w *Element) (WeierstrassPoint, bool) {
	W, err := DecodeWeierstrass(w)
	if err != nil {
		return WeierstrassInfinity(), false
	}
	return W, true
}

// CheckDecode reports whether W is the group element encoded by w: W is
// the point at infinity and w == 0, or W is a group element and
// Y == w*(a/3 - X).
func CheckDecode(W *WeierstrassPoint, w *Element) bool {
	if W.IsInf {
		return w.IsZero() == 1
	}
	if !W.IsInGroup() {
		return false
	}
	var t gf.GFp5
	t.Sub(&aThird, &W.X).Mul(&t, w)
	return t.Eq(&W.Y) == 1
}
