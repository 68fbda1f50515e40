package ecgfp5

import (
	gf "github.com/doubleodd/go-ecgfp5/internal/field"
)

// Point multiplication uses a 5-bit signed window: scalars are recoded
// into digits in the -15..+16 range, and each digit selects a multiple
// of the base point (or its opposite) in a window of 16 precomputed
// points, stored in affine (x, u) coordinates. Multiplication routines
// are parameterized by the lookup strategy: constant-time (all window
// entries are read) or variable-time (direct indexing).

// WindowLookup extracts points from a window of precomputed points.
// A window is a slice win[] of affine points such that win[i] = (i+1)*P
// for some point P. Lookup() sets A to k*P, for k in the range
// -len(win)..+len(win). For k == 0, A is set to the neutral (0, 0).
type WindowLookup interface {
	Lookup(A *AffinePoint, win []AffinePoint, k int32)
}

// ConstantTimeLookup reads all window entries, and combines them with
// masks; memory access pattern and timing do not depend on the digit.
type ConstantTimeLookup struct{}

// VartimeLookup indexes the window directly.
// THIS IS NOT CONSTANT-TIME.
type VartimeLookup struct{}

// Lookup sets A to k*P, with win[i] = (i+1)*P.
func (ConstantTimeLookup) Lookup(A *AffinePoint, win []AffinePoint, k int32) {
	// Split k into its sign (sk = -1 or 0) and absolute value.
	sk := k >> 31
	ak := (k ^ sk) - sk

	// Initialize A to all-zeros (which is the valid representation
	// of the neutral element).
	A.x = gf.GFp5_ZERO
	A.u = gf.GFp5_ZERO

	// Lookup all values.
	for i := range win {
		m := int64(ak) - int64(i+1)
		mm := ^uint64((m | -m) >> 63)
		A.x.CondSet(&win[i].x, mm)
		A.u.CondSet(&win[i].u, mm)
	}

	// Negate the point if k < 0.
	A.u.CondNeg(&A.u, uint64(sk&1))
}

// Lookup sets A to k*P, with win[i] = (i+1)*P.
// THIS IS NOT CONSTANT-TIME.
func (VartimeLookup) Lookup(A *AffinePoint, win []AffinePoint, k int32) {
	switch {
	case k > 0:
		*A = win[k-1]
	case k < 0:
		A.Neg(&win[-k-1])
	default:
		A.x = gf.GFp5_ZERO
		A.u = gf.GFp5_ZERO
	}
}

// Convert many points to affine coordinates, with a single inversion
// (Montgomery's trick). The converted point src[i] is written into
// dst[i]; dst must have at least as many elements as src.
func BatchToAffine(dst []AffinePoint, src []Point) {
	n := len(src)
	if n == 0 {
		return
	}
	dst = dst[:n]

	// Each point needs 1/(Z*T): x = X*T/(Z*T) and u = U*Z/(Z*T).
	// First pass: dst[i].u <- Z_i*T_i and dst[i].x <- prod_{j<i} Z_j*T_j
	var m gf.GFp5
	m.Set(&gf.GFp5_ONE)
	for i := 0; i < n; i++ {
		dst[i].x.Set(&m)
		dst[i].u.Mul(&src[i].z, &src[i].t)
		m.Mul(&m, &dst[i].u)
	}

	// m <- 1/prod_j Z_j*T_j
	m.Inv(&m)

	// Second pass, from the end: at the start of iteration i,
	// m = 1/prod_{j<=i} Z_j*T_j.
	for i := n - 1; i >= 0; i-- {
		var f gf.GFp5
		f.Mul(&m, &dst[i].x)
		m.Mul(&m, &dst[i].u)
		dst[i].x.Mul(&src[i].x, &src[i].t).Mul(&dst[i].x, &f)
		dst[i].u.Mul(&src[i].u, &src[i].z).Mul(&dst[i].u, &f)
	}
}

// Fill the 5-bit window for point Q: win[i] = (i+1)*Q. The window
// entries are computed in projective coordinates into tmp[], then
// normalized into win[].
func makeWindow5(win []AffinePoint, tmp []Point, Q *Point) {
	tmp[0] = *Q
	for i := 1; i < 16; i++ {
		if (i & 1) == 0 {
			tmp[i].Add(Q, &tmp[i-1])
		} else {
			tmp[i].Double(&tmp[i>>1])
		}
	}
	BatchToAffine(win, tmp[:16])
}

// Multiply a point Q by a given scalar s.
// This is constant-time with regard to both Q and s.
// A pointer to this structure (P) is returned.
func (P *Point) Mul(Q *Point, s *Scalar) *Point {
	return P.MulWith(ConstantTimeLookup{}, Q, s)
}

// Multiply a point Q by a given scalar s, with the provided window
// lookup strategy.
// A pointer to this structure (P) is returned.
func (P *Point) MulWith(lk WindowLookup, Q *Point, s *Scalar) *Point {
	var win [16]AffinePoint
	var tmp [16]Point
	makeWindow5(win[:], tmp[:], Q)

	// Recode the scalar: 64 digits are needed for 319 bits.
	ss := s.recode5()

	// Lookup initial accumulator with the top digit, then process
	// other digits from top to bottom.
	var A AffinePoint
	var R Point
	lk.Lookup(&A, win[:], ss[63])
	R.SetAffine(&A)
	for i := 62; i >= 0; i-- {
		R.MDouble(&R, 5)
		lk.Lookup(&A, win[:], ss[i])
		R.AddAffine(&R, &A)
	}
	return P.Set(&R)
}

// Multiply the conventional generator by a given scalar s. This is
// functionally equivalent (but faster) to P.Generator().Mul(&P, s).
// This is constant-time with regard to s.
// A pointer to this structure (P) is returned.
func (P *Point) MulGen(s *Scalar) *Point {
	return P.MulGenWith(ConstantTimeLookup{}, s)
}

// Multiply the conventional generator by a given scalar s, with the
// provided window lookup strategy.
// A pointer to this structure (P) is returned.
func (P *Point) MulGenWith(lk WindowLookup, s *Scalar) *Point {
	ss := s.recode5()

	// The 64 digits are split into eight chunks of eight digits; chunk
	// j uses the window of multiples of 2^(40*j)*G. All chunks are
	// processed in parallel, from their top digit down.
	var A AffinePoint
	var R Point
	lk.Lookup(&A, mulgenTables[0][:], ss[7])
	R.SetAffine(&A)
	for j := 1; j < 8; j++ {
		lk.Lookup(&A, mulgenTables[j][:], ss[8*j+7])
		R.AddAffine(&R, &A)
	}
	for i := 6; i >= 0; i-- {
		R.MDouble(&R, 5)
		for j := 0; j < 8; j++ {
			lk.Lookup(&A, mulgenTables[j][:], ss[8*j+i])
			R.AddAffine(&R, &A)
		}
	}
	return P.Set(&R)
}

// Add to point P a point from a window, given a signed digit.
// THIS IS NOT CONSTANT-TIME.
func (P *Point) addFromWindowVartime(win []AffinePoint, k int32) {
	if k > 0 {
		P.AddAffine(P, &win[k-1])
	} else if k < 0 {
		P.SubAffine(P, &win[-k-1])
	}
}

// Check whether R = s*G + k*Q (with G being the conventional generator).
// This function is meant to support signature verification.
// IT IS NOT CONSTANT-TIME; thus, it should be used only on public
// elements (which is normally the case when verifying signatures).
// Returned value is true on match, false otherwise.
func VerifyMulAddVartime(Q *Point, s, k *Scalar, R *Point) bool {
	// Split k into c0 and c1 (k = c0/c1 mod n, both of about 160
	// bits); then check that c0*Q - c1*R + (s*c1)*G is the neutral.
	// Since c1 is non-zero, this is equivalent to R = s*G + k*Q.
	// The scalar t = s*c1 mod n is full-width; it is split into two
	// halves, using the precomputed windows for G and 2^160*G.
	c0, c1 := k.LatticeSplitVartime()
	t := c1.ToScalarVartime()
	t.Mul(&t, s)
	tt := t.recode5()
	ss0 := c0.RecodeSigned5()
	ss1 := c1.RecodeSigned5()

	// Windows for Q and -R.
	var Rn Point
	Rn.Neg(R)
	var win [32]AffinePoint
	var tmp [32]Point
	makeWindow5(win[:16], tmp[:16], Q)
	makeWindow5(win[16:], tmp[16:], &Rn)
	winQ := win[:16]
	winR := win[16:]

	// The top digits of c0 and c1 are in the -1..+1 range.
	var P Point
	P.Neutral()
	P.addFromWindowVartime(winQ, ss0[32])
	P.addFromWindowVartime(winR, ss1[32])

	for i := 31; i >= 0; i-- {
		P.MDouble(&P, 5)
		P.addFromWindowVartime(mulgenTables[0][:], tt[i])
		P.addFromWindowVartime(mulgenTables[4][:], tt[i+32])
		P.addFromWindowVartime(winQ, ss0[i])
		P.addFromWindowVartime(winR, ss1[i])
	}

	return P.IsNeutral() == 1
}

// ComputeGeneratorTables computes the windows used for multiplications
// of the conventional generator: entry [j][i] is (i+1)*(2^(40*j))*G, in
// affine coordinates. These values are also available precomputed in
// the package; this function is used to generate them.
func ComputeGeneratorTables() [8][16]AffinePoint {
	var pts [8 * 16]Point
	var B Point
	B.Generator()
	for j := 0; j < 8; j++ {
		row := pts[16*j : 16*(j+1)]
		row[0] = B
		for i := 1; i < 16; i++ {
			row[i].Add(&row[i-1], &B)
		}
		B.MDouble(&B, 40)
	}

	var aff [8 * 16]AffinePoint
	BatchToAffine(aff[:], pts[:])
	var tab [8][16]AffinePoint
	for j := 0; j < 8; j++ {
		copy(tab[j][:], aff[16*j:16*(j+1)])
	}
	return tab
}
