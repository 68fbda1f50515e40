package ecgfp5

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEcGFp5WeierstrassGenerator(t *testing.T) {
	var G Point
	G.Generator()
	W := G.ToWeierstrass()
	WG := WeierstrassGenerator()
	require.True(t, W.Equal(&WG))
	require.True(t, WG.IsOnCurve())
	require.True(t, WG.IsInGroup())

	w := WG.EncodeElement()
	require.Equal(t, uint64(1), w.Eq(&gfFour))

	var N Point
	N.Neutral()
	W = N.ToWeierstrass()
	require.True(t, W.IsInf)
	w = W.EncodeElement()
	require.Equal(t, uint64(1), w.IsZero())
}

var gfFour = NewElement(4, 0, 0, 0, 0)

func TestEcGFp5WeierstrassAdd(t *testing.T) {
	var rng prng
	rng.init("test weierstrass ecgfp5")
	inf := WeierstrassInfinity()
	for i := 0; i < 50; i++ {
		var P1, P2, P3 Point
		rng.mkpoint(&P1)
		rng.mkpoint(&P2)
		W1 := P1.ToWeierstrass()
		W2 := P2.ToWeierstrass()
		require.True(t, W1.IsOnCurve())
		require.True(t, W1.IsInGroup())

		// Same encoding as the group element.
		e1 := P1.EncodeElement()
		e2 := W1.EncodeElement()
		require.Equal(t, uint64(1), e1.Eq(&e2))

		// Homomorphism.
		var W3, W4 WeierstrassPoint
		P3.Add(&P1, &P2)
		W3 = P3.ToWeierstrass()
		W4.Add(&W1, &W2)
		require.True(t, W3.Equal(&W4), "add")
		P3.Double(&P1)
		W3 = P3.ToWeierstrass()
		W4.Double(&W1)
		require.True(t, W3.Equal(&W4), "double")
		W4.Add(&W1, &W1)
		require.True(t, W3.Equal(&W4), "add (doubling)")
		P3.Neg(&P1)
		W3 = P3.ToWeierstrass()
		W4.Neg(&W1)
		require.True(t, W3.Equal(&W4), "neg")
		W4.Add(&W1, &W3)
		require.True(t, W4.IsInf)
		W4.Add(&W1, &inf)
		require.True(t, W4.Equal(&W1))
		W4.Add(&inf, &W1)
		require.True(t, W4.Equal(&W1))

		// Conversion back.
		var Q Point
		require.NoError(t, Q.SetWeierstrass(&W1))
		requirePointEqual(t, &P1, &Q, "from Weierstrass")
		W5, err := DecodeWeierstrass(&e1)
		require.NoError(t, err)
		require.True(t, W5.Equal(&W1))
	}

	var Q Point
	require.NoError(t, Q.SetWeierstrass(&inf))
	require.Equal(t, 1, Q.IsNeutral())
	var W WeierstrassPoint
	W.Double(&inf)
	require.True(t, W.IsInf)
}

func TestEcGFp5WeierstrassInvalid(t *testing.T) {
	var rng prng
	rng.init("test weierstrass invalid ecgfp5")

	// Point of order 2: (a/3, 0).
	W2 := WeierstrassPoint{X: aThird}
	require.True(t, W2.IsOnCurve())
	require.False(t, W2.IsInGroup())
	var D WeierstrassPoint
	D.Double(&W2)
	require.True(t, D.IsInf)

	var Q Point
	for i := 0; i < 20; i++ {
		// Points in the other coset: (x, x*w) on the original curve,
		// with x the non-square abscissa obtained from decoding.
		var P Point
		rng.mkpoint(&P)
		w := P.EncodeElement()
		var x Element
		require.Equal(t, 1, Q.DecodeElement(&w))
		x.Div(&Q.x, &Q.z)
		require.Equal(t, -1, x.Legendre())
		var W WeierstrassPoint
		W.X.Add(&x, &aThird)
		W.Y.Mul(&x, &w)
		require.True(t, W.IsOnCurve())
		require.False(t, W.IsInGroup())
		Q.Generator()
		require.ErrorIs(t, Q.SetWeierstrass(&W), ErrInvalidPoint)
		require.Equal(t, 1, Q.IsNeutral())

		// Random coordinates.
		rng.mkelement(&W.X)
		rng.mkelement(&W.Y)
		require.False(t, W.IsOnCurve())
		require.False(t, W.IsInGroup())
		require.ErrorIs(t, Q.SetWeierstrass(&W), ErrInvalidPoint)
	}

	var w Element
	w.SetUint64(1)
	_, err := DecodeWeierstrass(&w)
	require.ErrorIs(t, err, ErrInvalidEncoding)
	w.SetUint64(0)
	W, err := DecodeWeierstrass(&w)
	require.NoError(t, err)
	require.True(t, W.IsInf)
}
