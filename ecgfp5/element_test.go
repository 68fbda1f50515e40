package ecgfp5

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEcGFp5ElementHelpers(t *testing.T) {
	var rng prng
	rng.init("test element helpers ecgfp5")
	var one Element
	one.SetUint64(1)
	for i := 0; i < 100; i++ {
		var a Element
		rng.mkelement(&a)

		inv, err := TryInverse(&a)
		require.NoError(t, err)
		var t1 Element
		t1.Mul(&inv, &a)
		require.Equal(t, uint64(1), t1.Eq(&one))
		inv2 := InverseOrZero(&a)
		require.Equal(t, uint64(1), inv.Eq(&inv2))

		var sq Element
		sq.Sqr(&a)
		r, err := Sqrt(&sq)
		require.NoError(t, err)
		t1.Sqr(&r)
		require.Equal(t, uint64(1), t1.Eq(&sq))
		r, err = CanonicalSqrt(&sq)
		require.NoError(t, err)
		require.True(t, r.Sgn0())
		t1.Sqr(&r)
		require.Equal(t, uint64(1), t1.Eq(&sq))

		// Multiplying a square by a non-square gives a non-square.
		// 7 is a non-square in GF(p), hence also in GF(p^5).
		z := NewElement(7, 0, 0, 0, 0)
		if sq.IsZero() == 0 {
			var ns Element
			ns.Mul(&sq, &z)
			require.Equal(t, -1, ns.Legendre())
			_, err = Sqrt(&ns)
			require.ErrorIs(t, err, ErrNotASquare)
			_, err = CanonicalSqrt(&ns)
			require.ErrorIs(t, err, ErrNotASquare)
		}

		bb := a.Bytes()
		d, err := DecodeElement(bb[:])
		require.NoError(t, err)
		require.Equal(t, uint64(1), d.Eq(&a))
	}

	var zero Element
	_, err := TryInverse(&zero)
	require.ErrorIs(t, err, ErrNotInvertible)
	inv := InverseOrZero(&zero)
	require.Equal(t, uint64(1), inv.IsZero())
	r, err := CanonicalSqrt(&zero)
	require.NoError(t, err)
	require.Equal(t, uint64(1), r.IsZero())
	require.True(t, r.Sgn0())

	var bb [40]byte
	_, err = DecodeElement(bb[:39])
	require.Error(t, err)
	for i := 0; i < 8; i++ {
		bb[8+i] = 0xFF
	}
	_, err = DecodeElement(bb[:])
	require.Error(t, err)
}
