package ecgfp5

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Encodings of k*G for k = 1 to 5.
var kat_ECGFP5_MULTIPLES = [][5]uint64{
	{0x0000000000000004, 0x0000000000000000, 0x0000000000000000,
		0x0000000000000000, 0x0000000000000000},
	{0x7F191312FE874C38, 0x8F54439D7E451B4E, 0xD8C1E50EC06700C0,
		0xE53B10AB085E8972, 0x8CBCD5B9D4D33643},
	{0x53FE3871858CC981, 0xC7583070EF9A1120, 0x5E29193E1E05F2C7,
		0x2B23E99CCBC7A9DB, 0xB465736327D72A4C},
	{0x4C7D51A11C2AF02F, 0xAC121AE7B89CBD28, 0xA3EF941401C9C82D,
		0xE1F88F3500C2D2B4, 0xB6B25D3052ED07CD},
	{0x07A0EF81433BDD92, 0xE8C2935F8E215B83, 0x53C59C6C4BEA7D7B,
		0xD5093D02DA77C60F, 0x44C906A91593E8A8},
}

func TestEcGFp5Decode(t *testing.T) {
	// Neutral.
	var P Point
	P.Generator()
	var w Element
	require.Equal(t, 0, P.DecodeElement(&w))
	require.Equal(t, 1, P.IsNeutral())
	require.True(t, ValidateElement(&w))
	e := P.EncodeElement()
	require.Equal(t, uint64(1), e.IsZero())

	// Generator.
	w.SetUint64(4)
	require.Equal(t, 1, P.DecodeElement(&w))
	var G Point
	G.Generator()
	requirePointEqual(t, &G, &P, "generator decoding")
	e = G.EncodeElement()
	require.Equal(t, uint64(1), e.Eq(&w))

	// w = 1 is not a valid encoding; w = 6 is.
	w.SetUint64(1)
	require.False(t, ValidateElement(&w))
	P.Generator()
	require.Equal(t, -1, P.DecodeElement(&w))
	require.Equal(t, 1, P.IsNeutral())
	_, err := DecodePoint(&w)
	require.ErrorIs(t, err, ErrInvalidEncoding)

	w.SetUint64(6)
	require.True(t, ValidateElement(&w))
	Q, err := DecodePoint(&w)
	require.NoError(t, err)
	require.Equal(t, 0, Q.IsNeutral())
	e = Q.EncodeElement()
	require.Equal(t, uint64(1), e.Eq(&w))

	// Bytes: wrong length, non-canonical coefficient.
	bb := G.Bytes()
	require.Equal(t, 1, P.Decode(bb[:]))
	requirePointEqual(t, &G, &P, "generator decoding (bytes)")
	require.Equal(t, -1, P.Decode(bb[:39]))
	var bad [40]byte
	for i := 0; i < 8; i++ {
		bad[i] = 0xFF
	}
	require.Equal(t, -1, P.Decode(bad[:]))
	require.Equal(t, 1, P.IsNeutral())
}

func TestEcGFp5DecodeRoundTrip(t *testing.T) {
	var rng prng
	rng.init("test decode ecgfp5")
	for i := 0; i < 200; i++ {
		var P, Q Point
		rng.mkpoint(&P)
		w := P.EncodeElement()
		require.True(t, ValidateElement(&w))
		require.Equal(t, 1, Q.DecodeElement(&w))
		requirePointEqual(t, &P, &Q, "decode(encode(P))")
		w2 := Q.EncodeElement()
		require.Equal(t, uint64(1), w.Eq(&w2))

		bb := P.Bytes()
		require.Equal(t, 1, Q.Decode(bb[:]))
		bb2 := Q.Encode([]byte{0x11})
		require.Equal(t, bb[:], bb2[1:])

		// Random field elements: decoding succeeds if and only if
		// validation succeeds, and decoded points reencode to the
		// same value.
		var e Element
		rng.mkelement(&e)
		r := Q.DecodeElement(&e)
		require.Equal(t, r >= 0, ValidateElement(&e))
		if r == 1 {
			e2 := Q.EncodeElement()
			require.Equal(t, uint64(1), e.Eq(&e2))
		}
	}
}

func TestEcGFp5Multiples(t *testing.T) {
	var G, P, Q Point
	G.Generator()
	P.Neutral()
	for k := 0; k < len(kat_ECGFP5_MULTIPLES); k++ {
		P.Add(&P, &G)
		var w Element
		w.SetLimbs(kat_ECGFP5_MULTIPLES[k])
		e := P.EncodeElement()
		if e.Eq(&w) != 1 {
			t.Fatalf("Wrong encoding for %d*G:\nexp = %s\ngot = %s\n", k+1, w, e)
		}
		require.Equal(t, 1, Q.DecodeElement(&w))
		requirePointEqual(t, &P, &Q, "decoded multiple")
	}

	// 2*G, by doubling.
	Q.Double(&G)
	var w Element
	w.SetLimbs(kat_ECGFP5_MULTIPLES[1])
	e := Q.EncodeElement()
	require.Equal(t, uint64(1), e.Eq(&w))

	// 4*G, by multi-doubling.
	Q.MDouble(&G, 2)
	w.SetLimbs(kat_ECGFP5_MULTIPLES[3])
	e = Q.EncodeElement()
	require.Equal(t, uint64(1), e.Eq(&w))
}

func TestEcGFp5PointAdd(t *testing.T) {
	var rng prng
	rng.init("test add ecgfp5")
	var N Point
	N.Neutral()
	for i := 0; i < 100; i++ {
		var P1, P2, P3, Q, R Point
		rng.mkpoint(&P1)
		rng.mkpoint(&P2)
		rng.mkpoint(&P3)
		require.Equal(t, 0, P1.IsNeutral())
		require.Equal(t, 0, P1.Equal(&P2))

		// Commutativity.
		Q.Add(&P1, &P2)
		R.Add(&P2, &P1)
		requirePointEqual(t, &Q, &R, "P1+P2 == P2+P1")

		// Associativity.
		Q.Add(&Q, &P3)
		R.Add(&P2, &P3).Add(&P1, &R)
		requirePointEqual(t, &Q, &R, "(P1+P2)+P3 == P1+(P2+P3)")

		// Neutral.
		Q.Add(&P1, &N)
		requirePointEqual(t, &P1, &Q, "P+N == P")
		Q.Add(&N, &P1)
		requirePointEqual(t, &P1, &Q, "N+P == P")
		Q.Add(&N, &N)
		require.Equal(t, 1, Q.IsNeutral())

		// Opposite.
		Q.Neg(&P1).Add(&Q, &P1)
		require.Equal(t, 1, Q.IsNeutral())
		Q.Sub(&P1, &P1)
		require.Equal(t, 1, Q.IsNeutral())
		Q.Sub(&P1, &P2).Add(&Q, &P2)
		requirePointEqual(t, &P1, &Q, "(P1-P2)+P2 == P1")

		// Doubling.
		Q.Add(&P1, &P1)
		R.Double(&P1)
		requirePointEqual(t, &Q, &R, "P+P == 2*P")
		Q.Double(&N)
		require.Equal(t, 1, Q.IsNeutral())

		// Mixed addition.
		A := P2.Affine()
		Q.Add(&P1, &P2)
		R.AddAffine(&P1, &A)
		requirePointEqual(t, &Q, &R, "add (affine)")
		Q.Sub(&P1, &P2)
		R.SubAffine(&P1, &A)
		requirePointEqual(t, &Q, &R, "sub (affine)")
		var Na AffinePoint
		R.AddAffine(&P1, &Na)
		requirePointEqual(t, &P1, &R, "P+N (affine)")
		R.SetAffine(&A)
		requirePointEqual(t, &P2, &R, "from affine")

		// In-place operation.
		Q.Set(&P1)
		Q.Add(&Q, &Q)
		R.Double(&P1)
		requirePointEqual(t, &Q, &R, "in-place add")

		// Selection.
		Q.Select(&P1, &P2, 1)
		requirePointEqual(t, &P1, &Q, "select (1)")
		Q.Select(&P1, &P2, 0)
		requirePointEqual(t, &P2, &Q, "select (0)")
	}
}

func TestEcGFp5MDouble(t *testing.T) {
	var rng prng
	rng.init("test mdouble ecgfp5")
	for i := 0; i < 20; i++ {
		var P, Q, R Point
		rng.mkpoint(&P)
		if i == 0 {
			P.Neutral()
		}
		for n := uint(0); n <= 10; n++ {
			Q.MDouble(&P, n)
			R.Set(&P)
			for j := uint(0); j < n; j++ {
				R.Double(&R)
			}
			// Same group element and same affine coordinates (the
			// projective coordinates may differ for n >= 2).
			if Q.Equal(&R) != 1 {
				t.Fatalf("Successive doublings failed (n = %d):\nexp = %s\ngot = %s\n", n, R.EncodeElement(), Q.EncodeElement())
			}
			A1 := Q.Affine()
			A2 := R.Affine()
			require.Equal(t, 1, A1.Equal(&A2), "affine mdouble (n = %d)", n)

			// In-place.
			Q.Set(&P)
			Q.MDouble(&Q, n)
			requirePointEqual(t, &R, &Q, "in-place mdouble")
		}
	}
}

func TestEcGFp5BatchToAffine(t *testing.T) {
	var rng prng
	rng.init("test batch ecgfp5")
	for n := 0; n < 10; n++ {
		src := make([]Point, n)
		for i := range src {
			rng.mkpoint(&src[i])
			// Use non-normalized coordinates.
			src[i].Double(&src[i])
		}
		if n >= 3 {
			src[2].Neutral()
		}
		dst := make([]AffinePoint, n)
		BatchToAffine(dst, src)
		for i := range src {
			A := src[i].Affine()
			require.Equal(t, 1, A.Equal(&dst[i]), "n = %d, i = %d", n, i)
			var P Point
			P.SetAffine(&dst[i])
			requirePointEqual(t, &src[i], &P, "affine conversion")
		}
	}
	BatchToAffine(nil, nil)
}
