package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// Tests for GF(p^5) with p = 2^64 - 2^32 + 1 and z^5 = 3.

var kat_a = [5]uint64{
	0x0123456789ABCDEF, 0xFEDCBA9876543210, 0x1111111122222222,
	0x3333333344444444, 0x5555555566666666,
}

var kat_b = [5]uint64{
	0xDEADBEEF00000001, 0x0000000100000000, 0xFFFFFFFF00000000,
	0x0000000000000007, 0x8000000000000000,
}

func TestGFp5MulKAT(t *testing.T) {
	var a, b, c GFp5
	a.SetLimbs(kat_a)
	b.SetLimbs(kat_b)
	c.Mul(&a, &b)
	require.Equal(t, [5]uint64{
		0x172CDE266B196589, 0x2CD927C21EE5CCB1, 0x2979897CC02D19AF,
		0xE5198D91DEC9B408, 0xF2A516D88439EEC5,
	}, c.Limbs())

	c.Inv(&a)
	require.Equal(t, [5]uint64{
		0xD7E14C7BE4983730, 0x153F8716FC64BED8, 0xB405AD3452C37994,
		0x70539A9437DD56D9, 0x4AC161F0C8A07A6E,
	}, c.Limbs())

	c.Frob(&a)
	require.Equal(t, [5]uint64{
		0x0123456789ABCDEF, 0x8A3D8CBFCED962DC, 0x3BBAD5E2843DE10E,
		0xD6997A1CC25F9815, 0x644B4B0181A93317,
	}, c.Limbs())
}

func TestGFp5Mul(t *testing.T) {
	var rng prng
	rng.init("test mul GFp5")
	var a, b, c GFp5
	for i := 0; i < 2000; i++ {
		rng.mkgfp5(&a)
		rng.mkgfp5(&b)
		c.Mul(&a, &b)
		if c.Limbs() != refMul(a.Limbs(), b.Limbs()) {
			t.Fatalf("ERR mul:\na = %s\nb = %s\nc = %s\n", a, b, c)
		}

		// In-place operation.
		c.Set(&a)
		c.Mul(&c, &c)
		var d GFp5
		d.Sqr(&a)
		if c.Eq(&d) != 1 {
			t.Fatalf("ERR sqr:\na = %s\nc = %s\nd = %s\n", a, c, d)
		}
	}
}

func TestGFp5Axioms(t *testing.T) {
	var rng prng
	rng.init("test axioms GFp5")
	var a, b, c, t1, t2, t3 GFp5
	for i := 0; i < 200; i++ {
		rng.mkgfp5(&a)
		rng.mkgfp5(&b)
		rng.mkgfp5(&c)

		t1.Mul(&a, &b)
		t2.Mul(&b, &a)
		require.Equal(t, uint64(1), t1.Eq(&t2))

		t1.Add(&b, &c).Mul(&a, &t1)
		t2.Mul(&a, &b)
		t3.Mul(&a, &c)
		t2.Add(&t2, &t3)
		require.Equal(t, uint64(1), t1.Eq(&t2))

		t1.Sub(&a, &b).Add(&t1, &b)
		require.Equal(t, uint64(1), t1.Eq(&a))

		t1.Neg(&a).Add(&t1, &a)
		require.Equal(t, uint64(1), t1.IsZero())

		t1.Double(&a).Half(&t1)
		require.Equal(t, uint64(1), t1.Eq(&a))
	}
}

func TestGFp5Inv(t *testing.T) {
	var rng prng
	rng.init("test inv GFp5")
	var a, b, c GFp5
	for i := 0; i < 500; i++ {
		rng.mkgfp5(&a)
		b.Inv(&a)
		c.Mul(&a, &b)
		if c.Eq(&GFp5_ONE) != 1 {
			t.Fatalf("ERR inv:\na = %s\nb = %s\n", a, b)
		}
		rng.mkgfp5(&c)
		b.Div(&c, &a).Mul(&b, &a)
		require.Equal(t, uint64(1), b.Eq(&c))
	}

	a.Set(&GFp5_ZERO)
	b.Inv(&a)
	require.Equal(t, uint64(1), b.IsZero())

	// 1/4 has a single non-zero coefficient.
	a.SetUint64(4)
	b.Inv(&a)
	require.Equal(t, [5]uint64{13835058052060938241, 0, 0, 0, 0}, b.Limbs())
}

func TestGFp5Frob(t *testing.T) {
	var rng prng
	rng.init("test frob GFp5")
	var a, b, c GFp5
	p := new(big.Int).SetUint64(GFpModulus)
	p2 := new(big.Int).Mul(p, p)
	for i := 0; i < 20; i++ {
		rng.mkgfp5(&a)
		b.Frob(&a)
		require.Equal(t, refExp(a.Limbs(), p), b.Limbs())
		b.Frob2(&a)
		require.Equal(t, refExp(a.Limbs(), p2), b.Limbs())
		c.Frob(&a).Frob(&c)
		require.Equal(t, uint64(1), b.Eq(&c))
		c.FrobX(&a, 5)
		require.Equal(t, uint64(1), c.Eq(&a))
		c.FrobX(&a, 3)
		b.Frob2(&a).Frob(&b)
		require.Equal(t, uint64(1), c.Eq(&b))
	}
}

func TestGFp5MulSmall(t *testing.T) {
	var rng prng
	rng.init("test mulsmall GFp5")
	var a, b, c, k GFp5
	for i := 0; i < 100; i++ {
		rng.mkgfp5(&a)

		b.MulSmallK1(&a, 263)
		k.SetLimbs([5]uint64{0, 263, 0, 0, 0})
		c.Mul(&a, &k)
		require.Equal(t, uint64(1), b.Eq(&c))

		b.MulSmallKn01(&a, 4, 4*263)
		k.SetLimbs([5]uint64{GFpModulus - 4, 4 * 263, 0, 0, 0})
		c.Mul(&a, &k)
		require.Equal(t, uint64(1), b.Eq(&c))

		b.MulSmall(&a, 7)
		k.SetUint64(7)
		c.Mul(&a, &k)
		require.Equal(t, uint64(1), b.Eq(&c))
	}
}

func TestGFp5Legendre(t *testing.T) {
	var rng prng
	rng.init("test legendre GFp5")

	var nqr GFp5
	nqr.SetLimbs(kat_b)
	require.Equal(t, -1, nqr.Legendre())
	require.Equal(t, 0, GFp5_ZERO.Legendre())

	var a, b GFp5
	a.SetLimbs(kat_a)
	require.Equal(t, 1, a.Legendre())

	for i := 0; i < 200; i++ {
		rng.mkgfp5(&a)
		b.Sqr(&a)
		require.Equal(t, 1, b.Legendre())
		b.Mul(&b, &nqr)
		require.Equal(t, -1, b.Legendre())
	}
}

func TestGFp5Sqrt(t *testing.T) {
	var rng prng
	rng.init("test sqrt GFp5")

	var nqr GFp5
	nqr.SetLimbs(kat_b)

	var a, b, c, d GFp5
	for i := 0; i < 200; i++ {
		rng.mkgfp5(&a)
		b.Sqr(&a)
		if c.Sqrt(&b) != 1 {
			t.Fatalf("ERR sqrt (square):\na = %s\n", a)
		}
		d.Sqr(&c)
		require.Equal(t, uint64(1), d.Eq(&b))

		b.Mul(&b, &nqr)
		c.Set(&GFp5_ONE)
		require.Equal(t, uint64(0), c.Sqrt(&b))
		require.Equal(t, uint64(1), c.IsZero())

		// Canonical root: sgn0 is true, and it is a root.
		b.Sqr(&a)
		require.Equal(t, uint64(1), c.CanonicalSqrt(&b))
		require.True(t, c.Sgn0())
		d.Sqr(&c)
		require.Equal(t, uint64(1), d.Eq(&b))
	}

	require.Equal(t, uint64(1), c.Sqrt(&GFp5_ZERO))
	require.Equal(t, uint64(1), c.IsZero())
	require.Equal(t, uint64(0), c.Sqrt(&nqr))
}

func TestGFp5Sgn0(t *testing.T) {
	var rng prng
	rng.init("test sgn0 GFp5")
	var a, b GFp5
	require.True(t, GFp5_ZERO.Sgn0())
	require.Equal(t, uint64(1), b.CanonicalSqrt(&GFp5_ZERO))
	require.Equal(t, uint64(1), b.IsZero())
	require.True(t, b.Sgn0())
	a.SetUint64(2)
	require.True(t, a.Sgn0())
	a.SetLimbs([5]uint64{0, 3, 0, 0, 0})
	require.False(t, a.Sgn0())
	for i := 0; i < 200; i++ {
		rng.mkgfp5(&a)
		if a.IsZero() == 1 {
			continue
		}
		b.Neg(&a)
		require.NotEqual(t, a.Sgn0(), b.Sgn0())
	}
}

func TestGFp5Select(t *testing.T) {
	var rng prng
	rng.init("test select GFp5")
	var a, b, c GFp5
	rng.mkgfp5(&a)
	rng.mkgfp5(&b)
	c.Select(&a, &b, 1)
	require.Equal(t, uint64(1), c.Eq(&a))
	c.Select(&a, &b, 0)
	require.Equal(t, uint64(1), c.Eq(&b))
	c.CondSet(&a, 0)
	require.Equal(t, uint64(1), c.Eq(&b))
	c.CondSet(&a, 0xFFFFFFFFFFFFFFFF)
	require.Equal(t, uint64(1), c.Eq(&a))
	c.CondNeg(&a, 1).Add(&c, &a)
	require.Equal(t, uint64(1), c.IsZero())
	c.CondNeg(&a, 0)
	require.Equal(t, uint64(1), c.Eq(&a))
}

func TestGFp5EncodeDecode(t *testing.T) {
	var rng prng
	rng.init("test encode GFp5")
	var a, b GFp5
	for i := 0; i < 100; i++ {
		rng.mkgfp5(&a)
		buf := a.Bytes()
		require.Equal(t, uint64(1), b.Decode(buf[:]))
		require.Equal(t, uint64(1), a.Eq(&b))

		enc := a.Encode([]byte{0xAA})
		require.Len(t, enc, 1+GFp5EncodedLen)
		require.Equal(t, buf[:], enc[1:])
	}

	// A coefficient equal to p is not canonical.
	var buf [GFp5EncodedLen]byte
	buf[16] = 0x01
	buf[20] = 0xFF
	buf[21] = 0xFF
	buf[22] = 0xFF
	buf[23] = 0xFF
	b.SetUint64(5)
	require.Equal(t, uint64(0), b.Decode(buf[:]))
	require.Equal(t, uint64(1), b.IsZero())
}
