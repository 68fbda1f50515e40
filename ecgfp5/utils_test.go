package ecgfp5

import (
	"crypto/sha512"
	"encoding/binary"
	"math/big"
	"testing"
)

// =====================================================================
// Custom PRNG (based on SHA-512) for reproducible tests.

type prng struct {
	buf [64]byte
	ptr int
}

// Initialize the PRNG with an explicit seed.
func (p *prng) init(seed string) {
	hv := sha512.Sum512([]byte(seed))
	copy(p.buf[:], hv[:])
	p.ptr = 0
}

// Fill the provided slice with pseudorandom bytes from the PRNG.
func (p *prng) generate(d []byte) {
	n := len(d)
	for n > 0 {
		c := 32 - p.ptr
		if c == 0 {
			hv := sha512.Sum512(p.buf[:])
			copy(p.buf[:], hv[:])
			p.ptr = 0
			c = 32
		}
		if c > n {
			c = n
		}
		copy(d, p.buf[p.ptr:p.ptr+c])
		d = d[c:]
		n -= c
		p.ptr += c
	}
}

// The PRNG can be used as a random source (io.Reader).
func (p *prng) Read(d []byte) (int, error) {
	p.generate(d)
	return len(d), nil
}

// Generate a random scalar from the PRNG.
func (p *prng) mkscalar(s *Scalar) {
	var bb [64]byte
	p.generate(bb[:])
	s.DecodeReduce(bb[:])
}

// Generate a random field element from the PRNG.
func (p *prng) mkelement(e *Element) {
	var c [5]uint64
	var bb [40]byte
	p.generate(bb[:])
	for i := 0; i < 5; i++ {
		c[i] = binary.LittleEndian.Uint64(bb[8*i:])
	}
	e.SetLimbs(c)
}

// Generate a random group element from the PRNG.
func (p *prng) mkpoint(P *Point) {
	var s Scalar
	p.mkscalar(&s)
	P.MulGen(&s)
}

var bigN = scalarToBig(&Scalar{
	0xE80FD996948BFFE1, 0xE8885C39D724A09C, 0x7FFFFFE6CFB80639,
	0x7FFFFFF100000016, 0x7FFFFFFD80000007,
})

// Get a scalar (or any 320-bit integer) as a big integer.
func scalarToBig(s *Scalar) *big.Int {
	x := new(big.Int)
	var y big.Int
	for i := 4; i >= 0; i-- {
		y.SetUint64(s[i])
		x.Lsh(x, 64).Add(x, &y)
	}
	return x
}

// Get a big integer (in the 0..n-1 range) as a scalar.
func bigToScalar(x *big.Int) Scalar {
	var s Scalar
	var t, m big.Int
	t.Set(x)
	m.SetUint64(0xFFFFFFFFFFFFFFFF)
	for i := 0; i < 5; i++ {
		var w big.Int
		w.And(&t, &m)
		s[i] = w.Uint64()
		t.Rsh(&t, 64)
	}
	return s
}

// Get a signed 161-bit integer as a big integer.
func signed161ToBig(x *Signed161) *big.Int {
	v := new(big.Int)
	var y big.Int
	for i := 2; i >= 0; i-- {
		y.SetUint64(x[i])
		v.Lsh(v, 64).Add(v, &y)
	}
	if x.IsNegative() {
		var m big.Int
		m.Lsh(big.NewInt(1), 192)
		v.Sub(v, &m)
	}
	return v
}

// Compute s*Q with a plain double-and-add over the bits of s (for
// comparison with optimized routines).
func naiveMul(Q *Point, s *Scalar) *Point {
	R := NewPoint()
	var T Point
	T.Set(Q)
	for i := 0; i < ScalarBits; i++ {
		if (s[i>>6]>>uint(i&63))&1 != 0 {
			R.Add(R, &T)
		}
		T.Double(&T)
	}
	return R
}

// Check that two points are equal, with an informative message. Equal()
// only compares u, so the affine coordinates are compared as well.
func requirePointEqual(t *testing.T, exp, got *Point, msg string) {
	t.Helper()
	if exp.Equal(got) != 1 {
		t.Fatalf("%s:\nexp = %s\ngot = %s\n", msg, exp.EncodeElement(), got.EncodeElement())
	}
	A1 := exp.Affine()
	A2 := got.Affine()
	if A1.Equal(&A2) != 1 {
		x1 := A1.X()
		x2 := A2.X()
		t.Fatalf("%s (affine x):\nexp = %s\ngot = %s\n", msg, x1, x2)
	}
}
