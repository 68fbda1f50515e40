package field

import (
	"crypto/sha512"
	"encoding/binary"
	"math/big"
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

// Generate a random 64-bit integer from the PRNG.
func (p *prng) u64() uint64 {
	var bb [8]byte
	p.generate(bb[:])
	return binary.LittleEndian.Uint64(bb[:])
}

// Make a new random field element from the PRNG. Coefficients are
// reduced modulo p.
func (p *prng) mkgfp5(d *GFp5) {
	var c [5]uint64
	for i := 0; i < 5; i++ {
		c[i] = p.u64()
	}
	d.SetLimbs(c)
}

var bigP = new(big.Int).SetUint64(GFpModulus)

// Reference multiplication in GF(p^5), over big integers: schoolbook
// product of the polynomials, then folding of the degree 5..8 terms
// with z^5 = 3.
func refMul(a, b [5]uint64) [5]uint64 {
	var c [9]big.Int
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			var x, y big.Int
			x.SetUint64(a[i])
			y.SetUint64(b[j])
			x.Mul(&x, &y)
			c[i+j].Add(&c[i+j], &x)
		}
	}
	three := big.NewInt(3)
	for i := 8; i >= 5; i-- {
		var t big.Int
		t.Mul(&c[i], three)
		c[i-5].Add(&c[i-5], &t)
	}
	var r [5]uint64
	for i := 0; i < 5; i++ {
		c[i].Mod(&c[i], bigP)
		r[i] = c[i].Uint64()
	}
	return r
}

// Reference exponentiation in GF(p^5), by square-and-multiply over
// refMul().
func refExp(a [5]uint64, e *big.Int) [5]uint64 {
	r := [5]uint64{1, 0, 0, 0, 0}
	for i := e.BitLen() - 1; i >= 0; i-- {
		r = refMul(r, r)
		if e.Bit(i) != 0 {
			r = refMul(r, a)
		}
	}
	return r
}
