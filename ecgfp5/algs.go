package ecgfp5

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// This file implements helpers for generating scalars and points:
//
//   - Random scalars and points (from a random source)
//   - Hashing of arbitrary data into a scalar
//   - Mapping of arbitrary data into a group element (hash-to-curve)

// Generate a random scalar from the random source 'rand'. The random
// source MUST be cryptographically secure if the scalar is to be used
// as a secret. If 'rand' is nil, then crypto/rand.Reader is used.
func RandomScalar(rand io.Reader) (Scalar, error) {
	// We obtain 64 bytes from the random source and decode them as a
	// scalar with modular reduction; since n is close to 2^319, the
	// bias is negligible.
	if rand == nil {
		rand = cryptorand.Reader
	}
	var bb [64]byte
	var s Scalar
	if _, err := io.ReadFull(rand, bb[:]); err != nil {
		return s, errors.Wrap(err, "ecgfp5: random source")
	}
	s.DecodeReduce(bb[:])
	return s, nil
}

// Generate a random group element (as the conventional generator
// multiplied by a random scalar). If 'rand' is nil, then
// crypto/rand.Reader is used.
func RandomPoint(rand io.Reader) (*Point, error) {
	s, err := RandomScalar(rand)
	if err != nil {
		return nil, err
	}
	return NewPoint().MulGen(&s), nil
}

// Hash some data into a scalar. The data chunks are processed in order,
// each prefixed with its length (so that the chunk boundaries matter).
// SHAKE256 is used, with a 64-byte output reduced modulo n.
func HashToScalar(data ...[]byte) Scalar {
	sh := sha3.NewShake256()
	sh.Write([]byte("ecgfp5-hash-to-scalar:"))
	for _, d := range data {
		var hl [8]byte
		binary.LittleEndian.PutUint64(hl[:], uint64(len(d)))
		sh.Write(hl[:])
		sh.Write(d)
	}
	var hv [64]byte
	io.ReadFull(sh, hv[:])
	var s Scalar
	s.DecodeReduce(hv[:])
	return s
}

// Map some data into a group element. This is a "hash to curve" by
// the try-and-increment method: a 64-bit counter is appended to the
// data, and SHAKE256 output is interpreted as a field element w until
// a valid point encoding is obtained (about half of all field elements
// are valid encodings). The result is never the neutral element.
// THIS IS NOT CONSTANT-TIME (the number of attempts depends on the
// data).
func HashToPoint(data []byte) *Point {
	P := NewPoint()
	for ctr := uint64(0); ; ctr++ {
		sh := sha3.NewShake256()
		sh.Write([]byte("ecgfp5-hash-to-point:"))
		sh.Write(data)
		var cb [8]byte
		binary.LittleEndian.PutUint64(cb[:], ctr)
		sh.Write(cb[:])

		// Each coefficient is obtained from 16 bytes reduced modulo
		// p, for a negligible bias: c = lo + hi*2^64, and
		// 2^64 = 2^32 - 1 mod p.
		var hv [80]byte
		io.ReadFull(sh, hv[:])
		var lo, hi [5]uint64
		for i := 0; i < 5; i++ {
			lo[i] = binary.LittleEndian.Uint64(hv[16*i:])
			hi[i] = binary.LittleEndian.Uint64(hv[16*i+8:])
		}
		var w, t Element
		w.SetLimbs(lo)
		t.SetLimbs(hi).MulSmall(&t, 0xFFFFFFFF)
		w.Add(&w, &t)
		if P.DecodeElement(&w) == 1 {
			return P
		}
	}
}
