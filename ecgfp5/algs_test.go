package ecgfp5

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEcGFp5HashToScalar(t *testing.T) {
	kat := []struct {
		data [][]byte
		exp  Scalar
	}{
		{
			[][]byte{[]byte("abc")},
			Scalar{0xD6AA6038C40492AB, 0xF8BE9650158E22A1, 0xED5B7439983CB44F,
				0x6EC2C415614B4F51, 0x2C26A83A7B9FE38B},
		},
		{
			nil,
			Scalar{0x2B7047F5265698D6, 0xD3F4B7DE8ACF0C47, 0x9CFB1C40E029827B,
				0x0A774B5EDB569420, 0x7E0B347E2BDE6D91},
		},
	}
	for _, tc := range kat {
		s := HashToScalar(tc.data...)
		if s.Equal(&tc.exp) != 1 {
			t.Fatalf("Wrong hash-to-scalar:\nexp = %s\ngot = %s\n", tc.exp, s)
		}
	}

	// Chunk boundaries matter.
	s1 := HashToScalar([]byte("ab"), []byte("c"))
	s2 := HashToScalar([]byte("a"), []byte("bc"))
	s3 := HashToScalar([]byte("abc"))
	require.Equal(t, 0, s1.Equal(&s2))
	require.Equal(t, 0, s1.Equal(&s3))
}

func TestEcGFp5HashToPoint(t *testing.T) {
	exp := NewElement(17092847716510544748, 18151208363311075587,
		9897307807720627351, 16935122184301479127, 12214377644317300627)
	P := HashToPoint([]byte("abc"))
	w := P.EncodeElement()
	if w.Eq(&exp) != 1 {
		t.Fatalf("Wrong hash-to-point:\nexp = %s\ngot = %s\n", exp, w)
	}

	var rng prng
	rng.init("test hash to point ecgfp5")
	for i := 0; i < 20; i++ {
		var bb [20]byte
		rng.generate(bb[:])
		P := HashToPoint(bb[:i])
		require.Equal(t, 0, P.IsNeutral())
		Q := HashToPoint(bb[:i])
		requirePointEqual(t, P, Q, "hash-to-point (same data)")
	}
}

type failingReader struct{}

func (failingReader) Read(d []byte) (int, error) {
	return 0, errors.New("no entropy")
}

func TestEcGFp5Random(t *testing.T) {
	var rng prng
	rng.init("test random ecgfp5")
	var rng2 prng
	rng2.init("test random ecgfp5")
	s, err := RandomScalar(&rng)
	require.NoError(t, err)
	var s2 Scalar
	rng2.mkscalar(&s2)
	require.Equal(t, 1, s.Equal(&s2))

	P, err := RandomPoint(&rng)
	require.NoError(t, err)
	var Q Point
	rng2.mkpoint(&Q)
	requirePointEqual(t, &Q, P, "random point")

	_, err = RandomScalar(failingReader{})
	require.Error(t, err)
	_, err = RandomPoint(failingReader{})
	require.Error(t, err)

	s, err = RandomScalar(nil)
	require.NoError(t, err)
	require.Equal(t, 0, s.IsZero())
}
