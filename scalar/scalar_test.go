package scalar

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sammyne/etacore/prng"
)

func TestNAF_Reconstructs(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 3, 7, 13, 255, 12345} {
		s := FromUint64(v)
		digits := s.NAF(4)

		got := new(big.Int)
		pow := new(big.Int).SetInt64(1)
		for _, d := range digits {
			if d != 0 {
				term := new(big.Int).Mul(big.NewInt(int64(d)), pow)
				got.Add(got, term)
			}
			pow.Lsh(pow, 1)
		}
		require.Equal(t, int64(v), got.Int64(), "NAF digits must reconstruct the original value")
	}
}

func TestNAF_DigitsAreOddOrZero(t *testing.T) {
	s := FromUint64(987654321)
	for _, d := range s.NAF(3) {
		if d == 0 {
			continue
		}
		require.Equal(t, int32(1), d&1, "nonzero NAF digit must be odd: got %d", d)
	}
}

func TestJSF_EachRowReconstructsItsOwnScalar(t *testing.T) {
	k1 := FromUint64(41)
	k2 := FromUint64(58)
	jsf := k1.JSF(k2)

	got1 := new(big.Int)
	got2 := new(big.Int)
	pow := new(big.Int).SetInt64(1)
	for _, pair := range jsf {
		if pair[0] != 0 {
			got1.Add(got1, new(big.Int).Mul(big.NewInt(int64(pair[0])), pow))
		}
		if pair[1] != 0 {
			got2.Add(got2, new(big.Int).Mul(big.NewInt(int64(pair[1])), pow))
		}
		pow.Lsh(pow, 1)
	}
	require.Equal(t, int64(41), got1.Int64())
	require.Equal(t, int64(58), got2.Int64())
}

func TestBytes_RoundTrips(t *testing.T) {
	v := New(big.NewInt(0x0123456789))
	buf, err := v.Bytes(8)
	require.NoError(t, err)

	back := New(big.NewInt(0)).SetBytes(buf)
	require.Equal(t, 0, back.Cmp(v))
}

func TestBytes_BufferTooSmall(t *testing.T) {
	v := New(big.NewInt(0xFFFFFFFF))
	_, err := v.Bytes(1)
	require.Error(t, err)
}

func TestMod(t *testing.T) {
	v := New(big.NewInt(17))
	n := New(big.NewInt(5))
	v.Mod(n)
	require.Equal(t, 0, v.Cmp(New(big.NewInt(2))))
}

func TestUniform_RespectsBitLength(t *testing.T) {
	s := prng.NewOS()
	require.NoError(t, s.Seed([]byte("deterministic-test-seed")))

	v, err := Uniform(s, 16)
	require.NoError(t, err)
	require.LessOrEqual(t, v.BitLen(), 16)
}

func TestIsZero(t *testing.T) {
	require.True(t, FromUint64(0).IsZero())
	require.False(t, FromUint64(1).IsZero())
}
