// Package scalar defines the narrow bignum-collaborator interface
// consumed by the eb (curve) layer, per spec.md §6: size-in-bits,
// test-bit, big-endian byte read/write, modular reduction by n,
// sample-uniform, and (joint-)NAF recoding. The bignum's own internal
// representation is explicitly out of scope (spec.md §1); Scalar is the
// seam that keeps eb from depending on one.
package scalar

import (
	"math/big"

	"github.com/sammyne/etacore/errs"
	"github.com/sammyne/etacore/prng"
)

// Scalar is the collaborator interface the curve layer is written
// against. bigScalar (below) is the only implementation this module
// ships; callers may substitute their own.
type Scalar interface {
	BitLen() int
	Bit(i int) uint
	Bytes(size int) ([]byte, error)
	SetBytes(b []byte) Scalar
	Mod(n Scalar) Scalar
	Cmp(o Scalar) int
	Sign() int
	IsZero() bool
	// NAF returns the width-w non-adjacent form as signed digits, least
	// significant first. Each digit is in (-2^(w-1), 2^(w-1)) and odd, or
	// zero.
	NAF(w uint) []int32
	// JSF returns paired signed digits {-1,0,1}x{-1,0,1} for (s,other),
	// least significant first: the width-2 NAFs of s and other, paired
	// index by index. The two rows are recoded independently, so the
	// result is not Solinas's joint sparse form and its joint weight is
	// not minimal.
	JSF(other Scalar) [][2]int32
}

// bigScalar wraps math/big.Int. math/big is used here, not a pack
// dependency, because the bignum it backs is explicitly out of scope
// (spec.md §1) — Scalar exists so eb never imports a concrete bignum
// implementation at all, and no example repo in the pack ships a
// standalone bignum distinct from math/big to wire in its place.
type bigScalar struct {
	v *big.Int
}

// New wraps a *big.Int as a Scalar.
func New(v *big.Int) Scalar {
	if v == nil {
		v = new(big.Int)
	}
	return &bigScalar{v: new(big.Int).Set(v)}
}

// FromUint64 builds a Scalar from a small unsigned constant.
func FromUint64(v uint64) Scalar {
	return New(new(big.Int).SetUint64(v))
}

// Uniform samples a uniform Scalar in [0, 2^bits) from the given stream.
func Uniform(s *prng.Stream, bits int) (Scalar, error) {
	nbytes := (bits + 7) / 8
	buf := make([]byte, nbytes)
	if err := s.Bytes(buf); err != nil {
		return nil, errs.New(errs.ReadShort, "scalar.Uniform", err)
	}
	if extra := nbytes*8 - bits; extra > 0 {
		buf[0] &= byte(0xFF >> uint(extra))
	}
	v := new(big.Int).SetBytes(buf)
	return New(v), nil
}

func (s *bigScalar) BitLen() int { return s.v.BitLen() }

func (s *bigScalar) Bit(i int) uint {
	if i < 0 {
		return 0
	}
	return s.v.Bit(i)
}

func (s *bigScalar) Bytes(size int) ([]byte, error) {
	raw := s.v.Bytes()
	if len(raw) > size {
		return nil, errs.New(errs.BufferTooSmall, "scalar.Bytes", nil)
	}
	out := make([]byte, size)
	copy(out[size-len(raw):], raw)
	return out, nil
}

func (s *bigScalar) SetBytes(b []byte) Scalar {
	s.v.SetBytes(b)
	return s
}

func (s *bigScalar) Mod(n Scalar) Scalar {
	other, ok := n.(*bigScalar)
	if !ok {
		return s
	}
	s.v.Mod(s.v, other.v)
	return s
}

func (s *bigScalar) Cmp(o Scalar) int {
	other, ok := o.(*bigScalar)
	if !ok {
		return 0
	}
	return s.v.Cmp(other.v)
}

func (s *bigScalar) Sign() int    { return s.v.Sign() }
func (s *bigScalar) IsZero() bool { return s.v.Sign() == 0 }

// JSF pairs s's and other's width-2 NAF digit streams index-wise,
// padding the shorter to the longer's length. This is a simplified joint
// recoding: it is sparse and correct (each row still evaluates to its
// own scalar independently), but does not chase the minimal joint
// Hamming weight of Solinas's original carry-coupled construction — see
// DESIGN.md for why that tradeoff was made.
func (s *bigScalar) JSF(other Scalar) [][2]int32 {
	a := s.NAF(2)
	b := other.NAF(2)
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([][2]int32, n)
	for i := 0; i < n; i++ {
		var da, db int32
		if i < len(a) {
			da = a[i]
		}
		if i < len(b) {
			db = b[i]
		}
		out[i] = [2]int32{da, db}
	}
	return out
}

// NAF computes the width-w non-adjacent form of s, least significant digit
// first, per Algorithm 3.35 of Hankerson/Menezes/Vanstone. Grounded on the
// "w-NAF / w-TNAF" recoding spec.md §4.2 requires of the eb scalar-mult
// layer, implemented once here since both ordinary w-NAF and Koblitz
// w-tau-NAF share this integer recoding as their base step.
func (s *bigScalar) NAF(w uint) []int32 {
	k := new(big.Int).Set(s.v)
	var out []int32
	mod := int64(1) << w
	half := mod / 2
	zero := big.NewInt(0)
	two := big.NewInt(2)
	for k.Cmp(zero) != 0 {
		if k.Bit(0) == 1 {
			ki := new(big.Int).Mod(k, big.NewInt(mod)).Int64()
			if ki >= half {
				ki -= mod
			}
			out = append(out, int32(ki))
			k.Sub(k, big.NewInt(ki))
		} else {
			out = append(out, 0)
		}
		k.Div(k, two)
	}
	return out
}
