package eb

import (
	"math/big"

	"github.com/sammyne/etacore/errs"
	"github.com/sammyne/etacore/scalar"
)

// MulBasic computes out = k*p by straightforward double-and-add, most
// significant bit first: spec.md §4.2's "basic" variable-point variant.
func MulBasic(ctx *Ctx, out *Point, k scalar.Scalar, p *Point) (*Point, error) {
	f := ctx.Field
	acc := Infinity(f)
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc = Dbl(ctx, NewPoint(f), acc)
		if k.Bit(i) == 1 {
			var err error
			acc, err = Add(ctx, NewPoint(f), acc, p)
			if err != nil {
				return nil, err
			}
		}
	}
	return Norm(ctx, out, acc)
}

// MulConst computes out = k*p using a constant-time Montgomery ladder:
// spec.md §9's confinement of constant-time discipline to this one
// variant. Every bit performs exactly one doubling and one addition
// regardless of its value.
func MulConst(ctx *Ctx, out *Point, k scalar.Scalar, p *Point) (*Point, error) {
	f := ctx.Field
	r0 := Infinity(f)
	r1 := p.Clone()
	var err error
	for i := k.BitLen() - 1; i >= 0; i-- {
		if k.Bit(i) == 0 {
			r1, err = Add(ctx, NewPoint(f), r0, r1)
			if err != nil {
				return nil, err
			}
			r0 = Dbl(ctx, NewPoint(f), r0)
		} else {
			r0, err = Add(ctx, NewPoint(f), r0, r1)
			if err != nil {
				return nil, err
			}
			r1 = Dbl(ctx, NewPoint(f), r1)
		}
	}
	return Norm(ctx, out, r0)
}

// MulSlide computes out = k*p using a sliding window over k's width-w
// NAF recoding (the w-NAF variant of spec.md §4.2), by ordinary doubling
// regardless of curve family. See MulWTNAF for the Koblitz-specific
// tau-adic sibling.
func MulSlide(ctx *Ctx, out *Point, k scalar.Scalar, p *Point, w uint) (*Point, error) {
	f := ctx.Field
	naf := k.NAF(w)
	table := buildOddMultiples(ctx, p, w)

	acc := Infinity(f)
	var err error
	for i := len(naf) - 1; i >= 0; i-- {
		acc = Dbl(ctx, NewPoint(f), acc)
		d := naf[i]
		if d == 0 {
			continue
		}
		idx := (abs32(d) - 1) / 2
		tp := table[idx]
		if d < 0 {
			tp = Neg(ctx, NewPoint(f), tp)
		}
		acc, err = Add(ctx, NewPoint(f), acc, tp)
		if err != nil {
			return nil, err
		}
	}
	return Norm(ctx, out, acc)
}

// MulWTNAF computes out = k*p on a Koblitz curve using the width-w
// tau-adic NAF recoding of k against the Frobenius endomorphism (the
// Lutz–Hasan w-tau-NAF variant of spec.md §4.2/§8's mandatory scenario
// 2), walking the Frobenius orbit of p with Frb in place of Dbl. It is
// an invalid-parameter error to call this on a non-Koblitz curve: the
// tau endomorphism this variant exploits only exists for that family.
func MulWTNAF(ctx *Ctx, out *Point, k scalar.Scalar, p *Point, w uint) (*Point, error) {
	if ctx.Fam != Koblitz {
		return nil, errs.New(errs.InvalidParameter, "eb.MulWTNAF", nil)
	}
	return mulTNAF(ctx, out, k, p, w)
}

// buildOddMultiples returns [1*p, 3*p, 5*p, ..., (2^w-1)*p] in affine
// form, the odd-multiple table every windowed/w-NAF variant consumes.
func buildOddMultiples(ctx *Ctx, p *Point, w uint) []*Point {
	f := ctx.Field
	count := 1 << (w - 1)
	table := make([]*Point, count)
	table[0] = p.Clone()
	dbl := Dbl(ctx, NewPoint(f), p)
	for i := 1; i < count; i++ {
		sum, _ := Add(ctx, NewPoint(f), table[i-1], dbl)
		affine := NewPoint(f)
		Norm(ctx, affine, sum)
		table[i] = affine
	}
	return table
}

// mulTNAF computes k*p on a Koblitz curve via the width-w tau-adic NAF:
// k is recoded into odd digits d_i in (-2^(w-1), 2^(w-1)) against the
// Frobenius base tau, and evaluated most significant digit first as a
// tau-expansion
// using Frb instead of Dbl.
func mulTNAF(ctx *Ctx, out *Point, k scalar.Scalar, p *Point, w uint) (*Point, error) {
	f := ctx.Field
	digits := tauNAF(ctx, k, w)
	acc := Infinity(f)
	table := buildOddMultiples(ctx, p, w)
	var err error
	for i := len(digits) - 1; i >= 0; i-- {
		acc = Frb(ctx, NewPoint(f), acc)
		d := digits[i]
		if d == 0 {
			continue
		}
		idx := (abs32(d) - 1) / 2
		if idx >= len(table) {
			idx = len(table) - 1
		}
		tp := table[idx]
		if d < 0 {
			tp = Neg(ctx, NewPoint(f), tp)
		}
		acc, err = Add(ctx, NewPoint(f), acc, tp)
		if err != nil {
			return nil, err
		}
	}
	return Norm(ctx, out, acc)
}

// tauNAF recodes k into a width-w tau-adic non-adjacent form using the
// Solinas/Koblitz division algorithm for tau^2 = mu*tau - 2: repeatedly
// reduce (k0,k1) (the current remainder in the Z[tau] basis, carried as
// arbitrary-precision integers so curves with n approaching the field's
// full bit width recode correctly) modulo tau, emitting a digit centered
// in (-2^(w-1), 2^(w-1)) at each step — the same "residue mod 2^w,
// centered" rule scalar.Scalar.NAF(w) uses for the ordinary integer case,
// applied here to the Z[tau] basis. Generalized from the integer NAF
// recoding since eb owns the Koblitz-specific endomorphism scalar has no
// notion of.
func tauNAF(ctx *Ctx, k scalar.Scalar, w uint) []int32 {
	mu := big.NewInt(int64(ctx.KoblitzMu))
	mod := int64(1) << w
	half := mod / 2

	k0 := bigFromScalar(k)
	k1 := big.NewInt(0)
	zero := big.NewInt(0)

	var out []int32
	limit := 2*k.BitLen() + int(w) + 8
	for (k0.Cmp(zero) != 0 || k1.Cmp(zero) != 0) && len(out) < limit {
		var di int32
		if k0.Bit(0) != 0 {
			r := new(big.Int).Sub(k0, new(big.Int).Lsh(k1, 1)) // k0 - 2*k1
			r.Mod(r, big.NewInt(mod))
			ri := r.Int64()
			if ri >= half {
				ri -= mod
			}
			di = int32(ri)
			k0.Sub(k0, big.NewInt(int64(di)))
		}
		out = append(out, di)

		// (k0,k1) <- (k1 + mu*(k0/2), -(k0/2)), the tau-division step.
		// k0 is even here by construction, so Rsh(1) is exact.
		halfK0 := new(big.Int).Rsh(k0, 1)
		newK0 := new(big.Int).Add(k1, new(big.Int).Mul(mu, halfK0))
		newK1 := new(big.Int).Neg(halfK0)
		k0, k1 = newK0, newK1
	}
	return out
}

// bigFromScalar reconstructs k's full-precision value as a *big.Int via
// its big-endian byte form, rather than truncating to a machine word:
// tauNAF must see every bit of k, including curves whose order approaches
// or exceeds the field's native word width.
func bigFromScalar(k scalar.Scalar) *big.Int {
	nbytes := (k.BitLen() + 7) / 8
	if nbytes == 0 {
		return big.NewInt(0)
	}
	buf, err := k.Bytes(nbytes)
	if err != nil {
		return big.NewInt(0)
	}
	return new(big.Int).SetBytes(buf)
}

func abs32(v int32) int {
	if v < 0 {
		return int(-v)
	}
	return int(v)
}
