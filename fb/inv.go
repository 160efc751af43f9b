package fb

import (
	"github.com/sammyne/etacore/digit"
	"github.com/sammyne/etacore/errs"
)

// InvBasic computes out = a^-1 via Fermat's little theorem, a^(2^m-2),
// using the standard square-and-multiply ladder for the exponent
// 2^(m-1)-1 followed by one final squaring: spec.md §4.1's "basic"
// inversion variant. Returns an InvalidParameter error for a==0.
func InvBasic(ctx *Ctx, out, a Elt) (Elt, error) {
	if a.IsZero() {
		return nil, errs.New(errs.InvalidParameter, "fb.InvBasic", nil)
	}
	x := a.Clone()
	dv := NewDV(ctx)
	for i := 1; i <= ctx.m-2; i++ {
		SqrTable(ctx, dv, x)
		RdcQuick(ctx, x, dv)
		MulComb(dv, x, a)
		RdcQuick(ctx, x, dv)
	}
	SqrTable(ctx, dv, x)
	RdcQuick(ctx, out, dv)
	return out, nil
}

// InvExgcd computes out = a^-1 using the extended Euclidean algorithm on
// polynomials over GF(2): maintain u,v with gcd trace g1,g2 such that
// g1*a ≡ u (mod f) and g2*a ≡ v (mod f), reducing u,v by the
// Euclidean step until u reaches degree 0. Spec.md §4.1's "exgcd"
// variant.
func InvExgcd(ctx *Ctx, out, a Elt) (Elt, error) {
	if a.IsZero() {
		return nil, errs.New(errs.InvalidParameter, "fb.InvExgcd", nil)
	}
	n := ctx.Digits() + 1
	u := make([]digit.Word, n)
	copy(u, a)
	v := polyModulus(ctx, n)
	g1 := make([]digit.Word, n)
	g1[0] = 1
	g2 := make([]digit.Word, n)

	for polyDegree(u) != 0 {
		du, dv := polyDegree(u), polyDegree(v)
		if du < dv {
			u, v = v, u
			g1, g2 = g2, g1
			du, dv = dv, du
		}
		shift := du - dv
		polyXorShift(u, v, shift)
		polyXorShift(g1, g2, shift)
	}
	copy(out, g1[:len(out)])
	return out, nil
}

// InvAlmostInverse computes out = a^-1 via the Itoh–Tsujii-style binary
// field Almost Inverse Algorithm (HAC Algorithm 2.48): the main loop
// produces b, k with b ≡ a^-1 * x^k (mod f) using only shifts and XORs
// against the sparse modulus, and a final correction loop of k steps
// divides b by x (mod f) k times to recover a^-1 exactly. Spec.md §4.1's
// "almost-inverse" variant.
func InvAlmostInverse(ctx *Ctx, out, a Elt) (Elt, error) {
	if a.IsZero() {
		return nil, errs.New(errs.InvalidParameter, "fb.InvAlmostInverse", nil)
	}
	n := ctx.Digits() + 1
	u := make([]digit.Word, n)
	copy(u, a)
	v := polyModulus(ctx, n)
	b := make([]digit.Word, n)
	b[0] = 1
	c := make([]digit.Word, n)
	f := polyModulus(ctx, n)

	k := 0
	for {
		for !polyTestBit(u, 0) {
			polyRsh1(u)
			var carry digit.Word
			for i := range c {
				shifted, out := digit.Lsh1(c[i], 1)
				c[i] = shifted | carry
				carry = out
			}
			k++
		}
		if polyDegree(u) == 0 {
			break
		}
		if polyDegree(u) < polyDegree(v) {
			u, v = v, u
			b, c = c, b
		}
		polyXor(u, v)
		polyXor(b, c)
	}

	// Correction: b == a^-1 * x^k (mod f); divide by x, k times.
	for i := 0; i < k; i++ {
		if polyTestBit(b, 0) {
			polyXor(b, f)
		}
		polyRsh1(b)
	}
	copy(out, b[:len(out)])
	return out, nil
}
