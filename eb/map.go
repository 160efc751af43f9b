package eb

import (
	"github.com/sammyne/etacore/digest"
	"github.com/sammyne/etacore/errs"
	"github.com/sammyne/etacore/fb"
)

// Map hashes seed to an affine curve point by the standard deterministic
// try-and-increment construction: derive a candidate x from seed, solve
// the curve's defining quadratic in y, and on an unsolvable candidate
// (absolute trace != 0) increment x and retry, per spec.md §4.2.
func Map(ctx *Ctx, seed []byte) (*Point, error) {
	f := ctx.Field
	digestVal := digest.Map32(seed)
	x := New2(f, digestVal[:])

	for attempt := 0; attempt < 1<<16; attempt++ {
		if !x.IsZero() {
			if y, ok := solveFor(ctx, x); ok {
				p := NewPoint(f)
				p.SetAffine(x, y)
				if ctx.OnCurve(x, y) {
					return p, nil
				}
			}
		}
		x[0]++
	}
	return nil, errs.New(errs.InvalidParameter, "eb.Map", nil)
}

// New2 builds a masked field element from arbitrary-length seed bytes
// (repeating/truncating to the field's byte length), a small local
// helper so Map doesn't need fb.FromBytes' exact-length requirement.
func New2(ctx *fb.Ctx, seed []byte) fb.Elt {
	size := ctx.Bytes()
	buf := make([]byte, size)
	for i := 0; i < size; i++ {
		buf[i] = seed[i%len(seed)]
	}
	e, _ := fb.FromBytes(ctx, buf)
	return e
}

// solveFor solves the curve's defining equation for y given x, returning
// ok=false when the candidate x yields an unsolvable quadratic (Tr(beta)
// != 0 for the odd-m fields this build ships).
func solveFor(ctx *Ctx, x fb.Elt) (fb.Elt, bool) {
	f := ctx.Field
	switch ctx.Fam {
	case Supersingular:
		// y^2 + a3*y = x^3 + a4*x + a6; y=a3*w, w^2+w = RHS/a3^2.
		x2 := fb.New(f)
		f.Sqr(x2, x)
		rhs := fb.New(f)
		f.Mul(rhs, x2, x)
		a4x := fb.New(f)
		mulCoeff(f, a4x, ctx.A4, x)
		rhs.Add(rhs, a4x)
		rhs.Add(rhs, constElt(f, ctx.A6))

		a3 := constElt(f, ctx.A3)
		a3inv, err := f.Inv(fb.New(f), a3)
		if err != nil {
			return nil, false
		}
		a3inv2 := fb.New(f)
		f.Sqr(a3inv2, a3inv)
		beta := fb.New(f)
		f.Mul(beta, rhs, a3inv2)
		if fb.Trace(f, beta) != 0 {
			return nil, false
		}
		w := fb.HalfTrace(f, beta)
		y := fb.New(f)
		f.Mul(y, a3, w)
		return y, true
	default:
		// y^2 + x*y = x^3 + a2*x^2 + a6; y=x*z, z^2+z = x + a2 + a6/x^2.
		xInv, err := f.Inv(fb.New(f), x)
		if err != nil {
			return nil, false
		}
		xInv2 := fb.New(f)
		f.Sqr(xInv2, xInv)
		a6xinv2 := fb.New(f)
		mulCoeff(f, a6xinv2, ctx.A6, xInv2)

		beta := fb.New(f).Add(x, a6xinv2)
		beta.Add(beta, constElt(f, ctx.A2))

		if fb.Trace(f, beta) != 0 {
			return nil, false
		}
		z := fb.HalfTrace(f, beta)
		y := fb.New(f)
		f.Mul(y, x, z)
		return y, true
	}
}
