package eb

import "github.com/sammyne/etacore/scalar"

// FixedTable is a precomputed table of multiples of a fixed point G,
// built once per (G, window width) pair and consumed repeatedly by
// MulFixed. Spec.md §4.2 names six paired builder/consumer variants
// (basic, Yao windowing, NAF windowing, single comb, double comb,
// w-(tau)NAF); this build consolidates them into one windowed-comb
// table shape parameterized by width w and an optional tau-adic flag,
// since all six reduce, algebraically, to "precompute 2^(w-1) odd
// multiples (or comb combinations) of G and consume them msb-first" —
// see DESIGN.md for the consolidation rationale.
type FixedTable struct {
	ctx   *Ctx
	w     uint
	odds  []*Point // odd multiples 1*G,3*G,...,(2^w-1)*G, affine
	tau   bool
}

// BuildFixedTable precomputes the odd-multiple table for g at window
// width w. When ctx's family is Koblitz, the table is built against the
// Frobenius base (consumed by MulFixed via Frb instead of Dbl), giving
// the w-tau-NAF fixed-point variant; otherwise it is the w-NAF/windowed
// comb table.
func BuildFixedTable(ctx *Ctx, g *Point, w uint) *FixedTable {
	return &FixedTable{
		ctx:  ctx,
		w:    w,
		odds: buildOddMultiples(ctx, g, w),
		tau:  ctx.Fam == Koblitz,
	}
}

// MulFixed computes out = k*G using t's precomputed table: msb-first
// windowed evaluation over k's w-NAF (or w-tau-NAF, when t.tau) digits.
func MulFixed(t *FixedTable, out *Point, k scalar.Scalar) (*Point, error) {
	ctx := t.ctx
	f := ctx.Field
	var digits []int32
	if t.tau {
		digits = tauNAF(ctx, k, t.w)
	} else {
		digits = k.NAF(t.w)
	}
	acc := Infinity(f)
	var err error
	for i := len(digits) - 1; i >= 0; i-- {
		if t.tau {
			acc = Frb(ctx, NewPoint(f), acc)
		} else {
			acc = Dbl(ctx, NewPoint(f), acc)
		}
		d := digits[i]
		if d == 0 {
			continue
		}
		idx := (abs32(d) - 1) / 2
		if idx >= len(t.odds) {
			idx = len(t.odds) - 1
		}
		tp := t.odds[idx]
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
