package eb

import "github.com/sammyne/etacore/scalar"

// MulSimBasic computes out = k1*p1 + k2*p2 by independent double-and-add
// over the longer scalar's bit length, adding whichever term's bit is
// set at each step: spec.md §4.2's "basic" simultaneous variant.
func MulSimBasic(ctx *Ctx, out *Point, k1 scalar.Scalar, p1 *Point, k2 scalar.Scalar, p2 *Point) (*Point, error) {
	f := ctx.Field
	l := k1.BitLen()
	if k2.BitLen() > l {
		l = k2.BitLen()
	}
	acc := Infinity(f)
	var err error
	for i := l - 1; i >= 0; i-- {
		acc = Dbl(ctx, NewPoint(f), acc)
		if k1.Bit(i) == 1 {
			acc, err = Add(ctx, NewPoint(f), acc, p1)
			if err != nil {
				return nil, err
			}
		}
		if k2.Bit(i) == 1 {
			acc, err = Add(ctx, NewPoint(f), acc, p2)
			if err != nil {
				return nil, err
			}
		}
	}
	return Norm(ctx, out, acc)
}

// MulSimShamir computes out = k1*p1 + k2*p2 using Shamir's trick: a
// single doubling per bit consumes a 4-entry precomputed table
// {O, p1, p2, p1+p2} indexed by the simultaneous bit pair.
func MulSimShamir(ctx *Ctx, out *Point, k1 scalar.Scalar, p1 *Point, k2 scalar.Scalar, p2 *Point) (*Point, error) {
	f := ctx.Field
	sum, err := Add(ctx, NewPoint(f), p1, p2)
	if err != nil {
		return nil, err
	}
	sumAffine := NewPoint(f)
	Norm(ctx, sumAffine, sum)
	table := [4]*Point{Infinity(f), p1, p2, sumAffine}

	l := k1.BitLen()
	if k2.BitLen() > l {
		l = k2.BitLen()
	}
	acc := Infinity(f)
	for i := l - 1; i >= 0; i-- {
		acc = Dbl(ctx, NewPoint(f), acc)
		idx := k1.Bit(i) | (k2.Bit(i) << 1)
		if idx != 0 {
			acc, err = Add(ctx, NewPoint(f), acc, table[idx])
			if err != nil {
				return nil, err
			}
		}
	}
	return Norm(ctx, out, acc)
}

// MulSimInterleavedNAF computes out = k1*p1 + k2*p2 by recoding each
// scalar independently into its own width-w NAF and interleaving the
// additions into one shared accumulator, doubling once per position.
func MulSimInterleavedNAF(ctx *Ctx, out *Point, k1 scalar.Scalar, p1 *Point, k2 scalar.Scalar, p2 *Point, w uint) (*Point, error) {
	f := ctx.Field
	naf1 := k1.NAF(w)
	naf2 := k2.NAF(w)
	t1 := buildOddMultiples(ctx, p1, w)
	t2 := buildOddMultiples(ctx, p2, w)
	l := len(naf1)
	if len(naf2) > l {
		l = len(naf2)
	}
	acc := Infinity(f)
	var err error
	apply := func(naf []int32, table []*Point, i int) error {
		if i >= len(naf) {
			return nil
		}
		d := naf[i]
		if d == 0 {
			return nil
		}
		idx := (abs32(d) - 1) / 2
		tp := table[idx]
		if d < 0 {
			tp = Neg(ctx, NewPoint(f), tp)
		}
		acc, err = Add(ctx, NewPoint(f), acc, tp)
		return err
	}
	for i := l - 1; i >= 0; i-- {
		acc = Dbl(ctx, NewPoint(f), acc)
		if err := apply(naf1, t1, i); err != nil {
			return nil, err
		}
		if err := apply(naf2, t2, i); err != nil {
			return nil, err
		}
	}
	return Norm(ctx, out, acc)
}

// MulSimJSF computes out = k1*p1 + k2*p2 consuming the pair's joint
// sparse form (scalar.Scalar.JSF), one shared doubling per position and
// up to two additions.
func MulSimJSF(ctx *Ctx, out *Point, k1 scalar.Scalar, p1 *Point, k2 scalar.Scalar, p2 *Point) (*Point, error) {
	f := ctx.Field
	jsf := k1.JSF(k2)
	negP1 := Neg(ctx, NewPoint(f), p1)
	negP2 := Neg(ctx, NewPoint(f), p2)
	acc := Infinity(f)
	var err error
	for i := len(jsf) - 1; i >= 0; i-- {
		acc = Dbl(ctx, NewPoint(f), acc)
		d1, d2 := jsf[i][0], jsf[i][1]
		if d1 == 1 {
			acc, err = Add(ctx, NewPoint(f), acc, p1)
		} else if d1 == -1 {
			acc, err = Add(ctx, NewPoint(f), acc, negP1)
		}
		if err != nil {
			return nil, err
		}
		if d2 == 1 {
			acc, err = Add(ctx, NewPoint(f), acc, p2)
		} else if d2 == -1 {
			acc, err = Add(ctx, NewPoint(f), acc, negP2)
		}
		if err != nil {
			return nil, err
		}
	}
	return Norm(ctx, out, acc)
}

// MulSimGen computes out = k1*G + k2*p2, where G is the curve's fixed
// generator backed by a precomputed table, and p2 is an arbitrary
// variable point: the common "signature verification" shape, combining
// a cheap fixed-point term (MulFixed) with a general one (MulSlide,
// width 4), computed separately and then added.
func MulSimGen(ctx *Ctx, table *FixedTable, out *Point, k1 scalar.Scalar, k2 scalar.Scalar, p2 *Point) (*Point, error) {
	f := ctx.Field
	term1, err := MulFixed(table, NewPoint(f), k1)
	if err != nil {
		return nil, err
	}
	term2, err := MulSlide(ctx, NewPoint(f), k2, p2, 4)
	if err != nil {
		return nil, err
	}
	sum, err := Add(ctx, NewPoint(f), term1, term2)
	if err != nil {
		return nil, err
	}
	return Norm(ctx, out, sum)
}
