// Package fb implements GF(2^m) arithmetic over a sparse irreducible
// trinomial/pentanomial f(x) = x^m + x^a (+ x^b + x^c) + 1, per spec.md
// §4.1. An fb.Ctx is the field half of the parameter context described in
// spec.md §3; params.Ctx embeds one per curve family.
//
// Element storage and the method-chaining surface (Set/Copy/Normalize-
// style calls returning the receiver) generalize the teacher's fieldVal
// usage pattern in sammyne-secp256k1/koblitz from carry-propagating
// mod-p arithmetic to XOR-only mod-f(x) arithmetic.
package fb

import (
	"github.com/sammyne/etacore/digit"
	"github.com/sammyne/etacore/errs"
)

// MulVariant and the other *Variant enums name the interchangeable
// algorithm choices spec.md §4.1 requires every multi-variant operation
// to expose, for the cross-validation tests in §8.
type MulVariant int

const (
	MulBasicV MulVariant = iota
	MulCombV
	MulKaratsubaV
	MulIntegV
)

type SqrVariant int

const (
	SqrBasicV SqrVariant = iota
	SqrTableV
)

type RdcVariant int

const (
	RdcBasicV RdcVariant = iota
	RdcQuickV
)

type InvVariant int

const (
	InvBasicV InvVariant = iota
	InvExgcdV
	InvAlmostInverseV
)

// Ctx is the active field polynomial and the cached tables/defaults built
// from it at construction time (params.Set time, in the layer above).
type Ctx struct {
	m       int
	a, b, c int // b=c=0 denotes a trinomial, per spec.md §3
	digits  int

	defMul MulVariant
	defSqr SqrVariant
	defRdc RdcVariant
	defInv InvVariant

	sqrTable  [256]uint16 // 8->16 bit spread table, spec.md §4.1 squaring
	sqrtSplit [16]byte    // even/odd nibble gather table, spec.md §4.1 sqrt
	sqrtT     Elt         // sqrt(x) = x^(2^(m-1)) mod f, precomputed once
}

// NewCtx builds a field context for degree m with polynomial exponents
// (a,b,c); b=c=0 selects a trinomial. Defaults are chosen the way spec.md
// §4.1's "dispatch rule" describes: quick reduction whenever the
// polynomial is sparse (always, by construction here), almost-inverse by
// default (cheapest in practice for the sizes this build targets), comb
// multiplication, and table squaring.
func NewCtx(m, a, b, c int) (*Ctx, error) {
	if m <= 0 || a <= 0 || a >= m || (b != 0 && (b <= 0 || b >= a)) || (c != 0 && (c <= 0 || c >= b)) {
		return nil, errs.New(errs.InvalidParameter, "fb.NewCtx", nil)
	}
	ctx := &Ctx{
		m:      m,
		a:      a,
		b:      b,
		c:      c,
		digits: (m + digit.Width - 1) / digit.Width,
		defMul: MulCombV,
		defSqr: SqrTableV,
		defRdc: RdcQuickV,
		defInv: InvAlmostInverseV,
	}
	ctx.buildSqrTable()
	ctx.buildSqrtSplit()
	ctx.sqrtT = ctx.computeSqrtX()
	return ctx, nil
}

// M returns the field degree m.
func (c *Ctx) M() int { return c.m }

// Poly returns the polynomial exponent tuple (a,b,c); b=c=0 means
// trinomial.
func (c *Ctx) Poly() (a, b, cc int) { return c.a, c.b, c.c }

// Digits returns ceil(m/DIGIT), the length of an Elt.
func (c *Ctx) Digits() int { return c.digits }

// Bytes returns ceil(m/8), the serialized length of an Elt or Scalar.
func (c *Ctx) Bytes() int { return (c.m + 7) / 8 }

// DVLen returns the scratch length 2*Digits()+2 required by unreduced
// products and square-roots, per spec.md §3's dv definition.
func (c *Ctx) DVLen() int { return 2*c.digits + 2 }

func (c *Ctx) buildSqrTable() {
	for i := 0; i < 256; i++ {
		var v uint16
		for bitpos := 0; bitpos < 8; bitpos++ {
			if i&(1<<uint(bitpos)) != 0 {
				v |= 1 << uint(2*bitpos)
			}
		}
		c.sqrTable[i] = v
	}
}

// buildSqrtSplit builds the 16-entry nibble gather table used by Sqrt to
// de-interleave a field element into its even- and odd-position bit
// halves four bits at a time: for a nibble occupying local positions
// 0..3, the two even-position bits (0,2) are packed into the low two
// bits of the result, the two odd-position bits (1,3) into bits 4-5.
func (c *Ctx) buildSqrtSplit() {
	for n := 0; n < 16; n++ {
		bit := func(i uint) int { return (n >> i) & 1 }
		even := bit(0) | bit(2)<<1
		odd := bit(1) | bit(3)<<1
		c.sqrtSplit[n] = byte(even) | byte(odd)<<4
	}
}

// computeSqrtX computes sqrt(x) = x^(2^(m-1)) mod f by m-1 repeated
// squarings, bootstrapping on SqrBasic/RdcQuick before the context is
// otherwise used.
func (c *Ctx) computeSqrtX() Elt {
	result := New(c)
	result.SetBit(1, true) // result = x
	dv := NewDV(c)
	for i := 1; i < c.m; i++ {
		SqrBasic(dv, result)
		RdcQuick(c, result, dv)
	}
	return result
}

func bitsOf(v int) int {
	n := 0
	for v > 0 {
		n++
		v >>= 1
	}
	return n
}
