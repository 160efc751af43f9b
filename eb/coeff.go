package eb

import "github.com/sammyne/etacore/fb"

// CoeffTag names the curve-coefficient special cases spec.md §9's
// "tagged coefficient sum type" dispatches on at every Add/Dbl hot-loop
// entry: a coefficient that happens to be 0, 1, or a single low digit
// lets Add/Dbl skip a full field multiplication.
type CoeffTag int

const (
	// CoeffZero marks a coefficient that is the additive identity.
	CoeffZero CoeffTag = iota
	// CoeffOne marks a coefficient that is the multiplicative identity.
	CoeffOne
	// CoeffDigit marks a coefficient representable in a single digit.Word.
	CoeffDigit
	// CoeffGeneral marks a coefficient with no shortcut available.
	CoeffGeneral
)

// Coeff is the tagged union used for a curve's a2/a6 coefficients: the
// Tag field selects which of Digit/Elt is meaningful, letting Add/Dbl
// switch on it once per call instead of paying a general field
// multiplication for curves whose coefficients happen to be cheap.
type Coeff struct {
	Tag   CoeffTag
	Digit uint64
	Elt   fb.Elt
}

// ZeroCoeff builds a CoeffZero tag.
func ZeroCoeff() Coeff { return Coeff{Tag: CoeffZero} }

// OneCoeff builds a CoeffOne tag.
func OneCoeff() Coeff { return Coeff{Tag: CoeffOne} }

// DigitCoeff builds a CoeffDigit tag for a single-digit coefficient.
func DigitCoeff(v uint64) Coeff { return Coeff{Tag: CoeffDigit, Digit: v} }

// GeneralCoeff builds a CoeffGeneral tag wrapping an arbitrary element.
func GeneralCoeff(e fb.Elt) Coeff { return Coeff{Tag: CoeffGeneral, Elt: e} }

// mulCoeff computes out = c*x, dispatching on c's tag to avoid a general
// field multiplication whenever possible.
func mulCoeff(ctx *fb.Ctx, out fb.Elt, c Coeff, x fb.Elt) fb.Elt {
	switch c.Tag {
	case CoeffZero:
		return out.SetZero()
	case CoeffOne:
		return out.Copy(x)
	case CoeffDigit:
		dv := fb.NewDV(ctx)
		fb.MulBasic(dv, x, digitElt(ctx, c.Digit))
		return ctx.Rdc(out, dv)
	default:
		return ctx.Mul(out, c.Elt, x)
	}
}

func digitElt(ctx *fb.Ctx, v uint64) fb.Elt {
	e := fb.New(ctx)
	e.SetInt(v)
	return e
}

// CoeffElt materializes a Coeff as a concrete field element, for callers
// outside this package (e.g. pb's line-function construction) that need
// a curve coefficient's actual value rather than the tagged-dispatch
// fast path mulCoeff/constElt use internally.
func CoeffElt(ctx *fb.Ctx, c Coeff) fb.Elt {
	return constElt(ctx, c)
}
