package eb

import (
	"github.com/sammyne/etacore/errs"
	"github.com/sammyne/etacore/fb"
)

// Family names the three supported curve shapes, spec.md §4.2.
type Family int

const (
	// Ordinary is y^2 + xy = x^3 + a2*x^2 + a6, a6 != 0 (NIST B-curves).
	Ordinary Family = iota
	// Koblitz is Ordinary with a2 in {0,1} and a6=1 (NIST K-curves),
	// admitting the Frobenius endomorphism.
	Koblitz
	// Supersingular is y^2 + a1*x*y + a3*y = x^3 + a2*x^2 + a4*x + a6 with
	// a1=0, pairing-friendly.
	Supersingular
)

// Ctx is a curve context: the field it's defined over plus its
// coefficients, generator, and order. One eb.Ctx exists per parameter
// identifier, embedded inside params.Ctx.
type Ctx struct {
	Field *fb.Ctx

	Fam Family

	// Ordinary/Koblitz coefficients: y^2+xy=x^3+A2*x^2+A6.
	A2, A6 Coeff

	// Supersingular coefficients: y^2+A3*y=x^3+A4*x+A6 (a1=a2=0 in the
	// M=271/1223 presets this build ships).
	A3, A4 Coeff

	// KoblitzMu is +1 or -1, the sign in the Koblitz curve's Frobenius
	// characteristic equation tau^2 - mu*tau + 2 = 0 (mu = (-1)^(1-a2)).
	KoblitzMu int

	Gx, Gy fb.Elt
	Order  []byte // big-endian group order n
	Cofactor int
}

// OnCurve reports whether the affine point (x,y) satisfies the curve
// equation for ctx's family.
func (c *Ctx) OnCurve(x, y fb.Elt) bool {
	f := c.Field
	lhs := fb.New(f)
	rhs := fb.New(f)
	tmp := fb.New(f)

	switch c.Fam {
	case Supersingular:
		// y^2 + a3*y = x^3 + a4*x + a6
		f.Sqr(lhs, y)
		a3y := fb.New(f)
		mulCoeff(f, a3y, c.A3, y)
		lhs.Add(lhs, a3y)

		f.Sqr(tmp, x)
		f.Mul(rhs, tmp, x) // x^3
		a4x := fb.New(f)
		mulCoeff(f, a4x, c.A4, x)
		rhs.Add(rhs, a4x)
		rhs.Add(rhs, constElt(f, c.A6))
	default:
		// y^2 + x*y = x^3 + a2*x^2 + a6
		f.Sqr(lhs, y)
		xy := fb.New(f)
		f.Mul(xy, x, y)
		lhs.Add(lhs, xy)

		x2 := fb.New(f)
		f.Sqr(x2, x)
		f.Mul(rhs, x2, x) // x^3
		a2x2 := fb.New(f)
		mulCoeff(f, a2x2, c.A2, x2)
		rhs.Add(rhs, a2x2)
		rhs.Add(rhs, constElt(f, c.A6))
	}
	return lhs.Equal(rhs)
}

func constElt(ctx *fb.Ctx, c Coeff) fb.Elt {
	switch c.Tag {
	case CoeffZero:
		return fb.New(ctx)
	case CoeffOne:
		e := fb.New(ctx)
		e.SetInt(1)
		return e
	case CoeffDigit:
		e := fb.New(ctx)
		e.SetInt(c.Digit)
		return e
	default:
		return c.Elt
	}
}

// NewGenerator returns the configured base point G in affine form.
func (c *Ctx) NewGenerator() *Point {
	p := NewPoint(c.Field)
	return p.SetAffine(c.Gx, c.Gy)
}

func errInvalid(op string) error {
	return errs.New(errs.InvalidParameter, op, nil)
}
