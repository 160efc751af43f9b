// Package fb4 implements arithmetic in the quartic extension GF(2^{4m})
// used by the Eta_T pairing's target group, per spec.md §4.3. An element
// is c0 + c1*s + c2*t + c3*s*t, built as two stacked quadratic extensions
// of the base field fb.Ctx: A = c0+c1*s and B = c2+c3*s live in GF(2^{2m}),
// and the full element is A + B*t, with s^2=s+deltaS and t^2=t+deltaT the
// tower-defining relations fixed by the supersingular curve choice (part
// of the parameter context one layer up, in params).
//
// The two-level tower shape and the 9-base-multiplication Karatsuba
// product are generalized, in structure only, from
// zhuhaicity-gnark-crypto/bw761/e6.go and
// wyf-ACCEPT-eth2030/pkg/crypto's bn254_fp2.go/bn254_fp12.go towers —
// those are built over a large prime Fp; this one is native GF(2^m), so
// no code or types are shared, only the add/mul/square/Frobenius/Exp
// method shape.
package fb4

import "github.com/sammyne/etacore/fb"

// Elt is a quartic-extension element (c0,c1,c2,c3).
type Elt [4]fb.Elt

// Ctx carries the base field context and the two tower-defining
// constants deltaS, deltaT (s^2=s+deltaS, t^2=t+deltaT).
type Ctx struct {
	Base           *fb.Ctx
	DeltaS, DeltaT fb.Elt
}

// NewCtx builds a quartic-tower context over base with the given
// tower-defining constants.
func NewCtx(base *fb.Ctx, deltaS, deltaT fb.Elt) *Ctx {
	return &Ctx{Base: base, DeltaS: deltaS, DeltaT: deltaT}
}

// New allocates a zero Elt.
func (c *Ctx) New() Elt {
	return Elt{fb.New(c.Base), fb.New(c.Base), fb.New(c.Base), fb.New(c.Base)}
}

// SetOne sets z to the multiplicative identity.
func (c *Ctx) SetOne(z Elt) Elt {
	z[0].SetInt(1)
	z[1].SetZero()
	z[2].SetZero()
	z[3].SetZero()
	return z
}

// Copy copies src into z.
func (c *Ctx) Copy(z, src Elt) Elt {
	for i := range z {
		z[i].Copy(src[i])
	}
	return z
}

// IsZero reports whether z is the zero element.
func (c *Ctx) IsZero(z Elt) bool {
	for _, e := range z {
		if !e.IsZero() {
			return false
		}
	}
	return true
}

// IsOne reports whether z is the multiplicative identity.
func (c *Ctx) IsOne(z Elt) bool {
	return z[0].Bits() == 1 && z[1].IsZero() && z[2].IsZero() && z[3].IsZero()
}

// Equal reports whether z == o coordinate-wise.
func (c *Ctx) Equal(z, o Elt) bool {
	for i := range z {
		if !z[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Add computes z = a+b (coordinate-wise XOR).
func (c *Ctx) Add(z, a, b Elt) Elt {
	for i := range z {
		z[i].Add(a[i], b[i])
	}
	return z
}

// --- GF(2^{2m}) helpers on (lo,hi fb.Elt) pairs, used internally by Mul/Square/Frobenius ---

func (c *Ctx) quadMul(outLo, outHi, a0, a1, b0, b1 fb.Elt) {
	base := c.Base
	t0 := fb.New(base)
	t1 := fb.New(base)
	t2 := fb.New(base)
	base.Mul(t0, a0, b0) // a0*b0
	base.Mul(t1, a1, b1) // a1*b1
	sumA := fb.New(base).Add(a0, a1)
	sumB := fb.New(base).Add(b0, b1)
	base.Mul(t2, sumA, sumB) // (a0+a1)(b0+b1)

	deltaTerm := fb.New(base)
	base.Mul(deltaTerm, t1, c.DeltaS)

	outLo.Add(t0, deltaTerm)
	cross := fb.New(base).Add(t2, t0)
	outHi.Copy(cross)
}

func (c *Ctx) quadSquare(outLo, outHi, a0, a1 fb.Elt) {
	base := c.Base
	s0 := fb.New(base)
	s1 := fb.New(base)
	base.Sqr(s0, a0) // a0^2
	base.Sqr(s1, a1) // a1^2
	deltaTerm := fb.New(base)
	base.Mul(deltaTerm, s1, c.DeltaS)
	outLo.Add(s0, deltaTerm)
	outHi.Copy(s1)
}

// Mul computes z = a*b using the 9-base-multiplication Karatsuba product
// of the stacked quadratic towers, per spec.md §4.3.
func (c *Ctx) Mul(z, a, b Elt) Elt {
	base := c.Base
	aA0, aA1, aB0, aB1 := a[0], a[1], a[2], a[3]
	bA0, bA1, bB0, bB1 := b[0], b[1], b[2], b[3]

	aa0, aa1 := fb.New(base), fb.New(base)
	c.quadMul(aa0, aa1, aA0, aA1, bA0, bA1) // A(a)*A(b)

	bb0, bb1 := fb.New(base), fb.New(base)
	c.quadMul(bb0, bb1, aB0, aB1, bB0, bB1) // B(a)*B(b)

	sumA0 := fb.New(base).Add(aA0, aB0)
	sumA1 := fb.New(base).Add(aA1, aB1)
	sumB0 := fb.New(base).Add(bA0, bB0)
	sumB1 := fb.New(base).Add(bA1, bB1)
	cc0, cc1 := fb.New(base), fb.New(base)
	c.quadMul(cc0, cc1, sumA0, sumA1, sumB0, sumB1) // (A(a)+B(a))(A(b)+B(b))

	// result lo part = AA + deltaT * BB  (deltaT as a GF(2^{2m}) scalar
	// embedded as (deltaT,0))
	deltaBB0 := fb.New(base)
	deltaBB1 := fb.New(base)
	base.Mul(deltaBB0, bb0, c.DeltaT)
	base.Mul(deltaBB1, bb1, c.DeltaT)

	z[0].Add(aa0, deltaBB0)
	z[1].Add(aa1, deltaBB1)

	hi0 := fb.New(base).Add(cc0, aa0)
	hi1 := fb.New(base).Add(cc1, aa1)
	z[2].Copy(hi0)
	z[3].Copy(hi1)
	return z
}

// Square computes z = a^2. Cheaper than Mul: Frobenius-assisted, since
// squaring is additive in characteristic 2 — no cross terms survive.
func (c *Ctx) Square(z, a Elt) Elt {
	base := c.Base
	aa0, aa1 := fb.New(base), fb.New(base)
	c.quadSquare(aa0, aa1, a[0], a[1])
	bb0, bb1 := fb.New(base), fb.New(base)
	c.quadSquare(bb0, bb1, a[2], a[3])

	deltaBB0 := fb.New(base)
	deltaBB1 := fb.New(base)
	base.Mul(deltaBB0, bb0, c.DeltaT)
	base.Mul(deltaBB1, bb1, c.DeltaT)

	z[0].Add(aa0, deltaBB0)
	z[1].Add(aa1, deltaBB1)
	z[2].Copy(bb0)
	z[3].Copy(bb1)
	return z
}

// Conjugate computes z = a^(q^2) where q=2^m, the order-2 automorphism
// fixing GF(2^{2m}) (negating the t-component in this tower): in
// characteristic 2 this is (c0,c1,c2,c3) -> (c0,c1,c2,c3) composed with
// the t -> t+1 relation implied by t^2+t+deltaT=0, i.e. conjugation sends
// t to t+1.
func (c *Ctx) Conjugate(z, a Elt) Elt {
	// (A + B*t) -> A + B*(t+1) = (A+B) + B*t
	z[0].Add(a[0], a[2])
	z[1].Add(a[1], a[3])
	z[2].Copy(a[2])
	z[3].Copy(a[3])
	return z
}

// Inv computes z = a^-1, required only by the pairing's final
// exponentiation per spec.md §4.3.
func (c *Ctx) Inv(z, a Elt) (Elt, error) {
	// norm = a * conj(a) lands in the A-only (GF(2^{2m})) component when
	// the tower is a quadratic extension by t; invert that norm in the
	// base tower and scale.
	conj := c.New()
	c.Conjugate(conj, a)
	norm := c.New()
	c.Mul(norm, a, conj)
	// norm[2],norm[3] should be zero by construction of Conjugate/Mul;
	// invert the GF(2^{2m}) element (norm[0],norm[1]).
	invLo, invHi, err := c.quadInv(norm[0], norm[1])
	if err != nil {
		return z, err
	}
	// z = conj * (invLo + invHi*s) as a GF(2^{2m}) scalar multiply applied
	// to both A and B halves of conj.
	z[0], z[1] = c.quadScale(conj[0], conj[1], invLo, invHi)
	z[2], z[3] = c.quadScale(conj[2], conj[3], invLo, invHi)
	return z, nil
}

func (c *Ctx) quadInv(a0, a1 fb.Elt) (fb.Elt, fb.Elt, error) {
	base := c.Base
	// (a0+a1 s)^-1 = (a0+a1+a1 s) / (a0^2+a0 a1+a1^2 deltaS), the
	// standard quadratic-extension inverse over a deltaS-twisted basis.
	t0 := fb.New(base)
	base.Sqr(t0, a0)
	t1 := fb.New(base)
	base.Mul(t1, a0, a1)
	t2 := fb.New(base)
	base.Sqr(t2, a1)
	base.Mul(t2, t2, c.DeltaS)
	norm := fb.New(base).Add(t0, t1)
	norm.Add(norm, t2)
	normInv, err := base.Inv(fb.New(base), norm)
	if err != nil {
		return nil, nil, err
	}
	outLo := fb.New(base)
	base.Mul(outLo, fb.New(base).Add(a0, a1), normInv)
	outHi := fb.New(base)
	base.Mul(outHi, a1, normInv)
	return outLo, outHi, nil
}

func (c *Ctx) quadScale(x0, x1, s0, s1 fb.Elt) (fb.Elt, fb.Elt) {
	lo, hi := fb.New(c.Base), fb.New(c.Base)
	c.quadMul(lo, hi, x0, x1, s0, s1)
	return lo, hi
}

// Exp computes z = a^e by square-and-multiply, used by the pairing's
// final exponentiation over sparse exponents.
func (c *Ctx) Exp(z, a Elt, e []byte) Elt {
	result := c.New()
	c.SetOne(result)
	for _, byteVal := range e {
		for bit := 7; bit >= 0; bit-- {
			c.Square(result, result)
			if byteVal&(1<<uint(bit)) != 0 {
				c.Mul(result, result, a)
			}
		}
	}
	return c.Copy(z, result)
}
