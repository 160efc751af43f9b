package fb

import "github.com/sammyne/etacore/errs"

// Mul computes out = a*b using the context's default multiplication
// variant, then reduces with the default reduction variant. Named
// variants (MulBasic, MulComb, MulKaratsuba, MulInteg) remain directly
// callable for the cross-validation tests in spec.md §8.
func (c *Ctx) Mul(out, a, b Elt) Elt {
	return c.MulVariant(c.defMul, out, a, b)
}

// MulVariant computes out = a*b using an explicitly named variant.
func (c *Ctx) MulVariant(v MulVariant, out, a, b Elt) Elt {
	if v == MulIntegV {
		return MulInteg(c, out, a, b)
	}
	dv := NewDV(c)
	switch v {
	case MulBasicV:
		MulBasic(dv, a, b)
	case MulKaratsubaV:
		MulKaratsuba(dv, a, b)
	default:
		MulComb(dv, a, b)
	}
	return c.RdcVariant(c.defRdc, out, dv)
}

// Sqr computes out = a^2 using the context's default squaring variant.
func (c *Ctx) Sqr(out, a Elt) Elt {
	return c.SqrVariant_(c.defSqr, out, a)
}

// SqrVariant_ computes out = a^2 using an explicitly named variant. The
// trailing underscore avoids colliding with the SqrVariant type name.
func (c *Ctx) SqrVariant_(v SqrVariant, out, a Elt) Elt {
	dv := NewDV(c)
	if v == SqrBasicV {
		SqrBasic(dv, a)
	} else {
		SqrTable(c, dv, a)
	}
	return c.RdcVariant(c.defRdc, out, dv)
}

// Rdc reduces dv modulo f using the context's default reduction variant.
func (c *Ctx) Rdc(out Elt, dv DV) Elt {
	return c.RdcVariant(c.defRdc, out, dv)
}

// RdcVariant reduces dv using an explicitly named variant.
func (c *Ctx) RdcVariant(v RdcVariant, out Elt, dv DV) Elt {
	if v == RdcBasicV {
		return RdcBasic(c, out, dv)
	}
	return RdcQuick(c, out, dv)
}

// Inv computes out = a^-1 using the context's default inversion variant.
// Returns an InvalidParameter error for a==0.
func (c *Ctx) Inv(out, a Elt) (Elt, error) {
	return c.InvVariant(c.defInv, out, a)
}

// InvVariant computes out = a^-1 using an explicitly named variant.
func (c *Ctx) InvVariant(v InvVariant, out, a Elt) (Elt, error) {
	switch v {
	case InvBasicV:
		return InvBasic(c, out, a)
	case InvExgcdV:
		return InvExgcd(c, out, a)
	case InvAlmostInverseV:
		return InvAlmostInverse(c, out, a)
	default:
		return nil, errs.New(errs.InvalidParameter, "fb.InvVariant", nil)
	}
}

// SetMulDefault overrides the default multiplication variant used by Mul.
func (c *Ctx) SetMulDefault(v MulVariant) { c.defMul = v }

// SetSqrDefault overrides the default squaring variant used by Sqr.
func (c *Ctx) SetSqrDefault(v SqrVariant) { c.defSqr = v }

// SetRdcDefault overrides the default reduction variant used by Rdc.
func (c *Ctx) SetRdcDefault(v RdcVariant) { c.defRdc = v }

// SetInvDefault overrides the default inversion variant used by Inv.
func (c *Ctx) SetInvDefault(v InvVariant) { c.defInv = v }
