// Package eb implements the binary elliptic-curve group over GF(2^m) in
// its three supported families (ordinary, Koblitz, supersingular), per
// spec.md §4.2: affine and López–Dahab projective point representations,
// the group law, Koblitz's Frobenius endomorphism, the scalar
// multiplication variants, and hash-to-point.
//
// The struct-of-field-elements point shape and the Add/Dbl method
// surface generalize the teacher's affine<->Jacobian conversion dance in
// sammyne-secp256k1/koblitz_internal.go (bigAffineToField,
// fieldJacobianToBigAffine) from a prime-field Jacobian curve to a
// binary-field López–Dahab curve: same idea (a cheap projective form for
// the group law, converted to affine only at the boundary), different
// field and different projective coordinate system.
package eb

import "github.com/sammyne/etacore/fb"

// Point is a curve point in either affine or López–Dahab projective
// coordinates. Norm=true means (X,Y) are affine coordinates and Z is
// unused except as an infinity flag; Norm=false means (X,Y,Z) are true
// López–Dahab projective coordinates. In both representations Z.IsZero()
// denotes the point at infinity.
type Point struct {
	X, Y, Z fb.Elt
	Norm    bool
}

// NewPoint allocates a finite point's coordinate storage for ctx.
func NewPoint(ctx *fb.Ctx) *Point {
	return &Point{X: fb.New(ctx), Y: fb.New(ctx), Z: fb.New(ctx)}
}

// Infinity returns the point at infinity in affine form.
func Infinity(ctx *fb.Ctx) *Point {
	p := NewPoint(ctx)
	p.Norm = true
	return p
}

// IsInfinity reports whether p is the point at infinity.
func (p *Point) IsInfinity() bool {
	return p.Z.IsZero()
}

// SetInfinity sets p to the point at infinity, preserving its current
// normalization flag.
func (p *Point) SetInfinity() *Point {
	p.X.SetZero()
	p.Y.SetZero()
	p.Z.SetZero()
	return p
}

// SetAffine sets p to the finite affine point (x,y).
func (p *Point) SetAffine(x, y fb.Elt) *Point {
	p.X.Copy(x)
	p.Y.Copy(y)
	p.Z.SetInt(1)
	p.Norm = true
	return p
}

// Copy copies src into p.
func (p *Point) Copy(src *Point) *Point {
	p.X.Copy(src.X)
	p.Y.Copy(src.Y)
	p.Z.Copy(src.Z)
	p.Norm = src.Norm
	return p
}

// Clone returns an independent copy of p.
func (p *Point) Clone() *Point {
	return &Point{X: p.X.Clone(), Y: p.Y.Clone(), Z: p.Z.Clone(), Norm: p.Norm}
}

// Equal reports whether p and o represent the same projective point
// (coordinate-wise equal; callers wanting point equality across
// differing normalization should Norm both sides first).
func (p *Point) Equal(o *Point) bool {
	if p.IsInfinity() || o.IsInfinity() {
		return p.IsInfinity() && o.IsInfinity()
	}
	return p.X.Equal(o.X) && p.Y.Equal(o.Y) && p.Z.Equal(o.Z)
}
