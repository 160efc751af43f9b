package eb

import "github.com/sammyne/etacore/fb"

// ToBytes serializes the affine point p as two big-endian, zero-padded
// field elements (x || y), each ctx.Field.Bytes() long. The point at
// infinity has no defined encoding and returns an error, per spec.md §6.
func ToBytes(ctx *Ctx, buf []byte, p *Point) error {
	if p.IsInfinity() {
		return errInvalid("eb.ToBytes")
	}
	f := ctx.Field
	affine := p
	if !p.Norm {
		var err error
		affine = NewPoint(f)
		if affine, err = Norm(ctx, affine, p); err != nil {
			return err
		}
	}
	size := f.Bytes()
	if len(buf) < 2*size {
		return errInvalid("eb.ToBytes")
	}
	if err := fb.ToBytes(f, buf[:size], affine.X); err != nil {
		return err
	}
	return fb.ToBytes(f, buf[size:2*size], affine.Y)
}

// FromBytes parses a point serialized by ToBytes and verifies it lies on
// ctx's curve.
func FromBytes(ctx *Ctx, buf []byte) (*Point, error) {
	f := ctx.Field
	size := f.Bytes()
	if len(buf) != 2*size {
		return nil, errInvalid("eb.FromBytes")
	}
	x, err := fb.FromBytes(f, buf[:size])
	if err != nil {
		return nil, err
	}
	y, err := fb.FromBytes(f, buf[size:2*size])
	if err != nil {
		return nil, err
	}
	if !ctx.OnCurve(x, y) {
		return nil, errInvalid("eb.FromBytes")
	}
	p := NewPoint(f)
	p.SetAffine(x, y)
	return p, nil
}
