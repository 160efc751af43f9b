package fb

// Trace computes the absolute trace Tr(a) = a + a^2 + a^4 + ... + a^(2^(m-1)),
// returned as 0 or 1, used by eb.Map to test solvability of the quadratic
// y^2+y=a before spending a half-trace computation on it.
func Trace(ctx *Ctx, a Elt) byte {
	acc := a.Clone()
	sq := a.Clone()
	tmp := New(ctx)
	for i := 1; i < ctx.m; i++ {
		Sqr(ctx, tmp, sq)
		sq.Copy(tmp)
		acc.Add(acc, sq)
	}
	if acc.IsZero() {
		return 0
	}
	return 1
}

// HalfTrace computes HT(a) = sum_{i=0}^{(m-1)/2} a^(2^(2i)), valid for odd
// m (every field this build presets uses). z=HT(a) solves z^2+z=a whenever
// Tr(a)=0.
func HalfTrace(ctx *Ctx, a Elt) Elt {
	acc := a.Clone()
	sq := a.Clone()
	tmp := New(ctx)
	for i := 1; i <= (ctx.m-1)/2; i++ {
		Sqr(ctx, tmp, sq)
		Sqr(ctx, tmp, tmp)
		sq.Copy(tmp)
		acc.Add(acc, sq)
	}
	return acc
}

// Sqr is a free-function alias for ctx.Sqr, used where a bare field
// context (not yet wrapped by a curve Ctx) is all that's in scope.
func Sqr(ctx *Ctx, out, a Elt) Elt { return ctx.Sqr(out, a) }
