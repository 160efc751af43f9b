package eb_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/sammyne/etacore/eb"
	"github.com/sammyne/etacore/fb"
	"github.com/sammyne/etacore/params"
	"github.com/sammyne/etacore/prng"
	"github.com/sammyne/etacore/scalar"
)

// allPresets exercises every curve family the build ships: one NIST
// B-curve (Ordinary), one NIST K-curve (Koblitz), and one Eta_T
// supersingular curve.
func allPresets() []params.ID {
	return []params.ID{params.NISTB163, params.NISTK163, params.ETAS271}
}

func TestGenerator_IsOnCurveForEveryPreset(t *testing.T) {
	for _, id := range allPresets() {
		pctx, err := params.Set(id)
		require.NoError(t, err, id.String())
		g := pctx.Curve.NewGenerator()
		require.True(t, pctx.Curve.OnCurve(g.X, g.Y), "%s generator must satisfy its own curve equation", id)
	}
}

func TestNeg_IsInvolution(t *testing.T) {
	for _, id := range allPresets() {
		pctx, err := params.Set(id)
		require.NoError(t, err)
		ctx := pctx.Curve
		g := ctx.NewGenerator()

		neg := eb.NewPoint(ctx.Field)
		eb.Neg(ctx, neg, g)
		back := eb.NewPoint(ctx.Field)
		eb.Neg(ctx, back, neg)

		require.True(t, back.X.Equal(g.X))
		require.True(t, back.Y.Equal(g.Y))
	}
}

func TestDbl_StaysOnCurve(t *testing.T) {
	for _, id := range allPresets() {
		pctx, err := params.Set(id)
		require.NoError(t, err)
		ctx := pctx.Curve
		g := ctx.NewGenerator()

		dbl := eb.NewPoint(ctx.Field)
		eb.Dbl(ctx, dbl, g)

		affine := eb.NewPoint(ctx.Field)
		_, err = eb.Norm(ctx, affine, dbl)
		require.NoError(t, err)
		require.True(t, ctx.OnCurve(affine.X, affine.Y), "%s: 2G must stay on curve", id)
	}
}

func TestAdd_StaysOnCurveAndCommutes(t *testing.T) {
	for _, id := range allPresets() {
		pctx, err := params.Set(id)
		require.NoError(t, err)
		ctx := pctx.Curve
		g := ctx.NewGenerator()

		dbl := eb.NewPoint(ctx.Field)
		eb.Dbl(ctx, dbl, g)
		dblAffine := eb.NewPoint(ctx.Field)
		_, err = eb.Norm(ctx, dblAffine, dbl)
		require.NoError(t, err)

		sum1, err := eb.Add(ctx, eb.NewPoint(ctx.Field), g, dblAffine)
		require.NoError(t, err)
		sum2, err := eb.Add(ctx, eb.NewPoint(ctx.Field), dblAffine, g)
		require.NoError(t, err)

		affine1 := eb.NewPoint(ctx.Field)
		_, err = eb.Norm(ctx, affine1, sum1)
		require.NoError(t, err)
		affine2 := eb.NewPoint(ctx.Field)
		_, err = eb.Norm(ctx, affine2, sum2)
		require.NoError(t, err)

		if !affine1.X.Equal(affine2.X) || !affine1.Y.Equal(affine2.Y) {
			t.Fatalf("%s: P+Q must equal Q+P\nP+Q = %sQ+P = %s", id, spew.Sdump(affine1), spew.Sdump(affine2))
		}
		require.True(t, ctx.OnCurve(affine1.X, affine1.Y))
	}
}

func TestAdd_WithInfinityIsIdentity(t *testing.T) {
	pctx, err := params.Set(params.NISTB163)
	require.NoError(t, err)
	ctx := pctx.Curve
	g := ctx.NewGenerator()
	inf := eb.Infinity(ctx.Field)

	sum, err := eb.Add(ctx, eb.NewPoint(ctx.Field), g, inf)
	require.NoError(t, err)
	require.True(t, sum.X.Equal(g.X))
	require.True(t, sum.Y.Equal(g.Y))
}

func TestAdd_PMinusPIsInfinity(t *testing.T) {
	for _, id := range allPresets() {
		pctx, err := params.Set(id)
		require.NoError(t, err)
		ctx := pctx.Curve
		g := ctx.NewGenerator()

		negG := eb.NewPoint(ctx.Field)
		eb.Neg(ctx, negG, g)

		sum, err := eb.Add(ctx, eb.NewPoint(ctx.Field), g, negG)
		require.NoError(t, err)
		require.True(t, sum.IsInfinity(), "%s: P+(-P) must be infinity", id)
	}
}

func TestScalarMulVariants_AgreeOnOrdinaryCurve(t *testing.T) {
	pctx, err := params.Set(params.NISTB163)
	require.NoError(t, err)
	ctx := pctx.Curve
	g := ctx.NewGenerator()

	for _, kv := range []uint64{0, 1, 2, 3, 7, 13} {
		k := scalar.FromUint64(kv)

		basic, err := eb.MulBasic(ctx, eb.NewPoint(ctx.Field), k, g)
		require.NoError(t, err)

		constT, err := eb.MulConst(ctx, eb.NewPoint(ctx.Field), k, g)
		require.NoError(t, err)
		require.True(t, basic.X.Equal(constT.X), "k=%d: MulConst disagrees with MulBasic (X)", kv)
		require.True(t, basic.Y.Equal(constT.Y), "k=%d: MulConst disagrees with MulBasic (Y)", kv)

		slide, err := eb.MulSlide(ctx, eb.NewPoint(ctx.Field), k, g, 4)
		require.NoError(t, err)
		require.True(t, basic.X.Equal(slide.X), "k=%d: MulSlide disagrees with MulBasic (X)", kv)
		require.True(t, basic.Y.Equal(slide.Y), "k=%d: MulSlide disagrees with MulBasic (Y)", kv)
	}
}

// TestScalarMulVariants_AgreeOnKoblitzCurve is end-to-end scenario 2: on
// NIST-K163, sample a scalar k from a deterministically seeded stream and
// assert basic, const, slide, and wtnaf all compute the same k*P.
func TestScalarMulVariants_AgreeOnKoblitzCurve(t *testing.T) {
	pctx, err := params.Set(params.NISTK163)
	require.NoError(t, err)
	ctx := pctx.Curve
	g := ctx.NewGenerator()

	stream := prng.NewOS()
	require.NoError(t, stream.Seed([]byte("0123456789ABCDEF")))
	k, err := scalar.Uniform(stream, 160)
	require.NoError(t, err)

	basic, err := eb.MulBasic(ctx, eb.NewPoint(ctx.Field), k, g)
	require.NoError(t, err)

	constT, err := eb.MulConst(ctx, eb.NewPoint(ctx.Field), k, g)
	require.NoError(t, err)
	require.True(t, basic.X.Equal(constT.X), "MulConst disagrees with MulBasic (X)")
	require.True(t, basic.Y.Equal(constT.Y), "MulConst disagrees with MulBasic (Y)")

	slide, err := eb.MulSlide(ctx, eb.NewPoint(ctx.Field), k, g, 4)
	require.NoError(t, err)
	require.True(t, basic.X.Equal(slide.X), "MulSlide disagrees with MulBasic (X)")
	require.True(t, basic.Y.Equal(slide.Y), "MulSlide disagrees with MulBasic (Y)")

	wtnaf, err := eb.MulWTNAF(ctx, eb.NewPoint(ctx.Field), k, g, 4)
	require.NoError(t, err)
	require.True(t, basic.X.Equal(wtnaf.X), "MulWTNAF disagrees with MulBasic (X)")
	require.True(t, basic.Y.Equal(wtnaf.Y), "MulWTNAF disagrees with MulBasic (Y)")
}

// TestScalarMulVariants_AgreeOnLargeKoblitzScalar exercises scalars whose
// bit length exceeds 62 bits, the width tauNAF's full-precision
// reconstruction (rather than a truncated machine word) must handle
// correctly for any k in [0,n).
func TestScalarMulVariants_AgreeOnLargeKoblitzScalar(t *testing.T) {
	pctx, err := params.Set(params.NISTK163)
	require.NoError(t, err)
	ctx := pctx.Curve
	g := ctx.NewGenerator()

	stream := prng.NewOS()
	require.NoError(t, stream.Seed([]byte("large-scalar-regression-seed")))

	for i := 0; i < 4; i++ {
		k, err := scalar.Uniform(stream, 163)
		require.NoError(t, err)

		basic, err := eb.MulBasic(ctx, eb.NewPoint(ctx.Field), k, g)
		require.NoError(t, err)

		slide, err := eb.MulSlide(ctx, eb.NewPoint(ctx.Field), k, g, 4)
		require.NoError(t, err)
		require.True(t, basic.X.Equal(slide.X), "iteration %d: MulSlide disagrees with MulBasic (X)", i)
		require.True(t, basic.Y.Equal(slide.Y), "iteration %d: MulSlide disagrees with MulBasic (Y)", i)

		wtnaf, err := eb.MulWTNAF(ctx, eb.NewPoint(ctx.Field), k, g, 4)
		require.NoError(t, err)
		require.True(t, basic.X.Equal(wtnaf.X), "iteration %d: MulWTNAF disagrees with MulBasic (X)", i)
		require.True(t, basic.Y.Equal(wtnaf.Y), "iteration %d: MulWTNAF disagrees with MulBasic (Y)", i)
	}
}

func TestMulBasic_KZeroIsInfinity(t *testing.T) {
	pctx, err := params.Set(params.NISTB163)
	require.NoError(t, err)
	ctx := pctx.Curve
	g := ctx.NewGenerator()

	out, err := eb.MulBasic(ctx, eb.NewPoint(ctx.Field), scalar.FromUint64(0), g)
	require.NoError(t, err)
	require.True(t, out.IsInfinity())
}

func TestMulBasic_KOneIsIdentity(t *testing.T) {
	pctx, err := params.Set(params.NISTB163)
	require.NoError(t, err)
	ctx := pctx.Curve
	g := ctx.NewGenerator()

	out, err := eb.MulBasic(ctx, eb.NewPoint(ctx.Field), scalar.FromUint64(1), g)
	require.NoError(t, err)
	require.True(t, out.X.Equal(g.X))
	require.True(t, out.Y.Equal(g.Y))
}

func TestMulFixed_MatchesMulBasic(t *testing.T) {
	pctx, err := params.Set(params.NISTB163)
	require.NoError(t, err)
	ctx := pctx.Curve
	g := ctx.NewGenerator()
	table := eb.BuildFixedTable(ctx, g, 4)

	for _, kv := range []uint64{0, 1, 5, 11} {
		k := scalar.FromUint64(kv)
		basic, err := eb.MulBasic(ctx, eb.NewPoint(ctx.Field), k, g)
		require.NoError(t, err)

		fixed, err := eb.MulFixed(table, eb.NewPoint(ctx.Field), k)
		require.NoError(t, err)

		require.True(t, basic.X.Equal(fixed.X), "k=%d", kv)
		require.True(t, basic.Y.Equal(fixed.Y), "k=%d", kv)
	}
}

func TestMulSim_VariantsAgree(t *testing.T) {
	pctx, err := params.Set(params.NISTB163)
	require.NoError(t, err)
	ctx := pctx.Curve
	g := ctx.NewGenerator()
	twoG, err := eb.MulBasic(ctx, eb.NewPoint(ctx.Field), scalar.FromUint64(2), g)
	require.NoError(t, err)

	k1 := scalar.FromUint64(6)
	k2 := scalar.FromUint64(9)

	basic, err := eb.MulSimBasic(ctx, eb.NewPoint(ctx.Field), k1, g, k2, twoG)
	require.NoError(t, err)

	shamir, err := eb.MulSimShamir(ctx, eb.NewPoint(ctx.Field), k1, g, k2, twoG)
	require.NoError(t, err)
	require.True(t, basic.X.Equal(shamir.X), "Shamir disagrees with basic")
	require.True(t, basic.Y.Equal(shamir.Y))

	interleaved, err := eb.MulSimInterleavedNAF(ctx, eb.NewPoint(ctx.Field), k1, g, k2, twoG, 4)
	require.NoError(t, err)
	require.True(t, basic.X.Equal(interleaved.X), "interleaved NAF disagrees with basic")
	require.True(t, basic.Y.Equal(interleaved.Y))

	jsf, err := eb.MulSimJSF(ctx, eb.NewPoint(ctx.Field), k1, g, k2, twoG)
	require.NoError(t, err)
	require.True(t, basic.X.Equal(jsf.X), "JSF disagrees with basic")
	require.True(t, basic.Y.Equal(jsf.Y))
}

func TestMap_ProducesPointOnCurve(t *testing.T) {
	for _, id := range allPresets() {
		pctx, err := params.Set(id)
		require.NoError(t, err)
		ctx := pctx.Curve

		p, err := eb.Map(ctx, []byte("hash-to-point test vector"))
		require.NoError(t, err)
		require.True(t, ctx.OnCurve(p.X, p.Y), "%s: mapped point must be on curve", id)
	}
}

func TestSerialize_RoundTrips(t *testing.T) {
	pctx, err := params.Set(params.NISTB163)
	require.NoError(t, err)
	ctx := pctx.Curve
	g := ctx.NewGenerator()

	buf := make([]byte, 2*ctx.Field.Bytes())
	require.NoError(t, eb.ToBytes(ctx, buf, g))

	back, err := eb.FromBytes(ctx, buf)
	require.NoError(t, err)
	require.True(t, back.X.Equal(g.X))
	require.True(t, back.Y.Equal(g.Y))
}

func TestSerialize_RejectsInfinity(t *testing.T) {
	pctx, err := params.Set(params.NISTB163)
	require.NoError(t, err)
	ctx := pctx.Curve
	inf := eb.Infinity(ctx.Field)

	buf := make([]byte, 2*ctx.Field.Bytes())
	require.Error(t, eb.ToBytes(ctx, buf, inf))
}

func TestFromBytes_RejectsOffCurvePoint(t *testing.T) {
	pctx, err := params.Set(params.NISTB163)
	require.NoError(t, err)
	ctx := pctx.Curve

	size := ctx.Field.Bytes()
	buf := make([]byte, 2*size)
	buf[size-1] = 0x01 // x=1, y=0: not guaranteed on curve
	_, err = eb.FromBytes(ctx, buf)
	require.Error(t, err)
}

func TestFrb_SquaresEachCoordinate(t *testing.T) {
	pctx, err := params.Set(params.NISTK163)
	require.NoError(t, err)
	ctx := pctx.Curve
	g := ctx.NewGenerator()

	frb := eb.NewPoint(ctx.Field)
	eb.Frb(ctx, frb, g)

	wantX := fb.New(ctx.Field)
	ctx.Field.Sqr(wantX, g.X)
	wantY := fb.New(ctx.Field)
	ctx.Field.Sqr(wantY, g.Y)

	require.True(t, frb.X.Equal(wantX))
	require.True(t, frb.Y.Equal(wantY))
}
