package pb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sammyne/etacore/eb"
	"github.com/sammyne/etacore/params"
	"github.com/sammyne/etacore/pb"
	"github.com/sammyne/etacore/scalar"
)

func TestMapVariant_EtaTSAndEtaTNAgree(t *testing.T) {
	pctx, err := params.Set(params.ETAS271)
	require.NoError(t, err)
	ctx := pctx.Curve

	p := ctx.NewGenerator()
	q, err := eb.Map(ctx, []byte("pairing second argument"))
	require.NoError(t, err)

	viaS, err := pb.MapVariant(pctx, pb.EtaTS, p, q)
	require.NoError(t, err)
	viaN, err := pb.MapVariant(pctx, pb.EtaTN, p, q)
	require.NoError(t, err)

	require.True(t, pctx.Tower.Equal(viaS, viaN), "EtaTS and EtaTN must agree")
}

func TestMap_DefaultsToEtaTN(t *testing.T) {
	pctx, err := params.Set(params.ETAS271)
	require.NoError(t, err)
	ctx := pctx.Curve

	p := ctx.NewGenerator()
	q, err := eb.Map(ctx, []byte("default variant check"))
	require.NoError(t, err)

	viaMap, err := pb.Map(pctx, p, q)
	require.NoError(t, err)
	viaN, err := pb.MapEtaTN(pctx, p, q)
	require.NoError(t, err)

	require.True(t, pctx.Tower.Equal(viaMap, viaN))
}

// TestMap_IsBilinear is end-to-end scenario 4: on ETA-S271, verify
// e(3P,5Q) = e(P,Q)^15.
func TestMap_IsBilinear(t *testing.T) {
	pctx, err := params.Set(params.ETAS271)
	require.NoError(t, err)
	ctx := pctx.Curve

	p := ctx.NewGenerator()
	q, err := eb.Map(ctx, []byte("bilinearity scenario second argument"))
	require.NoError(t, err)

	threeP, err := eb.MulBasic(ctx, eb.NewPoint(ctx.Field), scalar.FromUint64(3), p)
	require.NoError(t, err)
	fiveQ, err := eb.MulBasic(ctx, eb.NewPoint(ctx.Field), scalar.FromUint64(5), q)
	require.NoError(t, err)

	lhs, err := pb.Map(pctx, threeP, fiveQ)
	require.NoError(t, err)

	base, err := pb.Map(pctx, p, q)
	require.NoError(t, err)
	rhs := pctx.Tower.New()
	pctx.Tower.Exp(rhs, base, []byte{15})

	require.True(t, pctx.Tower.Equal(lhs, rhs), "e(3P,5Q) must equal e(P,Q)^15")
}

// TestMap_IsNonDegenerate checks e(G,G) != 1, spec.md §8's second defining
// pairing property.
func TestMap_IsNonDegenerate(t *testing.T) {
	pctx, err := params.Set(params.ETAS271)
	require.NoError(t, err)
	ctx := pctx.Curve
	g := ctx.NewGenerator()

	e, err := pb.Map(pctx, g, g)
	require.NoError(t, err)

	one := pctx.Tower.New()
	pctx.Tower.SetOne(one)
	require.False(t, pctx.Tower.Equal(e, one), "e(G,G) must not be the tower's multiplicative identity")
}

func TestMapVariant_RequiresTower(t *testing.T) {
	pctx, err := params.Set(params.NISTB163)
	require.NoError(t, err)
	ctx := pctx.Curve
	p := ctx.NewGenerator()

	_, err = pb.Map(pctx, p, p)
	require.Error(t, err, "pairing over a non-supersingular preset must error: no tower context")
}
