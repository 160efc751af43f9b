package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func allIDs() []ID {
	return []ID{
		NISTB163, NISTB233, NISTB283, NISTB409, NISTB571,
		NISTK163, NISTK233, NISTK283, NISTK409, NISTK571,
		ETAS271, ETAS1223,
	}
}

func TestSet_BuildsEveryPreset(t *testing.T) {
	for _, id := range allIDs() {
		ctx, err := Set(id)
		require.NoError(t, err, id.String())
		require.NotNil(t, ctx.Field)
		require.NotNil(t, ctx.Curve)
		require.True(t, ctx.Curve.OnCurve(ctx.Curve.Gx, ctx.Curve.Gy), "%s: generator must be on curve", id)
	}
}

func TestSet_TowerOnlyForSupersingular(t *testing.T) {
	ordinary, err := Set(NISTB163)
	require.NoError(t, err)
	require.Nil(t, ordinary.Tower)

	koblitz, err := Set(NISTK233)
	require.NoError(t, err)
	require.Nil(t, koblitz.Tower)

	pairing, err := Set(ETAS271)
	require.NoError(t, err)
	require.NotNil(t, pairing.Tower)
}

func TestSet_RejectsUnknownID(t *testing.T) {
	_, err := Set(ID(999))
	require.Error(t, err)
}

// fieldPreset's literal (m,a,b,c) table, transcribed directly from
// spec.md §6's "Polynomial presets" sentence: NIST-163 -> (7,6,3);
// 233 -> (74,0,0); 283 -> (12,7,5); 409 -> (87,0,0); 571 -> (10,5,2);
// ETA-271 -> (207,175,111); ETA-1223 -> (255,0,0).
func TestFieldDegreesMatchPresets(t *testing.T) {
	cases := map[ID]fieldPreset{
		NISTB163: {163, 7, 6, 3}, NISTK163: {163, 7, 6, 3},
		NISTB233: {233, 74, 0, 0}, NISTK233: {233, 74, 0, 0},
		NISTB283: {283, 12, 7, 5}, NISTK283: {283, 12, 7, 5},
		NISTB409: {409, 87, 0, 0}, NISTK409: {409, 87, 0, 0},
		NISTB571: {571, 10, 5, 2}, NISTK571: {571, 10, 5, 2},
		ETAS271: {271, 207, 175, 111}, ETAS1223: {1223, 255, 0, 0},
	}
	for id, want := range cases {
		ctx, err := Set(id)
		require.NoError(t, err)
		require.Equal(t, want.m, ctx.Field.M(), id.String())

		a, b, c := ctx.Field.Poly()
		require.Equal(t, want.a, a, "%s: polynomial a term", id)
		require.Equal(t, want.b, b, "%s: polynomial b term", id)
		require.Equal(t, want.c, c, "%s: polynomial c term", id)
	}
}

func TestDefault_ReusesContextForSameID(t *testing.T) {
	Clean()
	defer Clean()

	first, err := Default(NISTB163)
	require.NoError(t, err)
	second, err := Default(NISTB163)
	require.NoError(t, err)
	require.Same(t, first, second, "Default must reuse the cached context for an unchanged ID")
}

func TestDefault_RebuildsOnDifferentID(t *testing.T) {
	Clean()
	defer Clean()

	first, err := Default(NISTB163)
	require.NoError(t, err)
	second, err := Default(NISTK163)
	require.NoError(t, err)
	require.NotSame(t, first, second)
	require.Equal(t, NISTK163, second.ID)
}

func TestClean_ResetsDefault(t *testing.T) {
	_, err := Default(NISTB163)
	require.NoError(t, err)
	Clean()

	after, err := Default(NISTB163)
	require.NoError(t, err)
	require.Equal(t, NISTB163, after.ID)
}

func TestID_String(t *testing.T) {
	require.Equal(t, "NIST-B163", NISTB163.String())
	require.Equal(t, "ETA-S1223", ETAS1223.String())
	require.Equal(t, "unknown", ID(999).String())
}
