package fb4

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sammyne/etacore/fb"
)

func testCtx(t *testing.T) *Ctx {
	base, err := fb.NewCtx(271, 207, 175, 111)
	require.NoError(t, err)
	deltaS := fb.New(base)
	deltaS.SetInt(1)
	deltaT := fb.New(base)
	deltaT.SetInt(1)
	return NewCtx(base, deltaS, deltaT)
}

func randBaseElt(base *fb.Ctx, seed byte) fb.Elt {
	e := fb.New(base)
	for i := range e {
		e[i] = uint64(seed) * 0x0101010101010101 * uint64(i+3)
	}
	e[len(e)-1] &= (1 << uint(base.M()%64)) - 1
	return e
}

func randElt(c *Ctx, seed byte) Elt {
	return Elt{
		randBaseElt(c.Base, seed),
		randBaseElt(c.Base, seed+1),
		randBaseElt(c.Base, seed+2),
		randBaseElt(c.Base, seed+3),
	}
}

func TestOne_IsMultiplicativeIdentity(t *testing.T) {
	c := testCtx(t)
	a := randElt(c, 0x10)
	one := c.New()
	c.SetOne(one)
	require.True(t, c.IsOne(one))

	out := c.New()
	c.Mul(out, a, one)
	require.True(t, c.Equal(out, a))
}

func TestAdd_IsInvolution(t *testing.T) {
	c := testCtx(t)
	a := randElt(c, 0x21)
	b := randElt(c, 0x32)

	sum := c.New()
	c.Add(sum, a, b)
	back := c.New()
	c.Add(back, sum, b)
	require.True(t, c.Equal(back, a))
}

func TestSquare_MatchesSelfMul(t *testing.T) {
	c := testCtx(t)
	a := randElt(c, 0x44)

	viaSquare := c.New()
	c.Square(viaSquare, a)

	viaMul := c.New()
	c.Mul(viaMul, a, a)

	require.True(t, c.Equal(viaSquare, viaMul), "Square must agree with Mul(a,a)")
}

func TestConjugate_IsInvolution(t *testing.T) {
	c := testCtx(t)
	a := randElt(c, 0x55)

	conj := c.New()
	c.Conjugate(conj, a)
	back := c.New()
	c.Conjugate(back, conj)

	require.True(t, c.Equal(back, a), "conjugate twice must return the original element")
}

func TestConjugate_FixesNormComponent(t *testing.T) {
	// conj(a) must leave the B-half (c2,c3) untouched, only acting on the
	// A-half (A -> A+B), per the t -> t+1 automorphism.
	c := testCtx(t)
	a := randElt(c, 0x66)
	conj := c.New()
	c.Conjugate(conj, a)

	require.True(t, a[2].Equal(conj[2]))
	require.True(t, a[3].Equal(conj[3]))
}

func TestInv_RoundTrips(t *testing.T) {
	c := testCtx(t)
	a := randElt(c, 0x77)

	inv, err := c.Inv(c.New(), a)
	require.NoError(t, err)

	product := c.New()
	c.Mul(product, a, inv)
	require.True(t, c.IsOne(product), "a * a^-1 must be the tower's one")
}

func TestExp_MatchesRepeatedMul(t *testing.T) {
	c := testCtx(t)
	a := randElt(c, 0x19)

	// a^5 by repeated multiplication.
	a2 := c.New()
	c.Mul(a2, a, a)
	a4 := c.New()
	c.Mul(a4, a2, a2)
	a5 := c.New()
	c.Mul(a5, a4, a)

	viaExp := c.New()
	c.Exp(viaExp, a, []byte{5})

	require.True(t, c.Equal(a5, viaExp), "Exp(a,5) must equal a*a*a*a*a")
}

func TestExp_ZeroExponentIsOne(t *testing.T) {
	c := testCtx(t)
	a := randElt(c, 0x28)

	out := c.New()
	c.Exp(out, a, []byte{0})
	require.True(t, c.IsOne(out))
}

func TestIsZero(t *testing.T) {
	c := testCtx(t)
	zero := c.New()
	require.True(t, c.IsZero(zero))

	a := randElt(c, 0x09)
	require.False(t, c.IsZero(a))
}
