package fb

import "github.com/sammyne/etacore/digit"

// Sqrt computes out = sqrt(a) using the identity sqrt(a) = E(x) + T*O(x),
// where a = E(x^2) + x*O(x^2) is a's de-interleaving into even- and
// odd-position coefficients and T = sqrt(x) = x^(2^(m-1)) mod f is the
// context's precomputed constant. Spec.md §4.1's square-root operation, using the 16-entry even/odd
// gather table built at context construction time.
func Sqrt(ctx *Ctx, out, a Elt) Elt {
	half := New(ctx)
	evenPart, oddPart := deinterleave(ctx, a)
	dv := NewDV(ctx)
	MulComb(dv, ctx.sqrtT, oddPart)
	RdcQuick(ctx, half, dv)
	out.Add(evenPart, half)
	return out
}

// deinterleave splits a into its even-position bits (packed low to high
// as E) and odd-position bits (packed low to high as O), four source
// bits at a time via ctx.sqrtSplit.
func deinterleave(ctx *Ctx, a Elt) (even, odd Elt) {
	even = New(ctx)
	odd = New(ctx)
	nibbles := (ctx.m + 3) / 4
	for k := 0; k < nibbles; k++ {
		pos := k * 4
		n := nibbleAt(a, pos, 4)
		packed := ctx.sqrtSplit[n]
		evenBits := packed & 0x3
		oddBits := (packed >> 4) & 0x3
		setTwoBits(even, 2*k, evenBits)
		setTwoBits(odd, 2*k, oddBits)
	}
	return even, odd
}

func setTwoBits(e Elt, pos int, bits byte) {
	for i := 0; i < 2; i++ {
		if bits&(1<<uint(i)) == 0 {
			continue
		}
		bitpos := pos + i
		w, off := bitpos/digit.Width, uint(bitpos%digit.Width)
		if w < len(e) {
			e[w] |= digit.Word(1) << off
		}
	}
}
