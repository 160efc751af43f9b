package fb

import "github.com/sammyne/etacore/digit"

// MulBasic computes dv = a*b (unreduced) by shift-and-add, one bit of a at
// a time: for every set bit i of a, XOR (b << i) into the accumulator.
// This is the "basic" variant spec.md §4.1 requires as a baseline that
// every other multiplication variant must agree with.
func MulBasic(dv DV, a, b Elt) DV {
	dv.zero()
	shifted := make(DV, len(dv))
	nbits := len(a) * digit.Width
	for i := 0; i < nbits; i++ {
		w, off := i/digit.Width, uint(i%digit.Width)
		if !digit.TestBit(a[w], off) {
			continue
		}
		lshWideInto(shifted, b, i)
		dv.xor(shifted)
	}
	return dv
}

// MulComb computes dv = a*b using a comb over 4-bit windows of a, scanned
// from the most significant window down: precompute the 16 small multiples {0,1,...,15}*b (itself built by
// repeated doubling/XOR), then for each nibble of a, XOR the matching
// precomputed multiple shifted into place. Spec.md §4.1's "comb" variant.
func MulComb(dv DV, a, b Elt) DV {
	const w = 4
	dv.zero()

	// table[i] = i * b (as an unreduced wide polynomial), for i in 0..15.
	var table [16]DV
	table[0] = make(DV, len(dv))
	table[1] = make(DV, len(dv))
	copy(table[1], widenOf(b, len(dv)))
	for i := 2; i < 16; i++ {
		table[i] = make(DV, len(dv))
		if i%2 == 0 {
			lshWideDV(table[i], table[i/2], 1)
		} else {
			table[i].xorInto(table[i-1], table[1])
		}
	}

	nbits := len(a) * digit.Width
	nwindows := (nbits + w - 1) / w
	scratch := make(DV, len(dv))
	for win := nwindows - 1; win >= 0; win-- {
		pos := win * w
		idx := nibbleAt(a, pos, w)
		if idx != 0 {
			copy(scratch, table[idx])
			shiftDVInPlace(scratch, pos)
			dv.xor(scratch)
			clearDV(scratch)
		}
	}
	return dv
}

// MulKaratsuba computes dv = a*b via a one-level Karatsuba split at the
// half-digit boundary, falling back to MulComb at the recursion base.
// In characteristic 2, subtraction is XOR, so the classic Karatsuba
// identity ah*bh + al*bl + (ah+al)(bh+bl) - ah*bh - al*bl for the middle
// term becomes a pure XOR combination of three comb products.
func MulKaratsuba(dv DV, a, b Elt) DV {
	n := len(a)
	if n < 2 {
		return MulComb(dv, a, b)
	}
	half := n / 2

	aLo, aHi := splitElt(a, half)
	bLo, bHi := splitElt(b, half)

	loDV := make(DV, 2*half+2)
	MulComb(loDV, aLo, bLo)

	hiLen := n - half
	hiDV := make(DV, 2*hiLen+2)
	MulComb(hiDV, aHi, bHi)

	sumLen := hiLen
	aSum := make(Elt, sumLen)
	bSum := make(Elt, sumLen)
	for i := 0; i < sumLen; i++ {
		var av, bv digit.Word
		if i < len(aLo) {
			av = aLo[i]
		}
		if i < len(aHi) {
			av ^= aHi[i]
		}
		if i < len(bLo) {
			bv = bLo[i]
		}
		if i < len(bHi) {
			bv ^= bHi[i]
		}
		aSum[i] = av
		bSum[i] = bv
	}
	midDV := make(DV, 2*sumLen+2)
	MulComb(midDV, aSum, bSum)

	dv.zero()
	dv.xorAt(loDV, 0)
	dv.xorAt(hiDV, 2*half)
	dv.xorAt(loDV, half)
	dv.xorAt(hiDV, half)
	dv.xorAt(midDV, half)
	return dv
}

// MulInteg computes the reduced product a*b directly, combining
// multiplication and reduction into one call instead of exposing the
// intermediate dv, per spec.md §4.1's "integrated" variant.
func MulInteg(ctx *Ctx, out, a, b Elt) Elt {
	dv := NewDV(ctx)
	MulComb(dv, a, b)
	return RdcQuick(ctx, out, dv)
}

// --- dv helpers ---

func (dv DV) zero() {
	for i := range dv {
		dv[i] = 0
	}
}

func (dv DV) xor(o DV) {
	for i := range dv {
		dv[i] ^= o[i]
	}
}

func (dv DV) xorInto(a, b DV) {
	for i := range dv {
		dv[i] = a[i] ^ b[i]
	}
}

// xorAt XORs src (a half-length product) into dv starting at digit offset
// wordOff.
func (dv DV) xorAt(src DV, wordOff int) {
	for i := 0; i < len(src) && wordOff+i < len(dv); i++ {
		dv[wordOff+i] ^= src[i]
	}
}

func clearDV(dv DV) {
	for i := range dv {
		dv[i] = 0
	}
}

func widenOf(a Elt, n int) DV {
	out := make(DV, n)
	copy(out, a)
	return out
}

// lshWideInto sets dst = b shifted left by k bits, as a full dv-length
// value.
func lshWideInto(dst DV, b Elt, k int) {
	clearDV(dst)
	copy(dst, widenOf(b, len(dst)))
	shiftDVInPlace(dst, k)
}

func lshWideDV(dst, src DV, k int) {
	copy(dst, src)
	shiftDVInPlace(dst, k)
}

// shiftDVInPlace shifts dv left by k bits in place.
func shiftDVInPlace(dv DV, k int) {
	n := len(dv)
	wordShift := k / digit.Width
	bitShift := uint(k % digit.Width)
	if wordShift >= n {
		clearDV(dv)
		return
	}
	for i := n - 1; i >= 0; i-- {
		src := i - wordShift
		if src < 0 {
			dv[i] = 0
			continue
		}
		dv[i] = dv[src]
	}
	for i := 0; i < wordShift && i < n; i++ {
		dv[i] = 0
	}
	if bitShift != 0 {
		var carry digit.Word
		for i := 0; i < n; i++ {
			shifted, c := digit.Lsh1(dv[i], bitShift)
			dv[i] = shifted | carry
			carry = c
		}
	}
}

// nibbleAt extracts a w-bit window of a starting at bit position pos.
func nibbleAt(a Elt, pos, w int) int {
	var v int
	for i := 0; i < w; i++ {
		bitpos := pos + i
		wd, off := bitpos/digit.Width, uint(bitpos%digit.Width)
		if wd >= len(a) {
			continue
		}
		if digit.TestBit(a[wd], off) {
			v |= 1 << uint(i)
		}
	}
	return v
}

// splitElt splits a at digit index half into (low, high) slices sharing
// no backing array mutation concerns (read-only views).
func splitElt(a Elt, half int) (lo, hi Elt) {
	return a[:half], a[half:]
}
