package fb

import "github.com/sammyne/etacore/digit"

// RdcBasic reduces dv modulo f (dv mod f) bit by bit: for every set bit i
// at or above position m, the identity x^m ≡ x^a+x^b+x^c+1 (mod f) lets us
// replace it by XORing that shifted pattern into dv and clearing bit i.
// Spec.md §4.1's baseline reduction variant every other variant must
// agree with. Post-condition: bits >= m of the output are zero.
func RdcBasic(ctx *Ctx, out Elt, dv DV) Elt {
	m := ctx.m
	a, b, c := ctx.a, ctx.b, ctx.c
	reduceBitRange(dv, len(dv)*digit.Width-1, m, a, b, c)
	copyLow(out, dv, m)
	return out
}

// RdcQuick reduces dv modulo the sparse polynomial by folding whole high
// words into the low half first (the word-aligned fast path that exploits
// f's sparsity), then finishing the remaining partial top word with the
// same bit-level fold RdcBasic uses. Spec.md §4.1's "quick" variant,
// required whenever the polynomial is sparse (always, in this build).
func RdcQuick(ctx *Ctx, out Elt, dv DV) Elt {
	m := ctx.m
	a, b, c := ctx.a, ctx.b, ctx.c
	digits := ctx.digits

	for i := len(dv) - 1; i >= digits; i-- {
		if dv[i] == 0 {
			continue
		}
		shift := i*digit.Width - m
		foldWordIntoLow(dv, dv[i], shift, a, b, c)
		dv[i] = 0
	}
	reduceBitRange(dv, digits*digit.Width-1, m, a, b, c)
	copyLow(out, dv, m)
	return out
}

// reduceBitRange reduces bits [m, top] of dv in place, bit by bit, using
// the (0,a,b,c) replacement pattern for x^m.
func reduceBitRange(dv DV, top, m, a, b, c int) {
	for i := top; i >= m; i-- {
		w, off := i/digit.Width, uint(i%digit.Width)
		if w >= len(dv) || !digit.TestBit(dv[w], off) {
			continue
		}
		dv[w] &^= digit.Word(1) << off
		shift := i - m
		xorBitDV(dv, shift)
		xorBitDV(dv, shift+a)
		if b != 0 {
			xorBitDV(dv, shift+b)
			xorBitDV(dv, shift+c)
		}
	}
}

// foldWordIntoLow XORs word (a 64-bit chunk representing degrees
// [0,63] before shifting) into dv at positions shift, shift+a, shift+b,
// shift+c, matching the x^m ≡ x^a+x^b+x^c+1 replacement for an entire
// word at once.
func foldWordIntoLow(dv DV, word digit.Word, shift, a, b, c int) {
	xorWordDV(dv, word, shift)
	xorWordDV(dv, word, shift+a)
	if b != 0 {
		xorWordDV(dv, word, shift+b)
		xorWordDV(dv, word, shift+c)
	}
}

func xorBitDV(dv DV, pos int) {
	if pos < 0 {
		return
	}
	w, off := pos/digit.Width, uint(pos%digit.Width)
	if w < len(dv) {
		dv[w] ^= digit.Word(1) << off
	}
}

// xorWordDV XORs word, shifted left by pos bits, into dv.
func xorWordDV(dv DV, word digit.Word, pos int) {
	if pos < 0 {
		return
	}
	wordShift := pos / digit.Width
	bitShift := uint(pos % digit.Width)
	if wordShift < len(dv) {
		lo, hi := digit.Lsh1(word, bitShift)
		dv[wordShift] ^= lo
		if bitShift != 0 && wordShift+1 < len(dv) {
			dv[wordShift+1] ^= hi
		}
	}
}

// copyLow copies the low m bits of dv into out (length ctx.Digits()),
// masking the top digit.
func copyLow(out Elt, dv DV, m int) {
	digits := len(out)
	for i := 0; i < digits; i++ {
		out[i] = dv[i]
	}
	topWord := m / digit.Width
	topBit := uint(m % digit.Width)
	if topWord < digits && topBit != 0 {
		out[topWord] &= (digit.Word(1) << topBit) - 1
	}
	for i := topWord + 1; i < digits; i++ {
		out[i] = 0
	}
}
