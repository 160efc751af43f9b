package fb

import "github.com/sammyne/etacore/digit"

// The helpers below work on raw []digit.Word slices, used internally by
// the inversion variants to hold polynomials of degree up to m (one bit
// beyond a normal Elt, which only ever holds degree < m).

func polyDegree(words []digit.Word) int {
	for i := len(words) - 1; i >= 0; i-- {
		if words[i] != 0 {
			return i*digit.Width + digit.Bits(words[i]) - 1
		}
	}
	return 0
}

func polyTestBit(words []digit.Word, pos int) bool {
	w, off := pos/digit.Width, uint(pos%digit.Width)
	if pos < 0 || w >= len(words) {
		return false
	}
	return digit.TestBit(words[w], off)
}

func polySetBit(words []digit.Word, pos int, v bool) {
	w, off := pos/digit.Width, uint(pos%digit.Width)
	if w >= len(words) {
		return
	}
	if v {
		words[w] |= digit.Word(1) << off
	} else {
		words[w] &^= digit.Word(1) << off
	}
}

func polyXor(dst, src []digit.Word) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// polyXorShift XORs src shifted left by shift bits into dst, both the
// same length.
func polyXorShift(dst, src []digit.Word, shift int) {
	n := len(dst)
	wordShift := shift / digit.Width
	bitShift := uint(shift % digit.Width)
	for i := n - 1; i >= wordShift; i-- {
		s := src[i-wordShift]
		lo, hi := digit.Lsh1(s, bitShift)
		dst[i] ^= lo
		if bitShift != 0 && i+1 < n {
			dst[i+1] ^= hi
		}
	}
}

// polyRsh1 shifts words right by one bit, in place.
func polyRsh1(words []digit.Word) {
	var carry digit.Word
	for i := len(words) - 1; i >= 0; i-- {
		shifted, c := digit.Rsh1(words[i], 1)
		words[i] = shifted | carry
		carry = c
	}
}

func polyModulus(ctx *Ctx, n int) []digit.Word {
	v := make([]digit.Word, n)
	polySetBit(v, ctx.m, true)
	polySetBit(v, ctx.a, true)
	if ctx.b != 0 {
		polySetBit(v, ctx.b, true)
		polySetBit(v, ctx.c, true)
	}
	polySetBit(v, 0, true)
	return v
}
