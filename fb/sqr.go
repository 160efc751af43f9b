package fb

import "github.com/sammyne/etacore/digit"

// SqrBasic computes dv = a^2 (unreduced) by spreading each bit of a into
// its even-indexed position: squaring in GF(2)[x] never carries, so
// bit i of a becomes bit 2i of a^2. Spec.md §4.1's "basic" squaring
// variant.
func SqrBasic(dv DV, a Elt) DV {
	dv.zero()
	nbits := len(a) * digit.Width
	for i := 0; i < nbits; i++ {
		w, off := i/digit.Width, uint(off(i))
		if !digit.TestBit(a[w], off) {
			continue
		}
		pos := 2 * i
		wd, bitoff := pos/digit.Width, uint(pos%digit.Width)
		if wd < len(dv) {
			dv[wd] |= digit.Word(1) << bitoff
		}
	}
	return dv
}

func off(i int) int { return i % digit.Width }

// SqrTable computes dv = a^2 using the 256-entry byte-spread lookup table
// cached on ctx: each input byte expands to 16 output bits via
// ctx.sqrTable, two output bytes per input byte (low then high half of
// the 16-bit spread). Spec.md §4.1's "table" squaring variant.
func SqrTable(ctx *Ctx, dv DV, a Elt) DV {
	dv.zero()
	for wi, word := range a {
		for byteIdx := 0; byteIdx < digit.Width/8; byteIdx++ {
			b := byte(word >> uint(8*byteIdx))
			spread := ctx.sqrTable[b]
			bitPos := (wi*digit.Width + byteIdx*8) * 2
			setBitsDV(dv, bitPos, uint16(spread))
		}
	}
	return dv
}

// setBitsDV ORs the low 16 bits of v into dv starting at bit position
// bitPos.
func setBitsDV(dv DV, bitPos int, v uint16) {
	for i := 0; i < 16; i++ {
		if v&(1<<uint(i)) == 0 {
			continue
		}
		pos := bitPos + i
		wd, off := pos/digit.Width, uint(pos%digit.Width)
		if wd < len(dv) {
			dv[wd] |= digit.Word(1) << off
		}
	}
}
