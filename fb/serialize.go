package fb

import (
	"github.com/sammyne/etacore/digit"
	"github.com/sammyne/etacore/errs"
)

// ToBytes writes e as a big-endian byte string of length ctx.Bytes(),
// left-padded with zero bytes, into buf. Returns errs.BufferTooSmall if
// buf is shorter than ctx.Bytes().
func ToBytes(ctx *Ctx, buf []byte, e Elt) error {
	size := ctx.Bytes()
	if len(buf) < size {
		return errs.New(errs.BufferTooSmall, "fb.ToBytes", nil)
	}
	for i := 0; i < size; i++ {
		wordIdx := i / (digit.Width / 8)
		byteInWord := i % (digit.Width / 8)
		var w digit.Word
		if wordIdx < len(e) {
			w = e[wordIdx]
		}
		buf[size-1-i] = byte(w >> uint(8*byteInWord))
	}
	return nil
}

// FromBytes reads a big-endian, zero-padded byte string of length
// ctx.Bytes() into a freshly allocated Elt.
func FromBytes(ctx *Ctx, buf []byte) (Elt, error) {
	if len(buf) != ctx.Bytes() {
		return nil, errs.New(errs.InvalidParameter, "fb.FromBytes", nil)
	}
	e := New(ctx)
	size := len(buf)
	for i := 0; i < size; i++ {
		wordIdx := i / (digit.Width / 8)
		byteInWord := i % (digit.Width / 8)
		if wordIdx >= len(e) {
			continue
		}
		e[wordIdx] |= digit.Word(buf[size-1-i]) << uint(8*byteInWord)
	}
	e.mask(ctx)
	return e, nil
}
