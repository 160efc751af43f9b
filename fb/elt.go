package fb

import (
	"github.com/sammyne/etacore/digit"
	"github.com/sammyne/etacore/errs"
	"github.com/sammyne/etacore/prng"
)

// Elt is a field element: a fixed-length, least-significant-digit-first
// sequence of digit.Word, encoding a polynomial of degree < m. Bits at or
// above position m are always zero — every constructor and mutator in
// this package maintains that invariant.
type Elt []digit.Word

// DV is the double-precision scratch vector used by unreduced products
// and square roots. It carries no normalization invariant.
type DV []digit.Word

// New allocates a zeroed Elt sized for ctx.
func New(ctx *Ctx) Elt {
	return make(Elt, ctx.Digits())
}

// NewDV allocates a zeroed DV sized for ctx.
func NewDV(ctx *Ctx) DV {
	return make(DV, ctx.DVLen())
}

// SetInt sets e to the single-digit value v, zeroing the rest.
func (e Elt) SetInt(v digit.Word) Elt {
	e[0] = v
	for i := 1; i < len(e); i++ {
		e[i] = 0
	}
	return e
}

// SetZero zeroes e.
func (e Elt) SetZero() Elt {
	for i := range e {
		e[i] = 0
	}
	return e
}

// Copy copies src into e (same length required).
func (e Elt) Copy(src Elt) Elt {
	copy(e, src)
	return e
}

// Clone returns a fresh copy of e.
func (e Elt) Clone() Elt {
	out := make(Elt, len(e))
	copy(out, e)
	return out
}

// IsZero reports whether e is the zero element.
func (e Elt) IsZero() bool {
	for _, w := range e {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether e == o digit-for-digit.
func (e Elt) Equal(o Elt) bool {
	if len(e) != len(o) {
		return false
	}
	for i := range e {
		if e[i] != o[i] {
			return false
		}
	}
	return true
}

// Bits returns the position of the highest set bit of e, plus one. Bits of
// the zero element is 0.
func (e Elt) Bits() int {
	for i := len(e) - 1; i >= 0; i-- {
		if e[i] != 0 {
			return i*digit.Width + digit.Bits(e[i])
		}
	}
	return 0
}

// TestBit reports whether bit i of e is set. i must be in [0, len(e)*Width).
func (e Elt) TestBit(i int) (bool, error) {
	w, off := i/digit.Width, uint(i%digit.Width)
	if i < 0 || w >= len(e) {
		return false, errs.New(errs.InvalidParameter, "fb.Elt.TestBit", nil)
	}
	return digit.TestBit(e[w], off), nil
}

// SetBit sets or clears bit i of e.
func (e Elt) SetBit(i int, v bool) error {
	w, off := i/digit.Width, uint(i%digit.Width)
	if i < 0 || w >= len(e) {
		return errs.New(errs.InvalidParameter, "fb.Elt.SetBit", nil)
	}
	if v {
		e[w] |= 1 << off
	} else {
		e[w] &^= 1 << off
	}
	return nil
}

// Add XORs a and b into e. Addition and subtraction are the same
// operation in characteristic 2.
func (e Elt) Add(a, b Elt) Elt {
	for i := range e {
		e[i] = a[i] ^ b[i]
	}
	return e
}

// Sub is an alias for Add: a-b == a+b in GF(2^m).
func (e Elt) Sub(a, b Elt) Elt { return e.Add(a, b) }

// AddDigit XORs the single-digit scalar v into digit 0 of a, storing into
// e.
func (e Elt) AddDigit(a Elt, v digit.Word) Elt {
	copy(e, a)
	e[0] ^= v
	return e
}

// Lsh shifts a left by k bits into e (which must have the same length as
// a), dispatching whole-digit shifts via the digit-stride path.
func (e Elt) Lsh(a Elt, k int) Elt {
	n := len(a)
	wordShift := k / digit.Width
	bitShift := uint(k % digit.Width)
	tmp := make(Elt, n)
	for i := n - 1; i >= 0; i-- {
		src := i - wordShift
		if src < 0 {
			tmp[i] = 0
			continue
		}
		tmp[i] = a[src]
	}
	if bitShift != 0 {
		var carry digit.Word
		for i := 0; i < n; i++ {
			shifted, c := digit.Lsh1(tmp[i], bitShift)
			tmp[i] = shifted | carry
			carry = c
		}
	}
	copy(e, tmp)
	return e
}

// Rsh shifts a right by k bits into e.
func (e Elt) Rsh(a Elt, k int) Elt {
	n := len(a)
	wordShift := k / digit.Width
	bitShift := uint(k % digit.Width)
	tmp := make(Elt, n)
	for i := 0; i < n; i++ {
		src := i + wordShift
		if src >= n {
			tmp[i] = 0
			continue
		}
		tmp[i] = a[src]
	}
	if bitShift != 0 {
		var carry digit.Word
		for i := n - 1; i >= 0; i-- {
			shifted, c := digit.Rsh1(tmp[i], bitShift)
			tmp[i] = shifted | carry
			carry = c
		}
	}
	copy(e, tmp)
	return e
}

// Random fills e with a uniformly random element of the field: fresh
// bytes from s masked to m bits, per spec.md §4.1.
func (e Elt) Random(ctx *Ctx, s *prng.Stream) error {
	buf := make([]byte, ctx.Digits()*digit.Width/8)
	if err := s.Bytes(buf); err != nil {
		return err
	}
	for i := 0; i < len(e); i++ {
		var w digit.Word
		for b := 0; b < 8; b++ {
			w |= digit.Word(buf[i*8+b]) << uint(8*b)
		}
		e[i] = w
	}
	e.mask(ctx)
	return nil
}

// mask clears bits at or above position m, restoring the Elt invariant.
func (e Elt) mask(ctx *Ctx) {
	m := ctx.m
	topWord := m / digit.Width
	topBit := uint(m % digit.Width)
	for i := topWord + 1; i < len(e); i++ {
		e[i] = 0
	}
	if topWord < len(e) && topBit != 0 {
		e[topWord] &= (digit.Word(1) << topBit) - 1
	} else if topWord < len(e) && topBit == 0 {
		// m is an exact multiple of the digit width: topWord itself is
		// entirely above m only if m==0, which NewCtx already rejects.
	}
}
