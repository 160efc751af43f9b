// Package dv implements scoped scratch-buffer acquisition for the
// double-precision vectors fb and eb operations need internally. Spec.md
// §3 describes these as stack-allocated inside a TRY/FINALLY block in the
// originating toolkit; Go has no stack-allocation primitive for
// variable-length scratch, so this package generalizes the teacher's
// pattern of small helper constructors paired with explicit cleanup
// (sammyne-secp256k1/koblitz_internal.go's fieldVal temporaries) onto a
// sync.Pool-backed acquire/release pair, which amortizes the allocation
// cost across repeated point/field operations the way a stack frame
// would.
package dv

import "sync"

// Pool hands out []uint64 scratch buffers of a fixed length, reused
// across Acquire/Release cycles.
type Pool struct {
	length int
	inner  sync.Pool
}

// NewPool builds a Pool whose buffers are always exactly length words
// long.
func NewPool(length int) *Pool {
	p := &Pool{length: length}
	p.inner.New = func() interface{} {
		buf := make([]uint64, length)
		return &buf
	}
	return p
}

// Acquire returns a zeroed scratch buffer and a release function. Callers
// must invoke release when done; the standard pattern is
//
//	buf, release := pool.Acquire()
//	defer release()
func (p *Pool) Acquire() ([]uint64, func()) {
	ptr := p.inner.Get().(*[]uint64)
	buf := *ptr
	for i := range buf {
		buf[i] = 0
	}
	release := func() { p.inner.Put(ptr) }
	return buf, release
}
