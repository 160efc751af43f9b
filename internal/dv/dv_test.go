package dv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAcquire_ReturnsZeroedBufferOfRequestedLength(t *testing.T) {
	p := NewPool(8)
	buf, release := p.Acquire()
	defer release()

	require.Len(t, buf, 8)
	for _, w := range buf {
		require.Equal(t, uint64(0), w)
	}
}

func TestAcquire_ReusesReleasedBuffers(t *testing.T) {
	p := NewPool(4)

	buf1, release1 := p.Acquire()
	buf1[0] = 0xdeadbeef
	release1()

	buf2, release2 := p.Acquire()
	defer release2()

	require.Len(t, buf2, 4)
	require.Equal(t, uint64(0), buf2[0], "a re-acquired buffer must be zeroed")
}

func TestAcquire_IndependentBuffersDoNotAlias(t *testing.T) {
	p := NewPool(2)

	bufA, releaseA := p.Acquire()
	bufB, releaseB := p.Acquire()
	defer releaseA()
	defer releaseB()

	bufA[0] = 1
	bufB[0] = 2
	require.Equal(t, uint64(1), bufA[0])
	require.Equal(t, uint64(2), bufB[0])
}
