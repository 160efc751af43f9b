// Package prng implements the RNG collaborator named in spec.md §6:
// rand_bytes/rand_seed over a process-wide pseudo-random stream. An
// unseeded Stream draws from the OS CSPRNG; a seeded Stream is a
// deterministic ChaCha20 keystream, giving the reproducible scalar
// sampling the §8 test scenarios require (e.g. "seed
// 0123456789ABCDEF").
//
// golang.org/x/crypto is a real transitive dependency across the pack
// (giuliop-AlgoPlonk, wyf-ACCEPT-eth2030); chacha20 is its standard
// building block for a seeded deterministic stream.
package prng

import (
	cryptorand "crypto/rand"
	"io"

	"golang.org/x/crypto/chacha20"

	"github.com/sammyne/etacore/errs"
)

// Stream is the RNG collaborator. It is process-wide state: every call
// mutates it, and per spec.md §5 it is not safe to drive from multiple
// threads without external serialization.
type Stream struct {
	cipher *chacha20.Cipher
	seeded bool
}

// NewOS returns a Stream backed by the OS CSPRNG (crypto/rand). Bytes
// drawn from it are not reproducible.
func NewOS() *Stream {
	return &Stream{}
}

// Seed replaces the stream's state with a deterministic ChaCha20 keystream
// derived from seed. seed is expanded/truncated to the 32-byte ChaCha20
// key size; the nonce is fixed (zero) since the seed alone is the caller's
// reproducibility handle, matching the "seed string" scenarios in §8.
func (s *Stream) Seed(seed []byte) error {
	key := make([]byte, chacha20.KeySize)
	copy(key, expand(seed, chacha20.KeySize))
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return errs.New(errs.InvalidParameter, "prng.Seed", err)
	}
	s.cipher = c
	s.seeded = true
	return nil
}

// Bytes fills buf with n=len(buf) pseudo-random bytes, where n is
// len(buf). Returns errs.ReadShort only if the underlying OS source is
// unable to produce the requested bytes (the seeded keystream path never
// fails once Seed succeeded).
func (s *Stream) Bytes(buf []byte) error {
	if s.seeded {
		for i := range buf {
			buf[i] = 0
		}
		s.cipher.XORKeyStream(buf, buf)
		return nil
	}
	if _, err := io.ReadFull(cryptorand.Reader, buf); err != nil {
		return errs.New(errs.ReadShort, "prng.Bytes", err)
	}
	return nil
}

// expand stretches or truncates seed to exactly n bytes by repetition,
// XOR-folding extra bytes back in so short seeds don't just zero-pad.
func expand(seed []byte, n int) []byte {
	out := make([]byte, n)
	if len(seed) == 0 {
		return out
	}
	for i := range out {
		out[i] = seed[i%len(seed)]
	}
	for i := n; i < len(seed); i++ {
		out[i%n] ^= seed[i]
	}
	return out
}
