// Package digest wraps the hash collaborator named in spec.md §6:
// hf_map(out, msg, len) producing a 20- or 32-byte digest, treated as a
// black box by eb.Map and (out of scope here) RSA padding.
//
// The 32-byte path uses the teacher's own direct dependency,
// github.com/btcsuite/fastsha256. fastsha256 has no SHA-1 mode, and no
// pack repo vendors a third-party SHA-1, so the 20-byte legacy path falls
// back to stdlib crypto/sha1 — the only source of that digest anywhere in
// the retrieved examples.
package digest

import (
	"crypto/sha1"

	"github.com/btcsuite/fastsha256"
)

// Size20 and Size32 are the two digest lengths spec.md §6 names.
const (
	Size20 = 20
	Size32 = 32
)

// Map20 computes the legacy 20-byte digest of msg.
func Map20(msg []byte) [Size20]byte {
	return sha1.Sum(msg)
}

// Map32 computes the 32-byte digest of msg used by eb.Map's seed
// derivation.
func Map32(msg []byte) [Size32]byte {
	return fastsha256.Sum256(msg)
}
