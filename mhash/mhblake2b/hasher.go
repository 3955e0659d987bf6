package mhblake2b

import "golang.org/x/crypto/blake2b"

const HashSize = blake2b.Size256

// Hasher is a [github.com/thomaspmurphy/merkling/mhash.Hasher]
// backed by unkeyed BLAKE2b-256 hashes.
type Hasher struct{}

func (Hasher) Leaf(in []byte, dst []byte) {
	// New256 only fails on an oversized key; an unkeyed hash cannot fail.
	h, _ := blake2b.New256(nil)
	_, _ = h.Write(in)
	h.Sum(dst)
}

func (Hasher) Node(left, right []byte, dst []byte) {
	h, _ := blake2b.New256(nil)
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	h.Sum(dst)
}
