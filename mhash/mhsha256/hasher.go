package mhsha256

import "crypto/sha256"

const HashSize = sha256.Size

// Hasher is a [github.com/thomaspmurphy/merkling/mhash.Hasher]
// backed by SHA256 hashes.
// It is the reference digest: a leaf hash is SHA256 of the block,
// and a node hash is SHA256 of the left hash followed by the right hash.
type Hasher struct{}

func (Hasher) Leaf(in []byte, dst []byte) {
	h := sha256.New()
	_, _ = h.Write(in)
	h.Sum(dst)
}

func (Hasher) Node(left, right []byte, dst []byte) {
	h := sha256.New()
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	h.Sum(dst)
}
