package merkling

import (
	"bytes"

	"github.com/thomaspmurphy/merkling/mhash"
)

// VerifyProof reports whether proof demonstrates that data is a member
// of the block sequence committed to by expectedRoot.
//
// It recomputes the path bottom-up: starting from the digest of data,
// each step's sibling is combined on the side its Left flag records,
// and the final value is byte-compared against expectedRoot.
// A single-block commitment is checked with an empty proof.
//
// VerifyProof is a pure function with no error channel:
// truncated, reordered, or otherwise tampered proofs
// simply produce a digest that fails the comparison.
// The hasher and hashSize must match the ones the tree was built with.
func VerifyProof(
	hasher mhash.Hasher,
	hashSize int,
	data []byte,
	proof []ProofStep,
	expectedRoot []byte,
) bool {
	cur := make([]byte, hashSize)
	hasher.Leaf(data, cur[:0])

	// Two buffers reused for the whole walk, swapped each level.
	next := make([]byte, hashSize)
	for _, step := range proof {
		if step.Left {
			hasher.Node(step.Sibling, cur, next[:0])
		} else {
			hasher.Node(cur, step.Sibling, next[:0])
		}
		cur, next = next, cur
	}

	return bytes.Equal(cur, expectedRoot)
}

// Verify checks data and proof against t's own root,
// using the hasher t was built with.
func (t *Tree) Verify(data []byte, proof []ProofStep) bool {
	return VerifyProof(t.hasher, t.hashSize, data, proof, t.root.hash)
}
