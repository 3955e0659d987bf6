package merkling

import (
	"fmt"

	"github.com/thomaspmurphy/merkling/mhash"
)

// node is one vertex of the tree.
// A node with nil children is a leaf holding the digest of one block;
// any other node is internal, holding the digest of its two children's
// concatenated hashes. Children are owned exclusively by their parent,
// so the structure is a strict binary tree with no sharing and no cycles.
type node struct {
	hash []byte

	left, right *node
}

func (n *node) isLeaf() bool { return n.left == nil }

// Tree is an immutable binary Merkle tree
// committing to an ordered sequence of byte blocks.
// Leaf order corresponds one-to-one with the order of the input blocks.
//
// Create a Tree with [NewTree].
// A built Tree is read-only: it is safe to call its methods
// from any number of goroutines concurrently.
type Tree struct {
	root *node

	hasher   mhash.Hasher
	hashSize int

	// Populated only when [TreeConfig.PrecomputeProofs] was set.
	// Keyed by leaf digest; the leftmost leaf wins on a digest collision,
	// matching the depth-first search order of the plain lookup.
	proofsByLeaf map[string][]ProofStep
}

// TreeConfig is the configuration for [NewTree].
type TreeConfig struct {
	// Hasher produces the fixed-length digests for leaves and internal nodes.
	Hasher mhash.Hasher

	// HashSize is the output size of Hasher, in bytes.
	// It also sets the size of the all-zero padding hash
	// used when a level has an odd node count.
	HashSize int

	// PrecomputeProofs records every leaf's full proof during construction,
	// so that [*Tree.GenerateProof] answers from a digest-keyed index
	// instead of searching the tree.
	// This trades construction time and memory for faster proofs;
	// the generated proofs are identical either way.
	PrecomputeProofs bool
}

// NewTree builds an immutable tree over the given ordered blocks.
// It returns [ErrEmptyInput] when blocks is empty.
// For a single block, the root is that block's leaf itself.
//
// Each level is reduced by combining adjacent pairs left to right.
// A level with an odd node count has its leftover node combined with
// a fixed padding node whose hash is all zeroes of the digest size;
// the leftover node is never paired with itself.
// This rule applies at every level, not only the leaf level,
// and it determines the exact root value.
//
// NewTree does not retain references to blocks.
func NewTree(blocks [][]byte, cfg TreeConfig) (*Tree, error) {
	if cfg.Hasher == nil {
		panic(fmt.Errorf("BUG: TreeConfig.Hasher must not be nil"))
	}
	if cfg.HashSize <= 0 {
		panic(fmt.Errorf(
			"BUG: TreeConfig.HashSize must be positive (got %d)", cfg.HashSize,
		))
	}

	if len(blocks) == 0 {
		return nil, ErrEmptyInput
	}

	level := make([]*node, len(blocks))
	for i, b := range blocks {
		h := make([]byte, cfg.HashSize)
		cfg.Hasher.Leaf(b, h[:0])
		level[i] = &node{hash: h}
	}

	// The leaf row, retained for indexing after the reduction
	// has overwritten the level slice.
	leaves := level

	var acc *proofAccumulator
	if cfg.PrecomputeProofs {
		acc = newProofAccumulator(len(blocks))
	}

	for len(level) > 1 {
		next := make([]*node, 0, (len(level)+1)/2)

		for i := 0; i < len(level); i += 2 {
			left := level[i]

			var right *node
			hasRight := i+1 < len(level)
			if hasRight {
				right = level[i+1]
			} else {
				// Leftover node on an odd count:
				// pair it with the fixed all-zero padding node.
				right = &node{hash: make([]byte, cfg.HashSize)}
			}

			h := make([]byte, cfg.HashSize)
			cfg.Hasher.Node(left.hash, right.hash, h[:0])

			next = append(next, &node{hash: h, left: left, right: right})

			if acc != nil {
				acc.combine(i, left, right, hasRight)
			}
		}

		level = next
		if acc != nil {
			acc.finishLevel()
		}
	}

	t := &Tree{
		root: level[0],

		hasher:   cfg.Hasher,
		hashSize: cfg.HashSize,
	}
	if acc != nil {
		t.proofsByLeaf = acc.index(leaves)
	}
	return t, nil
}

// RootHash returns the digest committing to the entire block sequence.
// The returned slice references the tree's own memory
// and must not be modified.
func (t *Tree) RootHash() []byte {
	return t.root.hash
}

// HashSize returns the digest size, in bytes, the tree was built with.
func (t *Tree) HashSize() int {
	return t.hashSize
}
