package merkling

import "bytes"

// ProofStep is one element of an inclusion proof:
// the hash of the sibling node at one level of the path from leaf to root,
// and which side of the path node that sibling sits on.
type ProofStep struct {
	// Sibling is the digest of the sibling node.
	Sibling []byte

	// Left reports whether the sibling precedes the path node,
	// i.e. whether the sibling is the left input when the two are combined.
	Left bool
}

// GenerateProof locates the leaf whose hash equals the digest of data
// and returns its sibling path, ordered leaf to root.
// A single-block tree yields a nil proof, since the leaf is the root.
// It returns [ErrLeafNotFound] when no leaf matches.
//
// The leaf is found by left-first depth-first search,
// so if multiple leaves ever collided on one digest
// (not expected under a collision-resistant hash),
// the leftmost match would be used;
// block content beyond its digest is never examined.
//
// The returned proof does not reference the tree's memory,
// so the caller is free to retain or modify it.
func (t *Tree) GenerateProof(data []byte) ([]ProofStep, error) {
	target := make([]byte, t.hashSize)
	t.hasher.Leaf(data, target[:0])

	if t.proofsByLeaf != nil {
		steps, ok := t.proofsByLeaf[string(target)]
		if !ok {
			return nil, ErrLeafNotFound
		}
		if len(steps) == 0 {
			// Single-block tree; keep the result shape
			// identical to the search path.
			return nil, nil
		}

		out := make([]ProofStep, len(steps))
		for i, s := range steps {
			out[i] = ProofStep{Sibling: bytes.Clone(s.Sibling), Left: s.Left}
		}
		return out, nil
	}

	var proof []ProofStep
	if !locate(t.root, target, &proof) {
		return nil, ErrLeafNotFound
	}
	return proof, nil
}

// locate depth-first searches the subtree rooted at n
// for a leaf whose hash equals target, left subtree first.
// On a match it appends one step per ancestor on the way back up,
// so the collected proof is ordered leaf to root.
func locate(n *node, target []byte, proof *[]ProofStep) bool {
	if n.isLeaf() {
		return bytes.Equal(n.hash, target)
	}

	if locate(n.left, target, proof) {
		*proof = append(*proof, ProofStep{
			Sibling: bytes.Clone(n.right.hash),
			Left:    false,
		})
		return true
	}
	if locate(n.right, target, proof) {
		*proof = append(*proof, ProofStep{
			Sibling: bytes.Clone(n.left.hash),
			Left:    true,
		})
		return true
	}
	return false
}

// proofAccumulator collects every leaf's sibling path
// while NewTree reduces the levels,
// so that proof generation can be answered from an index
// instead of a tree search.
type proofAccumulator struct {
	// spans[i] lists the original leaf indices beneath
	// the i'th node of the level currently being reduced.
	// Padding nodes cover no leaves.
	spans [][]int

	// Spans for the level being produced.
	next [][]int

	// steps is aligned one-to-one with the original leaf order.
	steps [][]ProofStep
}

func newProofAccumulator(nLeaves int) *proofAccumulator {
	spans := make([][]int, nLeaves)
	for i := range spans {
		spans[i] = []int{i}
	}

	return &proofAccumulator{
		spans: spans,
		steps: make([][]ProofStep, nLeaves),
	}
}

// combine records the sibling step for every leaf beneath the pair of
// nodes at positions i and i+1 of the current level.
// hasRight is false when right is a padding node,
// which covers no leaves and therefore collects no steps of its own.
func (a *proofAccumulator) combine(i int, left, right *node, hasRight bool) {
	leftSpan := a.spans[i]
	var rightSpan []int
	if hasRight {
		rightSpan = a.spans[i+1]
	}

	for _, leaf := range leftSpan {
		a.steps[leaf] = append(a.steps[leaf], ProofStep{
			Sibling: right.hash,
			Left:    false,
		})
	}
	for _, leaf := range rightSpan {
		a.steps[leaf] = append(a.steps[leaf], ProofStep{
			Sibling: left.hash,
			Left:    true,
		})
	}

	merged := make([]int, 0, len(leftSpan)+len(rightSpan))
	merged = append(merged, leftSpan...)
	merged = append(merged, rightSpan...)
	a.next = append(a.next, merged)
}

func (a *proofAccumulator) finishLevel() {
	a.spans = a.next
	a.next = nil
}

// index keys the collected paths by leaf digest.
// The leftmost occurrence wins on a digest collision,
// which is the same leaf the depth-first search would find.
//
// The indexed steps alias the tree's node hashes;
// GenerateProof copies them before handing them out.
func (a *proofAccumulator) index(leaves []*node) map[string][]ProofStep {
	m := make(map[string][]ProofStep, len(leaves))
	for i, leaf := range leaves {
		key := string(leaf.hash)
		if _, ok := m[key]; ok {
			continue
		}
		m[key] = a.steps[i]
	}
	return m
}
