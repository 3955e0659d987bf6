// Package merkling commits an ordered sequence of opaque byte blocks
// to a single fixed-length root hash via a binary Merkle tree,
// and produces and checks compact inclusion proofs against that root.
//
// Build a tree with [NewTree], read its commitment with [*Tree.RootHash],
// prove membership of one block with [*Tree.GenerateProof],
// and check a proof against a root with [VerifyProof].
//
// The digest is pluggable through the
// [github.com/thomaspmurphy/merkling/mhash.Hasher] interface;
// [github.com/thomaspmurphy/merkling/mhash/mhsha256] is the reference implementation.
//
// When a level of the tree has an odd node count,
// the unpaired node is combined with a fixed padding node
// whose hash is an all-zero value of the digest size.
// Independent implementations must apply the same padding rule
// to reproduce identical roots.
package merkling
