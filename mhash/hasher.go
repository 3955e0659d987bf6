package mhash

// Hasher is the user-defined digest interface for hashing
// leaf blocks and internal nodes.
// The tree passes raw block data to the Leaf method to create a leaf hash,
// and it passes pairs of existing hashes to the Node method.
//
// Leaf must compute exactly digest(in),
// and Node must compute exactly digest(left ‖ right) with no separator,
// so that the root stays a pure function of ordered leaf content
// and independent implementations of the same digest interoperate.
// Both methods must be deterministic and produce fixed-length output.
//
// To be allocation-efficient, the Hasher implementation
// must append its output to dst, instead of creating a new byte slice;
// callers pass dst with the full output capacity already backing it.
// Hasher must not retain references to the dst slice.
//
// Furthermore, Hasher methods must be safe to call concurrently.
type Hasher interface {
	Leaf(in []byte, dst []byte)
	Node(left, right []byte, dst []byte)
}
