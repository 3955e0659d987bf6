// Package mwire encodes inclusion proofs
// for persistence or transmission.
//
// The encoding preserves step order and each step's side flag,
// so a decoded proof verifies exactly like the original:
// a uvarint step count, a uvarint hash size,
// every sibling hash in leaf-to-root order,
// and finally the side flags packed as a bitmap,
// one bit per step, in little-endian 64-bit words.
package mwire

import (
	"encoding/binary"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/thomaspmurphy/merkling"
)

// AppendProof appends the wire encoding of proof to dst
// and returns the extended slice.
//
// Every sibling hash in proof must have the same positive length;
// proofs produced by a merkling tree always do,
// so a violation indicates caller misuse and panics.
func AppendProof(dst []byte, proof []merkling.ProofStep) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(proof)))

	if len(proof) == 0 {
		// A zero-step proof declares a zero hash size.
		return binary.AppendUvarint(dst, 0)
	}

	hashSize := len(proof[0].Sibling)
	if hashSize == 0 {
		panic(fmt.Errorf("BUG: sibling hashes must not be empty"))
	}
	dst = binary.AppendUvarint(dst, uint64(hashSize))

	sides := bitset.New(uint(len(proof)))
	for i, s := range proof {
		if len(s.Sibling) != hashSize {
			panic(fmt.Errorf(
				"BUG: every sibling hash must be %d bytes, but step %d had length %d",
				hashSize, i, len(s.Sibling),
			))
		}
		dst = append(dst, s.Sibling...)

		if s.Left {
			sides.Set(uint(i))
		}
	}

	// We use big endian in most encodings for human readability,
	// but for the bitmap words we use little endian
	// since it is more likely to match a modern machine's endianness.
	for _, w := range sides.Words() {
		dst = binary.LittleEndian.AppendUint64(dst, w)
	}

	return dst
}

// ParseProof parses a proof encoded by [AppendProof].
// Parsing is strict: short input, trailing bytes,
// a length that disagrees with the declared step count and hash size,
// or side bitmap bits set past the step count are all errors,
// and a parsed proof always re-encodes to identical bytes.
//
// The sibling hashes of the returned steps reference b,
// so b must not be modified while the proof is retained.
func ParseProof(b []byte) ([]merkling.ProofStep, error) {
	count, n := binary.Uvarint(b)
	if n <= 0 {
		return nil, fmt.Errorf("failed to read step count")
	}
	b = b[n:]

	hashSize, n := binary.Uvarint(b)
	if n <= 0 {
		return nil, fmt.Errorf("failed to read hash size")
	}
	b = b[n:]

	if count == 0 {
		if hashSize != 0 {
			return nil, fmt.Errorf(
				"zero-step proof must declare a zero hash size (got %d)", hashSize,
			)
		}
		if len(b) != 0 {
			return nil, fmt.Errorf("%d trailing bytes after zero-step proof", len(b))
		}
		return nil, nil
	}

	if hashSize == 0 {
		return nil, fmt.Errorf("hash size must be positive for a %d-step proof", count)
	}
	if count > uint64(len(b)) {
		return nil, fmt.Errorf(
			"declared step count %d exceeds remaining %d bytes", count, len(b),
		)
	}

	nWords := (count + 63) >> 6
	bitmapLen := 8 * nWords

	// Checking the division and remainder instead of count*hashSize
	// avoids any multiplication overflow on adversarial declared sizes.
	if uint64(len(b)) < bitmapLen ||
		(uint64(len(b))-bitmapLen)/count != hashSize ||
		(uint64(len(b))-bitmapLen)%count != 0 {
		return nil, fmt.Errorf(
			"encoding length does not match %d steps of %d-byte hashes", count, hashSize,
		)
	}

	steps := make([]merkling.ProofStep, count)
	for i := range steps {
		steps[i].Sibling = b[:hashSize:hashSize]
		b = b[hashSize:]
	}

	words := make([]uint64, nWords)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(b[8*i:])
	}

	sides := bitset.From(words)
	if idx, ok := sides.NextSet(uint(count)); ok {
		return nil, fmt.Errorf(
			"side bitmap has bit %d set past the %d-step count", idx, count,
		)
	}
	for i := range steps {
		steps[i].Left = sides.Test(uint(i))
	}

	return steps, nil
}
