package mwire_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thomaspmurphy/merkling"
	"github.com/thomaspmurphy/merkling/mhash/mhsha256"
	"github.com/thomaspmurphy/merkling/mwire"
)

func TestProof_round_trip(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 8; n++ {
		n := n
		t.Run(fmt.Sprintf("%d blocks", n), func(t *testing.T) {
			t.Parallel()

			blocks := make([][]byte, n)
			for i := range blocks {
				blocks[i] = fmt.Appendf(nil, "block_%d", i)
			}

			tree, err := merkling.NewTree(blocks, merkling.TreeConfig{
				Hasher:   mhsha256.Hasher{},
				HashSize: mhsha256.HashSize,
			})
			require.NoError(t, err)

			for _, b := range blocks {
				proof, err := tree.GenerateProof(b)
				require.NoError(t, err)

				enc := mwire.AppendProof(nil, proof)

				dec, err := mwire.ParseProof(enc)
				require.NoError(t, err)
				require.Equal(t, proof, dec)

				// A decoded proof re-encodes to identical bytes.
				require.Equal(t, enc, mwire.AppendProof(nil, dec))

				// And it still verifies.
				require.True(t, tree.Verify(b, dec))
			}
		})
	}
}

func TestProof_append_preserves_prefix(t *testing.T) {
	t.Parallel()

	proof := []merkling.ProofStep{
		{Sibling: []byte{1, 2, 3, 4}, Left: true},
	}

	enc := mwire.AppendProof([]byte("header:"), proof)
	require.Equal(t, []byte("header:"), enc[:7])

	dec, err := mwire.ParseProof(enc[7:])
	require.NoError(t, err)
	require.Equal(t, proof, dec)
}

func TestProof_empty(t *testing.T) {
	t.Parallel()

	enc := mwire.AppendProof(nil, nil)
	require.Equal(t, []byte{0x00, 0x00}, enc)

	dec, err := mwire.ParseProof(enc)
	require.NoError(t, err)
	require.Nil(t, dec)
}

func TestParseProof_rejects_malformed_input(t *testing.T) {
	t.Parallel()

	valid := mwire.AppendProof(nil, []merkling.ProofStep{
		{Sibling: []byte{0xAA, 0xBB, 0xCC, 0xDD}, Left: false},
		{Sibling: []byte{0x11, 0x22, 0x33, 0x44}, Left: true},
	})

	// Layout: count=2, hashSize=4, 8 bytes of hashes, 8 bytes of bitmap.
	require.Len(t, valid, 2+8+8)

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		_, err := mwire.ParseProof(nil)
		require.Error(t, err)
	})

	t.Run("truncated", func(t *testing.T) {
		t.Parallel()

		for n := 1; n < len(valid); n++ {
			_, err := mwire.ParseProof(valid[:n])
			require.Error(t, err, "truncated to %d bytes", n)
		}
	})

	t.Run("trailing bytes", func(t *testing.T) {
		t.Parallel()

		_, err := mwire.ParseProof(append(append([]byte(nil), valid...), 0x00))
		require.Error(t, err)
	})

	t.Run("side bit set past step count", func(t *testing.T) {
		t.Parallel()

		bad := append([]byte(nil), valid...)
		// Bit 2 of the bitmap, one past the 2-step count.
		bad[len(bad)-8] |= 0x04

		_, err := mwire.ParseProof(bad)
		require.Error(t, err)
	})

	t.Run("zero-step proof with nonzero hash size", func(t *testing.T) {
		t.Parallel()

		_, err := mwire.ParseProof([]byte{0x00, 0x20})
		require.Error(t, err)
	})

	t.Run("zero hash size with steps", func(t *testing.T) {
		t.Parallel()

		_, err := mwire.ParseProof([]byte{0x01, 0x00, 0, 0, 0, 0, 0, 0, 0, 0})
		require.Error(t, err)
	})

	t.Run("trailing bytes after zero-step proof", func(t *testing.T) {
		t.Parallel()

		_, err := mwire.ParseProof([]byte{0x00, 0x00, 0x00})
		require.Error(t, err)
	})
}

func TestAppendProof_panics_on_malformed_steps(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		mwire.AppendProof(nil, []merkling.ProofStep{
			{Sibling: []byte{1, 2, 3, 4}},
			{Sibling: []byte{1, 2}},
		})
	})

	require.Panics(t, func() {
		mwire.AppendProof(nil, []merkling.ProofStep{
			{Sibling: nil, Left: true},
		})
	})
}
