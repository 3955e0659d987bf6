package mhashtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thomaspmurphy/merkling/mhash"
)

type HasherFactory func() (h mhash.Hasher, hashSize int)

// TestHasherCompliance asserts the behavior
// that every [mhash.Hasher] implementation must satisfy.
func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("leaf is deterministic", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		dst01 := make([]byte, sz)
		h.Leaf([]byte("deterministic_data"), dst01[:0])

		dst02 := make([]byte, sz)
		h.Leaf([]byte("deterministic_data"), dst02[:0])

		require.Equal(t, dst01, dst02)
	})

	t.Run("node is deterministic", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		left := make([]byte, sz)
		h.Leaf([]byte("left_data"), left[:0])
		right := make([]byte, sz)
		h.Leaf([]byte("right_data"), right[:0])

		dst01 := make([]byte, sz)
		h.Node(left, right, dst01[:0])

		dst02 := make([]byte, sz)
		h.Node(left, right, dst02[:0])

		require.Equal(t, dst01, dst02)
	})

	t.Run("output does not exceed the hash size", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		for _, in := range [][]byte{nil, []byte("x"), make([]byte, 4096)} {
			// Sentinel bytes beyond the hash size must survive the append.
			dst := make([]byte, 2*sz)
			for i := range dst {
				dst[i] = 0xA5
			}

			h.Leaf(in, dst[:0])

			exp := make([]byte, sz)
			for i := range exp {
				exp[i] = 0xA5
			}
			require.Equal(t, exp, dst[sz:])
		}
	})

	t.Run("leaf respects input", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		dst01 := make([]byte, sz)
		h.Leaf([]byte("data_1"), dst01[:0])

		dst02 := make([]byte, sz)
		h.Leaf([]byte("data_2"), dst02[:0])

		require.NotEqual(t, dst01, dst02)
	})

	t.Run("node respects child order", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		left := make([]byte, sz)
		h.Leaf([]byte("left_data"), left[:0])
		right := make([]byte, sz)
		h.Leaf([]byte("right_data"), right[:0])

		dst01 := make([]byte, sz)
		h.Node(left, right, dst01[:0])

		dst02 := make([]byte, sz)
		h.Node(right, left, dst02[:0])

		require.NotEqual(t, dst01, dst02)
	})

	t.Run("node is the digest of concatenated children", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		left := make([]byte, sz)
		h.Leaf([]byte("left_data"), left[:0])
		right := make([]byte, sz)
		h.Leaf([]byte("right_data"), right[:0])

		fromNode := make([]byte, sz)
		h.Node(left, right, fromNode[:0])

		cat := make([]byte, 0, 2*sz)
		cat = append(cat, left...)
		cat = append(cat, right...)
		fromLeaf := make([]byte, sz)
		h.Leaf(cat, fromLeaf[:0])

		require.Equal(t, fromLeaf, fromNode)
	})

	t.Run("hash appends to dst", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		// The prefix already in dst must survive the append.
		buf := make([]byte, 4, 4+sz)
		copy(buf, "pre_")

		h.Leaf([]byte("appended_data"), buf)

		require.Equal(t, []byte("pre_"), buf[:4])

		exp := make([]byte, sz)
		h.Leaf([]byte("appended_data"), exp[:0])
		require.Equal(t, exp, buf[4:4+sz:4+sz])
	})
}
