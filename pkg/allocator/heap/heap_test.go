package heap

import (
	"testing"

	"go-mempool/pkg/customerrors"
	"go-mempool/util/helpers"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func testHeap(t *testing.T, h Heap) {
	alignments := []uintptr{1, 2, 4, 8, 16, 64, 256, 8192}
	for _, alignment := range alignments {
		for _, size := range []uintptr{0, 1, 7, 64, 1000} {
			b, err := h.Alloc(size, alignment)
			require.NoError(t, err)
			require.Len(t, b, int(size))
			require.True(t, helpers.IsAligned(helpers.AddressOf(b), alignment),
				"size %d alignment %d addr %#x", size, alignment, helpers.AddressOf(b))

			for i := range b {
				b[i] = byte(i)
			}
			require.NoError(t, h.Free(b))
		}
	}

	_, err := h.Alloc(8, 3)
	require.True(t, errors.Is(err, customerrors.ErrInvalidArgument))
	_, err = h.Alloc(8, 0)
	require.True(t, errors.Is(err, customerrors.ErrInvalidArgument))
}

func TestGo(t *testing.T) {
	testHeap(t, Go{})
}

func TestGoDistinctAddresses(t *testing.T) {
	a, err := Go{}.Alloc(0, 8)
	require.NoError(t, err)
	b, err := Go{}.Alloc(0, 8)
	require.NoError(t, err)
	require.NotEqual(t, helpers.AddressOf(a), helpers.AddressOf(b))
}

func TestGoHugeLength(t *testing.T) {
	for _, size := range []uintptr{^uintptr(0) >> 2, ^uintptr(0)} {
		b, err := Go{}.Alloc(size, 64)
		require.True(t, errors.Is(err, customerrors.ErrOutOfMemory), "size %d: %v", size, err)
		require.Nil(t, b)
	}
}
