// Package heap provides the sources a pool carves fresh blocks from.
package heap

import (
	"math"

	"go-mempool/pkg/customerrors"
	"go-mempool/util/helpers"

	"github.com/pkg/errors"
)

// Heap hands out raw memory regions and takes them back. Alloc returns a
// slice of exactly size bytes whose first byte is aligned to alignment.
type Heap interface {
	Alloc(size, alignment uintptr) ([]byte, error)
	Free(b []byte) error
}

func checkAlignment(alignment uintptr) error {
	if !helpers.IsPowerOfTwo(alignment) {
		return errors.Wrapf(customerrors.ErrInvalidArgument, "alignment %d is not a power of two", alignment)
	}
	return nil
}

// checkLength fails when reserving n bytes plus extra bytes of slack
// can't be expressed as a slice length.
func checkLength(n, extra uintptr) error {
	if n > uintptr(math.MaxInt)-extra {
		return errors.Wrapf(customerrors.ErrOutOfMemory, "%d bytes exceed the addressable length", n)
	}
	return nil
}

// reserve is the number of bytes actually reserved for a request, a zero
// sized request still gets a unique address.
func reserve(size uintptr) uintptr {
	return helpers.Max(size, 1)
}

// alignSlice trims buf to size bytes starting at the first aligned byte.
func alignSlice(buf []byte, size, alignment uintptr) []byte {
	addr := helpers.AddressOf(buf)
	shift := helpers.AlignUp(addr, alignment) - addr
	return buf[shift : shift+size : shift+size]
}
