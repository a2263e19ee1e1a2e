package heap

import (
	"runtime"

	"go-mempool/pkg/customerrors"

	"github.com/pkg/errors"
)

// Go carves blocks from the Go runtime heap. Free only drops the
// reference, the garbage collector reclaims the memory.
type Go struct{}

func (Go) Alloc(size, alignment uintptr) (b []byte, err error) {
	if err := checkAlignment(alignment); err != nil {
		return nil, err
	}

	n := reserve(size)
	if err := checkLength(n, alignment-1); err != nil {
		return nil, err
	}

	// makeslice panics on lengths above the runtime's allocation limit
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			b, err = nil, errors.Wrapf(customerrors.ErrOutOfMemory, "go heap refused %d bytes: %v", n, r)
		}
	}()

	buf := make([]byte, n+alignment-1)
	return alignSlice(buf, n, alignment)[:size], nil
}

func (Go) Free(b []byte) error {
	return nil
}
