//go:build unix

package heap

import (
	"os"

	"go-mempool/pkg/customerrors"
	"go-mempool/util/helpers"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Mmap carves every block from its own anonymous private mapping and
// unmaps it on Free. Not safe for concurrent use.
type Mmap struct {
	pageSize uintptr
	mappings map[uintptr][]byte
}

func NewMmap() (*Mmap, error) {
	return &Mmap{
		pageSize: uintptr(os.Getpagesize()),
		mappings: map[uintptr][]byte{},
	}, nil
}

func (m *Mmap) Alloc(size, alignment uintptr) ([]byte, error) {
	if err := checkAlignment(alignment); err != nil {
		return nil, err
	}

	n := reserve(size)
	slack := m.pageSize - 1
	if alignment > m.pageSize {
		slack += alignment - m.pageSize
	}
	if err := checkLength(n, slack); err != nil {
		return nil, err
	}

	length := n
	if alignment > m.pageSize {
		length += alignment - m.pageSize
	}
	length = helpers.AlignUp(length, m.pageSize)

	mapping, err := unix.Mmap(-1, 0, int(length), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.Wrapf(customerrors.ErrOutOfMemory, "mmap %d bytes: %v", length, err)
	}

	b := alignSlice(mapping, n, alignment)
	m.mappings[helpers.AddressOf(b)] = mapping
	return b[:size], nil
}

func (m *Mmap) Free(b []byte) error {
	addr := helpers.AddressOf(b)
	mapping, ok := m.mappings[addr]
	if !ok {
		return errors.Wrapf(customerrors.ErrInvalidArgument, "address %#x was not mapped by this heap", addr)
	}

	delete(m.mappings, addr)
	return errors.Wrap(unix.Munmap(mapping), "munmap")
}

// Mapped returns the number of live mappings.
func (m *Mmap) Mapped() int {
	return len(m.mappings)
}
