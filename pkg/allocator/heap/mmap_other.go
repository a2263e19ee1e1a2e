//go:build !unix

package heap

import "github.com/pkg/errors"

type Mmap struct{}

func NewMmap() (*Mmap, error) {
	return nil, errors.New("mmap heap is not supported on this platform")
}

func (m *Mmap) Alloc(size, alignment uintptr) ([]byte, error) {
	return nil, errors.New("mmap heap is not supported on this platform")
}

func (m *Mmap) Free(b []byte) error {
	return errors.New("mmap heap is not supported on this platform")
}

func (m *Mmap) Mapped() int {
	return 0
}
