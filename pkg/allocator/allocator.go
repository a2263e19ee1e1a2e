// Package allocator defines the capability a container needs from the
// memory provider backing its nodes.
package allocator

import "fmt"

// Addr is the address of a block handed out by an Allocator. The zero
// Addr never refers to a live block.
type Addr uintptr

// Allocator hands out raw aligned blocks and takes them back.
type Allocator interface {
	// Allocate returns the address of a block of at least size bytes
	// aligned to alignment. Fails with customerrors.ErrOutOfMemory.
	Allocate(size, alignment uintptr) (Addr, error)

	// Deallocate returns a block obtained from Allocate. Fails with
	// customerrors.ErrInvalidArgument if addr is not in use.
	Deallocate(addr Addr, size, alignment uintptr) error

	UsedMemory() uintptr
	FreeCapacity() uintptr
}

func (a Addr) String() string {
	return fmt.Sprintf("%#x", uintptr(a))
}
