// Package customerrors defines the closed set of errors returned by the
// allocators and the containers built on them. Call sites wrap these with
// context, match them with errors.Is.
package customerrors

import (
	"github.com/pkg/errors"
)

var (
	// ErrOutOfMemory is returned when a bounded pool cannot carve a fresh
	// block without exceeding its capacity, or the backing heap refused
	// the request.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrInvalidArgument is returned when deallocating an address that is
	// not currently in use (double free or foreign pointer), or when an
	// argument such as alignment is malformed.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned by containers when removing from or
	// peeking into an empty container.
	ErrOutOfRange = errors.New("out of range")
)
