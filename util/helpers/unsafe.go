package helpers

import (
	"reflect"
	"unsafe"
)

// MaxAlign is the strictest alignment any Go type needs.
const MaxAlign = unsafe.Alignof(complex128(0))

func Sizeof[T any](v T) uintptr {
	return reflect.TypeOf(&v).Elem().Size()
}

func Alignof[T any](v T) uintptr {
	return uintptr(reflect.TypeOf(&v).Elem().Align())
}

// AddressOf returns the address of the first byte backing b, b must have
// nonzero capacity.
func AddressOf(b []byte) uintptr {
	b = b[:cap(b)]
	return uintptr(unsafe.Pointer(&b[0]))
}
