package pool

import "go-mempool/pkg/allocator/heap"

type Options struct {
	// Capacity bounds the bytes in use at once, 0 means unbounded.
	Capacity uintptr
	// Heap fresh blocks are carved from, heap.Go when nil.
	Heap     heap.Heap
	Observer Observer
}
