package pool

import (
	"fmt"

	"go-mempool/pkg/allocator"
)

// Block describes one contiguous region carved from the heap. A block
// lives until the pool is released and is never split or merged.
type Block struct {
	Addr      allocator.Addr
	Size      uintptr
	Alignment uintptr
	mem       []byte
}

func (b *Block) fits(size, alignment uintptr) bool {
	return b.Size >= size && b.Alignment >= alignment
}

func (b Block) Format(f fmt.State, c rune) {
	f.Write([]byte(fmt.Sprintf("{addr:'%v', size:'%v', alignment:'%v'}", b.Addr, b.Size, b.Alignment)))
}
