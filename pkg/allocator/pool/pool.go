// Package pool implements a pooled allocator. Freed blocks are kept in a
// free set and handed out again to any request they can satisfy, they go
// back to the heap only when the pool is released. A Pool is not safe for
// concurrent use.
package pool

import (
	"go-mempool/config"
	"go-mempool/pkg/allocator"
	"go-mempool/pkg/allocator/heap"
	"go-mempool/pkg/customerrors"
	"go-mempool/util/helpers"
	"go-mempool/util/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

func New(opts *Options) *Pool {
	if opts == nil {
		opts = &Options{}
	}

	h := opts.Heap
	if h == nil {
		h = heap.Go{}
	}

	return &Pool{
		id:       uuid.New(),
		heap:     h,
		capacity: opts.Capacity,
		observer: opts.Observer,
		used:     make([]*Block, 0),
		free:     make([]*Block, 0),
	}
}

func NewFromConfig(cfg *config.PoolConfig) (*Pool, error) {
	if cfg == nil {
		cfg = config.NewPoolConfig()
	}
	opts := &Options{Capacity: cfg.Capacity}

	switch cfg.Backend {
	case "", config.BackendGo:
		opts.Heap = heap.Go{}
	case config.BackendMmap:
		h, err := heap.NewMmap()
		if err != nil {
			return nil, errors.Wrap(err, "failed to create mmap heap")
		}
		opts.Heap = h
	default:
		return nil, errors.Wrapf(customerrors.ErrInvalidArgument, "unknown heap backend '%s'", cfg.Backend)
	}

	if cfg.Verbose {
		opts.Observer = LogObserver(logger.L)
	}
	return New(opts), nil
}

type Pool struct {
	id         uuid.UUID
	heap       heap.Heap
	capacity   uintptr
	usedMemory uintptr
	used       []*Block
	free       []*Block
	observer   Observer
}

var _ allocator.Allocator = (*Pool)(nil)

func (p *Pool) Allocate(size, alignment uintptr) (allocator.Addr, error) {
	if alignment == 0 {
		alignment = helpers.MaxAlign
	}
	if !helpers.IsPowerOfTwo(alignment) {
		return 0, errors.Wrapf(customerrors.ErrInvalidArgument, "alignment %d is not a power of two", alignment)
	}

	if i := slices.IndexFunc(p.free, func(b *Block) bool { return b.fits(size, alignment) }); i >= 0 {
		b := p.free[i]
		p.free = slices.Delete(p.free, i, i+1)
		p.used = append(p.used, b)
		p.usedMemory += b.Size
		p.notify(EventReuse, b)
		return b.Addr, nil
	}

	if p.capacity != 0 && (p.usedMemory > p.capacity || size > p.capacity-p.usedMemory) {
		return 0, errors.Wrapf(
			customerrors.ErrOutOfMemory,
			"can't allocate %d bytes, %d of %d in use",
			size, p.usedMemory, p.capacity,
		)
	}

	mem, err := p.heap.Alloc(size, alignment)
	if err != nil {
		if errors.Is(err, customerrors.ErrOutOfMemory) {
			return 0, err
		}
		return 0, errors.Wrapf(customerrors.ErrOutOfMemory, "heap refused %d bytes: %v", size, err)
	}

	b := &Block{
		Addr:      allocator.Addr(helpers.AddressOf(mem)),
		Size:      size,
		Alignment: alignment,
		mem:       mem,
	}
	p.used = append(p.used, b)
	p.usedMemory += size
	p.notify(EventAllocate, b)
	return b.Addr, nil
}

// Deallocate moves the block at addr to the free set. size and alignment
// are accepted for the allocator contract, the block keeps the values it
// was recorded with.
func (p *Pool) Deallocate(addr allocator.Addr, size, alignment uintptr) error {
	i := p.indexUsed(addr)
	if i < 0 {
		return errors.Wrapf(customerrors.ErrInvalidArgument, "address %v is not allocated by this pool", addr)
	}

	b := p.used[i]
	p.used = slices.Delete(p.used, i, i+1)
	p.usedMemory = helpers.SubFloor(p.usedMemory, b.Size)
	p.free = append(p.free, b)
	p.notify(EventDeallocate, b)
	return nil
}

// Bytes returns the memory of an in-use block.
func (p *Pool) Bytes(addr allocator.Addr) ([]byte, error) {
	i := p.indexUsed(addr)
	if i < 0 {
		return nil, errors.Wrapf(customerrors.ErrInvalidArgument, "address %v is not allocated by this pool", addr)
	}
	return p.used[i].mem, nil
}

// Release returns every block, used or free, to the heap and resets the
// pool. Addresses handed out before are invalid afterwards.
func (p *Pool) Release() error {
	var firstErr error
	for _, set := range [][]*Block{p.used, p.free} {
		for _, b := range set {
			if err := p.heap.Free(b.mem); err != nil && firstErr == nil {
				firstErr = errors.Wrapf(err, "failed to release block %v", *b)
			}
			p.notify(EventRelease, b)
		}
	}

	p.used, p.free = make([]*Block, 0), make([]*Block, 0)
	p.usedMemory = 0
	return firstErr
}

func (p *Pool) UsedMemory() uintptr {
	return p.usedMemory
}

// FreeCapacity is 0 for an unbounded pool.
func (p *Pool) FreeCapacity() uintptr {
	return helpers.SubFloor(p.capacity, p.usedMemory)
}

func (p *Pool) Capacity() uintptr {
	return p.capacity
}

func (p *Pool) UsedBlocks() int {
	return len(p.used)
}

func (p *Pool) FreeBlocks() int {
	return len(p.free)
}

func (p *Pool) ID() uuid.UUID {
	return p.id
}

// IsEqual reports whether other is this very pool, memory from one pool
// can't be returned to another.
func (p *Pool) IsEqual(other allocator.Allocator) bool {
	o, ok := other.(*Pool)
	return ok && o == p
}

func (p *Pool) SetObserver(o Observer) {
	p.observer = o
}

func (p *Pool) indexUsed(addr allocator.Addr) int {
	return slices.IndexFunc(p.used, func(b *Block) bool { return b.Addr == addr })
}

func (p *Pool) notify(e Event, b *Block) {
	if p.observer != nil {
		p.observer.Observe(p, e, *b)
	}
}
