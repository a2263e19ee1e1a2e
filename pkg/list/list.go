// Package list implements a doubly linked list whose nodes are backed by
// blocks from an allocator.Allocator. Each node is addressed by the block
// address the allocator handed out and links to its neighbours by those
// addresses, so a node's lifetime is exactly the lifetime of its block.
//
// A List is not safe for concurrent use, and the allocator must outlive it.
package list

import (
	"go-mempool/pkg/allocator"
	"go-mempool/pkg/customerrors"
	"go-mempool/util/helpers"

	"github.com/pkg/errors"
)

type node[T any] struct {
	data T
	prev allocator.Addr
	next allocator.Addr
}

func New[T any](alloc allocator.Allocator) *List[T] {
	if alloc == nil {
		panic(errors.Wrap(customerrors.ErrInvalidArgument, "list requires an allocator"))
	}

	var n node[T]
	return &List[T]{
		alloc:     alloc,
		nodes:     map[allocator.Addr]*node[T]{},
		nodeSize:  helpers.Sizeof(n),
		nodeAlign: helpers.Alignof(n),
	}
}

type List[T any] struct {
	head  allocator.Addr
	tail  allocator.Addr
	count int
	alloc allocator.Allocator
	nodes map[allocator.Addr]*node[T]

	nodeSize  uintptr
	nodeAlign uintptr
}

func (l *List[T]) PushBack(value T) error {
	addr, n, err := l.newNode(value)
	if err != nil {
		return err
	}

	if l.tail != 0 {
		l.nodes[l.tail].next = addr
		n.prev = l.tail
		l.tail = addr
	} else {
		l.head, l.tail = addr, addr
	}
	l.count++
	return nil
}

func (l *List[T]) PushFront(value T) error {
	addr, n, err := l.newNode(value)
	if err != nil {
		return err
	}

	if l.head != 0 {
		l.nodes[l.head].prev = addr
		n.next = l.head
		l.head = addr
	} else {
		l.head, l.tail = addr, addr
	}
	l.count++
	return nil
}

func (l *List[T]) PopBack() error {
	if l.tail == 0 {
		return errors.Wrap(customerrors.ErrOutOfRange, "pop back from empty list")
	}

	old := l.tail
	l.tail = l.nodes[old].prev
	if l.tail != 0 {
		l.nodes[l.tail].next = 0
	} else {
		l.head = 0
	}
	return l.freeNode(old)
}

func (l *List[T]) PopFront() error {
	if l.head == 0 {
		return errors.Wrap(customerrors.ErrOutOfRange, "pop front from empty list")
	}

	old := l.head
	l.head = l.nodes[old].next
	if l.head != 0 {
		l.nodes[l.head].prev = 0
	} else {
		l.tail = 0
	}
	return l.freeNode(old)
}

func (l *List[T]) Front() (T, error) {
	if l.head == 0 {
		var zero T
		return zero, errors.Wrap(customerrors.ErrOutOfRange, "front of empty list")
	}
	return l.nodes[l.head].data, nil
}

func (l *List[T]) Back() (T, error) {
	if l.tail == 0 {
		var zero T
		return zero, errors.Wrap(customerrors.ErrOutOfRange, "back of empty list")
	}
	return l.nodes[l.tail].data, nil
}

func (l *List[T]) Size() int {
	return l.count
}

func (l *List[T]) Empty() bool {
	return l.count == 0
}

// Clear removes every element front to back, returning each node's block
// to the allocator.
func (l *List[T]) Clear() error {
	for !l.Empty() {
		if err := l.PopFront(); err != nil {
			return err
		}
	}
	return nil
}

// Close clears the list. It must be called before the list is dropped,
// otherwise its blocks stay in use in the allocator.
func (l *List[T]) Close() error {
	return l.Clear()
}

func (l *List[T]) newNode(value T) (allocator.Addr, *node[T], error) {
	addr, err := l.alloc.Allocate(l.nodeSize, l.nodeAlign)
	if err != nil {
		return 0, nil, err
	}

	n := &node[T]{data: value}
	l.nodes[addr] = n
	return addr, n, nil
}

// freeNode destroys an unlinked node and hands its block back.
func (l *List[T]) freeNode(addr allocator.Addr) error {
	n := l.nodes[addr]
	var zero T
	n.data = zero
	delete(l.nodes, addr)
	l.count--

	return l.alloc.Deallocate(addr, l.nodeSize, l.nodeAlign)
}
