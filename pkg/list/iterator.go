package list

import "go-mempool/pkg/allocator"

// Iterator is a forward position in a List. The zero address is the
// position one past the tail. Removing the node an iterator points at
// invalidates it.
type Iterator[T any] struct {
	list *List[T]
	cur  allocator.Addr
}

func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{l, l.head}
}

func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{l, 0}
}

// Next advances the iterator and returns its previous position.
func (it *Iterator[T]) Next() Iterator[T] {
	prev := *it
	if it.cur != 0 {
		it.cur = it.list.nodes[it.cur].next
	}
	return prev
}

// Value returns a pointer to the element, nil at End.
func (it Iterator[T]) Value() *T {
	if it.cur == 0 {
		return nil
	}
	return &it.list.nodes[it.cur].data
}

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.list == other.list && it.cur == other.cur
}

// All calls yield for each element from front to back until yield
// returns false.
func (l *List[T]) All(yield func(*T) bool) {
	for it := l.Begin(); !it.Equal(l.End()); it.Next() {
		if !yield(it.Value()) {
			return
		}
	}
}

// Values copies the elements into a slice, front to back.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.count)
	l.All(func(v *T) bool {
		values = append(values, *v)
		return true
	})
	return values
}
