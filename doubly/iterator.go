package doubly

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// Iterator is an object that allows to walk through the values of a List in a deterministic order.
//
// An Iterator is invalidated by every structural change of its List (push, pop or clear). Using it afterwards panics
// with ErrStaleIterator.
type Iterator[T any] struct {
	list          *list[T]
	start         int
	current       int
	reverse       bool
	modifications uint64
}

// newIterator creates a new Iterator that starts at the head (or the tail if reverse is true) of the given list.
func newIterator[T any](l *list[T], reverse bool) *Iterator[T] {
	start := lo.Cond(reverse, l.tail, l.head)

	return &Iterator[T]{
		list:          l,
		start:         start,
		current:       start,
		reverse:       reverse,
		modifications: l.modifications,
	}
}

// HasNext returns true if there is another value that can be requested via the Next method.
func (i *Iterator[T]) HasNext() bool {
	i.requireValid()

	return i.current != none
}

// Next returns the next value and advances the Iterator. The method panics if there is no next value (always use
// HasNext to check if another value can be requested).
func (i *Iterator[T]) Next() T {
	i.requireValid()

	if i.current == none {
		panic(ErrIteratorExhausted)
	}

	if i.list.writing {
		panic(ierrors.Wrap(ErrBorrowConflict, "Iterator.Next called while the list is mutably borrowed"))
	}

	current := i.list.arena.at(i.current)
	i.current = lo.Cond(i.reverse, current.prev, current.next)

	return current.value
}

// Reset resets the Iterator to its initial position.
func (i *Iterator[T]) Reset() {
	i.requireValid()

	i.current = i.start
}

// requireValid panics if the list was structurally modified after the Iterator was created.
func (i *Iterator[T]) requireValid() {
	if i.modifications != i.list.modifications {
		panic(ierrors.Wrapf(ErrStaleIterator, "iterator created at modification %d, list is at %d",
			i.modifications, i.list.modifications,
		))
	}
}
