// Package doubly provides a doubly linked list whose elements live in an arena of slots. The links between elements
// are plain slot indices, so releasing an element never depends on other references to it being dropped first.
package doubly

import (
	"github.com/iotaledger/hive.go/runtime/options"
)

// region List /////////////////////////////////////////////////////////////////////////////////////////////////////////

// List represents an interface for a doubly linked list that can be used as a double ended queue.
type List[T any] interface {
	// PushFront inserts the given value at the front of the List.
	PushFront(value T)

	// PushBack inserts the given value at the back of the List.
	PushBack(value T)

	// PopFront removes and returns the first value of the List and whether it existed.
	PopFront() (value T, exists bool)

	// PopBack removes and returns the last value of the List and whether it existed.
	PopBack() (value T, exists bool)

	// PeekFront returns the first value of the List without removing it.
	PeekFront() (value T, exists bool)

	// PeekBack returns the last value of the List without removing it.
	PeekBack() (value T, exists bool)

	// MutateFront calls the mutator with a pointer to the first value. The pointer must not be retained after the
	// mutator returns.
	MutateFront(mutator func(value *T)) (exists bool)

	// MutateBack calls the mutator with a pointer to the last value. The pointer must not be retained after the
	// mutator returns.
	MutateBack(mutator func(value *T)) (exists bool)

	// ForEach executes the given callback for the value of each element in the List. The iteration is aborted if the
	// callback returns an error.
	ForEach(callback func(value T) error) error

	// ForEachReverse executes the given callback for the value of each element in the List in reverse order. The
	// iteration is aborted if the callback returns an error.
	ForEachReverse(callback func(value T) error) error

	// Range executes the given callback for the value of each element in the List.
	Range(callback func(value T))

	// RangeReverse executes the given callback for the value of each element in the List in reverse order.
	RangeReverse(callback func(value T))

	// Iterator returns an Iterator that walks the List from front to back.
	Iterator() *Iterator[T]

	// ReverseIterator returns an Iterator that walks the List from back to front.
	ReverseIterator() *Iterator[T]

	// Values returns a slice of all values in the List.
	Values() []T

	// Clear removes all elements from the List by popping them one at a time from the front.
	Clear()

	// Len returns the number of elements in the List.
	Len() int

	// IsEmpty returns true if the List contains no elements.
	IsEmpty() bool

	// String returns a human-readable version of the List.
	String() string
}

// New creates a new List that stores its elements in an index based arena.
func New[T any](opts ...options.Option[Options]) List[T] {
	return newList[T](options.Apply(defaultOptions(), opts))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
