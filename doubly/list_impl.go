package doubly

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/stringify"
)

// region list /////////////////////////////////////////////////////////////////////////////////////////////////////////

// list implements the List interface on top of an arena of slots.
type list[T any] struct {
	// head and tail are the indices of the first and the last slot (or none if the list is empty).
	head, tail int

	// len is the current list length.
	len int

	// arena owns the slots of the list.
	arena *arena[T]

	// readers is the number of active read borrows.
	readers int

	// writing is true while a write borrow is active.
	writing bool

	// modifications is increased on every structural change and used to detect stale iterators.
	modifications uint64

	// options contains the configuration of the list.
	options *Options
}

// newList returns a new list instance.
func newList[T any](opts *Options) *list[T] {
	return &list[T]{
		head:    none,
		tail:    none,
		arena:   newArena[T](opts.InitialCapacity, opts.Logger),
		options: opts,
	}
}

// PushFront inserts the given value at the front of the List.
func (l *list[T]) PushFront(value T) {
	l.requireExclusiveAccess("PushFront")

	index := l.arena.alloc(value)
	if l.head == none {
		l.tail = index
	} else {
		l.arena.at(l.head).prev = index
		l.arena.at(index).next = l.head
	}

	l.head = index
	l.len++
	l.modifications++
}

// PushBack inserts the given value at the back of the List.
func (l *list[T]) PushBack(value T) {
	l.requireExclusiveAccess("PushBack")

	index := l.arena.alloc(value)
	if l.tail == none {
		l.head = index
	} else {
		l.arena.at(l.tail).next = index
		l.arena.at(index).prev = l.tail
	}

	l.tail = index
	l.len++
	l.modifications++
}

// PopFront removes and returns the first value of the List and whether it existed.
func (l *list[T]) PopFront() (value T, exists bool) {
	l.requireExclusiveAccess("PopFront")

	if l.head == none {
		return value, false
	}

	value = l.extract(l.detachFront())
	l.shrinkIfNeeded()

	return value, true
}

// PopBack removes and returns the last value of the List and whether it existed.
func (l *list[T]) PopBack() (value T, exists bool) {
	l.requireExclusiveAccess("PopBack")

	if l.tail == none {
		return value, false
	}

	value = l.extract(l.detachBack())
	l.shrinkIfNeeded()

	return value, true
}

// PeekFront returns the first value of the List without removing it.
func (l *list[T]) PeekFront() (value T, exists bool) {
	return l.peek(l.head, "PeekFront")
}

// PeekBack returns the last value of the List without removing it.
func (l *list[T]) PeekBack() (value T, exists bool) {
	return l.peek(l.tail, "PeekBack")
}

// MutateFront calls the mutator with a pointer to the first value. The pointer must not be retained after the mutator
// returns.
func (l *list[T]) MutateFront(mutator func(value *T)) (exists bool) {
	return l.mutate(l.head, "MutateFront", mutator)
}

// MutateBack calls the mutator with a pointer to the last value. The pointer must not be retained after the mutator
// returns.
func (l *list[T]) MutateBack(mutator func(value *T)) (exists bool) {
	return l.mutate(l.tail, "MutateBack", mutator)
}

// ForEach executes the given callback for the value of each element in the List. The iteration is aborted if the
// callback returns an error.
func (l *list[T]) ForEach(callback func(value T) error) error {
	defer l.borrow("ForEach")()

	for index := l.head; index != none; index = l.arena.at(index).next {
		if err := callback(l.arena.at(index).value); err != nil {
			return err
		}
	}

	return nil
}

// ForEachReverse executes the given callback for the value of each element in the List in reverse order. The iteration
// is aborted if the callback returns an error.
func (l *list[T]) ForEachReverse(callback func(value T) error) error {
	defer l.borrow("ForEachReverse")()

	for index := l.tail; index != none; index = l.arena.at(index).prev {
		if err := callback(l.arena.at(index).value); err != nil {
			return err
		}
	}

	return nil
}

// Range executes the given callback for the value of each element in the List.
func (l *list[T]) Range(callback func(value T)) {
	defer l.borrow("Range")()

	for index := l.head; index != none; index = l.arena.at(index).next {
		callback(l.arena.at(index).value)
	}
}

// RangeReverse executes the given callback for the value of each element in the List in reverse order.
func (l *list[T]) RangeReverse(callback func(value T)) {
	defer l.borrow("RangeReverse")()

	for index := l.tail; index != none; index = l.arena.at(index).prev {
		callback(l.arena.at(index).value)
	}
}

// Iterator returns an Iterator that walks the List from front to back.
func (l *list[T]) Iterator() *Iterator[T] {
	return newIterator(l, false)
}

// ReverseIterator returns an Iterator that walks the List from back to front.
func (l *list[T]) ReverseIterator() *Iterator[T] {
	return newIterator(l, true)
}

// Values returns a slice of all values in the List.
func (l *list[T]) Values() []T {
	values := make([]T, 0, l.len)

	l.Range(func(value T) {
		values = append(values, value)
	})

	return values
}

// Clear removes all elements from the List by popping them one at a time from the front.
func (l *list[T]) Clear() {
	l.requireExclusiveAccess("Clear")

	for l.head != none {
		l.extract(l.detachFront())
	}

	l.arena.reset()
}

// Len returns the number of elements in the List.
func (l *list[T]) Len() int {
	return l.len
}

// IsEmpty returns true if the List contains no elements.
func (l *list[T]) IsEmpty() bool {
	return l.len == 0
}

// String returns a human-readable version of the List.
func (l *list[T]) String() string {
	return stringify.Struct("List",
		stringify.NewStructField("len", l.len),
		stringify.NewStructField("values", fmt.Sprint(l.Values())),
	)
}

// detachFront unlinks the head slot and returns its index.
func (l *list[T]) detachFront() (index int) {
	index = l.head
	detached := l.arena.at(index)

	if detached.next == none {
		l.tail = none
		l.head = none
	} else {
		l.arena.at(detached.next).prev = none
		l.head = detached.next
	}
	detached.next = none

	return index
}

// detachBack unlinks the tail slot and returns its index.
func (l *list[T]) detachBack() (index int) {
	index = l.tail
	detached := l.arena.at(index)

	if detached.prev == none {
		l.head = none
		l.tail = none
	} else {
		l.arena.at(detached.prev).next = none
		l.tail = detached.prev
	}
	detached.prev = none

	return index
}

// extract moves the value out of a detached slot.
func (l *list[T]) extract(index int) T {
	if l.head == index || l.tail == index {
		panic(ierrors.Wrapf(ErrInvariantViolation, "slot %d is still referenced as an endpoint",
			index,
		))
	}

	value := l.arena.release(index)
	l.len--
	l.modifications++

	return value
}

// peek returns the value of the given slot under a read borrow.
func (l *list[T]) peek(index int, operation string) (value T, exists bool) {
	if l.writing {
		panic(ierrors.Wrapf(ErrBorrowConflict, "%s called while the list is mutably borrowed", operation))
	}

	if index == none {
		return value, false
	}

	return l.arena.at(index).value, true
}

// mutate calls the mutator with a pointer to the value of the given slot under a write borrow.
func (l *list[T]) mutate(index int, operation string, mutator func(value *T)) (exists bool) {
	defer l.borrowMut(operation)()

	if index == none {
		return false
	}

	mutator(&l.arena.at(index).value)

	return true
}

// borrow acquires a read borrow and returns the function that releases it.
func (l *list[T]) borrow(operation string) (release func()) {
	if l.writing {
		panic(ierrors.Wrapf(ErrBorrowConflict, "%s called while the list is mutably borrowed", operation))
	}

	l.readers++

	return func() { l.readers-- }
}

// borrowMut acquires a write borrow and returns the function that releases it.
func (l *list[T]) borrowMut(operation string) (release func()) {
	l.requireExclusiveAccess(operation)

	l.writing = true

	return func() { l.writing = false }
}

// requireExclusiveAccess panics if any borrow of the list is active.
func (l *list[T]) requireExclusiveAccess(operation string) {
	if l.writing || l.readers > 0 {
		panic(ierrors.Wrapf(ErrBorrowConflict, "%s called while the list is borrowed (readers=%d, writing=%t)",
			operation, l.readers, l.writing,
		))
	}
}

// shrinkIfNeeded compacts the arena if the shrinking conditions have been reached.
func (l *list[T]) shrinkIfNeeded() {
	if l.shouldShrink() {
		l.head, l.tail = l.arena.compact(l.head, l.len)
	}
}

// shouldShrink checks if the conditions to compact the arena are met.
func (l *list[T]) shouldShrink() bool {
	// negative thresholds are treated as disabled
	ratio := lo.Max(l.options.ShrinkingThresholdRatio, 0)
	count := lo.Max(l.options.ShrinkingThresholdCount, 0)
	freeCount := l.arena.freeCount

	// check if one of the conditions was defined, otherwise never shrink
	if ratio == 0.0 && count == 0 {
		return false
	}

	if freeCount == 0 {
		return false
	}

	// an empty list satisfies every ratio
	if ratio != 0.0 && l.len != 0 && float32(freeCount)/float32(l.len) < ratio {
		return false
	}

	return count == 0 || freeCount >= count
}

// code contract - make sure the type implements the interface.
var _ List[int] = &list[int]{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
