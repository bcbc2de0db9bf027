package doubly

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/log"
)

// none is the index of an absent link.
const none = -1

// region slot /////////////////////////////////////////////////////////////////////////////////////////////////////////

// slot is a single element of the List together with the indices of its neighbors.
type slot[T any] struct {
	// value is the element that is stored in the slot.
	value T

	// prev and next are the indices of the neighboring slots (or none).
	prev, next int

	// inUse is true while the slot is allocated (a free slot only uses next to link the free-list).
	inUse bool
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region arena ////////////////////////////////////////////////////////////////////////////////////////////////////////

// arena owns all slots of a List and hands out stable indices that are used as links.
type arena[T any] struct {
	// slots is the table of all allocated and free slots.
	slots []slot[T]

	// free is the index of the first free slot (or none).
	free int

	// freeCount is the number of slots in the free-list.
	freeCount int

	// initialCapacity is the capacity that is restored when the arena is reset.
	initialCapacity int

	// logger is used to trace growth and compaction (optional).
	logger log.Logger
}

// newArena creates a new arena with the given preallocated capacity.
func newArena[T any](initialCapacity int, logger log.Logger) *arena[T] {
	initialCapacity = lo.Max(initialCapacity, 0)

	return &arena[T]{
		slots:           make([]slot[T], 0, initialCapacity),
		free:            none,
		initialCapacity: initialCapacity,
		logger:          logger,
	}
}

// alloc stores the value in an unlinked slot and returns its index. Free slots are reused before the table grows.
func (a *arena[T]) alloc(value T) int {
	if index := a.free; index != none {
		a.free = a.slots[index].next
		a.freeCount--
		a.slots[index] = slot[T]{value: value, prev: none, next: none, inUse: true}

		return index
	}

	previousCapacity := cap(a.slots)
	a.slots = append(a.slots, slot[T]{value: value, prev: none, next: none, inUse: true})
	if cap(a.slots) != previousCapacity {
		a.trace("arena grown", "capacity", cap(a.slots), "len", len(a.slots))
	}

	return len(a.slots) - 1
}

// at returns the slot with the given index.
func (a *arena[T]) at(index int) *slot[T] {
	return &a.slots[index]
}

// release moves the value out of a detached slot and returns the slot to the free-list.
func (a *arena[T]) release(index int) T {
	s := &a.slots[index]
	if !s.inUse {
		panic(ierrors.Wrapf(ErrInvariantViolation, "slot %d is not in use", index))
	}
	if s.prev != none || s.next != none {
		panic(ierrors.Wrapf(ErrInvariantViolation, "slot %d is still linked (prev=%d, next=%d)",
			index, s.prev, s.next,
		))
	}

	value := s.value

	// the zero value drops the reference to the payload
	*s = slot[T]{prev: none, next: a.free}
	a.free = index
	a.freeCount++

	return value
}

// compact rewrites the chain starting at head into a dense table in list order and returns the new endpoints.
func (a *arena[T]) compact(head, length int) (newHead, newTail int) {
	compacted := make([]slot[T], length, lo.Max(length, a.initialCapacity))
	for i, current := 0, head; current != none; i, current = i+1, a.slots[current].next {
		compacted[i] = slot[T]{
			value: a.slots[current].value,
			prev:  lo.Cond(i > 0, i-1, none),
			next:  lo.Cond(i < length-1, i+1, none),
			inUse: true,
		}
	}

	a.trace("arena compacted", "releasedSlots", a.freeCount, "len", length)

	a.slots = compacted
	a.free = none
	a.freeCount = 0

	if length == 0 {
		return none, none
	}

	return 0, length - 1
}

// reset drops all slots.
func (a *arena[T]) reset() {
	if len(a.slots) > 0 {
		a.trace("arena released", "capacity", cap(a.slots))
	}

	a.slots = make([]slot[T], 0, a.initialCapacity)
	a.free = none
	a.freeCount = 0
}

// trace emits a TRACE message if a logger was configured.
func (a *arena[T]) trace(msg string, args ...any) {
	if a.logger != nil {
		a.logger.LogTrace(msg, args...)
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
