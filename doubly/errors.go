package doubly

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrInvariantViolation is raised (as a panic) if a slot is released while it is still linked into the list.
	ErrInvariantViolation = ierrors.New("list invariant violated")

	// ErrBorrowConflict is raised (as a panic) if an access conflicts with an active borrow of the list.
	ErrBorrowConflict = ierrors.New("conflicting borrow")

	// ErrStaleIterator is raised (as a panic) if an Iterator is used after its List was modified.
	ErrStaleIterator = ierrors.New("list was modified after the iterator was created")

	// ErrIteratorExhausted is raised (as a panic) if Next is called on an Iterator without remaining elements.
	ErrIteratorExhausted = ierrors.New("no next element found in iterator")
)
