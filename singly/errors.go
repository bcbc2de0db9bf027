package singly

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrIteratorExhausted is raised (as a panic) if Next is called on an iterator without remaining elements.
	ErrIteratorExhausted = ierrors.New("no next element found in iterator")

	// ErrStaleIterator is raised (as a panic) if a borrowing iterator is used after its Stack was modified.
	ErrStaleIterator = ierrors.New("stack was modified after the iterator was created")
)
