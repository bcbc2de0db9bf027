package singly

import "github.com/iotaledger/hive.go/ierrors"

// IntoIter is a consuming iterator that pops the elements of a Stack that it took ownership of.
type IntoIter[T any] struct {
	stack *linkedStack[T]
}

// HasNext returns true if there is another element that can be requested via the Next method.
func (i *IntoIter[T]) HasNext() bool {
	return !i.stack.IsEmpty()
}

// Next removes and returns the next element. The method panics if there is no next element.
func (i *IntoIter[T]) Next() T {
	value, exists := i.stack.Pop()
	if !exists {
		panic(ErrIteratorExhausted)
	}

	return value
}

// Iter walks the elements of a Stack from the top to the bottom. It panics with ErrStaleIterator if the Stack is
// modified after the Iter was created.
type Iter[T any] struct {
	stack         *linkedStack[T]
	current       *node[T]
	modifications uint64
}

// HasNext returns true if there is another element that can be requested via the Next method.
func (i *Iter[T]) HasNext() bool {
	requireUnmodified(i.stack, i.modifications)

	return i.current != nil
}

// Next returns the next element. The method panics if there is no next element.
func (i *Iter[T]) Next() T {
	requireUnmodified(i.stack, i.modifications)

	if i.current == nil {
		panic(ErrIteratorExhausted)
	}

	value := i.current.value
	i.current = i.current.next

	return value
}

// IterMut walks pointers to the elements of a Stack from the top to the bottom. It panics with ErrStaleIterator if
// the Stack is modified after the IterMut was created.
type IterMut[T any] struct {
	stack         *linkedStack[T]
	current       *node[T]
	modifications uint64
}

// HasNext returns true if there is another element that can be requested via the Next method.
func (i *IterMut[T]) HasNext() bool {
	requireUnmodified(i.stack, i.modifications)

	return i.current != nil
}

// Next returns a pointer to the next element. The method panics if there is no next element.
func (i *IterMut[T]) Next() *T {
	requireUnmodified(i.stack, i.modifications)

	if i.current == nil {
		panic(ErrIteratorExhausted)
	}

	value := &i.current.value
	i.current = i.current.next

	return value
}

// requireUnmodified panics if the stack was structurally modified since the given modification count was taken.
func requireUnmodified[T any](stack *linkedStack[T], modifications uint64) {
	if stack.modifications != modifications {
		panic(ierrors.Wrapf(ErrStaleIterator, "iterator created at modification %d, stack is at %d",
			modifications, stack.modifications,
		))
	}
}
