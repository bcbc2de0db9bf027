package singly

import (
	"fmt"

	"github.com/iotaledger/hive.go/stringify"
)

// node is an element of the linkedStack that exclusively owns the rest of the chain.
type node[T any] struct {
	value T
	next  *node[T]
}

// linkedStack implements a non-thread safe Stack as a chain of nodes.
type linkedStack[T any] struct {
	head *node[T]
	size int

	// modifications is increased on every structural change and used to detect stale iterators.
	modifications uint64
}

// newLinkedStack returns a new non-thread safe Stack.
func newLinkedStack[T any]() *linkedStack[T] {
	return new(linkedStack[T])
}

// Push pushes an element onto the top of this Stack.
func (s *linkedStack[T]) Push(element T) {
	s.head = &node[T]{value: element, next: s.head}
	s.size++
	s.modifications++
}

// Pop removes and returns the top element of this Stack.
func (s *linkedStack[T]) Pop() (value T, exists bool) {
	if s.IsEmpty() {
		return value, false
	}

	popped := s.head
	s.head = popped.next
	popped.next = nil
	s.size--
	s.modifications++

	return popped.value, true
}

// Peek returns the top element of this Stack without removing it.
func (s *linkedStack[T]) Peek() (value T, exists bool) {
	if s.IsEmpty() {
		return value, false
	}

	return s.head.value, true
}

// PeekMut returns a pointer to the top element of this Stack that stays valid until the element is popped.
func (s *linkedStack[T]) PeekMut() (value *T, exists bool) {
	if s.IsEmpty() {
		return nil, false
	}

	return &s.head.value, true
}

// IntoIter moves all elements of this Stack into a consuming iterator and leaves the Stack empty.
func (s *linkedStack[T]) IntoIter() *IntoIter[T] {
	iterator := &IntoIter[T]{
		stack: &linkedStack[T]{head: s.head, size: s.size},
	}

	if s.head != nil {
		s.head = nil
		s.size = 0
		s.modifications++
	}

	return iterator
}

// Iter returns an iterator over the elements of this Stack from the top to the bottom.
func (s *linkedStack[T]) Iter() *Iter[T] {
	return &Iter[T]{stack: s, current: s.head, modifications: s.modifications}
}

// IterMut returns an iterator over pointers to the elements of this Stack from the top to the bottom.
func (s *linkedStack[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{stack: s, current: s.head, modifications: s.modifications}
}

// Values returns a slice of all elements from the top to the bottom.
func (s *linkedStack[T]) Values() []T {
	values := make([]T, 0, s.size)
	for iterator := s.Iter(); iterator.HasNext(); {
		values = append(values, iterator.Next())
	}

	return values
}

// Clear removes all elements from this Stack by unlinking them one at a time.
func (s *linkedStack[T]) Clear() {
	if s.head != nil {
		s.modifications++
	}

	for s.head != nil {
		next := s.head.next
		s.head.next = nil
		s.head = next
	}

	s.size = 0
}

// Size returns the amount of elements in this Stack.
func (s *linkedStack[T]) Size() int {
	return s.size
}

// IsEmpty checks if this Stack is empty.
func (s *linkedStack[T]) IsEmpty() bool {
	return s.head == nil
}

// String returns a human-readable version of this Stack.
func (s *linkedStack[T]) String() string {
	return stringify.Struct("Stack",
		stringify.NewStructField("size", s.size),
		stringify.NewStructField("values", fmt.Sprint(s.Values())),
	)
}

// code contract - make sure the type implements the interface.
var _ Stack[int] = &linkedStack[int]{}
