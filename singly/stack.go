package singly

// Stack is a stack of elements that are linked from the top to the bottom.
type Stack[T any] interface {
	// Push pushes an element onto the top of this Stack.
	Push(element T)

	// Pop removes and returns the top element of this Stack and whether the element exists.
	Pop() (T, bool)

	// Peek returns the top element of this Stack without removing it.
	Peek() (T, bool)

	// PeekMut returns a pointer to the top element of this Stack that stays valid until the element is popped.
	PeekMut() (*T, bool)

	// IntoIter moves all elements of this Stack into a consuming iterator and leaves the Stack empty.
	IntoIter() *IntoIter[T]

	// Iter returns an iterator over the elements of this Stack from the top to the bottom.
	Iter() *Iter[T]

	// IterMut returns an iterator over pointers to the elements of this Stack from the top to the bottom.
	IterMut() *IterMut[T]

	// Values returns a slice of all elements from the top to the bottom.
	Values() []T

	// Clear removes all elements from this Stack.
	Clear()

	// Size returns the amount of elements in this Stack.
	Size() int

	// IsEmpty checks if this Stack is empty.
	IsEmpty() bool

	// String returns a human-readable version of this Stack.
	String() string
}

// New returns a new empty Stack.
func New[T any]() Stack[T] {
	return newLinkedStack[T]()
}
