package singly

import (
	"container/list"
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ierrors"
)

func BenchmarkList(b *testing.B) {
	stack := list.New()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		stack.PushFront(3)
	}
}

func BenchmarkStack(b *testing.B) {
	stack := New[int]()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		stack.Push(3)
	}
}

func TestLinkedStack_Basics(t *testing.T) {
	stack := newLinkedStack[int]()

	_, exists := stack.Pop()
	assert.False(t, exists, "stack should return false when its empty")

	stack.Push(1)
	stack.Push(2)
	stack.Push(3)

	requirePop(t, stack, 3)
	requirePop(t, stack, 2)

	stack.Push(4)
	stack.Push(5)

	requirePop(t, stack, 5)
	requirePop(t, stack, 4)
	requirePop(t, stack, 1)

	_, exists = stack.Pop()
	assert.False(t, exists, "stack should return false when its empty")
	assert.Nil(t, stack.head, "drained stack should not reference any node")
}

func TestLinkedStack_Push(t *testing.T) {
	stack := newLinkedStack[int]()

	assert.Equal(t, stack.Size(), 0, "stack should initially be empty")
	stack.Push(1)
	assert.Equal(t, stack.Size(), 1, "wrong stack size")
	stack.Push(2)
	assert.Equal(t, stack.Size(), 2, "wrong stack size")
	stack.Push(3)
	assert.Equal(t, stack.Size(), 3, "wrong stack size")
}

func TestLinkedStack_Peek(t *testing.T) {
	stack := newLinkedStack[int]()

	_, exists := stack.Peek()
	assert.False(t, exists, "stack should return false when its empty")
	_, exists = stack.PeekMut()
	assert.False(t, exists, "stack should return false when its empty")

	stack.Push(1)
	stack.Push(2)
	stack.Push(3)

	value, exists := stack.Peek()
	assert.True(t, exists, "stack should return true if its not empty")
	assert.Equal(t, 3, value, "wrong element at top of stack")

	pointer, exists := stack.PeekMut()
	require.True(t, exists, "stack should return true if its not empty")
	*pointer = 42

	value, exists = stack.Peek()
	assert.True(t, exists)
	assert.Equal(t, 42, value, "peek should see the mutated element")
	assert.Equal(t, stack.Size(), 3, "wrong stack size")

	requirePop(t, stack, 42)
}

func TestLinkedStack_IntoIter(t *testing.T) {
	stack := newLinkedStack[int]()
	stack.Push(1)
	stack.Push(2)
	stack.Push(3)

	iterator := stack.IntoIter()
	assert.True(t, stack.IsEmpty(), "stack should be empty after moving its elements into the iterator")

	var values []int
	for iterator.HasNext() {
		values = append(values, iterator.Next())
	}
	assert.Equal(t, []int{3, 2, 1}, values)
	requirePanicsWithError(t, ErrIteratorExhausted, func() { iterator.Next() })

	// the stack stays usable
	stack.Push(4)
	requirePop(t, stack, 4)
}

func TestLinkedStack_Iter(t *testing.T) {
	stack := newLinkedStack[int]()
	stack.Push(1)
	stack.Push(2)
	stack.Push(3)

	iterator := stack.Iter()
	assert.Equal(t, 3, iterator.Next())
	assert.Equal(t, 2, iterator.Next())
	assert.Equal(t, 1, iterator.Next())
	assert.False(t, iterator.HasNext())
	requirePanicsWithError(t, ErrIteratorExhausted, func() { iterator.Next() })

	// borrowing iterators start a fresh pass and leave the stack untouched
	assert.Equal(t, []int{3, 2, 1}, stack.Values())
	assert.True(t, stack.Iter().HasNext())
	assert.Equal(t, 3, stack.Size())
}

func TestLinkedStack_IterMut(t *testing.T) {
	stack := newLinkedStack[int]()
	stack.Push(1)
	stack.Push(2)
	stack.Push(3)

	for iterator := stack.IterMut(); iterator.HasNext(); {
		*iterator.Next() *= 10
	}
	assert.Equal(t, []int{30, 20, 10}, stack.Values())

	iterator := stack.IterMut()
	*iterator.Next() = 1
	assert.Equal(t, []int{1, 20, 10}, stack.Values())

	requirePanicsWithError(t, ErrIteratorExhausted, func() { newLinkedStack[int]().IterMut().Next() })
}

func TestLinkedStack_IterAfterPop(t *testing.T) {
	stack := newLinkedStack[int]()
	stack.Push(1)
	stack.Push(2)
	stack.Push(3)

	iterator := stack.Iter()
	assert.Equal(t, 3, iterator.Next())
	requirePop(t, stack, 3)
	requirePanicsWithError(t, ErrStaleIterator, func() { iterator.HasNext() })
	requirePanicsWithError(t, ErrStaleIterator, func() { iterator.Next() })

	mutableIterator := stack.IterMut()
	stack.Push(4)
	requirePanicsWithError(t, ErrStaleIterator, func() { mutableIterator.Next() })

	mutableIterator = stack.IterMut()
	stack.Clear()
	requirePanicsWithError(t, ErrStaleIterator, func() { mutableIterator.HasNext() })

	// popping or clearing an empty stack is not a modification
	iterator = stack.Iter()
	stack.Pop()
	stack.Clear()
	assert.False(t, iterator.HasNext())

	// a fresh pass sees the current elements
	stack.Push(2)
	stack.Push(1)
	assert.Equal(t, []int{1, 2}, stack.Values())
}

func TestLinkedStack_Clear(t *testing.T) {
	stack := newLinkedStack[int]()
	for i := 0; i < 100_000; i++ {
		stack.Push(i)
	}
	assert.Equal(t, stack.Size(), 100_000, "wrong stack size")

	stack.Clear()
	assert.Equal(t, stack.Size(), 0, "wrong stack size")
	assert.True(t, stack.IsEmpty(), "stack should be empty")
	_, exists := stack.Peek()
	assert.False(t, exists, "stack should return false when its empty")
	_, exists = stack.Pop()
	assert.False(t, exists, "stack should return false when its empty")
}

func TestLinkedStack_IsEmpty(t *testing.T) {
	stack := newLinkedStack[int]()

	assert.True(t, stack.IsEmpty(), "stack should be empty")
	stack.Push(1)
	assert.False(t, stack.IsEmpty(), "stack should not be empty")
	stack.Push(2)
	stack.Push(3)
	assert.False(t, stack.IsEmpty(), "stack should not be empty")
	stack.Clear()
	assert.True(t, stack.IsEmpty(), "stack should be empty")
}

func TestLinkedStack_String(t *testing.T) {
	stack := New[string]()
	stack.Push("a")
	stack.Push("b")

	assert.Contains(t, stack.String(), "Stack")
	assert.Contains(t, stack.String(), "[b a]")
}

func TestLinkedStack_Differential(t *testing.T) {
	random := rand.New(rand.NewSource(7))

	stack := newLinkedStack[int]()
	oracle := linkedliststack.New()

	for i := 0; i < 10_000; i++ {
		switch random.Intn(3) {
		case 0:
			stack.Push(i)
			oracle.Push(i)
		case 1:
			value, exists := stack.Pop()
			expectedValue, expectedExists := oracle.Pop()
			require.Equal(t, expectedExists, exists)
			if exists {
				require.Equal(t, expectedValue, value)
			}
		case 2:
			value, exists := stack.Peek()
			expectedValue, expectedExists := oracle.Peek()
			require.Equal(t, expectedExists, exists)
			if exists {
				require.Equal(t, expectedValue, value)
			}
		}

		require.Equal(t, oracle.Size(), stack.Size())
	}
}

func requirePop(t *testing.T, stack Stack[int], expectedValue int) {
	t.Helper()

	value, exists := stack.Pop()
	require.True(t, exists, "stack should return true if its not empty")
	require.Equal(t, expectedValue, value, "wrong element popped from stack")
}

func requirePanicsWithError(t *testing.T, target error, f func()) {
	t.Helper()

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered, "expected a panic")

		err, isError := recovered.(error)
		require.True(t, isError, "expected the panic value to be an error")
		require.True(t, ierrors.Is(err, target), "unexpected error: %v", err)
	}()

	f()
}
