package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStack(t *testing.T) {
	s := New[int]()
	require.True(t, s.IsEmpty())
	require.Zero(t, s.Len())

	s = NewWithCapacity[int](64)
	require.True(t, s.IsEmpty())
	require.Equal(t, 64, s.values.Cap())
}

func TestStackLIFO(t *testing.T) {
	s := New[int]()

	for i := 0; i < 10; i++ {
		s.Insert(i)
	}

	require.False(t, s.IsEmpty())
	require.Equal(t, 10, s.Len())

	for i := 9; i >= 0; i-- {
		v, ok := s.Remove()
		require.True(t, ok)
		require.Equal(t, i, v)
	}

	require.True(t, s.IsEmpty())
}

func TestStackRemoveEmpty(t *testing.T) {
	s := New[string]()

	v, ok := s.Remove()
	require.False(t, ok)
	require.Empty(t, v)
	require.True(t, s.IsEmpty())

	s.Insert("a")
	s.Remove()

	_, ok = s.Remove()
	require.False(t, ok)
	require.True(t, s.IsEmpty())
}

func TestStackPeek(t *testing.T) {
	s := New[int]()

	_, ok := s.Peek()
	require.False(t, ok)

	s.Insert(1)
	s.Insert(2)

	v, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, 2, s.Len())
}

func TestStackContains(t *testing.T) {
	s := New[string]()
	require.False(t, s.Contains("a"))

	s.Insert("a")
	s.Insert("b")
	s.Insert("a")

	require.True(t, s.Contains("a"))
	require.True(t, s.Contains("b"))
	require.False(t, s.Contains("c"))

	// The first "a" removed leaves an equal valued duplicate behind.
	v, _ := s.Remove()
	require.Equal(t, "a", v)
	require.True(t, s.Contains("a"))

	s.Remove()
	s.Remove()
	require.False(t, s.Contains("a"))
	require.False(t, s.Contains("b"))
}

func TestStackClear(t *testing.T) {
	s := New[int]()

	for i := 0; i < 5; i++ {
		s.Insert(i)
	}

	s.Clear()
	require.True(t, s.IsEmpty())
	require.False(t, s.Contains(0))
}

func TestStackDrain(t *testing.T) {
	s := New[int]()

	for i := 0; i < 5; i++ {
		s.Insert(i)
	}

	var actual []int

	require.NoError(t, s.Drain(func(v int) error { actual = append(actual, v); return nil }))
	require.Equal(t, []int{4, 3, 2, 1, 0}, actual)
	require.True(t, s.IsEmpty())
}

func TestStackDrainWithError(t *testing.T) {
	s := New[int]()

	var run int

	require.NoError(t, s.Drain(func(_ int) error { run++; return assert.AnError }))
	require.Zero(t, run)

	for i := 0; i < 5; i++ {
		s.Insert(i)
	}

	err := s.Drain(func(_ int) error { run++; return assert.AnError })
	require.ErrorIs(t, err, assert.AnError)
	require.Equal(t, 1, run)
	require.Equal(t, 4, s.Len())
}
