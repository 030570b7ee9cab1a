package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetInsertContains(t *testing.T) {
	s := NewSet(8)
	assert.True(t, s.Insert(3))
	assert.True(t, s.Insert(0))
	assert.False(t, s.Insert(3), "duplicate insert should report false")

	assert.True(t, s.Contains(3))
	assert.True(t, s.Contains(0))
	assert.False(t, s.Contains(5))
	assert.False(t, s.Contains(100), "out of universe is never contained")
	assert.Equal(t, 2, s.Len())
}

func TestSetDenseKeepsInsertionOrder(t *testing.T) {
	s := NewSet(10)
	for _, v := range []uint32{7, 2, 9, 2, 0} {
		s.Insert(v)
	}
	assert.Equal(t, []uint32{7, 2, 9, 0}, s.Dense())
	assert.Equal(t, uint32(9), s.At(2))
}

func TestSetClear(t *testing.T) {
	s := NewSet(4)
	s.Insert(1)
	s.Insert(2)
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(1))
	assert.True(t, s.Insert(1), "reinsert after clear")
}

func TestSetWorklistGrowsDuringIteration(t *testing.T) {
	// The dense array can be consumed as a worklist while elements are
	// still being inserted, the way closure computations use it.
	s := NewSet(6)
	next := map[uint32][]uint32{0: {1, 2}, 1: {3}, 2: {3}, 3: {0}}
	s.Insert(0)
	for i := 0; i < s.Len(); i++ {
		for _, t := range next[s.At(i)] {
			s.Insert(t)
		}
	}
	assert.Equal(t, []uint32{0, 1, 2, 3}, s.Dense())
}
