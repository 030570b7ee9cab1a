// Package sparse provides a sparse set of state IDs for efficient membership testing.
//
// A sparse set supports O(1) insertion, membership testing and clearing while
// maintaining a dense list of elements in insertion order. The automata engines
// use it for ε-closure worklists, NFA frontiers during acceptance testing, and
// visited sets during breadth-first traversals.
package sparse

// Set is a set of uint32 values drawn from a bounded universe.
// It keeps both a sparse array (for membership testing) and a dense array
// (for ordered iteration). The dense array doubles as a worklist: elements
// inserted while iterating are visited too, which is exactly the traversal
// order a closure computation needs.
type Set struct {
	sparse []uint32 // maps value -> index in dense
	dense  []uint32 // the values, in insertion order
}

// NewSet creates a sparse set able to hold values in [0, universe).
func NewSet(universe int) *Set {
	return &Set{
		sparse: make([]uint32, universe),
		dense:  make([]uint32, 0, universe),
	}
}

// Insert adds a value to the set and reports whether it was newly added.
// Inserting a value already present is a no-op. Panics if value >= universe.
func (s *Set) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether the value is in the set.
func (s *Set) Contains(value uint32) bool {
	if int(value) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[value]
	return int(idx) < len(s.dense) && s.dense[idx] == value
}

// Clear removes all elements in O(1) time. The capacity is retained.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// Dense returns the elements in insertion order.
// The returned slice is valid until the next mutation.
func (s *Set) Dense() []uint32 {
	return s.dense
}

// At returns the i-th inserted element. Used when the dense array is
// consumed as a worklist while new elements are still being inserted.
func (s *Set) At(i int) uint32 {
	return s.dense[i]
}
