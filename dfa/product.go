package dfa

import (
	"errors"
	"fmt"
)

// ErrAlphabetMismatch is returned by the product constructions when the two
// automata are not over the same alphabet.
var ErrAlphabetMismatch = errors.New("alphabet mismatch")

// ProductConstruction builds the product automaton of d and other. Its states
// are reachable pairs (a,b) advancing in lockstep; a pair accepts iff
// combine(a accepting, b accepting). The named Boolean operations are thin
// wrappers over this.
//
// The alphabets must contain the same symbols; other's columns are remapped
// when its declaration order differs. Returns ErrAlphabetMismatch otherwise.
func (d *DFA) ProductConstruction(other *DFA, combine func(a, b bool) bool) (*DFA, error) {
	remap, ok := alphabetRemap(d.alphabet, other.alphabet)
	if !ok {
		return nil, ErrAlphabetMismatch
	}

	b := NewBuilder(d.alphabet)
	ids := make(map[uint64]StateID)
	used := make(map[string]struct{})
	var queue [][2]StateID

	add := func(a, o StateID) StateID {
		key := uint64(a)<<32 | uint64(o)
		if id, ok := ids[key]; ok {
			return id
		}
		sa, so := &d.states[a], &other.states[o]
		name := fmt.Sprintf("(%s,%s)", sa.name, so.name)
		for {
			if _, clash := used[name]; !clash {
				break
			}
			name += "'"
		}
		used[name] = struct{}{}
		id := b.AddState(name, combine(sa.accepting, so.accepting))
		ids[key] = id
		queue = append(queue, [2]StateID{a, o})
		return id
	}

	b.SetInitial(add(d.initial, other.initial))
	for len(queue) > 0 {
		pair := queue[0]
		queue = queue[1:]
		from := ids[uint64(pair[0])<<32|uint64(pair[1])]
		for j := range d.alphabet {
			ta := d.states[pair[0]].transitions[j]
			to := other.states[pair[1]].transitions[remap[j]]
			b.SetTransition(from, j, add(ta, to))
		}
	}
	return b.Build()
}

// Union returns a DFA accepting the words accepted by d or other.
func (d *DFA) Union(other *DFA) (*DFA, error) {
	return d.ProductConstruction(other, func(a, b bool) bool { return a || b })
}

// Intersection returns a DFA accepting the words accepted by both d and other.
func (d *DFA) Intersection(other *DFA) (*DFA, error) {
	return d.ProductConstruction(other, func(a, b bool) bool { return a && b })
}

// Difference returns a DFA accepting the words accepted by d but not by other.
func (d *DFA) Difference(other *DFA) (*DFA, error) {
	return d.ProductConstruction(other, func(a, b bool) bool { return a && !b })
}

// SymmetricDifference returns a DFA accepting the words accepted by exactly
// one of d and other.
func (d *DFA) SymmetricDifference(other *DFA) (*DFA, error) {
	return d.ProductConstruction(other, func(a, b bool) bool { return a != b })
}

// alphabetRemap maps each position of a to the position of the same symbol in
// b. ok is false when the two alphabets are not the same symbol set.
func alphabetRemap(a, b []string) (remap []int, ok bool) {
	if len(a) != len(b) {
		return nil, false
	}
	index := make(map[string]int, len(b))
	for i, sym := range b {
		index[sym] = i
	}
	remap = make([]int, len(a))
	for i, sym := range a {
		j, found := index[sym]
		if !found {
			return nil, false
		}
		remap[i] = j
	}
	return remap, true
}
