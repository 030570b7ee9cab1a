package nfa

import (
	"errors"
	"fmt"
)

// ErrAlphabetMismatch is returned by the product constructions when the two
// automata are not over the same (non-ε) alphabet.
var ErrAlphabetMismatch = errors.New("alphabet mismatch")

// ProductConstruction builds the product automaton of n and other. Pair
// states (a,b) advance in lockstep with set-valued transitions: the targets
// of a pair on a symbol are all combinations of the two component targets.
// A pair accepts iff combine(a accepting, b accepting).
//
// ε-moves are eliminated on working copies first, and a component with no
// transition on a symbol is routed to an implicit dead state, so that the
// lockstep never starves one side. Returns ErrAlphabetMismatch when the
// alphabets are not the same symbol set.
//
// The combiner is applied to single runs: operations relying on the absence
// of an accepting run (complements, differences) are not expressible this
// way for nondeterministic automata.
func (n *NFA) ProductConstruction(other *NFA, combine func(a, b bool) bool) (*NFA, error) {
	remap, ok := alphabetRemap(n.alphabet, other.alphabet)
	if !ok {
		return nil, ErrAlphabetMismatch
	}

	a, b := n, other
	if a.HasEpsilonMoves() {
		a = a.Clone()
		a.RemoveEpsilonMoves()
	}
	if b.HasEpsilonMoves() {
		b = b.Clone()
		b.RemoveEpsilonMoves()
	}

	// One virtual sink per side keeps the pair automaton total.
	sinkA := StateID(len(a.states))
	sinkB := StateID(len(b.states))
	sideA := side{states: a.states, sink: sinkA, sinkName: sinkName(a.states)}
	sideB := side{states: b.states, sink: sinkB, sinkName: sinkName(b.states)}

	builder := NewBuilder(n.alphabet, false)
	ids := make(map[uint64]StateID)
	used := make(map[string]struct{})
	var queue [][2]StateID

	add := func(x, y StateID) StateID {
		key := uint64(x)<<32 | uint64(y)
		if id, ok := ids[key]; ok {
			return id
		}
		name := fmt.Sprintf("(%s,%s)", sideA.name(x), sideB.name(y))
		for {
			if _, clash := used[name]; !clash {
				break
			}
			name += "'"
		}
		used[name] = struct{}{}
		id := builder.AddState(name, combine(sideA.accepting(x), sideB.accepting(y)))
		ids[key] = id
		queue = append(queue, [2]StateID{x, y})
		return id
	}

	builder.SetInitial(add(a.initial, b.initial))
	for len(queue) > 0 {
		pair := queue[0]
		queue = queue[1:]
		from := ids[uint64(pair[0])<<32|uint64(pair[1])]
		for j := range n.alphabet {
			for _, x := range sideA.targets(pair[0], j) {
				for _, y := range sideB.targets(pair[1], remap[j]) {
					builder.AddTransition(from, j, add(x, y))
				}
			}
		}
	}

	product, err := builder.Build()
	if err != nil {
		panic(fmt.Sprintf("nfa: product construction produced an invalid NFA: %v", err))
	}
	return product, nil
}

// Union returns an NFA accepting the words accepted by n or other.
func (n *NFA) Union(other *NFA) (*NFA, error) {
	return n.ProductConstruction(other, func(a, b bool) bool { return a || b })
}

// Intersection returns an NFA accepting the words accepted by both n and
// other.
func (n *NFA) Intersection(other *NFA) (*NFA, error) {
	return n.ProductConstruction(other, func(a, b bool) bool { return a && b })
}

// side is one component of a pair construction, extended with a virtual dead
// state so that every symbol has at least one target.
type side struct {
	states   []State
	sink     StateID
	sinkName string
}

func (s *side) targets(id StateID, symbol int) []StateID {
	if id == s.sink {
		return []StateID{s.sink}
	}
	set := s.states[id].transitions[symbol]
	if len(set) == 0 {
		return []StateID{s.sink}
	}
	return set
}

func (s *side) accepting(id StateID) bool {
	return id != s.sink && s.states[id].accepting
}

func (s *side) name(id StateID) string {
	if id == s.sink {
		return s.sinkName
	}
	return s.states[id].name
}

// sinkName derives a dead-state name that collides with no existing state.
func sinkName(states []State) string {
	name := "∅"
	for {
		clash := false
		for i := range states {
			if states[i].name == name {
				clash = true
				break
			}
		}
		if !clash {
			return name
		}
		name += "'"
	}
}

// alphabetRemap maps each position of a to the position of the same symbol
// in b. ok is false when the two alphabets are not the same symbol set.
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
