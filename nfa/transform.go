package nfa

import (
	"sort"

	"github.com/coregx/automata/internal/conv"
	"github.com/coregx/automata/internal/sparse"
)

// RemoveEpsilonMoves rewrites the automaton in place into an equivalent NFA
// without ε-transitions. Each state's new transitions on a symbol are the
// union over its ε-closure of the old transitions, sorted; a state becomes
// accepting iff its ε-closure contains an accepting state. The ε column is
// dropped, so HasEpsilonMoves reports false afterwards.
func (n *NFA) RemoveEpsilonMoves() {
	closures := make([][]StateID, len(n.states))
	for i := range n.states {
		closures[i] = n.EpsilonClosure(StateID(conv.IntToUint32(i)))
	}

	scratch := sparse.NewSet(len(n.states))
	states := make([]State, len(n.states))
	for i := range n.states {
		s := &n.states[i]
		accepting := s.accepting
		for _, q := range closures[i] {
			if n.states[q].accepting {
				accepting = true
				break
			}
		}
		transitions := make([][]StateID, len(n.alphabet))
		for j := range n.alphabet {
			scratch.Clear()
			for _, q := range closures[i] {
				for _, t := range n.states[q].transitions[j] {
					scratch.Insert(uint32(t))
				}
			}
			set := make([]StateID, 0, scratch.Len())
			for _, v := range scratch.Dense() {
				set = append(set, StateID(v))
			}
			sort.Slice(set, func(a, b int) bool { return set[a] < set[b] })
			transitions[j] = set
		}
		states[i] = State{
			name:        s.name,
			accepting:   accepting,
			transitions: transitions,
		}
	}

	n.states = states
	n.epsilonCol = -1
	n.epsilonSym = ""
}

// reachableSet returns the states discoverable from the initial state over
// both general and ε-transitions, in BFS order.
func (n *NFA) reachableSet() *sparse.Set {
	set := sparse.NewSet(len(n.states))
	set.Insert(uint32(n.initial))
	for i := 0; i < set.Len(); i++ {
		s := &n.states[set.At(i)]
		for _, targets := range s.transitions {
			for _, t := range targets {
				set.Insert(uint32(t))
			}
		}
		for _, t := range s.epsilon {
			set.Insert(uint32(t))
		}
	}
	return set
}

// UnreachableStates returns the names of states that cannot be reached from
// the initial state, in declaration order.
func (n *NFA) UnreachableStates() []string {
	set := n.reachableSet()
	var names []string
	for i := range n.states {
		if !set.Contains(uint32(i)) {
			names = append(names, n.states[i].name)
		}
	}
	return names
}

// RemoveUnreachableStates drops every state not discoverable from the
// initial state. Surviving states keep their relative order and are
// renumbered.
func (n *NFA) RemoveUnreachableStates() {
	set := n.reachableSet()
	if set.Len() == len(n.states) {
		return
	}

	remap := make([]StateID, len(n.states))
	kept := make([]State, 0, set.Len())
	for i := range n.states {
		if !set.Contains(uint32(i)) {
			continue
		}
		remap[i] = StateID(conv.IntToUint32(len(kept)))
		kept = append(kept, n.states[i])
	}
	for i := range kept {
		for j, targets := range kept[i].transitions {
			for k, t := range targets {
				kept[i].transitions[j][k] = remap[t]
			}
		}
		for k, t := range kept[i].epsilon {
			kept[i].epsilon[k] = remap[t]
		}
	}
	n.states = kept
	n.initial = remap[n.initial]
}
