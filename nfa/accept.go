package nfa

import (
	"sort"

	"github.com/coregx/automata/internal/grapheme"
	"github.com/coregx/automata/internal/sparse"
)

// Accepts runs the automaton over the input tokens and reports whether any
// state of the final frontier is accepting. The frontier starts as the
// ε-closure of the initial state and is re-closed after every step. A token
// that is not in the alphabet rejects the whole input.
func (n *NFA) Accepts(input []string) bool {
	current := sparse.NewSet(len(n.states))
	next := sparse.NewSet(len(n.states))
	n.closeInto(current, n.initial)

	for _, sym := range input {
		i := n.SymbolIndex(sym)
		if i < 0 {
			return false
		}
		next.Clear()
		for _, from := range current.Dense() {
			for _, t := range n.states[from].transitions[i] {
				n.closeInto(next, t)
			}
		}
		current, next = next, current
	}

	for _, id := range current.Dense() {
		if n.states[id].accepting {
			return true
		}
	}
	return false
}

// AcceptsGraphemes segments s into extended grapheme clusters and treats the
// resulting sequence as input tokens.
func (n *NFA) AcceptsGraphemes(s string) bool {
	return n.Accepts(grapheme.Split(s))
}

// EpsilonClosure returns the smallest set of states containing the seeds and
// closed under the ε-transition relation, as sorted state IDs.
func (n *NFA) EpsilonClosure(seeds ...StateID) []StateID {
	set := sparse.NewSet(len(n.states))
	n.closeInto(set, seeds...)
	ids := make([]StateID, 0, set.Len())
	for _, v := range set.Dense() {
		ids = append(ids, StateID(v))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// closeInto inserts the seeds and everything ε-reachable from them into set.
// The sparse set's dense array doubles as the worklist.
func (n *NFA) closeInto(set *sparse.Set, seeds ...StateID) {
	start := set.Len()
	for _, s := range seeds {
		set.Insert(uint32(s))
	}
	for i := start; i < set.Len(); i++ {
		for _, t := range n.states[set.At(i)].epsilon {
			set.Insert(uint32(t))
		}
	}
}
