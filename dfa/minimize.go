package dfa

import (
	"strconv"

	"github.com/coregx/automata/internal/conv"
	"github.com/coregx/automata/internal/sparse"
)

// reachableSet returns the states discoverable from the initial state, in
// BFS order over the transition table.
func (d *DFA) reachableSet() *sparse.Set {
	set := sparse.NewSet(len(d.states))
	set.Insert(uint32(d.initial))
	for i := 0; i < set.Len(); i++ {
		for _, t := range d.states[set.At(i)].transitions {
			set.Insert(uint32(t))
		}
	}
	return set
}

// UnreachableStates returns the names of states that cannot be reached from
// the initial state, in declaration order.
func (d *DFA) UnreachableStates() []string {
	set := d.reachableSet()
	var names []string
	for i := range d.states {
		if !set.Contains(uint32(i)) {
			names = append(names, d.states[i].name)
		}
	}
	return names
}

// HasReachableAcceptingState reports whether any accepting state is reachable
// from the initial state, i.e. whether the language is non-empty.
func (d *DFA) HasReachableAcceptingState() bool {
	set := d.reachableSet()
	for _, id := range set.Dense() {
		if d.states[id].accepting {
			return true
		}
	}
	return false
}

// RemoveUnreachableStates drops every state not discoverable from the initial
// state. Surviving states keep their relative order and are renumbered.
func (d *DFA) RemoveUnreachableStates() {
	set := d.reachableSet()
	if set.Len() == len(d.states) {
		return
	}

	remap := make([]StateID, len(d.states))
	kept := make([]State, 0, set.Len())
	for i := range d.states {
		if !set.Contains(uint32(i)) {
			continue
		}
		remap[i] = StateID(conv.IntToUint32(len(kept)))
		kept = append(kept, d.states[i])
	}
	for i := range kept {
		for j, t := range kept[i].transitions {
			kept[i].transitions[j] = remap[t]
		}
	}
	d.states = kept
	d.initial = remap[d.initial]
}

// partition refines the states into indistinguishability classes.
// It starts from the accepting / non-accepting split and refines until two
// states share a block iff all their transitions lead to a shared block.
// Blocks are numbered by first occurrence in state order, which makes every
// derived construction deterministic.
func (d *DFA) partition() ([]int, int) {
	blocks := make([]int, len(d.states))
	count := 0
	byFlag := [2]int{-1, -1}
	for i, s := range d.states {
		f := 0
		if s.accepting {
			f = 1
		}
		if byFlag[f] < 0 {
			byFlag[f] = count
			count++
		}
		blocks[i] = byFlag[f]
	}

	for {
		sig := make(map[string]int, count)
		next := make([]int, len(d.states))
		nextCount := 0
		var key []byte
		for i, s := range d.states {
			key = key[:0]
			key = strconv.AppendInt(key, int64(blocks[i]), 10)
			for _, t := range s.transitions {
				key = append(key, ',')
				key = strconv.AppendInt(key, int64(blocks[t]), 10)
			}
			b, ok := sig[string(key)]
			if !ok {
				b = nextCount
				nextCount++
				sig[string(key)] = b
			}
			next[i] = b
		}
		if nextCount == count {
			return next, nextCount
		}
		blocks, count = next, nextCount
	}
}

// EquivalenceClasses groups state names into indistinguishability classes.
// Classes appear in order of their first member; members keep declaration
// order.
func (d *DFA) EquivalenceClasses() [][]string {
	blocks, count := d.partition()
	classes := make([][]string, count)
	for i, s := range d.states {
		classes[blocks[i]] = append(classes[blocks[i]], s.name)
	}
	return classes
}

// Minimize reduces the automaton to its minimal equivalent form: unreachable
// states are removed, then each indistinguishability class collapses to one
// state. The surviving state takes the lexicographically smallest name of its
// class, so minimization of equal automata always yields equal results.
func (d *DFA) Minimize() {
	d.RemoveUnreachableStates()
	blocks, count := d.partition()
	if count == len(d.states) {
		return
	}

	names := make([]string, count)
	first := make([]int, count)
	for i := range first {
		first[i] = -1
	}
	for i, s := range d.states {
		b := blocks[i]
		if first[b] < 0 {
			first[b] = i
			names[b] = s.name
		} else if s.name < names[b] {
			names[b] = s.name
		}
	}

	merged := make([]State, count)
	for b := 0; b < count; b++ {
		src := &d.states[first[b]]
		transitions := make([]StateID, len(src.transitions))
		for j, t := range src.transitions {
			transitions[j] = StateID(conv.IntToUint32(blocks[t]))
		}
		merged[b] = State{
			name:        names[b],
			accepting:   src.accepting,
			transitions: transitions,
		}
	}
	d.states = merged
	d.initial = StateID(conv.IntToUint32(blocks[d.initial]))
}

// Invert flips the accepting flag of every state, complementing the language
// over the automaton's alphabet. Totality of the DFA makes this exact.
func (d *DFA) Invert() {
	for i := range d.states {
		d.states[i].accepting = !d.states[i].accepting
	}
}
