package dfa

import "github.com/coregx/automata/internal/conv"

// EquivalentTo reports whether d and other accept the same language. It is
// total: automata over different alphabets are first lifted to the union
// alphabet, with the missing symbols routed to an implicit dead state. Both
// lifts are then minimized and compared up to state naming.
func (d *DFA) EquivalentTo(other *DFA) bool {
	union := unionAlphabet(d.alphabet, other.alphabet)
	a := d.liftTo(union)
	b := other.liftTo(union)
	a.Minimize()
	b.Minimize()
	return a.isomorphicTo(b)
}

// unionAlphabet returns a's symbols followed by b's symbols not in a.
func unionAlphabet(a, b []string) []string {
	union := make([]string, len(a), len(a)+len(b))
	copy(union, a)
	seen := make(map[string]struct{}, len(a))
	for _, sym := range a {
		seen[sym] = struct{}{}
	}
	for _, sym := range b {
		if _, ok := seen[sym]; !ok {
			seen[sym] = struct{}{}
			union = append(union, sym)
		}
	}
	return union
}

// liftTo returns a copy of d over the union alphabet. Symbols d does not know
// lead to a fresh dead state, so the recognized language is unchanged.
func (d *DFA) liftTo(union []string) *DFA {
	cols := make([]int, len(union))
	missing := false
	for i, sym := range union {
		cols[i] = d.SymbolIndex(sym)
		if cols[i] < 0 {
			missing = true
		}
	}

	dead := StateID(conv.IntToUint32(len(d.states)))
	states := make([]State, len(d.states), len(d.states)+1)
	for i := range d.states {
		s := &d.states[i]
		transitions := make([]StateID, len(union))
		for k, c := range cols {
			if c >= 0 {
				transitions[k] = s.transitions[c]
			} else {
				transitions[k] = dead
			}
		}
		states[i] = State{name: s.name, accepting: s.accepting, transitions: transitions}
	}
	if missing {
		transitions := make([]StateID, len(union))
		for k := range transitions {
			transitions[k] = dead
		}
		states = append(states, State{name: freshName(states, "∅"), transitions: transitions})
	}
	return newDFA(union, states, d.initial)
}

// freshName derives a name based on base that collides with no state in
// states.
func freshName(states []State, base string) string {
	name := base
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

// isomorphicTo reports whether two minimal DFAs over the same alphabet are
// identical up to state naming, by walking both in lockstep from their
// initial states.
func (d *DFA) isomorphicTo(other *DFA) bool {
	if len(d.states) != len(other.states) {
		return false
	}
	fwd := make([]StateID, len(d.states))
	rev := make([]StateID, len(d.states))
	for i := range fwd {
		fwd[i] = InvalidState
		rev[i] = InvalidState
	}

	pair := func(a, b StateID) bool {
		if fwd[a] != InvalidState || rev[b] != InvalidState {
			return fwd[a] == b && rev[b] == a
		}
		fwd[a] = b
		rev[b] = a
		return d.states[a].accepting == other.states[b].accepting
	}

	if !pair(d.initial, other.initial) {
		return false
	}
	queue := [][2]StateID{{d.initial, other.initial}}
	visited := map[uint64]struct{}{uint64(d.initial)<<32 | uint64(other.initial): {}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for j := range d.alphabet {
			ta := d.states[p[0]].transitions[j]
			tb := other.states[p[1]].transitions[j]
			if !pair(ta, tb) {
				return false
			}
			key := uint64(ta)<<32 | uint64(tb)
			if _, ok := visited[key]; !ok {
				visited[key] = struct{}{}
				queue = append(queue, [2]StateID{ta, tb})
			}
		}
	}
	return true
}
