package nfa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coregx/automata/dfa"
	"github.com/coregx/automata/internal/sparse"
)

// ToDFA converts the NFA into an equivalent DFA by the subset construction.
// DFA states are the subsets of NFA states discovered lazily from the
// ε-closure of the initial state; a subset accepts iff it contains an
// accepting NFA state. Subsets are named "{q1 q2}" with members in state
// order; the empty subset, reached when a symbol has no transition, is "{}".
// The resulting DFA's alphabet is the NFA's alphabet without ε.
func (n *NFA) ToDFA() *dfa.DFA {
	b := dfa.NewBuilder(n.alphabet)
	ids := make(map[string]dfa.StateID)
	var queue [][]StateID

	add := func(subset []StateID) dfa.StateID {
		key := subsetKey(subset)
		if id, ok := ids[key]; ok {
			return id
		}
		accepting := false
		for _, q := range subset {
			if n.states[q].accepting {
				accepting = true
				break
			}
		}
		id := b.AddState(n.subsetName(subset), accepting)
		ids[key] = id
		queue = append(queue, subset)
		return id
	}

	b.SetInitial(add(n.EpsilonClosure(n.initial)))
	scratch := sparse.NewSet(len(n.states))
	for len(queue) > 0 {
		subset := queue[0]
		queue = queue[1:]
		from := ids[subsetKey(subset)]
		for j := range n.alphabet {
			scratch.Clear()
			for _, q := range subset {
				for _, t := range n.states[q].transitions[j] {
					n.closeInto(scratch, t)
				}
			}
			target := make([]StateID, 0, scratch.Len())
			for _, v := range scratch.Dense() {
				target = append(target, StateID(v))
			}
			sort.Slice(target, func(a, b int) bool { return target[a] < target[b] })
			b.SetTransition(from, j, add(target))
		}
	}

	d, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("nfa: subset construction produced an invalid DFA: %v", err))
	}
	return d
}

// subsetKey renders sorted state IDs into a map key.
func subsetKey(subset []StateID) string {
	var sb strings.Builder
	for i, q := range subset {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", q)
	}
	return sb.String()
}

// subsetName renders the canonical DFA state name for a subset of NFA states.
func (n *NFA) subsetName(subset []StateID) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, q := range subset {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(n.states[q].name)
	}
	sb.WriteByte('}')
	return sb.String()
}

// FromDFA embeds a DFA into an NFA: every transition becomes a singleton
// target set and there are no ε-moves.
func FromDFA(d *dfa.DFA) *NFA {
	alphabet := d.Alphabet()
	states := make([]State, d.States())
	for i := range states {
		s := d.State(dfa.StateID(i))
		transitions := make([][]StateID, len(alphabet))
		for j := range alphabet {
			transitions[j] = []StateID{StateID(s.Target(j))}
		}
		states[i] = State{
			name:        s.Name(),
			accepting:   s.IsAccepting(),
			transitions: transitions,
		}
	}
	return newNFA(alphabet, -1, "", states, StateID(d.Initial()))
}

// EquivalentTo reports whether n and other accept the same language, by
// comparing the minimal forms of their subset constructions. Like the DFA
// version it is total across differing alphabets.
func (n *NFA) EquivalentTo(other *NFA) bool {
	return n.ToDFA().EquivalentTo(other.ToDFA())
}
