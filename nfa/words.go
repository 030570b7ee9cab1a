package nfa

import "github.com/coregx/automata/dfa"

// Words returns an iterator over the accepted language in
// length-lexicographic order: shorter words first, ties broken by the
// alphabet's declaration order. The iterator is lazy and the sequence ends
// only if the language is finite. It holds internal state and is not safe
// for concurrent use.
func (n *NFA) Words() *WordIterator {
	d := n.ToDFA()
	d.Minimize()

	live := liveStates(d)
	it := &WordIterator{d: d, live: live}
	if live[d.Initial()] {
		it.queue = append(it.queue, wordEntry{state: d.Initial()})
	}
	return it
}

// WordIterator enumerates the words of a regular language. Internally it
// walks the minimized DFA breadth-first, restricted to states from which an
// accepting state is still reachable: the walk runs dry exactly when the
// language is finite.
type WordIterator struct {
	d     *dfa.DFA
	live  []bool
	queue []wordEntry
}

type wordEntry struct {
	state dfa.StateID
	word  []string
}

// Next returns the next accepted word as a sequence of alphabet symbols.
// ok is false when the language is exhausted. The returned slice is owned by
// the caller.
func (it *WordIterator) Next() (word []string, ok bool) {
	alphabet := it.d.Alphabet()
	for len(it.queue) > 0 {
		e := it.queue[0]
		it.queue = it.queue[1:]
		for j, sym := range alphabet {
			t := it.d.State(e.state).Target(j)
			if !it.live[t] {
				continue
			}
			next := make([]string, len(e.word)+1)
			copy(next, e.word)
			next[len(e.word)] = sym
			it.queue = append(it.queue, wordEntry{state: t, word: next})
		}
		if it.d.State(e.state).IsAccepting() {
			return e.word, true
		}
	}
	return nil, false
}

// liveStates reports, per DFA state, whether an accepting state is reachable
// from it, via BFS over the reversed transition relation.
func liveStates(d *dfa.DFA) []bool {
	reverse := make([][]dfa.StateID, d.States())
	for i := 0; i < d.States(); i++ {
		s := d.State(dfa.StateID(i))
		for j := range d.Alphabet() {
			t := s.Target(j)
			reverse[t] = append(reverse[t], dfa.StateID(i))
		}
	}

	live := make([]bool, d.States())
	var queue []dfa.StateID
	for i := 0; i < d.States(); i++ {
		if d.State(dfa.StateID(i)).IsAccepting() {
			live[i] = true
			queue = append(queue, dfa.StateID(i))
		}
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, from := range reverse[id] {
			if !live[from] {
				live[from] = true
				queue = append(queue, from)
			}
		}
	}
	return live
}
