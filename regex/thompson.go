package regex

import (
	"fmt"
	"strconv"

	"github.com/coregx/automata/dfa"
	"github.com/coregx/automata/nfa"
)

// ToNFA compiles the regex into an ε-NFA by the Thompson construction.
// The automaton's alphabet consists of the literals of the regex in
// first-encountered order, with the ε column appended; its states are named
// s0, s1, … in creation order and the fragment combinators splice them
// together with ε-transitions only.
func (r *Regex) ToNFA() *nfa.NFA {
	c := &thompson{index: make(map[string]int)}
	f := c.compile(r)

	b := nfa.NewBuilder(c.symbols, true)
	for i := range c.states {
		b.AddState("s"+strconv.Itoa(i), false)
	}
	for i, s := range c.states {
		for sym := range c.symbols {
			for _, t := range s.trans[sym] {
				b.AddTransition(nfa.StateID(i), sym, nfa.StateID(t))
			}
		}
		for _, t := range s.eps {
			b.AddEpsilon(nfa.StateID(i), nfa.StateID(t))
		}
	}
	for _, a := range f.accepting {
		b.SetAccepting(nfa.StateID(a), true)
	}
	b.SetInitial(nfa.StateID(f.initial))

	n, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("regex: Thompson construction produced an invalid NFA: %v", err))
	}
	return n
}

// ToDFA compiles the regex to a DFA: Thompson construction followed by the
// subset construction. The result is not minimized.
func (r *Regex) ToDFA() *dfa.DFA {
	return r.ToNFA().ToDFA()
}

// thompson accumulates states while fragments are composed. Transitions are
// collected symbol-indexed and replayed into an nfa.Builder once the full
// alphabet is known.
type thompson struct {
	symbols []string
	index   map[string]int
	states  []tstate
}

type tstate struct {
	trans map[int][]int
	eps   []int
}

// frag is a partial automaton: an entry state and the set of states a match
// may end in. Combinators splice fragments by ε-linking accepting states to
// entry states.
type frag struct {
	initial   int
	accepting []int
}

func (c *thompson) add() int {
	c.states = append(c.states, tstate{})
	return len(c.states) - 1
}

func (c *thompson) link(from, to int) {
	c.states[from].eps = append(c.states[from].eps, to)
}

func (c *thompson) symbol(sym string) int {
	if i, ok := c.index[sym]; ok {
		return i
	}
	i := len(c.symbols)
	c.symbols = append(c.symbols, sym)
	c.index[sym] = i
	return i
}

func (c *thompson) compile(r *Regex) frag {
	switch r.kind {
	case KindZero:
		entry := c.add()
		c.add()
		return frag{initial: entry}

	case KindEmpty:
		s := c.add()
		return frag{initial: s, accepting: []int{s}}

	case KindLiteral:
		entry := c.add()
		exit := c.add()
		sym := c.symbol(r.literal)
		s := &c.states[entry]
		if s.trans == nil {
			s.trans = make(map[int][]int)
		}
		s.trans[sym] = append(s.trans[sym], exit)
		return frag{initial: entry, accepting: []int{exit}}

	case KindConcat:
		f := c.compile(r.children[0])
		for _, child := range r.children[1:] {
			g := c.compile(child)
			for _, a := range f.accepting {
				c.link(a, g.initial)
			}
			f = frag{initial: f.initial, accepting: g.accepting}
		}
		return f

	case KindAlt:
		entry := c.add()
		var accepting []int
		for _, child := range r.children {
			g := c.compile(child)
			c.link(entry, g.initial)
			accepting = append(accepting, g.accepting...)
		}
		return frag{initial: entry, accepting: accepting}

	case KindStar:
		return c.star(r.children[0])

	case KindPlus:
		// a+ compiles as a·a*, which keeps every construction finite.
		f := c.compile(r.children[0])
		g := c.star(r.children[0])
		for _, a := range f.accepting {
			c.link(a, g.initial)
		}
		return frag{initial: f.initial, accepting: g.accepting}

	default:
		panic(fmt.Sprintf("regex: unknown node kind %d", r.kind))
	}
}

// star builds the fragment for child*: a fresh state that is both entry and
// exit, with ε into the child and ε back from the child's accepting states.
func (c *thompson) star(child *Regex) frag {
	loop := c.add()
	g := c.compile(child)
	c.link(loop, g.initial)
	for _, a := range g.accepting {
		c.link(a, loop)
	}
	return frag{initial: loop, accepting: []int{loop}}
}
