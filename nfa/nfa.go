// Package nfa implements nondeterministic finite automata with optional
// ε-moves over an arbitrary alphabet of string tokens.
//
// An NFA is created by validating a parsed transition table, through a
// Builder, by embedding a DFA (FromDFA), or by compiling a regular
// expression. It supports acceptance testing via an ε-closed frontier,
// subset construction to a DFA, ε-elimination, product constructions,
// equivalence checking and enumeration of the accepted language in
// length-lexicographic order.
//
// Basic usage:
//
//	n, err := nfa.FromTable(`
//	     ε    a       b
//	→ s0 {}   {s1}    {s0 s2}
//	  s1 {s2} {s4}    {s3}
//	  s2 {}   {s1 s4} {s3}
//	  s3 {s5} {s4 s5} {}
//	  s4 {s3} {}      {s5}
//	* s5 {}   {s5}    {s5}
//	`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n.Accepts([]string{"a", "b"}) // true
//	d := n.ToDFA()                // subset construction
//
// Transition targets keep the order in which they were written, so an NFA
// serialized with ToTable reparses to the structurally identical automaton.
package nfa

import (
	"github.com/coregx/automata/internal/conv"
	"github.com/coregx/automata/parser"
)

// StateID identifies a state by its position in the automaton's state vector.
type StateID uint32

// InvalidState is the ID of no state.
const InvalidState StateID = 0xFFFFFFFF

// State is a single NFA state. General transitions are indexed by alphabet
// position and hold an ordered, duplicate-free list of targets; ε-transitions
// live in their own list, distinct from the transition table.
type State struct {
	name        string
	accepting   bool
	transitions [][]StateID
	epsilon     []StateID
}

// Name returns the state's name.
func (s *State) Name() string {
	return s.name
}

// IsAccepting reports whether the state is accepting.
func (s *State) IsAccepting() bool {
	return s.accepting
}

// Targets returns the target states on the symbol with the given alphabet
// position, in declaration order. The slice must not be modified.
func (s *State) Targets(symbol int) []StateID {
	return s.transitions[symbol]
}

// Epsilon returns the ε-transition targets in declaration order.
// The slice must not be modified.
func (s *State) Epsilon() []StateID {
	return s.epsilon
}

// NFA is a nondeterministic finite automaton, possibly with ε-moves.
// The zero value is not usable; construct one with FromTable, FromParsed,
// FromDFA or a Builder.
type NFA struct {
	// alphabet holds the non-ε symbols in header order. When the source
	// table carried an ε column, epsilonCol records its position in the
	// header and epsilonSym how it was spelled ("ε" or "eps"), so the
	// serializer can reproduce the table exactly.
	alphabet   []string
	epsilonCol int
	epsilonSym string
	states     []State
	initial    StateID
	symbols    map[string]int
}

func newNFA(alphabet []string, epsilonCol int, epsilonSym string, states []State, initial StateID) *NFA {
	n := &NFA{
		alphabet:   alphabet,
		epsilonCol: epsilonCol,
		epsilonSym: epsilonSym,
		states:     states,
		initial:    initial,
	}
	n.reindex()
	return n
}

func (n *NFA) reindex() {
	n.symbols = make(map[string]int, len(n.alphabet))
	for i, sym := range n.alphabet {
		n.symbols[sym] = i
	}
}

// FromTable parses and validates an NFA transition table.
func FromTable(text string) (*NFA, error) {
	p, err := parser.ParseNFA(text)
	if err != nil {
		return nil, err
	}
	return FromParsed(p)
}

// FromParsed validates a parsed table and materializes the NFA.
//
// The checks run in a fixed order and the first violation wins: alphabet
// soundness (at most one ε column), state-name uniqueness, exactly one
// initial state, resolvable state references, and row width. Errors are
// *parser.ValidationError values carrying the offending identifier.
func FromParsed(p *parser.ParsedNFA) (*NFA, error) {
	alphabet := make([]string, 0, len(p.Alphabet))
	epsilonCol := -1
	epsilonSym := ""
	seen := make(map[string]struct{}, len(p.Alphabet))
	for i, sym := range p.Alphabet {
		if isEpsilon(sym) {
			if epsilonCol >= 0 {
				return nil, &parser.ValidationError{Err: parser.ErrDuplicateAlphabetSymbol, Ident: sym}
			}
			epsilonCol = i
			epsilonSym = sym
			continue
		}
		if _, dup := seen[sym]; dup {
			return nil, &parser.ValidationError{Err: parser.ErrDuplicateAlphabetSymbol, Ident: sym}
		}
		seen[sym] = struct{}{}
		alphabet = append(alphabet, sym)
	}

	index := make(map[string]int, len(p.States))
	for i, row := range p.States {
		if _, dup := index[row.Name]; dup {
			return nil, &parser.ValidationError{Err: parser.ErrDuplicateStateName, Ident: row.Name}
		}
		index[row.Name] = i
	}

	initial := -1
	for i, row := range p.States {
		if !row.Initial {
			continue
		}
		if initial >= 0 {
			return nil, &parser.ValidationError{Err: parser.ErrMultipleInitialStates, Ident: row.Name}
		}
		initial = i
	}
	if initial < 0 {
		return nil, &parser.ValidationError{Err: parser.ErrNoInitialState}
	}

	for _, row := range p.States {
		for _, set := range row.Transitions {
			for _, target := range set {
				if _, ok := index[target]; !ok {
					return nil, &parser.ValidationError{
						Err:   parser.ErrUnknownStateReference,
						Ident: target,
						State: row.Name,
					}
				}
			}
		}
	}

	for _, row := range p.States {
		if len(row.Transitions) != len(p.Alphabet) {
			return nil, &parser.ValidationError{
				Err:   parser.ErrRowWidthMismatch,
				State: row.Name,
				Got:   len(row.Transitions),
				Want:  len(p.Alphabet),
			}
		}
	}

	states := make([]State, len(p.States))
	for i, row := range p.States {
		st := State{
			name:        row.Name,
			accepting:   row.Accepting,
			transitions: make([][]StateID, len(alphabet)),
		}
		col := 0
		for j, set := range row.Transitions {
			targets := resolveSet(set, index)
			if j == epsilonCol {
				st.epsilon = targets
				continue
			}
			st.transitions[col] = targets
			col++
		}
		states[i] = st
	}

	return newNFA(alphabet, epsilonCol, epsilonSym, states, StateID(conv.IntToUint32(initial))), nil
}

// resolveSet converts a list of state names into IDs, preserving the textual
// order and dropping duplicate mentions.
func resolveSet(names []string, index map[string]int) []StateID {
	targets := make([]StateID, 0, len(names))
	seen := make(map[int]struct{}, len(names))
	for _, name := range names {
		i := index[name]
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		targets = append(targets, StateID(conv.IntToUint32(i)))
	}
	return targets
}

// isEpsilon reports whether the symbol denotes the empty move.
func isEpsilon(sym string) bool {
	return sym == "ε" || sym == "eps"
}

// Alphabet returns the non-ε alphabet in declaration order.
// The returned slice is shared and must not be modified.
func (n *NFA) Alphabet() []string {
	return n.alphabet
}

// States returns the number of states.
func (n *NFA) States() int {
	return len(n.states)
}

// State returns the state with the given ID, or nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// Initial returns the ID of the initial state.
func (n *NFA) Initial() StateID {
	return n.initial
}

// SymbolIndex returns the alphabet position of the symbol,
// or -1 if the symbol is not in the (non-ε) alphabet.
func (n *NFA) SymbolIndex(symbol string) int {
	if i, ok := n.symbols[symbol]; ok {
		return i
	}
	return -1
}

// HasEpsilonMoves reports whether any state has an ε-transition.
func (n *NFA) HasEpsilonMoves() bool {
	for i := range n.states {
		if len(n.states[i].epsilon) > 0 {
			return true
		}
	}
	return false
}

// Clone returns a deep copy. The alphabet is shared: it is read-only for the
// lifetime of both automata.
func (n *NFA) Clone() *NFA {
	states := make([]State, len(n.states))
	for i := range n.states {
		s := &n.states[i]
		transitions := make([][]StateID, len(s.transitions))
		for j, set := range s.transitions {
			transitions[j] = append([]StateID(nil), set...)
		}
		states[i] = State{
			name:        s.name,
			accepting:   s.accepting,
			transitions: transitions,
			epsilon:     append([]StateID(nil), s.epsilon...),
		}
	}
	return newNFA(n.alphabet, n.epsilonCol, n.epsilonSym, states, n.initial)
}

// Equal reports structural equality: same alphabet (including the position
// and spelling of the ε column), same states in the same order with the same
// names, flags and transition target order. Structurally unequal automata may
// still accept the same language; see EquivalentTo.
func (n *NFA) Equal(other *NFA) bool {
	if len(n.alphabet) != len(other.alphabet) ||
		n.epsilonCol != other.epsilonCol ||
		n.epsilonSym != other.epsilonSym ||
		len(n.states) != len(other.states) ||
		n.initial != other.initial {
		return false
	}
	for i := range n.alphabet {
		if n.alphabet[i] != other.alphabet[i] {
			return false
		}
	}
	for i := range n.states {
		a, b := &n.states[i], &other.states[i]
		if a.name != b.name || a.accepting != b.accepting {
			return false
		}
		if !equalIDs(a.epsilon, b.epsilon) {
			return false
		}
		for j := range a.transitions {
			if !equalIDs(a.transitions[j], b.transitions[j]) {
				return false
			}
		}
	}
	return true
}

func equalIDs(a, b []StateID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
