// Package dfa implements deterministic finite automata over an arbitrary
// alphabet of string tokens.
//
// A DFA is created by validating a parsed transition table or through a
// Builder. Once created it supports acceptance testing, step-by-step
// evaluation, minimization, complementation, equivalence checking and the
// Boolean product constructions (union, intersection, difference, symmetric
// difference).
//
// Basic usage:
//
//	d, err := dfa.FromTable(`
//	       a  b  c
//	→ * s0 s1 s0 s2
//	    s1 s2 s1 s1
//	  * s2 s2 s2 s2
//	`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d.Accepts([]string{"a", "b", "c", "c", "a"}) // true
//	d.AcceptsGraphemes("abbc")                   // false
//
// All operations are deterministic: given the same input table, every derived
// automaton comes out with the same state order and naming.
package dfa

import (
	"github.com/coregx/automata/internal/conv"
	"github.com/coregx/automata/parser"
)

// StateID identifies a state by its position in the automaton's state vector.
type StateID uint32

// InvalidState is the ID of no state. A Builder uses it for transitions that
// have not been set yet.
const InvalidState StateID = 0xFFFFFFFF

// State is a single DFA state. Its transitions are indexed by alphabet
// position and are always total: exactly one target per symbol.
type State struct {
	name        string
	accepting   bool
	transitions []StateID
}

// Name returns the state's name.
func (s *State) Name() string {
	return s.name
}

// IsAccepting reports whether the state is accepting.
func (s *State) IsAccepting() bool {
	return s.accepting
}

// Target returns the state reached on the symbol with the given alphabet
// position.
func (s *State) Target(symbol int) StateID {
	return s.transitions[symbol]
}

// DFA is a deterministic finite automaton. The zero value is not usable;
// construct one with FromTable, FromParsed or a Builder.
type DFA struct {
	alphabet []string
	states   []State
	initial  StateID
	symbols  map[string]int
}

// newDFA wraps raw parts into a DFA and indexes the alphabet.
// Callers guarantee well-formedness.
func newDFA(alphabet []string, states []State, initial StateID) *DFA {
	d := &DFA{
		alphabet: alphabet,
		states:   states,
		initial:  initial,
	}
	d.reindex()
	return d
}

func (d *DFA) reindex() {
	d.symbols = make(map[string]int, len(d.alphabet))
	for i, sym := range d.alphabet {
		d.symbols[sym] = i
	}
}

// FromTable parses and validates a DFA transition table.
func FromTable(text string) (*DFA, error) {
	p, err := parser.ParseDFA(text)
	if err != nil {
		return nil, err
	}
	return FromParsed(p)
}

// FromParsed validates a parsed table and materializes the DFA.
//
// The checks run in a fixed order and the first violation wins: alphabet
// soundness, state-name uniqueness, exactly one initial state, resolvable
// state references, and row width. Errors are *parser.ValidationError values
// carrying the offending identifier.
func FromParsed(p *parser.ParsedDFA) (*DFA, error) {
	seen := make(map[string]struct{}, len(p.Alphabet))
	for _, sym := range p.Alphabet {
		if isEpsilon(sym) {
			return nil, &parser.ValidationError{Err: parser.ErrEpsilonInDFA, Ident: sym}
		}
		if _, dup := seen[sym]; dup {
			return nil, &parser.ValidationError{Err: parser.ErrDuplicateAlphabetSymbol, Ident: sym}
		}
		seen[sym] = struct{}{}
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
		for _, target := range row.Transitions {
			if _, ok := index[target]; !ok {
				return nil, &parser.ValidationError{
					Err:   parser.ErrUnknownStateReference,
					Ident: target,
					State: row.Name,
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
		transitions := make([]StateID, len(row.Transitions))
		for j, target := range row.Transitions {
			transitions[j] = StateID(conv.IntToUint32(index[target]))
		}
		states[i] = State{
			name:        row.Name,
			accepting:   row.Accepting,
			transitions: transitions,
		}
	}

	alphabet := make([]string, len(p.Alphabet))
	copy(alphabet, p.Alphabet)
	return newDFA(alphabet, states, StateID(conv.IntToUint32(initial))), nil
}

// isEpsilon reports whether the symbol denotes the empty move.
func isEpsilon(sym string) bool {
	return sym == "ε" || sym == "eps"
}

// Alphabet returns the alphabet in declaration order.
// The returned slice is shared and must not be modified.
func (d *DFA) Alphabet() []string {
	return d.alphabet
}

// States returns the number of states.
func (d *DFA) States() int {
	return len(d.states)
}

// State returns the state with the given ID, or nil if the ID is invalid.
func (d *DFA) State(id StateID) *State {
	if int(id) >= len(d.states) {
		return nil
	}
	return &d.states[id]
}

// Initial returns the ID of the initial state.
func (d *DFA) Initial() StateID {
	return d.initial
}

// SymbolIndex returns the alphabet position of the symbol,
// or -1 if the symbol is not in the alphabet.
func (d *DFA) SymbolIndex(symbol string) int {
	if i, ok := d.symbols[symbol]; ok {
		return i
	}
	return -1
}

// Clone returns a deep copy. The alphabet is shared: it is read-only for the
// lifetime of both automata.
func (d *DFA) Clone() *DFA {
	states := make([]State, len(d.states))
	for i, s := range d.states {
		transitions := make([]StateID, len(s.transitions))
		copy(transitions, s.transitions)
		states[i] = State{name: s.name, accepting: s.accepting, transitions: transitions}
	}
	return newDFA(d.alphabet, states, d.initial)
}

// Equal reports structural equality: same alphabet order, same states in the
// same order with the same names, flags and transitions. Structurally unequal
// automata may still accept the same language; see EquivalentTo.
func (d *DFA) Equal(other *DFA) bool {
	if len(d.alphabet) != len(other.alphabet) || len(d.states) != len(other.states) || d.initial != other.initial {
		return false
	}
	for i := range d.alphabet {
		if d.alphabet[i] != other.alphabet[i] {
			return false
		}
	}
	for i := range d.states {
		a, b := &d.states[i], &other.states[i]
		if a.name != b.name || a.accepting != b.accepting {
			return false
		}
		for j := range a.transitions {
			if a.transitions[j] != b.transitions[j] {
				return false
			}
		}
	}
	return true
}
