package dfa

import "fmt"

// Builder constructs DFAs programmatically. The subset construction and the
// product constructions use it, and it is the way to assemble a DFA without
// going through the table format.
//
// States are added first; transitions may be set in any order afterwards.
// Build validates that the automaton is total before returning it.
type Builder struct {
	alphabet []string
	states   []State
	initial  StateID
}

// NewBuilder creates a builder for DFAs over the given alphabet.
// The alphabet slice is shared and must not be modified afterwards.
func NewBuilder(alphabet []string) *Builder {
	return &Builder{
		alphabet: alphabet,
		initial:  InvalidState,
	}
}

// AddState appends a state and returns its ID.
// All its transitions start out unset.
func (b *Builder) AddState(name string, accepting bool) StateID {
	id := StateID(len(b.states))
	transitions := make([]StateID, len(b.alphabet))
	for i := range transitions {
		transitions[i] = InvalidState
	}
	b.states = append(b.states, State{
		name:        name,
		accepting:   accepting,
		transitions: transitions,
	})
	return id
}

// SetTransition sets the target for the symbol at the given alphabet position.
func (b *Builder) SetTransition(from StateID, symbol int, to StateID) {
	b.states[from].transitions[symbol] = to
}

// SetInitial marks the initial state.
func (b *Builder) SetInitial(id StateID) {
	b.initial = id
}

// States returns the current number of states.
func (b *Builder) States() int {
	return len(b.states)
}

// Build validates and returns the constructed DFA: at least one state, an
// initial state, unique state names, and a valid target for every symbol of
// every state.
func (b *Builder) Build() (*DFA, error) {
	if len(b.states) == 0 {
		return nil, &BuildError{Message: "no states", State: InvalidState}
	}
	if b.initial == InvalidState || int(b.initial) >= len(b.states) {
		return nil, &BuildError{Message: "initial state not set", State: InvalidState}
	}
	names := make(map[string]struct{}, len(b.states))
	for i, s := range b.states {
		if _, dup := names[s.name]; dup {
			return nil, &BuildError{
				Message: fmt.Sprintf("duplicate state name %q", s.name),
				State:   StateID(i),
			}
		}
		names[s.name] = struct{}{}
		for j, t := range s.transitions {
			if t == InvalidState || int(t) >= len(b.states) {
				return nil, &BuildError{
					Message: fmt.Sprintf("missing or invalid transition on %q", b.alphabet[j]),
					State:   StateID(i),
				}
			}
		}
	}
	return newDFA(b.alphabet, b.states, b.initial), nil
}

// BuildError reports a defect found while finalizing a Builder.
type BuildError struct {
	Message string
	State   StateID
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.State != InvalidState {
		return fmt.Sprintf("dfa build error at state %d: %s", e.State, e.Message)
	}
	return fmt.Sprintf("dfa build error: %s", e.Message)
}
