package nfa

import "fmt"

// Builder constructs NFAs incrementally. The Thompson construction, the DFA
// embedding and the product constructions use it, and it is the way to
// assemble an NFA without going through the table format.
type Builder struct {
	alphabet    []string
	withEpsilon bool
	states      []State
	initial     StateID
}

// NewBuilder creates a builder for NFAs over the given (non-ε) alphabet.
// When withEpsilon is true the built automaton carries an ε column, placed
// after the regular symbols, and ε-transitions may be added.
// The alphabet slice is shared and must not be modified afterwards.
func NewBuilder(alphabet []string, withEpsilon bool) *Builder {
	return &Builder{
		alphabet:    alphabet,
		withEpsilon: withEpsilon,
		initial:     InvalidState,
	}
}

// AddState appends a state with no transitions and returns its ID.
func (b *Builder) AddState(name string, accepting bool) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{
		name:        name,
		accepting:   accepting,
		transitions: make([][]StateID, len(b.alphabet)),
	})
	return id
}

// SetAccepting overrides the accepting flag of an existing state.
func (b *Builder) SetAccepting(id StateID, accepting bool) {
	b.states[id].accepting = accepting
}

// AddTransition appends a target for the symbol at the given alphabet
// position. Adding the same target twice is a no-op.
func (b *Builder) AddTransition(from StateID, symbol int, to StateID) {
	set := b.states[from].transitions[symbol]
	for _, t := range set {
		if t == to {
			return
		}
	}
	b.states[from].transitions[symbol] = append(set, to)
}

// AddEpsilon appends an ε-transition target.
// Adding the same target twice is a no-op.
func (b *Builder) AddEpsilon(from, to StateID) {
	for _, t := range b.states[from].epsilon {
		if t == to {
			return
		}
	}
	b.states[from].epsilon = append(b.states[from].epsilon, to)
}

// SetInitial marks the initial state.
func (b *Builder) SetInitial(id StateID) {
	b.initial = id
}

// States returns the current number of states.
func (b *Builder) States() int {
	return len(b.states)
}

// Build validates and returns the constructed NFA: at least one state, an
// initial state, unique state names, valid targets everywhere, and no
// ε-transitions unless the builder was created with an ε column.
func (b *Builder) Build() (*NFA, error) {
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
		if !b.withEpsilon && len(s.epsilon) > 0 {
			return nil, &BuildError{
				Message: "ε-transition in an NFA built without an ε column",
				State:   StateID(i),
			}
		}
		for _, t := range s.epsilon {
			if int(t) >= len(b.states) {
				return nil, &BuildError{
					Message: fmt.Sprintf("invalid ε-transition target %d", t),
					State:   StateID(i),
				}
			}
		}
		for j, set := range s.transitions {
			for _, t := range set {
				if int(t) >= len(b.states) {
					return nil, &BuildError{
						Message: fmt.Sprintf("invalid transition target %d on %q", t, b.alphabet[j]),
						State:   StateID(i),
					}
				}
			}
		}
	}

	epsilonCol, epsilonSym := -1, ""
	if b.withEpsilon {
		epsilonCol = len(b.alphabet)
		epsilonSym = "ε"
	}
	return newNFA(b.alphabet, epsilonCol, epsilonSym, b.states, b.initial), nil
}

// BuildError reports a defect found while finalizing a Builder.
type BuildError struct {
	Message string
	State   StateID
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.State != InvalidState {
		return fmt.Sprintf("nfa build error at state %d: %s", e.State, e.Message)
	}
	return fmt.Sprintf("nfa build error: %s", e.Message)
}
