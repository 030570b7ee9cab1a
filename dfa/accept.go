package dfa

import "github.com/coregx/automata/internal/grapheme"

// Accepts runs the automaton over the input tokens and reports whether it
// ends in an accepting state. A token that is not in the alphabet rejects
// the whole input.
func (d *DFA) Accepts(input []string) bool {
	e := d.Evaluator()
	for _, sym := range input {
		if !e.Step(sym) {
			return false
		}
	}
	return e.IsAccepting()
}

// AcceptsGraphemes segments s into extended grapheme clusters and treats the
// resulting sequence as input tokens.
func (d *DFA) AcceptsGraphemes(s string) bool {
	return d.Accepts(grapheme.Split(s))
}

// Evaluator returns a cursor positioned at the initial state, for
// step-by-step evaluation of an input.
func (d *DFA) Evaluator() *Evaluator {
	return &Evaluator{d: d, current: d.initial}
}

// Evaluator is a cursor over a DFA's states. It advances one input token at
// a time, which makes interactive traces possible. A token outside the
// alphabet sends the cursor into a permanent dead state.
type Evaluator struct {
	d       *DFA
	current StateID
	dead    bool
}

// Step advances on one input token. It reports whether the token was part of
// the alphabet; once it returns false the evaluator can no longer accept.
func (e *Evaluator) Step(symbol string) bool {
	if e.dead {
		return false
	}
	i := e.d.SymbolIndex(symbol)
	if i < 0 {
		e.dead = true
		return false
	}
	e.current = e.d.states[e.current].transitions[i]
	return true
}

// IsAccepting reports whether the cursor is on an accepting state.
func (e *Evaluator) IsAccepting() bool {
	return !e.dead && e.d.states[e.current].accepting
}

// Current returns the ID of the state the cursor is on, or InvalidState if a
// token outside the alphabet has been consumed.
func (e *Evaluator) Current() StateID {
	if e.dead {
		return InvalidState
	}
	return e.current
}
