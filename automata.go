// Package automata provides DFAs, NFAs, ε-NFAs and regular expressions over
// an arbitrary alphabet of string tokens, together with a textual
// transition-table format for them.
//
// The heavy lifting lives in the subpackages — dfa, nfa and regex — and this
// package is the convenience surface over their parsers.
//
// Basic usage:
//
//	d, err := automata.ParseDFA(`
//	       a  b  c
//	→ * s0 s1 s0 s2
//	    s1 s2 s1 s1
//	  * s2 s2 s2 s2
//	`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d.Accepts([]string{"a", "b", "c", "c", "a"}) // true
//	d.Accepts([]string{"a", "b", "b", "c"})      // false
//
// Conversions tie the three representations together:
//
//	r := automata.MustParseRegex("(a|b)*abb")
//	n := r.ToNFA()  // Thompson construction
//	d := n.ToDFA()  // subset construction
//	d.Minimize()
//	back := nfa.FromDFA(d)
//
// Operations on the automata themselves — acceptance, minimization,
// equivalence, the Boolean products, complementation, word enumeration —
// are methods on dfa.DFA and nfa.NFA; see those packages.
package automata

import (
	"github.com/coregx/automata/dfa"
	"github.com/coregx/automata/nfa"
	"github.com/coregx/automata/regex"
)

// ParseDFA parses and validates a DFA transition table.
func ParseDFA(text string) (*dfa.DFA, error) {
	return dfa.FromTable(text)
}

// MustParseDFA parses a DFA transition table and panics if it fails.
// Useful for tables known to be valid at compile time.
func MustParseDFA(text string) *dfa.DFA {
	d, err := ParseDFA(text)
	if err != nil {
		panic("automata: ParseDFA: " + err.Error())
	}
	return d
}

// ParseNFA parses and validates an NFA transition table. The alphabet may
// contain "ε" (or "eps") to declare ε-transitions.
func ParseNFA(text string) (*nfa.NFA, error) {
	return nfa.FromTable(text)
}

// MustParseNFA parses an NFA transition table and panics if it fails.
func MustParseNFA(text string) *nfa.NFA {
	n, err := ParseNFA(text)
	if err != nil {
		panic("automata: ParseNFA: " + err.Error())
	}
	return n
}

// ParseRegex parses a regular expression.
func ParseRegex(text string) (*regex.Regex, error) {
	return regex.Parse(text)
}

// MustParseRegex parses a regular expression and panics if it fails.
func MustParseRegex(text string) *regex.Regex {
	return regex.MustParse(text)
}
