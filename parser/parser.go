// Package parser parses the textual transition-table format for DFAs and NFAs.
//
// The format is a plain transition table. The first non-blank, non-comment
// line is the header listing the alphabet; each following line is one state
// row. A row may be prefixed by "→" (or "->") to mark the initial state and
// "*" to mark an accepting state, in either order. DFA cells are single state
// names; NFA cells are whitespace-separated sets like "{s0 s2}". Comments
// start with '#' and run to the end of the line.
//
// Example of a DFA:
//
//	       a  b  c
//	→ * s0 s1 s0 s2
//	    s1 s2 s1 s1
//	  * s2 s2 s2 s2
//
// Parsing is a purely lexical first pass: it preserves input order and does
// not resolve state references or check flag uniqueness. That second step is
// performed by dfa.FromParsed and nfa.FromParsed, which report the
// validation errors defined in this package.
package parser

// ParsedDFA is the unvalidated result of parsing a DFA table.
// States appear in input order; nothing has been resolved or checked beyond
// the lexical structure.
type ParsedDFA struct {
	Alphabet []string
	States   []ParsedDFAState
}

// ParsedDFAState is one row of a parsed DFA table.
type ParsedDFAState struct {
	Name      string
	Initial   bool
	Accepting bool

	// Transitions holds one target state name per alphabet symbol,
	// in header order.
	Transitions []string
}

// ParsedNFA is the unvalidated result of parsing an NFA table.
type ParsedNFA struct {
	Alphabet []string
	States   []ParsedNFAState
}

// ParsedNFAState is one row of a parsed NFA table.
type ParsedNFAState struct {
	Name      string
	Initial   bool
	Accepting bool

	// Transitions holds one target set per alphabet symbol, in header order.
	// The order of names inside each set is the textual order and is
	// preserved all the way through serialization.
	Transitions [][]string
}

// ParseDFA parses a DFA transition table without validating it.
func ParseDFA(text string) (*ParsedDFA, error) {
	lines := lex(text)
	if len(lines) == 0 {
		return nil, &ParseError{Err: ErrNoHeader}
	}

	header, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}

	parsed := &ParsedDFA{Alphabet: header}
	for _, ln := range lines[1:] {
		row, rest, err := parseRowPrefix(ln)
		if err != nil {
			return nil, err
		}
		state := ParsedDFAState{
			Name:      row.name,
			Initial:   row.initial,
			Accepting: row.accepting,
		}
		if len(rest) == 0 {
			return nil, &ParseError{
				Line: ln.number,
				Err:  ErrLex,
				Msg:  "state row has no transitions",
			}
		}
		for _, tok := range rest {
			if reserved(tok.text) {
				return nil, &ParseError{
					Line:  ln.number,
					Token: tok.text,
					Err:   ErrLex,
					Msg:   "reserved token in transition cell",
				}
			}
			state.Transitions = append(state.Transitions, tok.text)
		}
		parsed.States = append(parsed.States, state)
	}
	return parsed, nil
}

// ParseNFA parses an NFA transition table without validating it.
func ParseNFA(text string) (*ParsedNFA, error) {
	lines := lex(text)
	if len(lines) == 0 {
		return nil, &ParseError{Err: ErrNoHeader}
	}

	header, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}

	parsed := &ParsedNFA{Alphabet: header}
	for _, ln := range lines[1:] {
		row, rest, err := parseRowPrefix(ln)
		if err != nil {
			return nil, err
		}
		state := ParsedNFAState{
			Name:      row.name,
			Initial:   row.initial,
			Accepting: row.accepting,
		}
		sets, err := parseSets(ln, rest)
		if err != nil {
			return nil, err
		}
		if len(sets) == 0 {
			return nil, &ParseError{
				Line: ln.number,
				Err:  ErrLex,
				Msg:  "state row has no transitions",
			}
		}
		state.Transitions = sets
		parsed.States = append(parsed.States, state)
	}
	return parsed, nil
}

// parseHeader checks that every header token is a usable alphabet symbol.
func parseHeader(ln line) ([]string, error) {
	symbols := make([]string, 0, len(ln.tokens))
	for _, tok := range ln.tokens {
		if reserved(tok.text) {
			return nil, &ParseError{
				Line:  ln.number,
				Token: tok.text,
				Err:   ErrLex,
				Msg:   "reserved token in alphabet",
			}
		}
		symbols = append(symbols, tok.text)
	}
	return symbols, nil
}

type rowPrefix struct {
	name      string
	initial   bool
	accepting bool
}

// parseRowPrefix consumes the optional "→"/"->" and "*" markers (in either
// order) and the state name, returning the remaining tokens.
func parseRowPrefix(ln line) (rowPrefix, []token, error) {
	var row rowPrefix
	i := 0
loop:
	for ; i < len(ln.tokens); i++ {
		switch tok := ln.tokens[i]; {
		case isArrow(tok.text):
			if row.initial {
				return row, nil, &ParseError{
					Line:  ln.number,
					Token: tok.text,
					Err:   ErrLex,
					Msg:   "duplicate initial marker",
				}
			}
			row.initial = true
		case tok.text == "*":
			if row.accepting {
				return row, nil, &ParseError{
					Line:  ln.number,
					Token: tok.text,
					Err:   ErrLex,
					Msg:   "duplicate accepting marker",
				}
			}
			row.accepting = true
		default:
			break loop
		}
	}
	if i >= len(ln.tokens) {
		return row, nil, &ParseError{
			Line: ln.number,
			Err:  ErrLex,
			Msg:  "state row has no state name",
		}
	}
	name := ln.tokens[i]
	if reserved(name.text) {
		return row, nil, &ParseError{
			Line:  ln.number,
			Token: name.text,
			Err:   ErrLex,
			Msg:   "reserved token in state name position",
		}
	}
	row.name = name.text
	return row, ln.tokens[i+1:], nil
}

// parseSets parses a sequence of "{ name* }" groups.
func parseSets(ln line, toks []token) ([][]string, error) {
	var sets [][]string
	i := 0
	for i < len(toks) {
		if toks[i].text != "{" {
			return nil, &ParseError{
				Line:  ln.number,
				Token: toks[i].text,
				Err:   ErrLex,
				Msg:   "expected '{' to open a transition set",
			}
		}
		i++
		set := []string{}
		for {
			if i >= len(toks) {
				return nil, &ParseError{
					Line: ln.number,
					Err:  ErrLex,
					Msg:  "unterminated transition set",
				}
			}
			tok := toks[i]
			if tok.text == "}" {
				i++
				break
			}
			if reserved(tok.text) {
				return nil, &ParseError{
					Line:  ln.number,
					Token: tok.text,
					Err:   ErrLex,
					Msg:   "reserved token inside transition set",
				}
			}
			set = append(set, tok.text)
			i++
		}
		sets = append(sets, set)
	}
	return sets, nil
}

func isArrow(s string) bool {
	return s == "→" || s == "->"
}

// reserved reports whether the token cannot be used as a state name or
// alphabet symbol.
func reserved(s string) bool {
	switch s {
	case "→", "->", "*", "{", "}", "|":
		return true
	}
	return false
}
