package regex

import (
	"fmt"
	"strings"

	"github.com/coregx/automata/internal/grapheme"
)

// Parse parses a regular expression. Precedence from loosest to tightest is
// alternation, concatenation, the postfix operators; parentheses group. An
// empty alternative (as in "a|" or the empty input) means ε. Literals are
// single grapheme clusters; surrounding whitespace is ignored.
func Parse(text string) (*Regex, error) {
	p := &exprParser{tokens: grapheme.Split(strings.TrimSpace(text))}
	r, err := p.alternation()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		return nil, &ParseError{
			Pos:   p.pos + 1,
			Token: p.tokens[p.pos],
			Msg:   "unexpected token",
		}
	}
	return r, nil
}

// MustParse parses a regular expression and panics if it fails.
// Useful for expressions known to be valid at compile time.
func MustParse(text string) *Regex {
	r, err := Parse(text)
	if err != nil {
		panic("regex: Parse(" + text + "): " + err.Error())
	}
	return r
}

// ParseError reports a failure to parse a regular expression.
type ParseError struct {
	Pos   int    // 1-based position in grapheme clusters; one past the end for a missing ')', 0 for a missing atom at end of input
	Token string // offending token, "" at end of input
	Msg   string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch {
	case e.Token != "":
		return fmt.Sprintf("regex parse error at position %d (%q): %s", e.Pos, e.Token, e.Msg)
	case e.Pos > 0:
		return fmt.Sprintf("regex parse error at position %d: %s", e.Pos, e.Msg)
	default:
		return fmt.Sprintf("regex parse error: %s", e.Msg)
	}
}

// exprParser is a recursive-descent parser over grapheme-cluster tokens.
type exprParser struct {
	tokens []string
	pos    int
}

func (p *exprParser) peek() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	return p.tokens[p.pos], true
}

// alternation := concatenation ('|' concatenation)*
func (p *exprParser) alternation() (*Regex, error) {
	first, err := p.concatenation()
	if err != nil {
		return nil, err
	}
	parts := []*Regex{first}
	for {
		tok, ok := p.peek()
		if !ok || tok != "|" {
			break
		}
		p.pos++
		part, err := p.concatenation()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return Alt(parts...), nil
}

// concatenation := postfix*   (empty means ε)
func (p *exprParser) concatenation() (*Regex, error) {
	var factors []*Regex
	for {
		tok, ok := p.peek()
		if !ok || tok == "|" || tok == ")" {
			break
		}
		factor, err := p.postfix()
		if err != nil {
			return nil, err
		}
		factors = append(factors, factor)
	}
	return Concat(factors...), nil
}

// postfix := atom ('*' | '+')*
func (p *exprParser) postfix() (*Regex, error) {
	r, err := p.atom()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok {
			break
		}
		switch tok {
		case "*":
			r = Star(r)
		case "+":
			r = Plus(r)
		default:
			return r, nil
		}
		p.pos++
	}
	return r, nil
}

// atom := '(' alternation ')' | 'ε' | '∅' | literal
func (p *exprParser) atom() (*Regex, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, &ParseError{Msg: "unexpected end of input"}
	}
	switch tok {
	case "(":
		p.pos++
		r, err := p.alternation()
		if err != nil {
			return nil, err
		}
		closing, ok := p.peek()
		if !ok || closing != ")" {
			return nil, &ParseError{Pos: p.pos + 1, Token: closing, Msg: "missing ')'"}
		}
		p.pos++
		return r, nil
	case "ε":
		p.pos++
		return Empty(), nil
	case "∅":
		p.pos++
		return Zero(), nil
	case "*", "+", "|", ")":
		return nil, &ParseError{Pos: p.pos + 1, Token: tok, Msg: "operator in atom position"}
	default:
		p.pos++
		return Literal(tok), nil
	}
}
