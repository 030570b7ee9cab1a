// Package regex implements regular expressions over grapheme-cluster
// literals and their compilation to ε-NFAs by the Thompson construction.
//
// The surface syntax supports alternation "|", juxtaposition for
// concatenation, the postfix operators "*" and "+", parentheses for
// grouping, and the special atoms "ε" (the empty word) and "∅" (the empty
// language). There are no escapes, anchors or capture groups: a regex
// matches whole words only.
//
// Basic usage:
//
//	r, err := regex.Parse("(a|b)*abb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n := r.ToNFA() // ε-NFA via Thompson construction
//	d := r.ToDFA() // subset construction of the above
//	d.AcceptsGraphemes("ababb") // true
package regex

// Kind identifies the variant of a regex node.
type Kind uint8

const (
	// KindEmpty matches only the empty word ε.
	KindEmpty Kind = iota

	// KindZero matches nothing; written ∅.
	KindZero

	// KindLiteral matches a single alphabet symbol.
	KindLiteral

	// KindConcat matches its children in sequence.
	KindConcat

	// KindAlt matches any one of its children.
	KindAlt

	// KindStar matches zero or more repetitions of its child.
	KindStar

	// KindPlus matches one or more repetitions of its child.
	KindPlus
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindZero:
		return "Zero"
	case KindLiteral:
		return "Literal"
	case KindConcat:
		return "Concat"
	case KindAlt:
		return "Alt"
	case KindStar:
		return "Star"
	case KindPlus:
		return "Plus"
	default:
		return "Unknown"
	}
}

// Regex is a node of a regular expression's abstract syntax tree.
// Parentheses in the source are layout only and leave no trace here.
type Regex struct {
	kind     Kind
	literal  string
	children []*Regex
}

// Empty returns the regex matching only the empty word.
func Empty() *Regex {
	return &Regex{kind: KindEmpty}
}

// Zero returns the regex matching nothing.
func Zero() *Regex {
	return &Regex{kind: KindZero}
}

// Literal returns the regex matching exactly the given symbol.
func Literal(symbol string) *Regex {
	return &Regex{kind: KindLiteral, literal: symbol}
}

// Concat returns the sequential composition of the children.
// With no children it is Empty, with one it is that child.
func Concat(children ...*Regex) *Regex {
	switch len(children) {
	case 0:
		return Empty()
	case 1:
		return children[0]
	}
	return &Regex{kind: KindConcat, children: children}
}

// Alt returns the alternation of the children.
// With no children it is Zero, with one it is that child.
func Alt(children ...*Regex) *Regex {
	switch len(children) {
	case 0:
		return Zero()
	case 1:
		return children[0]
	}
	return &Regex{kind: KindAlt, children: children}
}

// Star returns the Kleene closure of r.
func Star(r *Regex) *Regex {
	return &Regex{kind: KindStar, children: []*Regex{r}}
}

// Plus returns the one-or-more repetition of r.
func Plus(r *Regex) *Regex {
	return &Regex{kind: KindPlus, children: []*Regex{r}}
}

// Kind returns the node's variant.
func (r *Regex) Kind() Kind {
	return r.kind
}

// Literal returns the symbol of a KindLiteral node, "" otherwise.
func (r *Regex) Literal() string {
	return r.literal
}

// Children returns the node's children: the list of a Concat or Alt, the
// single operand of a Star or Plus, nil for the leaves.
// The returned slice must not be modified.
func (r *Regex) Children() []*Regex {
	return r.children
}
