package nfa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/automata/dfa"
)

func TestWordsLengthLexOrder(t *testing.T) {
	// All words over {a,b}: the enumeration is the length-lex universe.
	n := mustFromTable(t, "a b\n→ * s0 {s0} {s0}\n")
	it := n.Words()

	want := []string{"", "a", "b", "aa", "ab", "ba", "bb", "aaa"}
	for _, expected := range want {
		word, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, expected, strings.Join(word, ""))
	}
}

func TestWordsRespectsAlphabetDeclarationOrder(t *testing.T) {
	// Ties within a length break by the declared symbol order, not by any
	// intrinsic ordering of the symbols themselves.
	n := mustFromTable(t, "b a\n→ * s0 {s0} {s0}\n")
	it := n.Words()

	want := []string{"", "b", "a", "bb", "ba", "ab", "aa"}
	for _, expected := range want {
		word, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, expected, strings.Join(word, ""))
	}
}

func TestWordsFiniteLanguageTerminates(t *testing.T) {
	// Exactly the words "ab" and "b".
	n := mustFromTable(t, `
     a    b
→ s0 {s1} {s2}
  s1 {}   {s2}
* s2 {}   {}
`)
	it := n.Words()

	word, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "b", strings.Join(word, ""))

	word, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, "ab", strings.Join(word, ""))

	_, ok = it.Next()
	assert.False(t, ok, "a finite language runs out")
	_, ok = it.Next()
	assert.False(t, ok, "and stays out")
}

func TestWordsEmptyLanguage(t *testing.T) {
	n := mustFromTable(t, "a\n→ s0 {s0}\n")
	_, ok := n.Words().Next()
	assert.False(t, ok)
}

func TestWordsAreAccepted(t *testing.T) {
	n := mustFromTable(t, docNFA)
	it := n.Words()
	for i := 0; i < 100; i++ {
		word, ok := it.Next()
		require.True(t, ok, "this language is infinite")
		assert.True(t, n.Accepts(word), "enumerated word %v must be accepted", word)
	}
}

// TestWordsPartitionUniverse merges the enumerations of a language and its
// complement and checks that together they produce every word of length <= 3
// exactly once, in length-lex order.
func TestWordsPartitionUniverse(t *testing.T) {
	n := mustFromTable(t, docNFA)

	inverse := func() *NFA {
		d := n.ToDFA()
		d.Minimize()
		d.Invert()
		return FromDFA(d)
	}()

	iterN := n.Words()
	iterInv := inverse.Words()
	nextN, okN := iterN.Next()
	nextInv, okInv := iterInv.Next()

	for _, word := range universe([]string{"a", "b"}, 3) {
		switch {
		case okN && strings.Join(nextN, "") == word:
			nextN, okN = iterN.Next()
		case okInv && strings.Join(nextInv, "") == word:
			nextInv, okInv = iterInv.Next()
		default:
			t.Fatalf("word %q missing from both enumerations", word)
		}
	}
}

// universe returns every word over the alphabet up to maxLen, in length-lex
// order.
func universe(alphabet []string, maxLen int) []string {
	words := []string{""}
	prev := []string{""}
	for l := 1; l <= maxLen; l++ {
		var next []string
		for _, w := range prev {
			for _, sym := range alphabet {
				next = append(next, w+sym)
			}
		}
		words = append(words, next...)
		prev = next
	}
	return words
}

func TestLiveStates(t *testing.T) {
	d, err := dfa.FromTable(`
     a
→ s0 s1
* s1 s2
  s2 s2
`)
	require.NoError(t, err)
	live := liveStates(d)
	assert.Equal(t, []bool{true, true, false}, live)
}
