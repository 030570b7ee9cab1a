package nfa

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/automata/dfa"
)

func TestToDFA(t *testing.T) {
	n := mustFromTable(t, docNFA)
	d := n.ToDFA()

	assert.Equal(t, []string{"a", "b"}, d.Alphabet(), "ε is dropped from the alphabet")
	assert.Equal(t, "{s0}", d.State(d.Initial()).Name())

	for _, w := range []string{"", "a", "b", "ab", "aa", "ba", "bb", "abb", "aab", "aba", "abab"} {
		assert.Equal(t, n.AcceptsGraphemes(w), d.AcceptsGraphemes(w), "word %q", w)
	}
}

func TestToDFASubsetNames(t *testing.T) {
	n := mustFromTable(t, `
     a        b
→ s0 {s0 s1} {}
* s1 {}      {}
`)
	d := n.ToDFA()
	names := make(map[string]bool)
	for i := 0; i < d.States(); i++ {
		names[d.State(dfa.StateID(i)).Name()] = true
	}
	assert.True(t, names["{s0}"])
	assert.True(t, names["{s0 s1}"], "subset members are listed in state order")
	assert.True(t, names["{}"], "the empty subset is the dead state")
}

func TestToDFAIsDeterministicConstruction(t *testing.T) {
	n := mustFromTable(t, docNFA)
	assert.True(t, n.ToDFA().Equal(n.ToDFA()))
}

func TestFromDFA(t *testing.T) {
	d, err := dfa.FromTable(`
       a  b
→ p0   p1 p0
*  p1  p1 p1
`)
	require.NoError(t, err)

	n := FromDFA(d)
	assert.False(t, n.HasEpsilonMoves())
	assert.Equal(t, 2, n.States())
	assert.Equal(t, []StateID{1}, n.State(0).Targets(0))

	for _, w := range []string{"", "a", "b", "ba", "bb", "abab"} {
		assert.Equal(t, d.AcceptsGraphemes(w), n.AcceptsGraphemes(w), "word %q", w)
	}
}

func TestDFAToNFAToDFARandom(t *testing.T) {
	rng := rand.New(rand.NewSource(37))
	alphabet := []string{"a", "b", "c"}
	for i := 0; i < 25; i++ {
		d := randomDFA(rng, 12, alphabet)
		back := FromDFA(d).ToDFA()
		require.True(t, d.EquivalentTo(back), "DFA -> NFA -> DFA must preserve the language")
		require.True(t, back.EquivalentTo(d))
	}
}

func TestNFAToDFAToNFARandom(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	alphabet := []string{"a", "b"}
	for i := 0; i < 25; i++ {
		n := randomNFA(rng, 8, alphabet)
		back := FromDFA(n.ToDFA())
		require.True(t, n.EquivalentTo(back), "NFA -> DFA -> NFA must preserve the language")
		require.True(t, back.EquivalentTo(n))
	}
}

func TestNFAEquivalentTo(t *testing.T) {
	n := mustFromTable(t, docNFA)
	noEps := n.Clone()
	noEps.RemoveEpsilonMoves()
	assert.True(t, n.EquivalentTo(noEps))

	other := mustFromTable(t, "a b\n→ s0 {} {}\n")
	assert.False(t, n.EquivalentTo(other))
}

// randomDFA builds a random total DFA for the conversion tests.
func randomDFA(rng *rand.Rand, maxStates int, alphabet []string) *dfa.DFA {
	n := 1 + rng.Intn(maxStates)
	b := dfa.NewBuilder(alphabet)
	for i := 0; i < n; i++ {
		b.AddState("q"+string(rune('0'+i/10))+string(rune('0'+i%10)), rng.Intn(2) == 0)
	}
	for i := 0; i < n; i++ {
		for j := range alphabet {
			b.SetTransition(dfa.StateID(i), j, dfa.StateID(rng.Intn(n)))
		}
	}
	b.SetInitial(dfa.StateID(rng.Intn(n)))
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}
