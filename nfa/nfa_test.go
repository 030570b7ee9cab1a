package nfa

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/automata/parser"
)

// The six-state ε-NFA over {a,b} from the package documentation.
const docNFA = `
     ε    a       b
→ s0 {}   {s1}    {s0 s2}
  s1 {s2} {s4}    {s3}
  s2 {}   {s1 s4} {s3}
  s3 {s5} {s4 s5} {}
  s4 {s3} {}      {s5}
* s5 {}   {s5}    {s5}
`

func TestFromTableAccepts(t *testing.T) {
	n, err := FromTable(docNFA)
	require.NoError(t, err)
	require.True(t, n.HasEpsilonMoves())

	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"a", false},
		{"b", false},
		{"ab", true},
		{"aa", true},
		{"ba", true},
		{"bb", true},
		{"abb", true},
		{"aab", true},
		{"aba", true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			assert.Equal(t, tt.want, n.AcceptsGraphemes(tt.input))
		})
	}
}

func TestAcceptsUnknownSymbol(t *testing.T) {
	n := mustFromTable(t, docNFA)
	assert.False(t, n.Accepts([]string{"a", "z"}))
	assert.False(t, n.Accepts([]string{"ε"}), "ε is not an input token")
}

func TestAccessors(t *testing.T) {
	n := mustFromTable(t, docNFA)
	assert.Equal(t, []string{"a", "b"}, n.Alphabet(), "the alphabet excludes ε")
	assert.Equal(t, 6, n.States())
	assert.Equal(t, StateID(0), n.Initial())
	assert.Equal(t, 0, n.SymbolIndex("a"))
	assert.Equal(t, -1, n.SymbolIndex("ε"))

	s1 := n.State(1)
	require.NotNil(t, s1)
	assert.Equal(t, "s1", s1.Name())
	assert.Equal(t, []StateID{2}, s1.Epsilon())
	assert.Equal(t, []StateID{4}, s1.Targets(0))
	assert.Nil(t, n.State(StateID(42)))
}

func TestEpsilonClosure(t *testing.T) {
	n := mustFromTable(t, docNFA)
	assert.Equal(t, []StateID{0}, n.EpsilonClosure(0))
	assert.Equal(t, []StateID{1, 2}, n.EpsilonClosure(1))
	assert.Equal(t, []StateID{3, 5}, n.EpsilonClosure(3))
	assert.Equal(t, []StateID{3, 4, 5}, n.EpsilonClosure(4))
	assert.Equal(t, []StateID{1, 2, 3, 5}, n.EpsilonClosure(1, 3))
}

func TestEpsilonSpelledEps(t *testing.T) {
	n, err := FromTable(`
     eps  a
→ s0 {s1} {}
* s1 {}   {s1}
`)
	require.NoError(t, err)
	assert.True(t, n.HasEpsilonMoves())
	assert.True(t, n.AcceptsGraphemes(""))
	assert.True(t, n.AcceptsGraphemes("aa"))

	// The spelling is preserved on the way out.
	assert.Contains(t, n.ToTable(), "eps")
}

func TestEpsilonColumnPosition(t *testing.T) {
	// ε need not be the first column.
	n, err := FromTable(`
     a    ε    b
→ s0 {s1} {s1} {}
* s1 {}   {}   {s0}
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, n.Alphabet())
	assert.True(t, n.AcceptsGraphemes(""))
	assert.True(t, n.AcceptsGraphemes("a"))

	reparsed, err := FromTable(n.ToTable())
	require.NoError(t, err)
	assert.True(t, n.Equal(reparsed))
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"two epsilon columns", "ε eps\n→ s0 {} {}\n", parser.ErrDuplicateAlphabetSymbol},
		{"duplicate symbol", "a a\n→ s0 {} {}\n", parser.ErrDuplicateAlphabetSymbol},
		{"duplicate state", "a\n→ s0 {}\ns0 {}\n", parser.ErrDuplicateStateName},
		{"no initial", "a\ns0 {}\n", parser.ErrNoInitialState},
		{"two initial", "a\n→ s0 {}\n→ s1 {}\n", parser.ErrMultipleInitialStates},
		{"unknown reference", "a\n→ s0 {s7}\n", parser.ErrUnknownStateReference},
		{"row too narrow", "a b\n→ s0 {}\n", parser.ErrRowWidthMismatch},
		{"row too wide", "a\n→ s0 {} {}\n", parser.ErrRowWidthMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromTable(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTableRoundTrip(t *testing.T) {
	n := mustFromTable(t, docNFA)
	reparsed, err := FromTable(n.ToTable())
	require.NoError(t, err)
	assert.True(t, n.Equal(reparsed), "table was:\n%s", n.ToTable())
}

func TestTableRoundTripPreservesTargetOrder(t *testing.T) {
	n := mustFromTable(t, "a\n→ s0 {s1 s0}\n* s1 {s0 s1}\n")
	assert.Equal(t, []StateID{1, 0}, n.State(0).Targets(0))

	reparsed, err := FromTable(n.ToTable())
	require.NoError(t, err)
	assert.True(t, n.Equal(reparsed))

	// Sorting the targets would be a different structure.
	sorted := mustFromTable(t, "a\n→ s0 {s0 s1}\n* s1 {s0 s1}\n")
	assert.False(t, n.Equal(sorted))
}

func TestTableRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for i := 0; i < 50; i++ {
		n := randomNFA(rng, 10, []string{"a", "b", "c"})
		reparsed, err := FromTable(n.ToTable())
		require.NoError(t, err, "table was:\n%s", n.ToTable())
		assert.True(t, n.Equal(reparsed), "table was:\n%s", n.ToTable())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	n := mustFromTable(t, docNFA)
	c := n.Clone()
	assert.True(t, n.Equal(c))

	c.RemoveEpsilonMoves()
	assert.False(t, c.HasEpsilonMoves())
	assert.True(t, n.HasEpsilonMoves(), "the original keeps its ε-moves")
}

func TestBuilder(t *testing.T) {
	b := NewBuilder([]string{"a"}, true)
	s0 := b.AddState("s0", false)
	s1 := b.AddState("s1", true)
	b.AddTransition(s0, 0, s0)
	b.AddTransition(s0, 0, s1)
	b.AddTransition(s0, 0, s1) // duplicate, dropped
	b.AddEpsilon(s1, s0)
	b.SetInitial(s0)

	n, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, []StateID{0, 1}, n.State(0).Targets(0))
	assert.True(t, n.HasEpsilonMoves())
	assert.True(t, n.Accepts([]string{"a"}))
	assert.False(t, n.Accepts(nil))
}

func TestBuilderRejectsEpsilonWithoutColumn(t *testing.T) {
	b := NewBuilder([]string{"a"}, false)
	s0 := b.AddState("s0", true)
	b.AddEpsilon(s0, s0)
	b.SetInitial(s0)
	_, err := b.Build()
	var berr *BuildError
	assert.ErrorAs(t, err, &berr)
}

// mustFromTable parses a table that the test requires to be valid.
func mustFromTable(t *testing.T, text string) *NFA {
	t.Helper()
	n, err := FromTable(text)
	require.NoError(t, err)
	return n
}

// randomNFA builds a random NFA (with ε-moves half of the time) over the
// given alphabet.
func randomNFA(rng *rand.Rand, maxStates int, alphabet []string) *NFA {
	n := 1 + rng.Intn(maxStates)
	withEpsilon := rng.Intn(2) == 0
	b := NewBuilder(alphabet, withEpsilon)
	for i := 0; i < n; i++ {
		b.AddState(fmt.Sprintf("q%d", i), rng.Intn(2) == 0)
	}
	for i := 0; i < n; i++ {
		for j := range alphabet {
			for _, target := range rng.Perm(n) {
				if rng.Intn(3) == 0 {
					b.AddTransition(StateID(i), j, StateID(target))
				}
			}
		}
		if withEpsilon {
			for _, target := range rng.Perm(n) {
				if rng.Intn(4) == 0 {
					b.AddEpsilon(StateID(i), StateID(target))
				}
			}
		}
	}
	b.SetInitial(StateID(rng.Intn(n)))
	built, err := b.Build()
	if err != nil {
		panic(err)
	}
	return built
}

// randomWord draws a word of length up to maxLen over the alphabet.
func randomWord(rng *rand.Rand, maxLen int, alphabet []string) []string {
	word := make([]string, rng.Intn(maxLen+1))
	for i := range word {
		word[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return word
}
