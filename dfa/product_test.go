package dfa

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// containsA accepts words over {a,b} containing at least one a.
const containsA = `
     a  b
→ p0 p1 p0
* p1 p1 p1
`

// evenLength accepts words over {a,b} of even length.
const evenLength = `
       a  b
→ * e0 e1 e1
    e1 e0 e0
`

func TestIntersectionScenario(t *testing.T) {
	a := mustFromTable(t, containsA)
	b := mustFromTable(t, evenLength)

	inter, err := a.Intersection(b)
	require.NoError(t, err)

	assert.False(t, inter.AcceptsGraphemes(""))
	assert.False(t, inter.AcceptsGraphemes("a"))
	assert.False(t, inter.AcceptsGraphemes("bb"))
	assert.True(t, inter.AcceptsGraphemes("ab"))
	assert.True(t, inter.AcceptsGraphemes("ba"))
	assert.True(t, inter.AcceptsGraphemes("aabb"))
}

func TestUnionScenario(t *testing.T) {
	a := mustFromTable(t, containsA)
	b := mustFromTable(t, evenLength)

	union, err := a.Union(b)
	require.NoError(t, err)

	assert.True(t, union.AcceptsGraphemes(""))
	assert.True(t, union.AcceptsGraphemes("a"))
	assert.True(t, union.AcceptsGraphemes("bb"))
	assert.False(t, union.AcceptsGraphemes("b"))
	assert.False(t, union.AcceptsGraphemes("bbb"))
}

func TestProductPairNames(t *testing.T) {
	a := mustFromTable(t, containsA)
	b := mustFromTable(t, evenLength)

	inter, err := a.Intersection(b)
	require.NoError(t, err)
	assert.Equal(t, "(p0,e0)", inter.State(inter.Initial()).Name())
}

func TestProductAlphabetMismatch(t *testing.T) {
	a := mustFromTable(t, containsA)
	c := mustFromTable(t, "x\n→ s0 s0\n")

	for _, op := range []func(*DFA) (*DFA, error){
		a.Union, a.Intersection, a.Difference, a.SymmetricDifference,
	} {
		_, err := op(c)
		assert.ErrorIs(t, err, ErrAlphabetMismatch)
	}
}

func TestProductPermutedAlphabet(t *testing.T) {
	a := mustFromTable(t, containsA)
	// Same symbols, declared in the other order.
	b := mustFromTable(t, `
       b  a
→ * e0 e1 e1
    e1 e0 e0
`)
	inter, err := a.Intersection(b)
	require.NoError(t, err)
	assert.True(t, inter.AcceptsGraphemes("ab"))
	assert.False(t, inter.AcceptsGraphemes("a"))
}

func TestBooleanAlgebraRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	alphabet := []string{"a", "b", "c", "d", "e", "f"}
	for i := 0; i < 20; i++ {
		d1 := randomDFA(rng, 12, alphabet)
		d2 := randomDFA(rng, 12, alphabet)

		inter, err := d1.Intersection(d2)
		require.NoError(t, err)
		union, err := d1.Union(d2)
		require.NoError(t, err)
		diff, err := d1.Difference(d2)
		require.NoError(t, err)
		symdiff, err := d1.SymmetricDifference(d2)
		require.NoError(t, err)

		for j := 0; j < 50; j++ {
			w := randomWord(rng, 7, alphabet)
			r1, r2 := d1.Accepts(w), d2.Accepts(w)
			assert.Equal(t, r1 && r2, inter.Accepts(w), "intersection on %v", w)
			assert.Equal(t, r1 || r2, union.Accepts(w), "union on %v", w)
			assert.Equal(t, r1 && !r2, diff.Accepts(w), "difference on %v", w)
			assert.Equal(t, r1 != r2, symdiff.Accepts(w), "symmetric difference on %v", w)
		}
	}
}

func TestSelfUnionAndIntersection(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	alphabet := []string{"a", "b", "c"}
	for i := 0; i < 20; i++ {
		d := randomDFA(rng, 15, alphabet)

		union, err := d.Union(d)
		require.NoError(t, err)
		assert.True(t, union.EquivalentTo(d))

		inter, err := d.Intersection(d)
		require.NoError(t, err)
		assert.True(t, inter.EquivalentTo(d))
	}
}

func TestInversionTautologies(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	alphabet := []string{"a", "b", "c", "d"}
	for i := 0; i < 20; i++ {
		d := randomDFA(rng, 12, alphabet)
		inv := d.Clone()
		inv.Invert()

		union, err := d.Union(inv)
		require.NoError(t, err)
		inter, err := d.Intersection(inv)
		require.NoError(t, err)

		assert.True(t, union.HasReachableAcceptingState())
		assert.False(t, inter.HasReachableAcceptingState())

		for j := 0; j < 25; j++ {
			w := randomWord(rng, 6, alphabet)
			assert.True(t, union.Accepts(w))
			assert.False(t, inter.Accepts(w))
		}
	}
}
