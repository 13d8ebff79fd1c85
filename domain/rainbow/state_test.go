package rainbow

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/mu-rainbow/domain/card"
)

// randomState draws a state with a 5-card hand and a non-empty disjoint deck.
func randomState(r *rand.Rand, g card.Geometry) State {
	perm := r.Perm(g.Cards())
	var hand, deck card.Mask
	for _, c := range perm[:card.HandSize] {
		hand |= card.Card(c).Mask()
	}
	for deck == 0 {
		for _, c := range perm[card.HandSize:] {
			if r.IntN(2) == 1 {
				deck |= card.Card(c).Mask()
			}
		}
	}
	return State{Score: r.IntN(ScoreLimit), Hand: hand, Deck: deck}
}

func TestStorable(t *testing.T) {
	hand := card.MaskOf(0, 1, 2, 3, 4)
	assert.True(t, State{Score: 39, Hand: hand, Deck: card.MaskOf(5)}.Storable())
	assert.False(t, State{Score: 40, Hand: hand, Deck: card.MaskOf(5)}.Storable())
	assert.False(t, State{Score: 0, Hand: hand}.Storable())
	assert.False(t, State{Score: 0, Hand: card.MaskOf(0, 1, 2, 3), Deck: card.MaskOf(5)}.Storable())
}

func TestPermutationApply(t *testing.T) {
	m := card.MaskOf(8, 17)
	assert.Equal(t, m, SuitPermutations[0].Apply(std, m))
	// block 0 takes suit 1, block 1 takes suit 0
	assert.Equal(t, card.MaskOf(0, 17), Permutation{1, 0, 2}.Apply(std, m))
	// block 0 takes suit 2, block 2 takes suit 1
	assert.Equal(t, card.MaskOf(1, 16), Permutation{2, 0, 1}.Apply(std, m))

	small := card.Geometry{Ranks: 4}
	assert.Equal(t, card.MaskOf(0, 9), Permutation{1, 0, 2}.Apply(small, card.MaskOf(4, 9)))
}

func TestCanonicalizeMovesHandToLowestSuit(t *testing.T) {
	s := State{Score: 3, Hand: card.MaskOf(16, 17, 18, 19, 20), Deck: card.MaskOf(0)}
	c := Canonicalize(std, s)
	assert.Equal(t, card.MaskOf(0, 1, 2, 3, 4), c.Hand)
	assert.Equal(t, 3, c.Score)
	// suits 0 and 1 are both empty in hand; the deck card lands in the lower of them
	assert.Equal(t, card.MaskOf(8), c.Deck)
}

func TestCanonicalizeIdempotentAndInvariant(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, g := range []card.Geometry{std, {Ranks: 3}, {Ranks: 5}} {
		for range 2000 {
			s := randomState(r, g)
			c := Canonicalize(g, s)
			require.Equal(t, c, Canonicalize(g, c))
			for _, p := range SuitPermutations {
				require.Equal(t, c, Canonicalize(g, s.Permute(g, p)), "state %+v perm %v", s, p)
			}
			assert.Equal(t, s.Hand.Count(), c.Hand.Count())
			assert.Equal(t, s.Deck.Count(), c.Deck.Count())
		}
	}
}

func TestCompactDeck(t *testing.T) {
	assert.Equal(t, uint32(0b11), CompactDeck(0b1, 0b110))
	assert.Equal(t, card.Mask(0b110), ExpandDeck(0b1, 0b11))

	hand := card.MaskOf(0, 1, 2, 3, 4)
	full := std.FullMask() &^ hand
	assert.Equal(t, uint32(1)<<19-1, CompactDeck(hand, full))
	assert.Equal(t, full, ExpandDeck(hand, 1<<19-1))

	assert.Panics(t, func() { CompactDeck(0b11, 0b10) })
}

func TestCompactDeckInverse(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for range 5000 {
		s := randomState(r, std)
		compact := CompactDeck(s.Hand, s.Deck)
		require.Less(t, compact, uint32(1)<<std.FreeBits())
		require.Equal(t, s.Deck, ExpandDeck(s.Hand, compact))
	}
}
