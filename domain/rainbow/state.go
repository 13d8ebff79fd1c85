package rainbow

import (
	"fmt"

	"github.com/luca-patrignani/mu-rainbow/domain/card"
)

// ScoreLimit is the exclusive upper bound of a storable score, in tens of points.
const ScoreLimit = 40

// State is a node of the game graph.
type State struct {
	Score int
	Hand  card.Mask
	Deck  card.Mask
}

// Storable reports whether s is still in play: score below ScoreLimit,
// cards left in the deck and a full hand.
func (s State) Storable() bool {
	return s.Score < ScoreLimit && s.Deck != 0 && s.Hand.Count() == card.HandSize
}

// Permutation maps suits: suit block i of the result is suit block p[i] of
// the input.
type Permutation [card.Suits]int

// SuitPermutations holds the six permutations of three suits, identity first.
var SuitPermutations = [6]Permutation{
	{0, 1, 2},
	{0, 2, 1},
	{1, 0, 2},
	{1, 2, 0},
	{2, 0, 1},
	{2, 1, 0},
}

// Apply permutes the suit blocks of m.
func (p Permutation) Apply(g card.Geometry, m card.Mask) card.Mask {
	block := card.Mask(1)<<g.Ranks - 1
	var out card.Mask
	for dst, src := range p {
		out |= ((m >> (src * g.Ranks)) & block) << (dst * g.Ranks)
	}
	return out
}

// Permute applies p to the hand and the deck of s.
func (s State) Permute(g card.Geometry, p Permutation) State {
	return State{Score: s.Score, Hand: p.Apply(g, s.Hand), Deck: p.Apply(g, s.Deck)}
}

// Canonicalize returns the representative of the suit-permutation class of
// s: the variant with the smallest hand, ties broken by the smallest deck.
func Canonicalize(g card.Geometry, s State) State {
	best := s
	for _, p := range SuitPermutations[1:] {
		v := s.Permute(g, p)
		if v.Hand < best.Hand || (v.Hand == best.Hand && v.Deck < best.Deck) {
			best = v
		}
	}
	return best
}

// CompactDeck squeezes out the bit positions of hand from deck, packing the
// remaining deck bits into a contiguous value. Hand and deck must be disjoint.
func CompactDeck(hand, deck card.Mask) uint32 {
	if hand&deck != 0 {
		panic(fmt.Sprintf("rainbow: deck %b overlaps hand %b", deck, hand))
	}
	var out uint32
	bit := 0
	for pos := 0; deck>>pos != 0; pos++ {
		if hand&(1<<pos) != 0 {
			continue
		}
		if deck&(1<<pos) != 0 {
			out |= 1 << bit
		}
		bit++
	}
	return out
}

// ExpandDeck is the inverse of CompactDeck.
func ExpandDeck(hand card.Mask, compact uint32) card.Mask {
	var deck card.Mask
	for pos := 0; compact != 0; pos++ {
		if hand&(1<<pos) != 0 {
			continue
		}
		deck |= card.Mask(compact&1) << pos
		compact >>= 1
	}
	return deck
}
