package card

import (
	"fmt"
	"math/bits"
)

const (
	// Suits is fixed: the canonical form relies on the six permutations of three suits.
	Suits = 3
	// HandSize is the number of cards held in a storable state.
	HandSize = 5
	// MinRanks is the smallest deck on which a run fits.
	MinRanks = 3
	// MaxRanks keeps every card of the deck inside a 24-bit mask.
	MaxRanks = 8
)

// Geometry describes the deck as Suits x Ranks cards.
type Geometry struct {
	Ranks int
}

// Standard is the production deck: 8 ranks x 3 suits = 24 cards.
var Standard = Geometry{Ranks: MaxRanks}

// Validate reports whether the geometry can be addressed by the storage layout.
func (g Geometry) Validate() error {
	if g.Ranks < MinRanks || g.Ranks > MaxRanks {
		return fmt.Errorf("invalid geometry: ranks must be in [%d, %d], got %d", MinRanks, MaxRanks, g.Ranks)
	}
	return nil
}

// Cards returns the number of cards in the deck.
func (g Geometry) Cards() int {
	return Suits * g.Ranks
}

// FreeBits is the number of card slots not occupied by a full hand, which is
// also the width of a compacted deck.
func (g Geometry) FreeBits() int {
	return g.Cards() - HandSize
}

// FullMask returns the mask holding every card of the deck.
func (g Geometry) FullMask() Mask {
	return Mask(1)<<g.Cards() - 1
}

// SuitMask returns the mask of every card of suit s.
func (g Geometry) SuitMask(s int) Mask {
	return (Mask(1)<<g.Ranks - 1) << (s * g.Ranks)
}

// Card is a card index in [0, Geometry.Cards()).
type Card uint8

// New builds the card with the given suit and rank.
//
// Returns an error if suit or rank fall outside the geometry.
func New(g Geometry, suit, rank int) (Card, error) {
	if suit < 0 || suit >= Suits || rank < 0 || rank >= g.Ranks {
		return 0, fmt.Errorf("invalid card suit %d, rank %d", suit, rank)
	}
	return Card(suit*g.Ranks + rank), nil
}

// Rank returns the rank of the card (0 is the lowest).
func (c Card) Rank(g Geometry) int {
	return int(c) % g.Ranks
}

// Suit returns the suit of the card.
func (c Card) Suit(g Geometry) int {
	return int(c) / g.Ranks
}

// Mask returns the single-card mask of c.
func (c Card) Mask() Mask {
	return Mask(1) << c
}

// Mask is a set of cards, bit i standing for card i.
type Mask uint32

// MaskOf builds the mask holding the given cards.
func MaskOf(cards ...Card) Mask {
	var m Mask
	for _, c := range cards {
		m |= c.Mask()
	}
	return m
}

// Has reports whether c belongs to m.
func (m Mask) Has(c Card) bool {
	return m&c.Mask() != 0
}

// Contains reports whether every card of o belongs to m.
func (m Mask) Contains(o Mask) bool {
	return m&o == o
}

// Count returns the number of cards in m.
func (m Mask) Count() int {
	return bits.OnesCount32(uint32(m))
}

// Cards returns the cards of m in ascending order.
func (m Mask) Cards() []Card {
	out := make([]Card, 0, m.Count())
	for m != 0 {
		c := Card(bits.TrailingZeros32(uint32(m)))
		out = append(out, c)
		m &= m - 1
	}
	return out
}
