package rainbow

import (
	"fmt"
	"slices"

	"github.com/luca-patrignani/mu-rainbow/domain/card"
)

// StandardCanonicalHands is the number of canonical 5-card hands of the
// standard 24-card deck.
const StandardCanonicalHands = 7448

// Tables holds the lookups shared by every component for one geometry.
type Tables struct {
	geometry card.Geometry
	raw      []card.Mask
	moves    map[card.Mask][]Move
	hands    []card.Mask // canonical hands, ascending
}

// NewTables enumerates every 5-card hand of g, caches its moves and indexes
// the canonical hands.
//
// Returns an error if g is invalid or if the number of canonical hands does
// not match the closed-form count of ExpectedCanonicalHands.
func NewTables(g card.Geometry) (*Tables, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	t := &Tables{
		geometry: g,
		raw:      card.Hands(g, card.HandSize),
	}

	t.moves = make(map[card.Mask][]Move, len(t.raw))
	canonical := make(map[card.Mask]struct{})
	for _, hand := range t.raw {
		t.moves[hand] = MovesFromHand(g, hand)
		canonical[Canonicalize(g, State{Hand: hand}).Hand] = struct{}{}
	}
	t.hands = make([]card.Mask, 0, len(canonical))
	for hand := range canonical {
		t.hands = append(t.hands, hand)
	}
	slices.Sort(t.hands)

	want := ExpectedCanonicalHands(g, card.HandSize)
	if g == card.Standard && want != StandardCanonicalHands {
		return nil, fmt.Errorf("canonical hand count formula gives %d, want %d", want, StandardCanonicalHands)
	}
	if len(t.hands) != want {
		return nil, fmt.Errorf("found %d canonical hands, want %d", len(t.hands), want)
	}
	return t, nil
}

// Geometry returns the geometry the tables were built for.
func (t *Tables) Geometry() card.Geometry {
	return t.geometry
}

// Moves returns the cached moves of a 5-card hand. The slice is shared and
// must not be modified.
func (t *Tables) Moves(hand card.Mask) []Move {
	moves, ok := t.moves[hand]
	if !ok {
		panic(fmt.Sprintf("rainbow: no cached moves for hand %b", hand))
	}
	return moves
}

// Hands returns the canonical hands in ascending order. The slice is shared
// and must not be modified.
func (t *Tables) Hands() []card.Mask {
	return t.hands
}

// RawHands returns every 5-card hand in enumeration order.
func (t *Tables) RawHands() []card.Mask {
	return t.raw
}

// HandRank returns the index of a canonical hand in Hands.
func (t *Tables) HandRank(hand card.Mask) (int, bool) {
	return slices.BinarySearch(t.hands, hand)
}

// StartingStates returns one state per canonical hand: score 0 and every
// other card in the deck, ordered like Hands.
func (t *Tables) StartingStates() []State {
	full := t.geometry.FullMask()
	out := make([]State, len(t.hands))
	for i, hand := range t.hands {
		out[i] = State{Hand: hand, Deck: full &^ hand}
	}
	return out
}

// ExpectedCanonicalHands counts the orbits of k-card hands under the suit
// permutations with Burnside's lemma: the average number of hands fixed by
// each of the six permutations.
func ExpectedCanonicalHands(g card.Geometry, k int) int {
	r := g.Ranks
	identity := card.Binomial(card.Suits*r, k)

	// A transposition fixes a hand when the swapped suits hold the same ranks.
	swap := 0
	for pairs := 0; 2*pairs <= k; pairs++ {
		swap += card.Binomial(r, pairs) * card.Binomial(r, k-2*pairs)
	}

	// A 3-cycle fixes a hand made of whole rank columns.
	cycle := 0
	if k%card.Suits == 0 {
		cycle = card.Binomial(r, k/card.Suits)
	}

	return (identity + 3*swap + 2*cycle) / 6
}
