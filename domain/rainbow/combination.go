package rainbow

import (
	"fmt"
	"sort"

	"github.com/luca-patrignani/mu-rainbow/domain/card"
)

// Kind is the scoring pattern of a combination.
type Kind int

const (
	// Invalid is the zero Kind: three cards that do not score.
	Invalid Kind = iota
	// SuitedRun is three consecutive ranks of one suit.
	SuitedRun
	// MixedRun is three consecutive ranks not all of one suit.
	MixedRun
	// Triple is one rank in all three suits.
	Triple
)

// String returns the name of the pattern.
func (k Kind) String() string {
	switch k {
	case SuitedRun:
		return "suited run"
	case MixedRun:
		return "mixed run"
	case Triple:
		return "triple"
	default:
		return "invalid"
	}
}

// Bonus returns the points a pattern adds on top of 10 x its lowest rank.
func (k Kind) Bonus() int {
	switch k {
	case SuitedRun:
		return 50
	case MixedRun:
		return 10
	case Triple:
		return 20
	default:
		return 0
	}
}

// Combination is a scoring triple of cards.
type Combination struct {
	Kind  Kind
	Low   int // lowest rank
	Cards card.Mask
}

// Points returns the full point value of the combination.
func (c Combination) Points() int {
	return 10*c.Low + c.Kind.Bonus()
}

// Delta returns the score change, in tens of points, of playing c.
func (c Combination) Delta() int {
	return c.Points() / 10
}

// Classify identifies the pattern formed by exactly three cards.
//
// Returns an error if m does not hold three cards or if they do not score.
func Classify(g card.Geometry, m card.Mask) (Combination, error) {
	cards := m.Cards()
	if len(cards) != 3 {
		return Combination{}, fmt.Errorf("a combination needs 3 cards, got %d", len(cards))
	}
	ranks := make([]int, 3)
	for i, c := range cards {
		ranks[i] = c.Rank(g)
	}
	sort.Ints(ranks)
	sameSuit := cards[0].Suit(g) == cards[1].Suit(g) && cards[1].Suit(g) == cards[2].Suit(g)
	consecutive := ranks[1] == ranks[0]+1 && ranks[2] == ranks[0]+2
	sameRank := ranks[0] == ranks[1] && ranks[1] == ranks[2]

	switch {
	case sameSuit && consecutive:
		return Combination{Kind: SuitedRun, Low: ranks[0], Cards: m}, nil
	case sameRank:
		return Combination{Kind: Triple, Low: ranks[0], Cards: m}, nil
	case consecutive:
		return Combination{Kind: MixedRun, Low: ranks[0], Cards: m}, nil
	default:
		return Combination{}, fmt.Errorf("cards %v do not form a combination", cards)
	}
}

// Combinations lists every combination contained in hand: runs by
// ascending low rank first, then triples by ascending rank.
func Combinations(g card.Geometry, hand card.Mask) []Combination {
	suits := make([][]int, g.Ranks)
	for _, c := range hand.Cards() {
		suits[c.Rank(g)] = append(suits[c.Rank(g)], c.Suit(g))
	}

	var out []Combination
	for low := 0; low+2 < g.Ranks; low++ {
		for _, s0 := range suits[low] {
			for _, s1 := range suits[low+1] {
				for _, s2 := range suits[low+2] {
					kind := MixedRun
					if s0 == s1 && s1 == s2 {
						kind = SuitedRun
					}
					m := card.MaskOf(
						card.Card(s0*g.Ranks+low),
						card.Card(s1*g.Ranks+low+1),
						card.Card(s2*g.Ranks+low+2),
					)
					out = append(out, mustMatch(g, Combination{Kind: kind, Low: low, Cards: m}))
				}
			}
		}
	}
	for rank, held := range suits {
		if len(held) != card.Suits {
			continue
		}
		var m card.Mask
		for _, s := range held {
			m |= card.Card(s*g.Ranks + rank).Mask()
		}
		out = append(out, mustMatch(g, Combination{Kind: Triple, Low: rank, Cards: m}))
	}
	return out
}

// mustMatch cross-checks the scan against Classify.
func mustMatch(g card.Geometry, c Combination) Combination {
	got, err := Classify(g, c.Cards)
	if err != nil {
		panic(fmt.Sprintf("rainbow: malformed combination: %v", err))
	}
	if got != c {
		panic(fmt.Sprintf("rainbow: combination %b scanned as %v/%d, classified as %v/%d", c.Cards, c.Kind, c.Low, got.Kind, got.Low))
	}
	return c
}
