package rainbow

import (
	"fmt"
	"sort"

	"github.com/luca-patrignani/mu-rainbow/domain/card"
)

// Action is the kind of a move.
type Action int

const (
	// Remove discards one held card.
	Remove Action = iota
	// Deal plays a combination.
	Deal
)

// String returns "remove" or "deal".
func (a Action) String() string {
	if a == Deal {
		return "deal"
	}
	return "remove"
}

// Move is a legal action for a hand. Cards is the discarded card for Remove
// and the combination for Deal; Delta is the score change in tens of points.
type Move struct {
	Action Action
	Cards  card.Mask
	Delta  int
}

// String describes the move for logs and panics.
func (m Move) String() string {
	return fmt.Sprintf("%s %b (+%d)", m.Action, m.Cards, m.Delta)
}

// MovesFromHand lists the moves of hand with the most promising ones first:
// deals by descending score, then removes by ascending rank so the cheapest
// cards go first.
func MovesFromHand(g card.Geometry, hand card.Mask) []Move {
	combos := Combinations(g, hand)
	moves := make([]Move, 0, len(combos)+hand.Count())
	for _, c := range combos {
		moves = append(moves, Move{Action: Deal, Cards: c.Cards, Delta: c.Delta()})
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Delta > moves[j].Delta
	})

	held := hand.Cards()
	sort.SliceStable(held, func(i, j int) bool {
		return held[i].Rank(g) < held[j].Rank(g)
	})
	for _, c := range held {
		moves = append(moves, Move{Action: Remove, Cards: c.Mask()})
	}
	return moves
}
