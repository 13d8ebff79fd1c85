package rainbow

import (
	"fmt"

	"github.com/luca-patrignani/mu-rainbow/domain/card"
)

// Replenishment is the number of cards drawn after a deal, deck permitting.
const Replenishment = 3

// AppendOutcomes appends to dst every state that playing m from s can lead
// to and returns the extended slice.
//
// Remove yields one outcome per deck card; Deal yields one outcome per
// way of drawing min(|deck|, Replenishment) cards. s must have a non-empty
// deck and m must only use held cards, otherwise AppendOutcomes panics.
func AppendOutcomes(dst []State, s State, m Move) []State {
	if s.Deck == 0 {
		panic(fmt.Sprintf("rainbow: outcomes of a state with an empty deck: %+v", s))
	}
	if !s.Hand.Contains(m.Cards) {
		panic(fmt.Sprintf("rainbow: move %v is not held in hand %b", m, s.Hand))
	}
	score := s.Score + m.Delta
	rest := s.Hand &^ m.Cards

	switch m.Action {
	case Remove:
		for _, c := range s.Deck.Cards() {
			dst = append(dst, State{Score: score, Hand: rest | c.Mask(), Deck: s.Deck &^ c.Mask()})
		}
	case Deal:
		deck := s.Deck.Cards()
		draw := min(len(deck), Replenishment)
		card.Subsets(len(deck), draw, func(idx []int) bool {
			var drawn card.Mask
			for _, i := range idx {
				drawn |= deck[i].Mask()
			}
			dst = append(dst, State{Score: score, Hand: rest | drawn, Deck: s.Deck &^ drawn})
			return true
		})
	default:
		panic(fmt.Sprintf("rainbow: unknown action %d", m.Action))
	}
	return dst
}

// Outcomes returns every state that playing m from s can lead to.
func Outcomes(s State, m Move) []State {
	return AppendOutcomes(nil, s, m)
}
