package card

import (
	"fmt"
	"strings"

	"github.com/paulhankin/poker"
	"github.com/pterm/pterm"
)

// lowestFace is the French-deck face of rank 0; the eighth rank wraps to the ace.
const lowestFace = 7

// Face converts c to the equivalent French-deck card: ranks count up from
// the seven, suits map to clubs, diamonds and hearts.
func Face(g Geometry, c Card) (poker.Card, error) {
	rank := lowestFace + c.Rank(g)
	if rank > 13 {
		rank -= 13
	}
	pc, err := poker.MakeCard(poker.Suit(c.Suit(g)), poker.Rank(rank))
	if err != nil {
		return pc, fmt.Errorf("invalid face for card %d: %w", c, err)
	}
	return pc, nil
}

// Label renders c as its face, coloured by suit.
func (c Card) Label(g Geometry) string {
	pc, err := Face(g, c)
	if err != nil {
		return "?"
	}
	face := fmt.Sprint(pc)
	if c.Suit(g) == 0 {
		return pterm.Black(face)
	}
	return pterm.LightRed(face)
}

// Render renders every card of m in ascending order.
func Render(g Geometry, m Mask) string {
	cards := m.Cards()
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Label(g)
	}
	return strings.Join(out, " ")
}
