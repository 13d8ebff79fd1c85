// Package sample draws reproducible random game states, used to spot-check
// a reachability map without scanning all of it.
package sample

import (
	"encoding/binary"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/suites"

	"github.com/luca-patrignani/mu-rainbow/domain/card"
	"github.com/luca-patrignani/mu-rainbow/domain/rainbow"
)

var suite = suites.MustFind("Ed25519")

// Sampler is a deterministic stream of random states: two samplers with the
// same seed draw the same states.
type Sampler struct {
	xof kyber.XOF
	buf [8]byte
}

// New seeds a sampler with the suite's extendable-output function.
func New(seed []byte) *Sampler {
	return &Sampler{xof: suite.XOF(seed)}
}

func (s *Sampler) uint64() uint64 {
	if _, err := s.xof.Read(s.buf[:]); err != nil {
		panic("sample: xof read failed: " + err.Error())
	}
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Intn returns a uniform value in [0, n). It panics if n <= 0.
func (s *Sampler) Intn(n int) int {
	if n <= 0 {
		panic("sample: Intn with n <= 0")
	}
	bound := uint64(n)
	limit := ^uint64(0) - ^uint64(0)%bound
	for {
		if v := s.uint64(); v < limit {
			return int(v % bound)
		}
	}
}

// State draws a uniformly random storable state of g: a score below
// rainbow.ScoreLimit, a 5-card hand and a non-empty subset of the other
// cards as deck.
func (s *Sampler) State(g card.Geometry) rainbow.State {
	cards := make([]card.Card, g.Cards())
	for i := range cards {
		cards[i] = card.Card(i)
	}
	var hand card.Mask
	for i := 0; i < card.HandSize; i++ {
		j := i + s.Intn(len(cards)-i)
		cards[i], cards[j] = cards[j], cards[i]
		hand |= cards[i].Mask()
	}

	rest := g.FullMask() &^ hand
	var deck card.Mask
	for deck == 0 {
		deck = card.Mask(s.uint64()) & rest
	}
	return rainbow.State{Score: s.Intn(rainbow.ScoreLimit), Hand: hand, Deck: deck}
}
