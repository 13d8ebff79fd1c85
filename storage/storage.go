package storage

import (
	"fmt"

	"github.com/luca-patrignani/mu-rainbow/domain/rainbow"
)

// Size returns the number of bits needed to address every storable state:
// ScoreLimit x hands x 2^FreeBits.
func Size(t *rainbow.Tables) uint64 {
	return uint64(rainbow.ScoreLimit) * uint64(len(t.Hands())) << t.Geometry().FreeBits()
}

// Storage marks game states in a BitArray. Every access canonicalises its
// state first, so equivalent states share one bit.
type Storage struct {
	tables *rainbow.Tables
	bits   BitArray
	hands  uint64
	free   uint
}

// New addresses a through the tables' canonical hand index.
//
// Returns an error if a is not exactly Size(t) bits long.
func New(t *rainbow.Tables, a BitArray) (*Storage, error) {
	if want := Size(t); a.Len() != want {
		return nil, fmt.Errorf("storage needs %d bits, got %d", want, a.Len())
	}
	return &Storage{
		tables: t,
		bits:   a,
		hands:  uint64(len(t.Hands())),
		free:   uint(t.Geometry().FreeBits()),
	}, nil
}

// Bits returns the backing array.
func (s *Storage) Bits() BitArray {
	return s.bits
}

// Offset returns the bit index of s:
// ((score x hands + hand rank) << FreeBits) + compacted deck,
// computed on the canonical form of s.
func (s *Storage) Offset(st rainbow.State) uint64 {
	g := s.tables.Geometry()
	if extra := (st.Hand | st.Deck) &^ g.FullMask(); extra != 0 {
		panic(fmt.Sprintf("storage: cards %b outside a %d-card deck", extra, g.Cards()))
	}
	c := rainbow.Canonicalize(g, st)
	if c.Score < 0 || c.Score >= rainbow.ScoreLimit {
		panic(fmt.Sprintf("storage: score %d out of range", c.Score))
	}
	rank, ok := s.tables.HandRank(c.Hand)
	if !ok {
		panic(fmt.Sprintf("storage: canonical hand %b missing from the hand index", c.Hand))
	}
	deck := uint64(rainbow.CompactDeck(c.Hand, c.Deck))
	return ((uint64(c.Score)*s.hands + uint64(rank)) << s.free) + deck
}

// Get reports whether st is marked.
func (s *Storage) Get(st rainbow.State) bool {
	return s.bits.Get(s.Offset(st))
}

// Set marks or clears st.
func (s *Storage) Set(st rainbow.State, v bool) {
	s.bits.Set(s.Offset(st), v)
}
