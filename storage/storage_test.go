package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/mu-rainbow/domain/card"
	"github.com/luca-patrignani/mu-rainbow/domain/rainbow"
)

func newTables(t *testing.T, ranks int) *rainbow.Tables {
	t.Helper()
	tables, err := rainbow.NewTables(card.Geometry{Ranks: ranks})
	require.NoError(t, err)
	return tables
}

func TestSize(t *testing.T) {
	assert.Equal(t, uint64(40*27)<<4, Size(newTables(t, 3)))
	assert.Equal(t, uint64(40*152)<<7, Size(newTables(t, 4)))
	assert.Equal(t, uint64(40*7448)<<19, Size(newTables(t, 8)))
}

func TestNewRejectsWrongLength(t *testing.T) {
	tables := newTables(t, 3)
	_, err := New(tables, NewBits(Size(tables)-1))
	assert.Error(t, err)
	s, err := New(tables, NewBits(Size(tables)))
	require.NoError(t, err)
	assert.Equal(t, Size(tables), s.Bits().Len())
}

func TestOffsetInjective(t *testing.T) {
	tables := newTables(t, 4)
	g := tables.Geometry()
	s, err := New(tables, NewBits(Size(tables)))
	require.NoError(t, err)

	seen := NewBits(Size(tables))
	states := 0
	for score := 0; score < rainbow.ScoreLimit; score++ {
		for _, hand := range tables.Hands() {
			rest := g.FullMask() &^ hand
			for compact := uint32(1); compact < 1<<g.FreeBits(); compact++ {
				st := rainbow.State{Score: score, Hand: hand, Deck: rainbow.ExpandDeck(hand, compact)}
				require.Equal(t, rest, rest|st.Deck)
				if rainbow.Canonicalize(g, st) != st {
					continue
				}
				off := s.Offset(st)
				require.Less(t, off, Size(tables))
				require.False(t, seen.Get(off), "offset %d reused by %+v", off, st)
				seen.Set(off, true)
				states++
			}
		}
	}
	assert.Equal(t, uint64(states), Count(seen))
}

// lenOnly reports a length without backing storage, for offset-only checks.
type lenOnly uint64

func (l lenOnly) Get(uint64) bool { panic("lenOnly has no bits") }
func (l lenOnly) Set(uint64, bool) { panic("lenOnly has no bits") }
func (l lenOnly) Len() uint64 { return uint64(l) }

func TestGetSetCanonical(t *testing.T) {
	tables := newTables(t, 5)
	bits := NewBits(Size(tables))
	s, err := New(tables, bits)
	require.NoError(t, err)

	st := rainbow.State{Score: 12, Hand: card.MaskOf(5, 6, 7, 8, 12), Deck: card.MaskOf(0, 14)}
	assert.False(t, s.Get(st))
	s.Set(st, true)
	for _, p := range rainbow.SuitPermutations {
		assert.True(t, s.Get(st.Permute(tables.Geometry(), p)))
	}
	assert.Equal(t, uint64(1), Count(bits))

	other := st
	other.Score = 13
	assert.False(t, s.Get(other))

	s.Set(st, false)
	assert.Zero(t, Count(bits))
}

func TestOffsetStartingState(t *testing.T) {
	tables := newTables(t, 8)
	s, err := New(tables, lenOnly(Size(tables)))
	require.NoError(t, err)
	start := tables.StartingStates()[0]
	// score 0, hand rank 0, all 19 deck bits set
	assert.Equal(t, uint64(1)<<19-1, s.Offset(start))
}

func TestOffsetPanics(t *testing.T) {
	tables := newTables(t, 3)
	s, err := New(tables, NewBits(Size(tables)))
	require.NoError(t, err)
	hand := card.MaskOf(0, 1, 2, 3, 4)
	assert.Panics(t, func() { s.Offset(rainbow.State{Score: rainbow.ScoreLimit, Hand: hand, Deck: card.MaskOf(5)}) })
	assert.Panics(t, func() { s.Offset(rainbow.State{Hand: card.MaskOf(0, 1), Deck: card.MaskOf(5)}) })
}

func TestOffsetRejectsCardsOutsideDeck(t *testing.T) {
	tables := newTables(t, 3)
	s, err := New(tables, NewBits(Size(tables)))
	require.NoError(t, err)
	hand := card.MaskOf(0, 1, 2, 3, 4)
	valid := rainbow.State{Hand: hand, Deck: card.MaskOf(5)}
	require.NotPanics(t, func() { s.Offset(valid) })

	// card 9 would compact past the free bits and land in the next hand's slot
	assert.Panics(t, func() { s.Offset(rainbow.State{Hand: hand, Deck: card.MaskOf(5, 9)}) })
	assert.Panics(t, func() { s.Offset(rainbow.State{Hand: hand, Deck: card.MaskOf(20)}) })
	assert.Panics(t, func() { s.Set(rainbow.State{Hand: hand, Deck: card.MaskOf(5, 9)}, true) })
	assert.Zero(t, Count(s.Bits()))
}
