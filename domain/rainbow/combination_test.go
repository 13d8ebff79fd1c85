package rainbow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/mu-rainbow/domain/card"
)

var std = card.Standard

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		cards  card.Mask
		kind   Kind
		low    int
		points int
	}{
		{"suited run from the bottom", card.MaskOf(0, 1, 2), SuitedRun, 0, 50},
		{"suited run at the top", card.MaskOf(21, 22, 23), SuitedRun, 5, 100},
		{"mixed run", card.MaskOf(11, 4, 21), MixedRun, 3, 40},
		{"triple", card.MaskOf(2, 10, 18), Triple, 2, 40},
		{"triple of sevens", card.MaskOf(7, 15, 23), Triple, 7, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Classify(std, tt.cards)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, c.Kind)
			assert.Equal(t, tt.low, c.Low)
			assert.Equal(t, tt.points, c.Points())
			assert.Equal(t, tt.points/10, c.Delta())
		})
	}
}

func TestClassifyRejects(t *testing.T) {
	for _, m := range []card.Mask{
		card.MaskOf(0, 1),
		card.MaskOf(0, 1, 2, 3),
		card.MaskOf(0, 1, 3),
		card.MaskOf(0, 8, 9),
		card.MaskOf(7, 8, 9), // ranks 7, 0, 1 do not wrap
	} {
		_, err := Classify(std, m)
		assert.Error(t, err, "mask %b", m)
	}
}

func TestCombinationsSuitedHand(t *testing.T) {
	combos := Combinations(std, card.MaskOf(0, 1, 2, 3, 4))
	require.Len(t, combos, 3)
	for i, c := range combos {
		assert.Equal(t, SuitedRun, c.Kind)
		assert.Equal(t, i, c.Low)
	}
}

func TestCombinationsMixedAndTriple(t *testing.T) {
	// ranks 0, 1, 2 across three suits plus a rank-0 triple
	combos := Combinations(std, card.MaskOf(0, 8, 16, 9, 2))
	kinds := map[Kind]int{}
	for _, c := range combos {
		kinds[c.Kind]++
	}
	// three rank-0 cards x one rank-1 card x one rank-2 card, never all in one suit
	assert.Equal(t, 0, kinds[SuitedRun])
	assert.Equal(t, 3, kinds[MixedRun])
	assert.Equal(t, 1, kinds[Triple])
	assert.Equal(t, Triple, combos[len(combos)-1].Kind)
}

func TestCombinationsNone(t *testing.T) {
	assert.Empty(t, Combinations(std, card.MaskOf(0, 2, 4, 6, 9)))
}
