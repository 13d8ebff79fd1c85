package card

import "gonum.org/v1/gonum/stat/combin"

// Subsets calls yield with every k-subset of {0, ..., n-1}, in lexicographic
// order of the sorted index tuples, until yield returns false.
// The slice passed to yield is reused between calls.
func Subsets(n, k int, yield func(idx []int) bool) {
	if k < 0 || k > n {
		return
	}
	gen := combin.NewCombinationGenerator(n, k)
	idx := make([]int, k)
	for gen.Next() {
		if !yield(gen.Combination(idx)) {
			return
		}
	}
}

// Binomial returns C(n, k), or 0 when k is out of range.
func Binomial(n, k int) int {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	return combin.Binomial(n, k)
}

// Hands returns every k-card hand of g, in lexicographic order of their cards.
func Hands(g Geometry, k int) []Mask {
	hands := make([]Mask, 0, Binomial(g.Cards(), k))
	Subsets(g.Cards(), k, func(idx []int) bool {
		var m Mask
		for _, i := range idx {
			m |= Mask(1) << i
		}
		hands = append(hands, m)
		return true
	})
	return hands
}
