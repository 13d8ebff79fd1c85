// Package card models the rainbow deck: three suits of up to eight ranks,
// with hands and decks carried as bit masks.
//
// # Core Types
//
// Geometry: The shape of the deck (number of ranks). Standard is the
// 24-card production deck; smaller geometries exist so the whole pipeline
// can be exercised on a reduced deck.
//
// Card: A card index. Its rank is the index modulo the number of ranks and
// its suit is the index divided by the number of ranks.
//
// Mask: A set of cards, one bit per card index.
//
// # Enumeration
//
// Subsets walks the k-subsets of n items in lexicographic order and Hands
// turns that into every k-card hand of a geometry.
package card
