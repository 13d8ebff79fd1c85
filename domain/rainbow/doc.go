// Package rainbow implements the rules of the rainbow card game needed to
// enumerate its reachable configurations.
//
// # Rules
//
// A player holds five cards drawn from a deck of three suits. On each turn
// the player either discards one held card and draws one replacement, or
// plays a combination of three held cards and draws up to three
// replacements. Combinations are:
//   - Suited run: three consecutive ranks of one suit, worth 50 + 10 x low rank
//   - Mixed run: three consecutive ranks of mixed suits, worth 10 + 10 x low rank
//   - Triple: one rank in all three suits, worth 20 + 10 x rank
//
// Scores are tracked in tens of points, so a suited run from rank 2 moves
// the score by 7. A state stops being storable once the score reaches
// ScoreLimit, the deck runs out or the hand drops below five cards.
//
// # Symmetry
//
// The rules do not distinguish suits, so states that differ only by a
// permutation of suits are equivalent. Canonicalize picks the smallest
// variant of every class.
//
// # Tables
//
// Tables owns the lookups built once per geometry: the ordered move list
// of every 5-card hand and the sorted index of canonical hands. It is
// immutable after NewTables returns and is passed to every consumer.
package rainbow
