// Package storage keeps the reachability map: one bit per storable
// canonical game state, addressed by a closed-form offset.
//
// # Layout
//
// The offset of a canonical state is
//
//	((score x H + hand rank) << FreeBits) + compacted deck
//
// where H is the number of canonical hands and the hand rank is the index of
// the canonical hand in the sorted hand table. The array therefore spans
// ScoreLimit x H x 2^FreeBits bits; 40 x 7448 x 2^19 for the standard deck.
//
// # Serialisation
//
// Bits are packed eight per byte, most significant bit first, and the
// unused tail of the final byte is zero. There is no header: a reader must
// know the geometry. Bits and Mapped keep their memory in exactly that
// layout, so dumping is a plain copy and Mapped is its own dump file.
package storage
