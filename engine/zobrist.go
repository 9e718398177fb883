// zobrist.go holds the random tables used to incrementally hash a Board.
//
// More information on Zobrist hashing can be found in the paper:
// http://research.cs.wisc.edu/techreports/1970/TR88.pdf
package engine

import "math/rand"

var (
	// zobristPsq[piece][sq] is XORed in/out whenever a piece is placed on
	// or removed from a square. Indexed by the full Piece encoding, so
	// NoPiece's row (zobristPsq[NoPiece]) is unused but kept for direct
	// Piece-indexed lookup without a color/type split.
	zobristPsq [PieceArraySize][64]uint64

	// zobristCastling is indexed directly by the 4-bit CastlingRights mask.
	zobristCastling [CastlingRightsArraySize]uint64

	// zobristEnpassant is indexed by file (0..7); only ever XORed in for
	// the rank an en-passant capture is actually possible on.
	zobristEnpassant [8]uint64

	// zobristSide is XORed in whenever it's Black to move.
	zobristSide uint64
)

func init() {
	// Fixed seed: position keys must reproduce identically across runs,
	// since the TT and tests both depend on them.
	r := rand.New(rand.NewSource(0x5a5a5a5a))

	for c := Color(White); c <= Black; c++ {
		for pt := PieceTypeMinValue; pt <= PieceTypeMaxValue; pt++ {
			p := MakePiece(c, pt)
			for sq := SquareMinValue; sq <= SquareMaxValue; sq++ {
				zobristPsq[p][sq] = rand64(r)
			}
		}
	}
	for cr := 0; cr < CastlingRightsArraySize; cr++ {
		zobristCastling[cr] = rand64(r)
	}
	for f := 0; f < 8; f++ {
		zobristEnpassant[f] = rand64(r)
	}
	zobristSide = rand64(r)
}

func rand64(r *rand.Rand) uint64 {
	return uint64(r.Int63())<<32 ^ uint64(r.Int63())
}

// ZobristPiece returns the hash contribution of piece p sitting on sq.
func ZobristPiece(p Piece, sq Square) uint64 {
	return zobristPsq[p][sq]
}

// ZobristCastling returns the hash contribution of a castling-rights mask.
func ZobristCastling(cr CastlingRights) uint64 {
	return zobristCastling[cr]
}

// ZobristEnpassant returns the hash contribution of an en-passant target
// square (only its file matters).
func ZobristEnpassant(sq Square) uint64 {
	if sq == SquareNone {
		return 0
	}
	return zobristEnpassant[sq.File()]
}

// ZobristSide returns the hash contribution of Black being on move.
func ZobristSide() uint64 {
	return zobristSide
}
