// piecelist.go builds the piece-list view an external NNUE-style
// Evaluator consumes. The core never scores a position itself — it
// only hands over pieces/squares in the contracted layout. Grounded
// on the teacher's piece-square iteration in position.go, repackaged
// into the flat pieces[]/squares[] shape an evaluator expects instead
// of bitboards.
package engine

// PieceList is the Evaluator's view of a Board: parallel Pieces and
// Squares arrays, terminated by a NoPiece sentinel entry, with both
// kings always first (white king at index 0, black king at index 1).
type PieceList struct {
	Pieces  [33]Piece
	Squares [33]Square
	Len     int
}

// BuildPieceList converts b into the Evaluator's piece-list contract.
func BuildPieceList(b *Board) PieceList {
	var pl PieceList

	wk := b.KingSquare(White)
	bk := b.KingSquare(Black)
	pl.Pieces[0], pl.Squares[0] = MakePiece(White, King), wk
	pl.Pieces[1], pl.Squares[1] = MakePiece(Black, King), bk
	pl.Len = 2

	for pt := Pawn; pt < King; pt++ {
		bb := b.Pieces(White, pt)
		for bb != 0 {
			sq := bb.Pop()
			pl.Pieces[pl.Len], pl.Squares[pl.Len] = MakePiece(White, pt), sq
			pl.Len++
		}
		bb = b.Pieces(Black, pt)
		for bb != 0 {
			sq := bb.Pop()
			pl.Pieces[pl.Len], pl.Squares[pl.Len] = MakePiece(Black, pt), sq
			pl.Len++
		}
	}

	pl.Pieces[pl.Len] = NoPiece
	return pl
}
