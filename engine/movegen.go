// movegen.go implements the strictly-legal move generator: pseudo-legal
// candidates are filtered inline against the pin/check cache so every
// emitted move is directly playable, never merely pseudo-legal.
package engine

// GenClass selects which subset of the legal move set to emit.
type GenClass int

const (
	// Tactical moves: captures, all four promotions, en-passant.
	Tactical GenClass = iota
	// NonTactical moves: quiet pushes, non-promotion quiets, castling.
	NonTactical
	// Legal is Tactical | NonTactical: every legal move.
	Legal
)

func wantTactical(c GenClass) bool    { return c == Tactical || c == Legal }
func wantNonTactical(c GenClass) bool { return c == NonTactical || c == Legal }

// bbFull is the all-ones bitboard, used as an unrestricted check mask.
const bbFull Bitboard = ^Bitboard(0)

// GenerateMoves appends every strictly legal move of class in the
// current position to moves and returns the extended slice.
func GenerateMoves(b *Board, class GenClass, moves []Move) []Move {
	us, them := b.stm, b.stm.Other()
	kingSq := b.KingSquare(us)
	occupiedNoKing := b.occupied &^ kingSq.Bitboard()

	for bb := KingAttacks(kingSq) &^ b.byColor[us]; bb != 0; {
		to := bb.Pop()
		isCapture := b.byColor[them].Has(to)
		if isCapture && !wantTactical(class) {
			continue
		}
		if !isCapture && !wantNonTactical(class) {
			continue
		}
		if b.AttackersTo(them, to, occupiedNoKing) != 0 {
			continue
		}
		moves = append(moves, NewMove(Normal, kingSq, to))
	}

	if b.checkers.Popcnt() >= 2 {
		// Double check: only the king can move.
		return moves
	}

	checkMask := bbFull
	if b.checkers != 0 {
		checkerSq := b.checkers.AsSquare()
		checkMask = BetweenBb(kingSq, checkerSq) | b.checkers
	}

	moves = b.generatePawnMoves(class, checkMask, moves)

	for bb := b.Pieces(us, Knight) &^ b.blockersForKing[us]; bb != 0; {
		sq := bb.Pop()
		atk := KnightAttacks(sq) & checkMask
		moves = emitFromAttacks(moves, class, sq, atk, b.byColor[them], b.occupied)
	}

	for _, pt := range [3]PieceType{Bishop, Rook, Queen} {
		for bb := b.Pieces(us, pt); bb != 0; {
			sq := bb.Pop()
			atk := AttacksBb(pt, sq, b.occupied)
			if b.blockersForKing[us].Has(sq) {
				atk &= LineBb(kingSq, sq)
			}
			atk &= checkMask
			moves = emitFromAttacks(moves, class, sq, atk, b.byColor[them], b.occupied)
		}
	}

	if b.checkers == 0 && wantNonTactical(class) {
		moves = b.generateCastling(moves)
	}
	return moves
}

// emitFromAttacks splits an attack bitboard into capture/quiet
// destinations and appends whichever class was requested.
func emitFromAttacks(moves []Move, class GenClass, from Square, atk, enemies, occupied Bitboard) []Move {
	if wantTactical(class) {
		for bb := atk & enemies; bb != 0; {
			moves = append(moves, NewMove(Normal, from, bb.Pop()))
		}
	}
	if wantNonTactical(class) {
		for bb := atk &^ occupied; bb != 0; {
			moves = append(moves, NewMove(Normal, from, bb.Pop()))
		}
	}
	return moves
}

var promotionPieces = [4]PieceType{Knight, Bishop, Rook, Queen}

func (b *Board) generatePawnMoves(class GenClass, checkMask Bitboard, moves []Move) []Move {
	us, them := b.stm, b.stm.Other()
	kingSq := b.KingSquare(us)
	forward, promRank, startRank := 1, 7, 1
	if us == Black {
		forward, promRank, startRank = -1, 0, 6
	}

	for bb := b.Pieces(us, Pawn); bb != 0; {
		from := bb.Pop()
		lineMask := bbFull
		if b.blockersForKing[us].Has(from) {
			lineMask = LineBb(kingSq, from)
		}
		moves = append(moves, b.generateOnePawn(class, checkMask, lineMask, from, forward, promRank, startRank, us)...)
	}

	if b.ep != SquareNone && wantTactical(class) {
		for bb := PawnAttacks(them, b.ep) & b.Pieces(us, Pawn); bb != 0; {
			from := bb.Pop()
			capSq := RankFile(from.Rank(), b.ep.File())
			if checkMask&(b.ep.Bitboard()|capSq.Bitboard()) == 0 {
				continue
			}
			if b.enPassantSafe(from, capSq, b.ep, us, them) {
				moves = append(moves, NewMove(EnPassant, from, b.ep))
			}
		}
	}
	return moves
}

func (b *Board) generateOnePawn(class GenClass, checkMask, lineMask Bitboard, from Square, forward, promRank, startRank int, us Color) []Move {
	var moves []Move
	them := us.Other()

	pushTo := from.Relative(forward, 0)
	if !b.occupied.Has(pushTo) {
		if dest := pushTo.Bitboard() & checkMask & lineMask; dest != 0 {
			moves = appendPawnDest(moves, class, from, pushTo, promRank)
		}
		if from.Rank() == startRank {
			dbl := from.Relative(2*forward, 0)
			if !b.occupied.Has(dbl) {
				if dest := dbl.Bitboard() & checkMask & lineMask; dest != 0 && wantNonTactical(class) {
					moves = append(moves, NewMove(Normal, from, dbl))
				}
			}
		}
	}

	if wantTactical(class) {
		for atk := PawnAttacks(us, from) & b.byColor[them] & checkMask & lineMask; atk != 0; {
			to := atk.Pop()
			moves = appendPawnDest(moves, class, from, to, promRank)
		}
	}
	return moves
}

func appendPawnDest(moves []Move, class GenClass, from, to Square, promRank int) []Move {
	if to.Rank() == promRank {
		if !wantTactical(class) {
			return moves
		}
		for _, pt := range promotionPieces {
			moves = append(moves, NewPromotion(from, to, pt))
		}
		return moves
	}
	isCapture := from.File() != to.File()
	if isCapture && !wantTactical(class) {
		return moves
	}
	if !isCapture && !wantNonTactical(class) {
		return moves
	}
	return append(moves, NewMove(Normal, from, to))
}

// enPassantSafe simulates the capture (both pawns removed, capturer on
// the ep square) and checks only for a newly exposed sliding check —
// the classic horizontal-pin case a pin/line mask can't express, since
// it spans neither the capturing pawn's line to the king nor check_mask.
func (b *Board) enPassantSafe(from, capSq, ep Square, us, them Color) bool {
	occ := (b.occupied &^ from.Bitboard() &^ capSq.Bitboard()) | ep.Bitboard()
	kingSq := b.KingSquare(us)
	attackers := RookAttacks(kingSq, occ)&(b.byType[Rook]|b.byType[Queen]) |
		BishopAttacks(kingSq, occ)&(b.byType[Bishop]|b.byType[Queen])
	return attackers&b.byColor[them] == 0
}

func (b *Board) generateCastling(moves []Move) []Move {
	us := b.stm
	if us == White {
		if b.cr&WhiteKingside != 0 {
			moves = b.tryCastle(moves, White, true)
		}
		if b.cr&WhiteQueenside != 0 {
			moves = b.tryCastle(moves, White, false)
		}
	} else {
		if b.cr&BlackKingside != 0 {
			moves = b.tryCastle(moves, Black, true)
		}
		if b.cr&BlackQueenside != 0 {
			moves = b.tryCastle(moves, Black, false)
		}
	}
	return moves
}

func (b *Board) tryCastle(moves []Move, us Color, kingside bool) []Move {
	rank := 0
	if us == Black {
		rank = 7
	}
	kingFrom := RankFile(rank, 4)

	var kingTo, crossSq Square
	var emptyMask Bitboard
	if kingside {
		kingTo, crossSq = RankFile(rank, 6), RankFile(rank, 5)
		emptyMask = RankFile(rank, 5).Bitboard() | RankFile(rank, 6).Bitboard()
	} else {
		kingTo, crossSq = RankFile(rank, 2), RankFile(rank, 3)
		emptyMask = RankFile(rank, 1).Bitboard() | RankFile(rank, 2).Bitboard() | RankFile(rank, 3).Bitboard()
	}
	if b.occupied&emptyMask != 0 {
		return moves
	}

	occNoKing := b.occupied &^ kingFrom.Bitboard()
	them := us.Other()
	for _, sq := range [3]Square{kingFrom, crossSq, kingTo} {
		if b.AttackersTo(them, sq, occNoKing) != 0 {
			return moves
		}
	}
	return append(moves, NewMove(Castling, kingFrom, kingTo))
}
