// see.go implements static exchange evaluation: the net material result
// of every capture/recapture on one square, assuming both sides play the
// locally optimal sequence. Grounded on the teacher's see.go (the same
// least-valuable-attacker swap algorithm), adapted to the by-value Board
// and its bitboard accessors. Per spec §9's open question, SEE is
// "declared but not defined" in the source; this implements the
// canonical algorithm the chess-engine literature (and the teacher's own
// codebase family) uses.
package engine

// seeValue indexes directly by PieceType (NoPieceType..King).
var seeValue = [PieceTypeArraySize]int{0, 100, 320, 330, 500, 900, 20000}

// SEE returns the static exchange evaluation of move m: the net
// centipawn material change on m.To() if both sides recapture with
// their least valuable attacker until no recapture improves on the
// alternative of stopping. m must be pseudo-legal in b.
func SEE(b *Board, m Move) int {
	from, to := m.From(), m.To()
	occ := b.occupied &^ from.Bitboard()
	attackers := b.allAttackersTo(to, occ)

	var gain [32]int
	d := 0

	var attacker PieceType
	switch m.Type() {
	case EnPassant:
		gain[0] = seeValue[Pawn]
		attacker = Pawn
	case Promotion:
		gain[0] = seeValue[b.PieceOn(to).Type()] + seeValue[m.PromotionType()] - seeValue[Pawn]
		attacker = m.PromotionType()
	default:
		gain[0] = seeValue[b.PieceOn(to).Type()]
		attacker = b.PieceOn(from).Type()
	}

	mayXray := b.byType[Pawn] | b.byType[Bishop] | b.byType[Rook] | b.byType[Queen]
	curFrom := from
	side := b.stm.Other()

	for {
		d++
		gain[d] = seeValue[attacker] - gain[d-1]

		attackers &^= curFrom.Bitboard()
		occ &^= curFrom.Bitboard()
		if mayXray.Has(curFrom) {
			attackers |= b.allAttackersTo(to, occ) & occ
		}

		sq, pt, ok := leastValuableAttacker(b, attackers, side)
		if !ok {
			break
		}
		curFrom, attacker, side = sq, pt, side.Other()
	}

	// Back-propagate from the deepest ply down to the root. The last
	// computed gain[d] is speculative (its own attacker search came back
	// empty), so the loop never reads it and starts from gain[d-1]. The
	// bound d > 1 ends the loop once gain[0] is written; d > 0 would
	// index gain[-1].
	for d > 1 {
		d--
		gain[d-1] = -maxInt(-gain[d-1], gain[d])
	}
	return gain[0]
}

// SeeGe reports whether SEE(b, m) >= threshold, the "is this capture at
// least this good" test search pruning typically wants.
func SeeGe(b *Board, m Move, threshold int) bool {
	return SEE(b, m) >= threshold
}

func leastValuableAttacker(b *Board, attackers Bitboard, side Color) (Square, PieceType, bool) {
	ours := attackers & b.byColor[side]
	for pt := PieceTypeMinValue; pt <= PieceTypeMaxValue; pt++ {
		if bb := ours & b.byType[pt]; bb != 0 {
			return bb.LSB().AsSquare(), pt, true
		}
	}
	return SquareNone, NoPieceType, false
}

// allAttackersTo returns every attacker of sq, either color, given occupied.
func (b *Board) allAttackersTo(sq Square, occupied Bitboard) Bitboard {
	return b.AttackersTo(White, sq, occupied) | b.AttackersTo(Black, sq, occupied)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
