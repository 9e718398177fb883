// movetext.go parses and formats long-algebraic move text
// ("<from><to>[promo]"). Move.String() already renders this format
// directly, since the packed Move's `to` square is already the king's
// castling destination or the en-passant target square; what parsing
// needs is the opposite direction — recovering which MoveType a bare
// four-or-five character string denotes, which the text alone doesn't
// encode. Grounded on the teacher's UCIToMove disambiguation (castling/
// en-passant/promotion inferred from from/to plus board state).
package engine

// FormatMove renders m as long algebraic move text.
func FormatMove(m Move) string { return m.String() }

// ParseMoveText parses long algebraic move text against board b,
// inferring the move's type from b's state. The result is not
// guaranteed legal — validate with IsValidMove before playing it.
func ParseMoveText(b *Board, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return MoveNone, ErrInvalidMoveText
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return MoveNone, ErrInvalidMoveText
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return MoveNone, ErrInvalidMoveText
	}

	promo := NoPieceType
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return MoveNone, ErrInvalidMoveText
		}
	}

	moved := b.PieceOn(from)
	if moved == NoPiece {
		return MoveNone, ErrInvalidMoveText
	}

	switch {
	case moved.Type() == King && from.Rank() == to.Rank() && fileDistance(from, to) == 2:
		return NewMove(Castling, from, to), nil
	case moved.Type() == Pawn && b.ep != SquareNone && to == b.ep && from.File() != to.File():
		return NewMove(EnPassant, from, to), nil
	case promo != NoPieceType:
		return NewPromotion(from, to, promo), nil
	default:
		return NewMove(Normal, from, to), nil
	}
}

func fileDistance(a, b Square) int {
	d := a.File() - b.File()
	if d < 0 {
		d = -d
	}
	return d
}
