// fen.go parses and emits Forsyth-Edwards Notation. Grounded on the
// teacher's PositionFromFEN/ParsePiecePlacement/ParseSideToMove/
// ParseCastlingAbility/ParseEnpassantSquare split and its String()
// emitter, rewritten against the by-value Board. Parsing never mutates
// a caller-visible Board: every field is written into a local zero
// value and only returned once the whole string has parsed successfully.
package engine

import (
	"strconv"
	"strings"
)

// StartFEN is the standard starting position in FEN.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// LoadFEN parses a standard 6-field FEN string into a Board. The
// halfmove and fullmove counters are accepted but only the halfmove
// clock is stored, per spec's External Interfaces.
func LoadFEN(fen string) (Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Board{}, ErrInvalidFEN
	}

	var b Board
	b.ep = SquareNone

	if err := parsePiecePlacement(fields[0], &b); err != nil {
		return Board{}, err
	}
	if err := parseSideToMove(fields[1], &b); err != nil {
		return Board{}, err
	}
	if err := parseCastlingAbility(fields[2], &b); err != nil {
		return Board{}, err
	}
	if err := parseEnPassant(fields[3], &b); err != nil {
		return Board{}, err
	}
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return Board{}, ErrInvalidFEN
		}
		b.halfMoves = n
	}

	b.key ^= ZobristCastling(b.cr)
	if b.ep != SquareNone {
		b.key ^= ZobristEnpassant(b.ep)
	}
	if b.stm == Black {
		b.key ^= ZobristSide()
	}
	b.recomputeCheckCache()
	b.checkers |= b.directCheckers()
	return b, nil
}

func parsePiecePlacement(field string, b *Board) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return ErrInvalidPiecePlacement
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				if file > 8 {
					return ErrInvalidPiecePlacement
				}
				continue
			}
			p, ok := symbolToPiece[ch]
			if !ok || file >= 8 {
				return ErrInvalidPiecePlacement
			}
			b.putPiece(p, RankFile(rank, file))
			file++
		}
		if file != 8 {
			return ErrInvalidPiecePlacement
		}
	}
	return nil
}

func parseSideToMove(field string, b *Board) error {
	switch field {
	case "w":
		b.stm = White
	case "b":
		b.stm = Black
	default:
		return ErrInvalidSideToMove
	}
	return nil
}

func parseCastlingAbility(field string, b *Board) error {
	if field == "-" {
		b.cr = NoCastling
		return nil
	}
	for _, ch := range field {
		switch ch {
		case 'K':
			b.cr |= WhiteKingside
		case 'Q':
			b.cr |= WhiteQueenside
		case 'k':
			b.cr |= BlackKingside
		case 'q':
			b.cr |= BlackQueenside
		default:
			return ErrInvalidCastling
		}
	}
	return nil
}

func parseEnPassant(field string, b *Board) error {
	if field == "-" {
		b.ep = SquareNone
		return nil
	}
	sq, err := SquareFromString(field)
	if err != nil {
		return ErrInvalidEnPassant
	}
	b.ep = sq
	return nil
}

// FEN renders b as a standard 6-field FEN string. The fullmove counter
// is always emitted as 1 since the core never stores it (spec's
// External Interfaces); a round-tripped FEN's Board state is still
// identical (same key), just not byte-identical text.
func (b *Board) FEN() string {
	var s strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.mailbox[RankFile(rank, file)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				s.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			s.WriteString(p.String())
		}
		if empty > 0 {
			s.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			s.WriteByte('/')
		}
	}
	s.WriteByte(' ')
	s.WriteString(b.stm.String())
	s.WriteByte(' ')
	s.WriteString(b.cr.String())
	s.WriteByte(' ')
	s.WriteString(b.ep.String())
	s.WriteByte(' ')
	s.WriteString(strconv.Itoa(b.halfMoves))
	s.WriteString(" 1")
	return s.String()
}
