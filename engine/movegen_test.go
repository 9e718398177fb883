package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func countMoves(b *Board, class GenClass) int {
	return len(GenerateMoves(b, class, make([]Move, 0, 64)))
}

func containsMove(moves []Move, m Move) bool {
	for _, c := range moves {
		if c == m {
			return true
		}
	}
	return false
}

func TestGenerateMovesStartPos(t *testing.T) {
	b := StartPos()
	require.Equal(t, 20, countMoves(&b, Legal))
	require.Equal(t, 0, countMoves(&b, Tactical))
	require.Equal(t, 20, countMoves(&b, NonTactical))
}

func TestGenerateMovesDoubleCheckOnlyKingMoves(t *testing.T) {
	// Black king on e8 is attacked by both the rook on e1 and the
	// knight on d6 simultaneously.
	fen := "4k3/8/3N4/8/8/8/8/4R1K1 b - - 0 1"
	b, err := LoadFEN(fen)
	require.NoError(t, err)
	require.Equal(t, 2, b.Checkers().Popcnt())

	moves := GenerateMoves(&b, Legal, make([]Move, 0, 64))
	for _, m := range moves {
		require.Equal(t, SquareE8, m.From(), "only the king may move under double check")
	}
}

func TestGenerateMovesPinRestrictsToLine(t *testing.T) {
	// White bishop on e4 pinned to the king on e1 by the black rook on e8:
	// it may only move along the e-file, so it has zero legal moves here
	// (a bishop can't move along a file).
	fen := "4r3/8/8/8/4B3/8/8/4K3 w - - 0 1"
	b, err := LoadFEN(fen)
	require.NoError(t, err)

	moves := GenerateMoves(&b, Legal, make([]Move, 0, 64))
	for _, m := range moves {
		require.NotEqual(t, RankFile(3, 4), m.From(), "pinned bishop has no legal moves along the e-file")
	}
}

func TestGenerateMovesPinnedRookAlongPinLine(t *testing.T) {
	// White rook on e4 pinned along the e-file can still slide on that file.
	fen := "4r3/8/8/8/4R3/8/8/4K3 w - - 0 1"
	b, err := LoadFEN(fen)
	require.NoError(t, err)

	moves := GenerateMoves(&b, Legal, make([]Move, 0, 64))
	require.True(t, containsMove(moves, NewMove(Normal, RankFile(3, 4), RankFile(4, 4))), "pinned rook may still push along the pin line")
	require.False(t, containsMove(moves, NewMove(Normal, RankFile(3, 4), RankFile(3, 3))), "pinned rook may not leave the pin line")
}

func TestGenerateMovesEnPassantHorizontalPinDisallowed(t *testing.T) {
	// White king a5, white pawn d5, black pawn e5, black rook h5: king and
	// enemy rook share a rank with both pawns between them, so capturing
	// en passant would expose the king.
	fen := "8/8/8/K2Pp2r/8/8/8/8 w - e6 0 1"
	b, err := LoadFEN(fen)
	require.NoError(t, err)

	moves := GenerateMoves(&b, Legal, make([]Move, 0, 64))
	epMove := NewMove(EnPassant, RankFile(4, 3), RankFile(5, 4))
	require.False(t, containsMove(moves, epMove), "en-passant capture must not expose the king on the rank")
}

func TestGenerateMovesEnPassantAllowedWhenSafe(t *testing.T) {
	fen := "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1"
	b, err := LoadFEN(fen)
	require.NoError(t, err)

	moves := GenerateMoves(&b, Legal, make([]Move, 0, 64))
	epMove := NewMove(EnPassant, RankFile(4, 4), RankFile(5, 3))
	require.True(t, containsMove(moves, epMove))
}

func TestGenerateMovesCastlingBlockedByAttacker(t *testing.T) {
	// Black rook on f8 attacks f1, the square the king crosses kingside.
	fen := "5r2/8/8/8/8/8/8/4K2R w K - 0 1"
	b, err := LoadFEN(fen)
	require.NoError(t, err)

	moves := GenerateMoves(&b, Legal, make([]Move, 0, 64))
	require.False(t, containsMove(moves, NewMove(Castling, SquareE1, SquareG1)))
}

func TestGenerateMovesCastlingAllowedWhenClear(t *testing.T) {
	fen := "4k3/8/8/8/8/8/8/4K2R w K - 0 1"
	b, err := LoadFEN(fen)
	require.NoError(t, err)

	moves := GenerateMoves(&b, Legal, make([]Move, 0, 64))
	require.True(t, containsMove(moves, NewMove(Castling, SquareE1, SquareG1)))
}

func TestGenerateMovesTacticalOnlyPromotionsAndCaptures(t *testing.T) {
	fen := "4k3/P7/8/8/8/8/8/4K3 w - - 0 1"
	b, err := LoadFEN(fen)
	require.NoError(t, err)

	moves := GenerateMoves(&b, Tactical, make([]Move, 0, 64))
	require.Len(t, moves, 4, "four promotion choices, no quiet king moves")
	for _, m := range moves {
		require.Equal(t, Promotion, m.Type())
	}
}
