package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFENStartPos(t *testing.T) {
	b, err := LoadFEN(StartFEN)
	require.NoError(t, err)
	require.Equal(t, StartPos(), b)
}

func TestLoadFENRoundTrip(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	b, err := LoadFEN(fen)
	require.NoError(t, err)
	require.NoError(t, b.Verify())
	require.Equal(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", b.FEN())
}

func TestLoadFENInvalidDoesNotPartiallyMutate(t *testing.T) {
	b, err := LoadFEN("not a fen")
	require.Error(t, err)
	require.Equal(t, Board{}, b)
}

func TestLoadFENInvalidPiecePlacement(t *testing.T) {
	_, err := LoadFEN("bad/8/8/8/8/8/8/8 w - - 0 1")
	require.ErrorIs(t, err, ErrInvalidPiecePlacement)
}

func TestLoadFENInvalidSideToMove(t *testing.T) {
	_, err := LoadFEN(StartFENWithSide("x"))
	require.ErrorIs(t, err, ErrInvalidSideToMove)
}

// StartFENWithSide substitutes the side-to-move field for testing malformed input.
func StartFENWithSide(side string) string {
	return "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR " + side + " KQkq - 0 1"
}

func TestLoadFENInvalidEnPassant(t *testing.T) {
	_, err := LoadFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1")
	require.ErrorIs(t, err, ErrInvalidEnPassant)
}

func TestLoadFENMissingFields(t *testing.T) {
	_, err := LoadFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	require.ErrorIs(t, err, ErrInvalidFEN)
}
