package perft

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tarraschchess/core/engine"
)

func load(t *testing.T, fen string) engine.Board {
	t.Helper()
	b, err := engine.LoadFEN(fen)
	require.NoError(t, err)
	return b
}

func TestCountStartPos(t *testing.T) {
	b := engine.StartPos()
	want := []uint64{1, 20, 400, 8902, 197281, 4865609}
	for depth, w := range want {
		r := Count(b, depth, nil)
		require.Equalf(t, w, r.Nodes, "depth %d", depth)
	}
}

func TestCountKiwipete(t *testing.T) {
	b := load(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	want := []uint64{1, 48, 2039, 97862, 4085603}
	for depth, w := range want {
		r := Count(b, depth, nil)
		require.Equalf(t, w, r.Nodes, "depth %d", depth)
	}
}

func TestCountPosition3(t *testing.T) {
	b := load(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	r := Count(b, 5, nil)
	require.Equal(t, uint64(674624), r.Nodes)
}

func TestCountPosition4(t *testing.T) {
	b := load(t, "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	r := Count(b, 4, nil)
	require.Equal(t, uint64(422333), r.Nodes)
}

func TestCountPosition5(t *testing.T) {
	b := load(t, "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
	r := Count(b, 3, nil)
	require.Equal(t, uint64(62379), r.Nodes)
}

func TestCountMemoMatchesUnmemoized(t *testing.T) {
	b := engine.StartPos()
	plain := Count(b, 4, nil)
	memo := NewMemo(1 << 16)
	memoized := Count(b, 4, memo)
	require.Equal(t, plain.Nodes, memoized.Nodes)
	require.Equal(t, plain.Captures, memoized.Captures)
}
