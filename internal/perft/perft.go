// Package perft counts the leaves of the legal move tree at a given
// depth, the core's principal correctness test. Grounded on the
// teacher's perft/perft.go (the depth-1 leaf-classification counters,
// the Zobrist-keyed memo table), reworked against the by-value
// engine.Board: since DoMove returns a new Board rather than mutating
// in place, there is no UndoMove to call back — each recursive call
// simply receives its own child Board by value.
package perft

import "github.com/tarraschchess/core/engine"

// Counters tallies leaf classifications at the bottom of a perft walk.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
}

// Add accumulates ot into co.
func (co *Counters) Add(ot Counters) {
	co.Nodes += ot.Nodes
	co.Captures += ot.Captures
	co.EnPassant += ot.EnPassant
	co.Castles += ot.Castles
	co.Promotions += ot.Promotions
}

type memoEntry struct {
	key      uint64
	depth    int
	counters Counters
	used     bool
}

// Memo is an optional Zobrist-keyed memo table that speeds up repeated
// perft walks across transpositions. A nil *Memo disables memoization.
type Memo struct {
	entries []memoEntry
}

// NewMemo allocates a memo table with the given number of slots.
func NewMemo(slots int) *Memo {
	if slots <= 0 {
		slots = 1
	}
	return &Memo{entries: make([]memoEntry, slots)}
}

// Count walks b's legal move tree to depth and returns leaf counters.
// Captures/en-passant/castles/promotions are only classified for moves
// made at depth 1 (i.e. counted once per leaf's immediate parent move),
// matching the standard perft divide convention.
func Count(b engine.Board, depth int, memo *Memo) Counters {
	if depth == 0 {
		return Counters{Nodes: 1}
	}

	var idx uint64
	if memo != nil {
		idx = b.Key() % uint64(len(memo.entries))
		e := &memo.entries[idx]
		if e.used && e.key == b.Key() && e.depth == depth {
			return e.counters
		}
	}

	var r Counters
	moves := engine.GenerateMoves(&b, engine.Legal, make([]engine.Move, 0, 256))
	for _, m := range moves {
		if depth == 1 {
			switch m.Type() {
			case engine.EnPassant:
				r.EnPassant++
				r.Captures++
			case engine.Castling:
				r.Castles++
			case engine.Promotion:
				r.Promotions++
				if b.PieceOn(m.To()) != engine.NoPiece {
					r.Captures++
				}
			default:
				if b.PieceOn(m.To()) != engine.NoPiece {
					r.Captures++
				}
			}
		}
		child := b.DoMove(m)
		r.Add(Count(child, depth-1, memo))
	}

	if memo != nil {
		memo.entries[idx] = memoEntry{key: b.Key(), depth: depth, counters: r, used: true}
	}
	return r
}
