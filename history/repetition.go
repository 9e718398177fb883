// Package history implements the History collaborator the spec assigns
// to the driver/search layer rather than the core: a rolling stack of
// position keys along the current search path, queried for threefold-
// style repetition during search. Grounded on the teacher's own
// search-stack key tracking (Search.Stack key history), repackaged as a
// standalone type so the core stays free of search concerns.
package history

import "github.com/tarraschchess/core/engine"

// History is a stack of Zobrist keys visited along the current search
// path, one entry per ply since the game (or the last irreversible
// move) began. It is not safe for concurrent use by multiple searches;
// each search thread owns its own History.
type History struct {
	keys []uint64
}

// New returns an empty History.
func New() *History {
	return &History{keys: make([]uint64, 0, 128)}
}

// Push records b's key as the most recent ply. Call once per do_move
// (or do_null_move) applied along the search path, before checking
// IsRepetition against the same board.
func (h *History) Push(b *engine.Board) {
	h.keys = append(h.keys, b.Key())
}

// Pop discards the most recently pushed key, undoing the last Push.
func (h *History) Pop() {
	h.keys = h.keys[:len(h.keys)-1]
}

// Len reports how many keys are currently on the stack.
func (h *History) Len() int {
	return len(h.keys)
}

// IsRepetition reports whether b's key (already Push'd as the most
// recent entry) recurs earlier within the last
// min(half_moves, plies_from_null) plies of history, scanned at even
// strides (only positions with the same side to move as b can equal
// b's key). A null move resets plies_from_null to zero, so it closes
// the detection window: no repetition can be reported across it.
func (h *History) IsRepetition(b *engine.Board) bool {
	window := b.HalfMoves()
	if b.PliesFromNull() < window {
		window = b.PliesFromNull()
	}
	n := len(h.keys)
	if n == 0 || window < 2 {
		return false
	}
	key := b.Key()
	// h.keys[n-1] is b's own just-pushed key; step back by 2 plies at a
	// time so every candidate shares b's side to move.
	for back := 2; back <= window && back <= n-1; back += 2 {
		if h.keys[n-1-back] == key {
			return true
		}
	}
	return false
}
