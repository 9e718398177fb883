// movepicker.go implements the staged move picker: a small state
// machine that yields one move at a time (TT move first, then tactical,
// then quiet), so a caller never has to hold a fully generated and
// sorted move list when a cutoff might make most of it unnecessary.
// Grounded on the teacher's move_ordering.go generation-state machine
// (msHash/msGenViolent/msReturnViolent/...), restaged to spec §4.8's
// five named stages.
package engine

type pickerStage int

const (
	stageTTMove pickerStage = iota
	stageInitTactical
	stageTactical
	stageInitNonTactical
	stageNonTactical
	stageDone
)

// MovePicker yields strictly legal moves from a Board one at a time.
type MovePicker struct {
	b      *Board
	ttMove Move
	stage  pickerStage
	moves  []Move
	idx    int
	// tacticalOnly ends the picker after the tactical stage.
	tacticalOnly bool
}

// NewMovePicker constructs a picker staged TT_MOVE → tactical → quiet.
// If ttMove is MOVE_NONE or not legal in b, it's skipped and the picker
// starts directly at the tactical stage.
func NewMovePicker(b *Board, ttMove Move) *MovePicker {
	mp := &MovePicker{b: b, ttMove: ttMove, stage: stageInitTactical}
	if ttMove != MoveNone && IsValidMove(b, ttMove) {
		mp.stage = stageTTMove
	}
	return mp
}

// NewQuiescenceMovePicker constructs a picker with no TT move, starting
// directly at the tactical stage and yielding tactical moves only —
// the shape quiescence search wants.
func NewQuiescenceMovePicker(b *Board) *MovePicker {
	return &MovePicker{b: b, stage: stageInitTactical, tacticalOnly: true}
}

// Next advances the state machine and returns the next move, or
// MOVE_NONE once every stage is exhausted.
func (mp *MovePicker) Next() Move {
	for {
		switch mp.stage {
		case stageTTMove:
			mp.stage = stageInitTactical
			return mp.ttMove

		case stageInitTactical:
			mp.moves = GenerateMoves(mp.b, Tactical, mp.moves[:0])
			mp.moves = excludeMove(mp.moves, mp.ttMove)
			mp.idx = 0
			mp.stage = stageTactical

		case stageTactical:
			if mp.idx < len(mp.moves) {
				m := mp.moves[mp.idx]
				mp.idx++
				scoreTactical(m) // selection is FIFO; see Open Questions
				return m
			}
			if mp.tacticalOnly {
				mp.stage = stageDone
				continue
			}
			mp.stage = stageInitNonTactical

		case stageInitNonTactical:
			mp.moves = GenerateMoves(mp.b, NonTactical, mp.moves[:0])
			mp.moves = excludeMove(mp.moves, mp.ttMove)
			mp.idx = 0
			mp.stage = stageNonTactical

		case stageNonTactical:
			if mp.idx < len(mp.moves) {
				m := mp.moves[mp.idx]
				mp.idx++
				scoreNontactical(m) // selection is FIFO; see Open Questions
				return m
			}
			mp.stage = stageDone

		case stageDone:
			return MoveNone
		}
	}
}

func excludeMove(moves []Move, exclude Move) []Move {
	if exclude == MoveNone {
		return moves
	}
	n := 0
	for _, m := range moves {
		if m != exclude {
			moves[n] = m
			n++
		}
	}
	return moves[:n]
}

// scoreTactical and scoreNontactical mirror the reviewed source's
// move-ordering hooks. There, both only perform TT-move exclusion; no
// MVV-LVA, SEE or history ordering is applied, an ambiguity spec's
// Open Questions says not to guess past. Selection stays FIFO.
func scoreTactical(m Move) int    { return 0 }
func scoreNontactical(m Move) int { return 0 }
