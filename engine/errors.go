package engine

import "errors"

// Sentinel errors returned by the core's parsers. Per spec, malformed
// input never partially mutates its target: callers only see these
// after any in-progress Board build has been discarded.
var (
	ErrInvalidFEN          = errors.New("engine: invalid FEN")
	ErrInvalidPiecePlacement = errors.New("engine: invalid piece placement field")
	ErrInvalidSideToMove   = errors.New("engine: invalid side-to-move field")
	ErrInvalidCastling     = errors.New("engine: invalid castling-rights field")
	ErrInvalidEnPassant    = errors.New("engine: invalid en-passant field")
	ErrInvalidMoveText     = errors.New("engine: invalid move text")
)
