package engine

// Named squares, used by castling, en-passant and attack-table setup.
const (
	SquareA1 Square = 8*iota + 0
	SquareA2
	SquareA3
	SquareA4
	SquareA5
	SquareA6
	SquareA7
	SquareA8
)

const (
	SquareH1 Square = 8*iota + 7
	SquareH2
	SquareH3
	SquareH4
	SquareH5
	SquareH6
	SquareH7
	SquareH8
)

const (
	SquareB1 Square = 1
	SquareC1 Square = 2
	SquareD1 Square = 3
	SquareE1 Square = 4
	SquareF1 Square = 5
	SquareG1 Square = 6

	SquareB8 Square = 57
	SquareC8 Square = 58
	SquareD8 Square = 59
	SquareE8 Square = 60
	SquareF8 Square = 61
	SquareG8 Square = 62
)

const (
	SquareMinValue = Square(0)
	SquareMaxValue = Square(63)
)

const BbEmpty Bitboard = 0

var (
	bbRank2 = RankBb(1)
	bbRank7 = RankBb(6)

	// BbPawnStartRank has both colors' pawn starting ranks set.
	BbPawnStartRank = RankBb(1) | RankBb(6)
	// BbPawnDoubleRank has both colors' double-push destination ranks set.
	BbPawnDoubleRank = RankBb(3) | RankBb(4)

	bbNotFileA = ^FileBb(0)
	bbNotFileH = ^FileBb(7)
)

// relativeRankBb returns the bitboard of the rank that is "rank" rank
// away from color's own first rank.
func relativeRankBb(c Color, rank int) Bitboard {
	if c == Black {
		rank = 7 - rank
	}
	return RankBb(rank)
}

// adjacentFilesBb returns the files immediately to the left and right of f.
func adjacentFilesBb(f int) Bitboard {
	bb := Bitboard(0)
	if f > 0 {
		bb |= FileBb(f - 1)
	}
	if f < 7 {
		bb |= FileBb(f + 1)
	}
	return bb
}

// de Bruijn bit-scan constants, for Bitboard.AsSquare.
const debruijnMul64 = 0x03f79d71b4cb0a89

var debruijnIndex64 = [64]uint8{
	0, 1, 48, 2, 57, 49, 28, 3,
	61, 58, 50, 42, 38, 29, 17, 4,
	62, 55, 59, 36, 53, 51, 43, 22,
	45, 39, 33, 30, 24, 18, 12, 5,
	63, 47, 56, 27, 60, 41, 37, 16,
	54, 35, 52, 21, 44, 32, 23, 11,
	46, 26, 40, 15, 34, 20, 31, 10,
	25, 14, 19, 9, 13, 8, 7, 6,
}
