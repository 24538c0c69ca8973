package chess

import "fmt"

// Square identifies one of the 64 board squares by algebraic coordinate.
// The zero value is not a valid square.
type Square struct {
	Col  Col
	Rank Rank
}

// Sq builds a square from a column and rank character pair.
func Sq(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Col >= FirstCol && s.Col <= LastCol &&
		s.Rank >= FirstRank && s.Rank <= LastRank
}

// String returns the algebraic form, e.g. "e4".
func (s Square) String() string {
	return string([]byte{byte(s.Col), byte(s.Rank)})
}

// RowCol returns the zero-based (row, col) pair where row 0 is rank 8
// (the top of a standard display) and col 0 is file 'a'.
func (s Square) RowCol() (row, col int) {
	return int(LastRank - s.Rank), int(s.Col - FirstCol)
}

// SquareFromRowCol converts a zero-based (row, col) pair back to a square.
// Pairs outside [0,7]x[0,7] are rejected.
func SquareFromRowCol(row, col int) (Square, error) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return Square{}, fmt.Errorf("row/col out of range: (%d, %d)", row, col)
	}
	return Square{
		Col:  Col(int(FirstCol) + col),
		Rank: Rank(int(LastRank) - row),
	}, nil
}

// Offset returns the square displaced by the given column and rank deltas.
// The result may be off the board; callers check Valid.
func (s Square) Offset(dc, dr int) Square {
	return Square{
		Col:  Col(int(s.Col) + dc),
		Rank: Rank(int(s.Rank) + dr),
	}
}
