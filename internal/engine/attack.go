package engine

import "github.com/BezouiStudio/chessmastery/internal/chess"

// Fixed offset sets shared by the attack oracle and move generation.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq := board.KingSquare(colour)
	if !kingSq.Valid() {
		kingSq = findKing(board, colour)
		if !kingSq.Valid() {
			return false // No king found
		}
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) chess.Square {
	king := chess.MakeColouredPiece(colour, chess.King)
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			if board.Get(col, rank) == king {
				return chess.Sq(col, rank)
			}
		}
	}
	return chess.Square{}
}

// IsSquareAttacked returns true if the square is attacked by any piece of
// the given colour. The test is purely geometric: occupancy is consulted
// only for sliding-piece blocking, never for the legality of the attacking
// move itself.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack only the two diagonally-forward squares.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	for _, dc := range []int{-1, 1} {
		from := sq.Offset(dc, -chess.ColourOffset(byColour))
		if from.Valid() && board.At(from) == pawn {
			return true
		}
	}

	// Knight attacks.
	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		from := sq.Offset(off[0], off[1])
		if from.Valid() && board.At(from) == knight {
			return true
		}
	}

	// King attacks.
	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, off := range kingOffsets {
		from := sq.Offset(off[0], off[1])
		if from.Valid() && board.At(from) == king {
			return true
		}
	}

	// Sliding pieces: a ray stops at the first occupied square in each
	// direction, so a blocked attacker does not see past the blocker.
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	if attacksAlong(board, sq, diagonalDirs, bishop, queen) {
		return true
	}

	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	return attacksAlong(board, sq, straightDirs, rook, queen)
}

// attacksAlong casts rays from sq and reports whether the first occupied
// square in any direction holds one of the two slider values.
func attacksAlong(board *chess.Board, sq chess.Square, dirs [][2]int, slider, queen chess.Piece) bool {
	for _, dir := range dirs {
		from := sq.Offset(dir[0], dir[1])
		for from.Valid() {
			piece := board.At(from)
			if piece != chess.Empty {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			from = from.Offset(dir[0], dir[1])
		}
	}
	return false
}
